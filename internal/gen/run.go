package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrStale is returned in check mode when the generated file on disk does
// not match what the manifest produces.
var ErrStale = errors.New("generated file is out of date")

// Options configures [Run].
type Options struct {
	// Manifest is the path of the YAML manifest.
	Manifest string
	// Output overrides the manifest's output path. Relative paths resolve
	// against the working directory rather than the manifest.
	Output string
	// Check compares instead of writing.
	Check bool
}

// Run loads, validates and generates the manifest, then writes or checks the
// output file.
func Run(ctx context.Context, logger *zap.Logger, opts Options) (retErr error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("manifest", opts.Manifest), zap.Duration("duration", time.Since(start))}
		if retErr != nil {
			fields = append(fields, zap.Error(retErr))
		}
		logger.Debug("run", fields...)
	}()

	m, err := LoadManifest(opts.Manifest)
	if err != nil {
		return err
	}
	if opts.Output != "" && m.Output == "" {
		m.Output = filepath.Base(opts.Output)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%s: invalid manifest: %w", opts.Manifest, err)
	}

	src, err := Generate(ctx, logger, m)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Manifest, err)
	}

	out := opts.Output
	if out == "" {
		out = filepath.Join(m.Dir(), m.Output)
	}

	if opts.Check {
		existing, err := os.ReadFile(out)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s does not exist", ErrStale, out)
			}
			return err
		}
		if !bytes.Equal(existing, src) {
			return fmt.Errorf("%w: %s", ErrStale, out)
		}
		logger.Info("up to date", zap.String("output", out))
		return nil
	}

	if err := writeFile(out, src); err != nil {
		return err
	}
	logger.Info("wrote", zap.String("output", out), zap.Int("constants", len(m.Constants)))
	return nil
}

func writeFile(path string, data []byte) (retErr error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		retErr = multierr.Append(retErr, file.Close())
	}()
	_, err = file.Write(data)
	return err
}
