// unindentgen writes Go constants from a manifest of literal text blocks,
// unindenting or folding each block ahead of time. Run it from go:generate:
//
//	//go:generate go run github.com/Gobd/unindent/cmd/unindentgen -m unindent.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Gobd/unindent"
	"github.com/Gobd/unindent/internal/gen"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var usage = unindent.UnindentedView(`
    unindentgen writes Go constants from a YAML manifest of text blocks.

    Usage:
      unindentgen [flags]

    Each manifest entry names a constant, a transform (unindent or fold) and
    either inline text or a file relative to the manifest.

    Flags:
`) + "\n"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	var (
		opts      gen.Options
		logLevel  string
		logFormat string
	)
	flagSet := pflag.NewFlagSet("unindentgen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.Manifest, "manifest", "m", "unindent.yaml", "path to the YAML manifest")
	flagSet.StringVarP(&opts.Output, "output", "o", "", "output file (default: the manifest's output, next to the manifest)")
	flagSet.BoolVar(&opts.Check, "check", false, "fail if the output is out of date instead of writing it")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level [debug,info,warn,error]")
	flagSet.StringVar(&logFormat, "log-format", "text", "log format [text,json]")
	flagSet.Usage = func() {
		fmt.Fprint(stderr, usage)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	logger, err := newLogger(stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return gen.Run(ctx, logger, opts)
}

func newLogger(stderr io.Writer, level string, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level [debug,info,warn,error]: %q", level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = ""
	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format [text,json]: %q", format)
	}

	return zap.New(
		zapcore.NewCore(
			encoder,
			zapcore.Lock(zapcore.AddSync(stderr)),
			zap.NewAtomicLevelAt(zapLevel),
		),
	), nil
}
