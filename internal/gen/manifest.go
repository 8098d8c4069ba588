package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Transform names accepted in a manifest.
const (
	TransformUnindent = "unindent"
	TransformFold     = "fold"
)

// ErrEmptyManifest is returned when a manifest file holds no document.
var ErrEmptyManifest = errors.New("manifest is empty")

var (
	identRegexp    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	exportedRegexp = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
)

type (
	// Manifest lists the text blocks to turn into constants of one Go file.
	Manifest struct {
		Package   string     `yaml:"package" json:"package"`
		Output    string     `yaml:"output" json:"output"`
		Constants []Constant `yaml:"constants" json:"constants"`

		// path is where the manifest was read from; file entries resolve
		// against its directory.
		path string
	}

	// Constant is one generated constant. Exactly one of Text and File is set.
	Constant struct {
		Name      string `yaml:"name" json:"name"`
		Transform string `yaml:"transform" json:"transform"`
		Doc       string `yaml:"doc" json:"doc"`
		Text      string `yaml:"text" json:"text"`
		File      string `yaml:"file" json:"file"`
	}
)

// LoadManifest reads and decodes the manifest at path. Unknown keys are
// rejected. A constant without a transform defaults to unindent.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.path = path
	return m, nil
}

// ParseManifest decodes a manifest from YAML. File entries resolve against
// the working directory.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	for i := range m.Constants {
		if m.Constants[i].Transform == "" {
			m.Constants[i].Transform = TransformUnindent
		}
	}
	return &m, nil
}

// Dir is the directory file entries and the output resolve against.
func (m *Manifest) Dir() string {
	if m.path == "" {
		return "."
	}
	return filepath.Dir(m.path)
}

// Source is the base name of the manifest file, or "manifest" when it was
// parsed from memory.
func (m *Manifest) Source() string {
	if m.path == "" {
		return "manifest"
	}
	return filepath.Base(m.path)
}

// Validate implements [validation.Validatable].
func (m *Manifest) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Package, validation.Required, validation.Match(identRegexp).Error("must be a Go identifier")),
		validation.Field(&m.Output,
			validation.Required,
			validation.NewStringRule(govalidator.IsPrintableASCII, "must be printable ASCII"),
			validation.By(goFile),
		),
		validation.Field(&m.Constants, validation.Required, validation.By(uniqueNames)),
	)
}

// Validate implements [validation.Validatable].
func (c Constant) Validate() error {
	hasFile := c.File != ""
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Match(exportedRegexp).Error("must be an exported Go identifier")),
		validation.Field(&c.Transform, validation.Required, validation.In(TransformUnindent, TransformFold).Error("must be one of 'unindent', 'fold'")),
		validation.Field(&c.Text,
			validation.When(!hasFile, validation.Required.Error("text or file is required")),
			validation.When(hasFile, validation.Empty.Error("cannot be combined with file")),
		),
	)
}

// text returns the literal for c, reading it from disk for file entries.
func (m *Manifest) text(c Constant) (string, error) {
	if c.File == "" {
		return c.Text, nil
	}
	path := c.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Dir(), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("constant %s: %w", c.Name, err)
	}
	return string(data), nil
}

func goFile(value any) error {
	s, _ := value.(string)
	if !strings.HasSuffix(s, ".go") || strings.HasSuffix(s, "_test.go") {
		return errors.New("must name a non-test .go file")
	}
	return nil
}

func uniqueNames(value any) error {
	constants, _ := value.([]Constant)
	seen := make(map[string]struct{}, len(constants))
	for _, c := range constants {
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("duplicate constant name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
