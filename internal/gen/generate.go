// Package gen turns a manifest of literal text blocks into a Go source file
// of constants, editing each block ahead of time with the unindent editors.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/Gobd/unindent"
	"go.uber.org/zap"
)

var editors = map[string]func(string) string{
	TransformUnindent: unindent.UnindentedView,
	TransformFold:     unindent.FoldedView,
}

var pastTense = map[string]string{
	TransformUnindent: "unindented",
	TransformFold:     "folded",
}

var fileTemplate = template.Must(template.New("file").Parse(unindent.UnindentedView(`
    // Code generated by unindentgen from {{ .Source }}. DO NOT EDIT.

    package {{ .Package }}

    const (
    {{- range .Constants }}
    {{- range .Doc }}
    	// {{ . }}
    {{- end }}
    	{{ .Name }} = {{ .Value }}
    {{- end }}
    )
`) + "\n"))

type fileData struct {
	Source    string
	Package   string
	Constants []constantData
}

type constantData struct {
	Name  string
	Doc   []string
	Value string
}

// Generate renders the Go source for m. The manifest must be valid; constants
// appear in manifest order so the output is deterministic.
func Generate(ctx context.Context, logger *zap.Logger, m *Manifest) ([]byte, error) {
	data := fileData{
		Source:    m.Source(),
		Package:   m.Package,
		Constants: make([]constantData, 0, len(m.Constants)),
	}
	for _, c := range m.Constants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		edit, ok := editors[c.Transform]
		if !ok {
			return nil, fmt.Errorf("constant %s: unknown transform %q", c.Name, c.Transform)
		}
		text, err := m.text(c)
		if err != nil {
			return nil, err
		}
		value := edit(text)
		logger.Debug("edited constant",
			zap.String("name", c.Name),
			zap.String("transform", c.Transform),
			zap.Int("in", len(text)),
			zap.Int("out", len(value)),
		)
		data.Constants = append(data.Constants, constantData{
			Name:  c.Name,
			Doc:   docLines(c),
			Value: strconv.Quote(value),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func docLines(c Constant) []string {
	doc := unindent.FoldedView(c.Doc)
	if doc == "" {
		doc = fmt.Sprintf("%s is %s text.", c.Name, pastTense[c.Transform])
	}
	return strings.Split(doc, "\n")
}
