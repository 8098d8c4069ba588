// Package placeholder formats positional templates written with {} fields.
//
// A template is literal text with replacement fields:
//
//	{}        the next argument
//	{1}       argument 1
//	{:q}      the next argument formatted with %q
//	{0:>8.2f} argument 0 formatted with %8.2f
//	{{ }}     literal braces
//
// Text after the colon is a [fmt] verb without the percent sign. A leading
// '<' left-aligns (the '-' flag), a leading '>' right-aligns, and a spec that
// does not end in a letter gets 'v' appended. A template uses either
// automatic or manual indexing, never both. Arguments beyond the last one
// referenced are ignored.
package placeholder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnmatchedBrace is returned for a '{' without a closing '}' or a
	// stray '}' that is not doubled.
	ErrUnmatchedBrace = errors.New("unmatched brace in format string")
	// ErrInvalidIndex is returned when a field index is not a non-negative integer.
	ErrInvalidIndex = errors.New("invalid argument index in format string")
	// ErrIndexingMode is returned when {} and {N} fields are mixed.
	ErrIndexingMode = errors.New("cannot switch between automatic and manual argument indexing")
	// ErrInvalidSpec is returned for a format spec that has no fmt equivalent.
	ErrInvalidSpec = errors.New("invalid format spec")
	// ErrArgumentIndex is returned when a field refers past the last argument.
	ErrArgumentIndex = errors.New("argument index out of range")
)

// Template is a parsed format string. It is immutable and safe for
// concurrent use.
type Template struct {
	segments []segment
}

type segment struct {
	literal string
	field   bool
	index   int
	verb    string
}

type indexing int

const (
	indexingNone indexing = iota
	indexingAuto
	indexingManual
)

// Format parses template and substitutes args.
func Format(template string, args ...any) (string, error) {
	t, err := Parse(template)
	if err != nil {
		return "", err
	}
	return t.Execute(args...)
}

// MustParse is like [Parse] but panics on error.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses template for repeated execution.
func Parse(template string) (*Template, error) {
	var (
		t    Template
		lit  strings.Builder
		next int
		mode indexing
	)
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBrace, i)
			}
			arg, spec, _ := strings.Cut(template[i+1:i+1+end], ":")

			var index int
			if arg == "" {
				if mode == indexingManual {
					return nil, fmt.Errorf("%w at offset %d", ErrIndexingMode, i)
				}
				mode = indexingAuto
				index = next
				next++
			} else {
				n, ok := parseIndex(arg)
				if !ok {
					return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidIndex, arg, i)
				}
				if mode == indexingAuto {
					return nil, fmt.Errorf("%w at offset %d", ErrIndexingMode, i)
				}
				mode = indexingManual
				index = n
			}

			verb, err := verbFor(spec)
			if err != nil {
				return nil, fmt.Errorf("%w %q at offset %d", err, spec, i)
			}
			flush()
			t.segments = append(t.segments, segment{field: true, index: index, verb: verb})
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBrace, i)
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return &t, nil
}

// Execute substitutes args into the template.
func (t *Template) Execute(args ...any) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if !seg.field {
			b.WriteString(seg.literal)
			continue
		}
		if seg.index >= len(args) {
			return "", fmt.Errorf("%w: {%d} with %d arguments", ErrArgumentIndex, seg.index, len(args))
		}
		fmt.Fprintf(&b, seg.verb, args[seg.index])
	}
	return b.String(), nil
}

// Fields returns the number of arguments the template needs.
func (t *Template) Fields() int {
	n := 0
	for _, seg := range t.segments {
		if seg.field && seg.index >= n {
			n = seg.index + 1
		}
	}
	return n
}

func parseIndex(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func verbFor(spec string) (string, error) {
	if spec == "" {
		return "%v", nil
	}
	switch spec[0] {
	case '<':
		spec = "-" + spec[1:]
	case '>':
		spec = spec[1:]
	case '^':
		return "", ErrInvalidSpec
	}
	if spec == "" || spec == "-" {
		return "%" + spec + "v", nil
	}
	for i := 0; i < len(spec)-1; i++ {
		if !isFlagOrWidth(spec[i]) {
			return "", ErrInvalidSpec
		}
	}
	last := spec[len(spec)-1]
	switch {
	case isLetter(last):
		return "%" + spec, nil
	case isFlagOrWidth(last):
		return "%" + spec + "v", nil
	default:
		return "", ErrInvalidSpec
	}
}

func isFlagOrWidth(c byte) bool {
	switch c {
	case '+', '-', '#', ' ', '0', '.':
		return true
	}
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
