package unindent

import (
	"io"
	"iter"
	"strings"

	"github.com/Gobd/unindent/placeholder"
)

type (
	// Viewer is implemented by anything that exposes read-only edited text.
	Viewer interface {
		Value() string
	}

	// View is a plain string that satisfies [Viewer], for comparing a string
	// against an [Edited] with [Compare] or [Equal] on either side.
	View string
)

// Value returns v unchanged.
func (v View) Value() string { return string(v) }

// Edited is a literal after editing by E. The edit runs once in [New]; the
// value never changes afterwards and is safe to read from any goroutine.
//
// Declare Edited values at package level so the edit happens during
// package initialization:
//
//	var usage = unindent.Folded(`
//	    Usage: tool [flags]
//	    Runs the tool.
//	`)
type Edited[E Editor] struct {
	value string
}

// New captures lit and edits it with the zero value of E.
func New[E Editor](lit string) Edited[E] {
	return Edited[E]{value: edit[E](NewFixedString(lit)).String()}
}

// Apply edits s with E and returns the result as a string.
func Apply[E Editor](s string) string {
	return New[E](s).Value()
}

func edit[E Editor](src FixedString) FixedString {
	var e E
	in := src.Bytes()
	out := make([]byte, len(in))
	e.Edit(out, in)
	return fixedFromBytes(out)
}

// Value returns the edited text.
func (t Edited[E]) Value() string { return t.value }

// String implements [fmt.Stringer].
func (t Edited[E]) String() string { return t.value }

// Len returns the length of the edited text in bytes.
func (t Edited[E]) Len() int { return len(t.value) }

// All iterates over the bytes of the edited text from the first to the last.
func (t Edited[E]) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(t.value); i++ {
			if !yield(i, t.value[i]) {
				return
			}
		}
	}
}

// Backward iterates over the bytes of the edited text from the last to the first.
func (t Edited[E]) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := len(t.value) - 1; i >= 0; i-- {
			if !yield(i, t.value[i]) {
				return
			}
		}
	}
}

// Render treats the edited text as a [placeholder] template and substitutes
// args. Errors come from [placeholder.Format] unchanged.
//
//	greeting := unindent.Folded(`
//	    {}
//	    {}
//	`)
//	s, err := greeting.Render("Hello", "World") // "Hello World"
func (t Edited[E]) Render(args ...any) (string, error) {
	return placeholder.Format(t.value, args...)
}

// MustRender is like [Edited.Render] but panics on error.
func (t Edited[E]) MustRender(args ...any) string {
	s, err := t.Render(args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Compare orders the edited text against s lexicographically.
func (t Edited[E]) Compare(s string) int { return strings.Compare(t.value, s) }

// Equal reports whether the edited text is s.
func (t Edited[E]) Equal(s string) bool { return t.value == s }

// Less reports whether the edited text sorts before s.
func (t Edited[E]) Less(s string) bool { return t.value < s }

// WriteTo writes the edited text to w.
func (t Edited[E]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.value)
	return int64(n), err
}

// Compare orders the values of a and b lexicographically. Either side may be
// an [Edited] of any editor or a [View].
func Compare(a, b Viewer) int {
	return strings.Compare(a.Value(), b.Value())
}

// Equal reports whether a and b hold the same text, regardless of the source
// literal or editor that produced them.
func Equal(a, b Viewer) bool {
	return a.Value() == b.Value()
}
