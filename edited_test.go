package unindent_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Gobd/unindent"
	"github.com/Gobd/unindent/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pyExpected = "def foo():\n  print(\"Hello\")\n  print(\"World\")"

var (
	pyUnindented = unindent.Unindented(`
    def foo():
      print("Hello")
      print("World")
  `)

	pyFolded = unindent.Folded(`
    def foo():
      print("Hello")
      print("World")
  `)
)

// upper is an editor that uppercases ASCII letters.
type upper struct{}

func (upper) Edit(dst, src []byte) {
	for i, c := range src {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		dst[i] = c
	}
}

func TestEdited_Value(t *testing.T) {
	assert.Equal(t, pyExpected, pyUnindented.Value())
	assert.Equal(t, pyExpected, pyUnindented.String())
	assert.Equal(t, pyUnindented.Value(), pyUnindented.Value())
	assert.Equal(t, len(pyExpected), pyUnindented.Len())
}

func TestEdited_ZeroValue(t *testing.T) {
	var e unindent.Edited[unindent.Fold]
	assert.Equal(t, "", e.Value())
	assert.Equal(t, 0, e.Len())
}

func TestEdited_CustomEditor(t *testing.T) {
	e := unindent.New[upper]("shout")
	assert.Equal(t, "SHOUT", e.Value())
	assert.Equal(t, "HI", unindent.Apply[upper]("hi"))
}

func TestViewEntryPoints(t *testing.T) {
	assert.Equal(t, "first\nsecond", unindent.UnindentedView(`
    first
    second
  `))
	assert.Equal(t, "first second", unindent.FoldedView(`
    first
    second
  `))
}

func TestEdited_Compare(t *testing.T) {
	assert.NotEqual(t, 0, unindent.Compare(pyUnindented, pyFolded))
	assert.Equal(t, -1, unindent.Compare(pyUnindented, pyFolded))
	assert.Equal(t, 1, unindent.Compare(pyFolded, pyUnindented))

	assert.True(t, pyUnindented.Equal(pyExpected))
	assert.Equal(t, 0, pyUnindented.Compare(pyExpected))
	assert.True(t, pyUnindented.Less(pyExpected+"!"))
	assert.False(t, pyUnindented.Less(pyExpected))
	assert.Equal(t, 1, pyUnindented.Compare("a"))
}

func TestEdited_EqualitySymmetricAndTransitive(t *testing.T) {
	view := unindent.View(pyExpected)
	// Already unindented text passes through unchanged.
	again := unindent.Unindented(pyExpected)

	assert.True(t, unindent.Equal(pyUnindented, view))
	assert.True(t, unindent.Equal(view, pyUnindented))
	assert.True(t, unindent.Equal(pyUnindented, again))
	assert.True(t, unindent.Equal(again, pyUnindented))
	assert.True(t, unindent.Equal(view, again))
	assert.True(t, unindent.Equal(again, view))
}

func TestEdited_EqualAcrossEditors(t *testing.T) {
	folded := unindent.Folded(`
    first
    second
  `)
	plain := unindent.Unindented("first second")

	assert.True(t, unindent.Equal(folded, plain))
	assert.Equal(t, 0, unindent.Compare(plain, folded))
}

func TestEdited_All(t *testing.T) {
	e := unindent.Unindented("\n  abc\n")

	var got []byte
	var idx []int
	for i, c := range e.All() {
		idx = append(idx, i)
		got = append(got, c)
	}
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, []int{0, 1, 2}, idx)

	// Restartable.
	got = got[:0]
	for _, c := range e.All() {
		got = append(got, c)
	}
	assert.Equal(t, "abc", string(got))
}

func TestEdited_Backward(t *testing.T) {
	e := unindent.Unindented("\n  abc\n")

	var got []byte
	var idx []int
	for i, c := range e.Backward() {
		idx = append(idx, i)
		got = append(got, c)
	}
	assert.Equal(t, "cba", string(got))
	assert.Equal(t, []int{2, 1, 0}, idx)
}

func TestEdited_IterationStopsEarly(t *testing.T) {
	var got []byte
	for _, c := range pyUnindented.All() {
		if c == '(' {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, "def foo", string(got))
}

func TestEdited_Render(t *testing.T) {
	tmpl := unindent.Folded(`
    {}
    {}
  `)

	s, err := tmpl.Render("Hello", "World")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", s)

	assert.Equal(t, "Hello World", tmpl.MustRender("Hello", "World"))
}

func TestEdited_RenderUnindented(t *testing.T) {
	tmpl := unindent.Unindented(`
    def foo():
      print("Hello")
      print("{}")
  `)

	s, err := tmpl.Render("World")
	require.NoError(t, err)
	assert.Equal(t, pyExpected, s)
}

func TestEdited_RenderErrors(t *testing.T) {
	tmpl := unindent.Folded(`
    {}
    {}
  `)

	_, err := tmpl.Render("only one")
	assert.ErrorIs(t, err, placeholder.ErrArgumentIndex)

	_, err = unindent.Unindented("{").Render()
	assert.ErrorIs(t, err, placeholder.ErrUnmatchedBrace)

	assert.Panics(t, func() {
		tmpl.MustRender()
	})
}

func TestEdited_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := pyUnindented.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pyExpected)), n)
	assert.Equal(t, pyExpected, buf.String())

	var sb strings.Builder
	fmt.Fprint(&sb, pyFolded)
	assert.Equal(t, pyFolded.Value(), sb.String())
}

func TestEdited_ConcurrentReads(t *testing.T) {
	done := make(chan string)
	for range 8 {
		go func() {
			done <- pyUnindented.Value()
		}()
	}
	for range 8 {
		assert.Equal(t, pyExpected, <-done)
	}
}
