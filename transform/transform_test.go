package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/unindent/transform"
	"github.com/stretchr/testify/assert"
)

type Label string

type helpEntry struct {
	Summary string
	Detail  *string
}

type helpTable struct {
	Usage    string
	Raw      string `unindent:"-"`
	Nested   helpEntry
	Ptr      *helpEntry
	NilPtr   *helpEntry
	Lines    []string
	Entries  []helpEntry
	EntryPtr []*helpEntry
	ByName   map[string]string
	ByKey    map[string]helpEntry
	Label    Label
	Labels   map[string]Label
	Count    int
	Any      any
	private  string
}

const block = `
    first
    second
  `

func newTable() *helpTable {
	detail := block
	return &helpTable{
		Usage:    block,
		Raw:      block,
		Nested:   helpEntry{Summary: block, Detail: &detail},
		Ptr:      &helpEntry{Summary: block},
		Lines:    []string{block, "  x"},
		Entries:  []helpEntry{{Summary: block}},
		EntryPtr: []*helpEntry{{Summary: block}, nil},
		ByName:   map[string]string{"a": block},
		ByKey:    map[string]helpEntry{"k": {Summary: block}},
		Label:    Label(block),
		Labels:   map[string]Label{"l": Label(block)},
		Count:    3,
		Any:      block,
		private:  block,
	}
}

func TestStructFold(t *testing.T) {
	h := newTable()
	transform.StructFold(h)

	want := "first second"
	assert.Equal(t, want, h.Usage)
	assert.Equal(t, block, h.Raw)
	assert.Equal(t, want, h.Nested.Summary)
	assert.Equal(t, want, *h.Nested.Detail)
	assert.Equal(t, want, h.Ptr.Summary)
	assert.Nil(t, h.NilPtr)
	assert.Equal(t, []string{want, "x"}, h.Lines)
	assert.Equal(t, want, h.Entries[0].Summary)
	assert.Equal(t, want, h.EntryPtr[0].Summary)
	assert.Nil(t, h.EntryPtr[1])
	assert.Equal(t, want, h.ByName["a"])
	assert.Equal(t, want, h.ByKey["k"].Summary)
	assert.Equal(t, Label(want), h.Label)
	assert.Equal(t, Label(want), h.Labels["l"])
	assert.Equal(t, 3, h.Count)
	assert.Equal(t, block, h.Any)
	assert.Equal(t, block, h.private)
}

func TestStructUnindent(t *testing.T) {
	h := newTable()
	transform.StructUnindent(h)

	assert.Equal(t, "first\nsecond", h.Usage)
	assert.Equal(t, "first\nsecond", h.ByKey["k"].Summary)
	assert.Equal(t, block, h.Raw)
}

func TestStructStringFunc(t *testing.T) {
	h := newTable()
	transform.StructStringFunc(h, strings.ToUpper)

	assert.Equal(t, strings.ToUpper(block), h.Usage)
	assert.Equal(t, block, h.Raw)
}

func TestStructMulti(t *testing.T) {
	h := newTable()
	transform.StructMulti(h,
		transform.StructUnindent,
		func(v any) { transform.StructStringFunc(v, strings.ToUpper) },
	)

	assert.Equal(t, "FIRST\nSECOND", h.Usage)
}

func TestStruct_NonPointerIsIgnored(t *testing.T) {
	h := *newTable()
	transform.StructFold(h)
	assert.Equal(t, block, h.Usage)

	transform.StructFold("not a struct")
	transform.StructFold(nil)
}
