package unindent

import (
	"io"
	"strings"
)

// Marker terminates the meaningful content of a [FixedString]. Bytes after
// the first marker are storage the content did not need.
const Marker byte = 0

// FixedString is an immutable, fixed-capacity copy of a literal. It stores
// every byte of the literal followed by one [Marker] byte.
type FixedString struct {
	data string
}

// NewFixedString captures lit, including a trailing marker.
func NewFixedString(lit string) FixedString {
	return FixedString{data: lit + string(Marker)}
}

// fixedFromBytes wraps a buffer an [Editor] has filled.
func fixedFromBytes(b []byte) FixedString {
	return FixedString{data: string(b)}
}

// Size is the length of the captured literal, not counting the marker.
func (fs FixedString) Size() int {
	if fs.data == "" {
		return 0
	}
	return len(fs.data) - 1
}

// Bytes returns a copy of the stored bytes, marker and tail included.
func (fs FixedString) Bytes() []byte {
	return []byte(fs.stored())
}

// String returns the content up to the first marker.
func (fs FixedString) String() string {
	if i := strings.IndexByte(fs.data, Marker); i >= 0 {
		return fs.data[:i]
	}
	return fs.data
}

// Compare orders two buffers by their stored bytes. Two buffers with the same
// logical content but different capacity are not equal; compare [FixedString.String]
// for that.
func (fs FixedString) Compare(other FixedString) int {
	return strings.Compare(fs.stored(), other.stored())
}

// Equal reports whether both buffers store the same bytes.
func (fs FixedString) Equal(other FixedString) bool {
	return fs.stored() == other.stored()
}

// WriteTo writes the content up to the marker to w.
func (fs FixedString) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, fs.String())
	return int64(n), err
}

// stored normalizes the zero value to an empty, marker-terminated buffer.
func (fs FixedString) stored() string {
	if fs.data == "" {
		return string(Marker)
	}
	return fs.data
}
