package unindent

import "bytes"

// Editor rewrites a captured literal.
//
// src holds the literal followed by a [Marker]. dst is zeroed and has the
// same length as src; Edit writes its result into dst, left-packed and
// followed by a marker. An editor never needs more room than src, so it
// must not grow its output past the input.
//
// Editors are instantiated through their zero value by [New], so an Editor
// must work without any fields set.
type Editor interface {
	Edit(dst, src []byte)
}

// Unindent removes the smallest common indentation from every line.
//
// Leading newlines and trailing spaces and newlines are trimmed first. If no
// line is indented, the trimmed text is kept as is.
type Unindent struct{}

// Fold unindents, then replaces a single newline with a space and a run of
// two or more newlines with exactly one newline.
type Fold struct{}

var newline = []byte{'\n'}

// Edit implements [Editor].
func (Unindent) Edit(dst, src []byte) {
	n := unindentInto(dst, content(src))
	dst[n] = Marker
}

// Edit implements [Editor].
func (Fold) Edit(dst, src []byte) {
	n := unindentInto(dst, content(src))
	n = foldInPlace(dst[:n])
	dst[n] = Marker
}

// content cuts b at its first marker.
func content(b []byte) []byte {
	if i := bytes.IndexByte(b, Marker); i >= 0 {
		return b[:i]
	}
	return b
}

func trimBlock(s []byte) []byte {
	for len(s) > 0 && s[0] == '\n' {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\n') {
		s = s[:len(s)-1]
	}
	return s
}

// minIndent returns the fewest leading spaces over all non-empty lines.
// ok is false when every line is empty.
func minIndent(s []byte) (indent int, ok bool) {
	for line := range bytes.SplitSeq(s, newline) {
		if len(line) == 0 {
			continue
		}
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		if !ok || n < indent {
			indent, ok = n, true
		}
	}
	return indent, ok
}

// unindentInto writes the unindented form of s into dst and returns the
// number of bytes written.
func unindentInto(dst, s []byte) int {
	s = trimBlock(s)
	indent, ok := minIndent(s)
	if !ok || indent == 0 {
		return copy(dst, s)
	}

	n := 0
	first := true
	for line := range bytes.SplitSeq(s, newline) {
		if !first {
			dst[n] = '\n'
			n++
		}
		first = false
		// Lines shorter than the indent are only ever empty here.
		if len(line) >= indent {
			line = line[indent:]
		}
		n += copy(dst[n:], line)
	}
	return n
}

// foldInPlace folds b over itself. The write position never passes the read
// position: every separator written replaces at least one newline read.
func foldInPlace(b []byte) int {
	w, returns := 0, 0
	for r := 0; r < len(b); r++ {
		c := b[r]
		if c == '\n' {
			returns++
			continue
		}
		switch {
		case returns > 1:
			b[w] = '\n'
			w++
		case returns == 1:
			b[w] = ' '
			w++
		}
		returns = 0
		b[w] = c
		w++
	}
	return w
}
