package unindent

// Unindented returns lit with its common indentation removed.
//
//	var script = unindent.Unindented(`
//	    def foo():
//	      print("Hello")
//	`)
//	// script.Value() == "def foo():\n  print(\"Hello\")"
func Unindented(lit string) Edited[Unindent] {
	return New[Unindent](lit)
}

// UnindentedView is like [Unindented] but returns the text directly.
func UnindentedView(lit string) string {
	return Unindented(lit).Value()
}

// Folded returns lit unindented, with single newlines joined into spaces and
// blank lines collapsed to one newline.
//
//	var cmd = unindent.Folded(`
//	    cmake
//	    -B build
//	    -S .
//	`)
//	// cmd.Value() == "cmake -B build -S ."
func Folded(lit string) Edited[Fold] {
	return New[Fold](lit)
}

// FoldedView is like [Folded] but returns the text directly.
func FoldedView(lit string) string {
	return Folded(lit).Value()
}
