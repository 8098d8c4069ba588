// Package unindent edits literal text blocks so they can be written indented
// alongside the code that uses them.
//
// Unindent strips the common leading-space count from every line and trims
// the blank material around the block:
//
//	var script = unindent.UnindentedView(`
//	    def foo():
//	      print("Hello")
//	      print("World")
//	`)
//	// "def foo():\n  print(\"Hello\")\n  print(\"World\")"
//
// Fold unindents, then joins adjacent lines with one space and keeps
// blank-line separated paragraphs on their own lines:
//
//	var cmd = unindent.FoldedView(`
//	    cmake
//	    -DCMAKE_BUILD_TYPE=Release
//	    -B build
//	`)
//	// "cmake -DCMAKE_BUILD_TYPE=Release -B build"
//
// Call the entry points from package-level declarations: the edit runs once
// during package initialization and the result never changes afterwards.
// For text that must cost nothing at runtime, the unindentgen command runs
// the same editors from go:generate and writes Go constants.
//
// Only the ASCII space and the newline byte are special. Tabs are not
// indentation and carriage returns are ordinary bytes.
//
// Sub-packages:
//   - placeholder – positional {} template formatting used by [Edited.Render]
//   - transform – edit every string field of a struct in place
//   - openapi – folded descriptions for kin-openapi documents
package unindent
