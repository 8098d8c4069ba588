// Package transform edits string fields recursively within structs. It is
// meant for tables of static text, such as help or error messages, that
// are declared once at package level and edited during initialization:
//
//	var help = func() Help {
//	    h := Help{Usage: `
//	        tool [flags]
//	        Runs the tool.
//	    `}
//	    transform.StructFold(&h)
//	    return h
//	}()
//
// Fields tagged `unindent:"-"` are left untouched.
package transform
