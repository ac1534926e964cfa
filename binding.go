// Package tlasitter provides TLA+ language support for the tree-sitter
// parsing library, together with the C-runtime shim the generated parser
// tables need when hosted in a Go process (see internal/cshim).
//
// Typical use:
//
//	parser := sitter.NewParser()
//	parser.SetLanguage(tlasitter.Language())
//	tree := parser.Parse([]byte(source), nil)
package tlasitter

// The generated grammar tables are an external artifact, compiled and linked
// by the packaging build; this package only declares their entry point.

// typedef struct TSLanguage TSLanguage;
// const TSLanguage *tree_sitter_tlaplus(void);
import "C"

import (
	"unsafe"

	sitter "github.com/tree-sitter/go-tree-sitter"

	// Resolve the tla_shim_* runtime symbols the tables link against.
	_ "tlasitter/internal/cshim"
)

// LanguagePtr returns the raw handle to the TLA+ grammar tables. The handle
// refers to immutable static data; calling this any number of times is safe.
func LanguagePtr() unsafe.Pointer {
	return unsafe.Pointer(C.tree_sitter_tlaplus())
}

// Language returns the TLA+ grammar ready for use with a go-tree-sitter
// parser.
func Language() *sitter.Language {
	return sitter.NewLanguage(LanguagePtr())
}
