package cshim

// The tla_shim_ prefix keeps these exports from colliding with the real libc
// symbols the Go binary links. The build that compiles the generated tables
// redirects the engine's calls here, e.g. -Dmalloc=tla_shim_malloc
// -Diswspace=tla_shim_iswspace -D__assert_fail=tla_shim_assert_fail.

// #include <stdint.h>
// #include <stdlib.h>
import "C"

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

//export tla_shim_malloc
func tla_shim_malloc(size C.size_t) unsafe.Pointer {
	return Default().Allocate(uintptr(size))
}

//export tla_shim_free
func tla_shim_free(ptr unsafe.Pointer) {
	Default().Release(ptr)
}

//export tla_shim_realloc
func tla_shim_realloc(ptr unsafe.Pointer, size C.size_t) unsafe.Pointer {
	return Default().Resize(ptr, uintptr(size))
}

//export tla_shim_iswspace
func tla_shim_iswspace(c C.uint32_t) C.int {
	return cBool(IsWhitespace(uint32(c)))
}

//export tla_shim_iswdigit
func tla_shim_iswdigit(c C.uint32_t) C.int {
	return cBool(IsDigit(uint32(c)))
}

//export tla_shim_iswalnum
func tla_shim_iswalnum(c C.uint32_t) C.int {
	return cBool(IsAlnum(uint32(c)))
}

//export tla_shim_assert_fail
func tla_shim_assert_fail(expr, file *C.char, line C.uint32_t, function *C.char) {
	Default().AssertionFailed(goStringSafe(expr), goStringSafe(file), uint32(line), goStringSafe(function))
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// goStringSafe converts a C string that may be nil or hold invalid UTF-8.
// Diagnostics must come out best-effort; a decoding problem must never
// propagate back into the engine.
func goStringSafe(p *C.char) string {
	if p == nil {
		return "<unknown>"
	}
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		return strings.ToValidUTF8(s, "�")
	}
	return s
}

// goStringSafeAt is goStringSafe over an untyped address, for callers that
// hold a raw pointer to a NUL-terminated string rather than a typed C
// pointer.
func goStringSafeAt(p unsafe.Pointer) string {
	return goStringSafe((*C.char)(p))
}
