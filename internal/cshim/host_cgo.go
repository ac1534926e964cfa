package cshim

// #include <stdlib.h>
import "C"

import "unsafe"

// processHost delegates to the process allocator. malloc's alignment covers
// the largest primitive the engine allocates, and libc tracks block layout
// itself, so the recorded sizes are not re-passed here; they exist so the
// shim's own records stay authoritative and so substitute hosts can demand
// an exact layout match.
type processHost struct{}

func (processHost) Alloc(size uintptr) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

func (processHost) Free(ptr unsafe.Pointer, _ uintptr) {
	C.free(ptr)
}

func (processHost) Realloc(ptr unsafe.Pointer, _, newSize uintptr) unsafe.Pointer {
	return C.realloc(ptr, C.size_t(newSize))
}
