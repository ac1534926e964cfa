// Package cshim provides the C-runtime primitives the generated TLA+ parser
// tables expect from their host process: an allocate/resize/release triad,
// ASCII wide-character classification, and an assertion-failure hook.
//
// The generated tables are compiled and linked externally with the engine's
// libc calls redirected onto the tla_shim_* exports in exports.go. Everything
// behind those exports is ordinary Go so the bookkeeping can be tested with a
// substitute Host and diagnostic sink.
package cshim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unsafe"
)

// Host is the allocator the shim delegates to. Free and Realloc receive the
// size recorded when the block was handed out: the C-facing interface never
// carries it, so the shim reconstructs it from its own records and the host
// can rely on an exact layout match.
type Host interface {
	Alloc(size uintptr) unsafe.Pointer
	Free(ptr unsafe.Pointer, size uintptr)
	Realloc(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer
}

// StatsHook observes shim activity. Implementations must be safe for
// concurrent use; calls happen on whatever thread the engine runs on.
type StatsHook interface {
	Allocated(bytes uintptr)
	Released(bytes uintptr)
	Resized(oldBytes, newBytes uintptr)
	AssertionFailed()
}

type noopHook struct{}

func (noopHook) Allocated(uintptr) {}

func (noopHook) Released(uintptr) {}

func (noopHook) Resized(uintptr, uintptr) {}

func (noopHook) AssertionFailed() {}

// maxAllocSize caps single requests to half the address space, matching the
// largest layout the host allocator can represent.
const maxAllocSize = ^uintptr(0) >> 1

// Runtime owns the shim state for one host process: the host allocator, the
// address-keyed size table, and the diagnostic sink. The size table is the
// single authoritative record of each live block's layout; entries are
// inserted when a block is handed out and removed exactly once when it is
// released or resized away.
type Runtime struct {
	host  Host
	sink  io.Writer
	abort func(reason string)

	mu    sync.Mutex
	sizes map[uintptr]uintptr
	hook  StatsHook
}

// Options configures a Runtime. Zero values select production behavior: the
// process allocator, stderr, and os.Exit(1) on fatal conditions.
type Options struct {
	Host  Host
	Sink  io.Writer
	Abort func(reason string)
	Hook  StatsHook
}

// New returns a Runtime ready for use by the exported shim functions.
func New(opts Options) *Runtime {
	r := &Runtime{
		host:  opts.Host,
		sink:  opts.Sink,
		abort: opts.Abort,
		sizes: make(map[uintptr]uintptr),
		hook:  opts.Hook,
	}
	if r.host == nil {
		r.host = processHost{}
	}
	if r.sink == nil {
		r.sink = os.Stderr
	}
	if r.abort == nil {
		r.abort = func(string) { os.Exit(1) }
	}
	if r.hook == nil {
		r.hook = noopHook{}
	}
	return r
}

// SetHook replaces the stats hook. Intended for process startup, before the
// engine begins allocating.
func (r *Runtime) SetHook(hook StatsHook) {
	if hook == nil {
		hook = noopHook{}
	}
	r.mu.Lock()
	r.hook = hook
	r.mu.Unlock()
}

func (r *Runtime) currentHook() StatsHook {
	r.mu.Lock()
	h := r.hook
	r.mu.Unlock()
	return h
}

// Allocate requests size bytes from the host allocator. Exhaustion and
// oversized requests are fatal; the engine has no failure path for a nil
// return.
func (r *Runtime) Allocate(size uintptr) unsafe.Pointer {
	if size == 0 {
		// Zero-byte requests still need a unique, releasable address.
		size = 1
	}
	if size > maxAllocSize {
		r.fatal(fmt.Sprintf("allocation of %d bytes exceeds the host allocator limit", size))
		return nil
	}
	ptr := r.host.Alloc(size)
	if ptr == nil {
		r.fatal(fmt.Sprintf("host allocator exhausted requesting %d bytes", size))
		return nil
	}
	r.mu.Lock()
	r.sizes[uintptr(ptr)] = size
	r.mu.Unlock()
	r.currentHook().Allocated(size)
	return ptr
}

// Release returns a block to the host allocator. ptr must have come from
// Allocate or Resize and not have been released already; a nil ptr is a
// no-op, matching free(NULL).
func (r *Runtime) Release(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	size, ok := r.takeSize(ptr)
	if !ok {
		r.fatal(fmt.Sprintf("release of untracked address %#x", uintptr(ptr)))
		return
	}
	r.host.Free(ptr, size)
	r.currentHook().Released(size)
}

// Resize grows or shrinks a block, preserving the bytes in the overlap of the
// old and new sizes. A nil ptr behaves like Allocate, matching realloc(NULL).
func (r *Runtime) Resize(ptr unsafe.Pointer, newSize uintptr) unsafe.Pointer {
	if ptr == nil {
		return r.Allocate(newSize)
	}
	if newSize == 0 {
		newSize = 1
	}
	if newSize > maxAllocSize {
		r.fatal(fmt.Sprintf("resize to %d bytes exceeds the host allocator limit", newSize))
		return nil
	}
	oldSize, ok := r.takeSize(ptr)
	if !ok {
		r.fatal(fmt.Sprintf("resize of untracked address %#x", uintptr(ptr)))
		return nil
	}
	newPtr := r.host.Realloc(ptr, oldSize, newSize)
	if newPtr == nil {
		r.fatal(fmt.Sprintf("host allocator exhausted resizing %d -> %d bytes", oldSize, newSize))
		return nil
	}
	r.mu.Lock()
	r.sizes[uintptr(newPtr)] = newSize
	r.mu.Unlock()
	r.currentHook().Resized(oldSize, newSize)
	return newPtr
}

// takeSize removes and returns the recorded size for ptr. Removal happens
// under the same lock as the lookup so an address is consumed exactly once
// even under concurrent release attempts.
func (r *Runtime) takeSize(ptr unsafe.Pointer) (uintptr, bool) {
	key := uintptr(ptr)
	r.mu.Lock()
	size, ok := r.sizes[key]
	if ok {
		delete(r.sizes, key)
	}
	r.mu.Unlock()
	return size, ok
}

// LiveAllocations returns the number of blocks currently handed out.
func (r *Runtime) LiveAllocations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sizes)
}

// AssertionFailed reports a violated internal invariant of the parser tables
// and then aborts. It never panics: the caller is C code with no way to
// handle a failure crossing back over the boundary.
func (r *Runtime) AssertionFailed(expr, file string, line uint32, function string) {
	fmt.Fprintf(r.sink, "Assertion failed: %s, file: %s, line: %d, function: %s\n",
		expr, file, line, function)
	r.currentHook().AssertionFailed()
	r.abort("assertion failure in parser tables")
}

func (r *Runtime) fatal(reason string) {
	fmt.Fprintf(r.sink, "tlasitter: %s\n", reason)
	r.abort(reason)
}

var (
	defaultMu      sync.Mutex
	defaultRuntime *Runtime
)

// Default returns the process-wide Runtime the exported shim functions
// delegate to.
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRuntime == nil {
		defaultRuntime = New(Options{})
	}
	return defaultRuntime
}
