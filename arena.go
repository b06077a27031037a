// Package temparena implements a per-cycle scratch arena: a bump allocator
// over a primary buffer with transparent growth via overflow pages.
// Typical usage: allocate freely during one loop iteration, then Reset() at
// the iteration boundary to reclaim everything at once.
package temparena

import "unsafe"

// DefaultCapacity is the primary buffer size used when New is given a
// capacity <= 0 (64 MiB).
const DefaultCapacity = 64 << 20

// AllocFunc obtains a raw backing buffer of the given size.
// Returning nil (or a shorter buffer) is treated as fatal.
type AllocFunc func(size int) []byte

// FreeFunc releases a backing buffer previously obtained from the
// matching AllocFunc.
type FreeFunc func(buf []byte)

func defaultAlloc(size int) []byte { return make([]byte, size) }

func defaultFree([]byte) {} // the garbage collector reclaims it

// Arena is a bump allocator over a primary buffer. When the active region
// is exhausted, allocations spill into a chain of overflow pages that is
// drained on every Reset. Not safe for concurrent use; create one Arena
// per goroutine instead.
type Arena struct {
	primary  []byte // owned for the Arena's whole lifetime
	buf      []byte // active region: primary, or the newest overflow page
	used     int
	pageSize int // configured capacity, also sizes overflow pages

	allocFn AllocFunc
	freeFn  FreeFunc

	tracking bool
	stats    Stats

	pages *overflowPage
	gen   uint64
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithBackend installs custom allocate/release callbacks for all backing
// buffers, including the primary one. Either function may be nil to keep
// the default (heap allocation, GC reclamation).
func WithBackend(alloc AllocFunc, free FreeFunc) Option {
	return func(a *Arena) {
		if alloc != nil {
			a.allocFn = alloc
		}
		if free != nil {
			a.freeFn = free
		}
	}
}

// WithTracking enables allocation statistics from the first allocation on.
func WithTracking(enabled bool) Option {
	return func(a *Arena) { a.tracking = enabled }
}

// New creates an Arena with a primary buffer of the given capacity.
// If capacity <= 0, DefaultCapacity is used. Options are applied before
// the primary buffer is obtained, so a backend installed via WithBackend
// serves the primary buffer too.
func New(capacity int, opts ...Option) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	a := &Arena{
		pageSize: capacity,
		allocFn:  defaultAlloc,
		freeFn:   defaultFree,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.primary = a.obtain(capacity)
	a.buf = a.primary
	return a
}

// SetBackend replaces the allocate/release callbacks. The primary buffer is
// not reallocated; the new backend serves future overflow pages only, and
// the new FreeFunc will be handed buffers the old backend allocated, so
// switch backends with care.
func (a *Arena) SetBackend(alloc AllocFunc, free FreeFunc) {
	if alloc != nil {
		a.allocFn = alloc
	}
	if free != nil {
		a.freeFn = free
	}
}

// SetTracking toggles statistics collection. Counters accumulated so far
// are left untouched; Reset clears them.
func (a *Arena) SetTracking(enabled bool) {
	a.tracking = enabled
}

// AllocBytes reserves n bytes from the arena and returns them as a slice.
// The request is rounded up to pointer alignment internally; when the
// active region cannot hold it, a new overflow page becomes the active
// region. Returns nil if n <= 0. The bytes stay valid until the next
// Reset or Release.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	a.panicIfReleased()

	size := alignUp(n)

	if a.tracking {
		a.stats.AllocationCount++
		a.stats.TotalAllocatedBytes += size
		if size > a.stats.MaxAllocation {
			a.stats.MaxAllocation = size
		}
	}

	if a.used+size > len(a.buf) {
		p := a.newPage(size)
		a.buf = p.buf
		a.used = 0
	}

	start := a.used
	a.used += size
	return unsafe.Slice(&a.buf[start], n)
}

// Realloc reserves n fresh bytes and copies old into them. The old region
// is never reclaimed or reused; it stays untouched until the next Reset.
func (a *Arena) Realloc(old []byte, n int) []byte {
	buf := a.AllocBytes(n)
	copy(buf, old)
	return buf
}

// Free does nothing. It exists to satisfy allocator-shaped interfaces;
// the arena reclaims memory only in bulk, via Reset or Release.
func (a *Arena) Free([]byte) {}

// Reset drains the overflow page chain, rewinds the active region back to
// the primary buffer, and clears statistics if tracking is enabled.
// Every byte handed out since the previous Reset becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()

	a.drainPages()
	a.buf = a.primary
	a.used = 0
	a.gen++

	if a.tracking {
		a.stats = Stats{}
	}
}

// Release drains the overflow page chain, releases the primary buffer and
// makes the arena unusable. Any subsequent allocation or Reset panics.
// Calling Release again is a no-op.
func (a *Arena) Release() {
	if a.buf == nil {
		return
	}
	a.drainPages()
	a.freeFn(a.primary)
	a.primary = nil
	a.buf = nil
	a.used = 0
	a.gen++
}

// Generation returns a counter incremented by every Reset and Release.
// Code that holds arena-backed storage across cycle boundaries can snapshot
// it and detect stale storage by comparison.
func (a *Arena) Generation() uint64 { return a.gen }

// obtain fetches a buffer of exactly size bytes from the backend.
func (a *Arena) obtain(size int) []byte {
	buf := a.allocFn(size)
	if len(buf) < size {
		panic("temparena: backend failed to allocate backing buffer")
	}
	return buf[:size]
}

func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("temparena: use after Release()")
	}
}

// alignUp rounds n up to the next multiple of the pointer width.
func alignUp(n int) int {
	const mask = int(unsafe.Sizeof(uintptr(0))) - 1
	return (n + mask) &^ mask
}
