package temparena

import "unsafe"

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid until the next Reset or Release.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.AllocBytes(int(unsafe.Sizeof(zero)))
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocUninitialized returns a *T located in the arena without zeroing the
// memory. Faster than Alloc, but the contents may be stale bytes from a
// previous cycle.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.AllocBytes(int(unsafe.Sizeof(zero)))
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocBytes(n * int(unsafe.Sizeof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Returns nil if n <= 0.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocBytes(n * int(unsafe.Sizeof(zero)))
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Allocator adapts an Arena to a typed container allocator: container code
// asks it for element storage and never needs to know about the arena.
// Deallocate is a no-op, so any container built on an Allocator must be
// dropped before the arena's next Reset; its storage is physically
// invalidated with no notification.
type Allocator[T any] struct {
	arena *Arena
}

// NewAllocator returns an Allocator drawing storage for T from a.
func NewAllocator[T any](a *Arena) Allocator[T] {
	return Allocator[T]{arena: a}
}

// Allocate returns storage for n elements of T.
func (al Allocator[T]) Allocate(n int) []T {
	return AllocSlice[T](al.arena, n)
}

// Deallocate does nothing; the arena reclaims storage in bulk on Reset.
func (al Allocator[T]) Deallocate([]T) {}

// Equal reports whether both allocators draw from the same arena, meaning
// storage from one may be handed to the other.
func (al Allocator[T]) Equal(other Allocator[T]) bool {
	return al.arena == other.arena
}
