package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/dcbkit/internal/buf"
)

// Allocator hands out and reclaims contiguous element storage.
type Allocator[E any] interface {
	// Allocate returns a zeroed slice with len == cap == n.
	Allocate(n int) ([]E, error)

	// Deallocate releases s. s must be a slice returned by Allocate on the
	// same allocator and must not be used afterwards.
	Deallocate(s []E) error
}

// Heap allocates from the Go heap.
type Heap[E any] struct{}

// Allocate implements Allocator.
func (Heap[E]) Allocate(n int) ([]E, error) {
	if _, err := byteSize[E](n); err != nil {
		return nil, err
	}
	return make([]E, n), nil
}

// Deallocate implements Allocator. The slice is left to the garbage collector.
func (Heap[E]) Deallocate([]E) error { return nil }

// maxBytes caps a single request so that the runtime never sees a length it
// would reject with a panic.
const maxBytes = uint64(1) << 40

// byteSize returns the size in bytes of n elements of E.
func byteSize[E any](n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d elements", ErrBadSize, n)
	}
	var zero E
	size, ok := buf.MulOverflowSafe(n, int(unsafe.Sizeof(zero)))
	if !ok || uint64(size) > maxBytes {
		return 0, fmt.Errorf("%w: %d elements", ErrOutOfMemory, n)
	}
	return size, nil
}

// blockKey identifies a live block by the address of its first element.
func blockKey[E any](s []E) uintptr {
	if cap(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}
