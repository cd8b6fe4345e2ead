//go:build !unix

package alloc

// Mmap falls back to heap storage where anonymous mappings are unavailable.
type Mmap[E any] struct{}

// Allocate implements Allocator.
func (Mmap[E]) Allocate(n int) ([]E, error) {
	return Heap[E]{}.Allocate(n)
}

// Deallocate implements Allocator.
func (Mmap[E]) Deallocate(s []E) error {
	return Heap[E]{}.Deallocate(s)
}
