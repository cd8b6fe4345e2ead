//go:build unix

package alloc

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap backs each allocation with its own anonymous private mapping.
// E must not contain Go pointers.
type Mmap[E any] struct{}

// Allocate implements Allocator. Fresh anonymous mappings are zero-filled by
// the kernel.
func (Mmap[E]) Allocate(n int) ([]E, error) {
	size, err := byteSize[E](n)
	if err != nil {
		return nil, err
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, fmt.Errorf("%w: mmap %d bytes", ErrOutOfMemory, size)
		}
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&mem[0])), n), nil
}

// Deallocate implements Allocator by unmapping the block.
func (Mmap[E]) Deallocate(s []E) error {
	if cap(s) == 0 {
		return nil
	}
	var zero E
	size := cap(s) * int(unsafe.Sizeof(zero))
	mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size)
	if err := unix.Munmap(mem); err != nil {
		if errors.Is(err, unix.EINVAL) {
			return fmt.Errorf("%w: munmap: %v", ErrUnknownBlock, err)
		}
		return fmt.Errorf("alloc: munmap %d bytes: %w", size, err)
	}
	return nil
}
