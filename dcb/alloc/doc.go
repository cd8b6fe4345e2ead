// Package alloc provides the pluggable allocation strategy used by dcb buffers.
//
// # Overview
//
// A buffer never calls make directly. Every backing array is obtained from an
// Allocator and handed back to the same Allocator exactly once when the buffer
// grows, shrinks, or is cleared. This keeps the storage policy swappable
// without changing the buffer's code.
//
// # Allocator Interface
//
//   - Allocate(n): return a zeroed slice of exactly n elements
//   - Deallocate(s): release a slice previously returned by Allocate
//
// # Implementations
//
// Heap: the default. Slices come from the Go heap and Deallocate is a no-op;
// the garbage collector reclaims them.
//
// Mmap: anonymous private memory mappings (golang.org/x/sys/unix). Storage
// lives outside the Go heap and is unmapped deterministically on Deallocate.
// Falls back to Heap on platforms without mmap. Only pointer-free element
// types may be placed in mapped memory.
//
// Tracking: wraps another allocator and records every live block. Used to
// assert that storage is released exactly once.
//
// Budget: wraps another allocator and fails with ErrOutOfMemory once the
// number of live elements would exceed a limit. Used to exercise
// allocation-failure paths.
//
// # Usage Example
//
//	tr := alloc.NewTracking[byte](alloc.Heap[byte]{})
//	s, err := tr.Allocate(16)
//	if err != nil {
//	    return err
//	}
//	defer tr.Deallocate(s)
//
// # Thread Safety
//
// Heap and Mmap are safe for concurrent use. Tracking and Budget are not;
// callers must synchronize access externally.
package alloc
