package dcb

import (
	"fmt"

	"github.com/joshuapare/dcbkit/dcb/alloc"
	"github.com/joshuapare/dcbkit/internal/buf"
)

// obtain allocates n zeroed slots. Allocation failure panics with the
// allocator's error; no buffer state has been touched at that point.
func (b *Buffer[E]) obtain(n int) []E {
	s, err := b.allocator().Allocate(n)
	if err != nil {
		panic(fmt.Errorf("dcb: allocate %d elements: %w", n, err))
	}
	return s
}

// release hands s back to the allocator. A failed release is logged and
// otherwise ignored: the slot is never returned twice.
func (b *Buffer[E]) release(s []E) {
	if s == nil {
		return
	}
	if err := b.allocator().Deallocate(s); err != nil {
		b.log().Warn("dcb: release failed", "elements", len(s), "error", err)
	}
}

// adopt gives an empty buffer fresh storage for n elements plus one spare
// slot and returns it for the caller to fill. Calling adopt on a buffer that
// owns storage is a programming error.
func (b *Buffer[E]) adopt(n int) []E {
	if b.data != nil {
		panic("dcb: allocate on a buffer that already owns storage")
	}
	capacity, ok := buf.AddOverflowSafe(n, 1)
	if !ok {
		panic(fmt.Errorf("dcb: capacity for %d elements: %w", n, alloc.ErrOutOfMemory))
	}
	data := b.obtain(capacity + 1)
	data[n] = 0
	b.data, b.size, b.capacity = data, n, capacity
	return data
}

func (b *Buffer[E]) allocateAndCopy(src []E) {
	copy(b.adopt(len(src)), src)
}

// deallocate releases the storage and resets b to the empty state. It is
// safe to call on an empty buffer.
func (b *Buffer[E]) deallocate() {
	b.release(b.data)
	b.data, b.size, b.capacity = nil, 0, 0
}

// reallocate moves the content into a fresh allocation with room for n
// elements and returns the previous allocation. The caller releases it once
// nothing reads from it anymore.
func (b *Buffer[E]) reallocate(n int) []E {
	slots, ok := buf.AddOverflowSafe(n, 1)
	if !ok {
		panic(fmt.Errorf("dcb: capacity %d: %w", n, alloc.ErrOutOfMemory))
	}
	data := b.obtain(slots)
	copy(data, b.data[:b.size])
	data[b.size] = 0

	b.log().Debug("dcb: reallocate", "old_cap", b.capacity, "new_cap", n, "size", b.size)
	old := b.data
	b.data, b.capacity = data, n
	return old
}

// growth returns the capacity the doubling policy picks for required.
func (b *Buffer[E]) growth(required int) int {
	newCap, ok := buf.MulOverflowSafe(b.capacity, 2)
	if !ok {
		return required
	}
	newCap = max(1, newCap)
	for newCap < required {
		next, ok := buf.MulOverflowSafe(newCap, 2)
		if !ok {
			return required
		}
		newCap = next
	}
	return newCap
}

// grow ensures room for required elements using the doubling policy.
func (b *Buffer[E]) grow(required int) {
	if required <= b.capacity {
		return
	}
	b.release(b.reallocate(b.growth(required)))
}

// terminate rewrites the zero element after the content.
func (b *Buffer[E]) terminate() {
	if b.data != nil {
		b.data[b.size] = 0
	}
}

// Reserve ensures Cap() >= n, allocating exactly n elements when it has to
// grow. It never shrinks the buffer.
func (b *Buffer[E]) Reserve(n int) {
	if n <= b.capacity {
		return
	}
	b.release(b.reallocate(n))
}

// ShrinkToFit reallocates the storage to exactly Len() elements, or frees it
// when the buffer is empty.
func (b *Buffer[E]) ShrinkToFit() {
	switch {
	case b.data == nil || b.size == b.capacity:
		return
	case b.size == 0:
		b.deallocate()
	default:
		b.release(b.reallocate(b.size))
	}
}

// Clear releases the storage and leaves b empty.
func (b *Buffer[E]) Clear() {
	b.deallocate()
}
