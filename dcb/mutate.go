package dcb

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/joshuapare/dcbkit/dcb/alloc"
	"github.com/joshuapare/dcbkit/internal/buf"
)

// PushBack appends e, growing the storage geometrically when full.
func (b *Buffer[E]) PushBack(e E) {
	if b.size+1 > b.capacity {
		b.grow(b.size + 1)
	}
	b.data[b.size] = e
	b.size++
	b.data[b.size] = 0
}

// PopBack removes the last element. It does nothing on an empty buffer.
func (b *Buffer[E]) PopBack() {
	if b.size == 0 {
		return
	}
	b.size--
	b.data[b.size] = 0
}

// AppendElems appends es. es may alias b's own storage.
func (b *Buffer[E]) AppendElems(es ...E) {
	if len(es) == 0 {
		return
	}
	need, ok := buf.AddOverflowSafe(b.size, len(es))
	if !ok {
		panic(fmt.Errorf("dcb: append %d elements: %w", len(es), alloc.ErrOutOfMemory))
	}
	var old []E
	if need > b.capacity {
		old = b.reallocate(b.growth(need))
	}
	copy(b.data[b.size:], es)
	b.size = need
	b.terminate()
	b.release(old)
}

// Append appends src[pos:pos+n]. A negative n (Npos) selects the rest of
// src, and n is clamped to the elements available. src may be b itself.
func (b *Buffer[E]) Append(src *Buffer[E], pos, n int) error {
	if src == nil {
		return fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}
	n, err := buf.Span(src.size, pos, n)
	if err != nil {
		return fmt.Errorf("%w: append: %v", ErrOutOfRange, err)
	}
	b.AppendElems(src.data[pos : pos+n]...)
	return nil
}

// Insert inserts src's content before position pos.
func (b *Buffer[E]) Insert(pos int, src *Buffer[E]) error {
	return b.Replace(pos, 0, src)
}

// Replace substitutes b[pos:pos+n] with the content of repl. n is clamped to
// the elements after pos and a negative n (Npos) selects all of them.
func (b *Buffer[E]) Replace(pos, n int, repl *Buffer[E]) error {
	if repl == nil {
		return fmt.Errorf("%w: nil replacement buffer", ErrInvalidArgument)
	}
	return b.ReplaceElems(pos, n, repl.View())
}

// ReplaceElems substitutes b[pos:pos+n] with es. See Replace.
//
// When the result does not fit, exactly enough storage for it is allocated
// and prefix, replacement and suffix are copied in order. Otherwise the
// suffix is shifted in place first and the replacement written after, so
// both paths produce the same content.
func (b *Buffer[E]) ReplaceElems(pos, n int, es []E) error {
	n, err := buf.Span(b.size, pos, n)
	if err != nil {
		return fmt.Errorf("%w: replace: %v", ErrOutOfRange, err)
	}
	newSize, ok := buf.AddOverflowSafe(b.size-n, len(es))
	if !ok {
		panic(fmt.Errorf("dcb: replace with %d elements: %w", len(es), alloc.ErrOutOfMemory))
	}

	if newSize > b.capacity {
		slots, ok := buf.AddOverflowSafe(newSize, 1)
		if !ok {
			panic(fmt.Errorf("dcb: capacity %d: %w", newSize, alloc.ErrOutOfMemory))
		}
		data := b.obtain(slots)
		copy(data, b.data[:pos])
		copy(data[pos:], es)
		copy(data[pos+len(es):], b.data[pos+n:b.size])
		data[newSize] = 0

		b.log().Debug("dcb: reallocate", "old_cap", b.capacity, "new_cap", newSize, "size", newSize)
		old := b.data
		b.data, b.size, b.capacity = data, newSize, newSize
		b.release(old)
		return nil
	}

	if overlaps(b.data, es) {
		es = slices.Clone(es)
	}
	copy(b.data[pos+len(es):], b.data[pos+n:b.size])
	copy(b.data[pos:], es)
	b.size = newSize
	b.terminate()
	return nil
}

// Erase removes b[pos:pos+n]. n is clamped to the elements after pos and a
// negative n (Npos) selects all of them.
func (b *Buffer[E]) Erase(pos, n int) error {
	n, err := buf.Span(b.size, pos, n)
	if err != nil {
		return fmt.Errorf("%w: erase: %v", ErrOutOfRange, err)
	}
	if n == 0 {
		return nil
	}
	copy(b.data[pos:], b.data[pos+n:b.size])
	b.size -= n
	b.terminate()
	return nil
}

// Resize sets the length to count, truncating or padding with fill. Growth
// follows the doubling policy. It panics if count is negative.
func (b *Buffer[E]) Resize(count int, fill E) {
	if count < 0 {
		panic("dcb: negative Resize count")
	}
	if count > b.size {
		b.grow(count)
		for i := b.size; i < count; i++ {
			b.data[i] = fill
		}
	}
	b.size = count
	b.terminate()
}

// overlaps reports whether a and s share any backing memory.
func overlaps[E Element](a, s []E) bool {
	if cap(a) == 0 || len(s) == 0 {
		return false
	}
	w := uintptr(width[E]())
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	a1 := a0 + uintptr(cap(a))*w
	s0 := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	s1 := s0 + uintptr(len(s))*w
	return a0 < s1 && s0 < a1
}
