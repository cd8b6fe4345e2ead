package dcb

import (
	"fmt"

	"github.com/joshuapare/dcbkit/internal/textenc"
)

// Len returns the number of elements, excluding the terminator.
func (b *Buffer[E]) Len() int { return b.size }

// Size is an alias for Len.
func (b *Buffer[E]) Size() int { return b.size }

// Cap returns the number of elements the storage holds before it must grow,
// excluding the terminator slot.
func (b *Buffer[E]) Cap() int { return b.capacity }

// Empty reports whether Len() == 0.
func (b *Buffer[E]) Empty() bool { return b.size == 0 }

// At returns the element at i.
func (b *Buffer[E]) At(i int) (E, error) {
	if i < 0 || i >= b.size {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, b.size)
	}
	return b.data[i], nil
}

// SetAt overwrites the element at i.
func (b *Buffer[E]) SetAt(i int, e E) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, b.size)
	}
	b.data[i] = e
	return nil
}

// Index returns the element at i without a length check. Reading the
// terminator at Len() is allowed on a buffer that owns storage; anything
// else out of range panics like a slice index.
func (b *Buffer[E]) Index(i int) E { return b.data[i] }

// Front returns the first element.
func (b *Buffer[E]) Front() (E, bool) {
	if b.size == 0 {
		return 0, false
	}
	return b.data[0], true
}

// Back returns the last element.
func (b *Buffer[E]) Back() (E, bool) {
	if b.size == 0 {
		return 0, false
	}
	return b.data[b.size-1], true
}

// View borrows the live content. The slice aliases b's storage and is only
// valid until the next mutating call; its capacity is clipped so appending
// to it never writes into the buffer.
func (b *Buffer[E]) View() []E {
	return b.data[:b.size:b.size]
}

// CStr borrows the content followed by its zero terminator, or returns nil
// when b owns no storage. Same validity rules as View.
func (b *Buffer[E]) CStr() []E {
	if b.data == nil {
		return nil
	}
	return b.data[: b.size+1 : b.size+1]
}

// String decodes the content: narrow buffers byte for byte, 16-bit buffers
// as UTF-16 and 32-bit buffers as runes.
func (b *Buffer[E]) String() string {
	switch width[E]() {
	case 1:
		out := make([]byte, b.size)
		for i, e := range b.View() {
			out[i] = byte(e)
		}
		return string(out)
	case 2:
		units := make([]uint16, b.size)
		for i, e := range b.View() {
			units[i] = uint16(e)
		}
		s, err := textenc.DecodeUTF16(units)
		if err != nil {
			b.log().Warn("dcb: decode utf-16", "error", err)
		}
		return s
	default:
		runes := make([]rune, b.size)
		for i, e := range b.View() {
			runes[i] = rune(e)
		}
		return string(runes)
	}
}
