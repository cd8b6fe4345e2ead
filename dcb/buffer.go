package dcb

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/joshuapare/dcbkit/dcb/alloc"
	"github.com/joshuapare/dcbkit/internal/buf"
)

// Element is the set of code unit types a Buffer can hold.
type Element interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

const (
	// Npos as a length selects everything up to the end of the sequence.
	Npos = -1

	// NotFound is returned by the search methods when there is no match.
	NotFound = -1
)

// Buffer is a growable sequence of code units with a zero terminator kept
// one past the content.
//
// Invariants:
//   - size <= capacity
//   - capacity == 0 if and only if data == nil
//   - data != nil implies len(data) == capacity+1 and data[size] == 0
//
// The zero value is an empty buffer using heap storage.
type Buffer[E Element] struct {
	data     []E
	size     int
	capacity int

	alloc     alloc.Allocator[E]
	logger    *slog.Logger
	readChunk int
}

// New returns an empty buffer. It owns no storage until the first write.
func New[E Element](opts *Options[E]) *Buffer[E] {
	b := &Buffer[E]{}
	b.configure(opts)
	return b
}

// FromSlice returns a buffer holding a copy of src.
func FromSlice[E Element](src []E, opts *Options[E]) *Buffer[E] {
	b := New(opts)
	b.allocateAndCopy(src)
	return b
}

// FromTerminated returns a buffer holding src up to, not including, its
// first zero element. Without a zero element all of src is copied.
func FromTerminated[E Element](src []E, opts *Options[E]) *Buffer[E] {
	n := 0
	for n < len(src) && src[n] != 0 {
		n++
	}
	return FromSlice(src[:n], opts)
}

// Fill returns a buffer holding n copies of e. It panics if n is negative.
func Fill[E Element](n int, e E, opts *Options[E]) *Buffer[E] {
	if n < 0 {
		panic("dcb: negative Fill count")
	}
	b := New(opts)
	data := b.adopt(n)
	for i := 0; i < n; i++ {
		data[i] = e
	}
	return b
}

// Sub returns a buffer holding src[pos:pos+n]. A negative n (Npos) selects
// the rest of src, and n is clamped to the elements available. The result
// inherits src's options.
func Sub[E Element](src *Buffer[E], pos, n int) (*Buffer[E], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}
	n, err := buf.Span(src.size, pos, n)
	if err != nil {
		return nil, fmt.Errorf("%w: sub: %v", ErrOutOfRange, err)
	}
	b := src.inherit()
	b.allocateAndCopy(src.data[pos : pos+n])
	return b, nil
}

// Clone returns a deep copy of b with the same options.
func (b *Buffer[E]) Clone() *Buffer[E] {
	c := b.inherit()
	if b.data != nil {
		c.allocateAndCopy(b.data[:b.size])
	}
	return c
}

// Move returns a buffer that takes over b's storage and options. b is left
// empty.
func (b *Buffer[E]) Move() *Buffer[E] {
	m := &Buffer[E]{}
	m.Swap(b)
	b.alloc, b.logger, b.readChunk = m.alloc, m.logger, m.readChunk
	return m
}

// MoveFrom releases b's storage and takes over src's storage and allocator.
// src is left empty. Moving a buffer into itself is a no-op.
func (b *Buffer[E]) MoveFrom(src *Buffer[E]) error {
	if src == nil {
		return fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}
	if src == b {
		return nil
	}
	b.deallocate()
	b.Swap(src)
	return nil
}

// Assign replaces b's content with a deep copy of src, adopting src's
// options. Assigning a buffer to itself is a no-op.
func (b *Buffer[E]) Assign(src *Buffer[E]) error {
	if src == nil {
		return fmt.Errorf("%w: nil source buffer", ErrInvalidArgument)
	}
	if src == b {
		return nil
	}
	c := src.Clone()
	b.Swap(c)
	c.deallocate()
	return nil
}

// Swap exchanges the storage and options of b and other.
func (b *Buffer[E]) Swap(other *Buffer[E]) {
	*b, *other = *other, *b
}

// width returns the size of one element in bytes.
func width[E Element]() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}
