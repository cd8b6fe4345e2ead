package alloc

import "fmt"

// Budget caps the number of live elements handed out by an inner allocator.
// The zero value wraps Heap with a limit of zero, so it refuses every
// allocation until SetLimit raises it.
type Budget[E any] struct {
	inner Allocator[E]
	limit int
	used  int
}

// NewBudget wraps inner with a limit of live elements. A nil inner means Heap.
func NewBudget[E any](inner Allocator[E], limit int) *Budget[E] {
	if inner == nil {
		inner = Heap[E]{}
	}
	return &Budget[E]{inner: inner, limit: limit}
}

// Allocate implements Allocator.
func (b *Budget[E]) Allocate(n int) ([]E, error) {
	if n > b.limit-b.used {
		return nil, fmt.Errorf("%w: %d elements requested, %d of %d in use", ErrOutOfMemory, n, b.used, b.limit)
	}
	s, err := b.next().Allocate(n)
	if err != nil {
		return nil, err
	}
	b.used += len(s)
	return s, nil
}

// Deallocate implements Allocator.
func (b *Budget[E]) Deallocate(s []E) error {
	if err := b.next().Deallocate(s); err != nil {
		return err
	}
	b.used -= cap(s)
	return nil
}

func (b *Budget[E]) next() Allocator[E] {
	if b.inner == nil {
		return Heap[E]{}
	}
	return b.inner
}

// Used returns the number of live elements.
func (b *Budget[E]) Used() int { return b.used }

// SetLimit changes the limit. Live blocks are unaffected.
func (b *Budget[E]) SetLimit(limit int) { b.limit = limit }
