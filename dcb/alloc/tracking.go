package alloc

import "fmt"

// Tracking records live blocks of an inner allocator. The zero value tracks
// Heap allocations.
type Tracking[E any] struct {
	inner Allocator[E]
	live  map[uintptr]int

	// Allocs and Frees count successful calls.
	Allocs int
	Frees  int
}

// NewTracking wraps inner. A nil inner means Heap.
func NewTracking[E any](inner Allocator[E]) *Tracking[E] {
	if inner == nil {
		inner = Heap[E]{}
	}
	return &Tracking[E]{inner: inner, live: make(map[uintptr]int)}
}

// Allocate implements Allocator.
func (t *Tracking[E]) Allocate(n int) ([]E, error) {
	s, err := t.next().Allocate(n)
	if err != nil {
		return nil, err
	}
	if t.live == nil {
		t.live = make(map[uintptr]int)
	}
	t.live[blockKey(s)] = len(s)
	t.Allocs++
	return s, nil
}

// Deallocate implements Allocator. Releasing a block twice, or a block this
// allocator never produced, returns ErrUnknownBlock.
func (t *Tracking[E]) Deallocate(s []E) error {
	key := blockKey(s)
	n, ok := t.live[key]
	if !ok || n != cap(s) {
		return fmt.Errorf("%w: %d elements", ErrUnknownBlock, cap(s))
	}
	if err := t.next().Deallocate(s); err != nil {
		return err
	}
	delete(t.live, key)
	t.Frees++
	return nil
}

func (t *Tracking[E]) next() Allocator[E] {
	if t.inner == nil {
		return Heap[E]{}
	}
	return t.inner
}

// Live returns the number of blocks allocated and not yet released.
func (t *Tracking[E]) Live() int { return len(t.live) }

// LiveElements returns the total element count of live blocks.
func (t *Tracking[E]) LiveElements() int {
	total := 0
	for _, n := range t.live {
		total += n
	}
	return total
}
