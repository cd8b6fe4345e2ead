package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that a request could not be satisfied.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a non-positive or overflowing element count.
	ErrBadSize = errors.New("alloc: bad allocation size")

	// ErrUnknownBlock indicates a slice that is not live in this allocator,
	// either because it was already released or because another allocator
	// produced it.
	ErrUnknownBlock = errors.New("alloc: unknown or already released block")
)
