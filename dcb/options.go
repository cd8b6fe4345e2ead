package dcb

import (
	"io"
	"log/slog"

	"github.com/joshuapare/dcbkit/dcb/alloc"
)

// DefaultReadChunk is the number of elements ReadFrom requests per read.
const DefaultReadChunk = 128

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures a buffer at construction time. Buffers derived from
// another buffer (Sub, Clone, Move) inherit its configuration.
type Options[E Element] struct {
	// Allocator supplies and reclaims storage.
	// Default: alloc.Heap
	Allocator alloc.Allocator[E]

	// Logger receives Debug events for reallocations and Warn events for
	// failed releases.
	// Default: discard
	Logger *slog.Logger

	// ReadChunk is the number of elements ReadFrom requests per read.
	// Default: DefaultReadChunk
	ReadChunk int
}

// DefaultOptions returns the options used when nil is passed to a constructor.
func DefaultOptions[E Element]() *Options[E] {
	return &Options[E]{
		Allocator: alloc.Heap[E]{},
		Logger:    discardLogger,
		ReadChunk: DefaultReadChunk,
	}
}

func (b *Buffer[E]) configure(opts *Options[E]) {
	if opts == nil {
		return
	}
	b.alloc = opts.Allocator
	b.logger = opts.Logger
	b.readChunk = opts.ReadChunk
}

// inherit returns an empty buffer sharing b's configuration.
func (b *Buffer[E]) inherit() *Buffer[E] {
	return &Buffer[E]{alloc: b.alloc, logger: b.logger, readChunk: b.readChunk}
}

func (b *Buffer[E]) allocator() alloc.Allocator[E] {
	if b.alloc == nil {
		return alloc.Heap[E]{}
	}
	return b.alloc
}

func (b *Buffer[E]) log() *slog.Logger {
	if b.logger == nil {
		return discardLogger
	}
	return b.logger
}

func (b *Buffer[E]) chunk() int {
	if b.readChunk <= 0 {
		return DefaultReadChunk
	}
	return b.readChunk
}

// Allocator returns the allocator backing b.
func (b *Buffer[E]) Allocator() alloc.Allocator[E] {
	return b.allocator()
}
