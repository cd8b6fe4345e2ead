package dcb

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dcbkit/dcb/alloc"
)

func TestReserve(t *testing.T) {
	b := str("Hello")
	b.Reserve(32)
	require.Equal(t, 32, b.Cap())
	require.Equal(t, "Hello", b.String())
	requireInvariants(t, b)

	b.Reserve(8)
	require.Equal(t, 32, b.Cap(), "Reserve must never shrink")

	b.Reserve(b.Cap())
	require.Equal(t, 32, b.Cap())

	var empty Buffer[uint16]
	empty.Reserve(4)
	require.Equal(t, 4, empty.Cap())
	require.True(t, empty.Empty())
	requireInvariants(t, &empty)
}

func TestGrowth_Doubling(t *testing.T) {
	var b Buffer[byte]
	var caps []int
	for i := 0; i < 100; i++ {
		prev := b.Cap()
		b.PushBack(byte('a' + i%26))
		require.GreaterOrEqual(t, b.Cap(), prev, "capacity must be non-decreasing")
		require.LessOrEqual(t, b.Len(), b.Cap())
		if b.Cap() != prev {
			caps = append(caps, b.Cap())
		}
		requireInvariants(t, &b)
	}
	require.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128}, caps)
}

func TestGrowth_Amortized(t *testing.T) {
	tr := alloc.NewTracking[rune](nil)
	b := New(&Options[rune]{Allocator: tr})
	for k, end := 0, 1<<12; k < end; k++ {
		b.PushBack('x')
	}
	// 1, 2, 4, ... 4096
	require.Equal(t, 13, tr.Allocs)
	require.Equal(t, 1, tr.Live())
}

func TestShrinkToFit(t *testing.T) {
	b := str("Hello")
	b.Reserve(64)
	b.ShrinkToFit()
	require.Equal(t, 5, b.Cap())
	require.Equal(t, "Hello", b.String())
	requireInvariants(t, b)

	b.Resize(0, 0)
	b.ShrinkToFit()
	require.Zero(t, b.Cap())
	requireInvariants(t, b)
}

func TestClear_Idempotent(t *testing.T) {
	tr := alloc.NewTracking[byte](nil)
	b := FromString("Hello", &Options[byte]{Allocator: tr})

	b.Clear()
	require.True(t, b.Empty())
	require.Zero(t, b.Cap())
	require.Zero(t, tr.Live())
	requireInvariants(t, b)

	b.Clear()
	require.True(t, b.Empty())
	require.Equal(t, 1, tr.Frees, "storage must be released exactly once")
}

func TestRelease_ExactlyOnce(t *testing.T) {
	tr := alloc.NewTracking[byte](nil)
	opts := &Options[byte]{Allocator: tr}

	a := FromString("tracked", opts)
	for k, end := 0, 50; k < end; k++ {
		a.PushBack('+')
	}
	c := a.Clone()
	m := c.Move()
	require.NoError(t, a.Replace(0, 3, FromString("TRACKED-AND-LONGER-THAN-BEFORE", opts)))
	require.NoError(t, a.Erase(0, 4))
	a.Resize(200, '.')
	a.ShrinkToFit()

	a.Clear()
	c.Clear()
	m.Clear()

	// The replacement literal is still live.
	require.Equal(t, 1, tr.Live())
	require.Equal(t, tr.Allocs-1, tr.Frees)
}

func TestAllocationFailure_LeavesBufferIntact(t *testing.T) {
	budget := alloc.NewBudget[byte](nil, 7)
	b := FromString("Hello", &Options[byte]{Allocator: budget})
	require.Equal(t, 6, b.Cap())

	b.PushBack('!')
	require.Equal(t, "Hello!", b.String())

	err := allocPanic(t, func() { b.PushBack('?') })
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	require.Equal(t, "Hello!", b.String())
	require.Equal(t, 6, b.Cap())
	requireInvariants(t, b)

	err = allocPanic(t, func() { b.Reserve(100) })
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	require.Equal(t, 6, b.Cap())

	err = allocPanic(t, func() {
		_ = b.Replace(0, 1, FromString("a much longer replacement", nil))
	})
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	require.Equal(t, "Hello!", b.String())
	requireInvariants(t, b)

	budget.SetLimit(1 << 10)
	b.PushBack('?')
	require.Equal(t, "Hello!?", b.String())
}

func TestMmapAllocator(t *testing.T) {
	b, err := WideFromString("mapped storage", &Options[uint16]{Allocator: alloc.Mmap[uint16]{}})
	require.NoError(t, err)

	for k, end := 0, 1000; k < end; k++ {
		b.PushBack('.')
	}
	require.NoError(t, b.Replace(0, 6, FromSlice([]uint16{'M'}, nil)))
	require.True(t, b.StartsWithElems([]uint16{'M', ' ', 's'}))
	require.Equal(t, 1000+len(" storage")+1, b.Len())
	requireInvariants(t, b)
	b.Clear()
}

func TestLogger_ReportsReallocation(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := FromString("log", &Options[byte]{Logger: logger})

	b.Reserve(32)
	require.Contains(t, out.String(), "dcb: reallocate")
	require.Contains(t, out.String(), "new_cap=32")
}

func TestLogger_ReportsFailedRelease(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	tr := alloc.NewTracking[byte](nil)
	b := FromString("x", &Options[byte]{Allocator: tr, Logger: logger})

	// Storage handed to a different allocator is unknown to the tracker.
	b.data = make([]byte, len(b.data))
	b.Clear()
	require.Contains(t, out.String(), "dcb: release failed")
	require.True(t, b.Empty())
}
