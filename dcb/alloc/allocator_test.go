package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AllocateZeroed(t *testing.T) {
	s, err := Heap[uint16]{}.Allocate(8)
	require.NoError(t, err)
	require.Len(t, s, 8)
	require.Equal(t, 8, cap(s))
	for i, v := range s {
		require.Zero(t, v, "element %d not zeroed", i)
	}
	require.NoError(t, Heap[uint16]{}.Deallocate(s))
}

func TestHeap_BadSizes(t *testing.T) {
	_, err := Heap[byte]{}.Allocate(0)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = Heap[byte]{}.Allocate(-3)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = Heap[uint32]{}.Allocate(math.MaxInt / 2)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestMmap_AllocateWriteRelease(t *testing.T) {
	var m Mmap[uint32]
	s, err := m.Allocate(1024)
	require.NoError(t, err)
	require.Len(t, s, 1024)

	for i := range s {
		require.Zero(t, s[i])
		s[i] = uint32(i)
	}
	assert.Equal(t, uint32(1023), s[1023])

	require.NoError(t, m.Deallocate(s))
	require.NoError(t, m.Deallocate(nil), "releasing nil is a no-op")
}

func TestTracking_ExactlyOnce(t *testing.T) {
	tr := NewTracking[byte](nil)

	a, err := tr.Allocate(4)
	require.NoError(t, err)
	b, err := tr.Allocate(32)
	require.NoError(t, err)

	require.Equal(t, 2, tr.Live())
	require.Equal(t, 36, tr.LiveElements())

	require.NoError(t, tr.Deallocate(a))
	require.ErrorIs(t, tr.Deallocate(a), ErrUnknownBlock, "double free must be reported")

	foreign := make([]byte, 4)
	require.ErrorIs(t, tr.Deallocate(foreign), ErrUnknownBlock)

	require.NoError(t, tr.Deallocate(b))
	require.Zero(t, tr.Live())
	require.Equal(t, 2, tr.Allocs)
	require.Equal(t, 2, tr.Frees)
}

func TestTracking_ZeroValue(t *testing.T) {
	var tr Tracking[byte]

	s, err := tr.Allocate(4)
	require.NoError(t, err)
	require.Len(t, s, 4)
	require.Equal(t, 1, tr.Live())

	require.NoError(t, tr.Deallocate(s))
	require.Zero(t, tr.Live())
	require.ErrorIs(t, tr.Deallocate(s), ErrUnknownBlock)
}

func TestBudget_ZeroValue(t *testing.T) {
	var b Budget[uint16]

	_, err := b.Allocate(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	b.SetLimit(4)
	s, err := b.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, 4, b.Used())

	require.NoError(t, b.Deallocate(s))
	require.Zero(t, b.Used())
}

func TestTracking_PropagatesInnerFailure(t *testing.T) {
	tr := NewTracking[byte](NewBudget[byte](nil, 8))

	_, err := tr.Allocate(16)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Zero(t, tr.Live())
	require.Zero(t, tr.Allocs)
}

func TestBudget_Limit(t *testing.T) {
	b := NewBudget[rune](nil, 10)

	s, err := b.Allocate(6)
	require.NoError(t, err)
	require.Equal(t, 6, b.Used())

	_, err = b.Allocate(5)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Equal(t, 6, b.Used(), "failed request must not consume budget")

	require.NoError(t, b.Deallocate(s))
	require.Zero(t, b.Used())

	s, err = b.Allocate(10)
	require.NoError(t, err)

	b.SetLimit(20)
	_, err = b.Allocate(10)
	require.NoError(t, err)
	require.Equal(t, 20, b.Used())
	require.NoError(t, b.Deallocate(s))
}
