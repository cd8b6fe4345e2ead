package dcb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants checks the structural invariants every public operation
// must restore.
func requireInvariants[E Element](t testing.TB, b *Buffer[E]) {
	t.Helper()
	require.LessOrEqual(t, b.size, b.capacity, "size exceeds capacity")
	if b.capacity == 0 {
		require.Nil(t, b.data, "zero capacity must not own storage")
		require.Zero(t, b.size)
		return
	}
	require.NotNil(t, b.data, "non-zero capacity must own storage")
	require.Len(t, b.data, b.capacity+1, "storage must hold capacity plus terminator")
	require.Zero(t, b.data[b.size], "terminator missing at %d", b.size)
}

// allocPanic runs fn and returns the error it panicked with.
func allocPanic(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an allocation panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func str(s string) *Buffer[byte] {
	return FromString(s, nil)
}
