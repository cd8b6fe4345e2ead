package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Span resolves the sub-range [pos, pos+n) of a sequence of length size.
// A negative n selects everything from pos to the end; an n that runs past
// the end is clamped. The returned length is always within bounds.
//
//	n, err := buf.Span(src.Len(), pos, n)
//	if err != nil {
//	    return fmt.Errorf("append: %w", err)
//	}
func Span(size, pos, n int) (int, error) {
	if size < 0 {
		return 0, fmt.Errorf("negative size: %d", size)
	}
	if pos < 0 || pos > size {
		return 0, fmt.Errorf("position %d outside [0, %d]", pos, size)
	}
	rest := size - pos
	if n < 0 || n > rest {
		return rest, nil
	}
	return n, nil
}

// Has reports whether [off, off+n) lies within a sequence of length size.
func Has(size, off, n int) bool {
	if off < 0 || n < 0 || off > size {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= size
}
