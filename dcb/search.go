package dcb

import "slices"

// Find returns the position of the first occurrence of needle at or after
// start, or NotFound. An empty (or nil) needle matches at start itself as
// long as start is within [0, Len()].
func (b *Buffer[E]) Find(needle *Buffer[E], start int) int {
	return b.FindElems(elems(needle), start)
}

// FindElems is Find for a plain slice.
func (b *Buffer[E]) FindElems(needle []E, start int) int {
	if start < 0 || start > b.size {
		return NotFound
	}
	if len(needle) == 0 {
		return start
	}
	hay := b.data[start:b.size]
	last := len(hay) - len(needle)
	for i := 0; i <= last; {
		j := slices.Index(hay[i:last+1], needle[0])
		if j < 0 {
			break
		}
		i += j
		if slices.Equal(hay[i:i+len(needle)], needle) {
			return start + i
		}
		i++
	}
	return NotFound
}

// Contains reports whether needle occurs anywhere in b.
func (b *Buffer[E]) Contains(needle *Buffer[E]) bool {
	return b.Find(needle, 0) != NotFound
}

// StartsWith reports whether b begins with prefix.
func (b *Buffer[E]) StartsWith(prefix *Buffer[E]) bool {
	return b.StartsWithElems(elems(prefix))
}

// StartsWithElems is StartsWith for a plain slice.
func (b *Buffer[E]) StartsWithElems(prefix []E) bool {
	if len(prefix) > b.size {
		return false
	}
	return b.FindElems(prefix, 0) == 0
}

// EndsWith reports whether b ends with suffix.
func (b *Buffer[E]) EndsWith(suffix *Buffer[E]) bool {
	return b.EndsWithElems(elems(suffix))
}

// EndsWithElems is EndsWith for a plain slice.
func (b *Buffer[E]) EndsWithElems(suffix []E) bool {
	if len(suffix) > b.size {
		return false
	}
	pos := b.size - len(suffix)
	return b.FindElems(suffix, pos) == pos
}

// elems returns the content of b, treating nil as empty.
func elems[E Element](b *Buffer[E]) []E {
	if b == nil {
		return nil
	}
	return b.View()
}
