package dcb

// Compare orders b and other lexicographically and returns -1, 0 or +1.
// Elements are compared as unsigned code units over the shared prefix; when
// the prefix is equal the shorter buffer orders first. A nil other is treated
// as empty.
func (b *Buffer[E]) Compare(other *Buffer[E]) int {
	return b.CompareElems(elems(other))
}

// CompareElems is Compare for a plain slice.
func (b *Buffer[E]) CompareElems(other []E) int {
	a := b.View()
	for i, end := 0, min(len(a), len(other)); i < end; i++ {
		x, y := unit(a[i]), unit(other[i])
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	switch {
	case len(a) < len(other):
		return -1
	case len(a) > len(other):
		return 1
	}
	return 0
}

// Equal reports whether b and other hold the same elements.
func (b *Buffer[E]) Equal(other *Buffer[E]) bool {
	return b.EqualElems(elems(other))
}

// EqualElems is Equal for a plain slice.
func (b *Buffer[E]) EqualElems(other []E) bool {
	return len(other) == b.size && b.CompareElems(other) == 0
}

// Less reports whether b orders before other.
func (b *Buffer[E]) Less(other *Buffer[E]) bool {
	return b.Compare(other) < 0
}

// unit widens e to an unsigned code unit so that signed element types order
// the same way as their unsigned counterparts.
func unit[E Element](e E) uint32 {
	switch width[E]() {
	case 1:
		return uint32(uint8(e))
	case 2:
		return uint32(uint16(e))
	default:
		return uint32(e)
	}
}
