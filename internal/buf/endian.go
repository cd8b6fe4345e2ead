// Package buf contains bounds arithmetic and little-endian codecs shared by
// the buffer implementation.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutUnitLE writes v into b as a little-endian code unit of the given width
// (1, 2 or 4 bytes) and returns the number of bytes written.
func PutUnitLE(b []byte, width int, v uint32) int {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	default:
		binary.LittleEndian.PutUint32(b, v)
		return 4
	}
	return width
}

// UnitLE reads a little-endian code unit of the given width from b.
// Returns 0 when b is too short.
func UnitLE(b []byte, width int) uint32 {
	switch width {
	case 1:
		if len(b) < 1 {
			return 0
		}
		return uint32(b[0])
	case 2:
		return uint32(U16LE(b))
	default:
		return U32LE(b)
	}
}
