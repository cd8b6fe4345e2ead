package dcb

import (
	"fmt"

	"github.com/joshuapare/dcbkit/internal/textenc"
)

// FromString returns a narrow buffer holding the bytes of s.
func FromString(s string, opts *Options[byte]) *Buffer[byte] {
	return FromSlice([]byte(s), opts)
}

// WideFromString returns a buffer holding s encoded as UTF-16 code units.
func WideFromString(s string, opts *Options[uint16]) (*Buffer[uint16], error) {
	units, err := textenc.EncodeUTF16(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return FromSlice(units, opts), nil
}

// RunesFromString returns a buffer holding the runes of s.
func RunesFromString(s string, opts *Options[rune]) *Buffer[rune] {
	return FromSlice([]rune(s), opts)
}

// FromCP1252 returns a narrow buffer holding s encoded in the Windows-1252
// code page. Characters outside the code page are rejected.
func FromCP1252(s string, opts *Options[byte]) (*Buffer[byte], error) {
	raw, err := textenc.EncodeCP1252(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return FromSlice(raw, opts), nil
}

// DecodeCP1252 decodes a narrow buffer holding Windows-1252 text.
func DecodeCP1252(b *Buffer[byte]) (string, error) {
	if b == nil {
		return "", fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	return textenc.DecodeCP1252(b.View())
}
