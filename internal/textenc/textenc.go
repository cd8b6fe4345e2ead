// Package textenc converts between Go strings and fixed-width code unit
// sequences.
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/dcbkit/internal/buf"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeUTF16 encodes s as UTF-16 code units. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func EncodeUTF16(s string) ([]uint16, error) {
	raw, err := utf16LE.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("textenc: encode utf-16: %w", err)
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = buf.U16LE([]byte(raw[2*i : 2*i+2]))
	}
	return units, nil
}

// DecodeUTF16 decodes UTF-16 code units into a Go string. Unpaired
// surrogates become U+FFFD.
func DecodeUTF16(units []uint16) (string, error) {
	raw := make([]byte, 2*len(units))
	for i, u := range units {
		buf.PutUnitLE(raw[2*i:], 2, uint32(u))
	}
	out, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("textenc: decode utf-16: %w", err)
	}
	return string(out), nil
}

// EncodeCP1252 encodes s in the Windows-1252 code page. Characters outside
// the code page are an error.
func EncodeCP1252(s string) ([]byte, error) {
	out, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode windows-1252: %w", err)
	}
	return out, nil
}

// DecodeCP1252 decodes Windows-1252 bytes into a Go string.
func DecodeCP1252(b []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode windows-1252: %w", err)
	}
	return string(out), nil
}
