package dcb

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/dcbkit/internal/buf"
)

// WriteTo writes the content to w, wide code units in little-endian order.
// It implements io.WriterTo.
func (b *Buffer[E]) WriteTo(w io.Writer) (int64, error) {
	wd := width[E]()
	scratch := make([]byte, min(b.size, b.chunk())*wd)
	var total int64
	for rest := b.View(); len(rest) > 0; {
		n := min(len(rest), b.chunk())
		off := 0
		for _, e := range rest[:n] {
			off += buf.PutUnitLE(scratch[off:], wd, uint32(e))
		}
		written, err := w.Write(scratch[:off])
		total += int64(written)
		if err != nil {
			return total, err
		}
		if written != off {
			return total, io.ErrShortWrite
		}
		rest = rest[n:]
	}
	return total, nil
}

// ReadFrom replaces the content with everything read from r until EOF,
// decoding wide code units as little-endian. Input is consumed in chunks of
// Options.ReadChunk elements, each appended as it arrives. A trailing
// partial code unit yields io.ErrUnexpectedEOF; everything decoded before it
// is kept. It implements io.ReaderFrom.
func (b *Buffer[E]) ReadFrom(r io.Reader) (int64, error) {
	b.Clear()

	wd := width[E]()
	raw := make([]byte, b.chunk()*wd)
	units := make([]E, 0, b.chunk())
	pending := 0
	var total int64
	for {
		n, err := r.Read(raw[pending:])
		total += int64(n)
		avail := pending + n
		whole := avail - avail%wd

		units = units[:0]
		for off := 0; off < whole; off += wd {
			units = append(units, E(buf.UnitLE(raw[off:], wd)))
		}
		b.AppendElems(units...)
		pending = copy(raw, raw[whole:avail])

		switch {
		case errors.Is(err, io.EOF):
			if pending > 0 {
				return total, fmt.Errorf("dcb: %d trailing bytes of a %d-byte code unit: %w", pending, wd, io.ErrUnexpectedEOF)
			}
			return total, nil
		case err != nil:
			return total, err
		}
	}
}

var (
	_ io.WriterTo   = (*Buffer[byte])(nil)
	_ io.ReaderFrom = (*Buffer[byte])(nil)
	_ fmt.Stringer  = (*Buffer[uint16])(nil)
)
