package encoding

import (
	"github.com/NRTDP/ms-numpress/errs"
	"github.com/NRTDP/ms-numpress/internal/pool"
)

// topNibbleMask selects the most significant nibble of a 32-bit word.
const topNibbleMask = uint32(0xf0000000)

// nibblesPerWord is the number of nibbles in a 32-bit integer.
const nibblesPerWord = 8

// NibbleWriter appends 4-bit nibbles to a pooled byte buffer, packing two
// nibbles per byte with the high nibble written first.
//
// The writer keeps an explicit parity state: after an odd number of
// nibbles, the last byte of the buffer holds the pending nibble in its
// high half and zero in its low half. The buffer is therefore always a
// valid payload — the trailing zero low nibble doubles as the padding the
// wire format requires, and a subsequent nibble simply fills it in.
//
// PutInt32 implements the variable-length integer representation shared by
// the linear and count codecs:
//
//   - Header nibble 0-8: the value's top nibbles are zero; the header is
//     the count of elided zero nibbles, followed by the remaining nibbles
//     of the value in little-endian nibble order. Header 8 alone encodes 0.
//   - Header nibble 9-15: the value's top nibbles are all-ones (negative
//     values close to zero); the header is 8 plus the count of elided
//     one nibbles, followed by the remaining nibbles little-endian.
//     At most 7 one nibbles are elided, so -1 encodes as 0xf, 0xf.
//   - Header nibble 0 with no elided nibbles is the uncompressed fallback:
//     all 8 nibbles follow, 9 nibbles total.
type NibbleWriter struct {
	buf   *pool.ByteBuffer
	half  bool
	count int
}

// NewNibbleWriter creates a nibble writer backed by a pooled buffer.
//
// Call Finish to return the buffer to the pool when the writer is no
// longer needed.
func NewNibbleWriter() *NibbleWriter {
	return &NibbleWriter{
		buf: pool.GetPayloadBuffer(),
	}
}

// WriteNibble appends a single nibble. Only the low 4 bits of n are used.
func (w *NibbleWriter) WriteNibble(n byte) {
	if !w.half {
		_ = w.buf.WriteByte((n & 0xf) << 4)
		w.half = true

		return
	}

	w.buf.B[w.buf.Len()-1] |= n & 0xf
	w.half = false
}

// PutInt32 appends the variable-length encoding of x, emitting between 1
// and 9 nibbles.
func (w *NibbleWriter) PutInt32(x int32) {
	ux := uint32(x)
	w.count++

	switch {
	case ux&topNibbleMask == 0:
		// Leading zero nibbles elided behind the header.
		l := nibblesPerWord
		for i := range nibblesPerWord {
			if ux&(topNibbleMask>>(4*i)) != 0 {
				l = i
				break
			}
		}
		w.WriteNibble(byte(l))
		w.writeTrailing(ux, l)
	case ux&topNibbleMask == topNibbleMask:
		// Leading one nibbles elided; header offset by 8. The first nibble
		// examined is known to be all-ones, so at most 7 are elided.
		l := nibblesPerWord - 1
		for i := range nibblesPerWord {
			m := topNibbleMask >> (4 * i)
			if ux&m != m {
				l = i
				break
			}
		}
		w.WriteNibble(byte(nibblesPerWord + l))
		w.writeTrailing(ux, l)
	default:
		// Top nibble is neither all-zero nor all-one: uncompressed fallback.
		w.WriteNibble(0)
		w.writeTrailing(ux, 0)
	}
}

// writeTrailing emits the 8-l remaining nibbles of ux, least significant
// nibble first.
func (w *NibbleWriter) writeTrailing(ux uint32, l int) {
	for j := 0; j < nibblesPerWord-l; j++ {
		w.WriteNibble(byte(ux >> (4 * j)))
	}
}

// Bytes returns the encoded byte slice, including the implicit zero
// padding nibble when an odd number of nibbles has been written.
//
// The returned slice is valid until the next call to WriteNibble, PutInt32,
// or Finish. The caller must not modify it.
func (w *NibbleWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of integers written with PutInt32.
func (w *NibbleWriter) Len() int {
	return w.count
}

// Size returns the size in bytes of the encoded data.
func (w *NibbleWriter) Size() int {
	return w.buf.Len()
}

// Reset byte-aligns the writer so a new independent nibble stream can be
// appended. Accumulated data remains available through Bytes, Len and Size.
func (w *NibbleWriter) Reset() {
	w.half = false
}

// Finish returns the internal buffer to the pool and re-arms the writer
// with a fresh one, discarding all accumulated data.
func (w *NibbleWriter) Finish() {
	pool.PutPayloadBuffer(w.buf)
	w.buf = pool.GetPayloadBuffer()
	w.half = false
	w.count = 0
}

// NibbleReader consumes nibbles from an encoded byte slice, mirroring
// NibbleWriter. The cursor is an explicit (byte offset, parity) pair: with
// parity clear the next read takes the high nibble of the current byte
// without advancing; with parity set it takes the low nibble and advances.
type NibbleReader struct {
	data []byte
	pos  int
	half bool
}

// NewNibbleReader creates a reader positioned at the start of data.
func NewNibbleReader(data []byte) *NibbleReader {
	return &NibbleReader{data: data}
}

// NewNibbleReaderAt creates a reader positioned at the given byte offset,
// for payloads that carry a fixed-width prefix before the nibble stream.
func NewNibbleReaderAt(data []byte, offset int) *NibbleReader {
	return &NibbleReader{data: data, pos: offset}
}

// Offset returns the byte offset of the cursor.
func (r *NibbleReader) Offset() int {
	return r.pos
}

// Half reports whether the next nibble read is the low half of the
// current byte.
func (r *NibbleReader) Half() bool {
	return r.half
}

// Exhausted reports whether no nibbles remain.
func (r *NibbleReader) Exhausted() bool {
	return r.pos >= len(r.data)
}

// TrailingPadding reports whether the remaining input is exactly one low
// nibble that is not 0x8.
//
// 0x8 is the one-nibble encoding of integer zero, the only value that fits
// in a single nibble; every other lone final nibble can only be the zero
// padding the writer appends to complete the last byte. This check is the
// format's inherited termination heuristic — a genuine final 0x8 is never
// misread as padding because padding nibbles are always zero.
func (r *NibbleReader) TrailingPadding() bool {
	return r.half && r.pos == len(r.data)-1 && r.data[r.pos]&0xf != 0x8
}

// ReadNibble returns the next nibble, or a DecodeError wrapping
// errs.ErrTruncatedPayload when the input is exhausted.
func (r *NibbleReader) ReadNibble() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, &DecodeError{Offset: r.pos, Half: r.half, Err: errs.ErrTruncatedPayload}
	}

	var n byte
	if !r.half {
		n = r.data[r.pos] >> 4
	} else {
		n = r.data[r.pos] & 0xf
		r.pos++
	}
	r.half = !r.half

	return n, nil
}

// Int32 decodes one variable-length integer, the lossless reverse of
// NibbleWriter.PutInt32.
//
// A truncated stream yields a DecodeError identifying the byte offset and
// nibble parity where input ran out.
func (r *NibbleReader) Int32() (int32, error) {
	head, err := r.ReadNibble()
	if err != nil {
		return 0, err
	}

	var res uint32
	n := int(head)
	if head > nibblesPerWord {
		// Leading ones: pre-fill n sign-extension nibbles.
		n = int(head) - nibblesPerWord
		for i := range n {
			res |= topNibbleMask >> (4 * i)
		}
	}

	if n == nibblesPerWord {
		return int32(res), nil
	}

	for i := n; i < nibblesPerWord; i++ {
		nb, err := r.ReadNibble()
		if err != nil {
			return 0, err
		}
		res |= uint32(nb) << (4 * (i - n))
	}

	return int32(res), nil
}
