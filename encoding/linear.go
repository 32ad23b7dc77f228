package encoding

import (
	"iter"

	"github.com/NRTDP/ms-numpress/endian"
	"github.com/NRTDP/ms-numpress/errs"
)

// LinearFixedPointScale converts doubles to the 5-decimal fixed-point
// integer domain used by the linear codec. The scale is part of the wire
// format and is not configurable.
const LinearFixedPointScale = 100000.0

// LinearMaxValue is the largest magnitude that survives a round trip
// through the fixed-point domain.
//
// The encoder scales into an unsigned 32-bit word, but decoding
// reinterprets the reconstructed word as signed (an inherited quirk of the
// format), so the invertible window is the int32 range divided by the
// scale, about ±21474.83647. Larger magnitudes alias to other values
// rather than failing, which is why callers must reject them up front.
const LinearMaxValue = float64(1<<31-1) / LinearFixedPointScale

// linearFixedPoint scales v into the fixed-point domain: +0.5 bias, then
// truncation toward zero, wrapped to 32 bits. The bias rounds non-negative
// values half-up; for negative values the truncation is asymmetric. This
// matches the reference cast behavior and is preserved for
// bit-compatibility with existing archives.
func linearFixedPoint(v float64) uint32 {
	return uint32(int64(v*LinearFixedPointScale + 0.5))
}

// LinearEncoder encodes double arrays using fixed-point linear-prediction
// residuals.
//
// The first two values are stored verbatim as little-endian 32-bit
// fixed-point words — no prediction is possible yet. Every subsequent
// value is predicted by linear extrapolation from the previous two,
//
//	extrapol = v[i-1] + (v[i-1] - v[i-2])
//
// and only the residual (actual minus predicted) is written through the
// variable-length nibble codec. For smooth sequences such as m/z arrays
// the residuals stay close to zero and encode in one or two nibbles.
//
// The encoded values are quantized to the fixed-point grid: round trips
// are accurate to within ±5e-6 of the original for values inside
// ±LinearMaxValue. The encoder performs no range validation of its own.
type LinearEncoder struct {
	w      *NibbleWriter
	engine endian.EndianEngine
	prev   uint32
	prev2  uint32
	n      int // position within the current sequence
	count  int
}

// NewLinearEncoder creates a linear-prediction encoder.
//
// The engine must be the little-endian engine for numpress-compatible
// payloads; the parameter exists so the byte order is explicit at the
// call site.
func NewLinearEncoder(engine endian.EndianEngine) *LinearEncoder {
	return &LinearEncoder{
		w:      NewNibbleWriter(),
		engine: engine,
	}
}

// Write encodes a single value.
//
// The first two writes of a sequence emit 4 raw bytes each; later writes
// emit 1-9 nibbles of residual.
func (e *LinearEncoder) Write(v float64) {
	fx := linearFixedPoint(v)
	e.n++
	e.count++

	if e.n <= 2 {
		e.w.buf.B = e.engine.AppendUint32(e.w.buf.B, fx)
	} else {
		extrapol := e.prev + (e.prev - e.prev2)
		e.w.PutInt32(int32(fx - extrapol))
	}

	e.prev2 = e.prev
	e.prev = fx
}

// WriteSlice encodes a slice of values with a single up-front buffer
// growth sized to the worst case.
func (e *LinearEncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	e.w.buf.Grow(LinearMaxBytes(len(values)))
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the encoded byte slice, including the trailing padding
// nibble when the residual stream ends on a half byte.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Finish. The caller must not modify it.
func (e *LinearEncoder) Bytes() []byte {
	return e.w.Bytes()
}

// Len returns the number of values written since the last Finish.
func (e *LinearEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded data.
func (e *LinearEncoder) Size() int {
	return e.w.Size()
}

// Reset clears the prediction window and byte-aligns the output so an
// independent sequence can be appended. Accumulated data remains available
// through Bytes, Len and Size; the caller is responsible for recording the
// byte offsets of the individual sequences.
func (e *LinearEncoder) Reset() {
	e.w.Reset()
	e.prev = 0
	e.prev2 = 0
	e.n = 0
}

// Finish returns the internal buffer to the pool and re-arms the encoder,
// discarding all accumulated data.
func (e *LinearEncoder) Finish() {
	e.w.Finish()
	e.prev = 0
	e.prev2 = 0
	e.n = 0
	e.count = 0
}

// LinearDecoder decodes payloads produced by LinearEncoder.
//
// The decoder is stateless and safe for concurrent use on disjoint inputs.
type LinearDecoder struct {
	engine endian.EndianEngine
}

// NewLinearDecoder creates a linear-prediction decoder using the specified
// endian engine.
func NewLinearDecoder(engine endian.EndianEngine) LinearDecoder {
	return LinearDecoder{engine: engine}
}

// Decode reconstructs the value array from an encoded payload.
//
// The output length is derived from the payload itself: decoding stops
// when the buffer is exhausted, treating a lone final nibble as padding
// unless it equals 0x8 (see NibbleReader.TrailingPadding). The result
// holds at most 2 + 2×byteCount values.
//
// Payloads of 0 and 4 bytes decode to zero and one value respectively;
// any other length below the 8-byte fixed-point header is
// errs.ErrPayloadTooShort. A payload that ends inside a residual yields a
// DecodeError wrapping errs.ErrTruncatedPayload with the failing offset.
func (d LinearDecoder) Decode(data []byte) ([]float64, error) {
	switch {
	case len(data) == 0:
		return nil, nil
	case len(data) == 4:
		return []float64{float64(int32(d.engine.Uint32(data))) / LinearFixedPointScale}, nil
	case len(data) < 8:
		return nil, &DecodeError{Offset: len(data), Err: errs.ErrPayloadTooShort}
	}

	prev2 := d.engine.Uint32(data[0:4])
	prev := d.engine.Uint32(data[4:8])

	result := make([]float64, 2, 2+NibbleMaxValues(len(data)-8))
	result[0] = float64(int32(prev2)) / LinearFixedPointScale
	result[1] = float64(int32(prev)) / LinearFixedPointScale

	r := NewNibbleReaderAt(data, 8)
	for !r.Exhausted() {
		if r.TrailingPadding() {
			break
		}

		diff, err := r.Int32()
		if err != nil {
			return nil, err
		}

		extrapol := prev + (prev - prev2)
		y := extrapol + uint32(diff)
		result = append(result, float64(int32(y))/LinearFixedPointScale)
		prev2 = prev
		prev = y
	}

	return result, nil
}

// All returns an iterator over the decoded values.
//
// The iterator yields values in sequence and stops early on malformed
// input; use Decode when the failure offset matters.
func (d LinearDecoder) All(data []byte) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) < 4 {
			return
		}

		prev2 := d.engine.Uint32(data[0:4])
		if !yield(float64(int32(prev2)) / LinearFixedPointScale) {
			return
		}
		if len(data) < 8 {
			return
		}

		prev := d.engine.Uint32(data[4:8])
		if !yield(float64(int32(prev)) / LinearFixedPointScale) {
			return
		}

		r := NewNibbleReaderAt(data, 8)
		for !r.Exhausted() {
			if r.TrailingPadding() {
				break
			}

			diff, err := r.Int32()
			if err != nil {
				return
			}

			extrapol := prev + (prev - prev2)
			y := extrapol + uint32(diff)
			if !yield(float64(int32(y)) / LinearFixedPointScale) {
				return
			}
			prev2 = prev
			prev = y
		}
	}
}
