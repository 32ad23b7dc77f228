package encoding

import "iter"

// MaxCountValue is the largest ion count the count codec represents.
const MaxCountValue = float64(1<<32 - 2) // 4294967294

// countFixedPoint rounds v to the nearest integer with a +0.5 bias and
// wraps it to 32 bits. The count codec assumes a non-negative domain;
// negative inputs truncate asymmetrically, preserved for bit-compatibility.
func countFixedPoint(v float64) uint32 {
	return uint32(int64(v + 0.5))
}

// CountEncoder encodes ion-count arrays by rounding each value to the
// nearest non-negative integer and writing it directly through the
// variable-length nibble codec — no prediction, no scaling.
//
// Ion counts are typically small, so most values encode in 2-4 nibbles.
// The encoder performs no range validation of its own.
type CountEncoder struct {
	w     *NibbleWriter
	count int
}

// NewCountEncoder creates a count encoder.
func NewCountEncoder() *CountEncoder {
	return &CountEncoder{
		w: NewNibbleWriter(),
	}
}

// Write encodes a single count, emitting 1-9 nibbles.
func (e *CountEncoder) Write(v float64) {
	e.count++
	e.w.PutInt32(int32(countFixedPoint(v)))
}

// WriteSlice encodes a slice of counts with a single up-front buffer
// growth sized to the worst case.
func (e *CountEncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	e.w.buf.Grow(CountMaxBytes(len(values)))
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the encoded byte slice, including the trailing padding
// nibble when the stream ends on a half byte.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Finish. The caller must not modify it.
func (e *CountEncoder) Bytes() []byte {
	return e.w.Bytes()
}

// Len returns the number of values written since the last Finish.
func (e *CountEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded data.
func (e *CountEncoder) Size() int {
	return e.w.Size()
}

// Reset byte-aligns the output so an independent sequence can be appended.
func (e *CountEncoder) Reset() {
	e.w.Reset()
}

// Finish returns the internal buffer to the pool and re-arms the encoder,
// discarding all accumulated data.
func (e *CountEncoder) Finish() {
	e.w.Finish()
	e.count = 0
}

// CountDecoder decodes payloads produced by CountEncoder.
//
// The decoder is stateless and safe for concurrent use on disjoint inputs.
type CountDecoder struct{}

// NewCountDecoder creates a count decoder.
func NewCountDecoder() CountDecoder {
	return CountDecoder{}
}

// Decode reconstructs the count array from an encoded payload.
//
// Decoding stops when the buffer is exhausted, applying the same
// trailing-padding heuristic as the linear codec. Decoded words are
// interpreted as unsigned, so the full 0..4294967294 domain round-trips.
// A payload that ends inside an integer yields a DecodeError wrapping
// errs.ErrTruncatedPayload with the failing offset.
func (d CountDecoder) Decode(data []byte) ([]float64, error) {
	result := make([]float64, 0, NibbleMaxValues(len(data)))

	r := NewNibbleReader(data)
	for !r.Exhausted() {
		if r.TrailingPadding() {
			break
		}

		x, err := r.Int32()
		if err != nil {
			return nil, err
		}

		result = append(result, float64(uint32(x)))
	}

	return result, nil
}

// All returns an iterator over the decoded counts, stopping early on
// malformed input; use Decode when the failure offset matters.
func (d CountDecoder) All(data []byte) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		r := NewNibbleReader(data)
		for !r.Exhausted() {
			if r.TrailingPadding() {
				break
			}

			x, err := r.Int32()
			if err != nil {
				return
			}

			if !yield(float64(uint32(x))) {
				return
			}
		}
	}
}
