package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NRTDP/ms-numpress/errs"
)

func TestNibbleWriter_HeaderVectors(t *testing.T) {
	tests := []struct {
		name string
		x    int32
		want []byte
	}{
		// 0 collapses to the lone header nibble 0x8, padded low.
		{name: "zero", x: 0, want: []byte{0x80}},
		// 23 = 0x17: header 6 (six zero nibbles elided), then 7, 1.
		{name: "small positive", x: 23, want: []byte{0x67, 0x10}},
		// -1: seven one nibbles elided (header 0xf), one 0xf nibble left.
		{name: "minus one", x: -1, want: []byte{0xff}},
		// 12 = 0xc: header 7, then the single nibble c.
		{name: "single nibble value", x: 12, want: []byte{0x7c}},
		// -2 = 0xfffffffe: header 0xf, then nibble e.
		{name: "minus two", x: -2, want: []byte{0xfe}},
		// Top nibble neither 0x0 nor 0xf: uncompressed, 9 nibbles. The
		// value nibbles come LSB-first, so the MSB nibble 7 lands in the
		// high half of the final byte over a zero padding nibble.
		{name: "uncompressed fallback", x: 0x7fffffff, want: []byte{0x0f, 0xff, 0xff, 0xff, 0x70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewNibbleWriter()
			defer w.Finish()

			w.PutInt32(tt.x)
			require.Equal(t, tt.want, w.Bytes())
			require.Equal(t, 1, w.Len())
		})
	}
}

func TestNibbleRoundTrip_Boundaries(t *testing.T) {
	values := []int32{
		0, 1, -1, 2, -2, 7, 8, 15, 16, 23, -23,
		127, 128, -128, 255, 256, -256,
		0xffff, -0x10000, 0x12345678, -0x12345678,
		100000, 200000, -100000,
		math.MaxInt32, math.MinInt32, math.MinInt32 + 1,
	}

	w := NewNibbleWriter()
	defer w.Finish()

	for _, x := range values {
		w.PutInt32(x)
	}
	require.Equal(t, len(values), w.Len())

	r := NewNibbleReader(w.Bytes())
	for i, want := range values {
		got, err := r.Int32()
		require.NoError(t, err, "value %d", i)
		require.Equal(t, want, got, "value %d", i)
	}
}

func TestNibbleRoundTrip_ParityThreading(t *testing.T) {
	// Odd-nibble encodings force every later integer to straddle bytes.
	values := []int32{0, 5, 0, 23, 0, -9, 1 << 20, 0, -1}

	w := NewNibbleWriter()
	defer w.Finish()

	for _, x := range values {
		w.PutInt32(x)
	}

	r := NewNibbleReader(w.Bytes())
	for _, want := range values {
		got, err := r.Int32()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestNibbleReader_Truncated(t *testing.T) {
	w := NewNibbleWriter()
	defer w.Finish()

	w.PutInt32(0x12345678) // 9 nibbles, 5 bytes
	full := w.Bytes()
	require.Len(t, full, 5)

	r := NewNibbleReader(full[:2])
	_, err := r.Int32()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, 2, decErr.Offset)
}

func TestNibbleReader_EmptyInput(t *testing.T) {
	r := NewNibbleReader(nil)
	require.True(t, r.Exhausted())

	_, err := r.Int32()
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestNibbleReader_TrailingPadding(t *testing.T) {
	w := NewNibbleWriter()
	defer w.Finish()

	w.PutInt32(5) // nibbles 7, 5
	w.PutInt32(0) // nibble 8, low half padded with 0
	require.Equal(t, []byte{0x75, 0x80}, w.Bytes())

	r := NewNibbleReader(w.Bytes())

	require.False(t, r.TrailingPadding())
	x, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(5), x)

	// Next nibble is the genuine zero (0x8), not padding.
	require.False(t, r.TrailingPadding())
	x, err = r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(0), x)

	// One zero nibble left: that is the padding.
	require.False(t, r.Exhausted())
	require.True(t, r.TrailingPadding())
}

func TestNibbleReaderAt_Offset(t *testing.T) {
	w := NewNibbleWriter()
	defer w.Finish()

	w.PutInt32(42)
	payload := append([]byte{0xde, 0xad}, w.Bytes()...)

	r := NewNibbleReaderAt(payload, 2)
	require.Equal(t, 2, r.Offset())
	require.False(t, r.Half())

	x, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(42), x)
}

func TestNibbleWriter_ResetAlignsByte(t *testing.T) {
	w := NewNibbleWriter()
	defer w.Finish()

	w.PutInt32(0) // one nibble, half byte pending
	require.Equal(t, 1, w.Size())

	w.Reset()
	w.PutInt32(0) // must start a fresh byte
	require.Equal(t, []byte{0x80, 0x80}, w.Bytes())
	require.Equal(t, 2, w.Len())
}

func TestNibbleWriter_Finish(t *testing.T) {
	w := NewNibbleWriter()
	w.PutInt32(23)
	require.NotEmpty(t, w.Bytes())

	w.Finish()
	require.Empty(t, w.Bytes())
	require.Equal(t, 0, w.Len())
	require.Equal(t, 0, w.Size())

	// Writer is re-armed after Finish.
	w.PutInt32(0)
	require.Equal(t, []byte{0x80}, w.Bytes())
	w.Finish()
}

func TestNibbleRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Full-width random values exercise every header class, including the
	// 9-nibble uncompressed fallback, through one shared parity cursor.
	values := make([]int32, 200000)
	for i := range values {
		values[i] = int32(rng.Uint32())
	}

	w := NewNibbleWriter()
	defer w.Finish()

	for _, x := range values {
		w.PutInt32(x)
	}

	r := NewNibbleReader(w.Bytes())
	for i, want := range values {
		got, err := r.Int32()
		require.NoError(t, err, "value %d", i)
		require.Equal(t, want, got, "value %d", i)
	}
}

func TestNibbleRoundTrip_Sweep(t *testing.T) {
	// Dense sweep around every nibble-boundary magnitude, both signs.
	w := NewNibbleWriter()
	defer w.Finish()

	var values []int32
	for shift := 0; shift < 31; shift += 4 {
		base := int32(1) << shift
		for _, d := range []int32{-2, -1, 0, 1, 2} {
			values = append(values, base+d, -(base + d))
		}
	}

	for _, x := range values {
		w.PutInt32(x)
	}

	r := NewNibbleReader(w.Bytes())
	for i, want := range values {
		got, err := r.Int32()
		require.NoError(t, err, "value %d", i)
		require.Equal(t, want, got, "value %d", i)
	}
}
