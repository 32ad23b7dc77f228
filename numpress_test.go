package numpress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NRTDP/ms-numpress/encoding"
	"github.com/NRTDP/ms-numpress/errs"
	"github.com/NRTDP/ms-numpress/format"
)

func TestEncodeDecodeLinear(t *testing.T) {
	mz := []float64{
		200.00018, 200.00043, 200.00067, 200.00091,
		200.00116, 200.00140, 200.00165, 200.00189,
	}

	payload, err := EncodeLinear(mz)
	require.NoError(t, err)
	require.LessOrEqual(t, len(payload), encoding.LinearMaxBytes(len(mz)))

	decoded, err := DecodeLinear(payload)
	require.NoError(t, err)
	require.Len(t, decoded, len(mz))

	for i, want := range mz {
		require.InDelta(t, want, decoded[i], 5e-6, "value %d", i)
	}
}

func TestEncodeLinear_RejectsOverflow(t *testing.T) {
	_, err := EncodeLinear([]float64{1.0, 30000.0})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrFixedPointOverflow)

	_, err = EncodeLinear([]float64{-30000.0})
	require.ErrorIs(t, err, errs.ErrFixedPointOverflow)

	_, err = EncodeLinear([]float64{encoding.LinearMaxValue})
	require.NoError(t, err)
}

func TestEncodeDecodeCount(t *testing.T) {
	counts := []float64{0, 3, 12, 1, 0, 250, 1023, 4294967294}

	payload, err := EncodeCount(counts)
	require.NoError(t, err)
	require.LessOrEqual(t, len(payload), encoding.CountMaxBytes(len(counts)))

	decoded, err := DecodeCount(payload)
	require.NoError(t, err)
	require.Equal(t, counts, decoded)
}

func TestEncodeCount_RejectsOutOfDomain(t *testing.T) {
	_, err := EncodeCount([]float64{1, -1})
	require.ErrorIs(t, err, errs.ErrNegativeCount)

	_, err = EncodeCount([]float64{4294967295})
	require.ErrorIs(t, err, errs.ErrCountOverflow)
}

func TestEncodeDecodeTwoByteFloat(t *testing.T) {
	intensities := []float64{1.0, 150.5, 98000.0, 2.4e7}

	payload, err := EncodeTwoByteFloat(intensities)
	require.NoError(t, err)
	require.Len(t, payload, 2*len(intensities))

	decoded, err := DecodeTwoByteFloat(payload)
	require.NoError(t, err)
	require.Len(t, decoded, len(intensities))

	for i, want := range intensities {
		require.InEpsilon(t, want, decoded[i], 1.0/3000.0, "value %d", i)
	}
}

func TestEncodeTwoByteFloat_RejectsOutOfDomain(t *testing.T) {
	_, err := EncodeTwoByteFloat([]float64{0})
	require.ErrorIs(t, err, errs.ErrNonPositiveValue)

	_, err = EncodeTwoByteFloat([]float64{-1.5})
	require.ErrorIs(t, err, errs.ErrNonPositiveValue)

	_, err = EncodeTwoByteFloat([]float64{1e300})
	require.ErrorIs(t, err, errs.ErrFixedPointOverflow)
}

func TestDecodeLinear_ReportsOffset(t *testing.T) {
	payload, err := EncodeLinear([]float64{1.0, 2.0, 300.0})
	require.NoError(t, err)

	_, err = DecodeLinear(payload[:len(payload)-1])
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)

	var decErr *encoding.DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, len(payload)-1, decErr.Offset)
}

func TestEncodeDecode_Dispatch(t *testing.T) {
	tests := []struct {
		encoding format.EncodingType
		values   []float64
	}{
		{format.TypeLinear, []float64{1.0, 2.0, 3.0}},
		{format.TypeCount, []float64{1, 2, 3}},
		{format.TypeTwoByteFloat, []float64{10.0, 20.0}},
	}

	for _, tt := range tests {
		t.Run(tt.encoding.String(), func(t *testing.T) {
			payload, err := Encode(tt.encoding, tt.values)
			require.NoError(t, err)

			decoded, err := Decode(tt.encoding, payload)
			require.NoError(t, err)
			require.Len(t, decoded, len(tt.values))
		})
	}
}

func TestEncodeDecode_InvalidType(t *testing.T) {
	_, err := Encode(format.EncodingType(0xFF), []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidEncodingType)

	_, err = Decode(format.EncodingType(0xFF), []byte{0x80})
	require.ErrorIs(t, err, errs.ErrInvalidEncodingType)
}

func TestEncode_EmptyInput(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeLinear, format.TypeCount, format.TypeTwoByteFloat} {
		payload, err := Encode(enc, nil)
		require.NoError(t, err)
		require.Empty(t, payload)

		decoded, err := Decode(enc, payload)
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}
