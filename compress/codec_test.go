package compress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NRTDP/ms-numpress/format"
)

// testPayload builds a compressible byte stream shaped like an encoded
// residual payload: long runs of small values.
func testPayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(0x80 | (i % 4))
	}

	return payload
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload(16 * 1024)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionS2, "payload")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(math.MaxUint8), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload compression")
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestNoOpCompressor_PassesThrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := testPayload(64)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestLZ4Compressor_CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()

	// Arbitrary bytes that are not a valid LZ4 block.
	_, err := codec.Decompress([]byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB})
	require.Error(t, err)
}
