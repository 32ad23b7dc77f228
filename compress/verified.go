package compress

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/NRTDP/ms-numpress/endian"
	"github.com/NRTDP/ms-numpress/errs"
)

// digestSize is the size of the xxHash64 digest suffix in bytes.
const digestSize = 8

// VerifiedCodec wraps another Codec with an integrity digest.
//
// Compress appends the little-endian xxHash64 digest of the compressed
// payload; Decompress verifies it before handing the bytes to the inner
// codec. Numpress nibble streams have no internal redundancy — a flipped
// bit silently shifts every subsequent value — so archived payloads should
// carry a digest.
type VerifiedCodec struct {
	inner Codec
}

var _ Codec = VerifiedCodec{}

// NewVerifiedCodec wraps inner with xxHash64 digest framing.
func NewVerifiedCodec(inner Codec) VerifiedCodec {
	return VerifiedCodec{inner: inner}
}

// Compress compresses data with the inner codec and appends the digest.
func (c VerifiedCodec) Compress(data []byte) ([]byte, error) {
	compressed, err := c.inner.Compress(data)
	if err != nil {
		return nil, err
	}

	// The inner codec may return its input (NoOpCompressor does); copy so
	// the digest suffix never lands in a caller-owned backing array.
	out := make([]byte, len(compressed), len(compressed)+digestSize)
	copy(out, compressed)

	engine := endian.GetLittleEndianEngine()

	return engine.AppendUint64(out, xxhash.Sum64(compressed)), nil
}

// Decompress verifies and strips the digest, then decompresses with the
// inner codec.
//
// Returns errs.ErrPayloadTooShort when the payload cannot hold a digest
// and errs.ErrChecksumMismatch when the digest does not match.
func (c VerifiedCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) < digestSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", errs.ErrPayloadTooShort, len(data), digestSize)
	}

	payload := data[:len(data)-digestSize]
	engine := endian.GetLittleEndianEngine()
	want := engine.Uint64(data[len(data)-digestSize:])

	if got := xxhash.Sum64(payload); got != want {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, got, want)
	}

	return c.inner.Decompress(payload)
}
