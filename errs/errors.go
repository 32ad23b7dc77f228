// Package errs defines the sentinel errors shared across the numpress
// packages. Callers match them with errors.Is; decode failures usually
// arrive wrapped in an encoding.DecodeError that adds the byte offset.
package errs

import "errors"

var (
	// ErrTruncatedPayload indicates the payload ended in the middle of a
	// variable-length integer during decoding.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrPayloadTooShort indicates the payload is shorter than the fixed
	// prefix the codec requires (for example the two 32-bit header words of
	// the linear codec, or the digest suffix of a verified payload).
	ErrPayloadTooShort = errors.New("payload too short")

	// ErrOddPayloadLength indicates a two-byte float payload whose length
	// is not a multiple of two.
	ErrOddPayloadLength = errors.New("odd payload length")

	// ErrFixedPointOverflow indicates a value outside the invertible
	// fixed-point window of the linear codec (about ±21474.8 at scale
	// 100000) or of the two-byte float codec's log scale.
	ErrFixedPointOverflow = errors.New("value overflows fixed-point scale")

	// ErrNegativeCount indicates a negative value passed to the count codec.
	ErrNegativeCount = errors.New("negative count value")

	// ErrCountOverflow indicates a count value above 4294967294.
	ErrCountOverflow = errors.New("count value overflows 32 bits")

	// ErrNonPositiveValue indicates a zero or negative value passed to the
	// two-byte float codec, which is undefined outside the log domain.
	ErrNonPositiveValue = errors.New("non-positive value")

	// ErrInvalidEncodingType indicates an unknown encoding type selector.
	ErrInvalidEncodingType = errors.New("invalid encoding type")

	// ErrChecksumMismatch indicates a verified payload whose xxHash64
	// digest does not match its content.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
