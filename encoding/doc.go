// Package encoding provides the numpress codecs for mass-spectrometry
// value arrays.
//
// Four codec pairs share one primitive:
//
//   - NibbleWriter/NibbleReader: a variable-length integer representation
//     that packs a signed 32-bit integer into 1-9 nibbles (half bytes),
//     eliding leading sign-extension nibbles behind a single header nibble.
//   - LinearEncoder/LinearDecoder: m/z and retention-time arrays, converted
//     to a 5-decimal fixed-point domain and predicted by linear
//     extrapolation; only the residual is nibble-encoded.
//   - CountEncoder/CountDecoder: ion-count arrays, rounded to the nearest
//     non-negative integer and nibble-encoded directly.
//   - LogFloatEncoder/LogFloatDecoder: intensity arrays, mapped through a
//     natural-log fixed-point transform into raw 16-bit words.
//
// All wire data is little-endian. Encoders follow the
// Write/WriteSlice/Bytes/Len/Size/Reset/Finish shape over pooled buffers;
// decoders are stateless and report malformed input through DecodeError,
// which carries the byte offset and nibble parity at the failure point.
//
// The codecs perform no domain validation of their own so that they stay
// bit-compatible with existing encoded archives; the top-level numpress
// package fronts them with range checks.
package encoding
