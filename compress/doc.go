// Package compress provides general-purpose compression codecs for
// numpress-encoded payloads.
//
// The numpress codecs exploit structure in the data (prediction residuals,
// log quantization); this package implements the second stage that
// mass-spectrometry containers commonly apply on top of the encoded byte
// buffers before archiving them:
//
//   - None: no compression (NoOpCompressor)
//   - Zstd: best ratio, moderate speed (valyala/gozstd under cgo,
//     klauspost/compress/zstd otherwise)
//   - S2: balanced ratio and speed (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4 block format)
//
// All implementations satisfy the Codec interface and are safe for
// concurrent use. Select one directly or through the format enum:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(encodedPayload)
//
// VerifiedCodec wraps any Codec with an xxHash64 digest so corrupted
// archives fail loudly on decompression instead of feeding garbage bytes
// into the numpress decoders.
package compress
