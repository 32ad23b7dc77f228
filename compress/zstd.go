package compress

// ZstdCompressor provides Zstandard compression for numpress payloads.
//
// Zstd favors compression ratio over speed, which suits archival of
// acquisition runs: spectra are written once and decompressed rarely.
// Residual streams from the linear codec typically shrink another 1.5-3x.
//
// Two implementations back this type: valyala/gozstd (libzstd bindings)
// when cgo is available, and the pure-Go klauspost/compress/zstd encoder
// otherwise. The compressed frames are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
