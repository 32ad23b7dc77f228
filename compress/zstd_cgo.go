//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses a payload into a single Zstandard frame via libzstd.
// Level 3 matches the pure-Go path's default, so frames from either build
// stay interchangeable.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses a Zstandard frame produced by Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
