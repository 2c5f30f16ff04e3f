// Package compress provides the decompression capability used by the
// Potree BROTLI reader variant for per-node payloads, plus a small set of
// interchangeable Codec implementations used by the decode cache (package
// cache) to persist already-decoded point cloud columns.
//
// Brotli is the only codec the Potree 2.0 format itself ever specifies;
// S2, LZ4, and Zstd exist purely for the optional cache and are selected
// by the caller, not by anything in octree.bin or metadata.json.
package compress

import (
	"fmt"

	"github.com/lidario/potree/format"
)

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor (or, for Brotli, by any conforming Brotli encoder —
// Potree's octree.bin is written by the potree-converter tool, not by
// this module).
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec is a factory function returning a Codec for the given cache
// compression type.
func NewCodec(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid cache compression type: %s", t)
	}
}
