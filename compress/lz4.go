package compress

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse; the
// lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4HeaderSize is the width of the plaintext-length prefix LZ4Codec writes
// ahead of every block it compresses. A raw lz4.UncompressBlock call has no
// way to learn the decompressed size up front; cache entries are the only
// thing this codec ever compresses, and the cache already knows that size
// at Save time (it's len(gob-encoded value) before compression), so storing
// it costs nothing and turns decompression into a single allocation instead
// of a guess-and-grow loop.
const lz4HeaderSize = 8

// LZ4Codec is the fastest-decompression cache codec, favoring repeat-read
// latency over compression ratio.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

// Compress compresses data using a pooled lz4.Compressor, prefixing the
// result with data's original length so Decompress can size its output
// buffer exactly.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, lz4HeaderSize+dstSize)
	binary.LittleEndian.PutUint64(dst[:lz4HeaderSize], uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4HeaderSize:])
	if err != nil {
		return nil, err
	}

	return dst[:lz4HeaderSize+n], nil
}

// Decompress decompresses lz4-compressed data produced by Compress. The
// leading 8-byte length prefix sizes the output buffer exactly, so the
// common case is a single allocation and a single UncompressBlock call.
//
// Payloads without a usable prefix (shorter than lz4HeaderSize, or a prefix
// that turns out to be wrong — e.g. a block handed in from outside this
// codec) fall back to growing the buffer from 4x the compressed size,
// doubling on ErrInvalidSourceShortBuffer up to a 128MiB safety limit.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) > lz4HeaderSize {
		plainSize := binary.LittleEndian.Uint64(data[:lz4HeaderSize])
		block := data[lz4HeaderSize:]

		if plainSize > 0 && plainSize <= 128*1024*1024 {
			buf := make([]byte, plainSize)
			if n, err := lz4.UncompressBlock(block, buf); err == nil {
				return buf[:n], nil
			}
		}
	}

	return lz4DecompressGrow(data)
}

// lz4DecompressGrow decompresses a prefix-less (or unexpectedly sized) lz4
// block by growing the destination buffer until it fits.
func lz4DecompressGrow(data []byte) ([]byte, error) {
	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
