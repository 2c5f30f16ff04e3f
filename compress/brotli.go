package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/lidario/potree/errs"
)

// BrotliCodec decompresses the per-node payloads of a Potree 2.0 BROTLI
// dataset. It also implements Compress so test fixtures can be generated
// with the same codec used to read them; the Potree format itself never
// requires this module to compress anything.
type BrotliCodec struct{}

var _ Codec = BrotliCodec{}

// NewBrotliCodec creates a new Brotli codec.
func NewBrotliCodec() BrotliCodec { return BrotliCodec{} }

// Compress brotli-compresses data at the library's default quality.
func (c BrotliCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a Brotli-compressed node payload.
func (c BrotliCodec) Decompress(data []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressionFailed, err)
	}

	return out, nil
}
