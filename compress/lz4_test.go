package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZ4CodecRoundTrip(t *testing.T) {
	c := NewLZ4Codec()
	data := []byte("point cloud cache payload, point cloud cache payload, point cloud cache payload")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestLZ4CodecEmpty(t *testing.T) {
	c := NewLZ4Codec()

	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	decompressed, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestLZ4CodecDecompressFallsBackWithoutLengthPrefix(t *testing.T) {
	c := NewLZ4Codec()
	data := []byte("point cloud cache payload, point cloud cache payload, point cloud cache payload")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	// Strip the length prefix Compress writes, simulating a block handed in
	// by something other than this codec's own Compress. Decompress must
	// still recover the data via the adaptive-growth fallback.
	block := compressed[lz4HeaderSize:]

	decompressed, err := c.Decompress(block)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}
