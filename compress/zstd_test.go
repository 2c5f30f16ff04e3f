package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZstdCodecRoundTrip(t *testing.T) {
	c := NewZstdCodec()
	data := []byte("point cloud cache payload, point cloud cache payload, point cloud cache payload")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestZstdCodecEmptyDecompress(t *testing.T) {
	c := NewZstdCodec()

	decompressed, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}
