package reader

import (
	"encoding/binary"
	"testing"

	"github.com/lidario/potree/compress"
	"github.com/stretchr/testify/require"
)

const brotliMetadataJSON = `{
	"version": "2.0",
	"encoding": "BROTLI",
	"points": 1,
	"scale": [1, 1, 1],
	"offset": [0, 0, 0],
	"attributes": [
		{"name": "position", "type": "int32", "size": 12},
		{"name": "rgb", "type": "uint16", "size": 6},
		{"name": "intensity", "type": "uint16", "size": 2}
	]
}`

func hierarchyRecord(nodeType byte, numPoints int32, byteOffset, byteSize int64) []byte {
	r := make([]byte, 22)
	r[0] = nodeType
	binary.LittleEndian.PutUint32(r[2:6], uint32(numPoints))
	binary.LittleEndian.PutUint64(r[6:14], uint64(byteOffset))
	binary.LittleEndian.PutUint64(r[14:22], uint64(byteSize))
	return r
}

func buildBrotliFixture(t *testing.T) (positionBlock, rgbBlock, intensityBlock []byte) {
	t.Helper()
	positionBlock = make([]byte, 16) // one point, all zero -> (0,0,0)
	rgbBlock = make([]byte, 8)
	binary.LittleEndian.PutUint32(rgbBlock[0:4], 87) // decodes to r=5,g=3,b=1
	intensityBlock = make([]byte, 2)
	binary.LittleEndian.PutUint16(intensityBlock, 42)
	return
}

func TestBrotliReaderDecode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, metadataFilename, []byte(brotliMetadataJSON))

	position, rgb, intensity := buildBrotliFixture(t)
	var plain []byte
	plain = append(plain, position...)
	plain = append(plain, rgb...)
	plain = append(plain, intensity...)

	codec := compress.NewBrotliCodec()
	compressed, err := codec.Compress(plain)
	require.NoError(t, err)

	writeFile(t, dir, octreeFilename, compressed)
	writeFile(t, dir, hierarchyFilename, hierarchyRecord(0, 1, 0, int64(len(compressed))))

	r, err := NewBrotliReader()
	require.NoError(t, err)

	result, err := r.Decode(dir)
	require.NoError(t, err)
	require.Equal(t, 1, result.Points)
	require.Equal(t, []string{"intensity"}, result.OtherOrder)
	require.Equal(t, []uint16{42}, result.Other["intensity"])
	require.InDelta(t, 5, result.RGB[0][0], 1e-9)
	require.InDelta(t, 3, result.RGB[0][1], 1e-9)
	require.InDelta(t, 1, result.RGB[0][2], 1e-9)
}

func TestBrotliReaderCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, metadataFilename, []byte(brotliMetadataJSON))

	position, rgb, intensity := buildBrotliFixture(t)
	var plain []byte
	plain = append(plain, position...)
	plain = append(plain, rgb...)
	plain = append(plain, intensity...)

	codec := compress.NewBrotliCodec()
	compressed, err := codec.Compress(plain)
	require.NoError(t, err)

	writeFile(t, dir, octreeFilename, compressed)
	writeFile(t, dir, hierarchyFilename, hierarchyRecord(0, 1, 0, int64(len(compressed))))

	cacheDir := t.TempDir()
	r, err := NewBrotliReader(WithCache(true), WithCacheDir(cacheDir))
	require.NoError(t, err)

	first, err := r.Decode(dir)
	require.NoError(t, err)

	second, err := r.Decode(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
