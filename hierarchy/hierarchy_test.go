package hierarchy

import (
	"encoding/binary"
	"testing"

	"github.com/lidario/potree/errs"
	"github.com/stretchr/testify/require"
)

func record(nodeType byte, numPoints int32, byteOffset, byteSize int64) []byte {
	r := make([]byte, RecordSize)
	r[0] = nodeType
	binary.LittleEndian.PutUint32(r[2:6], uint32(numPoints))
	binary.LittleEndian.PutUint64(r[6:14], uint64(byteOffset))
	binary.LittleEndian.PutUint64(r[14:22], uint64(byteSize))
	return r
}

func TestParseTruncatedLength(t *testing.T) {
	_, err := Parse(make([]byte, RecordSize+1))
	require.ErrorIs(t, err, errs.ErrMalformedHierarchy)
}

func TestParseSkipsProxyAndEmptyNodes(t *testing.T) {
	var data []byte
	data = append(data, record(0, 100, 0, 500)...)        // normal
	data = append(data, record(proxyNodeType, 50, 0, 1)...) // proxy, skipped
	data = append(data, record(0, 10, 500, 0)...)         // zero size, skipped
	data = append(data, record(1, 25, 600, 200)...)       // normal, different type

	nodes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, Node{NumPoints: 100, ByteOffset: 0, ByteSize: 500}, nodes[0])
	require.Equal(t, Node{NumPoints: 25, ByteOffset: 600, ByteSize: 200}, nodes[1])
}

func TestParseEmpty(t *testing.T) {
	nodes, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestParsePreservesRecordOrder(t *testing.T) {
	var data []byte
	for i := int64(0); i < 5; i++ {
		data = append(data, record(0, int32(i+1), i*10, i+1)...)
	}

	nodes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, nodes, 5)
	for i, n := range nodes {
		require.Equal(t, int(i+1), n.NumPoints)
	}
}
