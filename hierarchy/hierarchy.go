// Package hierarchy parses the hierarchy.bin node index of a Potree 2.0
// dataset: a flat array of fixed-stride 22-byte records, one per octree
// node, each carrying the node's type, point count, and byte range within
// octree.bin.
//
// Fields are read at fixed byte offsets through an endian.EndianEngine,
// with a dedicated sentinel error for malformed input.
package hierarchy

import (
	"fmt"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/endian"
)

// RecordSize is the fixed byte width of one hierarchy node record.
const RecordSize = 22

const proxyNodeType = 2

// Node describes one non-proxy, non-empty octree node: its point count and
// the byte range of its (possibly compressed) payload within octree.bin.
type Node struct {
	NumPoints  int
	ByteOffset int64
	ByteSize   int64
}

// Parse walks data in RecordSize strides and returns the ordered list of
// non-proxy nodes with a non-zero payload size. Nodes are filtered, never
// reordered: the returned slice preserves hierarchy.bin's record order.
//
// A trailing partial record (len(data) not a multiple of RecordSize), or a
// kept record with a negative point count, byte offset, or byte size, is a
// malformed hierarchy.
func Parse(data []byte) ([]Node, error) {
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrMalformedHierarchy, len(data), RecordSize)
	}

	engine := endian.GetLittleEndianEngine()
	nodes := make([]Node, 0, len(data)/RecordSize)

	for off := 0; off < len(data); off += RecordSize {
		record := data[off : off+RecordSize]

		nodeType := record[0]
		numPoints := int(int32(engine.Uint32(record[2:6])))
		byteOffset := int64(engine.Uint64(record[6:14]))
		byteSize := int64(engine.Uint64(record[14:22]))

		if nodeType == proxyNodeType || byteSize == 0 {
			continue
		}

		if numPoints < 0 || byteOffset < 0 || byteSize < 0 {
			return nil, fmt.Errorf("%w: record at offset %d has a negative point count, byte offset, or byte size",
				errs.ErrMalformedHierarchy, off)
		}

		nodes = append(nodes, Node{
			NumPoints:  numPoints,
			ByteOffset: byteOffset,
			ByteSize:   byteSize,
		})
	}

	return nodes, nil
}
