// Package cloud holds the decoded point cloud result type and the node
// decoder (spec component 4.5): given the ordered list of hierarchy nodes,
// the full octree payload, and the attribute schema, it slices and decodes
// each node's attributes in declared order into preallocated per-attribute
// columns.
package cloud

import (
	"fmt"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/hierarchy"
	"github.com/lidario/potree/internal/morton"
	"github.com/lidario/potree/internal/pool"
	"github.com/lidario/potree/schema"
)

// Vec3 is one (x, y, z) or (r, g, b) triplet.
type Vec3[T any] [3]T

// Cloud is a flat, columnar table of decoded points.
//
// Position is always populated. The BROTLI reader always fills RGB with one
// triplet per point (zeros when the schema has no "rgb" attribute) and Other
// with every remaining attribute's native column, keyed by attribute name;
// the DEFAULT reader leaves RGB and Other nil.
type Cloud struct {
	Points     int
	Position   []Vec3[float64]
	RGB        []Vec3[float64]
	Other      map[string]any
	OtherOrder []string // metadata.json attribute declaration order, for deterministic column output
}

// Decompressor decompresses one node's raw octree payload into its
// uncompressed attribute block. The BROTLI reader passes
// compress.BrotliCodec.Decompress; the DEFAULT reader does not use the node
// decoder at all.
type Decompressor func(data []byte) ([]byte, error)

// DecodeNodes runs the node decoder (spec component 4.5) over every node in
// list order, writing into columns sized for totalPoints. Position is left
// as raw Morton-decoded unsigned integers; callers apply the scene's
// affine transform afterward (spec component 4.6 step 6).
func DecodeNodes(nodes []hierarchy.Node, octree []byte, sch schema.Schema, totalPoints int, decompress Decompressor) (positionsRaw []Vec3[uint32], rgb []Vec3[float64], other map[string]any, otherOrder []string, err error) {
	positionsRaw = make([]Vec3[uint32], totalPoints)
	rgb = make([]Vec3[float64], totalPoints)
	other = make(map[string]any, len(sch))

	for _, f := range sch {
		if f.Kind == schema.KindGeneric {
			other[f.Name] = newColumn(f.Type, totalPoints)
			otherOrder = append(otherOrder, f.Name)
		}
	}

	rowCursor := 0
	for _, node := range nodes {
		if node.ByteOffset < 0 || node.ByteSize < 0 || node.ByteOffset+node.ByteSize > int64(len(octree)) {
			return nil, nil, nil, nil, fmt.Errorf("%w: node byte range [%d:%d] out of octree bounds (%d bytes)",
				errs.ErrSchemaMismatch, node.ByteOffset, node.ByteOffset+node.ByteSize, len(octree))
		}

		compressed := octree[node.ByteOffset : node.ByteOffset+node.ByteSize]

		buf := pool.GetNodeBuffer()
		decoded, derr := decompress(compressed)
		if derr != nil {
			pool.PutNodeBuffer(buf)
			return nil, nil, nil, nil, derr
		}
		buf.Reset()
		if _, werr := buf.Write(decoded); werr != nil {
			pool.PutNodeBuffer(buf)
			return nil, nil, nil, nil, werr
		}
		nodeBuf := buf.Bytes()

		if rowCursor+node.NumPoints > totalPoints {
			pool.PutNodeBuffer(buf)
			return nil, nil, nil, nil, errs.ErrColumnOverflow
		}

		cursor := 0
		for _, f := range sch {
			switch f.Kind {
			case schema.KindPosition:
				n := node.NumPoints * morton.BytesPerPosition
				if cursor+n > len(nodeBuf) {
					pool.PutNodeBuffer(buf)
					return nil, nil, nil, nil, fmt.Errorf("%w: position block truncated", errs.ErrSchemaMismatch)
				}
				x, y, z, ok := morton.DecodePositions(nodeBuf[cursor:cursor+n], node.NumPoints)
				if !ok {
					pool.PutNodeBuffer(buf)
					return nil, nil, nil, nil, fmt.Errorf("%w: position payload shorter than %d bytes", errs.ErrSchemaMismatch, morton.MinPositionBytes)
				}
				for i := 0; i < node.NumPoints; i++ {
					positionsRaw[rowCursor+i] = Vec3[uint32]{x[i], y[i], z[i]}
				}
				cursor += n

			case schema.KindRGB:
				n := node.NumPoints * morton.BytesPerColor
				if cursor+n > len(nodeBuf) {
					pool.PutNodeBuffer(buf)
					return nil, nil, nil, nil, fmt.Errorf("%w: rgb block truncated", errs.ErrSchemaMismatch)
				}
				r, g, b := morton.DecodeColors(nodeBuf[cursor:cursor+n], node.NumPoints)
				for i := 0; i < node.NumPoints; i++ {
					rgb[rowCursor+i] = Vec3[float64]{r[i], g[i], b[i]}
				}
				cursor += n

			default:
				n := f.Size * node.NumPoints
				if cursor+n > len(nodeBuf) {
					pool.PutNodeBuffer(buf)
					return nil, nil, nil, nil, fmt.Errorf("%w: attribute %q block truncated", errs.ErrSchemaMismatch, f.Name)
				}
				if err := decodeGenericInto(other[f.Name], f.Type, nodeBuf[cursor:cursor+n], rowCursor, node.NumPoints); err != nil {
					pool.PutNodeBuffer(buf)
					return nil, nil, nil, nil, err
				}
				cursor += n
			}
		}

		if cursor != len(nodeBuf) {
			pool.PutNodeBuffer(buf)
			return nil, nil, nil, nil, fmt.Errorf("%w: node payload has %d trailing bytes beyond the %d the schema accounts for",
				errs.ErrSchemaMismatch, len(nodeBuf)-cursor, cursor)
		}

		pool.PutNodeBuffer(buf)
		rowCursor += node.NumPoints
	}

	if rowCursor != totalPoints {
		return nil, nil, nil, nil, fmt.Errorf("%w: decoded %d rows, expected %d", errs.ErrPointCountMismatch, rowCursor, totalPoints)
	}

	return positionsRaw, rgb, other, otherOrder, nil
}

// newColumn allocates a zeroed column of the native Go type matching t.
func newColumn(t format.AttributeType, n int) any {
	switch t {
	case format.TypeUint8:
		return make([]uint8, n)
	case format.TypeUint16:
		return make([]uint16, n)
	case format.TypeUint32:
		return make([]uint32, n)
	case format.TypeInt16:
		return make([]int16, n)
	case format.TypeFloat:
		return make([]float32, n)
	case format.TypeDouble:
		return make([]float64, n)
	default:
		return nil
	}
}
