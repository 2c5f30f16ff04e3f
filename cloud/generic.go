package cloud

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
)

// decodeGenericInto reinterprets raw as numPoints little-endian elements of
// type t and writes them into column (as allocated by newColumn) at
// [rowCursor, rowCursor+numPoints).
func decodeGenericInto(column any, t format.AttributeType, raw []byte, rowCursor, numPoints int) error {
	switch t {
	case format.TypeUint8:
		col := column.([]uint8)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = raw[i]
		}

	case format.TypeUint16:
		col := column.([]uint16)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
		}

	case format.TypeUint32:
		col := column.([]uint32)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		}

	case format.TypeInt16:
		col := column.([]int16)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		}

	case format.TypeFloat:
		col := column.([]float32)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4 : i*4+4]))
		}

	case format.TypeDouble:
		col := column.([]float64)
		for i := 0; i < numPoints; i++ {
			col[rowCursor+i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8 : i*8+8]))
		}

	default:
		return fmt.Errorf("%w: unknown attribute type %q", errs.ErrSchemaMismatch, t)
	}

	return nil
}
