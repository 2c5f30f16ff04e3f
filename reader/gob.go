package reader

import "encoding/gob"

// Concrete attribute column types must be registered so gob can decode
// them back out of cachedCloud.Other, a map[string]any.
func init() {
	gob.Register([]uint8(nil))
	gob.Register([]uint16(nil))
	gob.Register([]uint32(nil))
	gob.Register([]int16(nil))
	gob.Register([]float32(nil))
	gob.Register([]float64(nil))
}
