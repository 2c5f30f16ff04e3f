package cloud

// ApplyTransform converts raw Morton-decoded integer positions to the
// scene's floating-point coordinate space: value*scale + offset per axis,
// computed in double precision (spec component 4.6 step 6: scale stored as
// 32-bit float, offset as 64-bit float, per the source convention — the
// computation itself is done in float64 regardless of scale's declared
// width).
func ApplyTransform(raw []Vec3[uint32], scale, offset [3]float64) []Vec3[float64] {
	out := make([]Vec3[float64], len(raw))
	scale32 := [3]float32{float32(scale[0]), float32(scale[1]), float32(scale[2])}

	for i, p := range raw {
		out[i] = Vec3[float64]{
			float64(p[0])*float64(scale32[0]) + offset[0],
			float64(p[1])*float64(scale32[1]) + offset[1],
			float64(p[2])*float64(scale32[2]) + offset[2],
		}
	}

	return out
}
