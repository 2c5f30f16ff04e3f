package reader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lidario/potree/cloud"
	"github.com/lidario/potree/endian"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/metadata"
)

// DefaultReader decodes the Potree 2.0 DEFAULT encoding: a single
// interleaved stride of bytes_per_point*num_points with no compression and
// no Morton coding. It exposes only positions, matching the original
// source's scope for this variant.
type DefaultReader struct {
	cfg *config
}

var _ Reader = DefaultReader{}

// NewDefaultReader creates a DefaultReader. It accepts the same options as
// BrotliReader, but Decode never reads or writes the decode cache.
func NewDefaultReader(opts ...Option) (DefaultReader, error) {
	cfg := defaultConfig()
	if err := applyOptions(cfg, opts); err != nil {
		return DefaultReader{}, err
	}

	return DefaultReader{cfg: cfg}, nil
}

// Decode reads metadata.json and octree.bin from dir and returns a point
// cloud whose only populated column is Position.
func (r DefaultReader) Decode(dir string) (cloud.Cloud, error) {
	meta, err := metadata.Load(filepath.Join(dir, metadataFilename), format.EncodingDefault)
	if err != nil {
		return cloud.Cloud{}, err
	}

	bytesPerPoint := 0
	for _, f := range meta.Schema {
		bytesPerPoint += f.Size
	}

	data, err := os.ReadFile(filepath.Join(dir, octreeFilename))
	if err != nil {
		return cloud.Cloud{}, fmt.Errorf("reading octree: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	positions := make([]cloud.Vec3[float64], meta.Points)

	for i := 0; i < meta.Points; i++ {
		off := i * bytesPerPoint
		if off+12 > len(data) {
			return cloud.Cloud{}, fmt.Errorf("octree.bin truncated at point %d", i)
		}

		x := int32(engine.Uint32(data[off : off+4]))
		y := int32(engine.Uint32(data[off+4 : off+8]))
		z := int32(engine.Uint32(data[off+8 : off+12]))

		positions[i] = cloud.Vec3[float64]{
			float64(x)*meta.Scale[0] + meta.Offset[0],
			float64(y)*meta.Scale[1] + meta.Offset[1],
			float64(z)*meta.Scale[2] + meta.Offset[2],
		}
	}

	return cloud.Cloud{Points: meta.Points, Position: positions}, nil
}
