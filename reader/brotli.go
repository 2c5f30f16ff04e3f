package reader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lidario/potree/cache"
	"github.com/lidario/potree/cloud"
	"github.com/lidario/potree/compress"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/hierarchy"
	"github.com/lidario/potree/metadata"
)

// BrotliReader decodes the Potree 2.0 BROTLI encoding: per-node payloads
// are Brotli-compressed and position/rgb attributes are Morton-coded.
//
// BrotliReader holds no mutable state between Decode calls; each call owns
// its own allocations, so a single reader is safe for concurrent use.
type BrotliReader struct {
	cfg *config
}

var _ Reader = BrotliReader{}

// NewBrotliReader creates a BrotliReader with the given options applied
// over sensible defaults (decode cache disabled).
func NewBrotliReader(opts ...Option) (BrotliReader, error) {
	cfg := defaultConfig()
	if err := applyOptions(cfg, opts); err != nil {
		return BrotliReader{}, err
	}

	return BrotliReader{cfg: cfg}, nil
}

type cachedCloud struct {
	Points     int
	Position   []cloud.Vec3[float64]
	RGB        []cloud.Vec3[float64]
	Other      map[string]any
	OtherOrder []string
}

// Decode reads metadata.json, hierarchy.bin, and octree.bin from dir and
// returns the fully decoded, transform-applied point cloud.
func (r BrotliReader) Decode(dir string) (cloud.Cloud, error) {
	meta, err := metadata.Load(filepath.Join(dir, metadataFilename), format.EncodingBrotli)
	if err != nil {
		return cloud.Cloud{}, err
	}

	hierarchyBytes, err := os.ReadFile(filepath.Join(dir, hierarchyFilename))
	if err != nil {
		return cloud.Cloud{}, fmt.Errorf("reading hierarchy: %w", err)
	}

	var store *cache.Store
	var key cache.Key
	if r.cfg.cacheEnabled {
		metaBytes, _ := os.ReadFile(filepath.Join(dir, metadataFilename))
		key = cache.NewKey(dir, metaBytes, hierarchyBytes)

		store, err = cache.NewStore(r.cfg.cacheDir, r.cfg.cacheCodec)
		if err != nil {
			return cloud.Cloud{}, err
		}

		if hit, err := cache.Load[cachedCloud](store, key); err == nil {
			return cloud.Cloud{Points: hit.Points, Position: hit.Position, RGB: hit.RGB, Other: hit.Other, OtherOrder: hit.OtherOrder}, nil
		}
	}

	octreeBytes, err := os.ReadFile(filepath.Join(dir, octreeFilename))
	if err != nil {
		return cloud.Cloud{}, fmt.Errorf("reading octree: %w", err)
	}

	nodes, err := hierarchy.Parse(hierarchyBytes)
	if err != nil {
		return cloud.Cloud{}, err
	}

	codec := compress.NewBrotliCodec()
	positionsRaw, rgb, other, otherOrder, err := cloud.DecodeNodes(nodes, octreeBytes, meta.Schema, meta.Points, codec.Decompress)
	if err != nil {
		return cloud.Cloud{}, err
	}

	result := cloud.Cloud{
		Points:     meta.Points,
		Position:   cloud.ApplyTransform(positionsRaw, meta.Scale, meta.Offset),
		RGB:        rgb,
		Other:      other,
		OtherOrder: otherOrder,
	}

	if store != nil {
		_ = cache.Save(store, key, cachedCloud{
			Points:     result.Points,
			Position:   result.Position,
			RGB:        result.RGB,
			Other:      result.Other,
			OtherOrder: result.OtherOrder,
		})
	}

	return result, nil
}
