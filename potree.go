// Package potree provides a Go decoder for point clouds stored in the
// Potree 2.0 on-disk format: an octree index (hierarchy.bin), a payload
// file (octree.bin), and a JSON descriptor (metadata.json).
//
// Two encodings are supported: DEFAULT, an uncompressed interleaved
// layout, and BROTLI, a Brotli-compressed layout that additionally encodes
// positions and colors as bit-interleaved Morton codes.
//
// # Basic usage
//
//	cloud, err := potree.Decode("/path/to/dataset", potree.Brotli)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cloud.Points, "points decoded")
//
// For fine-grained control (decode caching, cache codec selection), use
// the reader package directly:
//
//	r, _ := reader.NewBrotliReader(reader.WithCache(true))
//	cloud, err := r.Decode("/path/to/dataset")
package potree

import (
	"github.com/lidario/potree/cloud"
	"github.com/lidario/potree/reader"
)

// Encoding selects which Potree 2.0 variant to decode.
type Encoding = reader.Kind

const (
	Uncompressed = reader.KindUncompressed
	Brotli       = reader.KindBrotli
)

// Decode reads the Potree 2.0 dataset at path using the given encoding and
// returns the decoded point cloud. It is a thin convenience wrapper around
// reader.New followed by Reader.Decode, for callers who don't need cache
// tuning or other reader options.
func Decode(path string, encoding Encoding, opts ...reader.Option) (cloud.Cloud, error) {
	r, err := reader.New(reader.Config{Name: encoding, Opts: opts})
	if err != nil {
		return cloud.Cloud{}, err
	}

	return r.Decode(path)
}
