// Package reader implements the Potree 2.0 reader variants (spec
// components 4.6–4.8): orchestrating metadata validation, file loading,
// hierarchy parsing, per-node decompression, node decoding, and the final
// affine transform, behind a small capability interface selected by a
// factory — replacing the original Python source's class-per-variant
// dynamic dispatch, per Design Note 9.
package reader

import "github.com/lidario/potree/cloud"

// Reader decodes a Potree 2.0 dataset rooted at a directory path into a
// decoded point cloud.
type Reader interface {
	Decode(path string) (cloud.Cloud, error)
}
