package reader

import (
	"fmt"

	"github.com/lidario/potree/errs"
)

// Kind names a reader variant, matching the original source's
// PointCloudReaderType enum tags.
type Kind string

const (
	KindUncompressed Kind = "potree_uncompressed_point_cloud_reader"
	KindBrotli       Kind = "potree_brotli_compressed_point_cloud_reader"
)

// Config selects a reader variant and its options.
type Config struct {
	Name Kind
	Opts []Option
}

// New is the reader factory (spec component 4.8): it returns the Reader
// implementation named by cfg.Name, or errs.ErrUnknownReader for any other
// tag.
func New(cfg Config) (Reader, error) {
	switch cfg.Name {
	case KindUncompressed:
		return NewDefaultReader(cfg.Opts...)
	case KindBrotli:
		return NewBrotliReader(cfg.Opts...)
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownReader, cfg.Name)
	}
}
