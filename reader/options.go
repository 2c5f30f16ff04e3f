package reader

import (
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/internal/options"
)

// config holds the decode-time behavior shared by both reader variants.
type config struct {
	cacheEnabled bool
	cacheDir     string
	cacheCodec   format.CompressionType
}

func defaultConfig() *config {
	return &config{
		cacheEnabled: false,
		cacheDir:     ".potree-cache",
		cacheCodec:   format.CompressionS2,
	}
}

// Option configures a reader at construction time.
type Option = options.Option[*config]

// WithCache enables or disables the decode cache (package cache). Disabled
// by default: caching never changes what Decode returns, only repeat-call
// latency, so it is opt-in rather than assumed.
func WithCache(enabled bool) Option {
	return options.NoError(func(c *config) { c.cacheEnabled = enabled })
}

// WithCacheDir sets the directory decode cache entries are stored under.
func WithCacheDir(dir string) Option {
	return options.NoError(func(c *config) { c.cacheDir = dir })
}

// WithCacheCodec selects the compression codec used for cache entries.
func WithCacheCodec(t format.CompressionType) Option {
	return options.NoError(func(c *config) { c.cacheCodec = t })
}

func applyOptions(cfg *config, opts []Option) error {
	return options.Apply(cfg, opts...)
}
