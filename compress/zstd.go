package compress

// ZstdCodec is the best-ratio cache codec, suited to archiving decoded
// point clouds that are re-read infrequently. Compress/Decompress are
// implemented in zstd_cgo.go (cgo builds, using gozstd) and zstd_pure.go
// (pure Go fallback, using klauspost/compress/zstd).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
