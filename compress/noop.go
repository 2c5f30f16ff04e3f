package compress

// NoOpCodec bypasses compression entirely; it is the default cache codec
// when the caller disables compression via cache options.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a no-operation codec.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (c NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
