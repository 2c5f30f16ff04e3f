// Package format defines the small fixed enumerations used across the Potree
// decoder: the file encoding tag, the attribute element type tags, and the
// cache compression codec tag.
package format

// Encoding identifies the on-disk octree payload layout declared by a
// Potree 2.0 metadata.json's "encoding" field.
type Encoding string

const (
	// EncodingDefault is the uncompressed, interleaved layout.
	EncodingDefault Encoding = "DEFAULT"
	// EncodingBrotli is the Brotli-compressed, Morton-coded layout.
	EncodingBrotli Encoding = "BROTLI"
)

// AttributeType identifies the element type of a generic (non position,
// non rgb) attribute column, as declared by metadata.json.
type AttributeType string

const (
	TypeUint8  AttributeType = "uint8"
	TypeUint16 AttributeType = "uint16"
	TypeUint32 AttributeType = "uint32"
	TypeInt16  AttributeType = "int16"
	TypeFloat  AttributeType = "float"
	TypeDouble AttributeType = "double"
)

// Size returns the fixed little-endian width in bytes of one element of
// the given attribute type, and false if the type tag is unknown.
func (t AttributeType) Size() (int, bool) {
	switch t {
	case TypeUint8:
		return 1, true
	case TypeUint16, TypeInt16:
		return 2, true
	case TypeUint32, TypeFloat:
		return 4, true
	case TypeDouble:
		return 8, true
	default:
		return 0, false
	}
}

func (t AttributeType) String() string {
	return string(t)
}

// CompressionType identifies the codec used to persist a decode cache entry.
// It has no bearing on the Potree file format itself, which always uses
// Brotli (BROTLI variant) or no compression (DEFAULT variant).
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionS2
	CompressionLZ4
	CompressionZstd
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
