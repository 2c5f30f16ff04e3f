// Package errs defines the sentinel errors returned by the Potree decoder.
//
// Callers should use errors.Is against these sentinels; call sites wrap them
// with additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrUnsupportedVersion is returned when metadata.json's "version" field
	// is not "2.0".
	ErrUnsupportedVersion = errors.New("potree: unsupported format version")

	// ErrUnsupportedEncoding is returned when metadata.json's "encoding"
	// field does not match the reader variant's expected tag.
	ErrUnsupportedEncoding = errors.New("potree: unsupported encoding")

	// ErrMalformedHierarchy is returned when hierarchy.bin's length is not a
	// multiple of the fixed node record size, or a record's fields are out
	// of range.
	ErrMalformedHierarchy = errors.New("potree: malformed hierarchy")

	// ErrDecompressionFailed is returned when a node's Brotli payload fails
	// to decompress.
	ErrDecompressionFailed = errors.New("potree: node decompression failed")

	// ErrSchemaMismatch is returned when an attribute's type tag is unknown,
	// or a node's declared sizes are inconsistent with its payload.
	ErrSchemaMismatch = errors.New("potree: schema mismatch")

	// ErrPointCountMismatch is returned when the sum of per-node point
	// counts does not equal metadata.json's "points" field.
	ErrPointCountMismatch = errors.New("potree: point count mismatch")

	// ErrUnknownReader is returned by the reader factory for an
	// unrecognized reader name.
	ErrUnknownReader = errors.New("potree: unknown reader")

	// ErrColumnOverflow is returned when decoding a node would write past
	// the end of a preallocated attribute column.
	ErrColumnOverflow = errors.New("potree: attribute column overflow")

	// ErrCacheMiss is returned by the decode cache when no entry exists for
	// a given key, or the entry fails its integrity check.
	ErrCacheMiss = errors.New("potree: cache miss")
)
