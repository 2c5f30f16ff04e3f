// Package cache implements a content-addressed decode cache for decoded
// Potree point clouds.
//
// A Potree directory is re-decoded verbatim on every call otherwise
// (hierarchy parsing, per-node Brotli inflation, Morton deinterleaving).
// This package puts three interchangeable compression codecs (S2, LZ4,
// Zstd) and an xxhash-based identification scheme (internal/hash.ID) to
// work caching the already-decoded, transform-applied columns of a
// directory, so a second Decode call against the same, unchanged
// directory can skip straight to a cache hit.
//
// Caching is purely an optimization: disabling it (reader.WithCache(false))
// never changes what Decode returns, only how fast repeat calls are.
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lidario/potree/compress"
	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/internal/hash"
)

// Key identifies one cache entry: the hash of the directory path plus the
// contents of metadata.json and hierarchy.bin. A changed attribute schema,
// point count, or hierarchy invalidates the key automatically, since any of
// those changes the hashed bytes.
type Key uint64

// NewKey computes the cache key for a Potree directory from its path and
// the raw bytes of its metadata.json and hierarchy.bin.
func NewKey(dir string, metadataBytes, hierarchyBytes []byte) Key {
	h := hash.ID(dir)
	h ^= hash.ID(string(metadataBytes))
	h ^= hash.ID(string(hierarchyBytes))

	return Key(h)
}

// Store persists and retrieves decoded payloads under a directory, keyed by
// Key, compressed with the configured Codec.
type Store struct {
	dir   string
	codec compress.Codec
}

// NewStore creates a cache store rooted at dir, compressing entries with
// the given codec (format.CompressionNone disables compression but keeps
// the cache itself enabled).
func NewStore(dir string, codecType format.CompressionType) (*Store, error) {
	codec, err := compress.NewCodec(codecType)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Store{dir: dir, codec: codec}, nil
}

func (s *Store) path(key Key) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.cache", uint64(key)))
}

// Load decodes a previously stored value of type T for key, or returns
// errs.ErrCacheMiss if no entry exists.
func Load[T any](s *Store, key Key) (T, error) {
	var zero T

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return zero, fmt.Errorf("%w: %v", errs.ErrCacheMiss, err)
	}

	decompressed, err := s.codec.Decompress(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: decompressing cache entry: %v", errs.ErrCacheMiss, err)
	}

	var value T
	if err := gob.NewDecoder(bytes.NewReader(decompressed)).Decode(&value); err != nil {
		return zero, fmt.Errorf("%w: decoding cache entry: %v", errs.ErrCacheMiss, err)
	}

	return value, nil
}

// Save persists value under key, replacing any existing entry.
func Save[T any](s *Store, key Key, value T) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	compressed, err := s.codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compressing cache entry: %w", err)
	}

	return os.WriteFile(s.path(key), compressed, 0o644)
}
