// Package metadata loads and validates a Potree 2.0 metadata.json document.
//
// This replaces the original Python reader's open_json helper plus its
// version/encoding checks (spread across both reader variants in the
// source) with a single validated load, following the "pure pipeline"
// shape Design Note 9 recommends: metadata -> validated schema, with no
// state held on a decoder instance between calls.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/schema"
)

const supportedVersion = "2.0"

// rawAttribute mirrors one entry of metadata.json's "attributes" array.
type rawAttribute struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size"`
}

// raw mirrors the recognized fields of metadata.json.
type raw struct {
	Version    string         `json:"version"`
	Encoding   string         `json:"encoding"`
	Points     int            `json:"points"`
	Scale      [3]float64     `json:"scale"`
	Offset     [3]float64     `json:"offset"`
	Attributes []rawAttribute `json:"attributes"`
}

// Metadata is the validated, immutable descriptor of a Potree 2.0 dataset.
type Metadata struct {
	Encoding format.Encoding
	Points   int
	Scale    [3]float64
	Offset   [3]float64
	Schema   schema.Schema
}

// Load reads the metadata.json file at path and validates it against the
// expected encoding tag.
//
// Returns errs.ErrUnsupportedVersion if "version" != "2.0",
// errs.ErrUnsupportedEncoding if "encoding" doesn't match wantEncoding, or
// a wrapped errs.ErrSchemaMismatch if an attribute's type tag is
// unrecognized.
func Load(path string, wantEncoding format.Encoding) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("reading metadata: %w", err)
	}

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return Metadata{}, fmt.Errorf("parsing metadata: %w", err)
	}

	if r.Version != supportedVersion {
		return Metadata{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedVersion, r.Version)
	}

	if format.Encoding(r.Encoding) != wantEncoding {
		return Metadata{}, fmt.Errorf("%w: expected %q, got %q", errs.ErrUnsupportedEncoding, wantEncoding, r.Encoding)
	}

	rawAttrs := make([]schema.RawAttribute, len(r.Attributes))
	for i, a := range r.Attributes {
		rawAttrs[i] = schema.RawAttribute{Name: a.Name, Type: a.Type, Size: a.Size}
	}

	fields, err := schema.Build(rawAttrs)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Encoding: format.Encoding(r.Encoding),
		Points:   r.Points,
		Scale:    r.Scale,
		Offset:   r.Offset,
		Schema:   fields,
	}, nil
}

// PeekEncoding reads just the "encoding" field of the metadata.json file at
// path, without validating version or attribute types. This lets a caller (such
// as the CLI) pick the matching reader variant automatically instead of
// requiring the caller to already know the dataset's encoding.
func PeekEncoding(path string) (format.Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading metadata: %w", err)
	}

	var r struct {
		Encoding string `json:"encoding"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return "", fmt.Errorf("parsing metadata: %w", err)
	}

	return format.Encoding(r.Encoding), nil
}
