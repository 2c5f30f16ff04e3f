// Package schema models a Potree 2.0 attribute schema: the ordered list of
// (name, type, size) entries from metadata.json's "attributes" field.
//
// Position and rgb are special-cased: Design Note 9 of the decoder's
// specification calls for modeling attributes as a tagged variant
// (Position, Rgb, Generic) built once from the metadata, so the node
// decode loop is a match on the variant instead of repeated string
// comparisons against the attribute name.
package schema

import (
	"fmt"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
	"github.com/lidario/potree/internal/hash"
)

// Kind distinguishes how an attribute's bytes are laid out in a decompressed
// node payload.
type Kind uint8

const (
	// KindPosition is the 16-byte-per-point Morton-coded "position" column.
	KindPosition Kind = iota
	// KindRGB is the 8-byte-per-point Morton-coded "rgb" column.
	KindRGB
	// KindGeneric is a plain little-endian column of a declared element type.
	KindGeneric
)

// Field is one parsed attribute: its kind, its name, its name hash (an
// xxhash identifier for O(1) lookup without repeated string comparisons),
// and — for KindGeneric fields — its element type and byte size.
type Field struct {
	Kind     Kind
	Name     string
	NameHash uint64
	Type     format.AttributeType // valid only when Kind == KindGeneric
	Size     int                  // declared byte size of one element, as given by metadata.json
}

// Schema is the ordered attribute list parsed from metadata.json, in
// declaration order. Node decoding walks attributes in this exact order
// because each attribute's byte range in a node's payload is positional,
// not self-describing.
type Schema []Field

// Build classifies a raw metadata attribute list into a Schema, hashing
// each name and validating that every non-special attribute has a
// recognized type tag.
//
// Returns errs.ErrSchemaMismatch wrapped with the offending attribute name
// for any unrecognized type tag.
func Build(rawAttrs []RawAttribute) (Schema, error) {
	fields := make(Schema, 0, len(rawAttrs))

	for _, a := range rawAttrs {
		field := Field{
			Name:     a.Name,
			NameHash: hash.ID(a.Name),
			Size:     a.Size,
		}

		switch a.Name {
		case "position":
			field.Kind = KindPosition
		case "rgb":
			field.Kind = KindRGB
		default:
			field.Kind = KindGeneric
			field.Type = format.AttributeType(a.Type)

			if _, ok := field.Type.Size(); !ok {
				return nil, fmt.Errorf("%w: attribute %q has unknown type %q", errs.ErrSchemaMismatch, a.Name, a.Type)
			}
		}

		fields = append(fields, field)
	}

	return fields, nil
}

// RawAttribute is the shape of one entry in metadata.json's "attributes"
// array, before classification into a Field.
type RawAttribute struct {
	Name string
	Type string
	Size int
}
