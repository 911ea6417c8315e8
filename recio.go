// Package recio provides a self-describing binary record format: an
// 8-byte header followed by a Fixed region, a VarIndex region and a Data
// region, plus a reflection-based derivation engine that maps ordinary Go
// structs onto that layout without per-type generated code.
//
// # Core Features
//
//   - Three field kinds — fixed, var1, var2 — covering scalars, fixed-size
//     arrays, variable-length byte/scalar slices and sequences of sequences
//   - A mechanical derivation engine (package record) that classifies struct
//     fields by reflect.Type and rejects schemas that violate the placement
//     rule (at most one var2 field, and only in last position)
//   - Zero-copy decoding for byte fields: decoded []byte var1/var2 segments
//     borrow directly from the source buffer; scalar slices are copied out
//   - An optional compression envelope (package archive) layered strictly
//     above the wire format
//   - A name registry (package registry) that maps record schema names to
//     stable xxHash64 identifiers and back
//
// # Basic Usage
//
//	import "github.com/arloliu/recio"
//
//	type Sample struct {
//	    Tag    uint8
//	    Values []float64
//	}
//
//	func init() {
//	    recio.MustRegisterSchema[Sample]()
//	}
//
//	payload, err := recio.Marshal(Sample{Tag: 1, Values: []float64{1, 2, 3}}, recio.LittleEndian)
//	sample, err := recio.Unmarshal[Sample](payload, recio.LittleEndian)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lower-level
// wire, field and record packages. Use those packages directly for
// fine-grained control — e.g. hand-written Bytes()/Parse() methods that skip
// reflection entirely.
package recio

import (
	"github.com/arloliu/recio/archive"
	"github.com/arloliu/recio/format"
	"github.com/arloliu/recio/record"
	"github.com/arloliu/recio/registry"
	"github.com/arloliu/recio/wire"
)

// Order re-exports wire.Order so callers only need to import this package
// for the common case.
type Order = wire.Order

const (
	LittleEndian = wire.LittleEndian
	BigEndian    = wire.BigEndian
	NativeEndian = wire.NativeEndian
)

var defaultRegistry = registry.New()

// RegisterSchema derives and validates T's schema, then registers name in
// the package-level default registry, returning its stable xxHash64 ID.
func RegisterSchema[T any](name string) (uint64, error) {
	if err := record.Register[T](); err != nil {
		return 0, err
	}

	return defaultRegistry.Register(name)
}

// MustRegisterSchema derives and validates T's schema, panicking on a
// placement-rule violation or unsupported field type. Intended for init().
func MustRegisterSchema[T any]() {
	record.MustRegister[T]()
}

// SchemaID returns the ID a prior RegisterSchema call assigned to name.
func SchemaID(name string) (uint64, bool) {
	return defaultRegistry.ID(name)
}

// SchemaName returns the name registered for id, if any.
func SchemaName(id uint64) (string, bool) {
	return defaultRegistry.Lookup(id)
}

// Marshal derives v's schema (caching it for subsequent calls) and encodes
// it into a wire payload using order for Fixed-region field data.
func Marshal(v any, order Order) ([]byte, error) {
	return record.Encode(v, order)
}

// Unmarshal derives T's schema and decodes data into a new T. []byte fields
// holding var1/var2 segments alias into data; scalar slices are copied.
func Unmarshal[T any](data []byte, order Order) (T, error) {
	return record.DecodeInto[T](data, order)
}

// MarshalArchive marshals v and wraps the result in a compression envelope.
func MarshalArchive(v any, order Order, codec format.CompressionType) ([]byte, error) {
	payload, err := Marshal(v, order)
	if err != nil {
		return nil, err
	}

	archived, _, err := archive.Pack(payload, codec)

	return archived, err
}

// UnmarshalArchive reverses an archive produced by MarshalArchive and
// decodes the recovered payload into a new T.
func UnmarshalArchive[T any](archived []byte, order Order) (T, error) {
	payload, _, err := archive.Unpack(archived)
	if err != nil {
		var zero T
		return zero, err
	}

	return Unmarshal[T](payload, order)
}
