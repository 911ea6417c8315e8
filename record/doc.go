// Package record is the mechanical derivation engine: given a struct type,
// it derives a Schema describing each exported field's wire kind (fixed
// scalar, fixed array, var1, var2 or nested record) and uses that schema to
// drive generic encode/decode routines over wire.Encoder/wire.Decoder,
// without per-type generated code.
//
// Classification is driven by reflect.Type, following the field-kind rules
// in the field package:
//
//   - a scalar numeric field (uint8..uint64, int8..int64, float32/64) is
//     fixed.
//   - a fixed-size Go array of scalars ([N]T) is a fixed array; N is fixed
//     by the Go type itself and is never encoded.
//   - a slice of scalars or bytes (T, []T) is var1.
//   - a slice of slices ([][]T) is var2, and by the placement rule must be
//     the last field in the struct.
//   - a nested struct type (itself schema-derivable) is encoded as var1,
//     wrapping the nested record's own finalized payload.
//
// Schemas are derived once per reflect.Type and cached; Register makes that
// derivation (and its placement-rule validation) happen eagerly, so a
// misdeclared record is rejected at startup rather than on first use.
package record
