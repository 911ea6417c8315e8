// Package field implements the three field kinds the wire format
// distinguishes — fixed, var1 and var2 — as a small set of generic
// encode/decode helper pairs over wire.Encoder and wire.Decoder.
//
// These helpers are the primitives the record package's reflection-based
// derivation engine calls into once it has classified a struct field; they
// are also usable directly by hand-written Bytes()/Parse() methods that
// don't want to go through reflection at all.
//
// A fixed field has a compile-time-constant width and is read back by byte
// count, not by a VarIndex lookup. A var1 field contributes exactly one
// VarIndex entry. A var2 field contributes one VarIndex entry per element of
// an outer sequence and, per the placement rule, is only legal as a record's
// last field.
package field
