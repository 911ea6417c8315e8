package field

import (
	"github.com/arloliu/recio/fixedcodec"
	"github.com/arloliu/recio/wire"
)

// EncodeFixed appends a single scalar to the Fixed region.
func EncodeFixed[T fixedcodec.Scalar](enc *wire.Encoder, v T) error {
	return enc.PushFixed(fixedcodec.Append(nil, v, enc.Engine()))
}

// DecodeFixed reads a single scalar from the Fixed region.
func DecodeFixed[T fixedcodec.Scalar](dec *wire.Decoder) (T, error) {
	b, err := dec.NextFixedBytes(uint32(fixedcodec.Size[T]()))
	if err != nil {
		var zero T
		return zero, err
	}

	return fixedcodec.Decode[T](b, dec.Engine())
}

// EncodeFixedArray appends a fixed-length sequence of scalars to the Fixed
// region. The element count is a property of the schema, known identically
// to both the encoder and the decoder; it is not itself encoded.
func EncodeFixedArray[T fixedcodec.Scalar](enc *wire.Encoder, items []T) error {
	return enc.PushFixed(fixedcodec.AppendSlice(nil, items, enc.Engine()))
}

// DecodeFixedArray reads n scalars from the Fixed region.
func DecodeFixedArray[T fixedcodec.Scalar](dec *wire.Decoder, n int) ([]T, error) {
	b, err := dec.NextFixedBytes(uint32(n * fixedcodec.Size[T]()))
	if err != nil {
		return nil, err
	}

	return fixedcodec.DecodeSlice[T](b, dec.Engine())
}

// EncodeVar1Bytes appends b as a var1 field: a single VarIndex entry whose
// segment is b verbatim.
func EncodeVar1Bytes(enc *wire.Encoder, b []byte) error {
	return enc.PushVar1(b)
}

// DecodeVar1Bytes reads a var1 field's raw segment, borrowed from the
// decoder's underlying buffer.
func DecodeVar1Bytes(dec *wire.Decoder) ([]byte, error) {
	return dec.NextVar()
}

// EncodeVar1 appends items as a var1 field: the slice is encoded as one
// contiguous segment and contributes exactly one VarIndex entry, regardless
// of len(items).
func EncodeVar1[T fixedcodec.Scalar](enc *wire.Encoder, items []T) error {
	return enc.PushVar1(fixedcodec.AppendSlice(nil, items, enc.Engine()))
}

// DecodeVar1 reads a var1 field and decodes its segment as a scalar slice.
func DecodeVar1[T fixedcodec.Scalar](dec *wire.Decoder) ([]T, error) {
	b, err := dec.NextVar()
	if err != nil {
		return nil, err
	}

	return fixedcodec.DecodeSlice[T](b, dec.Engine())
}

// EncodeVar2Bytes appends groups as a var2 field: one VarIndex entry per
// element of groups, in order. Per the placement rule this must be the
// record's last field.
func EncodeVar2Bytes(enc *wire.Encoder, groups [][]byte) error {
	return enc.PushVar2(groups, true)
}

// DecodeVar2Bytes reads every remaining VarIndex entry as one var2 field's
// raw segments.
func DecodeVar2Bytes(dec *wire.Decoder) ([][]byte, error) {
	return dec.RemainingVarAsVar2()
}

// EncodeVar2 appends groups as a var2 field of typed scalar sequences: each
// inner slice becomes one VarIndex-addressed segment. Per the placement rule
// this must be the record's last field.
func EncodeVar2[T fixedcodec.Scalar](enc *wire.Encoder, groups [][]T) error {
	segments := make([][]byte, len(groups))
	for i, g := range groups {
		segments[i] = fixedcodec.AppendSlice(nil, g, enc.Engine())
	}

	return enc.PushVar2(segments, true)
}

// DecodeVar2 reads every remaining VarIndex entry as one var2 field and
// decodes each segment as a scalar slice.
func DecodeVar2[T fixedcodec.Scalar](dec *wire.Decoder) ([][]T, error) {
	segments, err := dec.RemainingVarAsVar2()
	if err != nil {
		return nil, err
	}

	out := make([][]T, len(segments))
	for i, seg := range segments {
		items, err := fixedcodec.DecodeSlice[T](seg, dec.Engine())
		if err != nil {
			return nil, err
		}
		out[i] = items
	}

	return out, nil
}

// EncodeNested appends a nested record's own finalized payload as a var1
// segment, per the spec's design choice to compose records uniformly
// through the var1 mechanism rather than inlining inner regions.
func EncodeNested(enc *wire.Encoder, payload []byte) error {
	return enc.PushVar1(payload)
}

// DecodeNestedBytes reads a nested record's payload bytes, borrowed from the
// outer decoder's buffer, for the caller to hand to a recursive Decode call.
func DecodeNestedBytes(dec *wire.Decoder) ([]byte, error) {
	return dec.NextVar()
}
