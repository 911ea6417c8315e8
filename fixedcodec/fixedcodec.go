// Package fixedcodec implements the fixed-scalar codec described in the core
// specification: primitive integer serialization whose byte width is known
// at compile time, with no indirection.
//
// Each supported width is dispatched mechanically from unsafe.Sizeof(T),
// the same "one arm per width" shape the original Rust source generates
// per-type via macro_rules!; Go generics plus a width switch give the same
// mechanical derivation without needing a macro.
package fixedcodec

import (
	"unsafe"

	"github.com/arloliu/recio/endian"
	"github.com/arloliu/recio/errs"
)

// Scalar is the set of primitive integer types the fixed-scalar codec
// supports. Go has no native 128-bit integer, so unlike the Rust source this
// union stops at 64 bits; see DESIGN.md.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64
}

// Size returns the encoded byte width of T.
func Size[T Scalar]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

// Append encodes v and appends it to buf using engine's byte order, growing
// buf as needed. It returns the extended slice.
func Append[T Scalar](buf []byte, v T, engine endian.EndianEngine) []byte {
	switch Size[T]() {
	case 1:
		return append(buf, byte(v))
	case 2:
		return engine.AppendUint16(buf, uint16(v))
	case 4:
		return engine.AppendUint32(buf, uint32(v))
	case 8:
		return engine.AppendUint64(buf, uint64(v))
	default:
		panic("fixedcodec: unsupported scalar width")
	}
}

// Decode reads sizeof(T) bytes from the front of b and reconstructs a T
// using engine's byte order. b must be at least Size[T]() bytes long.
func Decode[T Scalar](b []byte, engine endian.EndianEngine) (T, error) {
	size := Size[T]()
	if len(b) < size {
		return T(0), errs.ErrElementWidth
	}

	switch size {
	case 1:
		return T(b[0]), nil
	case 2:
		return T(engine.Uint16(b)), nil
	case 4:
		return T(engine.Uint32(b)), nil
	case 8:
		return T(engine.Uint64(b)), nil
	default:
		panic("fixedcodec: unsupported scalar width")
	}
}

// DecodeSlice decodes b as a contiguous run of T values under engine's byte
// order. len(b) must be a multiple of Size[T](); otherwise ErrElementWidth
// is returned.
func DecodeSlice[T Scalar](b []byte, engine endian.EndianEngine) ([]T, error) {
	width := Size[T]()
	if width == 0 || len(b)%width != 0 {
		return nil, errs.ErrElementWidth
	}

	out := make([]T, len(b)/width)
	for i := range out {
		v, err := Decode[T](b[i*width:], engine)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// AppendSlice encodes every element of items in order, appending to buf.
func AppendSlice[T Scalar](buf []byte, items []T, engine endian.EndianEngine) []byte {
	for _, v := range items {
		buf = Append(buf, v, engine)
	}

	return buf
}
