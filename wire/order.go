package wire

import "github.com/arloliu/recio/endian"

// Order selects the byte order used for multi-byte integer scalars in the
// Fixed region. It has no effect on the header or VarIndex, which are
// always little-endian (see package doc).
type Order uint8

const (
	// LittleEndian serializes Fixed-region integer fields little-endian.
	LittleEndian Order = iota
	// BigEndian serializes Fixed-region integer fields big-endian.
	BigEndian
	// NativeEndian is a caller agreement, not an observable wire property:
	// per the original source this spec was distilled from, Native is
	// treated identically to Little on the wire (see SPEC_FULL.md, Open
	// Question resolutions). It exists so callers can express "I don't
	// care, use whatever's fastest to produce" without claiming a
	// host-dependent format.
	NativeEndian
)

// Engine returns the endian.EndianEngine this Order resolves to for Fixed
// region data. NativeEndian resolves to little-endian; see the constant's
// doc comment.
func (o Order) Engine() endian.EndianEngine {
	if o == BigEndian {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// String returns a human-readable name for o.
func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	case NativeEndian:
		return "NativeEndian"
	default:
		return "Unknown"
	}
}
