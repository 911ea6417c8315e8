// Package errs defines the sentinel errors returned by recio's wire, field,
// and record layers.
//
// The core specification requires a single closed error kind ("invalid
// length") covering every validation and decode failure. We honor that by
// making every wire-format sentinel below (ErrTruncatedHeader through
// ErrPlacementViolation) wrap ErrInvalidLength, so callers that only care
// about the spec's minimal taxonomy can test with a single
// errors.Is(err, errs.ErrInvalidLength), while callers that want to
// distinguish "header malformed" from "index out of range" from "element
// width mismatch" can match the more specific sentinel instead. The
// derivation, registry and archive sentinels (ErrUnsupportedField onward)
// are independent errors and do not wrap ErrInvalidLength.
package errs

import "errors"

// ErrInvalidLength is the root sentinel. Every error the wire, field and
// fixedcodec packages return satisfies errors.Is(err, ErrInvalidLength).
var ErrInvalidLength = errors.New("recio: invalid length")

// Sentinels built with join below unwrap to ErrInvalidLength so that
// errors.Is matches both the specific and the root sentinel.
var (
	// ErrTruncatedHeader is returned when a buffer is too short to hold the
	// 8-byte payload header.
	ErrTruncatedHeader = join("recio: truncated header")

	// ErrHeaderBounds is returned when total_len exceeds the buffer length,
	// or when var_index_offset or data_offset violate the structural
	// invariant 8 <= var_index_offset <= data_offset <= total_len.
	ErrHeaderBounds = join("recio: header offsets out of bounds")

	// ErrVarIndexStride is returned when (data_offset - var_index_offset) is
	// not a multiple of 4.
	ErrVarIndexStride = join("recio: var index stride is not a multiple of 4")

	// ErrSegmentOutOfRange is returned when a VarIndex entry or a decoded
	// segment falls outside the Data region or the buffer.
	ErrSegmentOutOfRange = join("recio: segment out of range")

	// ErrCursorOverrun is returned when a fixed or variable cursor read would
	// advance past the end of its region.
	ErrCursorOverrun = join("recio: cursor overrun")

	// ErrElementWidth is returned when a variable byte length is not a
	// multiple of the fixed element width being decoded, or when a byte
	// slice is shorter than the scalar width being decoded.
	ErrElementWidth = join("recio: element width mismatch")

	// ErrOffsetOverflow is returned when offset or length arithmetic would
	// overflow the 32-bit offsets the wire format uses.
	ErrOffsetOverflow = join("recio: offset arithmetic overflow")

	// ErrPlacementViolation is returned when a var2 field is pushed with
	// isLastVar=false, or when any field is pushed after a var2 field has
	// already closed the encoder.
	ErrPlacementViolation = join("recio: var2 field is not in last position")

	// ErrUnsupportedField is returned by the record derivation engine when a
	// struct field's type cannot be classified as fixed, var1, var2, or a
	// nested record.
	ErrUnsupportedField = errors.New("recio: field type cannot be classified")

	// ErrNotARecord is returned by the record derivation engine for
	// non-struct types (including a nil pointer passed to Encode), and by
	// registry.Register for an empty name. A struct with no fields is a valid
	// record and is not rejected.
	ErrNotARecord = errors.New("recio: type is not a serializable record")

	// ErrHashCollision is returned by the record registry when two distinct
	// registered names hash to the same bucket.
	ErrHashCollision = errors.New("recio: registry name hash collision")

	// ErrAlreadyRegistered is returned when the same name is registered twice.
	ErrAlreadyRegistered = errors.New("recio: name already registered")

	// ErrUnknownCompression is returned by the archive envelope for an
	// unrecognized compression tag.
	ErrUnknownCompression = errors.New("recio: unknown compression tag")
)

// join pairs a specific message with ErrInvalidLength so errors.Is matches
// both. The result's Error() returns the specific message.
func join(msg string) error {
	return &wrapped{msg: msg}
}

type wrapped struct{ msg string }

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return ErrInvalidLength }
