package record

import (
	"reflect"

	"github.com/arloliu/recio/endian"
	"github.com/arloliu/recio/errs"
)

// scalarSize returns the fixed byte width of a reflect.Kind this package
// treats as a wire scalar, or 0 if k is not one.
func scalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Uint8, reflect.Int8:
		return 1
	case reflect.Uint16, reflect.Int16:
		return 2
	case reflect.Uint32, reflect.Int32, reflect.Float32:
		return 4
	case reflect.Uint64, reflect.Int64, reflect.Float64:
		return 8
	default:
		return 0
	}
}

// isScalarKind reports whether k is a wire scalar kind.
func isScalarKind(k reflect.Kind) bool {
	return scalarSize(k) > 0
}

// appendScalar appends v's wire representation to buf using engine.
func appendScalar(buf []byte, v reflect.Value, engine endian.EndianEngine) []byte {
	switch v.Kind() {
	case reflect.Uint8:
		return append(buf, byte(v.Uint()))
	case reflect.Int8:
		return append(buf, byte(int8(v.Int())))
	case reflect.Uint16:
		return engine.AppendUint16(buf, uint16(v.Uint()))
	case reflect.Int16:
		return engine.AppendUint16(buf, uint16(int16(v.Int())))
	case reflect.Uint32:
		return engine.AppendUint32(buf, uint32(v.Uint()))
	case reflect.Int32:
		return engine.AppendUint32(buf, uint32(int32(v.Int())))
	case reflect.Float32:
		return engine.AppendUint32(buf, uint32frombits(v))
	case reflect.Uint64:
		return engine.AppendUint64(buf, v.Uint())
	case reflect.Int64:
		return engine.AppendUint64(buf, uint64(v.Int()))
	case reflect.Float64:
		return engine.AppendUint64(buf, uint64frombits(v))
	default:
		return buf
	}
}

// decodeScalarInto decodes b (exactly scalarSize(dst.Kind()) bytes) into dst.
func decodeScalarInto(dst reflect.Value, b []byte, engine endian.EndianEngine) error {
	size := scalarSize(dst.Kind())
	if len(b) < size {
		return errs.ErrInvalidLength
	}

	switch dst.Kind() {
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint16:
		dst.SetUint(uint64(engine.Uint16(b)))
	case reflect.Int16:
		dst.SetInt(int64(int16(engine.Uint16(b))))
	case reflect.Uint32:
		dst.SetUint(uint64(engine.Uint32(b)))
	case reflect.Int32:
		dst.SetInt(int64(int32(engine.Uint32(b))))
	case reflect.Float32:
		dst.SetFloat(float64(float32frombits(engine.Uint32(b))))
	case reflect.Uint64:
		dst.SetUint(engine.Uint64(b))
	case reflect.Int64:
		dst.SetInt(int64(engine.Uint64(b)))
	case reflect.Float64:
		dst.SetFloat(float64frombits(engine.Uint64(b)))
	default:
		return errs.ErrUnsupportedField
	}

	return nil
}
