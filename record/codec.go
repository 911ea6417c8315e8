package record

import (
	"reflect"

	"github.com/arloliu/recio/errs"
	"github.com/arloliu/recio/wire"
)

// Encode derives v's schema (caching it for subsequent calls) and encodes v
// into a wire payload using order for Fixed-region field data. v must be a
// struct or a pointer to one.
func Encode(v any, order wire.Order) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, errs.ErrNotARecord
		}
		rv = rv.Elem()
	}

	schema, err := schemaFor(rv.Type())
	if err != nil {
		return nil, err
	}

	return encodeStruct(rv, schema, order)
}

func encodeStruct(rv reflect.Value, schema *Schema, order wire.Order) ([]byte, error) {
	enc := wire.NewEncoder(order)
	engine := enc.Engine()

	for _, fs := range schema.fields {
		fv := rv.Field(fs.index)

		switch fs.kind {
		case kindFixedScalar:
			if err := enc.PushFixed(appendScalar(nil, fv, engine)); err != nil {
				return nil, err
			}

		case kindFixedArray:
			var buf []byte
			for i := 0; i < fv.Len(); i++ {
				buf = appendScalar(buf, fv.Index(i), engine)
			}
			if err := enc.PushFixed(buf); err != nil {
				return nil, err
			}

		case kindVar1Bytes:
			if err := enc.PushVar1(fv.Bytes()); err != nil {
				return nil, err
			}

		case kindVar1Scalar:
			var buf []byte
			for i := 0; i < fv.Len(); i++ {
				buf = appendScalar(buf, fv.Index(i), engine)
			}
			if err := enc.PushVar1(buf); err != nil {
				return nil, err
			}

		case kindVar2Bytes:
			segments := make([][]byte, fv.Len())
			for i := range segments {
				segments[i] = fv.Index(i).Bytes()
			}
			if err := enc.PushVar2(segments, true); err != nil {
				return nil, err
			}

		case kindVar2Scalar:
			segments := make([][]byte, fv.Len())
			for i := range segments {
				inner := fv.Index(i)
				var buf []byte
				for j := 0; j < inner.Len(); j++ {
					buf = appendScalar(buf, inner.Index(j), engine)
				}
				segments[i] = buf
			}
			if err := enc.PushVar2(segments, true); err != nil {
				return nil, err
			}

		case kindNested:
			nestedSchema, err := schemaFor(fs.nestedType)
			if err != nil {
				return nil, err
			}
			payload, err := encodeStruct(fv, nestedSchema, order)
			if err != nil {
				return nil, err
			}
			if err := enc.PushVar1(payload); err != nil {
				return nil, err
			}
		}
	}

	return enc.Finalize()
}

// DecodeInto derives V's schema and decodes data into a new V using order.
// []byte fields (var1, and each inner []byte of a var2 field) alias into
// data; see the borrowing contract documented on wire.Decoder. Slices of
// scalars are decoded into newly allocated slices.
func DecodeInto[V any](data []byte, order wire.Order) (V, error) {
	var out V

	rv := reflect.ValueOf(&out).Elem()
	schema, err := schemaFor(rv.Type())
	if err != nil {
		return out, err
	}

	dec, err := wire.NewDecoder(data, order)
	if err != nil {
		return out, err
	}

	if err := decodeStruct(rv, schema, dec); err != nil {
		return out, err
	}

	return out, nil
}

func decodeStruct(rv reflect.Value, schema *Schema, dec *wire.Decoder) error {
	engine := dec.Engine()

	for _, fs := range schema.fields {
		fv := rv.Field(fs.index)

		switch fs.kind {
		case kindFixedScalar:
			b, err := dec.NextFixedBytes(uint32(scalarSize(fs.elemKind)))
			if err != nil {
				return err
			}
			if err := decodeScalarInto(fv, b, engine); err != nil {
				return err
			}

		case kindFixedArray:
			size := scalarSize(fs.elemKind)
			b, err := dec.NextFixedBytes(uint32(fs.arrayLen * size))
			if err != nil {
				return err
			}
			for i := 0; i < fs.arrayLen; i++ {
				if err := decodeScalarInto(fv.Index(i), b[i*size:(i+1)*size], engine); err != nil {
					return err
				}
			}

		case kindVar1Bytes:
			b, err := dec.NextVar()
			if err != nil {
				return err
			}
			fv.SetBytes(b)

		case kindVar1Scalar:
			b, err := dec.NextVar()
			if err != nil {
				return err
			}
			size := scalarSize(fs.elemKind)
			if size == 0 || len(b)%size != 0 {
				return errs.ErrElementWidth
			}
			n := len(b) / size
			s := reflect.MakeSlice(fv.Type(), n, n)
			for i := 0; i < n; i++ {
				if err := decodeScalarInto(s.Index(i), b[i*size:(i+1)*size], engine); err != nil {
					return err
				}
			}
			fv.Set(s)

		case kindVar2Bytes:
			segments, err := dec.RemainingVarAsVar2()
			if err != nil {
				return err
			}
			s := reflect.MakeSlice(fv.Type(), len(segments), len(segments))
			for i, seg := range segments {
				s.Index(i).SetBytes(seg)
			}
			fv.Set(s)

		case kindVar2Scalar:
			segments, err := dec.RemainingVarAsVar2()
			if err != nil {
				return err
			}
			size := scalarSize(fs.elemKind)
			outer := reflect.MakeSlice(fv.Type(), len(segments), len(segments))
			for i, seg := range segments {
				if size == 0 || len(seg)%size != 0 {
					return errs.ErrElementWidth
				}
				n := len(seg) / size
				inner := reflect.MakeSlice(fv.Type().Elem(), n, n)
				for j := 0; j < n; j++ {
					if err := decodeScalarInto(inner.Index(j), seg[j*size:(j+1)*size], engine); err != nil {
						return err
					}
				}
				outer.Index(i).Set(inner)
			}
			fv.Set(outer)

		case kindNested:
			payload, err := dec.NextVar()
			if err != nil {
				return err
			}
			nestedSchema, err := schemaFor(fs.nestedType)
			if err != nil {
				return err
			}
			nestedDec, err := wire.NewDecoder(payload, dec.Order())
			if err != nil {
				return err
			}
			if err := decodeStruct(fv, nestedSchema, nestedDec); err != nil {
				return err
			}
		}
	}

	return nil
}
