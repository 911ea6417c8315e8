package record

import (
	"reflect"
	"sync"

	"github.com/arloliu/recio/errs"
)

// kind classifies a struct field's wire representation.
type kind uint8

const (
	kindFixedScalar kind = iota
	kindFixedArray
	kindVar1Bytes
	kindVar1Scalar
	kindVar2Bytes
	kindVar2Scalar
	kindNested
)

// fieldSchema describes one exported struct field.
type fieldSchema struct {
	index     int
	name      string
	kind      kind
	elemKind  reflect.Kind // scalar element kind, for array/var kinds
	arrayLen  int          // Go array length, for kindFixedArray
	nestedType reflect.Type // struct type, for kindNested
}

// Schema is the derived, cached description of a struct type's wire layout.
type Schema struct {
	typ    reflect.Type
	fields []fieldSchema
}

var schemaCache sync.Map // reflect.Type -> *Schema

// schemaFor derives (or returns the cached) Schema for t, which must be a
// struct type (or pointer to one).
func schemaFor(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errs.ErrNotARecord
	}

	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*Schema), nil
	}

	s, err := deriveSchema(t)
	if err != nil {
		return nil, err
	}

	actual, _ := schemaCache.LoadOrStore(t, s)

	return actual.(*Schema), nil
}

// deriveSchema classifies every exported field of t and validates the
// placement rule: at most one var2 field, and if present it must be last.
func deriveSchema(t reflect.Type) (*Schema, error) {
	s := &Schema{typ: t}

	n := t.NumField()
	for i := 0; i < n; i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}

		fs := fieldSchema{index: i, name: sf.Name}

		ft := sf.Type
		switch {
		case isScalarKind(ft.Kind()):
			fs.kind = kindFixedScalar
			fs.elemKind = ft.Kind()

		case ft.Kind() == reflect.Array && isScalarKind(ft.Elem().Kind()):
			fs.kind = kindFixedArray
			fs.elemKind = ft.Elem().Kind()
			fs.arrayLen = ft.Len()

		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Uint8:
			fs.kind = kindVar1Bytes

		case ft.Kind() == reflect.Slice && isScalarKind(ft.Elem().Kind()):
			fs.kind = kindVar1Scalar
			fs.elemKind = ft.Elem().Kind()

		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Slice &&
			ft.Elem().Elem().Kind() == reflect.Uint8:
			fs.kind = kindVar2Bytes

		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Slice &&
			isScalarKind(ft.Elem().Elem().Kind()):
			fs.kind = kindVar2Scalar
			fs.elemKind = ft.Elem().Elem().Kind()

		case ft.Kind() == reflect.Struct:
			// Recursively validate the nested type now, so a bad inner
			// record is rejected at the outer type's derivation time too.
			if _, err := schemaFor(ft); err != nil {
				return nil, err
			}
			fs.kind = kindNested
			fs.nestedType = ft

		default:
			return nil, errs.ErrUnsupportedField
		}

		s.fields = append(s.fields, fs)
	}

	for i, fs := range s.fields {
		isVar2 := fs.kind == kindVar2Bytes || fs.kind == kindVar2Scalar
		if isVar2 && i != len(s.fields)-1 {
			return nil, errs.ErrPlacementViolation
		}
	}

	return s, nil
}

// Register eagerly derives and validates T's schema, approximating
// derivation-time (build-time) rejection of a placement-rule violation: call
// it from an init() function so a misdeclared record fails at program
// startup instead of on first encode.
func Register[T any]() error {
	var zero T
	_, err := schemaFor(reflect.TypeOf(zero))

	return err
}

// MustRegister is like Register but panics on error. Intended for init().
func MustRegister[T any]() {
	if err := Register[T](); err != nil {
		panic(err)
	}
}
