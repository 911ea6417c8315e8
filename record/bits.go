package record

import (
	"math"
	"reflect"
)

func uint32frombits(v reflect.Value) uint32 {
	return math.Float32bits(float32(v.Float()))
}

func uint64frombits(v reflect.Value) uint64 {
	return math.Float64bits(v.Float())
}

func float32frombits(b uint32) float32 {
	return math.Float32frombits(b)
}

func float64frombits(b uint64) float64 {
	return math.Float64frombits(b)
}
