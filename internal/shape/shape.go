// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import "reflect"

// Class is the GC word-layout class of a type.
type Class int

const (
	// Empty is a zero-size type. Fits any storage class.
	Empty Class = iota
	// Scalar holds no reference words. Safe in GC-opaque storage.
	Scalar
	// Pointers holds only reference words. Requires GC-scanned storage.
	Pointers
	// Mixed combines reference and scalar words. Fits neither storage class.
	Mixed
)

// String returns the class name for diagnostics.
func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Scalar:
		return "scalar"
	case Pointers:
		return "pointers"
	default:
		return "mixed"
	}
}

// Of reports the layout class of t.
//
// The walk is conservative: anything it cannot prove Scalar or Pointers is
// Mixed. Interfaces count as Pointers — both of their words are scanned by
// the collector (the type word points outside the heap and is ignored).
func Of(t reflect.Type) Class {
	if t.Size() == 0 {
		return Empty
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Scalar
	case reflect.Pointer, reflect.UnsafePointer,
		reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface:
		return Pointers
	case reflect.String, reflect.Slice:
		// Pointer word followed by length (and capacity) words.
		return Mixed
	case reflect.Array:
		// Arrays carry no padding between elements.
		return Of(t.Elem())
	case reflect.Struct:
		return ofStruct(t)
	default:
		return Mixed
	}
}

func ofStruct(t reflect.Type) Class {
	c := Empty
	var used uintptr
	for i := range t.NumField() {
		f := t.Field(i)
		fc := Of(f.Type)
		if fc == Empty {
			continue
		}
		used += f.Type.Size()
		if c == Empty {
			c = fc
			continue
		}
		if c != fc {
			return Mixed
		}
	}
	// Padding between or after pointer fields would leave unscanned gaps,
	// so a Pointers struct must be exactly its fields.
	if c == Pointers && used != t.Size() {
		return Mixed
	}
	return c
}
