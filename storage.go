// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import (
	"fmt"
	"reflect"
	"unsafe"

	"code.hybscloud.com/ifn/internal/shape"
)

// Storage classes for the scalar family. The element type is uint64 so
// the arena is word-aligned for any payload; the collector never scans
// these words, which is why only pointer-free payloads may live here.
type (
	// B8 holds up to 8 bytes of scalar payload state.
	B8 [1]uint64
	// B16 holds up to 16 bytes of scalar payload state.
	B16 [2]uint64
	// B24 holds up to 24 bytes of scalar payload state.
	B24 [3]uint64
	// B32 holds up to 32 bytes of scalar payload state.
	B32 [4]uint64
	// B48 holds up to 48 bytes of scalar payload state.
	B48 [6]uint64
	// B64 holds up to 64 bytes of scalar payload state.
	B64 [8]uint64
)

// Storage classes for the pointer family. Every word is scanned by the
// collector, so payloads stored here keep their referents alive and
// must consist of reference words only.
type (
	// P1 holds a payload of one pointer word (a func value, a single
	// captured reference).
	P1 [1]unsafe.Pointer
	// P2 holds a payload of up to two pointer words.
	P2 [2]unsafe.Pointer
	// P3 holds a payload of up to three pointer words.
	P3 [3]unsafe.Pointer
	// P4 holds a payload of up to four pointer words.
	P4 [4]unsafe.Pointer
	// P6 holds a payload of up to six pointer words.
	P6 [6]unsafe.Pointer
	// P8 holds a payload of up to eight pointer words.
	P8 [8]unsafe.Pointer
)

// Storage is the set of arena types a container can embed. The size of
// the chosen type is the container's capacity.
type Storage interface {
	~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 | ~[6]uint64 | ~[8]uint64 |
		~[1]unsafe.Pointer | ~[2]unsafe.Pointer | ~[3]unsafe.Pointer |
		~[4]unsafe.Pointer | ~[6]unsafe.Pointer | ~[8]unsafe.Pointer
}

// Cap returns the capacity of storage class S in bytes.
func Cap[S Storage]() int {
	var s S
	return int(unsafe.Sizeof(s))
}

// Fits reports whether a payload of type F can be bound into storage
// class S: its size must not exceed the capacity and its word layout
// must match the storage family.
func Fits[S Storage, F any]() bool {
	return fitCheck[S, F]() == ""
}

// mustFit panics when payload type F cannot live in storage class S.
// Called once per bind; the invoke path performs no checks.
func mustFit[S Storage, F any]() {
	if msg := fitCheck[S, F](); msg != "" {
		panic(msg)
	}
}

// fitCheck validates size and layout, returning a diagnostic message or
// "" when F fits S.
func fitCheck[S Storage, F any]() string {
	ft := reflect.TypeFor[F]()
	st := reflect.TypeFor[S]()
	if ft.Size() > st.Size() {
		return fmt.Sprintf("ifn: payload %v size %d exceeds capacity %d",
			ft, ft.Size(), st.Size())
	}
	cls := shape.Of(ft)
	if cls == shape.Empty {
		return ""
	}
	if cls == shape.Mixed {
		return fmt.Sprintf("ifn: payload %v mixes pointer and scalar words; keep such state behind a single pointer",
			ft)
	}
	if st.Elem().Kind() == reflect.UnsafePointer {
		if cls != shape.Pointers {
			return fmt.Sprintf("ifn: scalar payload %v in pointer storage %v; use the B family",
				ft, st)
		}
		return ""
	}
	if cls != shape.Scalar {
		return fmt.Sprintf("ifn: pointer payload %v in scalar storage %v; use the P family",
			ft, st)
	}
	return ""
}
