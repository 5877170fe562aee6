// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import "unsafe"

// Proc is an inline container for a unary procedure (no result). See
// Func for the storage and lifecycle contract.
type Proc[In any, S Storage] struct {
	ops   procOps[In]
	arena S
}

type procOps[In any] struct {
	invoke  func(p unsafe.Pointer, in In)
	clone   func(dst, src unsafe.Pointer)
	destroy func(p unsafe.Pointer)
}

func invokeProc[F Runner[In], In any](p unsafe.Pointer, in In) {
	(*(*F)(p)).Invoke(in)
}

// BindProc copies fn into a new Proc's arena and binds its dispatch
// table. Panics when fn's type does not fit storage class S.
func BindProc[S Storage, In any, F Runner[In]](fn F) Proc[In, S] {
	mustFit[S, F]()
	var f Proc[In, S]
	*(*F)(unsafe.Pointer(&f.arena)) = fn
	f.ops = procOps[In]{
		invoke:  invokeProc[F, In],
		clone:   clonePayload[F],
		destroy: destroyOp[F](),
	}
	return f
}

// RebindProc destroys f's current payload, then binds fn in its place.
func RebindProc[S Storage, In any, F Runner[In]](f *Proc[In, S], fn F) {
	f.Destroy()
	*f = BindProc[S, In](fn)
}

// Invoke forwards in to the bound payload. Panics on an unbound or
// destroyed container.
func (f *Proc[In, S]) Invoke(in In) {
	f.ops.invoke(unsafe.Pointer(&f.arena), in)
}

// Bound reports whether f currently holds a payload.
func (f *Proc[In, S]) Bound() bool {
	return f.ops.invoke != nil
}

// Cap returns the arena capacity in bytes.
func (f *Proc[In, S]) Cap() int {
	return int(unsafe.Sizeof(f.arena))
}

// Clone returns an independent copy of f.
func (f *Proc[In, S]) Clone() Proc[In, S] {
	var c Proc[In, S]
	if f.ops.clone == nil {
		return c
	}
	c.ops = f.ops
	f.ops.clone(unsafe.Pointer(&c.arena), unsafe.Pointer(&f.arena))
	return c
}

// Assign destroys f's current payload, then clones src's payload into
// f's arena. src is a by-value snapshot; see Func.Assign.
func (f *Proc[In, S]) Assign(src Proc[In, S]) {
	f.Destroy()
	if src.ops.clone == nil {
		return
	}
	f.ops = src.ops
	src.ops.clone(unsafe.Pointer(&f.arena), unsafe.Pointer(&src.arena))
}

// Destroy runs the payload's destroy operation exactly once and clears
// the arena, leaving f unbound.
func (f *Proc[In, S]) Destroy() {
	if f.ops.destroy == nil {
		return
	}
	f.ops.destroy(unsafe.Pointer(&f.arena))
	f.ops = procOps[In]{}
	var zero S
	f.arena = zero
}
