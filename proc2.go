// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import "unsafe"

// Proc2 is an inline container for a two-argument procedure (no
// result). This is the signature of a mutation strategy, such as a
// translation applied to a shape, where repeated heap-boxed closures
// would dominate the hot loop. See Func for the storage and lifecycle
// contract.
type Proc2[A, B any, S Storage] struct {
	ops   proc2Ops[A, B]
	arena S
}

type proc2Ops[A, B any] struct {
	invoke  func(p unsafe.Pointer, a A, b B)
	clone   func(dst, src unsafe.Pointer)
	destroy func(p unsafe.Pointer)
}

func invokeProc2[F Runner2[A, B], A, B any](p unsafe.Pointer, a A, b B) {
	(*(*F)(p)).Invoke(a, b)
}

// BindProc2 copies fn into a new Proc2's arena and binds its dispatch
// table. Panics when fn's type does not fit storage class S.
func BindProc2[S Storage, A, B any, F Runner2[A, B]](fn F) Proc2[A, B, S] {
	mustFit[S, F]()
	var f Proc2[A, B, S]
	*(*F)(unsafe.Pointer(&f.arena)) = fn
	f.ops = proc2Ops[A, B]{
		invoke:  invokeProc2[F, A, B],
		clone:   clonePayload[F],
		destroy: destroyOp[F](),
	}
	return f
}

// RebindProc2 destroys f's current payload, then binds fn in its place.
func RebindProc2[S Storage, A, B any, F Runner2[A, B]](f *Proc2[A, B, S], fn F) {
	f.Destroy()
	*f = BindProc2[S, A, B](fn)
}

// Invoke forwards a and b to the bound payload. Panics on an unbound or
// destroyed container.
func (f *Proc2[A, B, S]) Invoke(a A, b B) {
	f.ops.invoke(unsafe.Pointer(&f.arena), a, b)
}

// Bound reports whether f currently holds a payload.
func (f *Proc2[A, B, S]) Bound() bool {
	return f.ops.invoke != nil
}

// Cap returns the arena capacity in bytes.
func (f *Proc2[A, B, S]) Cap() int {
	return int(unsafe.Sizeof(f.arena))
}

// Clone returns an independent copy of f.
func (f *Proc2[A, B, S]) Clone() Proc2[A, B, S] {
	var c Proc2[A, B, S]
	if f.ops.clone == nil {
		return c
	}
	c.ops = f.ops
	f.ops.clone(unsafe.Pointer(&c.arena), unsafe.Pointer(&f.arena))
	return c
}

// Assign destroys f's current payload, then clones src's payload into
// f's arena. src is a by-value snapshot; see Func.Assign.
func (f *Proc2[A, B, S]) Assign(src Proc2[A, B, S]) {
	f.Destroy()
	if src.ops.clone == nil {
		return
	}
	f.ops = src.ops
	src.ops.clone(unsafe.Pointer(&f.arena), unsafe.Pointer(&src.arena))
}

// Destroy runs the payload's destroy operation exactly once and clears
// the arena, leaving f unbound.
func (f *Proc2[A, B, S]) Destroy() {
	if f.ops.destroy == nil {
		return
	}
	f.ops.destroy(unsafe.Pointer(&f.arena))
	f.ops = proc2Ops[A, B]{}
	var zero S
	f.arena = zero
}
