// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import "unsafe"

// Func2 is an inline container for a two-argument callable with a
// result. See Func for the storage and lifecycle contract.
type Func2[A, B, Out any, S Storage] struct {
	ops   func2Ops[A, B, Out]
	arena S
}

type func2Ops[A, B, Out any] struct {
	invoke  func(p unsafe.Pointer, a A, b B) Out
	clone   func(dst, src unsafe.Pointer)
	destroy func(p unsafe.Pointer)
}

func invokeFunc2[F Callable2[A, B, Out], A, B, Out any](p unsafe.Pointer, a A, b B) Out {
	return (*(*F)(p)).Invoke(a, b)
}

// Bind2 copies fn into a new Func2's arena and binds its dispatch
// table. Panics when fn's type does not fit storage class S.
func Bind2[S Storage, A, B, Out any, F Callable2[A, B, Out]](fn F) Func2[A, B, Out, S] {
	mustFit[S, F]()
	var f Func2[A, B, Out, S]
	*(*F)(unsafe.Pointer(&f.arena)) = fn
	f.ops = func2Ops[A, B, Out]{
		invoke:  invokeFunc2[F, A, B, Out],
		clone:   clonePayload[F],
		destroy: destroyOp[F](),
	}
	return f
}

// Rebind2 destroys f's current payload, then binds fn in its place.
func Rebind2[S Storage, A, B, Out any, F Callable2[A, B, Out]](f *Func2[A, B, Out, S], fn F) {
	f.Destroy()
	*f = Bind2[S, A, B, Out](fn)
}

// Invoke forwards a and b to the bound payload and returns its result.
// Panics on an unbound or destroyed container.
func (f *Func2[A, B, Out, S]) Invoke(a A, b B) Out {
	return f.ops.invoke(unsafe.Pointer(&f.arena), a, b)
}

// Bound reports whether f currently holds a payload.
func (f *Func2[A, B, Out, S]) Bound() bool {
	return f.ops.invoke != nil
}

// Cap returns the arena capacity in bytes.
func (f *Func2[A, B, Out, S]) Cap() int {
	return int(unsafe.Sizeof(f.arena))
}

// Clone returns an independent copy of f.
func (f *Func2[A, B, Out, S]) Clone() Func2[A, B, Out, S] {
	var c Func2[A, B, Out, S]
	if f.ops.clone == nil {
		return c
	}
	c.ops = f.ops
	f.ops.clone(unsafe.Pointer(&c.arena), unsafe.Pointer(&f.arena))
	return c
}

// Assign destroys f's current payload, then clones src's payload into
// f's arena. src is a by-value snapshot; see Func.Assign.
func (f *Func2[A, B, Out, S]) Assign(src Func2[A, B, Out, S]) {
	f.Destroy()
	if src.ops.clone == nil {
		return
	}
	f.ops = src.ops
	src.ops.clone(unsafe.Pointer(&f.arena), unsafe.Pointer(&src.arena))
}

// Destroy runs the payload's destroy operation exactly once and clears
// the arena, leaving f unbound.
func (f *Func2[A, B, Out, S]) Destroy() {
	if f.ops.destroy == nil {
		return
	}
	f.ops.destroy(unsafe.Pointer(&f.arena))
	f.ops = func2Ops[A, B, Out]{}
	var zero S
	f.arena = zero
}
