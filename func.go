// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

import "unsafe"

// Func is an inline container for a unary callable with a result.
//
// The payload lives in the arena embedded in the struct; the operations
// table is bound to the payload's concrete type at bind time and stored
// by value, so a Func needs no heap allocation at all. Copying a Func
// copies its payload (value semantics).
//
// The zero Func is unbound: Invoke panics, Destroy is a no-op.
type Func[In, Out any, S Storage] struct {
	ops   funcOps[In, Out]
	arena S
}

// funcOps is the dispatch table for a bound payload: one operation per
// lifecycle action, each closed over the payload's concrete type.
type funcOps[In, Out any] struct {
	invoke  func(p unsafe.Pointer, in In) Out
	clone   func(dst, src unsafe.Pointer)
	destroy func(p unsafe.Pointer)
}

// invokeFunc calls the payload stored at p.
func invokeFunc[F Callable[In, Out], In, Out any](p unsafe.Pointer, in In) Out {
	return (*(*F)(p)).Invoke(in)
}

// Bind copies fn into a new Func's arena and binds its dispatch table.
//
// Panics when fn's type is larger than Cap[S] or its word layout does
// not match S's storage family. Checked here once; Invoke never checks.
func Bind[S Storage, In, Out any, F Callable[In, Out]](fn F) Func[In, Out, S] {
	mustFit[S, F]()
	var f Func[In, Out, S]
	*(*F)(unsafe.Pointer(&f.arena)) = fn
	f.ops = funcOps[In, Out]{
		invoke:  invokeFunc[F, In, Out],
		clone:   clonePayload[F],
		destroy: destroyOp[F](),
	}
	return f
}

// Rebind destroys f's current payload, then binds fn in its place.
// The destroy operation of the outgoing payload runs exactly once and
// the arena is cleared before the new payload is placed, so nothing of
// the previous payload survives the exchange.
func Rebind[S Storage, In, Out any, F Callable[In, Out]](f *Func[In, Out, S], fn F) {
	f.Destroy()
	*f = Bind[S, In, Out](fn)
}

// Invoke forwards in to the bound payload and returns its result.
// Panics on an unbound or destroyed container.
func (f *Func[In, Out, S]) Invoke(in In) Out {
	return f.ops.invoke(unsafe.Pointer(&f.arena), in)
}

// Bound reports whether f currently holds a payload.
func (f *Func[In, Out, S]) Bound() bool {
	return f.ops.invoke != nil
}

// Cap returns the arena capacity in bytes.
func (f *Func[In, Out, S]) Cap() int {
	return int(unsafe.Sizeof(f.arena))
}

// Clone returns an independent copy of f: the payload is copied through
// the clone operation into the new container's arena. Cloning an
// unbound container yields an unbound container.
func (f *Func[In, Out, S]) Clone() Func[In, Out, S] {
	var c Func[In, Out, S]
	if f.ops.clone == nil {
		return c
	}
	c.ops = f.ops
	f.ops.clone(unsafe.Pointer(&c.arena), unsafe.Pointer(&f.arena))
	return c
}

// Assign destroys f's current payload, then clones src's payload into
// f's arena. src is taken by value: the source arena is a detached
// snapshot, so it never overlaps f's arena and f.Assign(f) keeps the
// observable payload unchanged.
func (f *Func[In, Out, S]) Assign(src Func[In, Out, S]) {
	f.Destroy()
	if src.ops.clone == nil {
		return
	}
	f.ops = src.ops
	src.ops.clone(unsafe.Pointer(&f.arena), unsafe.Pointer(&src.arena))
}

// Destroy runs the payload's destroy operation exactly once and clears
// the arena, leaving f unbound. Destroy on an unbound container is a
// no-op, so the operation can never run twice for one payload.
func (f *Func[In, Out, S]) Destroy() {
	if f.ops.destroy == nil {
		return
	}
	f.ops.destroy(unsafe.Pointer(&f.arena))
	f.ops = funcOps[In, Out]{}
	var zero S
	f.arena = zero
}
