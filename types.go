// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn

// Callable is the payload contract for Func: a value whose captured
// state lives in its fields and whose call is its Invoke method.
//
// This is the no-allocation alternative to a Go closure: a closure boxes
// its captures on the heap when it is created, while a Callable struct
// is copied into the container's inline arena.
//
// Example:
//
//	type addN struct{ n int }
//
//	func (a addN) Invoke(x int) int { return x + a.n }
//
//	f := ifn.Bind[ifn.B8, int, int](addN{n: 3})
type Callable[In, Out any] interface {
	Invoke(In) Out
}

// Callable2 is the payload contract for Func2.
type Callable2[A, B, Out any] interface {
	Invoke(A, B) Out
}

// Runner is the payload contract for Proc: one argument, no result.
type Runner[In any] interface {
	Invoke(In)
}

// Runner2 is the payload contract for Proc2: two arguments, no result.
// This is the shape of a translation strategy: Invoke(shape, offset).
type Runner2[A, B any] interface {
	Invoke(A, B)
}

// Destroyer is an optional payload hook. When a bound payload implements
// Destroyer, the container's destroy operation calls Destroy exactly
// once: when the container is destroyed, or when its payload is
// replaced through Assign or a Rebind function. The hook is detected
// once at bind time; destroy is not a hot path.
type Destroyer interface {
	Destroy()
}

// Fn adapts a plain func value into a Callable payload.
// A func value is a single pointer word: use P1 storage or wider.
type Fn[In, Out any] func(In) Out

// Invoke calls the adapted func value.
func (f Fn[In, Out]) Invoke(in In) Out { return f(in) }

// Fn2 adapts a plain two-argument func value into a Callable2 payload.
type Fn2[A, B, Out any] func(A, B) Out

// Invoke calls the adapted func value.
func (f Fn2[A, B, Out]) Invoke(a A, b B) Out { return f(a, b) }

// Pr adapts a plain func value with no result into a Runner payload.
type Pr[In any] func(In)

// Invoke calls the adapted func value.
func (p Pr[In]) Invoke(in In) { p(in) }

// Pr2 adapts a plain two-argument func value with no result into a
// Runner2 payload.
type Pr2[A, B any] func(A, B)

// Invoke calls the adapted func value.
func (p Pr2[A, B]) Invoke(a A, b B) { p(a, b) }
