// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ifn provides fixed-capacity inline storage for type-erased
// callables.
//
// An ifn container stores a callable payload (a value with an Invoke
// method, or a plain func value through the Fn/Pr adapters) inside a
// buffer embedded directly in the container. No heap allocation is made
// for the payload, and calls dispatch through a small operations table
// bound to the payload's concrete type when it is bound. The containers
// have value semantics: copying one copies its payload.
//
// The package exists for hot loops that would otherwise pay a heap
// allocation per stored closure. The trade is generality for locality:
// the payload must fit the configured capacity and match the storage
// class, both checked once when the payload is bound, never per call.
//
// # Quick Start
//
// Containers are parameterized by call signature and a storage class
// whose size is the capacity:
//
//	// A unary callable with a result, up to 16 bytes of scalar state
//	f := ifn.Bind[ifn.B16, float64, float64](scaleBy{factor: 2.5})
//	y := f.Invoke(4.0)
//
//	// A two-argument procedure capturing one pointer
//	p := ifn.BindProc2[ifn.P1, *Circle, Vector3D](translateStrategy{})
//	p.Invoke(&circle, Vector3D{X: 1})
//
// # Variants
//
// Four containers cover the arity/result matrix:
//
//	Func[In, Out, S]     - one argument, one result
//	Func2[A, B, Out, S]  - two arguments, one result
//	Proc[In, S]          - one argument, no result
//	Proc2[A, B, S]       - two arguments, no result
//
// Payloads implement the matching contract from types.go (Callable,
// Callable2, Runner, Runner2). Plain func values bind through the
// Fn, Fn2, Pr and Pr2 adapter types; a func value occupies one pointer
// word, so P1 storage is enough for any of them.
//
// # Storage Classes
//
// Go's collector scans memory precisely, so opaque byte storage cannot
// hide pointers. The storage classes therefore come in two families:
//
//	B8  B16 B24 B32 B48 B64   scalar payloads only (GC-opaque words)
//	P1  P2  P3  P4  P6  P8    pointer payloads only (GC-scanned words)
//
// Binding classifies the payload type once (a reflect walk, cold path)
// and panics when the payload is oversized or its layout does not match
// the storage family. Payloads mixing pointer and scalar words (strings,
// slices, structs combining both) fit neither family and are rejected;
// restructure such state behind a single pointer instead. Fits reports
// the outcome without binding:
//
//	if !ifn.Fits[ifn.B8, myPayload]() { ... }
//
// A compile-time size assertion would be the ideal here. Go cannot
// introspect a type parameter's size at compile time, so the check runs
// when the payload is bound and panics on violation; the hot invoke path
// carries no checks at all.
//
// # Lifecycle
//
// A container holds exactly one live payload from bind to destroy:
//
//	f := ifn.Bind[ifn.B8, int, int](addN{n: 3})
//	g := f.Clone()              // independent copy of the payload
//	g.Assign(f)                 // destroy g's payload, copy f's in place
//	ifn.Rebind(&f, mulN{n: 2})  // destroy, then bind a new payload
//	f.Destroy()                 // run the destroy operation, clear the arena
//
// Payloads that implement Destroyer get their Destroy method called
// exactly once when the containing slot is destroyed or replaced.
// Destroy on an unbound container is a no-op; Invoke on one panics.
//
// Assign takes its source by value, so the source and destination arenas
// never overlap and no self-assignment guard is needed: assigning a
// container to itself copies through a detached snapshot.
//
// # Thread Safety
//
// None. A container is a value for single-threaded hot loops and carries
// no synchronization. Concurrent access to one instance from multiple
// goroutines is undefined behavior. Distinct instances are independent
// and may be used from different goroutines freely.
//
// # Error Handling
//
// There are no runtime error values. Oversized or ill-shaped payloads
// panic at bind time (a configuration error, not a recoverable
// condition), and use of a container after Destroy is outside the
// contract. Nothing can fail during Invoke beyond what the payload
// itself does.
//
// # Dependencies
//
// The library itself depends only on the standard library. Tests use
// [code.hybscloud.com/atomix] counters; the benchmark programs under
// cmd/ use [github.com/pkg/profile] for CPU profiles.
package ifn
