// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shapes implements one small operation, translating every
// shape in a scene by a vector, under several dispatch mechanisms, so
// their costs can be compared on identical work:
//
//   - Iface:    interface method dispatch (Shape.Translate)
//   - Strategy: strategy objects held by interface
//   - Func:     strategies as Go func values (heap-boxed closures)
//   - Inline:   strategies in ifn inline callables (no heap box)
//   - Tagged:   enum tag plus switch
//   - Visitor:  double dispatch through a Visitor
//   - Union:    by-value tagged union, shapes stored contiguously
//
// Scene construction is seeded (see Stream): every builder consumes the
// same draw sequence, so two builders given equal seeds produce scenes
// that stay numerically identical under the same translation passes.
// The benchmarks in this package and the programs under cmd/ rely on
// that to compare mechanisms, not workloads.
package shapes
