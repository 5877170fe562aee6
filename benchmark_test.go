// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ifn"
)

// adder is the common payload across the dispatch baselines.
type adder struct{ n int }

func (a adder) Invoke(x int) int { return x + a.n }

type invoker interface {
	Invoke(x int) int
}

var sink int

// =============================================================================
// Dispatch Baselines (what one Invoke costs relative to the alternatives)
// =============================================================================

func BenchmarkDirectCall(b *testing.B) {
	a := adder{n: 3}
	for i := range b.N {
		sink = a.Invoke(i)
	}
}

func BenchmarkFuncValue(b *testing.B) {
	n := 3
	f := func(x int) int { return x + n }
	b.ResetTimer()
	for i := range b.N {
		sink = f(i)
	}
}

func BenchmarkInterfaceDispatch(b *testing.B) {
	var v invoker = adder{n: 3}
	b.ResetTimer()
	for i := range b.N {
		sink = v.Invoke(i)
	}
}

func BenchmarkInlineInvoke(b *testing.B) {
	f := ifn.Bind[ifn.B8, int, int](adder{n: 3})
	b.ResetTimer()
	for i := range b.N {
		sink = f.Invoke(i)
	}
}

func BenchmarkInlineInvokeFuncPayload(b *testing.B) {
	n := 3
	f := ifn.Bind[ifn.P1, int, int](ifn.Fn[int, int](func(x int) int { return x + n }))
	b.ResetTimer()
	for i := range b.N {
		sink = f.Invoke(i)
	}
}

// =============================================================================
// Lifecycle Costs
// =============================================================================

func BenchmarkBind(b *testing.B) {
	for i := range b.N {
		f := ifn.Bind[ifn.B8, int, int](adder{n: i})
		sink = f.Invoke(i)
	}
}

func BenchmarkClone(b *testing.B) {
	f := ifn.Bind[ifn.B8, int, int](adder{n: 3})
	b.ResetTimer()
	for i := range b.N {
		g := f.Clone()
		sink = g.Invoke(i)
	}
}

func BenchmarkAssign(b *testing.B) {
	f := ifn.Bind[ifn.B8, int, int](adder{n: 3})
	g := ifn.Bind[ifn.B8, int, int](adder{n: 4})
	b.ResetTimer()
	for range b.N {
		g.Assign(f)
	}
}

// =============================================================================
// Parallel Invocation (distinct containers; instances are independent)
// =============================================================================

func BenchmarkInlineInvoke_Parallel(b *testing.B) {
	var total atomix.Int64

	b.RunParallel(func(pb *testing.PB) {
		f := ifn.Bind[ifn.B8, int, int](adder{n: 1})
		acc := 0
		for pb.Next() {
			acc = f.Invoke(acc)
		}
		total.Add(int64(acc))
	})

	sink = int(total.Load())
}
