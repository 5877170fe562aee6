// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ifn_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ifn"
)

// counting is a payload whose Destroy hook counts its invocations.
// One pointer word: pointer-family storage.
type counting struct{ destroyed *atomix.Int64 }

func (c counting) Invoke(x int) int { return x }

func (c counting) Destroy() { c.destroyed.Add(1) }

// marker writes a recognizable value when invoked; 16 bytes of scalar
// state for the residual-state test.
type marker struct{ hi, lo uint64 }

func (m marker) Invoke(x int) int { return int(m.hi^m.lo) + x }

// small is an 8-byte payload bound after marker to confirm nothing of
// the larger predecessor leaks through.
type small struct{ v uint64 }

func (s small) Invoke(x int) int { return int(s.v) + x }

// =============================================================================
// Destroy Accounting
// =============================================================================

// TestDestroyExactlyOnce constructs N containers and destroys each
// once; the payload hook must fire exactly N times, and repeated
// Destroy calls must not fire it again.
func TestDestroyExactlyOnce(t *testing.T) {
	const n = 64
	var destroyed atomix.Int64

	fs := make([]ifn.Func[int, int, ifn.P1], n)
	for i := range fs {
		fs[i] = ifn.Bind[ifn.P1, int, int](counting{destroyed: &destroyed})
	}
	for i := range fs {
		fs[i].Destroy()
	}
	if got := destroyed.Load(); got != n {
		t.Fatalf("destroy count: got %d, want %d", got, n)
	}

	// Second round of Destroy on dead containers: no effect.
	for i := range fs {
		fs[i].Destroy()
		if fs[i].Bound() {
			t.Fatalf("container %d bound after Destroy", i)
		}
	}
	if got := destroyed.Load(); got != n {
		t.Fatalf("destroy count after re-destroy: got %d, want %d", got, n)
	}
}

// TestCloneDestroyAccounting clones a container; destroying both fires
// the hook once per container.
func TestCloneDestroyAccounting(t *testing.T) {
	var destroyed atomix.Int64

	f := ifn.Bind[ifn.P1, int, int](counting{destroyed: &destroyed})
	g := f.Clone()

	f.Destroy()
	g.Destroy()
	if got := destroyed.Load(); got != 2 {
		t.Fatalf("destroy count: got %d, want 2", got)
	}
}

// TestAssignDestroysPrior verifies Assign runs the destination's
// outgoing destroy operation exactly once before cloning the source.
func TestAssignDestroysPrior(t *testing.T) {
	var prior, incoming atomix.Int64

	dst := ifn.Bind[ifn.P1, int, int](counting{destroyed: &prior})
	src := ifn.Bind[ifn.P1, int, int](counting{destroyed: &incoming})

	dst.Assign(src)
	if got := prior.Load(); got != 1 {
		t.Fatalf("prior payload destroy count: got %d, want 1", got)
	}
	if got := incoming.Load(); got != 0 {
		t.Fatalf("source payload destroy count: got %d, want 0", got)
	}

	// dst and src now both carry the incoming payload.
	dst.Destroy()
	src.Destroy()
	if got := incoming.Load(); got != 2 {
		t.Fatalf("incoming payload destroy count: got %d, want 2", got)
	}
	if got := prior.Load(); got != 1 {
		t.Fatalf("prior payload destroy count after teardown: got %d, want 1", got)
	}
}

// TestRebindDestroysPrior verifies Rebind fires the outgoing payload's
// hook exactly once.
func TestRebindDestroysPrior(t *testing.T) {
	var destroyed atomix.Int64

	f := ifn.Bind[ifn.P1, int, int](counting{destroyed: &destroyed})
	ifn.Rebind(&f, counting{destroyed: &destroyed})
	if got := destroyed.Load(); got != 1 {
		t.Fatalf("destroy count after Rebind: got %d, want 1", got)
	}
	f.Destroy()
	if got := destroyed.Load(); got != 2 {
		t.Fatalf("destroy count after Destroy: got %d, want 2", got)
	}
}

// =============================================================================
// Sequential Payload Types
// =============================================================================

// TestRebindDifferentType stores two payload types sequentially in one
// container: construct, destroy, reconstruct. The second payload must
// observe nothing of the first.
func TestRebindDifferentType(t *testing.T) {
	f := ifn.Bind[ifn.B16, int, int](marker{hi: 0xDEADBEEF, lo: 0xFFFFFFFF})
	if got, want := f.Invoke(0), int(0xDEADBEEF^0xFFFFFFFF); got != want {
		t.Fatalf("marker Invoke: got %d, want %d", got, want)
	}

	f.Destroy()
	ifn.Rebind(&f, small{v: 7})
	if got := f.Invoke(1); got != 8 {
		t.Fatalf("small Invoke after rebind: got %d, want 8", got)
	}

	// A zero-state payload after a larger one: the arena was cleared,
	// so the stale high words of marker are gone.
	ifn.Rebind(&f, small{})
	if got := f.Invoke(3); got != 3 {
		t.Fatalf("zero small Invoke after rebind: got %d, want 3", got)
	}
}

// TestDestroyUnbound is the no-op path.
func TestDestroyUnbound(t *testing.T) {
	var f ifn.Func[int, int, ifn.B8]
	f.Destroy() // must not panic
	if f.Bound() {
		t.Fatal("zero container reports Bound")
	}
}

// TestInvokeUnboundPanics: invoking an unbound container is outside the
// contract and must fail loudly.
func TestInvokeUnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Invoke on unbound container did not panic")
		}
	}()
	var f ifn.Func[int, int, ifn.B8]
	f.Invoke(1)
}
