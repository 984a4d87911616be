package runtime_test

import (
	"testing"

	"github.com/hetu-script/hetu-go/internal/interp/runtime"
)

func TestDeclareAndGet(t *testing.T) {
	ns := runtime.NewNamespace("global", nil)
	ns.Declare("x", &runtime.Binding{Value: runtime.Number(42), Mutable: true, Initialized: true})

	v, err := ns.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != runtime.Number(42) {
		t.Errorf("got %v, want 42", v)
	}
}

func TestGetUndefinedIsError(t *testing.T) {
	ns := runtime.NewNamespace("global", nil)
	if _, err := ns.Get("missing"); err == nil {
		t.Fatal("expected an error for an undefined identifier")
	}
}

func TestLookupByDistance(t *testing.T) {
	global := runtime.NewNamespace("global", nil)
	global.Declare("n", &runtime.Binding{Value: runtime.Number(1), Mutable: true, Initialized: true})
	block1 := runtime.NewNamespace("block1", global)
	block2 := runtime.NewNamespace("block2", block1)

	if b, ok := block2.Lookup("n", 2); !ok || b.Value != runtime.Number(1) {
		t.Errorf("Lookup at distance 2: got ok=%v, %v", ok, b)
	}
	if _, ok := block2.Lookup("n", 1); ok {
		t.Error("expected no binding for `n` at distance 1 (it's declared 2 scopes out)")
	}
}

func TestLocalDoesNotSearchOuter(t *testing.T) {
	outer := runtime.NewNamespace("outer", nil)
	outer.Declare("x", &runtime.Binding{Value: runtime.Number(1), Mutable: true, Initialized: true})
	inner := runtime.NewNamespace("inner", outer)

	if _, ok := inner.Local("x"); ok {
		t.Error("Local should not find a binding declared in Outer")
	}
	if _, ok := inner.Resolve("x"); !ok {
		t.Error("Resolve should find a binding declared in Outer")
	}
}

func TestShadowingDeclareOverwritesLocalOnly(t *testing.T) {
	outer := runtime.NewNamespace("outer", nil)
	outer.Declare("x", &runtime.Binding{Value: runtime.Number(1), Mutable: true, Initialized: true})
	inner := runtime.NewNamespace("inner", outer)
	inner.Declare("x", &runtime.Binding{Value: runtime.Number(2), Mutable: true, Initialized: true})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if innerVal != runtime.Number(2) || outerVal != runtime.Number(1) {
		t.Errorf("got inner=%v outer=%v, want 2 and 1", innerVal, outerVal)
	}
}

func TestRangeVisitsEveryLocalBinding(t *testing.T) {
	ns := runtime.NewNamespace("global", nil)
	ns.Declare("a", &runtime.Binding{Value: runtime.Number(1)})
	ns.Declare("b", &runtime.Binding{Value: runtime.Number(2)})

	seen := map[string]bool{}
	ns.Range(func(name string, b *runtime.Binding) bool {
		seen[name] = true
		return true
	})
	if !seen["a"] || !seen["b"] {
		t.Errorf("expected both a and b visited, got %v", seen)
	}
}
