package runtime

import "fmt"

// Binding is one entry in a Namespace: a declared variable, parameter,
// field, or function/class slot (spec §3, "Namespace").
type Binding struct {
	DeclaredType string // reserved or class type name; "" means `any`
	Value        Value
	Mutable      bool
	Initialized  bool
}

// Namespace is a scope: globals, a function activation, a block, a
// class's static members, or an instance's fields. Lookup walks the
// Outer chain (spec §3, "Name lookup is lexical").
//
// Grounded on the teacher's Environment, generalized from a flat
// case-insensitive store to a declaration-record store so mutability
// and initialization state travel with the binding (spec §4.4/§4.5
// need both to enforce immutable-write and use-of-uninitialized).
type Namespace struct {
	Name    string
	entries map[string]*Binding
	Outer   *Namespace
}

func NewNamespace(name string, outer *Namespace) *Namespace {
	return &Namespace{Name: name, entries: map[string]*Binding{}, Outer: outer}
}

// Declare creates a new binding in this namespace only, overwriting any
// existing local binding of the same name (the resolver is responsible
// for rejecting duplicate declarations before evaluation reaches here).
func (ns *Namespace) Declare(name string, b *Binding) {
	ns.entries[name] = b
}

// Local returns the binding declared directly in this namespace,
// without searching Outer.
func (ns *Namespace) Local(name string) (*Binding, bool) {
	b, ok := ns.entries[name]
	return b, ok
}

// Lookup walks exactly dist enclosures outward from ns and returns the
// binding there, or the local one if dist is 0. Used when the resolver
// recorded a distance for a use-site (spec §4.5).
func (ns *Namespace) Lookup(name string, dist int) (*Binding, bool) {
	target := ns
	for i := 0; i < dist; i++ {
		if target.Outer == nil {
			return nil, false
		}
		target = target.Outer
	}
	return target.Local(name)
}

// Resolve walks the full enclosing chain, innermost first, used for
// unresolved (global-fallback) use-sites.
func (ns *Namespace) Resolve(name string) (*Binding, bool) {
	for cur := ns; cur != nil; cur = cur.Outer {
		if b, ok := cur.entries[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// Get reads a value by full-chain lookup. Returns an error if undefined.
func (ns *Namespace) Get(name string) (Value, error) {
	b, ok := ns.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("undefined identifier %q", name)
	}
	return b.Value, nil
}

// Range iterates the bindings declared directly in this namespace.
func (ns *Namespace) Range(f func(name string, b *Binding) bool) {
	for name, b := range ns.entries {
		if !f(name, b) {
			return
		}
	}
}

func (ns *Namespace) String() string { return "namespace " + ns.Name }
