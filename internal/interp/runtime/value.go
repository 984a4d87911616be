// Package runtime holds Hetu's value model: the Value sum type, the
// Namespace scope tree, and the HT_Class/HT_Instance/HT_Function runtime
// objects the evaluator builds and dispatches on (spec §3, §9).
//
// Grounded on the teacher's internal/interp/runtime package — a Value
// interface implemented by concrete wrapper structs, and a linked
// Environment/Namespace tree — simplified to what Hetu's dynamic,
// single-inheritance object model needs: no refcounting, no property
// descriptors, no record/set/variant kinds (those are DWScript-only
// static-typing features this language doesn't have).
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the dynamic runtime value every expression evaluates to
// (spec §9, "Dynamic values → one Value sum").
type Value interface {
	// TypeName is the reserved or class name used by `is` and by error
	// messages — "num", "bool", "String", "List", "Map", "function",
	// "CLASS", or a user class name.
	TypeName() string
	String() string
}

// Null is the sole value of the `null` literal.
type Null struct{}

func (Null) TypeName() string { return "null" }
func (Null) String() string   { return "null" }

// NullValue is the single shared Null instance.
var NullValue = Null{}

// Bool wraps a boolean.
type Bool bool

func (b Bool) TypeName() string { return "bool" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps a float64; Hetu has one numeric type (spec §3, `num`).
type Number float64

func (Number) TypeName() string { return "num" }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String wraps a script string.
type String string

func (String) TypeName() string { return "String" }
func (s String) String() string { return string(s) }

// List is a mutable, ordered sequence. It is a reference type: copying
// a List value copies the pointer, not the backing slice, matching
// spec §3's "the wrapper shell is transient — mutating a wrapped list
// mutates the underlying list."
type List struct {
	Items []Value
}

func NewList(items []Value) *List { return &List{Items: items} }

func (*List) TypeName() string { return "List" }
func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Map is a mutable dictionary keyed by a Value's string form, preserving
// first-insertion order (spec §3, "key→value pairs in insertion order").
type Map struct {
	keys   []string
	values map[string]Value
	orig   map[string]Value // original, non-stringified keys for iteration
}

func NewMap() *Map {
	return &Map{values: map[string]Value{}, orig: map[string]Value{}}
}

func (*Map) TypeName() string { return "Map" }

func mapKey(k Value) string { return k.TypeName() + ":" + k.String() }

func (m *Map) Get(key Value) (Value, bool) {
	v, ok := m.values[mapKey(key)]
	return v, ok
}

func (m *Map) Set(key, val Value) {
	k := mapKey(key)
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
		m.orig[k] = key
	}
	m.values[k] = val
}

func (m *Map) Len() int { return len(m.keys) }

// Range iterates entries in insertion order.
func (m *Map) Range(f func(key, val Value) bool) {
	for _, k := range m.keys {
		if !f(m.orig[k], m.values[k]) {
			return
		}
	}
}

func (m *Map) String() string {
	parts := make([]string, 0, m.Len())
	m.Range(func(k, v Value) bool {
		parts = append(parts, k.String()+": "+v.String())
		return true
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

// NativeHandle wraps an opaque host-owned value, used by external
// classes to carry whatever the host's constructor returned (spec §4.6).
type NativeHandle struct {
	Underlying any
}

func (NativeHandle) TypeName() string { return "NativeHandle" }
func (h NativeHandle) String() string { return fmt.Sprintf("%v", h.Underlying) }

// IsTruthy implements the language's single notion of truthiness: only
// `false` and `null` are falsey.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case Null:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Equals implements deep value equality on primitives and identity on
// objects/functions/classes (spec §4.5, "Binary").
func Equals(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	default:
		return a == b
	}
}
