package runtime

import "github.com/hetu-script/hetu-go/pkg/ast"

// NativeFunc is the host-callable shape every extern binds to (spec §6,
// "Native function signature"): receiver is nil for a free function,
// positional and named carry the evaluated call-site arguments.
type NativeFunc func(receiver Value, positional []Value, named map[string]Value) (Value, error)

// HT_Function wraps a FuncDecl plus the namespace in effect when it was
// declared — its lexical context, which is what makes closures work
// (spec §3, "HT_Function"). A bound instance method additionally
// carries Receiver so `this` resolves inside the activation without
// the namespace needing to know it is a method call.
type HT_Function struct {
	Decl      *ast.FuncDecl
	Closure   *Namespace
	Native    NativeFunc // non-nil for an `external` function/method
	Receiver  Value      // non-nil once bound to an instance
}

func (f *HT_Function) TypeName() string { return "function" }
func (f *HT_Function) String() string {
	if f.Decl != nil && f.Decl.Name != "" {
		return "function " + f.Decl.Name
	}
	return "function"
}

// Bind returns a copy of f bound to receiver, used when an instance
// method is fetched off an HT_Instance (spec §4.5, "MemberGet ...
// dispatch to the receiver's fetch").
func (f *HT_Function) Bind(receiver Value) *HT_Function {
	bound := *f
	bound.Receiver = receiver
	return &bound
}

func (f *HT_Function) IsExternal() bool { return f.Native != nil }
