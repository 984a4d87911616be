package evaluator

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// declareFunction installs fd as an HT_Function closing over ns,
// bound under its own name in ns (spec §3 "HT_Function").
func (e *Evaluator) declareFunction(ns *runtime.Namespace, fd *ast.FuncDecl) *runtime.HT_Function {
	fn := &runtime.HT_Function{Decl: fd, Closure: ns}
	if fd.Flags.External {
		qualified := token.PrefixExternal + qualifiedName(fd)
		if native, ok := e.externals[qualified]; ok {
			fn.Native = native
		}
	}
	ns.Declare(fd.Name, &runtime.Binding{Value: fn, Mutable: false, Initialized: true})
	return fn
}

func qualifiedName(fd *ast.FuncDecl) string {
	if fd.OwningClass != "" {
		return fd.OwningClass + "." + fd.Name
	}
	return fd.Name
}

// callFunction implements spec §4.5's "Function call": a fresh
// activation enclosed by the function's captured declaration context
// (or, for a bound instance method, by the receiver's instance
// namespace — see below), parameters bound per the
// positional/optional/named/variadic rules, and `return` caught as a
// non-local exit.
func (e *Evaluator) callFunction(fn *runtime.HT_Function, positional []runtime.Value, named map[string]runtime.Value) (result runtime.Value, err error) {
	if fn.IsExternal() {
		return fn.Native(fn.Receiver, positional, named)
	}

	e.callDepth++
	e.callStack = append(e.callStack, herrors.StackFrame{Pos: fn.Decl.Pos(), FunctionName: qualifiedName(fn.Decl)})
	defer func() {
		e.callDepth--
		if err != nil {
			if herr, ok := err.(*herrors.HetuError); ok {
				herr.WithStack(e.callStack)
			}
		}
		e.callStack = e.callStack[:len(e.callStack)-1]
	}()
	if e.callDepth > e.MaxCallDepth {
		return nil, herrors.New(herrors.Evaluate, fn.Decl.Pos(), "maximum call depth exceeded")
	}

	// An instance method's activation encloses directly over the
	// receiver's instance namespace, not the class's static namespace
	// (fn.Closure) — this mirrors the resolver's three-level layout
	// for a method body, static(super) -> instance(this, fields) ->
	// activation(params) (resolver.go's resolveClassDecl/resolveFuncDecl),
	// so a bare `this` or unqualified field reference resolved at
	// distance 1 lands in the instance namespace that actually holds
	// them. `this` itself lives in that instance namespace (seeded by
	// runtime.NewInstance), not re-declared per call.
	enclosing := fn.Closure
	if inst, ok := fn.Receiver.(*runtime.HT_Instance); ok {
		enclosing = inst.Namespace
	}
	activation := runtime.NewNamespace(fn.Decl.Name, enclosing)
	if err := e.bindParams(activation, fn.Decl, positional, named); err != nil {
		return nil, err
	}

	result = runtime.NullValue
	defer catchReturn(&result, &err)

	if fn.Decl.Body != nil {
		for _, st := range fn.Decl.Body.Statements {
			if stmtErr := e.evalStmt(activation, st); stmtErr != nil {
				return nil, stmtErr
			}
		}
	}
	return result, nil
}

// bindParams implements spec §4.5's four-step parameter binding.
func (e *Evaluator) bindParams(activation *runtime.Namespace, fd *ast.FuncDecl, positional []runtime.Value, named map[string]runtime.Value) error {
	pos := 0

	for _, p := range fd.Params {
		switch {
		case p.Flags.NamedParam:
			if v, ok := named[p.Name]; ok {
				activation.Declare(p.Name, &runtime.Binding{Value: v, Mutable: true, Initialized: true})
				continue
			}
			v, err := e.defaultOrNull(activation, p)
			if err != nil {
				return err
			}
			activation.Declare(p.Name, &runtime.Binding{Value: v, Mutable: true, Initialized: true})
		case p.Flags.OptionalParam:
			if pos < len(positional) {
				activation.Declare(p.Name, &runtime.Binding{Value: positional[pos], Mutable: true, Initialized: true})
				pos++
				continue
			}
			v, err := e.defaultOrNull(activation, p)
			if err != nil {
				return err
			}
			activation.Declare(p.Name, &runtime.Binding{Value: v, Mutable: true, Initialized: true})
		default:
			if pos >= len(positional) {
				return herrors.New(herrors.Evaluate, fd.Pos(), "too few arguments to %q: expected at least %d, got %d", fd.Name, fd.Arity(), len(positional))
			}
			activation.Declare(p.Name, &runtime.Binding{Value: positional[pos], Mutable: true, Initialized: true})
			pos++
		}
	}

	if fd.Variadic {
		// "arguments" is seeded into the resolver's activation scope for
		// a variadic function (resolver.go's resolveFuncDecl), so a body
		// reference to it resolves to this same activation (distance 0 from
		// the body's top level, more from nested blocks) instead of falling
		// through to an unresolved global lookup.
		rest := append([]runtime.Value(nil), positional[min(pos, len(positional)):]...)
		activation.Declare("arguments", &runtime.Binding{Value: runtime.NewList(rest), Mutable: false, Initialized: true})
	}

	for name := range named {
		if !hasNamedParam(fd, name) {
			return herrors.New(herrors.Evaluate, fd.Pos(), "unknown named argument %q for %q", name, fd.Name)
		}
	}

	return nil
}

func hasNamedParam(fd *ast.FuncDecl, name string) bool {
	for _, p := range fd.Params {
		if p.Flags.NamedParam && p.Name == name {
			return true
		}
	}
	return false
}

func (e *Evaluator) defaultOrNull(ns *runtime.Namespace, p *ast.VarDecl) (runtime.Value, error) {
	if p.Default == nil {
		return runtime.NullValue, nil
	}
	return e.evalExpr(ns, p.Default)
}
