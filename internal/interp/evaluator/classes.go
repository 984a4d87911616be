package evaluator

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// evalClassDecl implements the §4.7 state machine: resolve the
// superclass, declare the class name in the enclosing scope, run
// static initializers and install static methods in the class's own
// static namespace and instance methods in its InstanceMethods table
// (matching how the resolver grouped these declarations), and record
// instance variable declarations for later construction.
func (e *Evaluator) evalClassDecl(ns *runtime.Namespace, cd *ast.ClassDecl) error {
	var super *runtime.HT_Class
	if cd.Super != "" {
		superVal, err := ns.Get(cd.Super)
		if err != nil {
			return herrors.New(herrors.Evaluate, cd.Pos(), "unknown superclass %q", cd.Super)
		}
		sc, ok := superVal.(*runtime.HT_Class)
		if !ok {
			return herrors.New(herrors.Evaluate, cd.Pos(), "%q is not a class", cd.Super)
		}
		super = sc
	}

	class := runtime.NewClass(cd.Name, super, ns)
	class.External = cd.External
	if cd.External {
		if extNS, ok := e.externNS[cd.Name]; ok {
			class.ExternNamespace = extNS
		}
	}
	ns.Declare(cd.Name, &runtime.Binding{Value: class, Mutable: false, Initialized: true})

	for _, v := range cd.Variables {
		if v.Flags.Static {
			if err := e.evalVarDecl(class.Namespace, v); err != nil {
				return err
			}
		} else {
			class.InstanceVars = append(class.InstanceVars, v)
		}
	}

	for _, m := range cd.Methods {
		if m.Flags.Static {
			e.declareFunction(class.Namespace, m)
			continue
		}
		fn := &runtime.HT_Function{Decl: m, Closure: class.Namespace}
		if m.Flags.External {
			if native, ok := e.externals[token.PrefixExternal+cd.Name+"."+m.Name]; ok {
				fn.Native = native
			}
		}
		class.InstanceMethods[instanceMethodKey(m)] = fn
	}

	return nil
}

// instanceMethodKey is the key an instance method is installed under in
// HT_Class.InstanceMethods. Getters and setters can share a user-facing
// name (`get area` / `set area`), so they are stored under the
// __get__/__set__-prefixed synthesized names (spec §4.1); ordinary
// methods, procedures, and the constructor keep their plain declared
// name (the constructor's is already token.PrefixConstructor, assigned
// by the parser).
func instanceMethodKey(m *ast.FuncDecl) string {
	switch m.Kind {
	case ast.FuncGetter:
		return token.PrefixGetter + m.Name
	case ast.FuncSetter:
		return token.PrefixSetter + m.Name
	default:
		return m.Name
	}
}

// ConstructInstance implements spec §4.7's instance-construction
// sequence: allocate an instance namespace, evaluate each instance
// variable's initializer in declaration order with `this` bound, then
// run the constructor (if any); its return value is discarded — the
// constructed instance is always what's returned (spec §4.5, "Class
// call").
func (e *Evaluator) ConstructInstance(class *runtime.HT_Class, positional []runtime.Value, named map[string]runtime.Value) (*runtime.HT_Instance, error) {
	inst := runtime.NewInstance(class)

	if class.External {
		if native, ok := e.externals[token.PrefixExternal+class.Name]; ok {
			handle, err := native(nil, positional, named)
			if err != nil {
				return nil, err
			}
			if h, ok := handle.(runtime.NativeHandle); ok {
				inst.Native = h.Underlying
			} else {
				inst.Native = handle
			}
		}
	}

	for _, vd := range class.AllInstanceVars() {
		var v runtime.Value = runtime.NullValue
		if vd.Initializer != nil {
			val, err := e.evalExpr(inst.Namespace, vd.Initializer)
			if err != nil {
				return nil, err
			}
			v = val
		}
		inst.Declare(vd.Name, &runtime.Binding{Value: v, Mutable: vd.Flags.Mutable, Initialized: true})
	}

	ctor, hasCtor := class.LookupInstanceMethod(token.PrefixConstructor)
	if !hasCtor {
		if len(positional) > 0 || len(named) > 0 {
			return nil, herrors.New(herrors.Evaluate, token.Position{}, "%q has no constructor accepting arguments", class.Name)
		}
		return inst, nil
	}
	if _, err := e.callFunction(ctor.Bind(inst), positional, named); err != nil {
		return nil, err
	}
	return inst, nil
}
