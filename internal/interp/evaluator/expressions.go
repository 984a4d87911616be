package evaluator

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

func (e *Evaluator) evalExpr(ns *runtime.Namespace, expr ast.Expr) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.NullExpr:
		return runtime.NullValue, nil
	case *ast.ConstExpr:
		return e.pool.intern(x.Token, x.Kind)
	case *ast.GroupExpr:
		return e.evalExpr(ns, x.Inner)
	case *ast.LiteralVectorExpr:
		return e.evalLiteralVector(ns, x)
	case *ast.LiteralDictExpr:
		return e.evalLiteralDict(ns, x)
	case *ast.SymbolExpr:
		return e.evalSymbol(ns, x)
	case *ast.ThisExpr:
		return e.evalThis(ns, x)
	case *ast.UnaryExpr:
		return e.evalUnary(ns, x)
	case *ast.BinaryExpr:
		return e.evalBinary(ns, x)
	case *ast.SubGetExpr:
		return e.evalSubGet(ns, x)
	case *ast.SubSetExpr:
		return e.evalSubSet(ns, x)
	case *ast.MemberGetExpr:
		return e.evalMemberGet(ns, x)
	case *ast.MemberSetExpr:
		return e.evalMemberSet(ns, x)
	case *ast.NamedArgExpr:
		return e.evalExpr(ns, x.Value)
	case *ast.CallExpr:
		return e.evalCall(ns, x)
	case *ast.AssignExpr:
		return e.evalAssign(ns, x)
	default:
		return nil, herrors.New(herrors.Evaluate, expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteralVector(ns *runtime.Namespace, x *ast.LiteralVectorExpr) (runtime.Value, error) {
	items := make([]runtime.Value, len(x.Items))
	for i, it := range x.Items {
		v, err := e.evalExpr(ns, it)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return runtime.NewList(items), nil
}

func (e *Evaluator) evalLiteralDict(ns *runtime.Namespace, x *ast.LiteralDictExpr) (runtime.Value, error) {
	m := runtime.NewMap()
	for _, en := range x.Entries {
		k, err := e.evalExpr(ns, en.Key)
		if err != nil {
			return nil, err
		}
		v, err := e.evalExpr(ns, en.Value)
		if err != nil {
			return nil, err
		}
		m.Set(k, v)
	}
	return m, nil
}

// evalSymbol implements spec §4.5's "Symbol" rule: a recorded distance
// reads directly from that enclosure; otherwise the full chain is
// walked, which lands on globals since every closure chain roots there
// (spec §4.4, "If not found, do nothing — the evaluator will look
// globally").
func (e *Evaluator) evalSymbol(ns *runtime.Namespace, x *ast.SymbolExpr) (runtime.Value, error) {
	if x.Resolved {
		b, ok := ns.Lookup(x.Name, x.Distance)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "undefined identifier %q", x.Name)
		}
		if !b.Initialized {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "%q used before it is initialized", x.Name)
		}
		return b.Value, nil
	}
	v, err := ns.Get(x.Name)
	if err != nil {
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "undefined identifier %q", x.Name)
	}
	return v, nil
}

func (e *Evaluator) evalThis(ns *runtime.Namespace, x *ast.ThisExpr) (runtime.Value, error) {
	var b *runtime.Binding
	var ok bool
	if x.Resolved {
		b, ok = ns.Lookup("this", x.Distance)
	} else {
		b, ok = ns.Resolve("this")
	}
	if !ok {
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "'this' used outside of an instance method")
	}
	return b.Value, nil
}

func (e *Evaluator) evalUnary(ns *runtime.Namespace, x *ast.UnaryExpr) (runtime.Value, error) {
	v, err := e.evalExpr(ns, x.Operand)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case "-":
		n, ok := v.(runtime.Number)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "unary '-' requires a num operand, got %s", v.TypeName())
		}
		return -n, nil
	case "!":
		b, ok := v.(runtime.Bool)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "unary '!' requires a bool operand, got %s", v.TypeName())
		}
		return !b, nil
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "unknown unary operator %q", x.Op)
	}
}

// evalBinary implements spec §4.5's "Binary" rule, including `&&`/`||`
// short-circuiting on the left operand.
func (e *Evaluator) evalBinary(ns *runtime.Namespace, x *ast.BinaryExpr) (runtime.Value, error) {
	if x.Op == "&&" || x.Op == "||" {
		left, err := e.evalExpr(ns, x.Left)
		if err != nil {
			return nil, err
		}
		lb, ok := left.(runtime.Bool)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "'%s' requires bool operands, got %s", x.Op, left.TypeName())
		}
		if x.Op == "&&" && !bool(lb) {
			return runtime.Bool(false), nil
		}
		if x.Op == "||" && bool(lb) {
			return runtime.Bool(true), nil
		}
		right, err := e.evalExpr(ns, x.Right)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(runtime.Bool)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "'%s' requires bool operands, got %s", x.Op, right.TypeName())
		}
		return rb, nil
	}

	left, err := e.evalExpr(ns, x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ns, x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case "==":
		return runtime.Bool(runtime.Equals(left, right)), nil
	case "!=":
		return runtime.Bool(!runtime.Equals(left, right)), nil
	case "is":
		class, ok := right.(*runtime.HT_Class)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "right side of 'is' must be a class")
		}
		return runtime.Bool(typeOf(left) == class.Name), nil
	case "+":
		return evalPlus(x, left, right)
	case "-", "*", "/", "%":
		ln, lok := left.(runtime.Number)
		rn, rok := right.(runtime.Number)
		if !lok || !rok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "'%s' requires num operands, got %s and %s", x.Op, left.TypeName(), right.TypeName())
		}
		return numericOp(x.Op, ln, rn)
	case "<", ">", "<=", ">=":
		ln, lok := left.(runtime.Number)
		rn, rok := right.(runtime.Number)
		if !lok || !rok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "'%s' requires num operands, got %s and %s", x.Op, left.TypeName(), right.TypeName())
		}
		return compareOp(x.Op, ln, rn), nil
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "unknown binary operator %q", x.Op)
	}
}

// typeOf returns the class name backing an `is` comparison's left
// operand: a user instance's own class name, or the reserved type name
// for a built-in value (spec §4.5, "compares by the runtime type-of the
// left operand's class name").
func typeOf(v runtime.Value) string {
	if inst, ok := v.(*runtime.HT_Instance); ok {
		return inst.Class.Name
	}
	return v.TypeName()
}

func evalPlus(x *ast.BinaryExpr, left, right runtime.Value) (runtime.Value, error) {
	ls, lok := left.(runtime.String)
	rs, rok := right.(runtime.String)
	if lok && rok {
		return ls + rs, nil
	}
	ln, lnok := left.(runtime.Number)
	rn, rnok := right.(runtime.Number)
	if lnok && rnok {
		return ln + rn, nil
	}
	return nil, herrors.New(herrors.Evaluate, x.Pos(), "'+' requires two strings or two nums, got %s and %s", left.TypeName(), right.TypeName())
}

func numericOp(op string, l, r runtime.Number) (runtime.Value, error) {
	switch op {
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	case "%":
		li, ri := int64(l), int64(r)
		return runtime.Number(li % ri), nil
	}
	panic("unreachable")
}

func compareOp(op string, l, r runtime.Number) runtime.Value {
	switch op {
	case "<":
		return runtime.Bool(l < r)
	case ">":
		return runtime.Bool(l > r)
	case "<=":
		return runtime.Bool(l <= r)
	case ">=":
		return runtime.Bool(l >= r)
	}
	panic("unreachable")
}

// evalSubGet/evalSubSet implement spec §4.5: raw lists (integer keys),
// raw maps (any key), or a wrapper instance whose underlying value is
// one of those.
func (e *Evaluator) evalSubGet(ns *runtime.Namespace, x *ast.SubGetExpr) (runtime.Value, error) {
	coll, err := e.evalExpr(ns, x.Collection)
	if err != nil {
		return nil, err
	}
	key, err := e.evalExpr(ns, x.Key)
	if err != nil {
		return nil, err
	}
	switch c := coll.(type) {
	case *runtime.List:
		idx, ok := key.(runtime.Number)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "list index must be a num")
		}
		i := int(idx)
		if i < 0 || i >= len(c.Items) {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "index %d out of range (length %d)", i, len(c.Items))
		}
		return c.Items[i], nil
	case *runtime.Map:
		v, ok := c.Get(key)
		if !ok {
			return runtime.NullValue, nil
		}
		return v, nil
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot subscript a %s", coll.TypeName())
	}
}

func (e *Evaluator) evalSubSet(ns *runtime.Namespace, x *ast.SubSetExpr) (runtime.Value, error) {
	coll, err := e.evalExpr(ns, x.Collection)
	if err != nil {
		return nil, err
	}
	key, err := e.evalExpr(ns, x.Key)
	if err != nil {
		return nil, err
	}
	val, err := e.evalExpr(ns, x.Value)
	if err != nil {
		return nil, err
	}
	switch c := coll.(type) {
	case *runtime.List:
		idx, ok := key.(runtime.Number)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "list index must be a num")
		}
		i := int(idx)
		if i < 0 || i >= len(c.Items) {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "index %d out of range (length %d)", i, len(c.Items))
		}
		c.Items[i] = val
		return val, nil
	case *runtime.Map:
		c.Set(key, val)
		return val, nil
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot subscript a %s", coll.TypeName())
	}
}

// evalMemberGet implements spec §4.5's "MemberGet": wrap a bare
// primitive in its built-in class shell if one was registered, then
// dispatch through the receiver's own fetch logic.
func (e *Evaluator) evalMemberGet(ns *runtime.Namespace, x *ast.MemberGetExpr) (runtime.Value, error) {
	coll, err := e.evalExpr(ns, x.Collection)
	if err != nil {
		return nil, err
	}
	if x.Name == "length" {
		if l, ok := coll.(*runtime.List); ok {
			return runtime.Number(len(l.Items)), nil
		}
		if s, ok := coll.(runtime.String); ok {
			return runtime.Number(len([]rune(string(s)))), nil
		}
	}
	switch c := coll.(type) {
	case namespaceValue:
		b, ok := c.Local(x.Name)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "undefined member %q", x.Name)
		}
		return b.Value, nil
	case *runtime.HT_Class:
		b, ok := c.Local(x.Name)
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "class %q has no static member %q", c.Name, x.Name)
		}
		return b.Value, nil
	case *runtime.HT_Instance:
		v, ok, gErr := e.fetchInstanceMember(c, x.Name)
		if gErr != nil {
			return nil, gErr
		}
		if !ok {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "undefined member %q on %s", x.Name, c.Class.Name)
		}
		return v, nil
	default:
		if inst, ok := e.wrapPrimitive(coll); ok {
			v, found, gErr := e.fetchInstanceMember(inst, x.Name)
			if gErr != nil {
				return nil, gErr
			}
			if found {
				return v, nil
			}
		}
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot access member %q on a %s", x.Name, coll.TypeName())
	}
}

// fetchInstanceMember implements spec §4.4/§4.5's getter dispatch: a
// `get name` method installed under the __get__-prefixed key (see
// instanceMethodKey) is invoked with zero arguments and its result
// returned in place of a field read; otherwise this falls back to
// HT_Instance.Fetch's ordinary field/method lookup.
func (e *Evaluator) fetchInstanceMember(inst *runtime.HT_Instance, name string) (runtime.Value, bool, error) {
	if getter, ok := inst.Class.LookupInstanceMethod(token.PrefixGetter + name); ok {
		v, err := e.callFunction(getter.Bind(inst), nil, nil)
		return v, true, err
	}
	v, ok := inst.Fetch(name)
	return v, ok, nil
}

func (e *Evaluator) evalMemberSet(ns *runtime.Namespace, x *ast.MemberSetExpr) (runtime.Value, error) {
	coll, err := e.evalExpr(ns, x.Collection)
	if err != nil {
		return nil, err
	}
	val, err := e.evalExpr(ns, x.Value)
	if err != nil {
		return nil, err
	}
	switch c := coll.(type) {
	case *runtime.HT_Class:
		b, ok := c.Local(x.Name)
		if !ok || !b.Mutable {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot assign to %q on class %q", x.Name, c.Name)
		}
		b.Value, b.Initialized = val, true
		return val, nil
	case *runtime.HT_Instance:
		if setter, ok := c.Class.LookupInstanceMethod(token.PrefixSetter + x.Name); ok {
			if _, err := e.callFunction(setter.Bind(c), []runtime.Value{val}, nil); err != nil {
				return nil, err
			}
			return val, nil
		}
		if !c.Assign(x.Name, val) {
			return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot assign to undefined member %q on %s", x.Name, c.Class.Name)
		}
		return val, nil
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot set member %q on a %s", x.Name, coll.TypeName())
	}
}

// wrapPrimitive looks up a registered built-in class for v's reserved
// type name and, if one exists, wraps v in a transient instance shell
// (spec §3, "Literal wrappers"). The standard library itself is out of
// scope (spec §1); this only provides the generic mechanism a host can
// hook into by registering `external class num { ... }` and friends.
func (e *Evaluator) wrapPrimitive(v runtime.Value) (*runtime.HT_Instance, bool) {
	classVal, err := e.Globals.Get(v.TypeName())
	if err != nil {
		return nil, false
	}
	class, ok := classVal.(*runtime.HT_Class)
	if !ok {
		return nil, false
	}
	inst := runtime.NewInstance(class)
	inst.Native = v
	return inst, true
}

func (e *Evaluator) evalAssign(ns *runtime.Namespace, x *ast.AssignExpr) (runtime.Value, error) {
	v, err := e.evalExpr(ns, x.Value)
	if err != nil {
		return nil, err
	}
	var b *runtime.Binding
	var ok bool
	if x.Resolved {
		b, ok = ns.Lookup(x.Target, x.Distance)
	} else {
		b, ok = ns.Resolve(x.Target)
	}
	if !ok {
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "undefined identifier %q", x.Target)
	}
	if b.Initialized && !b.Mutable {
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "cannot assign to immutable variable %q", x.Target)
	}
	b.Value, b.Initialized = v, true
	return v, nil
}

// evalCall implements spec §4.5's "Call": evaluate callee and arguments
// left to right, then accept either a function or a class (the latter
// constructs an instance, per §4.7). When the callee is a MemberGet on
// an instance, HT_Instance.Fetch has already bound the receiver into
// the returned HT_Function (spec §4.5, "MemberGet ... dispatch to the
// receiver's fetch"), so no separate receiver-threading is needed here.
func (e *Evaluator) evalCall(ns *runtime.Namespace, x *ast.CallExpr) (runtime.Value, error) {
	calleeVal, err := e.evalExpr(ns, x.Callee)
	if err != nil {
		return nil, err
	}

	positional := make([]runtime.Value, len(x.Positional))
	for i, a := range x.Positional {
		v, aErr := e.evalExpr(ns, a)
		if aErr != nil {
			return nil, aErr
		}
		positional[i] = v
	}
	named := map[string]runtime.Value{}
	for _, a := range x.Named {
		v, aErr := e.evalExpr(ns, a.Value)
		if aErr != nil {
			return nil, aErr
		}
		named[a.Name] = v
	}

	switch callee := calleeVal.(type) {
	case *runtime.HT_Function:
		return e.callFunction(callee, positional, named)
	case *runtime.HT_Class:
		return e.ConstructInstance(callee, positional, named)
	default:
		return nil, herrors.New(herrors.Evaluate, x.Pos(), "value of type %s is not callable", calleeVal.TypeName())
	}
}
