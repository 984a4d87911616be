// Package resolver implements Hetu's lexical resolver (spec §4.4): a
// pre-evaluation pass over the AST that computes, for every Symbol/This/
// Assign use-site, how many enclosing block scopes separate it from the
// scope that declares the name. The evaluator (internal/interp/evaluator)
// uses that distance to walk directly to the right namespace instead of
// re-searching the whole lexical chain on every access.
//
// Grounded on the multi-pass architecture of the teacher's
// internal/semantic/passes (a dedicated pass type carrying shared state
// across a declare-then-resolve walk), simplified to the single
// block-stack algorithm spec §4.4 describes — Hetu has no static type
// system to cross-reference, so one pass suffices where the teacher
// needs several.
package resolver

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

type funcContext int

const (
	funcNone funcContext = iota
	funcRegular
	funcProcedure
	funcConstructor
)

// Resolver performs the two-pass, block-stack lexical analysis of
// spec §4.4.
type Resolver struct {
	scopes      []map[string]bool // name -> initialized?
	currentFunc funcContext
	inClass     bool
	hasSuper    bool
	errors      []*herrors.HetuError
}

func New() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Errors() []*herrors.HetuError { return r.errors }

func (r *Resolver) errorf(kind herrors.Kind, pos token.Position, format string, args ...any) {
	r.errors = append(r.errors, herrors.New(kind, pos, format, args...))
}

// Resolve walks prog's top-level statements. The root (global) namespace
// is not modeled as a block-stack entry — unresolved use-sites simply
// fall back to a global lookup at evaluation time (spec §4.4, "Variable
// lookup").
func Resolve(prog *ast.Program) []*herrors.HetuError {
	r := New()
	r.resolveSequence(prog.Statements)
	return r.errors
}

func (r *Resolver) push()            { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) pop()             { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *Resolver) top() map[string]bool { return r.scopes[len(r.scopes)-1] }

func (r *Resolver) declare(name string, pos token.Position) {
	if len(r.scopes) == 0 {
		return
	}
	if _, exists := r.top()[name]; exists {
		r.errorf(herrors.Resolve, pos, "%q is already declared in this scope", name)
		return
	}
	r.top()[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.top()[name] = true
}

// resolveLocal searches the block stack innermost-to-outermost for name,
// returning the computed distance and whether it was found.
func (r *Resolver) resolveLocal(name string) (int, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			return len(r.scopes) - 1 - i, true
		}
	}
	return 0, false
}

// resolveSequence implements spec §4.4's two-pass block algorithm:
// VarDecls resolve immediately and in order (so a later declaration
// can't be seen by an earlier initializer); FuncDecl/ClassDecl siblings
// are all declared up front, then have their bodies resolved afterward,
// so mutually-recursive siblings can see each other.
func (r *Resolver) resolveSequence(stmts []ast.Stmt) {
	var deferred []func()

	for _, st := range stmts {
		switch s := st.(type) {
		case *ast.VarDecl:
			r.resolveVarDecl(s)
		case *ast.FuncDecl:
			r.declare(s.Name, s.Pos())
			r.define(s.Name)
			fd := s
			deferred = append(deferred, func() { r.resolveFuncDecl(fd) })
		case *ast.ClassDecl:
			r.declare(s.Name, s.Pos())
			r.define(s.Name)
			cd := s
			deferred = append(deferred, func() { r.resolveClassDecl(cd) })
		default:
			r.resolveStmt(st)
		}
	}

	for _, fn := range deferred {
		fn()
	}
}

func (r *Resolver) resolveVarDecl(s *ast.VarDecl) {
	r.declare(s.Name, s.Pos())
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	if s.Default != nil {
		r.resolveExpr(s.Default)
	}
	r.define(s.Name)
}

func (r *Resolver) resolveBlock(b *ast.Block) {
	r.push()
	r.resolveSequence(b.Statements)
	r.pop()
}

func (r *Resolver) resolveStmt(st ast.Stmt) {
	switch s := st.(type) {
	case *ast.Block:
		r.resolveBlock(s)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expression)
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.ReturnStmt:
		if r.currentFunc == funcNone {
			r.errorf(herrors.Resolve, s.Pos(), "'return' used outside of a function")
		}
		if s.Value != nil {
			if r.currentFunc == funcConstructor {
				r.errorf(herrors.Resolve, s.Pos(), "a constructor may not return a value")
			}
			if r.currentFunc == funcProcedure {
				r.errorf(herrors.Resolve, s.Pos(), "a procedure may not return a value")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.BreakStmt, *ast.ContinueStmt, *ast.ImportStmt:
		// no names to resolve
	case *ast.FuncDecl:
		r.declare(s.Name, s.Pos())
		r.define(s.Name)
		r.resolveFuncDecl(s)
	case *ast.ClassDecl:
		r.declare(s.Name, s.Pos())
		r.define(s.Name)
		r.resolveClassDecl(s)
	case *ast.VarDecl:
		r.resolveVarDecl(s)
	}
}

// resolveFuncDecl pushes exactly one scope for the activation (params
// bound and defined) and resolves the body's statements directly inside
// it — not via resolveBlock, which would push a second scope. This is
// what makes a parameter reference land at distance 0 from the body's
// top level and distance 1 from a nested block, per spec §8 invariant 2.
func (r *Resolver) resolveFuncDecl(fd *ast.FuncDecl) {
	enclosingFunc := r.currentFunc
	switch fd.Kind {
	case ast.FuncProcedure:
		r.currentFunc = funcProcedure
	case ast.FuncConstructor:
		r.currentFunc = funcConstructor
	default:
		r.currentFunc = funcRegular
	}
	defer func() { r.currentFunc = enclosingFunc }()

	if fd.Body == nil { // external declaration
		return
	}

	r.push()
	for _, p := range fd.Params {
		r.declare(p.Name, p.Pos())
		if p.Default != nil {
			r.resolveExpr(p.Default)
		}
		r.define(p.Name)
	}
	if fd.Variadic {
		r.declare("arguments", fd.Pos())
		r.define("arguments")
	}
	r.resolveSequence(fd.Body.Statements)
	r.pop()
}

// resolveClassDecl implements spec §4.4's "Class body" algorithm: a
// block seeded with `super`, collecting static members first (so static
// methods can see each other before any body resolves), then a nested
// instance sub-block seeded with `this`.
func (r *Resolver) resolveClassDecl(cd *ast.ClassDecl) {
	if cd.Super == cd.Name {
		r.errorf(herrors.Resolve, cd.Pos(), "class %q cannot extend itself", cd.Name)
	}

	enclosingInClass, enclosingHasSuper := r.inClass, r.hasSuper
	r.inClass = true
	r.hasSuper = cd.Super != ""
	defer func() { r.inClass, r.hasSuper = enclosingInClass, enclosingHasSuper }()

	r.push() // static scope; seeds `super`
	if r.hasSuper {
		r.top()["super"] = true
	}

	var staticVars, instanceVars []*ast.VarDecl
	var staticMethods, instanceMethods []*ast.FuncDecl
	for _, v := range cd.Variables {
		if v.Flags.Static {
			staticVars = append(staticVars, v)
		} else {
			instanceVars = append(instanceVars, v)
		}
	}
	for _, m := range cd.Methods {
		if m.Flags.Static {
			staticMethods = append(staticMethods, m)
		} else {
			instanceMethods = append(instanceMethods, m)
		}
	}

	// A getter and a setter may share a user-facing name (`get area` /
	// `set area`); the second half of such a pair is not a redeclaration.
	accessors := map[string]ast.FuncKind{}
	declareMethod := func(m *ast.FuncDecl) {
		name := methodDeclareName(m)
		if k, ok := accessors[name]; ok && k != m.Kind {
			return
		}
		if m.Kind == ast.FuncGetter || m.Kind == ast.FuncSetter {
			accessors[name] = m.Kind
		}
		r.declare(name, m.Pos())
		r.define(name)
	}

	for _, v := range staticVars {
		r.resolveVarDecl(v)
	}
	for _, m := range staticMethods {
		declareMethod(m)
	}
	for _, m := range staticMethods {
		r.resolveFuncDecl(m)
	}

	r.push() // instance scope; seeds `this`
	r.top()["this"] = true
	for _, v := range instanceVars {
		r.resolveVarDecl(v)
	}
	accessors = map[string]ast.FuncKind{}
	for _, m := range instanceMethods {
		declareMethod(m)
	}
	for _, m := range instanceMethods {
		r.resolveFuncDecl(m)
	}
	r.pop() // instance scope
	r.pop() // static scope
}

// methodDeclareName is the name a method/getter/setter is visible under
// for unqualified in-class references: getters and setters declare
// their user-facing name (without internal __get__/__set__ bookkeeping,
// which is purely a runtime dispatch detail — see instanceMethodKey in
// internal/interp/evaluator)
// so other bodies in the same class can reference them unprefixed
// (spec §4.4).
func methodDeclareName(m *ast.FuncDecl) string {
	return m.Name
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch x := e.(type) {
	case *ast.SymbolExpr:
		if d, ok := r.resolveLocal(x.Name); ok {
			x.Distance, x.Resolved = d, true
		}
	case *ast.ThisExpr:
		if !r.inClass {
			r.errorf(herrors.Resolve, x.Pos(), "'this' used outside of a class")
			return
		}
		if d, ok := r.resolveLocal("this"); ok {
			x.Distance, x.Resolved = d, true
		}
	case *ast.AssignExpr:
		r.resolveExpr(x.Value)
		if d, ok := r.resolveLocal(x.Target); ok {
			x.Distance, x.Resolved = d, true
		}
	case *ast.UnaryExpr:
		r.resolveExpr(x.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(x.Left)
		r.resolveExpr(x.Right)
	case *ast.GroupExpr:
		r.resolveExpr(x.Inner)
	case *ast.LiteralVectorExpr:
		for _, it := range x.Items {
			r.resolveExpr(it)
		}
	case *ast.LiteralDictExpr:
		for _, en := range x.Entries {
			r.resolveExpr(en.Key)
			r.resolveExpr(en.Value)
		}
	case *ast.SubGetExpr:
		r.resolveExpr(x.Collection)
		r.resolveExpr(x.Key)
	case *ast.SubSetExpr:
		r.resolveExpr(x.Collection)
		r.resolveExpr(x.Key)
		r.resolveExpr(x.Value)
	case *ast.MemberGetExpr:
		r.resolveExpr(x.Collection)
	case *ast.MemberSetExpr:
		r.resolveExpr(x.Collection)
		r.resolveExpr(x.Value)
	case *ast.NamedArgExpr:
		r.resolveExpr(x.Value)
	case *ast.CallExpr:
		r.resolveExpr(x.Callee)
		for _, a := range x.Positional {
			r.resolveExpr(a)
		}
		for _, a := range x.Named {
			r.resolveExpr(a.Value)
		}
	case *ast.NullExpr, *ast.ConstExpr:
		// no names
	}
}
