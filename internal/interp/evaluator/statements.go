package evaluator

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/ast"
)

func (e *Evaluator) evalStmt(ns *runtime.Namespace, st ast.Stmt) error {
	switch s := st.(type) {
	case *ast.VarDecl:
		return e.evalVarDecl(ns, s)
	case *ast.ExprStmt:
		_, err := e.evalExpr(ns, s.Expression)
		return err
	case *ast.Block:
		return e.evalBlock(ns, s)
	case *ast.IfStmt:
		return e.evalIf(ns, s)
	case *ast.WhileStmt:
		return e.evalWhile(ns, s)
	case *ast.ReturnStmt:
		var v runtime.Value = runtime.NullValue
		if s.Value != nil {
			val, err := e.evalExpr(ns, s.Value)
			if err != nil {
				return err
			}
			v = val
		}
		panic(returnSignal{value: v})
	case *ast.BreakStmt:
		panic(breakSignal{})
	case *ast.ContinueStmt:
		panic(continueSignal{})
	case *ast.FuncDecl:
		e.declareFunction(ns, s)
		return nil
	case *ast.ClassDecl:
		return e.evalClassDecl(ns, s)
	case *ast.ImportStmt:
		return e.evalImport(ns, s)
	default:
		return herrors.New(herrors.Evaluate, st.Pos(), "unhandled statement type %T", st)
	}
}

func (e *Evaluator) evalVarDecl(ns *runtime.Namespace, s *ast.VarDecl) error {
	var v runtime.Value = runtime.NullValue
	initialized := false
	if s.Initializer != nil {
		val, err := e.evalExpr(ns, s.Initializer)
		if err != nil {
			return err
		}
		v, initialized = val, true
	}
	typeName := ""
	if s.DeclaredType != nil {
		typeName = s.DeclaredType.Name
	}
	ns.Declare(s.Name, &runtime.Binding{
		DeclaredType: typeName,
		Value:        v,
		Mutable:      s.Flags.Mutable,
		Initialized:  initialized,
	})
	return nil
}

// evalBlock creates a new enclosed namespace, per spec §3 "Lifecycles"
// ("Namespaces are created on ... block entry"). It is used for every
// nested block a function body contains; the function body's own
// top-level statements are run directly in the activation namespace by
// callFunction instead (see resolver.resolveFuncDecl for why).
func (e *Evaluator) evalBlock(ns *runtime.Namespace, b *ast.Block) error {
	inner := runtime.NewNamespace("block", ns)
	for _, st := range b.Statements {
		if err := e.evalStmt(inner, st); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalIf(ns *runtime.Namespace, s *ast.IfStmt) error {
	cond, err := e.evalExpr(ns, s.Cond)
	if err != nil {
		return err
	}
	if _, ok := cond.(runtime.Bool); !ok {
		return herrors.New(herrors.Evaluate, s.Cond.Pos(), "condition must be a bool, got %s", cond.TypeName())
	}
	if runtime.IsTruthy(cond) {
		return e.evalStmt(ns, s.Then)
	}
	if s.Else != nil {
		return e.evalStmt(ns, s.Else)
	}
	return nil
}

func (e *Evaluator) evalWhile(ns *runtime.Namespace, s *ast.WhileStmt) error {
	for {
		cond, err := e.evalExpr(ns, s.Cond)
		if err != nil {
			return err
		}
		if _, ok := cond.(runtime.Bool); !ok {
			return herrors.New(herrors.Evaluate, s.Cond.Pos(), "condition must be a bool, got %s", cond.TypeName())
		}
		if !runtime.IsTruthy(cond) {
			return nil
		}
		stop, err := runLoopBody(func() error { return e.evalStmt(ns, s.Body) })
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

func (e *Evaluator) evalImport(ns *runtime.Namespace, s *ast.ImportStmt) error {
	if lib, ok := e.evaluated[s.Path]; ok {
		e.bindImport(ns, s, lib)
		return nil
	}
	if e.importer == nil {
		return herrors.New(herrors.Evaluate, s.Pos(), "import %q: no importer configured", s.Path)
	}
	lib, err := e.importer.Import(s.Path)
	if err != nil {
		return err
	}
	e.evaluated[s.Path] = lib
	e.bindImport(ns, s, lib)
	return nil
}

func (e *Evaluator) bindImport(ns *runtime.Namespace, s *ast.ImportStmt, lib *runtime.Namespace) {
	if s.Alias != "" {
		ns.Declare(s.Alias, &runtime.Binding{Value: namespaceValue{lib}, Mutable: false, Initialized: true})
		return
	}
	lib.Range(func(name string, b *runtime.Binding) bool {
		ns.Declare(name, b)
		return true
	})
}

// namespaceValue lets an aliased import (`import 'x' as ns`) be stored
// as an ordinary binding value, addressable later via `ns.member`
// member-get dispatch (see evalMemberGet).
type namespaceValue struct{ *runtime.Namespace }

func (namespaceValue) TypeName() string { return "NAMESPACE" }
