package interp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/evaluator"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/internal/parser"
	"github.com/hetu-script/hetu-go/internal/resolver"
	"github.com/hetu-script/hetu-go/pkg/ast"
)

// EvalStyle selects whether source is a full library (statements,
// declarations, imports) or a single function-body expression
// (spec §6, "style ∈ {library, function}").
type EvalStyle int

const (
	StyleLibrary EvalStyle = iota
	StyleFunction
)

// EvalOptions configures one eval/eval_file call (spec §6).
type EvalOptions struct {
	FileName    string
	Style       EvalStyle
	InvokeFunc  string
	ClassName   string
	Args        []runtime.Value
}

// Interpreter is the embeddable core (spec §1, §6): one instance owns
// its own globals, literal pool, and evaluated-files set, and is safe
// to keep around for the lifetime of a host session.
type Interpreter struct {
	opts *Options
	eval *evaluator.Evaluator
}

// New constructs an interpreter (spec §6, "new_interpreter").
func New(options ...Option) *Interpreter {
	o := defaultOptions()
	for _, apply := range options {
		apply(o)
	}
	ev := evaluator.New()
	ev.MaxCallDepth = o.MaxCallDepth
	if o.Output != nil {
		ev.Output = o.Output
	}
	if o.Debug {
		ev.Trace = func(ns *runtime.Namespace) {
			fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(ns))
		}
	}
	it := &Interpreter{opts: o, eval: ev}
	ev.SetImporter(it)
	return it
}

// Globals exposes the root namespace, mainly for host inspection/tests.
func (it *Interpreter) Globals() *runtime.Namespace { return it.eval.Globals }

// DefineGlobal implements spec §6's `define_global`.
func (it *Interpreter) DefineGlobal(name string, v runtime.Value, mutable bool) {
	it.eval.DefineGlobal(name, v, mutable)
}

// LoadExternalFunctions implements spec §6's `load_external_functions`.
func (it *Interpreter) LoadExternalFunctions(fns map[string]runtime.NativeFunc) {
	it.eval.LoadExternalFunctions(fns)
}

// BindExternalNamespace implements spec §6's `bind_external_namespace`.
func (it *Interpreter) BindExternalNamespace(name string, ns runtime.ExternalNamespace) {
	it.eval.BindExternalNamespace(name, ns)
}

// Invoke implements spec §6's `invoke`.
func (it *Interpreter) Invoke(functionName string, className string, args []runtime.Value) (runtime.Value, error) {
	return it.eval.Invoke(functionName, className, args)
}

// Eval implements spec §6's `eval`: parses source under opts.Style,
// resolves it, evaluates it against globals, and optionally invokes a
// named function afterward.
func (it *Interpreter) Eval(source string, opts EvalOptions) (runtime.Value, error) {
	if opts.Style == StyleFunction {
		return it.evalFunctionStyle(source, opts)
	}

	prog, herr := it.parseLibrary(source, opts.FileName)
	if herr != nil {
		return nil, herr
	}
	if errs := resolver.Resolve(prog); len(errs) > 0 {
		return nil, errs[0]
	}
	result, err := it.eval.EvalProgram(it.eval.Globals, prog)
	if err != nil {
		return nil, err
	}
	if opts.InvokeFunc != "" {
		return it.eval.Invoke(opts.InvokeFunc, opts.ClassName, opts.Args)
	}
	return result, nil
}

func (it *Interpreter) evalFunctionStyle(source string, opts EvalOptions) (runtime.Value, error) {
	file := opts.FileName
	l := lexer.New(source, lexer.WithFile(file))
	p := parser.New(l, file)
	expr, herr := p.ParseExpression()
	if herr != nil {
		return nil, herr.WithSource(source)
	}
	return it.evalExprPublic(expr)
}

// evalExprPublic gives the function-eval style access to the
// unexported evalExpr entry point via the evaluator's one exported
// expression-level hook: wrapping the expression in a throwaway
// ExprStmt and running it through EvalProgram keeps evaluator.Evaluator
// from needing a second, narrower public API.
func (it *Interpreter) evalExprPublic(expr ast.Expr) (runtime.Value, error) {
	prog := &ast.Program{Statements: []ast.Stmt{&ast.ExprStmt{Expression: expr}}}
	if errs := resolver.Resolve(prog); len(errs) > 0 {
		return nil, errs[0]
	}
	return it.eval.EvalProgram(it.eval.Globals, prog)
}

func (it *Interpreter) parseLibrary(source, file string) (*ast.Program, *herrors.HetuError) {
	l := lexer.New(source, lexer.WithFile(file))
	p := parser.New(l, file)
	prog, herr := p.ParseProgram()
	if herr != nil {
		return nil, herr.WithSource(source)
	}
	return prog, nil
}

// EvalFile implements spec §6's `eval_file`, reading path through the
// configured FileReader (or os.ReadFile if none was supplied — a
// reasonable embedding-facade default, since the core API is the thing
// in scope here, not the file-reading policy itself).
func (it *Interpreter) EvalFile(path string, opts EvalOptions) (runtime.Value, error) {
	source, err := it.readFile(path)
	if err != nil {
		return nil, err
	}
	if opts.FileName == "" {
		opts.FileName = path
	}
	return it.Eval(source, opts)
}

func (it *Interpreter) readFile(path string) (string, error) {
	full := path
	if it.opts.WorkingDirectory != "" && !filepath.IsAbs(path) {
		full = filepath.Join(it.opts.WorkingDirectory, path)
	}
	if it.opts.FileReader != nil {
		return it.opts.FileReader(full)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import implements evaluator.Importer for spec §4.5's "Import"
// handling: resolve relative to the working directory, lex+parse+
// resolve+evaluate into a fresh namespace.
func (it *Interpreter) Import(path string) (*runtime.Namespace, error) {
	source, err := it.readFile(path)
	if err != nil {
		return nil, err
	}
	prog, herr := it.parseLibrary(source, path)
	if herr != nil {
		return nil, herr
	}
	if errs := resolver.Resolve(prog); len(errs) > 0 {
		return nil, errs[0]
	}
	lib := runtime.NewNamespace(path, it.eval.Globals)
	if _, err := it.eval.EvalProgram(lib, prog); err != nil {
		return nil, err
	}
	return lib, nil
}
