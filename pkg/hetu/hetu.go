// Package hetu is the embedding façade (spec §6): a host program imports
// this package, constructs an Engine, and drives script evaluation
// through it without ever touching the internal pipeline packages.
//
// Grounded on the teacher's pkg/dwscript façade (an Engine value built
// by a functional-options New, Eval returning a Result with a Success
// flag) adapted to Hetu's narrower, non-reflective extern-bridge model
// (spec §4.6): hosts register runtime.NativeFunc/ExternalNamespace
// values directly instead of arbitrary reflected Go functions.
package hetu

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
)

// Value is the dynamic script value type hosts exchange with an Engine.
type Value = runtime.Value

// NativeFunc is the signature every extern function/method binds to
// (spec §6, "Native function signature").
type NativeFunc = runtime.NativeFunc

// ExternalNamespace is the four-operation protocol an `external class`
// binds to (spec §4.6).
type ExternalNamespace = runtime.ExternalNamespace

// Option configures an Engine at construction time.
type Option = interp.Option

var (
	WithWorkingDirectory = interp.WithWorkingDirectory
	WithDebug            = interp.WithDebug
	WithMaxCallDepth     = interp.WithMaxCallDepth
	WithFileReader       = interp.WithFileReader
	WithAsyncFileReader  = interp.WithAsyncFileReader
	WithOutput           = interp.WithOutput
)

// Style selects library vs. function eval mode (spec §6).
type Style = interp.EvalStyle

const (
	StyleLibrary  = interp.StyleLibrary
	StyleFunction = interp.StyleFunction
)

// EvalOptions configures one Eval/EvalFile call (spec §6's eval/eval_file
// option bag).
type EvalOptions struct {
	FileName   string
	Style      Style
	InvokeFunc string
	ClassName  string
	Args       []Value
}

// Result is what one Eval/EvalFile/Invoke call reports back to the
// host, mirroring the teacher's Result.Success/Value/Err shape.
type Result struct {
	Success bool
	Value   Value
	Err     error
}

func toInternalOpts(o EvalOptions) interp.EvalOptions {
	return interp.EvalOptions{
		FileName:   o.FileName,
		Style:      o.Style,
		InvokeFunc: o.InvokeFunc,
		ClassName:  o.ClassName,
		Args:       o.Args,
	}
}

// Engine is one Hetu interpreter instance (spec §6, "new_interpreter").
// Every Engine owns its own globals, literal pool, and evaluated-files
// set (spec §5) — Engines never share state.
type Engine struct {
	it *interp.Interpreter
}

// New constructs an Engine (spec §6, "new_interpreter").
func New(opts ...Option) (*Engine, error) {
	return &Engine{it: interp.New(opts...)}, nil
}

// Eval runs source under opts and returns its result (spec §6, "eval").
func (e *Engine) Eval(source string, opts EvalOptions) Result {
	v, err := e.it.Eval(source, toInternalOpts(opts))
	return resultOf(v, err)
}

// EvalFile loads and runs the file at path (spec §6, "eval_file").
func (e *Engine) EvalFile(path string, opts EvalOptions) Result {
	v, err := e.it.EvalFile(path, toInternalOpts(opts))
	return resultOf(v, err)
}

// Invoke calls a script function directly, optionally class-qualified
// for a static method (spec §6, "invoke"). Like Eval, Invoke reports any
// error in the returned Result rather than propagating it.
func (e *Engine) Invoke(functionName, className string, args []Value) Result {
	v, err := e.it.Invoke(functionName, className, args)
	return resultOf(v, err)
}

// DefineGlobal installs a global binding before any script runs (spec
// §6, "define_global").
func (e *Engine) DefineGlobal(name string, value Value, mutable bool) {
	e.it.DefineGlobal(name, value, mutable)
}

// LoadExternalFunctions registers native callbacks for `external fun`/
// method declarations, keyed by fully-qualified name (spec §6,
// "load_external_functions").
func (e *Engine) LoadExternalFunctions(fns map[string]NativeFunc) {
	e.it.LoadExternalFunctions(fns)
}

// BindExternalNamespace registers the host object an `external class`
// of the given name routes member access through (spec §6,
// "bind_external_namespace").
func (e *Engine) BindExternalNamespace(name string, ns ExternalNamespace) {
	e.it.BindExternalNamespace(name, ns)
}

// Globals exposes the Engine's root namespace for host inspection.
func (e *Engine) Globals() *runtime.Namespace { return e.it.Globals() }

func resultOf(v Value, err error) Result {
	if err != nil {
		return Result{Success: false, Err: err}
	}
	if v == nil {
		v = runtime.NullValue
	}
	return Result{Success: true, Value: v}
}

// IsHetuError reports whether err is a Hetu-kinded error (lex, parse,
// resolve, evaluate — spec §7) as opposed to a host I/O error from a
// FileReader callback.
func IsHetuError(err error) bool {
	_, ok := err.(*herrors.HetuError)
	return ok
}
