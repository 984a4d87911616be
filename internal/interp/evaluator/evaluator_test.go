package evaluator_test

import (
	"testing"

	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/evaluator"
	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/internal/parser"
	"github.com/hetu-script/hetu-go/internal/resolver"
)

func TestPrintBuiltinJoinsArgumentsWithSpaces(t *testing.T) {
	out := runScenario(t, `proc main { print(1, 'a', true) }`, "main")
	if out != "1 a true\n" {
		t.Errorf("output = %q, want %q", out, "1 a true\n")
	}
}

func TestWhileLoopBreakAndContinue(t *testing.T) {
	out := runScenario(t, `
proc main {
  var i = 0
  var sum = 0
  while (true) {
    i = i + 1
    if (i > 5) { break }
    if (i == 3) { continue }
    sum = sum + i
  }
  print(sum)
}`, "main")
	if out != "12\n" { // 1+2+4+5
		t.Errorf("output = %q, want %q", out, "12\n")
	}
}

func TestLiteralPoolDedupesRepeatedStringLiteral(t *testing.T) {
	out := runScenario(t, `
proc main {
  var a = 'x'
  var b = 'x'
  print(a == b)
}`, "main")
	if out != "true\n" {
		t.Errorf("output = %q, want %q", out, "true\n")
	}
}

func TestMapAndListLiterals(t *testing.T) {
	out := runScenario(t, `
proc main {
  var xs = [1, 2, 3]
  print(xs.length)
  var m = {'a': 1}
  print(m['a'])
}`, "main")
	if out != "3\n1\n" {
		t.Errorf("output = %q, want %q", out, "3\n1\n")
	}
}

func TestRuntimeErrorCarriesCallStack(t *testing.T) {
	source := `
fun inner: num { return 'a' + 1 }
fun outer: num { return inner() }
proc main { print(outer()) }`

	l := lexer.New(source, lexer.WithFile("<scenario>"))
	p := parser.New(l, "<scenario>")
	prog, perr := p.ParseProgram()
	if perr != nil {
		t.Fatalf("parse error: %s", perr.WithSource(source).Format(false))
	}
	if errs := resolver.Resolve(prog); len(errs) > 0 {
		t.Fatalf("resolve error: %s", errs[0].WithSource(source).Format(false))
	}

	ev := evaluator.New()
	if _, err := ev.EvalProgram(ev.Globals, prog); err != nil {
		t.Fatalf("unexpected error evaluating declarations: %s", err)
	}

	_, err := ev.Invoke("main", "", nil)
	if err == nil {
		t.Fatal("expected a runtime error from adding a string and a number")
	}
	herr, ok := err.(*herrors.HetuError)
	if !ok {
		t.Fatalf("expected a *herrors.HetuError, got %T", err)
	}
	if herr.Kind != herrors.Evaluate {
		t.Errorf("Kind = %v, want Evaluate", herr.Kind)
	}
	if len(herr.Stack) == 0 {
		t.Fatal("expected a non-empty call stack on an error escaping nested calls")
	}
	names := make([]string, len(herr.Stack))
	for i, frame := range herr.Stack {
		names[i] = frame.FunctionName
	}
	wantFrames := map[string]bool{"inner": true, "outer": true, "main": true}
	for _, name := range names {
		if !wantFrames[name] {
			t.Errorf("unexpected frame %q in stack %v", name, names)
		}
	}
	if len(names) != 3 {
		t.Errorf("stack depth = %d, want 3 (%v)", len(names), names)
	}
}

func TestIsOperatorIsStrictClassNameEquality(t *testing.T) {
	out := runScenario(t, `
class A { }
class B extends A { }
proc main {
  var b = B()
  print(b is B)
  print(b is A)
}`, "main")
	if out != "true\nfalse\n" {
		t.Errorf("output = %q, want %q", out, "true\nfalse\n")
	}
}
