package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/hetu-script/hetu-go/internal/interp/evaluator"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/internal/parser"
	"github.com/hetu-script/hetu-go/internal/resolver"
)

// runScenario lexes, parses, resolves, and evaluates source, invoking
// invokeFunc afterward if non-empty, and returns everything `print`
// wrote. This drives the same pipeline internal/interp wires up, one
// level lower, for the end-to-end scenarios in spec §8.
func runScenario(t *testing.T, source, invokeFunc string) string {
	t.Helper()

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
	var buf bytes.Buffer
	ev.Output = &buf

	if _, err := ev.EvalProgram(ev.Globals, prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}
	if invokeFunc != "" {
		if _, err := ev.Invoke(invokeFunc, "", nil); err != nil {
			t.Fatalf("invoke error: %s", err)
		}
	}
	return buf.String()
}

func TestScenarioArithmeticAndVariables(t *testing.T) {
	out := runScenario(t, `var year = 2020 proc main { print(year + 21) }`, "main")
	snaps.MatchSnapshot(t, out)
}

func TestScenarioClassAndMethod(t *testing.T) {
	out := runScenario(t, `
class C {
  var x
  construct(v: num) { this.x = v }
  fun twice: num { return x * 2 }
}
proc main {
  var c = C(7)
  print(c.twice())
}`, "main")
	snaps.MatchSnapshot(t, out)
}

func TestScenarioClosure(t *testing.T) {
	out := runScenario(t, `
fun make(): fun {
  var n = 0
  fun step: num { n = n + 1 return n }
  return step
}
proc main {
  var s = make()
  print(s())
  print(s())
  print(s())
}`, "main")
	snaps.MatchSnapshot(t, out)
}

func TestScenarioForInOverList(t *testing.T) {
	out := runScenario(t, `
proc main {
  var xs = [10, 20, 30]
  var sum = 0
  for (var x in xs) { sum = sum + x }
  print(sum)
}`, "main")
	snaps.MatchSnapshot(t, out)
}

func TestScenarioInheritance(t *testing.T) {
	out := runScenario(t, `
class A { fun hi { print('A') } }
class B extends A { fun hi { print('B') } }
proc main {
  var b = B()
  b.hi()
}`, "main")
	snaps.MatchSnapshot(t, out)
}

// personNamespace is a host-side ExternalNamespace backing the script's
// `external class Person` for scenario (f) — one field, `name`, and a
// method, `greeting`, that prints a message using it.
type personNamespace struct {
	output *bytes.Buffer
}

type personHandle struct {
	name string
}

func (p *personNamespace) Fetch(name string) (runtime.Value, error) {
	return nil, nil
}

func (p *personNamespace) Assign(name string, value runtime.Value) error {
	return nil
}

func (p *personNamespace) InstanceFetch(handle any, name string) (runtime.Value, error) {
	h := handle.(*personHandle)
	switch name {
	case "name":
		return runtime.String(h.name), nil
	case "greeting":
		return &runtime.HT_Function{
			Native: func(receiver runtime.Value, _ []runtime.Value, _ map[string]runtime.Value) (runtime.Value, error) {
				p.output.WriteString("Hi! I'm " + h.name + "\n")
				return runtime.NullValue, nil
			},
		}, nil
	}
	return runtime.NullValue, nil
}

func (p *personNamespace) InstanceAssign(handle any, name string, value runtime.Value) error {
	h := handle.(*personHandle)
	if name == "name" {
		if s, ok := value.(runtime.String); ok {
			h.name = string(s)
		}
	}
	return nil
}

func TestScenarioExternalClassBinding(t *testing.T) {
	source := `
external class Person { var name fun greeting }
proc main {
  var p = Person()
  p.name = 'Alice'
  p.greeting()
}`

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
	var buf bytes.Buffer
	ev.Output = &buf

	ns := &personNamespace{output: &buf}
	ev.BindExternalNamespace("Person", ns)
	ev.LoadExternalFunctions(map[string]runtime.NativeFunc{
		"__external__Person": func(_ runtime.Value, _ []runtime.Value, _ map[string]runtime.Value) (runtime.Value, error) {
			return runtime.NativeHandle{Underlying: &personHandle{name: "default name"}}, nil
		},
	})

	if _, err := ev.EvalProgram(ev.Globals, prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}
	if _, err := ev.Invoke("main", "", nil); err != nil {
		t.Fatalf("invoke error: %s", err)
	}
	snaps.MatchSnapshot(t, buf.String())
}

// TestScenarioGetterAndSetter exercises spec §4.4's getter/setter
// dispatch: `get area` computes from a field on plain member-get access
// (no call syntax at the use site) and `set diameter` runs on plain
// assignment, both sharing the class's field namespace through `this`.
func TestScenarioGetterAndSetter(t *testing.T) {
	out := runScenario(t, `
class Circle {
  var radius = 0
  construct(r: num) { radius = r }
  get area: num { return radius * radius * 3 }
  set diameter(d: num) { radius = d / 2 }
}
proc main {
  var c = Circle(2)
  print(c.area)
  c.diameter = 10
  print(c.area)
}`, "main")
	snaps.MatchSnapshot(t, out)
}

// TestScenarioVariadicArguments exercises the resolver-visible
// "arguments" binding a variadic parameter list produces (spec §4.3's
// trailing `...`, §4.5's "bind the entire positional argument list").
func TestScenarioVariadicArguments(t *testing.T) {
	out := runScenario(t, `
fun sum(...): num {
  var total = 0
  for (var x in arguments) { total = total + x }
  return total
}
proc main {
  print(sum(1, 2, 3, 4))
}`, "main")
	snaps.MatchSnapshot(t, out)
}
