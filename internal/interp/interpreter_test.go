package interp_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hetu-script/hetu-go/internal/interp"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
)

func TestEvalLibraryStyle(t *testing.T) {
	var buf bytes.Buffer
	it := interp.New(interp.WithOutput(&buf))

	_, err := it.Eval(`proc main { print(1 + 2) }`, interp.EvalOptions{
		Style:      interp.StyleLibrary,
		InvokeFunc: "main",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEvalFunctionStyle(t *testing.T) {
	it := interp.New()
	v, err := it.Eval("1 + 2 * 3", interp.EvalOptions{Style: interp.StyleFunction})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "7" {
		t.Errorf("got %v, want 7", v)
	}
}

func TestEvalFileUsesFileReader(t *testing.T) {
	files := map[string]string{
		"main.ht": `proc main { print('hi') }`,
	}
	var buf bytes.Buffer
	it := interp.New(
		interp.WithOutput(&buf),
		interp.WithFileReader(func(path string) (string, error) {
			src, ok := files[path]
			if !ok {
				return "", fmt.Errorf("no such file: %s", path)
			}
			return src, nil
		}),
	)

	_, err := it.EvalFile("main.ht", interp.EvalOptions{Style: interp.StyleLibrary, InvokeFunc: "main"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "hi\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestInvokeAfterEval(t *testing.T) {
	var buf bytes.Buffer
	it := interp.New(interp.WithOutput(&buf))
	if _, err := it.Eval(`fun greet: num { print('hello') return 1 }`, interp.EvalOptions{Style: interp.StyleLibrary}); err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	v, err := it.Invoke("greet", "", nil)
	if err != nil {
		t.Fatalf("unexpected invoke error: %v", err)
	}
	if v.String() != "1" {
		t.Errorf("got %v, want 1", v)
	}
	if buf.String() != "hello\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestImportResolvesRelativeToWorkingDirectory(t *testing.T) {
	files := map[string]string{
		"proj/lib.ht":  `fun add(a, b): num { return a + b }`,
		"proj/main.ht": `import 'lib.ht' as lib proc main { print(lib.add(2, 3)) }`,
	}
	var buf bytes.Buffer
	it := interp.New(
		interp.WithOutput(&buf),
		interp.WithWorkingDirectory("proj"),
		interp.WithFileReader(func(path string) (string, error) {
			src, ok := files[path]
			if !ok {
				return "", fmt.Errorf("no such file: %s", path)
			}
			return src, nil
		}),
	)

	_, err := it.EvalFile("main.ht", interp.EvalOptions{Style: interp.StyleLibrary, InvokeFunc: "main"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "5\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDefineGlobalVisibleToEval(t *testing.T) {
	var buf bytes.Buffer
	it := interp.New(interp.WithOutput(&buf))
	it.DefineGlobal("greeting", runtime.String("hi"), false)

	_, err := it.Eval(`proc main { print(greeting) }`, interp.EvalOptions{Style: interp.StyleLibrary, InvokeFunc: "main"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestEvalPropagatesParseError(t *testing.T) {
	it := interp.New()
	if _, err := it.Eval(`var = `, interp.EvalOptions{Style: interp.StyleLibrary}); err == nil {
		t.Fatal("expected a parse error")
	}
}
