package herrors_test

import (
	"strings"
	"testing"

	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/pkg/token"
)

func TestKindString(t *testing.T) {
	cases := map[herrors.Kind]string{
		herrors.Lex:      "lex error",
		herrors.Parse:    "parse error",
		herrors.Resolve:  "resolve error",
		herrors.Evaluate: "runtime error",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind.String() = %q, want %q", got, want)
		}
	}
}

func TestNewAndError(t *testing.T) {
	pos := token.Position{File: "a.ht", Line: 2, Column: 5}
	err := herrors.New(herrors.Parse, pos, "unexpected %s", "token")
	if err.Message != "unexpected token" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "unexpected token") {
		t.Errorf("Error() missing message: %q", err.Error())
	}
}

func TestFormatShowsCaretAndSourceLine(t *testing.T) {
	source := "var x = 1\nvar y = \nprint(y)"
	pos := token.Position{File: "a.ht", Line: 2, Column: 9}
	err := herrors.New(herrors.Parse, pos, "expected expression").WithSource(source)

	out := err.Format(false)
	if !strings.Contains(out, "var y = ") {
		t.Errorf("expected source line in output, got: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected caret in output, got: %q", out)
	}
	if !strings.Contains(out, "a.ht:2:9") {
		t.Errorf("expected file:line:col in output, got: %q", out)
	}
}

func TestFormatWithoutFileName(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	err := herrors.New(herrors.Evaluate, pos, "boom")
	out := err.Format(false)
	if !strings.Contains(out, "at 1:1") {
		t.Errorf("expected 'at line:col' form, got: %q", out)
	}
}

func TestFormatColor(t *testing.T) {
	pos := token.Position{File: "a.ht", Line: 1, Column: 1}
	err := herrors.New(herrors.Lex, pos, "bad").WithSource("x")
	out := err.Format(true)
	if !strings.Contains(out, "\033[") {
		t.Errorf("expected ANSI escapes in colored output, got: %q", out)
	}
}

func TestWithStackAppendsTraceToFormat(t *testing.T) {
	pos := token.Position{File: "a.ht", Line: 3, Column: 1}
	err := herrors.New(herrors.Evaluate, pos, "boom")
	stack := herrors.StackTrace{
		{Pos: token.Position{Line: 1, Column: 1}, FunctionName: "main"},
		{Pos: token.Position{Line: 2, Column: 1}, FunctionName: "inner"},
	}
	err.WithStack(stack)

	out := err.Format(false)
	if !strings.Contains(out, "main [1:1]") || !strings.Contains(out, "inner [2:1]") {
		t.Errorf("expected both stack frames in output, got: %q", out)
	}
}

func TestWithStackOnlySetsFirstSnapshot(t *testing.T) {
	err := herrors.New(herrors.Evaluate, token.Position{}, "boom")
	err.WithStack(herrors.StackTrace{{FunctionName: "inner"}})
	err.WithStack(herrors.StackTrace{{FunctionName: "outer"}, {FunctionName: "inner"}})

	if len(err.Stack) != 1 || err.Stack[0].FunctionName != "inner" {
		t.Errorf("expected the first WithStack call to win, got %v", err.Stack)
	}
}

func TestOutOfRangeLineIsIgnored(t *testing.T) {
	pos := token.Position{File: "a.ht", Line: 50, Column: 1}
	err := herrors.New(herrors.Parse, pos, "bad").WithSource("one line only")
	out := err.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("did not expect a source snippet for an out-of-range line: %q", out)
	}
}
