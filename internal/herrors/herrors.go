// Package herrors formats Hetu's user-visible errors with source context,
// line/column information, and a caret pointing at the offending location.
// Grounded on the teacher's internal/errors package: same "N | source  ^"
// layout, generalized across the pipeline's four error kinds (spec §7).
package herrors

import (
	"fmt"
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// Kind classifies which pipeline stage raised the error.
type Kind int

const (
	Lex Kind = iota
	Parse
	Resolve
	Evaluate
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	case Resolve:
		return "resolve error"
	case Evaluate:
		return "runtime error"
	default:
		return "error"
	}
}

// HetuError is the single error type surfaced to hosts. Internal
// non-local-exit signals (return/break/continue, see the evaluator
// package) are distinct unexported types and never satisfy this shape,
// so they cannot be mistaken for a user-visible failure.
type HetuError struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Source  string     // full source text, for caret rendering
	Stack   StackTrace // script call stack at the point the error escaped, Evaluate-kind only
}

func New(kind Kind, pos token.Position, format string, args ...any) *HetuError {
	return &HetuError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *HetuError) WithSource(source string) *HetuError {
	e.Source = source
	return e
}

// WithStack attaches a call-stack snapshot, but only the first one: a
// runtime error picks up the stack of the innermost activation it
// unwinds through and keeps it as it propagates further up.
func (e *HetuError) WithStack(stack StackTrace) *HetuError {
	if e.Stack == nil {
		e.Stack = append(StackTrace(nil), stack...)
	}
	return e
}

func (e *HetuError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-line snippet and caret, matching
// the teacher's CompilerError.Format. When color is true, ANSI escapes
// highlight the caret and message.
func (e *HetuError) Format(color bool) string {
	var sb strings.Builder

	if e.Pos.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.Pos.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max(0, e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	if len(e.Stack) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Stack.String())
	}

	return sb.String()
}

func (e *HetuError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
