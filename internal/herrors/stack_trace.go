package herrors

import (
	"fmt"
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// StackFrame is one call-stack frame, used to render a script backtrace
// when an Evaluate-kind HetuError escapes a function activation.
// Grounded on the teacher's internal/errors.StackFrame.
type StackFrame struct {
	Pos          token.Position
	FunctionName string
}

func (sf StackFrame) String() string {
	return fmt.Sprintf("%s [%d:%d]", sf.FunctionName, sf.Pos.Line, sf.Pos.Column)
}

// StackTrace is a call stack, ordered oldest (bottom) to newest (top).
type StackTrace []StackFrame

func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

func (st StackTrace) Depth() int { return len(st) }
