package ast

import (
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// ImportStmt loads another file into an (optionally aliased) namespace.
type ImportStmt struct {
	Token token.Token
	Path  string
	Alias string // empty if not aliased
}

func (s *ImportStmt) stmtNode()          {}
func (s *ImportStmt) Pos() token.Position { return s.Token.Pos }
func (s *ImportStmt) String() string {
	if s.Alias == "" {
		return "import '" + s.Path + "'"
	}
	return "import '" + s.Path + "' as " + s.Alias
}

// VarDeclFlags captures the declaration-site modifiers from spec §3.
type VarDeclFlags struct {
	Static        bool
	Mutable       bool
	TypeInferred  bool
	OptionalParam bool
	NamedParam    bool
}

// VarDecl declares a variable, a parameter, or a class field, depending
// on context (spec §3).
type VarDecl struct {
	Token       token.Token
	Name        string
	DeclaredType *HType
	Initializer Expr // may be nil
	Default     Expr // default-value expression for optional/named params
	Flags       VarDeclFlags
}

func (s *VarDecl) stmtNode()          {}
func (s *VarDecl) Pos() token.Position { return s.Token.Pos }
func (s *VarDecl) String() string {
	var sb strings.Builder
	if s.Flags.Mutable {
		sb.WriteString("var ")
	} else {
		sb.WriteString("let ")
	}
	sb.WriteString(s.Name)
	if s.DeclaredType != nil {
		sb.WriteString(": " + s.DeclaredType.String())
	}
	if s.Initializer != nil {
		sb.WriteString(" = " + s.Initializer.String())
	}
	return sb.String()
}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) stmtNode()          {}
func (s *ExprStmt) Pos() token.Position { return s.Expression.Pos() }
func (s *ExprStmt) String() string      { return s.Expression.String() }

// Block is `{ statements... }`.
type Block struct {
	LBrace     token.Token
	Statements []Stmt
}

func (s *Block) stmtNode()          {}
func (s *Block) Pos() token.Position { return s.LBrace.Pos }
func (s *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, st := range s.Statements {
		sb.WriteString("  " + st.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// ReturnStmt is `return;` or `return expr;`.
type ReturnStmt struct {
	Token token.Token
	Value Expr // nil for bare `return`
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Pos() token.Position { return s.Token.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Token token.Token
	Cond  Expr
	Then  Stmt
	Else  Stmt // nil if absent
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Pos() token.Position { return s.Token.Pos }
func (s *IfStmt) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token token.Token
	Cond  Expr
	Body  Stmt
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Pos() token.Position { return s.Token.Pos }
func (s *WhileStmt) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

// BreakStmt is `break;`.
type BreakStmt struct{ Token token.Token }

func (s *BreakStmt) stmtNode()          {}
func (s *BreakStmt) Pos() token.Position { return s.Token.Pos }
func (s *BreakStmt) String() string      { return "break" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Token token.Token }

func (s *ContinueStmt) stmtNode()          {}
func (s *ContinueStmt) Pos() token.Position { return s.Token.Pos }
func (s *ContinueStmt) String() string      { return "continue" }
