// Package ast defines Hetu's Abstract Syntax Tree node types.
// Node identity is Go pointer identity: every node is always handled
// through its pointer type, never copied by value once built, so the
// resolver can annotate scope distances directly onto use-site nodes
// (see internal/resolver).
package ast

import (
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// Node is the base interface for every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
	// Clone returns a deep copy of the expression with fresh node
	// identity, so the clone resolves independently of the original
	// (see the for-in lowering in internal/parser).
	Clone() Expr
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// HType is a nominal type name plus its (unchecked) type arguments.
// Comparison is by Name only; Args are parsed and preserved but never
// validated beyond parsing (spec §3, HT_Type).
type HType struct {
	Name string
	Args []*HType
}

func AnyType() *HType { return &HType{Name: "any"} }

func (t *HType) String() string {
	if t == nil {
		return "any"
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

// Program is the root of a parsed file: an ordered list of top-level
// statements.
type Program struct {
	Statements []Stmt
	File       string
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{File: p.File, Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
