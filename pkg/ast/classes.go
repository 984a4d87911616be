package ast

import (
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// ClassDecl declares a single-inheritance class: a name, an optional
// superclass reference, static and instance variable declarations, and
// static/instance methods (constructors, getters, setters included via
// FuncDecl.Kind).
type ClassDecl struct {
	Token      token.Token
	Name       string
	Super      string // empty means "extends Object" (spec §4.7)
	TypeParams []string
	Variables  []*VarDecl
	Methods    []*FuncDecl
	External   bool
}

func (s *ClassDecl) stmtNode()          {}
func (s *ClassDecl) Pos() token.Position { return s.Token.Pos }
func (s *ClassDecl) String() string {
	var sb strings.Builder
	if s.External {
		sb.WriteString("external ")
	}
	sb.WriteString("class " + s.Name)
	if s.Super != "" {
		sb.WriteString(" extends " + s.Super)
	}
	sb.WriteString(" {\n")
	for _, v := range s.Variables {
		sb.WriteString("  " + v.String() + "\n")
	}
	for _, m := range s.Methods {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}
