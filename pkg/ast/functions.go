package ast

import (
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// FuncKind distinguishes the callable shapes spec §3 names. Procedures
// carry an implicit void return type and may not produce a value;
// getters take zero parameters; setters take exactly one; constructors
// have no declared return type and always yield the new instance.
type FuncKind int

const (
	FuncNormal FuncKind = iota
	FuncProcedure
	FuncConstructor
	FuncGetter
	FuncSetter
	FuncMethod
)

func (k FuncKind) String() string {
	switch k {
	case FuncProcedure:
		return "proc"
	case FuncConstructor:
		return "construct"
	case FuncGetter:
		return "get"
	case FuncSetter:
		return "set"
	case FuncMethod:
		return "method"
	default:
		return "fun"
	}
}

// FuncDeclFlags are the declaration-site modifiers on a function or
// method (spec §3).
type FuncDeclFlags struct {
	Static   bool
	External bool
}

// FuncDecl declares a function, procedure, constructor, getter, setter,
// or method. Arity -1 (see Params) denotes a variadic parameter list
// (spec §4.3, "a trailing `...` ... marks variadic arity").
type FuncDecl struct {
	Token        token.Token
	Kind         FuncKind
	Name         string
	ReturnType   *HType
	Params       []*VarDecl
	Variadic     bool
	TypeParams   []string
	Body         *Block // nil for an `external` declaration with no body
	Flags        FuncDeclFlags
	OwningClass  string // empty outside a class body
}

func (s *FuncDecl) stmtNode()          {}
func (s *FuncDecl) Pos() token.Position { return s.Token.Pos }
func (s *FuncDecl) String() string {
	var sb strings.Builder
	if s.Flags.External {
		sb.WriteString("external ")
	}
	if s.Flags.Static {
		sb.WriteString("static ")
	}
	sb.WriteString(s.Kind.String())
	if s.Name != "" {
		sb.WriteString(" " + s.Name)
	}
	sb.WriteString("(")
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	if s.ReturnType != nil {
		sb.WriteString(": " + s.ReturnType.String())
	}
	if s.Body != nil {
		sb.WriteString(" " + s.Body.String())
	}
	return sb.String()
}

// Arity returns the declared minimum positional argument count, or -1
// if the function is variadic.
func (s *FuncDecl) Arity() int {
	if s.Variadic {
		return -1
	}
	n := 0
	for _, p := range s.Params {
		if p.Flags.OptionalParam || p.Flags.NamedParam {
			break
		}
		n++
	}
	return n
}
