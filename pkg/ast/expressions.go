package ast

import (
	"fmt"
	"strings"

	"github.com/hetu-script/hetu-go/pkg/token"
)

// NullExpr is the literal `null`.
type NullExpr struct{ Token token.Token }

func (e *NullExpr) exprNode()            {}
func (e *NullExpr) Pos() token.Position  { return e.Token.Pos }
func (e *NullExpr) String() string       { return "null" }
func (e *NullExpr) Clone() Expr          { c := *e; return &c }

// ConstExpr is a number, string or bool literal. The evaluator's literal
// pool (internal/interp/evaluator/pool.go) deduplicates literals by Kind
// and token text; nothing assigns or reads Index, so it stays zero.
type ConstExpr struct {
	Token token.Token
	Index int
	Kind  token.Kind // NUMBER, STRING, or BOOL
}

func (e *ConstExpr) exprNode()           {}
func (e *ConstExpr) Pos() token.Position { return e.Token.Pos }
func (e *ConstExpr) String() string      { return e.Token.Literal }
func (e *ConstExpr) Clone() Expr         { c := *e; return &c }

// GroupExpr is a parenthesized expression, kept as its own node so
// printers can round-trip source parenthesization.
type GroupExpr struct {
	LParen token.Token
	Inner  Expr
}

func (e *GroupExpr) exprNode()           {}
func (e *GroupExpr) Pos() token.Position { return e.LParen.Pos }
func (e *GroupExpr) String() string      { return "(" + e.Inner.String() + ")" }
func (e *GroupExpr) Clone() Expr         { c := *e; c.Inner = e.Inner.Clone(); return &c }

// LiteralVectorExpr is a `[a, b, c]` list literal.
type LiteralVectorExpr struct {
	LBracket token.Token
	Items    []Expr
}

func (e *LiteralVectorExpr) exprNode()           {}
func (e *LiteralVectorExpr) Pos() token.Position { return e.LBracket.Pos }
func (e *LiteralVectorExpr) String() string {
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *LiteralVectorExpr) Clone() Expr {
	c := *e
	c.Items = make([]Expr, len(e.Items))
	for i, it := range e.Items {
		c.Items[i] = it.Clone()
	}
	return &c
}

// DictEntry is one `key: value` pair in a map literal, order-preserving.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// LiteralDictExpr is a `{k: v, ...}` map literal. Entries preserve
// source insertion order (spec §3).
type LiteralDictExpr struct {
	LBrace  token.Token
	Entries []DictEntry
}

func (e *LiteralDictExpr) exprNode()           {}
func (e *LiteralDictExpr) Pos() token.Position { return e.LBrace.Pos }
func (e *LiteralDictExpr) String() string {
	parts := make([]string, len(e.Entries))
	for i, en := range e.Entries {
		parts[i] = en.Key.String() + ": " + en.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (e *LiteralDictExpr) Clone() Expr {
	c := *e
	c.Entries = make([]DictEntry, len(e.Entries))
	for i, en := range e.Entries {
		c.Entries[i] = DictEntry{Key: en.Key.Clone(), Value: en.Value.Clone()}
	}
	return &c
}

// SymbolExpr references a name. The resolver annotates it with a scope
// Distance (see internal/resolver); Resolved reports whether that
// annotation is present (an absent distance means "look up globally").
type SymbolExpr struct {
	Token      token.Token
	Name       string
	Distance   int
	Resolved   bool
}

func (e *SymbolExpr) exprNode()           {}
func (e *SymbolExpr) Pos() token.Position { return e.Token.Pos }
func (e *SymbolExpr) String() string      { return e.Name }
func (e *SymbolExpr) Clone() Expr         { c := *e; return &c }

// ThisExpr is the `this` keyword used inside instance-method bodies.
type ThisExpr struct {
	Token    token.Token
	Distance int
	Resolved bool
}

func (e *ThisExpr) exprNode()           {}
func (e *ThisExpr) Pos() token.Position { return e.Token.Pos }
func (e *ThisExpr) String() string      { return "this" }
func (e *ThisExpr) Clone() Expr         { c := *e; return &c }

// UnaryExpr is a prefix `!` or `-` application.
type UnaryExpr struct {
	OpToken token.Token
	Op      string
	Operand Expr
}

func (e *UnaryExpr) exprNode()           {}
func (e *UnaryExpr) Pos() token.Position { return e.OpToken.Pos }
func (e *UnaryExpr) String() string      { return e.Op + e.Operand.String() }
func (e *UnaryExpr) Clone() Expr         { c := *e; c.Operand = e.Operand.Clone(); return &c }

// BinaryExpr is any of the multiplicative/additive/relational/equality/
// logical operators (spec §4.3 tiers 4-9).
type BinaryExpr struct {
	OpToken token.Token
	Left    Expr
	Op      string
	Right   Expr
}

func (e *BinaryExpr) exprNode()           {}
func (e *BinaryExpr) Pos() token.Position { return e.OpToken.Pos }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}
func (e *BinaryExpr) Clone() Expr {
	c := *e
	c.Left = e.Left.Clone()
	c.Right = e.Right.Clone()
	return &c
}

// SubGetExpr is `collection[key]`.
type SubGetExpr struct {
	LBracket   token.Token
	Collection Expr
	Key        Expr
}

func (e *SubGetExpr) exprNode()           {}
func (e *SubGetExpr) Pos() token.Position { return e.LBracket.Pos }
func (e *SubGetExpr) String() string {
	return e.Collection.String() + "[" + e.Key.String() + "]"
}
func (e *SubGetExpr) Clone() Expr {
	c := *e
	c.Collection = e.Collection.Clone()
	c.Key = e.Key.Clone()
	return &c
}

// SubSetExpr is `collection[key] = value`. Produced by the parser
// rewriting a SubGetExpr used as an assignment target.
type SubSetExpr struct {
	LBracket   token.Token
	Collection Expr
	Key        Expr
	Value      Expr
}

func (e *SubSetExpr) exprNode()           {}
func (e *SubSetExpr) Pos() token.Position { return e.LBracket.Pos }
func (e *SubSetExpr) String() string {
	return e.Collection.String() + "[" + e.Key.String() + "] = " + e.Value.String()
}
func (e *SubSetExpr) Clone() Expr {
	c := *e
	c.Collection = e.Collection.Clone()
	c.Key = e.Key.Clone()
	c.Value = e.Value.Clone()
	return &c
}

// MemberGetExpr is `collection.name`.
type MemberGetExpr struct {
	DotToken   token.Token
	Collection Expr
	Name       string
}

func (e *MemberGetExpr) exprNode()           {}
func (e *MemberGetExpr) Pos() token.Position { return e.DotToken.Pos }
func (e *MemberGetExpr) String() string      { return e.Collection.String() + "." + e.Name }
func (e *MemberGetExpr) Clone() Expr {
	c := *e
	c.Collection = e.Collection.Clone()
	return &c
}

// MemberSetExpr is `collection.name = value`. Produced by the parser
// rewriting a MemberGetExpr used as an assignment target.
type MemberSetExpr struct {
	DotToken   token.Token
	Collection Expr
	Name       string
	Value      Expr
}

func (e *MemberSetExpr) exprNode()           {}
func (e *MemberSetExpr) Pos() token.Position { return e.DotToken.Pos }
func (e *MemberSetExpr) String() string {
	return e.Collection.String() + "." + e.Name + " = " + e.Value.String()
}
func (e *MemberSetExpr) Clone() Expr {
	c := *e
	c.Collection = e.Collection.Clone()
	c.Value = e.Value.Clone()
	return &c
}

// NamedArgExpr is a call argument of the form `name: expr`.
type NamedArgExpr struct {
	NameToken token.Token
	Name      string
	Value     Expr
}

func (e *NamedArgExpr) exprNode()           {}
func (e *NamedArgExpr) Pos() token.Position { return e.NameToken.Pos }
func (e *NamedArgExpr) String() string      { return e.Name + ": " + e.Value.String() }
func (e *NamedArgExpr) Clone() Expr {
	c := *e
	c.Value = e.Value.Clone()
	return &c
}

// CallExpr is `callee(args...)`. Positional and named arguments are
// kept apart because binding rules differ (spec §4.5).
type CallExpr struct {
	LParen     token.Token
	Callee     Expr
	Positional []Expr
	Named      []*NamedArgExpr
}

func (e *CallExpr) exprNode()           {}
func (e *CallExpr) Pos() token.Position { return e.LParen.Pos }
func (e *CallExpr) String() string {
	parts := make([]string, 0, len(e.Positional)+len(e.Named))
	for _, a := range e.Positional {
		parts = append(parts, a.String())
	}
	for _, a := range e.Named {
		parts = append(parts, a.String())
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (e *CallExpr) Clone() Expr {
	c := *e
	c.Callee = e.Callee.Clone()
	c.Positional = make([]Expr, len(e.Positional))
	for i, a := range e.Positional {
		c.Positional[i] = a.Clone()
	}
	c.Named = make([]*NamedArgExpr, len(e.Named))
	for i, a := range e.Named {
		c.Named[i] = a.Clone().(*NamedArgExpr)
	}
	return &c
}

// AssignExpr is `target = value` where target is a bare identifier.
// MemberGet/SubGet assignment targets are rewritten by the parser into
// MemberSetExpr/SubSetExpr instead of using this node (spec §4.3).
type AssignExpr struct {
	Token    token.Token
	Target   string
	Op       string // always "="; the language has no compound assignment operators
	Value    Expr
	Distance int
	Resolved bool
}

func (e *AssignExpr) exprNode()           {}
func (e *AssignExpr) Pos() token.Position { return e.Token.Pos }
func (e *AssignExpr) String() string      { return e.Target + " = " + e.Value.String() }
func (e *AssignExpr) Clone() Expr {
	c := *e
	c.Value = e.Value.Clone()
	return &c
}
