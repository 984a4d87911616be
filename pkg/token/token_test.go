package token_test

import (
	"testing"

	"github.com/hetu-script/hetu-go/pkg/token"
)

func TestPositionString(t *testing.T) {
	p := token.Position{File: "main.ht", Line: 3, Column: 7}
	if got, want := p.String(), "main.ht:3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	p2 := token.Position{Line: 1, Column: 1}
	if got, want := p2.String(), "1:1"; got != want {
		t.Errorf("String() (no file) = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.PLUS:  "+",
		token.EQ:    "==",
		token.IDENT: "IDENT",
		token.EOF:   "EOF",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
	if got := token.Kind(9999).String(); got != "UNKNOWN" {
		t.Errorf("unknown kind String() = %q, want UNKNOWN", got)
	}
}

func TestKeywordsTable(t *testing.T) {
	for _, kw := range []string{"var", "fun", "proc", "class", "external", "is", "true", "null"} {
		if !token.Keywords[kw] {
			t.Errorf("expected %q to be a keyword", kw)
		}
	}
	if token.Keywords["notakeyword"] {
		t.Error("unexpected keyword entry for notakeyword")
	}
}

func TestIsRelational(t *testing.T) {
	for _, k := range []token.Kind{token.LT, token.GT, token.LE, token.GE} {
		if !token.IsRelational(k) {
			t.Errorf("expected %v to be relational", k)
		}
	}
	if token.IsRelational(token.EQ) {
		t.Error("EQ should not be relational")
	}
}

func TestBinaryPrecedenceOrdering(t *testing.T) {
	if token.BinaryPrecedence[token.STAR] <= token.BinaryPrecedence[token.PLUS] {
		t.Error("expected STAR to bind tighter than PLUS")
	}
	if token.BinaryPrecedence[token.AND] <= token.BinaryPrecedence[token.OR] {
		t.Error("expected AND to bind tighter than OR")
	}
}

func TestReservedPrefixesDistinct(t *testing.T) {
	prefixes := []string{
		token.PrefixExternal, token.PrefixGetter, token.PrefixSetter,
		token.PrefixConstructor, token.PrefixForIndex,
	}
	seen := map[string]bool{}
	for _, p := range prefixes {
		if seen[p] {
			t.Errorf("duplicate reserved prefix %q", p)
		}
		seen[p] = true
	}
}
