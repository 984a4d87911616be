package lexer_test

import (
	"testing"

	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeIdentifiersAndKeywords(t *testing.T) {
	toks := lexer.New("var x = foo").Tokenize()
	want := []token.Kind{token.KEYWORD, token.IDENT, token.ASSIGN, token.IDENT, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"3.5", 3.5},
		{"0x1F", 31},
	}
	for _, c := range cases {
		toks := lexer.New(c.src).Tokenize()
		if toks[0].Kind != token.NUMBER {
			t.Fatalf("%q: expected NUMBER, got %v", c.src, toks[0].Kind)
		}
		if toks[0].NumberValue != c.want {
			t.Errorf("%q: NumberValue = %v, want %v", c.src, toks[0].NumberValue, c.want)
		}
	}
}

func TestTokenizeStringLiteralsBothQuotes(t *testing.T) {
	for _, src := range []string{`'hello'`, `"hello"`} {
		toks := lexer.New(src).Tokenize()
		if toks[0].Kind != token.STRING {
			t.Fatalf("%q: expected STRING, got %v", src, toks[0].Kind)
		}
		if toks[0].StringValue != "hello" {
			t.Errorf("%q: StringValue = %q", src, toks[0].StringValue)
		}
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := lexer.New(`'a\nb\tc'`).Tokenize()
	if want := "a\nb\tc"; toks[0].StringValue != want {
		t.Errorf("StringValue = %q, want %q", toks[0].StringValue, want)
	}
}

func TestUnterminatedStringAccumulatesError(t *testing.T) {
	l := lexer.New(`'unterminated`)
	toks := l.Tokenize()
	if toks[0].Kind != token.STRING {
		t.Fatalf("expected a STRING token despite the missing close quote, got %v", toks[0].Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 accumulated error, got %d", len(l.Errors()))
	}
}

func TestOperatorsAtEveryTier(t *testing.T) {
	src := "+ - * / % == != < > <= >= && || ..."
	want := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.AND, token.OR, token.ELLIPSIS, token.EOF,
	}
	got := kinds(lexer.New(src).Tokenize())
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	src := "var x // a comment\n/* block\ncomment */ = 1"
	toks := lexer.New(src).Tokenize()
	want := []token.Kind{token.KEYWORD, token.IDENT, token.ASSIGN, token.NUMBER, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
}

func TestPositionTrackingAcrossLines(t *testing.T) {
	toks := lexer.New("var x\nvar y").Tokenize()
	var secondVar token.Token
	count := 0
	for _, tk := range toks {
		if tk.Kind == token.KEYWORD && tk.Literal == "var" {
			count++
			if count == 2 {
				secondVar = tk
			}
		}
	}
	if secondVar.Pos.Line != 2 {
		t.Errorf("expected second `var` on line 2, got line %d", secondVar.Pos.Line)
	}
}

func TestWithFileSetsTokenPositions(t *testing.T) {
	toks := lexer.New("x", lexer.WithFile("main.ht")).Tokenize()
	if toks[0].Pos.File != "main.ht" {
		t.Errorf("Pos.File = %q, want main.ht", toks[0].Pos.File)
	}
}

func TestIllegalCharacterRecordsError(t *testing.T) {
	l := lexer.New("$")
	toks := l.Tokenize()
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", toks[0].Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors()))
	}
}
