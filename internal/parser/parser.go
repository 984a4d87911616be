// Package parser implements Hetu's recursive-descent, precedence-climbing
// parser (spec §4.3). Three parsing styles — library, function body, and
// class body — gate which statements are legal at a given nesting level.
// Grounded on the teacher's internal/parser: a single Parser struct
// carrying the file's full token slice and a cursor into it, and no error
// recovery (the first parse error aborts the current file, per spec).
package parser

import (
	"fmt"

	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// Style selects which statement forms are legal at the current nesting
// level (spec §4.3, "Statements by parse style").
type Style int

const (
	StyleLibrary Style = iota
	StyleFunctionBody
	StyleClassBody
)

// Parser turns a token stream into an AST. A single Parser instance
// parses exactly one file; construct a new one per file.
type Parser struct {
	lex  *lexer.Lexer
	toks []token.Token
	pos  int
	file string

	forInCounter int
}

// New creates a Parser reading every token from l up front, so lookahead
// never needs to re-invoke the lexer mid-parse.
func New(l *lexer.Lexer, file string) *Parser {
	return &Parser{lex: l, toks: l.Tokenize(), file: file}
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

func (p *Parser) isKeyword(lit string) bool {
	return p.cur().Kind == token.KEYWORD && p.cur().Literal == lit
}

func (p *Parser) matchKeyword(lit string) bool {
	if p.isKeyword(lit) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) match(k token.Kind) bool {
	if p.cur().Kind == k {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.cur().Kind != k {
		p.fail("expected %s, got %q", what, p.cur().Literal)
	}
	return p.advance()
}

func (p *Parser) expectKeyword(lit string) token.Token {
	if !p.isKeyword(lit) {
		p.fail("expected keyword %q, got %q", lit, p.cur().Literal)
	}
	return p.advance()
}

// fail raises the parse error as a panic carrying a *herrors.HetuError,
// caught by ParseProgram. This gives the parser unwind-on-first-error
// behavior (spec §4.3, "Error recovery: None") without threading error
// returns through every recursive-descent method.
func (p *Parser) fail(format string, args ...any) {
	panic(herrors.New(herrors.Parse, p.cur().Pos, format, args...))
}

type parseResult struct {
	program *ast.Program
	err     *herrors.HetuError
}

// ParseProgram parses the whole token stream under StyleLibrary and
// returns the resulting Program, or the first parse error encountered.
func (p *Parser) ParseProgram() (prog *ast.Program, err *herrors.HetuError) {
	defer func() {
		if r := recover(); r != nil {
			if he, ok := r.(*herrors.HetuError); ok {
				err = he
				return
			}
			panic(r)
		}
	}()

	prog = &ast.Program{File: p.file}
	for !p.atEOF() {
		prog.Statements = append(prog.Statements, p.parseStatement(StyleLibrary))
	}
	return prog, nil
}

// ParseExpression parses a single expression in function-body style,
// used by hosts evaluating a bare expression (pkg/hetu's `function`
// eval style).
func (p *Parser) ParseExpression() (expr ast.Expr, err *herrors.HetuError) {
	defer func() {
		if r := recover(); r != nil {
			if he, ok := r.(*herrors.HetuError); ok {
				err = he
				return
			}
			panic(r)
		}
	}()
	expr = p.parseExpr(token.LOWEST)
	return expr, nil
}

func (p *Parser) fmtErr(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// herrorf builds a Parse-kind HetuError for panic/recover-based error
// propagation from deep inside expression parsing helpers that don't
// hold a *Parser receiver.
func herrorf(pos token.Position, format string, args ...any) *herrors.HetuError {
	return herrors.New(herrors.Parse, pos, format, args...)
}
