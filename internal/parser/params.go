package parser

import (
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// parseParams parses a parameter list: positional params, then an
// optional `[ ... ]` block of optional-positional params, then an
// optional `{ ... }` block of named params, then an optional trailing
// `...` marking the whole list variadic (spec §4.3, "Parameters"). The
// entire `( ... )` is itself optional — a zero-arg function/method/
// getter is written with no parameter list at all (e.g. `fun hi { ... }`,
// `proc main { ... }`).
func (p *Parser) parseParams() ([]*ast.VarDecl, bool) {
	if !p.match(token.LPAREN) {
		return nil, false
	}

	var params []*ast.VarDecl
	variadic := false

	for p.cur().Kind != token.RPAREN {
		switch p.cur().Kind {
		case token.LBRACKET:
			p.advance()
			for p.cur().Kind != token.RBRACKET {
				params = append(params, p.parseOneParam(ast.VarDeclFlags{OptionalParam: true}))
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RBRACKET, "]")
		case token.LBRACE:
			p.advance()
			for p.cur().Kind != token.RBRACE {
				params = append(params, p.parseOneParam(ast.VarDeclFlags{NamedParam: true}))
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RBRACE, "}")
		case token.ELLIPSIS:
			p.advance()
			variadic = true
		default:
			params = append(params, p.parseOneParam(ast.VarDeclFlags{}))
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, ")")
	return params, variadic
}

func (p *Parser) parseOneParam(flags ast.VarDeclFlags) *ast.VarDecl {
	nameTok := p.expect(token.IDENT, "parameter name")
	decl := &ast.VarDecl{Token: nameTok, Name: nameTok.Literal, Flags: flags}
	decl.DeclaredType = p.parseOptionalType()
	if p.match(token.ASSIGN) {
		decl.Default = p.parseExpr(token.LOWEST)
	}
	return decl
}
