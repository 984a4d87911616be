package parser

import "github.com/hetu-script/hetu-go/pkg/ast"
import "github.com/hetu-script/hetu-go/pkg/token"

// parseOptionalType parses an optional `: TypeName<T1, T2>` annotation,
// consuming the leading colon itself. Returns nil (defaulting to `any`,
// spec §4.3) if no `:` is present.
func (p *Parser) parseOptionalType() *ast.HType {
	if !p.match(token.COLON) {
		return nil
	}
	return p.parseType()
}

func (p *Parser) parseType() *ast.HType {
	var name string
	if p.isKeyword("fun") {
		// `fun` names the function type, as in `fun make(): fun { ... }`.
		name = p.advance().Literal
	} else {
		name = p.expect(token.IDENT, "type name").Literal
	}
	t := &ast.HType{Name: name}
	if p.cur().Kind == token.LT {
		p.advance()
		for p.cur().Kind != token.GT {
			t.Args = append(t.Args, p.parseType())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.GT, ">")
	}
	return t
}
