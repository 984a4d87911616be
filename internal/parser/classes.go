package parser

import (
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	return p.parseClassDeclExternal(false)
}

func (p *Parser) parseClassDeclExternal(external bool) *ast.ClassDecl {
	kw := p.expectKeyword("class")
	nameTok := p.expect(token.IDENT, "class name")
	decl := &ast.ClassDecl{Token: kw, Name: nameTok.Literal, External: external}
	if p.matchKeyword("extends") {
		decl.Super = p.expect(token.IDENT, "superclass name").Literal
	}
	p.expect(token.LBRACE, "{")
	for p.cur().Kind != token.RBRACE {
		p.parseClassBodyMember(decl, external)
	}
	p.expect(token.RBRACE, "}")
	return decl
}

// parseClassBodyMember parses one member and appends it to decl.
// Handles the optional leading `static` and `external` modifiers; when
// both are present, `static` comes first. classExternal is true when the
// enclosing class itself was declared `external class` — every method in
// such a body is implicitly external (and so carries no `{ ... }` body
// of its own) even when the member omits its own `external` keyword,
// matching spec §8 scenario (f)'s literal
// `external class Person { var name fun greeting }`.
func (p *Parser) parseClassBodyMember(decl *ast.ClassDecl, classExternal bool) {
	static := p.matchKeyword("static")
	external := p.matchKeyword("external") || classExternal

	switch {
	case p.isKeyword("var") || p.isKeyword("let") || p.isKeyword("def"):
		v := p.parseVarDeclStmt(static).(*ast.VarDecl)
		decl.Variables = append(decl.Variables, v)
	default:
		m := p.parseMethodDecl(static, external)
		m.OwningClass = decl.Name
		decl.Methods = append(decl.Methods, m)
	}
}

func (p *Parser) parseMethodDecl(static, external bool) *ast.FuncDecl {
	kwTok := p.cur()
	var kind ast.FuncKind
	var name string
	switch {
	case p.isKeyword("construct"):
		p.advance()
		kind = ast.FuncConstructor
		name = token.PrefixConstructor
	case p.isKeyword("get"):
		p.advance()
		userName := p.expect(token.IDENT, "getter name").Literal
		kind = ast.FuncGetter
		name = userName
	case p.isKeyword("set"):
		p.advance()
		userName := p.expect(token.IDENT, "setter name").Literal
		kind = ast.FuncSetter
		name = userName
	case p.isKeyword("fun"):
		p.advance()
		kind = ast.FuncMethod
		name = p.expect(token.IDENT, "method name").Literal
	case p.isKeyword("proc"):
		p.advance()
		kind = ast.FuncProcedure
		name = p.expect(token.IDENT, "method name").Literal
	default:
		p.fail("expected a class member ('var', 'construct', 'get', 'set', 'fun', or 'proc'), got %q", p.cur().Literal)
	}

	decl := &ast.FuncDecl{
		Token: kwTok, Kind: kind, Name: name,
		Flags: ast.FuncDeclFlags{Static: static, External: external},
	}
	decl.Params, decl.Variadic = p.parseParams()
	if kind == ast.FuncGetter && len(decl.Params) != 0 {
		p.fail("a getter takes zero parameters, got %d", len(decl.Params))
	}
	if kind == ast.FuncSetter && len(decl.Params) != 1 {
		p.fail("a setter takes exactly one parameter, got %d", len(decl.Params))
	}
	decl.ReturnType = p.parseOptionalType()
	if !external {
		decl.Body = p.parseBlock(StyleFunctionBody)
	} else {
		p.match(token.SEMI)
	}
	return decl
}

