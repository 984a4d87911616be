package parser

import (
	"fmt"

	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// parseStatement dispatches on Style to enforce spec §4.3's "Statements
// by parse style" table.
func (p *Parser) parseStatement(style Style) ast.Stmt {
	switch {
	case p.isKeyword("import") && style == StyleLibrary:
		return p.parseImport()
	case (p.isKeyword("var") || p.isKeyword("let") || p.isKeyword("def")) && style != StyleClassBody:
		return p.parseVarDeclStmt(false)
	case p.isKeyword("class") && style == StyleLibrary:
		return p.parseClassDecl()
	case (p.isKeyword("fun") || p.isKeyword("proc")) && style != StyleClassBody:
		return p.parseFuncDeclStmt(false)
	case p.isKeyword("external") && style == StyleLibrary:
		return p.parseExternalTopLevel()
	case p.isKeyword("if") && style == StyleFunctionBody:
		return p.parseIf()
	case p.isKeyword("while") && style == StyleFunctionBody:
		return p.parseWhile()
	case p.isKeyword("for") && style == StyleFunctionBody:
		return p.parseForIn()
	case p.isKeyword("return") && style == StyleFunctionBody:
		return p.parseReturn()
	case p.isKeyword("break") && style == StyleFunctionBody:
		t := p.advance()
		p.match(token.SEMI)
		return &ast.BreakStmt{Token: t}
	case p.isKeyword("continue") && style == StyleFunctionBody:
		t := p.advance()
		p.match(token.SEMI)
		return &ast.ContinueStmt{Token: t}
	case p.cur().Kind == token.LBRACE && style == StyleFunctionBody:
		return p.parseBlock(StyleFunctionBody)
	default:
		expr := p.parseExpr(token.LOWEST)
		p.match(token.SEMI)
		return &ast.ExprStmt{Expression: expr}
	}
}

func (p *Parser) parseImport() ast.Stmt {
	t := p.advance()
	pathTok := p.expect(token.STRING, "import path")
	stmt := &ast.ImportStmt{Token: t, Path: pathTok.Literal}
	if p.matchKeyword("as") {
		stmt.Alias = p.expect(token.IDENT, "namespace alias").Literal
	}
	p.match(token.SEMI)
	return stmt
}

// parseVarDeclStmt parses `var|let|def name[: Type][ = init];`.
// `var` is mutable; `let`/`def` are immutable (assignable exactly once,
// at declaration — spec §3 invariant).
func (p *Parser) parseVarDeclStmt(static bool) ast.Stmt {
	kw := p.advance()
	nameTok := p.expect(token.IDENT, "variable name")
	decl := &ast.VarDecl{
		Token: nameTok,
		Name:  nameTok.Literal,
		Flags: ast.VarDeclFlags{Static: static, Mutable: kw.Literal == "var"},
	}
	decl.DeclaredType = p.parseOptionalType()
	decl.Flags.TypeInferred = decl.DeclaredType == nil
	if p.match(token.ASSIGN) {
		decl.Initializer = p.parseExpr(token.LOWEST)
	}
	p.match(token.SEMI)
	return decl
}

func (p *Parser) parseBlock(style Style) *ast.Block {
	lb := p.expect(token.LBRACE, "{")
	block := &ast.Block{LBrace: lb}
	for p.cur().Kind != token.RBRACE {
		block.Statements = append(block.Statements, p.parseStatement(style))
	}
	p.expect(token.RBRACE, "}")
	return block
}

func (p *Parser) parseIf() ast.Stmt {
	t := p.advance()
	p.expect(token.LPAREN, "(")
	cond := p.parseExpr(token.LOWEST)
	p.expect(token.RPAREN, ")")
	then := p.parseStatement(StyleFunctionBody)
	stmt := &ast.IfStmt{Token: t, Cond: cond, Then: then}
	if p.matchKeyword("else") {
		stmt.Else = p.parseStatement(StyleFunctionBody)
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	t := p.advance()
	p.expect(token.LPAREN, "(")
	cond := p.parseExpr(token.LOWEST)
	p.expect(token.RPAREN, ")")
	body := p.parseStatement(StyleFunctionBody)
	return &ast.WhileStmt{Token: t, Cond: cond, Body: body}
}

// parseForIn desugars `for (var x in target) body` at parse time into
// the block spelled out in spec §4.3 ("for-in lowering"): a synthetic
// index variable, a while loop indexing the (cloned) target, and the
// loop body.
func (p *Parser) parseForIn() ast.Stmt {
	t := p.advance()
	p.expect(token.LPAREN, "(")
	p.expectKeyword("var")
	loopVarTok := p.expect(token.IDENT, "loop variable")
	p.expectKeyword("in")
	target := p.parseExpr(token.LOWEST)
	p.expect(token.RPAREN, ")")
	body := p.parseStatement(StyleFunctionBody)

	p.forInCounter++
	idxName := fmt.Sprintf("%s%d", tokenForIndexPrefix, p.forInCounter)

	idxDecl := &ast.VarDecl{
		Token: t, Name: idxName,
		Flags:       ast.VarDeclFlags{Mutable: true},
		Initializer: &ast.ConstExpr{Token: token.Token{Kind: token.NUMBER, Literal: "0", Pos: t.Pos, NumberValue: 0}, Kind: token.NUMBER},
	}
	loopVarDecl := &ast.VarDecl{Token: loopVarTok, Name: loopVarTok.Literal, Flags: ast.VarDeclFlags{Mutable: true}}

	lengthTarget := target.Clone()
	lenCond := &ast.BinaryExpr{
		OpToken: t,
		Left:    &ast.SymbolExpr{Token: t, Name: idxName},
		Op:      "<",
		Right:   &ast.MemberGetExpr{DotToken: t, Collection: lengthTarget, Name: "length"},
	}

	subscriptTarget := target.Clone()
	assignLoopVar := &ast.ExprStmt{Expression: &ast.AssignExpr{
		Token:  t,
		Target: loopVarTok.Literal,
		Op:     "=",
		Value:  &ast.SubGetExpr{LBracket: t, Collection: subscriptTarget, Key: &ast.SymbolExpr{Token: t, Name: idxName}},
	}}
	incIdx := &ast.ExprStmt{Expression: &ast.AssignExpr{
		Token:  t,
		Target: idxName,
		Op:     "=",
		Value: &ast.BinaryExpr{
			OpToken: t, Op: "+",
			Left:  &ast.SymbolExpr{Token: t, Name: idxName},
			Right: &ast.ConstExpr{Token: token.Token{Kind: token.NUMBER, Literal: "1", Pos: t.Pos, NumberValue: 1}, Kind: token.NUMBER},
		},
	}}

	whileBody := &ast.Block{LBrace: t, Statements: []ast.Stmt{assignLoopVar, incIdx, body}}
	whileStmt := &ast.WhileStmt{Token: t, Cond: lenCond, Body: whileBody}

	return &ast.Block{LBrace: t, Statements: []ast.Stmt{idxDecl, loopVarDecl, whileStmt}}
}

const tokenForIndexPrefix = "__i"

func (p *Parser) parseReturn() ast.Stmt {
	t := p.advance()
	stmt := &ast.ReturnStmt{Token: t}
	if p.cur().Kind != token.SEMI && p.cur().Kind != token.RBRACE {
		stmt.Value = p.parseExpr(token.LOWEST)
	}
	p.match(token.SEMI)
	return stmt
}

func (p *Parser) parseExternalTopLevel() ast.Stmt {
	p.advance() // 'external'
	switch {
	case p.isKeyword("class"):
		return p.parseClassDeclExternal(true)
	case p.isKeyword("fun") || p.isKeyword("proc"):
		return p.parseFuncDeclStmt(true)
	}
	p.fail("expected 'class', 'fun', or 'proc' after 'external'")
	return nil
}

func (p *Parser) parseFuncDeclStmt(external bool) *ast.FuncDecl {
	kwTok := p.advance()
	kind := ast.FuncNormal
	if kwTok.Literal == "proc" {
		kind = ast.FuncProcedure
	}
	nameTok := p.expect(token.IDENT, "function name")
	decl := &ast.FuncDecl{Token: kwTok, Kind: kind, Name: nameTok.Literal, Flags: ast.FuncDeclFlags{External: external}}
	decl.Params, decl.Variadic = p.parseParams()
	decl.ReturnType = p.parseOptionalType()
	if !external {
		decl.Body = p.parseBlock(StyleFunctionBody)
	} else {
		p.match(token.SEMI)
	}
	return decl
}
