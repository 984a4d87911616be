package parser

import (
	"github.com/hetu-script/hetu-go/pkg/ast"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// parseExpr implements precedence climbing across tiers 3-10 of spec
// §4.3 (prefix unary through assignment). Tiers 1-2 (primary, postfix)
// live in parsePrimary/parsePostfix.
func (p *Parser) parseExpr(minPrec token.Precedence) ast.Expr {
	left := p.parseUnary()

	for {
		// `is` is lexed as a keyword, not an operator token, so it needs
		// its own check at the relational tier (spec §4.3 tier 6).
		if p.isKeyword("is") {
			if token.RELATIONAL < minPrec {
				break
			}
			opTok := p.advance()
			right := p.parseUnary()
			left = &ast.BinaryExpr{OpToken: opTok, Left: left, Op: "is", Right: right}
			continue
		}

		prec, ok := token.BinaryPrecedence[p.cur().Kind]
		if !ok || prec < minPrec {
			break
		}
		opTok := p.advance()
		// All binary tiers are left-associative; climb strictly above
		// the current tier for the right-hand operand.
		right := p.parseExpr(prec + 1)
		left = &ast.BinaryExpr{OpToken: opTok, Left: left, Op: opTok.Literal, Right: right}
	}

	// Assignment binds loosest and is right-associative; handled after
	// the climb above has produced a complete l-value candidate.
	if p.cur().Kind == token.ASSIGN && token.ASSIGNMENT >= minPrec {
		eqTok := p.advance()
		value := p.parseExpr(token.ASSIGNMENT)
		return p.toAssignment(left, eqTok, value)
	}

	return left
}

// toAssignment validates that left is a legal l-value and rewrites
// MemberGet/SubGet targets into MemberSet/SubSet, per spec §4.3.
func (p *Parser) toAssignment(left ast.Expr, eqTok token.Token, value ast.Expr) ast.Expr {
	switch t := left.(type) {
	case *ast.SymbolExpr:
		return &ast.AssignExpr{Token: eqTok, Target: t.Name, Op: "=", Value: value}
	case *ast.MemberGetExpr:
		return &ast.MemberSetExpr{DotToken: t.DotToken, Collection: t.Collection, Name: t.Name, Value: value}
	case *ast.SubGetExpr:
		return &ast.SubSetExpr{LBracket: t.LBracket, Collection: t.Collection, Key: t.Key, Value: value}
	default:
		panic(herrorf(eqTok.Pos, "invalid assignment target"))
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur().Kind == token.BANG || p.cur().Kind == token.MINUS {
		opTok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{OpToken: opTok, Op: opTok.Literal, Operand: operand}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur().Kind {
		case token.DOT:
			dotTok := p.advance()
			nameTok := p.expect(token.IDENT, "member name")
			expr = &ast.MemberGetExpr{DotToken: dotTok, Collection: expr, Name: nameTok.Literal}
		case token.LBRACKET:
			lb := p.advance()
			key := p.parseExpr(token.LOWEST)
			p.expect(token.RBRACKET, "]")
			expr = &ast.SubGetExpr{LBracket: lb, Collection: expr, Key: key}
		case token.LPAREN:
			expr = p.parseCall(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	lp := p.advance()
	call := &ast.CallExpr{LParen: lp, Callee: callee}
	for p.cur().Kind != token.RPAREN {
		if p.cur().Kind == token.IDENT && p.peek().Kind == token.COLON {
			nameTok := p.advance()
			p.advance() // ':'
			val := p.parseExpr(token.LOWEST)
			call.Named = append(call.Named, &ast.NamedArgExpr{NameToken: nameTok, Name: nameTok.Literal, Value: val})
		} else {
			call.Positional = append(call.Positional, p.parseExpr(token.LOWEST))
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, ")")
	return call
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.cur()
	switch {
	case t.Kind == token.NUMBER:
		p.advance()
		return &ast.ConstExpr{Token: t, Kind: token.NUMBER}
	case t.Kind == token.STRING:
		p.advance()
		return &ast.ConstExpr{Token: t, Kind: token.STRING}
	case t.Kind == token.BOOL:
		p.advance()
		return &ast.ConstExpr{Token: t, Kind: token.BOOL}
	case t.Kind == token.KEYWORD && t.Literal == "null":
		p.advance()
		return &ast.NullExpr{Token: t}
	case t.Kind == token.KEYWORD && t.Literal == "this":
		p.advance()
		return &ast.ThisExpr{Token: t}
	case t.Kind == token.IDENT:
		p.advance()
		return &ast.SymbolExpr{Token: t, Name: t.Literal}
	case t.Kind == token.LPAREN:
		lp := p.advance()
		inner := p.parseExpr(token.LOWEST)
		p.expect(token.RPAREN, ")")
		return &ast.GroupExpr{LParen: lp, Inner: inner}
	case t.Kind == token.LBRACKET:
		return p.parseLiteralVector()
	case t.Kind == token.LBRACE:
		return p.parseLiteralDict()
	}
	panic(herrorf(t.Pos, "unexpected token %q", t.Literal))
}

func (p *Parser) parseLiteralVector() ast.Expr {
	lb := p.advance()
	vec := &ast.LiteralVectorExpr{LBracket: lb}
	for p.cur().Kind != token.RBRACKET {
		vec.Items = append(vec.Items, p.parseExpr(token.LOWEST))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACKET, "]")
	return vec
}

func (p *Parser) parseLiteralDict() ast.Expr {
	lb := p.advance()
	dict := &ast.LiteralDictExpr{LBrace: lb}
	for p.cur().Kind != token.RBRACE {
		key := p.parseExpr(token.LOWEST)
		p.expect(token.COLON, ":")
		val := p.parseExpr(token.LOWEST)
		dict.Entries = append(dict.Entries, ast.DictEntry{Key: key, Value: val})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE, "}")
	return dict
}
