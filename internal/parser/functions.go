package parser

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/token"
)

// parseType parses a nominal type annotation: a single identifier.
func (p *Parser) parseType() *ast.TypeAnnotation {
	tok := p.expect(token.IDENT)
	return &ast.TypeAnnotation{Name: tok.Literal, SpanInfo: tok.Span}
}

// parseParams parses a comma-separated parameter list: `params := (IDENT
// (':' type)? (',' IDENT (':' type)?)*)?`. The implicit `self` receiver of
// instance methods is not part of the list; the interpreter binds it at
// call time. A parameter written as `self` is kept as an ordinary one.
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	if p.at(token.RPAREN) {
		return params
	}
	for {
		params = append(params, p.parseParam())
		if !p.at(token.COMMA) {
			break
		}
		p.next()
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	var nameTok token.Token
	switch p.cur.Kind {
	case token.SELF:
		nameTok = p.cur
		p.next()
	default:
		nameTok = p.expect(token.IDENT)
	}
	param := &ast.Param{Name: nameTok.Literal, SpanInfo: nameTok.Span}
	if p.at(token.COLON) {
		p.next()
		param.Type = p.parseType()
	}
	return param
}

// parseFuncDef parses `'def' IDENT '(' params ')' ('->' type)? block`.
func (p *Parser) parseFuncDef() *ast.FuncDef {
	start := p.cur.Span.Start
	p.next() // 'def'
	nameTok := p.expect(token.IDENT)

	p.expect(token.LPAREN)
	params := p.parseParams()
	p.expect(token.RPAREN)

	var ret *ast.TypeAnnotation
	if p.at(token.ARROW) {
		p.next()
		ret = p.parseType()
	}

	body := p.parseBlock()
	return &ast.FuncDef{
		Name:       nameTok.Literal,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		NameSpan:   nameTok.Span,
		SpanInfo:   token.Span{Start: start, End: p.cur.Span.Start},
	}
}

// parseBlock parses `'{' stmt* '}'`.
func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if !p.enter() {
			break
		}
		stmt := p.parseStmt()
		p.leave()
		if stmt == nil {
			p.sync()
			continue
		}
		stmts = append(stmts, stmt)
	}
	p.expect(token.RBRACE)
	return stmts
}
