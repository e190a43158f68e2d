package parser

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/token"
)

// parseInterfaceDecl parses:
//
//	interfaceDecl := 'interface' IDENT ('extends' identList)? '{' methodSig* '}'
func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.cur.Span.Start
	p.next() // 'interface'

	nameTok := p.expect(token.IDENT)
	decl := &ast.InterfaceDecl{Name: nameTok.Literal, NameSpan: nameTok.Span}

	if p.at(token.EXTENDS) {
		p.next()
		decl.Extends = p.parseIdentList()
	}

	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		sig := p.parseMethodSig()
		if sig == nil {
			p.sync()
			continue
		}
		decl.Methods = append(decl.Methods, sig)
	}
	end := p.cur.Span.End
	p.expect(token.RBRACE)

	decl.SpanInfo = token.Span{Start: start, End: end}
	return decl
}

// parseIdentList parses a comma-separated list of identifiers, as used by
// `extends` and `implements` lists.
func (p *Parser) parseIdentList() []string {
	var names []string
	tok := p.expect(token.IDENT)
	names = append(names, tok.Literal)
	for p.at(token.COMMA) {
		p.next()
		tok := p.expect(token.IDENT)
		names = append(names, tok.Literal)
	}
	return names
}

// parseMethodSig parses `def IDENT '(' params ')' ('->' type)? ';'` with no
// body, as required inside an interface body (§4.6 rule 4a).
func (p *Parser) parseMethodSig() *ast.MethodSig {
	if !p.at(token.DEF) {
		p.errorf("MalformedDeclaration", "expected method signature, got %s %q", p.cur.Kind, p.cur.Literal)
		return nil
	}
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

	if p.at(token.LBRACE) {
		// §4.6 rule 4a: an interface body may contain only signatures.
		p.errorf("InterfaceHasBody", "interface method %q must not have a body", nameTok.Literal)
		p.parseBlock() // consume and discard to keep parsing in sync
	} else {
		p.expect(token.SEMICOLON)
	}

	return &ast.MethodSig{
		Name:       nameTok.Literal,
		Params:     params,
		ReturnType: ret,
		SpanInfo:   token.Span{Start: start, End: nameTok.Span.End},
	}
}
