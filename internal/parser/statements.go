package parser

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/token"
)

// parseStmt parses one statement:
//
//	stmt := exprStmt ';' | returnStmt | ifStmt | forStmt | whileStmt
//	       | assign ';' | 'pass' ';' | 'raise' expr ';'
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.PASS:
		start := p.cur.Span
		p.next()
		p.expect(token.SEMICOLON)
		return &ast.PassStmt{SpanInfo: start}
	case token.RAISE:
		start := p.cur.Span.Start
		p.next()
		val := p.parseExpr()
		end := p.cur.Span.End
		p.expect(token.SEMICOLON)
		return &ast.RaiseStmt{Value: val, SpanInfo: token.Span{Start: start, End: end}}
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.next() // 'return'
	var val ast.Expr
	if !p.at(token.SEMICOLON) {
		val = p.parseExpr()
	}
	end := p.cur.Span.End
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Value: val, SpanInfo: token.Span{Start: start, End: end}}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.next() // 'if'
	cond := p.parseExpr()
	body := p.parseBlock()
	stmt := &ast.IfStmt{If: ast.IfClause{Cond: cond, Body: body}}

	for p.at(token.ELIF) {
		p.next()
		c := p.parseExpr()
		b := p.parseBlock()
		stmt.Elifs = append(stmt.Elifs, ast.IfClause{Cond: c, Body: b})
	}
	if p.at(token.ELSE) {
		p.next()
		stmt.Else = p.parseBlock()
	}
	stmt.SpanInfo = token.Span{Start: start, End: p.cur.Span.Start}
	return stmt
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.next() // 'for'
	nameTok := p.expect(token.IDENT)
	p.expect(token.IN)
	iter := p.parseExpr()
	body := p.parseBlock()
	return &ast.ForStmt{
		VarName:  nameTok.Literal,
		Iter:     iter,
		Body:     body,
		SpanInfo: token.Span{Start: start, End: p.cur.Span.Start},
	}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.next() // 'while'
	cond := p.parseExpr()
	body := p.parseBlock()
	return &ast.WhileStmt{Cond: cond, Body: body, SpanInfo: token.Span{Start: start, End: p.cur.Span.Start}}
}

var compoundAssignOps = map[token.Kind]string{
	token.ASSIGN:       "",
	token.PLUS_ASSIGN:  "+",
	token.MINUS_ASSIGN: "-",
	token.STAR_ASSIGN:  "*",
	token.SLASH_ASSIGN: "/",
}

// parseSimpleStmt disambiguates a bare expression statement from an
// assignment by parsing the left-hand expression first and checking
// whether an assignment operator follows. A leading `x: Type = expr;`
// declares a new local (VarDeclStmt); anything else reaching an assignment
// operator is an AssignStmt to an existing lvalue.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	start := p.cur.Span.Start

	if p.at(token.IDENT) && p.peek(0).Kind == token.COLON {
		nameTok := p.cur
		p.next() // name
		p.next() // ':'
		typ := p.parseType()
		var val ast.Expr
		if p.at(token.ASSIGN) {
			p.next()
			val = p.parseExpr()
		}
		end := p.cur.Span.End
		p.expect(token.SEMICOLON)
		return &ast.VarDeclStmt{Name: nameTok.Literal, Type: typ, Value: val, SpanInfo: token.Span{Start: start, End: end}}
	}

	expr := p.parseExpr()
	if op, ok := compoundAssignOps[p.cur.Kind]; ok {
		p.next()
		val := p.parseExpr()
		end := p.cur.Span.End
		p.expect(token.SEMICOLON)
		return &ast.AssignStmt{Target: expr, Op: op, Value: val, SpanInfo: token.Span{Start: start, End: end}}
	}

	end := p.cur.Span.End
	p.expect(token.SEMICOLON)
	return &ast.ExprStmt{X: expr, SpanInfo: token.Span{Start: start, End: end}}
}
