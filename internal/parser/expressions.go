package parser

import (
	"strconv"
	"strings"

	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/token"
)

// parseExpr parses a full expression at the lowest precedence (`or`), per
// §4.2's precedence table.
func (p *Parser) parseExpr() ast.Expr {
	if !p.enter() {
		return &ast.NoneLit{SpanInfo: p.cur.Span}
	}
	defer p.leave()
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.at(token.OR) {
		start := left.Span().Start
		p.next()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Op: "or", Left: left, Right: right, SpanInfo: token.Span{Start: start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.at(token.AND) {
		start := left.Span().Start
		p.next()
		right := p.parseNot()
		left = &ast.BinaryExpr{Op: "and", Left: left, Right: right, SpanInfo: token.Span{Start: start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.at(token.NOT) {
		start := p.cur.Span.Start
		p.next()
		x := p.parseNot()
		return &ast.UnaryExpr{Op: "not", X: x, SpanInfo: token.Span{Start: start, End: x.Span().End}}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for {
		op, matched := p.matchComparisonOp()
		if !matched {
			break
		}
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, SpanInfo: token.Span{Start: left.Span().Start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) matchComparisonOp() (string, bool) {
	switch p.cur.Kind {
	case token.EQ:
		p.next()
		return "==", true
	case token.NOT_EQ:
		p.next()
		return "!=", true
	case token.LESS:
		p.next()
		return "<", true
	case token.LESS_EQ:
		p.next()
		return "<=", true
	case token.GREATER:
		p.next()
		return ">", true
	case token.GREATER_EQ:
		p.next()
		return ">=", true
	case token.IN:
		p.next()
		return "in", true
	case token.IS:
		p.next()
		if p.at(token.NOT) {
			p.next()
			return "is not", true
		}
		return "is", true
	case token.NOT:
		if p.peek(0).Kind == token.IN {
			p.next()
			p.next()
			return "not in", true
		}
		return "", false
	}
	return "", false
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.cur.Literal
		p.next()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, SpanInfo: token.Span{Start: left.Span().Start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parsePower()
	for p.at(token.STAR) || p.at(token.SLASH) || p.at(token.PERCENT) {
		op := p.cur.Literal
		p.next()
		right := p.parsePower()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, SpanInfo: token.Span{Start: left.Span().Start, End: right.Span().End}}
	}
	return left
}

// parsePower is right-associative, per §4.2.
func (p *Parser) parsePower() ast.Expr {
	left := p.parseUnary()
	if p.at(token.POWER) {
		p.next()
		right := p.parsePower()
		return &ast.BinaryExpr{Op: "**", Left: left, Right: right, SpanInfo: token.Span{Start: left.Span().Start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.MINUS) {
		start := p.cur.Span.Start
		p.next()
		x := p.parseUnary()
		return &ast.UnaryExpr{Op: "-", X: x, SpanInfo: token.Span{Start: start, End: x.Span().End}}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case token.DOT:
			p.next()
			nameTok := p.expect(token.IDENT)
			expr = &ast.AttrExpr{X: expr, Name: nameTok.Literal, SpanInfo: token.Span{Start: expr.Span().Start, End: nameTok.Span.End}}
		case token.LPAREN:
			p.next()
			var args []ast.Expr
			if !p.at(token.RPAREN) {
				args = append(args, p.parseExpr())
				for p.at(token.COMMA) {
					p.next()
					args = append(args, p.parseExpr())
				}
			}
			end := p.cur.Span.End
			p.expect(token.RPAREN)
			expr = &ast.CallExpr{Callee: expr, Args: args, SpanInfo: token.Span{Start: expr.Span().Start, End: end}}
		case token.LBRACK:
			expr = p.parseIndexOrSlice(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseIndexOrSlice(x ast.Expr) ast.Expr {
	p.next() // '['
	var lo, hi ast.Expr
	isSlice := false
	if !p.at(token.COLON) {
		lo = p.parseExpr()
	}
	if p.at(token.COLON) {
		isSlice = true
		p.next()
		if !p.at(token.RBRACK) {
			hi = p.parseExpr()
		}
	}
	end := p.cur.Span.End
	p.expect(token.RBRACK)
	return &ast.IndexExpr{X: x, Index: lo, Hi: hi, IsSlice: isSlice, SpanInfo: token.Span{Start: x.Span().Start, End: end}}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur
	switch tok.Kind {
	case token.INT:
		p.next()
		v, err := strconv.ParseInt(tok.Literal, 0, 64)
		if err != nil {
			p.Bag.Errorf("InvalidNumber", tok.Span, "invalid integer literal %q", tok.Literal)
		}
		return &ast.IntLit{Value: v, SpanInfo: tok.Span}
	case token.FLOAT:
		p.next()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.Bag.Errorf("InvalidNumber", tok.Span, "invalid float literal %q", tok.Literal)
		}
		return &ast.FloatLit{Value: v, SpanInfo: tok.Span}
	case token.STRING:
		p.next()
		return &ast.StringLit{Value: tok.Literal, SpanInfo: tok.Span}
	case token.FSTRING:
		p.next()
		return p.parseFString(tok)
	case token.TRUE:
		p.next()
		return &ast.BoolLit{Value: true, SpanInfo: tok.Span}
	case token.FALSE:
		p.next()
		return &ast.BoolLit{Value: false, SpanInfo: tok.Span}
	case token.NONE:
		p.next()
		return &ast.NoneLit{SpanInfo: tok.Span}
	case token.SELF, token.SUPER, token.IDENT:
		p.next()
		return &ast.Identifier{Name: tok.Literal, SpanInfo: tok.Span}
	case token.LBRACK:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseDictLit()
	case token.LPAREN:
		return p.parseParenOrTuple()
	default:
		p.errorf("UnexpectedToken", "unexpected token %s %q in expression", tok.Kind, tok.Literal)
		p.next()
		return &ast.NoneLit{SpanInfo: tok.Span}
	}
}

func (p *Parser) parseListLit() ast.Expr {
	start := p.cur.Span.Start
	p.next() // '['
	var elems []ast.Expr
	if !p.at(token.RBRACK) {
		elems = append(elems, p.parseExpr())
		for p.at(token.COMMA) {
			p.next()
			if p.at(token.RBRACK) {
				break
			}
			elems = append(elems, p.parseExpr())
		}
	}
	end := p.cur.Span.End
	p.expect(token.RBRACK)
	return &ast.ListLit{Elements: elems, SpanInfo: token.Span{Start: start, End: end}}
}

func (p *Parser) parseDictLit() ast.Expr {
	start := p.cur.Span.Start
	p.next() // '{'
	var entries []ast.DictEntry
	if !p.at(token.RBRACE) {
		entries = append(entries, p.parseDictEntry())
		for p.at(token.COMMA) {
			p.next()
			if p.at(token.RBRACE) {
				break
			}
			entries = append(entries, p.parseDictEntry())
		}
	}
	end := p.cur.Span.End
	p.expect(token.RBRACE)
	return &ast.DictLit{Entries: entries, SpanInfo: token.Span{Start: start, End: end}}
}

func (p *Parser) parseDictEntry() ast.DictEntry {
	key := p.parseExpr()
	p.expect(token.COLON)
	value := p.parseExpr()
	return ast.DictEntry{Key: key, Value: value}
}

// parseParenOrTuple parses a parenthesized expression or a tuple literal.
// A single parenthesized expression with no trailing comma is just that
// expression; anything with a comma (including a trailing one) is a tuple.
func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.cur.Span.Start
	p.next() // '('
	if p.at(token.RPAREN) {
		end := p.cur.Span.End
		p.next()
		return &ast.TupleLit{SpanInfo: token.Span{Start: start, End: end}}
	}
	first := p.parseExpr()
	if !p.at(token.COMMA) {
		p.expect(token.RPAREN)
		return first
	}
	elems := []ast.Expr{first}
	for p.at(token.COMMA) {
		p.next()
		if p.at(token.RPAREN) {
			break
		}
		elems = append(elems, p.parseExpr())
	}
	end := p.cur.Span.End
	p.expect(token.RPAREN)
	return &ast.TupleLit{Elements: elems, SpanInfo: token.Span{Start: start, End: end}}
}

// parseFString splits an f-string's raw body (already brace-balanced by the
// lexer) into literal and interpolated chunks, then hands each
// interpolated expression's text to a fresh sub-parser. Format specs (the
// text after ':') are resolved by internal/parser/fstring.go.
func (p *Parser) parseFString(tok token.Token) ast.Expr {
	chunks := splitFStringBody(tok.Literal)
	out := &ast.FStringExpr{SpanInfo: tok.Span}
	for _, c := range chunks {
		if !c.isExpr {
			out.Chunks = append(out.Chunks, ast.FStringChunk{Literal: c.text})
			continue
		}
		exprSrc, spec := splitFormatSpec(c.text)
		subLexer := newSubLexer(exprSrc, tok.Span.Start)
		subParser := New(subLexer, p.Bag)
		expr := subParser.parseExpr()
		precision, kind := p.applyFormatSpecText(spec, tok.Span)
		out.Chunks = append(out.Chunks, ast.FStringChunk{Expr: expr, RawSpec: spec, SpecKind: kind, SpecPrecision: precision})
	}
	return out
}

// splitFormatSpec splits "expr:spec" into its parts; a bare expr has no
// spec. Only the first top-level ':' (outside nested brackets) separates
// expression from spec.
func splitFormatSpec(body string) (expr, spec string) {
	depth := 0
	for i, r := range body {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(body[:i]), body[i+1:]
			}
		}
	}
	return strings.TrimSpace(body), ""
}
