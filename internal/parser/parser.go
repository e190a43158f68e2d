// Package parser implements Spy's recursive-descent parser (§4.2). Errors
// are collected rather than fatal: on a syntax error the parser recovers in
// panic mode to the next `;` or `}` and keeps going, so later diagnostics
// can still surface.
package parser

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/diagnostics"
	"github.com/reclipse/spicy/internal/lexer"
	"github.com/reclipse/spicy/internal/token"
)

// MaxRecursionDepth bounds expression/statement nesting (§5, advisory
// resource limit: "parser recursion depth capped (e.g., 512)").
const MaxRecursionDepth = 512

// Parser turns a lexer's token stream into an *ast.Program.
type Parser struct {
	l     *lexer.Lexer
	Bag   *diagnostics.Bag
	cur   token.Token
	depth int
}

// New creates a Parser reading from l, reporting into bag.
func New(l *lexer.Lexer, bag *diagnostics.Bag) *Parser {
	p := &Parser{l: l, Bag: bag}
	p.cur = l.NextToken()
	return p
}

func (p *Parser) next() {
	p.cur = p.l.NextToken()
}

func (p *Parser) peek(n int) token.Token {
	return p.l.Peek(n)
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) errorf(code string, format string, args ...any) {
	p.Bag.Errorf(code, p.cur.Span, format, args...)
}

// expect consumes the current token if it has the expected kind, emitting
// ExpectedToken otherwise. It returns the consumed token either way so
// callers can keep going.
func (p *Parser) expect(kind token.Kind) token.Token {
	tok := p.cur
	if p.cur.Kind != kind {
		p.errorf("ExpectedToken", "expected %s, got %s %q", kind, p.cur.Kind, p.cur.Literal)
		return tok
	}
	p.next()
	return tok
}

// sync discards tokens up to and including the next `;` or `}` (panic-mode
// recovery, §4.2), or up to EOF if neither appears.
func (p *Parser) sync() {
	for {
		switch p.cur.Kind {
		case token.SEMICOLON:
			p.next()
			return
		case token.RBRACE:
			p.next()
			return
		case token.EOF:
			return
		}
		p.next()
	}
}

func (p *Parser) enter() bool {
	p.depth++
	if p.depth > MaxRecursionDepth {
		p.errorf("MalformedDeclaration", "expression or statement nesting exceeds %d levels", MaxRecursionDepth)
		return false
	}
	return true
}

func (p *Parser) leave() { p.depth-- }

// ParseProgram parses an entire source file into a Program. It always
// reaches EOF, having recorded every recoverable error along the way,
// unless the recursion-depth guard trips. Stopping the pipeline when no
// top-level declaration resulted is left to compilation.Compile.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur.Span.Start
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		if !p.enter() {
			break
		}
		decl := p.parseTopDecl()
		p.leave()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	end := p.cur.Span.End
	prog.SpanInfo = token.Span{Start: start, End: end}
	return prog
}

func (p *Parser) parseTopDecl() ast.Decl {
	switch p.cur.Kind {
	case token.INTERFACE:
		return p.parseInterfaceDecl()
	case token.ABSTRACT, token.FINAL, token.CLASS:
		return p.parseClassDecl()
	case token.DEF:
		return p.parseFuncDef()
	default:
		// A bare statement at top level is accepted by the grammar sketch
		// (`topDecl := ... | stmt`); wrap it in an ast.TopLevelStmt so a
		// trailing call after the declarations (e.g. `B().m();`) parses
		// directly.
		stmt := p.parseStmt()
		if stmt == nil {
			p.errorf("UnexpectedToken", "unexpected token %s %q at top level", p.cur.Kind, p.cur.Literal)
			p.sync()
			return nil
		}
		return &ast.TopLevelStmt{S: stmt}
	}
}
