// Package ast defines the Spy abstract syntax tree. Every node owns its
// children exclusively and carries a source Span for diagnostics.
package ast

import "github.com/reclipse/spicy/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Span() token.Span
	node()
}

// Decl is a top-level declaration: interface, class, or function.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a function or method body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Modifier enumerates the per-member and per-class modifiers of §3.
type Modifier int

const (
	ModNone Modifier = iota
	ModAbstract
	ModFinal
	ModStatic
)

func (m Modifier) String() string {
	switch m {
	case ModAbstract:
		return "abstract"
	case ModFinal:
		return "final"
	case ModStatic:
		return "static"
	default:
		return "none"
	}
}

// TypeAnnotation is a nominal type reference, e.g. `int`, `str`, `Shape`.
// Spy's type system is nominal and unparameterized.
type TypeAnnotation struct {
	Name     string
	SpanInfo token.Span
}

func (t *TypeAnnotation) Span() token.Span { return t.SpanInfo }
func (t *TypeAnnotation) node()            {}

// Param is a single parameter in a signature.
type Param struct {
	Name     string
	Type     *TypeAnnotation // nil if unannotated
	SpanInfo token.Span
}

func (p *Param) Span() token.Span { return p.SpanInfo }
func (p *Param) node()            {}

// Program is the root of a compiled file.
type Program struct {
	Decls    []Decl
	SpanInfo token.Span
}

func (p *Program) Span() token.Span { return p.SpanInfo }
func (p *Program) node()            {}
