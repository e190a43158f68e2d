package ast

import "github.com/reclipse/spicy/internal/token"

// FuncDef is a free-standing top-level function.
type FuncDef struct {
	Name       string
	Params     []*Param
	ReturnType *TypeAnnotation
	Body       []Stmt
	SpanInfo   token.Span
	NameSpan   token.Span
}

func (f *FuncDef) Span() token.Span { return f.SpanInfo }
func (f *FuncDef) node()            {}
func (f *FuncDef) declNode()        {}

// TopLevelStmt wraps a bare statement appearing directly at file scope
// (the `topDecl := ... | stmt` alternative in §4.2's grammar), so a script
// can mix declarations and top-level executable statements in one file.
type TopLevelStmt struct {
	S Stmt
}

func (t *TopLevelStmt) Span() token.Span { return t.S.Span() }
func (t *TopLevelStmt) node()            {}
func (t *TopLevelStmt) declNode()        {}
