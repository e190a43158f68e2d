package ast

import "github.com/reclipse/spicy/internal/token"

// ExprStmt is a bare expression used as a statement (e.g. a call for
// side effects).
type ExprStmt struct {
	X        Expr
	SpanInfo token.Span
}

func (s *ExprStmt) Span() token.Span { return s.SpanInfo }
func (s *ExprStmt) node()            {}
func (s *ExprStmt) stmtNode()        {}

// ReturnStmt is `return expr;` or a bare `return;`.
type ReturnStmt struct {
	Value    Expr // nil for bare return
	SpanInfo token.Span
}

func (s *ReturnStmt) Span() token.Span { return s.SpanInfo }
func (s *ReturnStmt) node()            {}
func (s *ReturnStmt) stmtNode()        {}

// PassStmt is the no-op `pass;` statement.
type PassStmt struct {
	SpanInfo token.Span
}

func (s *PassStmt) Span() token.Span { return s.SpanInfo }
func (s *PassStmt) node()            {}
func (s *PassStmt) stmtNode()        {}

// RaiseStmt is `raise expr;`.
type RaiseStmt struct {
	Value    Expr
	SpanInfo token.Span
}

func (s *RaiseStmt) Span() token.Span { return s.SpanInfo }
func (s *RaiseStmt) node()            {}
func (s *RaiseStmt) stmtNode()        {}

// AssignStmt covers plain `=` assignment and the compound `+= -= *= /=`
// forms; Op is "" for plain assignment.
type AssignStmt struct {
	Target   Expr
	Op       string
	Value    Expr
	SpanInfo token.Span
}

func (s *AssignStmt) Span() token.Span { return s.SpanInfo }
func (s *AssignStmt) node()            {}
func (s *AssignStmt) stmtNode()        {}

// VarDeclStmt declares a local with an optional type annotation and an
// initializer: `x: int = 1;` or `x = 1;`.
type VarDeclStmt struct {
	Name     string
	Type     *TypeAnnotation
	Value    Expr
	SpanInfo token.Span
}

func (s *VarDeclStmt) Span() token.Span { return s.SpanInfo }
func (s *VarDeclStmt) node()            {}
func (s *VarDeclStmt) stmtNode()        {}

// IfClause is one `if`/`elif` arm.
type IfClause struct {
	Cond Expr
	Body []Stmt
}

// IfStmt is an `if` statement with zero or more `elif` arms and an optional
// `else` block.
type IfStmt struct {
	If       IfClause
	Elifs    []IfClause
	Else     []Stmt // nil if absent
	SpanInfo token.Span
}

func (s *IfStmt) Span() token.Span { return s.SpanInfo }
func (s *IfStmt) node()            {}
func (s *IfStmt) stmtNode()        {}

// ForStmt is `for NAME in ITER { ... }`.
type ForStmt struct {
	VarName  string
	Iter     Expr
	Body     []Stmt
	SpanInfo token.Span
}

func (s *ForStmt) Span() token.Span { return s.SpanInfo }
func (s *ForStmt) node()            {}
func (s *ForStmt) stmtNode()        {}

// WhileStmt is `while COND { ... }`.
type WhileStmt struct {
	Cond     Expr
	Body     []Stmt
	SpanInfo token.Span
}

func (s *WhileStmt) Span() token.Span { return s.SpanInfo }
func (s *WhileStmt) node()            {}
func (s *WhileStmt) stmtNode()        {}
