package ast

import "github.com/reclipse/spicy/internal/token"

// Identifier is a bare name reference, including `self` and `super`.
type Identifier struct {
	Name     string
	SpanInfo token.Span
}

func (e *Identifier) Span() token.Span { return e.SpanInfo }
func (e *Identifier) node()            {}
func (e *Identifier) exprNode()        {}

// IntLit is an integer literal.
type IntLit struct {
	Value    int64
	SpanInfo token.Span
}

func (e *IntLit) Span() token.Span { return e.SpanInfo }
func (e *IntLit) node()            {}
func (e *IntLit) exprNode()        {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value    float64
	SpanInfo token.Span
}

func (e *FloatLit) Span() token.Span { return e.SpanInfo }
func (e *FloatLit) node()            {}
func (e *FloatLit) exprNode()        {}

// StringLit is a plain (non-interpolated) string literal.
type StringLit struct {
	Value    string
	SpanInfo token.Span
}

func (e *StringLit) Span() token.Span { return e.SpanInfo }
func (e *StringLit) node()            {}
func (e *StringLit) exprNode()        {}

// BoolLit is `True` or `False`.
type BoolLit struct {
	Value    bool
	SpanInfo token.Span
}

func (e *BoolLit) Span() token.Span { return e.SpanInfo }
func (e *BoolLit) node()            {}
func (e *BoolLit) exprNode()        {}

// NoneLit is the `None` literal.
type NoneLit struct {
	SpanInfo token.Span
}

func (e *NoneLit) Span() token.Span { return e.SpanInfo }
func (e *NoneLit) node()            {}
func (e *NoneLit) exprNode()        {}

// FStringChunk is one piece of an f-string: either a literal text run, or an
// interpolated expression with an optional format spec (e.g. ".2f").
// SpecKind is "" (bare), "f" (fixed-point), or "%" (percent); SpecPrecision
// is the N in ".Nf"/".N%", meaningful only when SpecKind != "".
type FStringChunk struct {
	Literal      string // set when Expr == nil
	Expr         Expr   // set when this chunk is an interpolation
	RawSpec      string // original spec text after ':', for diagnostics
	SpecKind     string
	SpecPrecision int
}

// FStringExpr is an f-string literal: a sequence of literal and
// interpolated chunks.
type FStringExpr struct {
	Chunks   []FStringChunk
	SpanInfo token.Span
}

func (e *FStringExpr) Span() token.Span { return e.SpanInfo }
func (e *FStringExpr) node()            {}
func (e *FStringExpr) exprNode()        {}

// ListLit is a `[a, b, c]` literal.
type ListLit struct {
	Elements []Expr
	SpanInfo token.Span
}

func (e *ListLit) Span() token.Span { return e.SpanInfo }
func (e *ListLit) node()            {}
func (e *ListLit) exprNode()        {}

// DictEntry is one key/value pair in a DictLit.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is a `{k: v, ...}` literal.
type DictLit struct {
	Entries  []DictEntry
	SpanInfo token.Span
}

func (e *DictLit) Span() token.Span { return e.SpanInfo }
func (e *DictLit) node()            {}
func (e *DictLit) exprNode()        {}

// TupleLit is a `(a, b, c)` literal (parenthesized, comma-separated,
// arity >= 1 with a trailing comma, or arity >= 2), or the empty `()`.
type TupleLit struct {
	Elements []Expr
	SpanInfo token.Span
}

func (e *TupleLit) Span() token.Span { return e.SpanInfo }
func (e *TupleLit) node()            {}
func (e *TupleLit) exprNode()        {}

// BinaryExpr is any two-operand operator expression, including the
// comparison chain ops (`==`, `!=`, `<`, ...), `and`/`or`, `in`/`not in`,
// and `is`/`is not`.
type BinaryExpr struct {
	Op       string
	Left     Expr
	Right    Expr
	SpanInfo token.Span
}

func (e *BinaryExpr) Span() token.Span { return e.SpanInfo }
func (e *BinaryExpr) node()            {}
func (e *BinaryExpr) exprNode()        {}

// UnaryExpr is `not X` or `-X`.
type UnaryExpr struct {
	Op       string
	X        Expr
	SpanInfo token.Span
}

func (e *UnaryExpr) Span() token.Span { return e.SpanInfo }
func (e *UnaryExpr) node()            {}
func (e *UnaryExpr) exprNode()        {}

// CallExpr is `Callee(Args...)`: a function call, constructor call, or
// method call when Callee is an AttrExpr.
type CallExpr struct {
	Callee   Expr
	Args     []Expr
	SpanInfo token.Span
}

func (e *CallExpr) Span() token.Span { return e.SpanInfo }
func (e *CallExpr) node()            {}
func (e *CallExpr) exprNode()        {}

// AttrExpr is `X.Name`: attribute access, method reference, or
// `ClassName.staticMember`.
type AttrExpr struct {
	X        Expr
	Name     string
	SpanInfo token.Span
}

func (e *AttrExpr) Span() token.Span { return e.SpanInfo }
func (e *AttrExpr) node()            {}
func (e *AttrExpr) exprNode()        {}

// IndexExpr is `X[Index]`, including negative-index and `X[lo:hi]` slices
// (Hi nil means no upper bound given).
type IndexExpr struct {
	X        Expr
	Index    Expr
	Hi       Expr // non-nil for a slice expression
	IsSlice  bool
	SpanInfo token.Span
}

func (e *IndexExpr) Span() token.Span { return e.SpanInfo }
func (e *IndexExpr) node()            {}
func (e *IndexExpr) exprNode()        {}
