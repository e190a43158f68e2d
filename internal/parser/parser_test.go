package parser

import (
	"testing"

	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/diagnostics"
	"github.com/reclipse/spicy/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	bag := &diagnostics.Bag{}
	p := New(lexer.New(src), bag)
	return p.ParseProgram(), bag
}

func TestParsePrecedence(t *testing.T) {
	prog, bag := parse(t, "1 + 2 * 3;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	bin := stmt.X.(*ast.BinaryExpr)
	if bin.Op != "+" {
		t.Fatalf("expected top-level op to be +, got %q", bin.Op)
	}
	rhs := bin.Right.(*ast.BinaryExpr)
	if rhs.Op != "*" {
		t.Fatalf("expected * to bind tighter than +, got %q", rhs.Op)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	prog, bag := parse(t, "2 ** 3 ** 2;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	top := stmt.X.(*ast.BinaryExpr)
	if top.Op != "**" {
		t.Fatalf("expected **, got %q", top.Op)
	}
	right := top.Right.(*ast.BinaryExpr)
	if right.Op != "**" {
		t.Fatalf("expected right-associativity to nest ** on the right, got %T", top.Right)
	}
	if _, ok := top.Left.(*ast.IntLit); !ok {
		t.Fatalf("expected left operand to be the first literal, got %T", top.Left)
	}
}

func TestParseIsNotOperator(t *testing.T) {
	prog, bag := parse(t, "a is not b;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	bin := stmt.X.(*ast.BinaryExpr)
	if bin.Op != "is not" {
		t.Fatalf("expected \"is not\", got %q", bin.Op)
	}
}

func TestParseNotInOperator(t *testing.T) {
	prog, bag := parse(t, "a not in b;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	bin := stmt.X.(*ast.BinaryExpr)
	if bin.Op != "not in" {
		t.Fatalf("expected \"not in\", got %q", bin.Op)
	}
}

func TestParsePostfixChainAttrCallIndex(t *testing.T) {
	prog, bag := parse(t, "a.b(c)[0];")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	idx := stmt.X.(*ast.IndexExpr)
	call := idx.X.(*ast.CallExpr)
	attr := call.Callee.(*ast.AttrExpr)
	if attr.Name != "b" {
		t.Fatalf("expected attr name \"b\", got %q", attr.Name)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected one call arg, got %d", len(call.Args))
	}
}

func TestParseSliceExpr(t *testing.T) {
	prog, bag := parse(t, "a[1:2];")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	idx := stmt.X.(*ast.IndexExpr)
	if !idx.IsSlice {
		t.Fatalf("expected IsSlice to be true for a[1:2]")
	}
}

func TestParseTupleRequiresComma(t *testing.T) {
	prog, bag := parse(t, "(1);")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	if _, ok := stmt.X.(*ast.IntLit); !ok {
		t.Fatalf("expected (1) to parse as a bare literal, got %T", stmt.X)
	}
}

func TestParseTupleLit(t *testing.T) {
	prog, bag := parse(t, "(1, 2,);")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	tup := stmt.X.(*ast.TupleLit)
	if len(tup.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(tup.Elements))
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := `
if a {
	pass;
} elif b {
	pass;
} else {
	pass;
}
`
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.IfStmt)
	if len(stmt.Elifs) != 1 {
		t.Fatalf("expected one elif clause, got %d", len(stmt.Elifs))
	}
	if stmt.Else == nil {
		t.Fatalf("expected an else block")
	}
}

func TestParseForStmt(t *testing.T) {
	prog, bag := parse(t, "for x in items { pass; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ForStmt)
	if stmt.VarName != "x" {
		t.Fatalf("expected loop var \"x\", got %q", stmt.VarName)
	}
}

func TestParseVarDeclStmt(t *testing.T) {
	prog, bag := parse(t, "x: int = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.VarDeclStmt)
	if stmt.Name != "x" || stmt.Type.Name != "int" {
		t.Fatalf("expected x: int, got %+v", stmt)
	}
}

func TestParseCompoundAssign(t *testing.T) {
	prog, bag := parse(t, "x += 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.AssignStmt)
	if stmt.Op != "+" {
		t.Fatalf("expected compound op \"+\", got %q", stmt.Op)
	}
}

func TestParseRaiseStmt(t *testing.T) {
	prog, bag := parse(t, `raise ValueError("bad");`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if _, ok := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.RaiseStmt); !ok {
		t.Fatalf("expected a RaiseStmt, got %T", prog.Decls[0].(*ast.TopLevelStmt).S)
	}
}

func TestParseErrorRecoverySyncsToNextStatement(t *testing.T) {
	// A malformed statement should not stop the parser from recovering and
	// parsing the one that follows, per §4.2's panic-mode recovery.
	src := "x = ; y = 1;"
	prog, bag := parse(t, src)
	if !bag.HasErrors() {
		t.Fatalf("expected at least one error from the malformed first statement")
	}
	found := false
	for _, decl := range prog.Decls {
		if top, ok := decl.(*ast.TopLevelStmt); ok {
			if assign, ok := top.S.(*ast.AssignStmt); ok {
				if id, ok := assign.Target.(*ast.Identifier); ok && id.Name == "y" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected parser to recover and still parse \"y = 1;\"")
	}
}

func TestParseFString(t *testing.T) {
	prog, bag := parse(t, `f"hi {name}";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	fstr := stmt.X.(*ast.FStringExpr)
	if len(fstr.Chunks) != 2 {
		t.Fatalf("expected 2 chunks (literal + expr), got %d", len(fstr.Chunks))
	}
	if fstr.Chunks[0].Literal != "hi " {
		t.Fatalf("expected literal chunk \"hi \", got %q", fstr.Chunks[0].Literal)
	}
	id, ok := fstr.Chunks[1].Expr.(*ast.Identifier)
	if !ok || id.Name != "name" {
		t.Fatalf("expected interpolated identifier \"name\", got %+v", fstr.Chunks[1].Expr)
	}
}

func TestParseFStringWithFormatSpec(t *testing.T) {
	prog, bag := parse(t, `f"{x:.2f}";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt := prog.Decls[0].(*ast.TopLevelStmt).S.(*ast.ExprStmt)
	fstr := stmt.X.(*ast.FStringExpr)
	if fstr.Chunks[0].SpecKind != "f" || fstr.Chunks[0].SpecPrecision != 2 {
		t.Fatalf("expected fixed-point spec with precision 2, got %+v", fstr.Chunks[0])
	}
}
