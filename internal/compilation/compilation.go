// Package compilation owns one source file's trip through the seven-stage
// pipeline: Source Reader -> Lexer -> Parser -> Declaration Collector ->
// Inheritance Linker -> Modifier Checker -> backend.
package compilation

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/diagnostics"
	"github.com/reclipse/spicy/internal/lexer"
	"github.com/reclipse/spicy/internal/modcheck"
	"github.com/reclipse/spicy/internal/parser"
	"github.com/reclipse/spicy/internal/symbols"
	"github.com/reclipse/spicy/internal/typegraph"
)

// Compilation is the result of running one source file through the front
// end. Program is always set; Symbols and Graph are nil if parsing produced
// no usable top-level declarations (§7's pipeline-termination rule).
type Compilation struct {
	File    string
	Source  string
	Program *ast.Program
	Symbols *symbols.Table
	Graph   *typegraph.Graph
	Bag     *diagnostics.Bag

	Interfaces map[string]*ast.InterfaceDecl
	Classes    map[string]*ast.ClassDecl
	Functions  map[string]*ast.FuncDef
}

// Compile drives the whole front end over source, stopping early only if
// the parser produced zero top-level declarations. Diagnostics accumulate
// in the returned Compilation's Bag in pipeline order; the caller decides
// what to do with HasErrors() (skip execution, report and exit, etc).
func Compile(file, source string) *Compilation {
	bag := &diagnostics.Bag{}
	l := lexer.New(source)
	p := parser.New(l, bag)
	prog := p.ParseProgram()
	for _, lexErr := range l.Errors() {
		bag.Errorf(lexErr.Code, lexErr.Span, "%s", lexErr.Message)
	}

	c := &Compilation{File: file, Source: source, Program: prog, Bag: bag}
	if len(prog.Decls) == 0 {
		return c
	}

	c.Symbols = symbols.New()
	c.Interfaces, c.Classes, c.Functions = collectDeclarations(prog, c.Symbols, bag)
	c.Graph = typegraph.Build(c.Interfaces, c.Classes, bag)
	modcheck.Check(c.Graph, c.Classes, prog, bag)

	bag.SortBySpan()
	return c
}

// collectDeclarations is the Declaration Collector (§2 step 4): it
// registers every top-level interface, class, and function name into the
// top-level Symbol Table, reporting DuplicateDeclaration on collision, and
// separately flags any class that declares the same member name twice.
func collectDeclarations(prog *ast.Program, table *symbols.Table, bag *diagnostics.Bag) (
	map[string]*ast.InterfaceDecl, map[string]*ast.ClassDecl, map[string]*ast.FuncDef,
) {
	interfaces := make(map[string]*ast.InterfaceDecl)
	classes := make(map[string]*ast.ClassDecl)
	functions := make(map[string]*ast.FuncDef)

	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.InterfaceDecl:
			if existing := table.Declare(d.Name, symbols.KindInterface, d.NameSpan); existing != nil {
				bag.Errorf("DuplicateDeclaration", d.NameSpan, "interface %q already declared at line %d", d.Name, existing.Span.Start.Line)
				continue
			}
			interfaces[d.Name] = d
		case *ast.ClassDecl:
			if existing := table.Declare(d.Name, symbols.KindClass, d.NameSpan); existing != nil {
				bag.Errorf("DuplicateDeclaration", d.NameSpan, "class %q already declared at line %d", d.Name, existing.Span.Start.Line)
				continue
			}
			classes[d.Name] = d
			collectMembers(d, bag)
		case *ast.FuncDef:
			if existing := table.Declare(d.Name, symbols.KindFunction, d.NameSpan); existing != nil {
				bag.Errorf("DuplicateDeclaration", d.NameSpan, "function %q already declared at line %d", d.Name, existing.Span.Start.Line)
				continue
			}
			functions[d.Name] = d
		}
	}

	return interfaces, classes, functions
}

// collectMembers checks a single class body for a member name declared
// more than once. Overriding an ancestor's member by name is expected and
// not a duplicate; only collisions within the same class body are.
func collectMembers(d *ast.ClassDecl, bag *diagnostics.Bag) {
	scope := symbols.New()
	for _, m := range d.Members {
		kind := symbols.KindField
		switch m.Kind {
		case ast.MemberMethod, ast.MemberConstructor:
			kind = symbols.KindMethod
		case ast.MemberStaticMethod:
			kind = symbols.KindStaticMember
		}
		if existing := scope.Declare(m.Name, kind, m.NameSpan); existing != nil {
			bag.Errorf("DuplicateDeclaration", m.NameSpan, "class %q already declares a member named %q at line %d", d.Name, m.Name, existing.Span.Start.Line)
		}
	}
}
