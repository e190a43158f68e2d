// Package modcheck implements the Modifier Checker (§4.6): the pass that
// enforces abstract, final, static, interface, and constructor discipline
// across a resolved Type Graph. This pass runs after internal/typegraph has
// built the Type Graph and Override Table; it reads that data and reports
// the Modifier-category diagnostics, except InterfaceHasBody, which the
// parser reports while reading an interface body.
package modcheck

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/diagnostics"
	"github.com/reclipse/spicy/internal/typegraph"
)

// Check walks every declared class in graph and reports every Modifier-
// category diagnostic §4.6 describes, plus AbstractInstantiation sites
// found by scanning prog's statement trees for constructor calls.
func Check(graph *typegraph.Graph, classes map[string]*ast.ClassDecl, prog *ast.Program, bag *diagnostics.Bag) {
	for _, decl := range classes {
		info := graph.Classes[decl.Name]
		if info == nil {
			continue
		}
		checkParentFinal(info, bag)
		checkMembers(info, bag)
		checkInterfaceCompleteness(graph, info, bag)
		checkConstructorDiscipline(graph, info, bag)
	}
	checkAbstractInstantiation(graph, prog, bag)
}

func checkParentFinal(info *typegraph.ClassInfo, bag *diagnostics.Bag) {
	if info.Parent != nil && info.Parent.Decl.Modifier == ast.ModFinal {
		bag.Errorf("ExtendsFinalClass", info.Decl.SpanInfo, "class %q extends final class %q", info.Decl.Name, info.Parent.Decl.Name)
	}
}

func checkMembers(info *typegraph.ClassInfo, bag *diagnostics.Bag) {
	decl := info.Decl
	for _, m := range decl.Members {
		if m.Kind == ast.MemberField {
			continue
		}

		if m.IsAbstract && m.IsFinal {
			bag.Errorf("AbstractAndFinal", m.NameSpan, "member %q is declared both abstract and final", m.Name)
		}
		if m.IsAbstract && m.Body != nil {
			bag.Errorf("AbstractMethodHasBody", m.NameSpan, "abstract member %q declares a body", m.Name)
		}
		if !m.IsAbstract && m.Body == nil {
			bag.Errorf("MissingMethodBody", m.NameSpan, "non-abstract member %q has no body", m.Name)
		}
		if m.IsStatic && m.IsAbstract {
			bag.Errorf("StaticCannotBeAbstract", m.NameSpan, "static member %q cannot be abstract", m.Name)
		}
		if m.IsStatic && usesSelf(m.Body) {
			bag.Errorf("StaticUsesSelf", m.NameSpan, "static member %q has no implicit receiver and may not reference self or super", m.Name)
		}

		// Constructors are not overrides: a subclass's init may take a
		// different parameter list from its parent's.
		if info.Parent == nil || m.Kind == ast.MemberConstructor {
			continue
		}
		ancestor, ok := info.Parent.Overrides[m.Name]
		if !ok {
			continue
		}
		if ancestor.Member.IsFinal {
			bag.Errorf("OverrideOfFinalMethod", m.NameSpan, "member %q overrides final member declared on %q", m.Name, ancestor.Owner.Decl.Name)
		}
		if !typegraph.SignatureMatches(ancestor.Member.Sig(), m.Sig()) {
			bag.Errorf("OverrideSignatureMismatch", m.NameSpan, "member %q's signature does not match the overridden declaration on %q", m.Name, ancestor.Owner.Decl.Name)
		}
	}
}

// checkInterfaceCompleteness reports ConcreteClassHasAbstractMembers when a
// non-abstract class leaves any ancestor-abstract or interface-required
// method unimplemented, and OverrideSignatureMismatch when a provided
// implementation's signature does not match what an interface requires.
func checkInterfaceCompleteness(graph *typegraph.Graph, info *typegraph.ClassInfo, bag *diagnostics.Bag) {
	if missing := graph.StillAbstract(info); len(missing) > 0 && info.Decl.Modifier != ast.ModAbstract {
		bag.Errorf("ConcreteClassHasAbstractMembers", info.Decl.SpanInfo, "class %q is not abstract but leaves %d member(s) unimplemented: %v", info.Decl.Name, len(missing), missing)
	}

	for name, required := range info.RequiredByInterfaces {
		ov, ok := info.Overrides[name]
		if !ok || ov.Member.IsAbstract {
			continue // already covered by ConcreteClassHasAbstractMembers above
		}
		if !typegraph.SignatureMatches(required, ov.Member.Sig()) {
			bag.Errorf("OverrideSignatureMismatch", ov.Member.NameSpan, "member %q's signature does not satisfy the interface requirement", name)
		}
	}
}

// checkConstructorDiscipline reports MissingSuperInit when a class whose
// parent declares a constructor defines its own `init` without calling
// `super(...)` as its first statement (§4.6 rule 5a). Severity follows the
// parent constructor's arity: a warning when it takes no arguments (the
// call is a formality, nothing could be lost), an error otherwise (real
// initialization would silently be skipped).
func checkConstructorDiscipline(graph *typegraph.Graph, info *typegraph.ClassInfo, bag *diagnostics.Bag) {
	if info.Parent == nil {
		return
	}
	parentCtor, ok := parentConstructor(info.Parent)
	if !ok {
		return
	}
	ctor := info.Decl.Constructor()
	if ctor == nil {
		return
	}
	if len(ctor.Body) > 0 && isSuperInitCall(ctor.Body[0]) {
		return
	}
	const msg = "constructor of %q must call super(...) as its first statement"
	if len(parentCtor.Params) == 0 {
		bag.Warnf("MissingSuperInit", ctor.NameSpan, msg, info.Decl.Name)
	} else {
		bag.Errorf("MissingSuperInit", ctor.NameSpan, msg, info.Decl.Name)
	}
}

func parentConstructor(info *typegraph.ClassInfo) (*ast.MemberDecl, bool) {
	for _, cls := range info.MRO {
		if ctor := cls.Decl.Constructor(); ctor != nil {
			return ctor, true
		}
	}
	return nil, false
}

// isSuperInitCall reports whether stmt is a bare `super(...)` call, the
// constructor-chaining form §4.6 rule 5a and §4.7 ("super(...) resolves to
// the parent class's constructor") both describe.
func isSuperInitCall(stmt ast.Stmt) bool {
	exprStmt, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}
	call, ok := exprStmt.X.(*ast.CallExpr)
	if !ok {
		return false
	}
	id, ok := call.Callee.(*ast.Identifier)
	return ok && id.Name == "super"
}

// checkAbstractInstantiation scans every statement reachable from prog
// (top-level statements, function bodies, and method bodies) for a call
// whose callee names an abstract class, reporting AbstractInstantiation.
func checkAbstractInstantiation(graph *typegraph.Graph, prog *ast.Program, bag *diagnostics.Bag) {
	v := &instantiationVisitor{graph: graph, bag: bag}
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.TopLevelStmt:
			v.stmt(d.S)
		case *ast.FuncDef:
			v.stmts(d.Body)
		case *ast.ClassDecl:
			for _, m := range d.Members {
				v.stmts(m.Body)
				v.expr(m.FieldInit)
			}
		}
	}
}

type instantiationVisitor struct {
	graph *typegraph.Graph
	bag   *diagnostics.Bag
}

func (v *instantiationVisitor) stmts(ss []ast.Stmt) {
	for _, s := range ss {
		v.stmt(s)
	}
}

func (v *instantiationVisitor) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
	case *ast.ExprStmt:
		v.expr(s.X)
	case *ast.ReturnStmt:
		v.expr(s.Value)
	case *ast.RaiseStmt:
		v.expr(s.Value)
	case *ast.AssignStmt:
		v.expr(s.Target)
		v.expr(s.Value)
	case *ast.VarDeclStmt:
		v.expr(s.Value)
	case *ast.IfStmt:
		v.expr(s.If.Cond)
		v.stmts(s.If.Body)
		for _, elif := range s.Elifs {
			v.expr(elif.Cond)
			v.stmts(elif.Body)
		}
		v.stmts(s.Else)
	case *ast.ForStmt:
		v.expr(s.Iter)
		v.stmts(s.Body)
	case *ast.WhileStmt:
		v.expr(s.Cond)
		v.stmts(s.Body)
	}
}

func (v *instantiationVisitor) expr(e ast.Expr) {
	switch e := e.(type) {
	case nil:
	case *ast.CallExpr:
		if id, ok := e.Callee.(*ast.Identifier); ok {
			if cls, ok := v.graph.Classes[id.Name]; ok && cls.Decl.Modifier == ast.ModAbstract {
				v.bag.Errorf("AbstractInstantiation", e.SpanInfo, "cannot instantiate abstract class %q", id.Name)
			}
		}
		v.expr(e.Callee)
		for _, a := range e.Args {
			v.expr(a)
		}
	case *ast.AttrExpr:
		v.expr(e.X)
	case *ast.IndexExpr:
		v.expr(e.X)
		v.expr(e.Index)
		v.expr(e.Hi)
	case *ast.BinaryExpr:
		v.expr(e.Left)
		v.expr(e.Right)
	case *ast.UnaryExpr:
		v.expr(e.X)
	case *ast.ListLit:
		for _, el := range e.Elements {
			v.expr(el)
		}
	case *ast.TupleLit:
		for _, el := range e.Elements {
			v.expr(el)
		}
	case *ast.DictLit:
		for _, entry := range e.Entries {
			v.expr(entry.Key)
			v.expr(entry.Value)
		}
	case *ast.FStringExpr:
		for _, c := range e.Chunks {
			v.expr(c.Expr)
		}
	}
}

// usesSelf reports whether body references the `self` or `super` identifier
// anywhere, used to enforce §4.6 rule 3a (static members have no implicit
// receiver and may not reference either).
func usesSelf(body []ast.Stmt) bool {
	found := false
	v := &selfVisitor{found: &found}
	v.stmts(body)
	return found
}

type selfVisitor struct{ found *bool }

func (v *selfVisitor) stmts(ss []ast.Stmt) {
	for _, s := range ss {
		if *v.found {
			return
		}
		v.stmt(s)
	}
}

func (v *selfVisitor) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
	case *ast.ExprStmt:
		v.expr(s.X)
	case *ast.ReturnStmt:
		v.expr(s.Value)
	case *ast.RaiseStmt:
		v.expr(s.Value)
	case *ast.AssignStmt:
		v.expr(s.Target)
		v.expr(s.Value)
	case *ast.VarDeclStmt:
		v.expr(s.Value)
	case *ast.IfStmt:
		v.expr(s.If.Cond)
		v.stmts(s.If.Body)
		for _, elif := range s.Elifs {
			v.expr(elif.Cond)
			v.stmts(elif.Body)
		}
		v.stmts(s.Else)
	case *ast.ForStmt:
		v.expr(s.Iter)
		v.stmts(s.Body)
	case *ast.WhileStmt:
		v.expr(s.Cond)
		v.stmts(s.Body)
	}
}

func (v *selfVisitor) expr(e ast.Expr) {
	if *v.found || e == nil {
		return
	}
	switch e := e.(type) {
	case *ast.Identifier:
		if e.Name == "self" || e.Name == "super" {
			*v.found = true
		}
	case *ast.CallExpr:
		v.expr(e.Callee)
		for _, a := range e.Args {
			v.expr(a)
		}
	case *ast.AttrExpr:
		v.expr(e.X)
	case *ast.IndexExpr:
		v.expr(e.X)
		v.expr(e.Index)
		v.expr(e.Hi)
	case *ast.BinaryExpr:
		v.expr(e.Left)
		v.expr(e.Right)
	case *ast.UnaryExpr:
		v.expr(e.X)
	case *ast.ListLit:
		for _, el := range e.Elements {
			v.expr(el)
		}
	case *ast.TupleLit:
		for _, el := range e.Elements {
			v.expr(el)
		}
	case *ast.DictLit:
		for _, entry := range e.Entries {
			v.expr(entry.Key)
			v.expr(entry.Value)
		}
	case *ast.FStringExpr:
		for _, c := range e.Chunks {
			v.expr(c.Expr)
		}
	}
}
