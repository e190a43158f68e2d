// Package typegraph implements the Inheritance Linker (§4.4) and the
// Method Resolution & Override Table it feeds (§4.5): resolving
// extends/implements chains into a single-parent class graph plus interface
// requirements.
package typegraph

import (
	"sort"

	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/diagnostics"
)

// InterfaceInfo is a resolved interface node in the Type Graph.
type InterfaceInfo struct {
	Decl    *ast.InterfaceDecl
	Extends []*InterfaceInfo

	// Required is the union of this interface's own signatures plus every
	// ancestor interface's, keyed by method name (§4.6 rule 4c).
	Required map[string]*ast.MethodSig
}

// ClassInfo is a resolved class node in the Type Graph.
type ClassInfo struct {
	Decl       *ast.ClassDecl
	Parent     *ClassInfo
	Interfaces []*InterfaceInfo

	// MRO is the method resolution order: this class first, then each
	// ancestor in turn, per §4.4's "simple depth order; no C3 needed".
	MRO []*ClassInfo

	// Overrides maps method name to the most-derived MemberDecl (abstract
	// or concrete) applicable to instances of this class (§4.5's
	// Implemented-methods table), together with the ClassInfo that
	// declares it.
	Overrides map[string]Override

	// RequiredByInterfaces is the union of every implemented interface's
	// Required set (transitively through `implements` and interface
	// `extends`), per §4.6 rule 4b/4c.
	RequiredByInterfaces map[string]*ast.MethodSig

	// AllInterfaceNames is every interface name this class satisfies
	// (directly or via an ancestor's implements list), letting the
	// backend answer `isinstance(obj, Interface)` in O(1) (§9's Open
	// Question).
	AllInterfaceNames map[string]bool
}

// Override is one entry of a ClassInfo's Overrides table.
type Override struct {
	Member *ast.MemberDecl
	Owner  *ClassInfo
}

// Graph is the Type Graph of one compilation: every class and interface
// declared in the program, resolved and linearized.
type Graph struct {
	Classes    map[string]*ClassInfo
	Interfaces map[string]*InterfaceInfo
}

// Build resolves `extends`/`implements` across every interface and class
// declared in the program, reporting Resolution/Inheritance-category
// diagnostics (UnresolvedBase, ExtendsNonClass, ImplementsNonInterface,
// InheritanceCycle) into bag. It does not report Modifier-category
// diagnostics (those are internal/modcheck's job, run afterward against
// this Graph).
func Build(interfaces map[string]*ast.InterfaceDecl, classes map[string]*ast.ClassDecl, bag *diagnostics.Bag) *Graph {
	g := &Graph{
		Classes:    make(map[string]*ClassInfo, len(classes)),
		Interfaces: make(map[string]*InterfaceInfo, len(interfaces)),
	}

	for name, decl := range interfaces {
		g.Interfaces[name] = &InterfaceInfo{Decl: decl}
	}
	for name, decl := range classes {
		g.Classes[name] = &ClassInfo{Decl: decl}
	}

	linkInterfaceExtends(g, interfaces, bag)
	linkClassParents(g, classes, bag)
	linkClassInterfaces(g, classes, bag)

	for _, info := range g.Interfaces {
		computeRequired(info, bag, map[*InterfaceInfo]bool{})
	}
	for _, info := range g.Classes {
		computeMRO(info, bag, map[*ClassInfo]bool{})
	}
	for _, info := range g.Classes {
		computeOverrides(info)
		computeInterfaceRequirements(info)
	}

	return g
}

func linkInterfaceExtends(g *Graph, interfaces map[string]*ast.InterfaceDecl, bag *diagnostics.Bag) {
	for name, decl := range interfaces {
		info := g.Interfaces[name]
		for _, baseName := range decl.Extends {
			base, isIface := g.Interfaces[baseName]
			if isIface {
				info.Extends = append(info.Extends, base)
				continue
			}
			if _, isClass := g.Classes[baseName]; isClass {
				bag.Errorf("ImplementsNonInterface", decl.SpanInfo, "interface %q extends %q, which is a class", name, baseName)
				continue
			}
			bag.Errorf("UnresolvedBase", decl.SpanInfo, "interface %q extends unknown name %q", name, baseName)
		}
	}
}

func linkClassParents(g *Graph, classes map[string]*ast.ClassDecl, bag *diagnostics.Bag) {
	for name, decl := range classes {
		if decl.Parent == "" {
			continue
		}
		info := g.Classes[name]
		parent, isClass := g.Classes[decl.Parent]
		if isClass {
			info.Parent = parent
			continue
		}
		if _, isIface := g.Interfaces[decl.Parent]; isIface {
			bag.Errorf("ExtendsNonClass", decl.SpanInfo, "class %q extends %q, which is an interface", name, decl.Parent)
			continue
		}
		bag.Errorf("UnresolvedBase", decl.SpanInfo, "class %q extends unknown name %q", name, decl.Parent)
	}
}

func linkClassInterfaces(g *Graph, classes map[string]*ast.ClassDecl, bag *diagnostics.Bag) {
	for name, decl := range classes {
		info := g.Classes[name]
		for _, ifaceName := range decl.Interfaces {
			iface, isIface := g.Interfaces[ifaceName]
			if isIface {
				info.Interfaces = append(info.Interfaces, iface)
				continue
			}
			if _, isClass := g.Classes[ifaceName]; isClass {
				bag.Errorf("ImplementsNonInterface", decl.SpanInfo, "class %q implements %q, which is a class", name, ifaceName)
				continue
			}
			bag.Errorf("UnresolvedBase", decl.SpanInfo, "class %q implements unknown name %q", name, ifaceName)
		}
	}
}

// computeRequired fills in info.Required as the union of its own method
// signatures and every ancestor interface's, detecting `extends` cycles.
func computeRequired(info *InterfaceInfo, bag *diagnostics.Bag, visiting map[*InterfaceInfo]bool) map[string]*ast.MethodSig {
	if info.Required != nil {
		return info.Required
	}
	if visiting[info] {
		bag.Errorf("InheritanceCycle", info.Decl.SpanInfo, "interface %q participates in an extends cycle", info.Decl.Name)
		info.Required = map[string]*ast.MethodSig{}
		return info.Required
	}
	visiting[info] = true

	required := make(map[string]*ast.MethodSig)
	for _, base := range info.Extends {
		for n, sig := range computeRequired(base, bag, visiting) {
			required[n] = sig
		}
	}
	for _, m := range info.Decl.Methods {
		required[m.Name] = m
	}
	info.Required = required
	delete(visiting, info)
	return required
}

// computeMRO fills in info.MRO as [self, parent, grandparent, ...],
// detecting `extends` cycles among classes.
func computeMRO(info *ClassInfo, bag *diagnostics.Bag, visiting map[*ClassInfo]bool) []*ClassInfo {
	if info.MRO != nil {
		return info.MRO
	}
	if visiting[info] {
		bag.Errorf("InheritanceCycle", info.Decl.SpanInfo, "class %q participates in an extends cycle", info.Decl.Name)
		info.MRO = []*ClassInfo{info}
		return info.MRO
	}
	visiting[info] = true

	mro := []*ClassInfo{info}
	if info.Parent != nil {
		mro = append(mro, computeMRO(info.Parent, bag, visiting)...)
	}
	info.MRO = mro
	delete(visiting, info)
	return mro
}

// computeOverrides fills in info.Overrides: for each method name defined
// anywhere on the MRO, the most-derived declaration wins, abstract or not;
// StillAbstract treats an abstract winner as unimplemented.
func computeOverrides(info *ClassInfo) {
	overrides := make(map[string]Override)
	for i := len(info.MRO) - 1; i >= 0; i-- {
		cls := info.MRO[i]
		for _, m := range cls.Decl.Members {
			if m.Kind != ast.MemberMethod && m.Kind != ast.MemberConstructor {
				continue
			}
			overrides[m.Name] = Override{Member: m, Owner: cls}
		}
	}
	info.Overrides = overrides
}

// computeInterfaceRequirements fills in info.RequiredByInterfaces and
// info.AllInterfaceNames by walking every interface reachable from this
// class's own `implements` list or any ancestor's.
func computeInterfaceRequirements(info *ClassInfo) {
	required := make(map[string]*ast.MethodSig)
	names := make(map[string]bool)
	for _, cls := range info.MRO {
		for _, iface := range cls.Interfaces {
			collectInterface(iface, required, names)
		}
	}
	info.RequiredByInterfaces = required
	info.AllInterfaceNames = names
}

func collectInterface(info *InterfaceInfo, required map[string]*ast.MethodSig, names map[string]bool) {
	if names[info.Decl.Name] {
		return
	}
	names[info.Decl.Name] = true
	for n, sig := range info.Required {
		required[n] = sig
	}
	for _, base := range info.Extends {
		collectInterface(base, required, names)
	}
}

// StillAbstract returns the still-abstract set (§3's Still-abstract set):
// every method name required by an ancestor `abstract` declaration or by an
// implemented interface, with no concrete implementation anywhere on the
// MRO.
func (g *Graph) StillAbstract(info *ClassInfo) []string {
	var missing []string
	seen := make(map[string]bool)

	record := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		ov, ok := info.Overrides[name]
		if !ok || ov.Member.IsAbstract {
			missing = append(missing, name)
		}
	}

	for _, cls := range info.MRO {
		for _, m := range cls.Decl.Members {
			if (m.Kind == ast.MemberMethod || m.Kind == ast.MemberConstructor) && m.IsAbstract {
				record(m.Name)
			}
		}
	}
	for name := range info.RequiredByInterfaces {
		record(name)
	}
	sort.Strings(missing)
	return missing
}

// SignatureMatches reports whether two signatures are compatible per §4.5:
// same arity, same parameter type names by lexical identity, same return
// type.
func SignatureMatches(a, b *ast.MethodSig) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if typeName(a.Params[i].Type) != typeName(b.Params[i].Type) {
			return false
		}
	}
	return typeName(a.ReturnType) == typeName(b.ReturnType)
}

func typeName(t *ast.TypeAnnotation) string {
	if t == nil {
		return ""
	}
	return t.Name
}
