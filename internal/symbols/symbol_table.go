// Package symbols implements the lexically-scoped Symbol Table of §4.3: an
// outer-pointer scope chain with a per-scope name map, covering Spy's
// symbol kinds.
package symbols

import "github.com/reclipse/spicy/internal/token"

// Kind is the kind of entity a Symbol names, per §3's Symbol entity.
type Kind int

const (
	KindInterface Kind = iota
	KindClass
	KindFunction
	KindMethod
	KindField
	KindStaticMember
	KindParam
	KindLocal
)

// Symbol is one named entity in a Table.
type Symbol struct {
	Name  string
	Kind  Kind
	Span  token.Span
	Scope *Table // the scope this symbol was declared in
}

// Table is one lexical scope: top-level, a class body, or a
// method/function body. Names are resolved by walking outward through
// Outer.
type Table struct {
	Outer   *Table
	symbols map[string]*Symbol
}

// New creates a top-level (outer-less) scope.
func New() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// NewChild creates a scope nested inside outer, e.g. a class's member scope
// or a method's parameter/local scope.
func NewChild(outer *Table) *Table {
	return &Table{Outer: outer, symbols: make(map[string]*Symbol)}
}

// Declare registers name in this scope. It returns the previous Symbol of
// the same name if one was already declared directly in this scope (the
// caller should report DuplicateDeclaration), or nil on success.
func (t *Table) Declare(name string, kind Kind, span token.Span) *Symbol {
	if existing, ok := t.symbols[name]; ok {
		return existing
	}
	sym := &Symbol{Name: name, Kind: kind, Span: span, Scope: t}
	t.symbols[name] = sym
	return nil
}

// LocalLookup finds name declared directly in this scope, without walking
// outward.
func (t *Table) LocalLookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Resolve finds name in this scope or any enclosing scope.
func (t *Table) Resolve(name string) (*Symbol, bool) {
	for s := t; s != nil; s = s.Outer {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// All returns every symbol declared directly in this scope.
func (t *Table) All() []*Symbol {
	out := make([]*Symbol, 0, len(t.symbols))
	for _, sym := range t.symbols {
		out = append(out, sym)
	}
	return out
}
