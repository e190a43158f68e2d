package ast

import "github.com/reclipse/spicy/internal/token"

// MethodSig is a required method signature inside an interface body, or the
// signature half of a MemberDecl.
type MethodSig struct {
	Name       string
	Params     []*Param
	ReturnType *TypeAnnotation // nil means no declared return type
	SpanInfo   token.Span
}

func (m *MethodSig) Span() token.Span { return m.SpanInfo }
func (m *MethodSig) node()            {}

// InterfaceDecl declares a named set of required method signatures.
//
//	interface Shape {
//	    def area() -> float;
//	}
type InterfaceDecl struct {
	Name       string
	Extends    []string // base interface names, resolved later by typegraph
	Methods    []*MethodSig
	SpanInfo   token.Span
	NameSpan   token.Span
}

func (i *InterfaceDecl) Span() token.Span { return i.SpanInfo }
func (i *InterfaceDecl) node()            {}
func (i *InterfaceDecl) declNode()        {}
