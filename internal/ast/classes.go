package ast

import "github.com/reclipse/spicy/internal/token"

// MemberKind distinguishes the four kinds of class member, per §3.
type MemberKind int

const (
	MemberMethod MemberKind = iota
	MemberStaticMethod
	MemberField
	MemberConstructor
)

// MemberDecl is a single class member: a method (abstract, final, static,
// or a plain concrete method), or a field with a default-value expression.
// IsAbstract/IsFinal/IsStatic are independent flags (not a single Modifier)
// because the grammar allows any combination to appear textually; the
// Modifier Checker, not the parser, rejects the illegal combinations
// (§4.6 rule 2c: abstract and final together).
type MemberDecl struct {
	Name       string
	Kind       MemberKind
	IsAbstract bool
	IsFinal    bool
	IsStatic   bool
	Params     []*Param        // methods only
	ReturnType *TypeAnnotation // methods only
	Body       []Stmt          // nil for abstract methods and interface sigs
	FieldInit  Expr            // field default value, may be nil
	SpanInfo   token.Span
	NameSpan   token.Span
}

func (m *MemberDecl) Span() token.Span { return m.SpanInfo }
func (m *MemberDecl) node()            {}

// Sig extracts the method signature of a method-kind member.
func (m *MemberDecl) Sig() *MethodSig {
	return &MethodSig{Name: m.Name, Params: m.Params, ReturnType: m.ReturnType, SpanInfo: m.SpanInfo}
}

// ClassDecl declares a class: its modifier, single parent, implemented
// interfaces, and members.
//
//	abstract class Shape implements Printable {
//	    abstract def area() -> float;
//	}
type ClassDecl struct {
	Name       string
	Modifier   Modifier // ModNone, ModAbstract, or ModFinal
	Parent     string   // "" if none
	Interfaces []string
	Members    []*MemberDecl
	SpanInfo   token.Span
	NameSpan   token.Span
}

func (c *ClassDecl) Span() token.Span { return c.SpanInfo }
func (c *ClassDecl) node()            {}
func (c *ClassDecl) declNode()        {}

// Constructor returns the class's own `init` member, or nil if it declares
// none.
func (c *ClassDecl) Constructor() *MemberDecl {
	for _, m := range c.Members {
		if m.Kind == MemberConstructor {
			return m
		}
	}
	return nil
}
