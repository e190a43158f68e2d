// Package interp is the tree-walking evaluator backend (§4.7): a dynamic
// object model plus a tree-walk over the AST, covering Spy's Python-surfaced
// value types.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/typegraph"
)

// Value is any runtime value Spy's evaluator produces.
type Value interface {
	Type() string
	String() string
}

// IntValue is a Spy `int`.
type IntValue struct{ Value int64 }

func (v *IntValue) Type() string   { return "int" }
func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// FloatValue is a Spy `float`.
type FloatValue struct{ Value float64 }

func (v *FloatValue) Type() string   { return "float" }
func (v *FloatValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// StringValue is a Spy `str`.
type StringValue struct{ Value string }

func (v *StringValue) Type() string   { return "str" }
func (v *StringValue) String() string { return v.Value }

// BoolValue is a Spy `bool`.
type BoolValue struct{ Value bool }

func (v *BoolValue) Type() string { return "bool" }
func (v *BoolValue) String() string {
	if v.Value {
		return "True"
	}
	return "False"
}

// NoneValue is Spy's `None`.
type NoneValue struct{}

func (v *NoneValue) Type() string   { return "NoneType" }
func (v *NoneValue) String() string { return "None" }

var None = &NoneValue{}

// ListValue is a mutable, ordered Spy `list`.
type ListValue struct{ Elements []Value }

func (v *ListValue) Type() string { return "list" }
func (v *ListValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = reprOf(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TupleValue is an immutable, ordered Spy `tuple`.
type TupleValue struct{ Elements []Value }

func (v *TupleValue) Type() string { return "tuple" }
func (v *TupleValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = reprOf(e)
	}
	suffix := ""
	if len(parts) == 1 {
		suffix = ","
	}
	return "(" + strings.Join(parts, ", ") + suffix + ")"
}

// DictValue is a Spy `dict`. Keys are restricted to strings, ints, and
// bools so a Go map can back them directly; insertion order is preserved
// via Order for stable iteration and printing.
type DictValue struct {
	Entries map[string]Value
	Order   []string
}

func NewDictValue() *DictValue { return &DictValue{Entries: make(map[string]Value)} }

func (v *DictValue) Set(key string, val Value) {
	if _, exists := v.Entries[key]; !exists {
		v.Order = append(v.Order, key)
	}
	v.Entries[key] = val
}

func (v *DictValue) Type() string { return "dict" }
func (v *DictValue) String() string {
	parts := make([]string, 0, len(v.Order))
	for _, k := range v.Order {
		parts = append(parts, fmt.Sprintf("%s: %s", strconv.Quote(k), reprOf(v.Entries[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ClassValue is a reference to a class itself (for static member access and
// as the callee of a constructor call).
type ClassValue struct {
	Name string
	Info *typegraph.ClassInfo
}

func (v *ClassValue) Type() string   { return "type" }
func (v *ClassValue) String() string { return "<class '" + v.Name + "'>" }

// InstanceValue is an object: a class descriptor plus an attribute bag, per
// §3's "instance attribute bag + class descriptor" object model.
type InstanceValue struct {
	Class *typegraph.ClassInfo
	Attrs map[string]Value
}

func NewInstance(class *typegraph.ClassInfo) *InstanceValue {
	return &InstanceValue{Class: class, Attrs: make(map[string]Value)}
}

func (v *InstanceValue) Type() string   { return v.Class.Decl.Name }
func (v *InstanceValue) String() string { return fmt.Sprintf("<%s object>", v.Class.Decl.Name) }

// BoundMethod is a method looked up off an instance, ready to call with its
// receiver already bound (the value `obj.method` produces before a call).
type BoundMethod struct {
	Receiver *InstanceValue
	Owner    *typegraph.ClassInfo // the class in the MRO that declares Member
	Member   *ast.MemberDecl
}

func (v *BoundMethod) Type() string   { return "method" }
func (v *BoundMethod) String() string { return fmt.Sprintf("<bound method %s>", v.Member.Name) }

// BoundSuper pairs a receiver with the class whose body holds a `super`
// reference. The evaluator does not produce one: `super.X` resolves through
// resolveSuperAttr to a BoundMethod, and `super(...)` through callSuperInit.
type BoundSuper struct {
	Receiver   *InstanceValue
	FromOwner  *typegraph.ClassInfo // the class whose body contains the `super` reference
}

func (v *BoundSuper) Type() string   { return "super" }
func (v *BoundSuper) String() string { return "<super>" }

// InterfaceValue is a reference to an interface itself, usable as the
// second argument to isinstance().
type InterfaceValue struct {
	Name string
	Info *typegraph.InterfaceInfo
}

func (v *InterfaceValue) Type() string   { return "interface" }
func (v *InterfaceValue) String() string { return "<interface '" + v.Name + "'>" }

// BoundStaticMethod is a static method looked up off a class (or an
// instance of one), ready to call with no receiver bound.
type BoundStaticMethod struct {
	Owner  *typegraph.ClassInfo
	Member *ast.MemberDecl
}

func (v *BoundStaticMethod) Type() string   { return "static_method" }
func (v *BoundStaticMethod) String() string { return fmt.Sprintf("<static method %s>", v.Member.Name) }

// FunctionValue is a free top-level function, as a callable value.
type FunctionValue struct{ Decl *ast.FuncDef }

func (v *FunctionValue) Type() string   { return "function" }
func (v *FunctionValue) String() string { return fmt.Sprintf("<function %s>", v.Decl.Name) }

// Builtin is a Go-implemented function exposed to Spy scripts (§4.7's
// required builtins: hasattr, isinstance, len, range, sum, print, ...).
type Builtin struct {
	Name string
	Fn   func(i *Interpreter, args []Value) Value
}

func (v *Builtin) Type() string   { return "builtin_function" }
func (v *Builtin) String() string { return fmt.Sprintf("<built-in function %s>", v.Name) }

// BoundBuiltinMethod is a built-in method resolved off a list/dict/str
// receiver (e.g. `[1,2].append`), ready to call.
type BoundBuiltinMethod struct {
	Receiver Value
	Name     string
	Fn       func(i *Interpreter, receiver Value, args []Value) Value
}

func (v *BoundBuiltinMethod) Type() string   { return "builtin_method" }
func (v *BoundBuiltinMethod) String() string { return fmt.Sprintf("<built-in method %s>", v.Name) }

// ExceptionValue is a raised Spy exception: a class name (one of §4.7's
// built-in exception types, or any user class) plus a message.
type ExceptionValue struct {
	ClassName string
	Message   string
}

func (v *ExceptionValue) Type() string   { return "exception" }
func (v *ExceptionValue) String() string { return fmt.Sprintf("%s: %s", v.ClassName, v.Message) }

// controlSignal is implemented by the sentinel values Eval uses to unwind
// the Go call stack for `return` and `raise`.
type controlSignal interface{ signal() }

// ReturnSignal unwinds a function/method body up to its call site.
type ReturnSignal struct{ Value Value }

func (s *ReturnSignal) Type() string   { return "return" }
func (s *ReturnSignal) String() string { return "<return>" }
func (s *ReturnSignal) signal()        {}

// RaiseSignal unwinds up to the nearest handler, or to the top level where
// it is reported as an uncaught exception.
type RaiseSignal struct{ Exc *ExceptionValue }

func (s *RaiseSignal) Type() string   { return "raise" }
func (s *RaiseSignal) String() string { return "<raise " + s.Exc.String() + ">" }
func (s *RaiseSignal) signal()        {}

func isSignal(v Value) bool {
	_, ok := v.(controlSignal)
	return ok
}

func isRaise(v Value) (*RaiseSignal, bool) {
	r, ok := v.(*RaiseSignal)
	return r, ok
}

// reprOf is how a value prints when nested inside a list/dict/tuple (Spy
// mirrors Python's repr/str split for strings: quoted when nested, bare at
// top level).
func reprOf(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return strconv.Quote(s.Value)
	}
	return v.String()
}

// Truthy implements Spy's truthiness rules: 0/0.0/""/None/empty
// list-dict-tuple/False are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case *BoolValue:
		return v.Value
	case *NoneValue:
		return false
	case *IntValue:
		return v.Value != 0
	case *FloatValue:
		return v.Value != 0
	case *StringValue:
		return v.Value != ""
	case *ListValue:
		return len(v.Elements) != 0
	case *TupleValue:
		return len(v.Elements) != 0
	case *DictValue:
		return len(v.Order) != 0
	default:
		return true
	}
}
