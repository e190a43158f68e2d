package interp

import (
	"fmt"
	"strings"
)

// registerBuiltins installs §4.7's required built-in functions into env:
// hasattr, isinstance, len, range, sum, print, plus the exception-type
// names usable as callables in `raise`.
func registerBuiltins(env *Env) {
	builtins := []*Builtin{
		{Name: "print", Fn: builtinPrint},
		{Name: "len", Fn: builtinLen},
		{Name: "range", Fn: builtinRange},
		{Name: "sum", Fn: builtinSum},
		{Name: "hasattr", Fn: builtinHasattr},
		{Name: "isinstance", Fn: builtinIsinstance},
		{Name: "str", Fn: builtinStr},
		{Name: "int", Fn: builtinInt},
		{Name: "float", Fn: builtinFloat},
	}
	for _, b := range builtins {
		env.Define(b.Name, b)
	}
	for _, name := range []string{"ValueError", "TypeError", "NotImplementedError", "ZeroDivisionError", "IndexError", "KeyError"} {
		env.Define(name, &ExceptionClassValue{Name: name})
	}
}

// ExceptionClassValue is a callable built-in exception type, so Spy code
// can write `raise ValueError("bad input")`.
type ExceptionClassValue struct{ Name string }

func (v *ExceptionClassValue) Type() string   { return "exception_type" }
func (v *ExceptionClassValue) String() string { return "<exception " + v.Name + ">" }

func builtinPrint(i *Interpreter, args []Value) Value {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.String()
	}
	fmt.Fprintln(i.Out, strings.Join(parts, " "))
	return None
}

func builtinLen(i *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return typeError("len() takes exactly one argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case *StringValue:
		return &IntValue{Value: int64(len([]rune(v.Value)))}
	case *ListValue:
		return &IntValue{Value: int64(len(v.Elements))}
	case *TupleValue:
		return &IntValue{Value: int64(len(v.Elements))}
	case *DictValue:
		return &IntValue{Value: int64(len(v.Order))}
	default:
		return typeError("object of type %q has no len()", v.Type())
	}
}

func builtinRange(i *Interpreter, args []Value) Value {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, errVal := requireInt(args[0])
		if errVal != nil {
			return errVal
		}
		stop = n
	case 2:
		n0, errVal := requireInt(args[0])
		if errVal != nil {
			return errVal
		}
		n1, errVal := requireInt(args[1])
		if errVal != nil {
			return errVal
		}
		start, stop = n0, n1
	case 3:
		n0, errVal := requireInt(args[0])
		if errVal != nil {
			return errVal
		}
		n1, errVal := requireInt(args[1])
		if errVal != nil {
			return errVal
		}
		n2, errVal := requireInt(args[2])
		if errVal != nil {
			return errVal
		}
		start, stop, step = n0, n1, n2
	default:
		return typeError("range expected 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return valueError("range() arg 3 must not be zero")
	}
	var elems []Value
	if step > 0 {
		for n := start; n < stop; n += step {
			elems = append(elems, &IntValue{Value: n})
		}
	} else {
		for n := start; n > stop; n += step {
			elems = append(elems, &IntValue{Value: n})
		}
	}
	return &ListValue{Elements: elems}
}

func builtinSum(i *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return typeError("sum() takes exactly one argument (%d given)", len(args))
	}
	items, errVal := iterableElements(args[0])
	if errVal != nil {
		return errVal
	}
	var total float64
	isFloat := false
	for _, item := range items {
		f, itemIsFloat, ok := numericValue(item)
		if !ok {
			return typeError("unsupported operand type for sum(): %q", item.Type())
		}
		isFloat = isFloat || itemIsFloat
		total += f
	}
	if isFloat {
		return &FloatValue{Value: total}
	}
	return &IntValue{Value: int64(total)}
}

func builtinHasattr(i *Interpreter, args []Value) Value {
	if len(args) != 2 {
		return typeError("hasattr() takes exactly two arguments (%d given)", len(args))
	}
	name, ok := args[1].(*StringValue)
	if !ok {
		return typeError("hasattr(): attribute name must be str")
	}
	v := i.resolveAttr(args[0], name.Value)
	_, isErr := v.(*RaiseSignal)
	return &BoolValue{Value: !isErr}
}

func builtinIsinstance(i *Interpreter, args []Value) Value {
	if len(args) != 2 {
		return typeError("isinstance() takes exactly two arguments (%d given)", len(args))
	}
	inst, ok := args[0].(*InstanceValue)
	if !ok {
		return &BoolValue{Value: false}
	}
	switch want := args[1].(type) {
	case *ClassValue:
		for _, cls := range inst.Class.MRO {
			if cls.Decl.Name == want.Name {
				return &BoolValue{Value: true}
			}
		}
		return &BoolValue{Value: false}
	case *InterfaceValue:
		return &BoolValue{Value: inst.Class.AllInterfaceNames[want.Name]}
	default:
		return typeError("isinstance() arg 2 must be a class or interface")
	}
}

func builtinStr(i *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return typeError("str() takes exactly one argument (%d given)", len(args))
	}
	return &StringValue{Value: args[0].String()}
}

func builtinInt(i *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return typeError("int() takes exactly one argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case *IntValue:
		return v
	case *FloatValue:
		return &IntValue{Value: int64(v.Value)}
	case *StringValue:
		var n int64
		if _, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%d", &n); err != nil {
			return valueError("invalid literal for int(): %q", v.Value)
		}
		return &IntValue{Value: n}
	case *BoolValue:
		if v.Value {
			return &IntValue{Value: 1}
		}
		return &IntValue{Value: 0}
	default:
		return typeError("int() argument must be a string or a number, not %q", v.Type())
	}
}

func builtinFloat(i *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return typeError("float() takes exactly one argument (%d given)", len(args))
	}
	f, ok := numericValueOnly(args[0])
	if ok {
		return &FloatValue{Value: f}
	}
	if s, ok := args[0].(*StringValue); ok {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(s.Value), "%g", &f); err != nil {
			return valueError("could not convert string to float: %q", s.Value)
		}
		return &FloatValue{Value: f}
	}
	return typeError("float() argument must be a string or a number, not %q", args[0].Type())
}

func numericValueOnly(v Value) (float64, bool) {
	f, _, ok := numericValue(v)
	return f, ok
}
