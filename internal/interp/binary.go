package interp

import "github.com/reclipse/spicy/internal/ast"

func (i *Interpreter) evalBinaryExpr(e *ast.BinaryExpr, env *Env) Value {
	switch e.Op {
	case "and":
		left := i.evalExpr(e.Left, env)
		if isSignal(left) || !Truthy(left) {
			return left
		}
		return i.evalExpr(e.Right, env)
	case "or":
		left := i.evalExpr(e.Left, env)
		if isSignal(left) || Truthy(left) {
			return left
		}
		return i.evalExpr(e.Right, env)
	}

	left := i.evalExpr(e.Left, env)
	if isSignal(left) {
		return left
	}
	right := i.evalExpr(e.Right, env)
	if isSignal(right) {
		return right
	}

	switch e.Op {
	case "+", "-", "*", "/", "%", "**":
		return evalArith(e.Op, left, right)
	case "==":
		return &BoolValue{Value: valuesEqual(left, right)}
	case "!=":
		return &BoolValue{Value: !valuesEqual(left, right)}
	case "<", "<=", ">", ">=":
		return evalCompare(e.Op, left, right)
	case "in":
		return evalContains(right, left)
	case "not in":
		r := evalContains(right, left)
		if b, ok := r.(*BoolValue); ok {
			return &BoolValue{Value: !b.Value}
		}
		return r
	case "is":
		return &BoolValue{Value: valuesIdentical(left, right)}
	case "is not":
		return &BoolValue{Value: !valuesIdentical(left, right)}
	default:
		return typeError("unknown binary operator %q", e.Op)
	}
}

func evalArith(op string, left, right Value) Value {
	// String/list concatenation and string repetition via `*` take priority
	// over numeric coercion (§4.7).
	if op == "+" {
		if l, ok := left.(*StringValue); ok {
			if r, ok := right.(*StringValue); ok {
				return &StringValue{Value: l.Value + r.Value}
			}
		}
		if l, ok := left.(*ListValue); ok {
			if r, ok := right.(*ListValue); ok {
				out := append(append([]Value(nil), l.Elements...), r.Elements...)
				return &ListValue{Elements: out}
			}
		}
	}
	if op == "*" {
		if l, ok := left.(*StringValue); ok {
			if r, ok := right.(*IntValue); ok {
				return &StringValue{Value: repeatString(l.Value, r.Value)}
			}
		}
		if r, ok := right.(*StringValue); ok {
			if l, ok := left.(*IntValue); ok {
				return &StringValue{Value: repeatString(r.Value, l.Value)}
			}
		}
	}

	lf, lIsFloat, lOk := numericValue(left)
	rf, rIsFloat, rOk := numericValue(right)
	if !lOk || !rOk {
		return typeError("unsupported operand type(s) for %s: %q and %q", op, left.Type(), right.Type())
	}
	useFloat := lIsFloat || rIsFloat

	if op == "/" {
		if rf == 0 {
			return zeroDivisionError("division by zero")
		}
		return &FloatValue{Value: lf / rf}
	}

	if !useFloat {
		li, ri := int64(lf), int64(rf)
		switch op {
		case "+":
			return &IntValue{Value: li + ri}
		case "-":
			return &IntValue{Value: li - ri}
		case "*":
			return &IntValue{Value: li * ri}
		case "%":
			if ri == 0 {
				return zeroDivisionError("modulo by zero")
			}
			return &IntValue{Value: li % ri}
		case "**":
			return &IntValue{Value: intPow(li, ri)}
		}
	}

	switch op {
	case "+":
		return &FloatValue{Value: lf + rf}
	case "-":
		return &FloatValue{Value: lf - rf}
	case "*":
		return &FloatValue{Value: lf * rf}
	case "%":
		if rf == 0 {
			return zeroDivisionError("modulo by zero")
		}
		return &FloatValue{Value: floatMod(lf, rf)}
	case "**":
		return &FloatValue{Value: floatPow(lf, rf)}
	}
	return typeError("unknown arithmetic operator %q", op)
}

func zeroDivisionError(msg string) Value { return newException("ZeroDivisionError", msg) }

func numericValue(v Value) (value float64, isFloat bool, ok bool) {
	switch v := v.(type) {
	case *IntValue:
		return float64(v.Value), false, true
	case *FloatValue:
		return v.Value, true, true
	default:
		return 0, false, false
	}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func floatPow(base, exp float64) float64 {
	result := 1.0
	neg := exp < 0
	if neg {
		exp = -exp
	}
	for ; exp >= 1; exp-- {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

func floatMod(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	return m
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for ; n > 0; n-- {
		out = append(out, s...)
	}
	return string(out)
}

func valuesEqual(a, b Value) bool {
	if af, aIsFloat, aOk := numericValue(a); aOk {
		if bf, _, bOk := numericValue(b); bOk {
			return af == bf
		}
		_ = aIsFloat
		return false
	}
	switch a := a.(type) {
	case *StringValue:
		b, ok := b.(*StringValue)
		return ok && a.Value == b.Value
	case *BoolValue:
		b, ok := b.(*BoolValue)
		return ok && a.Value == b.Value
	case *NoneValue:
		_, ok := b.(*NoneValue)
		return ok
	case *ListValue:
		bl, ok := b.(*ListValue)
		if !ok || len(a.Elements) != len(bl.Elements) {
			return false
		}
		for i := range a.Elements {
			if !valuesEqual(a.Elements[i], bl.Elements[i]) {
				return false
			}
		}
		return true
	case *TupleValue:
		bl, ok := b.(*TupleValue)
		if !ok || len(a.Elements) != len(bl.Elements) {
			return false
		}
		for i := range a.Elements {
			if !valuesEqual(a.Elements[i], bl.Elements[i]) {
				return false
			}
		}
		return true
	case *InstanceValue:
		bi, ok := b.(*InstanceValue)
		return ok && a == bi
	default:
		return a == b
	}
}

func valuesIdentical(a, b Value) bool {
	if ai, ok := a.(*InstanceValue); ok {
		bi, ok := b.(*InstanceValue)
		return ok && ai == bi
	}
	if _, ok := a.(*NoneValue); ok {
		_, ok := b.(*NoneValue)
		return ok
	}
	return valuesEqual(a, b)
}

func evalCompare(op string, left, right Value) Value {
	if lf, _, lOk := numericValue(left); lOk {
		if rf, _, rOk := numericValue(right); rOk {
			return &BoolValue{Value: compareNums(op, lf, rf)}
		}
	}
	if l, ok := left.(*StringValue); ok {
		if r, ok := right.(*StringValue); ok {
			return &BoolValue{Value: compareStrings(op, l.Value, r.Value)}
		}
	}
	return typeError("'%s' not supported between instances of %q and %q", op, left.Type(), right.Type())
}

func compareNums(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

func compareStrings(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

func evalContains(container, item Value) Value {
	switch c := container.(type) {
	case *ListValue:
		for _, e := range c.Elements {
			if valuesEqual(e, item) {
				return &BoolValue{Value: true}
			}
		}
		return &BoolValue{Value: false}
	case *TupleValue:
		for _, e := range c.Elements {
			if valuesEqual(e, item) {
				return &BoolValue{Value: true}
			}
		}
		return &BoolValue{Value: false}
	case *StringValue:
		item, ok := item.(*StringValue)
		if !ok {
			return typeError("'in <str>' requires str as left operand")
		}
		return &BoolValue{Value: contains(c.Value, item.Value)}
	case *DictValue:
		key, errVal := dictKeyString(item)
		if errVal != nil {
			return errVal
		}
		_, ok := c.Entries[key]
		return &BoolValue{Value: ok}
	default:
		return typeError("argument of type %q is not iterable", container.Type())
	}
}

func contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
