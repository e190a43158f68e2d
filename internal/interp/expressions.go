package interp

import (
	"strings"

	"github.com/reclipse/spicy/internal/ast"
)

func (i *Interpreter) evalExpr(expr ast.Expr, env *Env) Value {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &IntValue{Value: e.Value}
	case *ast.FloatLit:
		return &FloatValue{Value: e.Value}
	case *ast.StringLit:
		return &StringValue{Value: e.Value}
	case *ast.BoolLit:
		return &BoolValue{Value: e.Value}
	case *ast.NoneLit:
		return None
	case *ast.FStringExpr:
		return i.evalFString(e, env)
	case *ast.Identifier:
		return i.evalIdentifier(e, env)
	case *ast.ListLit:
		return i.evalListLit(e, env)
	case *ast.TupleLit:
		return i.evalTupleLit(e, env)
	case *ast.DictLit:
		return i.evalDictLit(e, env)
	case *ast.BinaryExpr:
		return i.evalBinaryExpr(e, env)
	case *ast.UnaryExpr:
		return i.evalUnaryExpr(e, env)
	case *ast.CallExpr:
		return i.evalCallExpr(e, env)
	case *ast.AttrExpr:
		return i.evalAttrExpr(e, env)
	case *ast.IndexExpr:
		return i.evalIndexExpr(e, env)
	default:
		return None
	}
}

func (i *Interpreter) evalIdentifier(e *ast.Identifier, env *Env) Value {
	if v, ok := env.Get(e.Name); ok {
		return v
	}
	if fn, ok := i.Functions[e.Name]; ok {
		return &FunctionValue{Decl: fn}
	}
	if cls, ok := i.Graph.Classes[e.Name]; ok {
		return &ClassValue{Name: e.Name, Info: cls}
	}
	if iface, ok := i.Graph.Interfaces[e.Name]; ok {
		return &InterfaceValue{Name: e.Name, Info: iface}
	}
	return typeError("name %q is not defined", e.Name)
}

func (i *Interpreter) evalListLit(e *ast.ListLit, env *Env) Value {
	elems, errVal := i.evalExprList(e.Elements, env)
	if errVal != nil {
		return errVal
	}
	return &ListValue{Elements: elems}
}

func (i *Interpreter) evalTupleLit(e *ast.TupleLit, env *Env) Value {
	elems, errVal := i.evalExprList(e.Elements, env)
	if errVal != nil {
		return errVal
	}
	return &TupleValue{Elements: elems}
}

func (i *Interpreter) evalExprList(exprs []ast.Expr, env *Env) ([]Value, Value) {
	out := make([]Value, 0, len(exprs))
	for _, x := range exprs {
		v := i.evalExpr(x, env)
		if isSignal(v) {
			return nil, v
		}
		out = append(out, v)
	}
	return out, nil
}

func (i *Interpreter) evalDictLit(e *ast.DictLit, env *Env) Value {
	d := NewDictValue()
	for _, entry := range e.Entries {
		k := i.evalExpr(entry.Key, env)
		if isSignal(k) {
			return k
		}
		v := i.evalExpr(entry.Value, env)
		if isSignal(v) {
			return v
		}
		key, errVal := dictKeyString(k)
		if errVal != nil {
			return errVal
		}
		d.Set(key, v)
	}
	return d
}

func dictKeyString(v Value) (string, Value) {
	switch v := v.(type) {
	case *StringValue:
		return "s:" + v.Value, nil
	case *IntValue:
		return "i:" + v.String(), nil
	case *BoolValue:
		return "b:" + v.String(), nil
	default:
		return "", typeError("unhashable type: %q", v.Type())
	}
}

func (i *Interpreter) evalUnaryExpr(e *ast.UnaryExpr, env *Env) Value {
	x := i.evalExpr(e.X, env)
	if isSignal(x) {
		return x
	}
	switch e.Op {
	case "not":
		return &BoolValue{Value: !Truthy(x)}
	case "-":
		switch x := x.(type) {
		case *IntValue:
			return &IntValue{Value: -x.Value}
		case *FloatValue:
			return &FloatValue{Value: -x.Value}
		default:
			return typeError("bad operand type for unary -: %q", x.Type())
		}
	default:
		return typeError("unknown unary operator %q", e.Op)
	}
}

func (i *Interpreter) evalFString(e *ast.FStringExpr, env *Env) Value {
	var sb strings.Builder
	for _, c := range e.Chunks {
		if c.Expr == nil {
			sb.WriteString(c.Literal)
			continue
		}
		v := i.evalExpr(c.Expr, env)
		if isSignal(v) {
			return v
		}
		formatted, errVal := formatValue(v, c.SpecKind, c.SpecPrecision)
		if errVal != nil {
			return errVal
		}
		sb.WriteString(formatted)
	}
	return &StringValue{Value: sb.String()}
}
