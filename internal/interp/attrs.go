package interp

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/typegraph"
)

func (i *Interpreter) evalAttrExpr(e *ast.AttrExpr, env *Env) Value {
	if id, ok := e.X.(*ast.Identifier); ok && id.Name == "super" {
		return i.resolveSuperAttr(e.Name, env)
	}

	x := i.evalExpr(e.X, env)
	if isSignal(x) {
		return x
	}
	return i.resolveAttr(x, e.Name)
}

func (i *Interpreter) resolveSuperAttr(name string, env *Env) Value {
	selfVal, ok := env.Get("self")
	if !ok {
		return typeError("super() used outside of a method")
	}
	self := selfVal.(*InstanceValue)
	owner := currentOwner(env)
	if owner == nil || owner.Parent == nil {
		return typeError("super() has no parent class to resolve %q against", name)
	}
	ov, ok := owner.Parent.Overrides[name]
	if !ok {
		return typeError("%q is not defined on any ancestor of %q", name, owner.Decl.Name)
	}
	return &BoundMethod{Receiver: self, Owner: ov.Owner, Member: ov.Member}
}

func (i *Interpreter) resolveAttr(x Value, name string) Value {
	switch x := x.(type) {
	case *InstanceValue:
		return i.resolveInstanceAttr(x, name)
	case *ClassValue:
		return i.resolveClassAttr(x.Info, name)
	case *ListValue:
		return listMethod(x, name)
	case *DictValue:
		return dictMethod(x, name)
	case *StringValue:
		return stringMethod(x, name)
	default:
		return typeError("%s has no attribute %q", x.Type(), name)
	}
}

func (i *Interpreter) resolveInstanceAttr(inst *InstanceValue, name string) Value {
	if v, ok := inst.Attrs[name]; ok {
		return v
	}
	if ov, ok := inst.Class.Overrides[name]; ok && ov.Member.Kind != ast.MemberStaticMethod {
		return &BoundMethod{Receiver: inst, Owner: ov.Owner, Member: ov.Member}
	}
	if v, ok := i.getStatic(inst.Class, name); ok {
		return v
	}
	if owner, member, ok := staticMethodOwner(inst.Class, name); ok {
		return &BoundStaticMethod{Owner: owner, Member: member}
	}
	return typeError("%q object has no attribute %q", inst.Class.Decl.Name, name)
}

func (i *Interpreter) resolveClassAttr(info *typegraph.ClassInfo, name string) Value {
	if v, ok := i.getStatic(info, name); ok {
		return v
	}
	if owner, member, ok := staticMethodOwner(info, name); ok {
		return &BoundStaticMethod{Owner: owner, Member: member}
	}
	return typeError("class %q has no static member %q", info.Decl.Name, name)
}

func (i *Interpreter) evalIndexExpr(e *ast.IndexExpr, env *Env) Value {
	x := i.evalExpr(e.X, env)
	if isSignal(x) {
		return x
	}
	if e.IsSlice {
		return i.evalSlice(x, e, env)
	}
	idx := i.evalExpr(e.Index, env)
	if isSignal(idx) {
		return idx
	}
	return indexValue(x, idx)
}

func indexValue(x, idx Value) Value {
	switch x := x.(type) {
	case *ListValue:
		n, errVal := requireInt(idx)
		if errVal != nil {
			return errVal
		}
		pos, ok := normalizeIndex(n, len(x.Elements))
		if !ok {
			return indexError("list index out of range")
		}
		return x.Elements[pos]
	case *TupleValue:
		n, errVal := requireInt(idx)
		if errVal != nil {
			return errVal
		}
		pos, ok := normalizeIndex(n, len(x.Elements))
		if !ok {
			return indexError("tuple index out of range")
		}
		return x.Elements[pos]
	case *StringValue:
		n, errVal := requireInt(idx)
		if errVal != nil {
			return errVal
		}
		runes := []rune(x.Value)
		pos, ok := normalizeIndex(n, len(runes))
		if !ok {
			return indexError("string index out of range")
		}
		return &StringValue{Value: string(runes[pos])}
	case *DictValue:
		key, errVal := dictKeyString(idx)
		if errVal != nil {
			return errVal
		}
		v, ok := x.Entries[key]
		if !ok {
			return newException("KeyError", "%s", idx.String())
		}
		return v
	default:
		return typeError("%q object is not subscriptable", x.Type())
	}
}

func requireInt(v Value) (int64, Value) {
	iv, ok := v.(*IntValue)
	if !ok {
		return 0, typeError("indices must be integers, not %q", v.Type())
	}
	return iv.Value, nil
}

func normalizeIndex(n int64, length int) (int, bool) {
	if n < 0 {
		n += int64(length)
	}
	if n < 0 || n >= int64(length) {
		return 0, false
	}
	return int(n), true
}

func (i *Interpreter) evalSlice(x Value, e *ast.IndexExpr, env *Env) Value {
	length, elems, errVal := sliceSource(x)
	if errVal != nil {
		return errVal
	}
	lo, hi := 0, length
	if e.Index != nil {
		v := i.evalExpr(e.Index, env)
		if isSignal(v) {
			return v
		}
		n, errVal := requireInt(v)
		if errVal != nil {
			return errVal
		}
		lo = clampSliceBound(n, length)
	}
	if e.Hi != nil {
		v := i.evalExpr(e.Hi, env)
		if isSignal(v) {
			return v
		}
		n, errVal := requireInt(v)
		if errVal != nil {
			return errVal
		}
		hi = clampSliceBound(n, length)
	}
	if hi < lo {
		hi = lo
	}
	return rebuildSlice(x, elems[lo:hi])
}

func clampSliceBound(n int64, length int) int {
	if n < 0 {
		n += int64(length)
	}
	if n < 0 {
		n = 0
	}
	if n > int64(length) {
		n = int64(length)
	}
	return int(n)
}

func sliceSource(x Value) (int, []Value, Value) {
	switch x := x.(type) {
	case *ListValue:
		return len(x.Elements), x.Elements, nil
	case *TupleValue:
		return len(x.Elements), x.Elements, nil
	case *StringValue:
		runes := []rune(x.Value)
		elems := make([]Value, len(runes))
		for idx, r := range runes {
			elems[idx] = &StringValue{Value: string(r)}
		}
		return len(runes), elems, nil
	default:
		return 0, nil, typeError("%q object is not sliceable", x.Type())
	}
}

func rebuildSlice(x Value, elems []Value) Value {
	switch x.(type) {
	case *ListValue:
		return &ListValue{Elements: append([]Value(nil), elems...)}
	case *TupleValue:
		return &TupleValue{Elements: append([]Value(nil), elems...)}
	case *StringValue:
		var sb []byte
		for _, e := range elems {
			sb = append(sb, e.(*StringValue).Value...)
		}
		return &StringValue{Value: string(sb)}
	default:
		return typeError("%q object is not sliceable", x.Type())
	}
}
