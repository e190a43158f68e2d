package interp

import "github.com/reclipse/spicy/internal/ast"

func (i *Interpreter) evalAssignStmt(s *ast.AssignStmt, env *Env) Value {
	value := i.evalExpr(s.Value, env)
	if isSignal(value) {
		return value
	}

	if s.Op != "" {
		current := i.evalExpr(s.Target, env)
		if isSignal(current) {
			return current
		}
		value = evalArith(s.Op, current, value)
		if isSignal(value) {
			return value
		}
	}

	switch target := s.Target.(type) {
	case *ast.Identifier:
		env.Assign(target.Name, value)
		return None
	case *ast.AttrExpr:
		return i.assignAttr(target, value, env)
	case *ast.IndexExpr:
		return i.assignIndex(target, value, env)
	default:
		return typeError("cannot assign to this expression")
	}
}

func (i *Interpreter) assignAttr(target *ast.AttrExpr, value Value, env *Env) Value {
	x := i.evalExpr(target.X, env)
	if isSignal(x) {
		return x
	}
	switch x := x.(type) {
	case *InstanceValue:
		if _, _, ok := staticFieldOwner(x.Class, target.Name); ok {
			if !x.hasOwnAttr(target.Name) {
				i.setStatic(x.Class, target.Name, value)
				return None
			}
		}
		x.Attrs[target.Name] = value
		return None
	case *ClassValue:
		if i.setStatic(x.Info, target.Name, value) {
			return None
		}
		return typeError("class %q has no static member %q", x.Info.Decl.Name, target.Name)
	default:
		return typeError("%q object does not support attribute assignment", x.Type())
	}
}

func (i *Interpreter) assignIndex(target *ast.IndexExpr, value Value, env *Env) Value {
	x := i.evalExpr(target.X, env)
	if isSignal(x) {
		return x
	}
	idx := i.evalExpr(target.Index, env)
	if isSignal(idx) {
		return idx
	}
	switch x := x.(type) {
	case *ListValue:
		n, errVal := requireInt(idx)
		if errVal != nil {
			return errVal
		}
		pos, ok := normalizeIndex(n, len(x.Elements))
		if !ok {
			return indexError("list assignment index out of range")
		}
		x.Elements[pos] = value
		return None
	case *DictValue:
		key, errVal := dictKeyString(idx)
		if errVal != nil {
			return errVal
		}
		x.Set(key, value)
		return None
	default:
		return typeError("%q object does not support item assignment", x.Type())
	}
}

// hasOwnAttr reports whether name is set directly on the instance (as
// opposed to only existing as an inherited static field). assignAttr uses it
// so that `self.x = ...`, where x names a static field the instance does not
// own, writes through to the shared static slot; that path never creates an
// own attribute.
func (x *InstanceValue) hasOwnAttr(name string) bool {
	_, ok := x.Attrs[name]
	return ok
}
