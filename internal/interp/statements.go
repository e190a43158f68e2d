package interp

import (
	"strconv"

	"github.com/reclipse/spicy/internal/ast"
)

func (i *Interpreter) evalStmt(stmt ast.Stmt, env *Env) Value {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return i.evalExprStmt(s, env)
	case *ast.ReturnStmt:
		return i.evalReturnStmt(s, env)
	case *ast.PassStmt:
		return None
	case *ast.RaiseStmt:
		return i.evalRaiseStmt(s, env)
	case *ast.AssignStmt:
		return i.evalAssignStmt(s, env)
	case *ast.VarDeclStmt:
		return i.evalVarDeclStmt(s, env)
	case *ast.IfStmt:
		return i.evalIfStmt(s, env)
	case *ast.ForStmt:
		return i.evalForStmt(s, env)
	case *ast.WhileStmt:
		return i.evalWhileStmt(s, env)
	default:
		return None
	}
}

func (i *Interpreter) evalExprStmt(s *ast.ExprStmt, env *Env) Value {
	v := i.evalExpr(s.X, env)
	if isSignal(v) {
		return v
	}
	return None
}

func (i *Interpreter) evalReturnStmt(s *ast.ReturnStmt, env *Env) Value {
	if s.Value == nil {
		return &ReturnSignal{Value: None}
	}
	v := i.evalExpr(s.Value, env)
	if isSignal(v) {
		return v
	}
	return &ReturnSignal{Value: v}
}

func (i *Interpreter) evalRaiseStmt(s *ast.RaiseStmt, env *Env) Value {
	v := i.evalExpr(s.Value, env)
	if isSignal(v) {
		return v
	}
	if exc, ok := v.(*ExceptionValue); ok {
		return &RaiseSignal{Exc: exc}
	}
	if inst, ok := v.(*InstanceValue); ok {
		return &RaiseSignal{Exc: &ExceptionValue{ClassName: inst.Class.Decl.Name, Message: instanceMessage(inst)}}
	}
	return typeError("exceptions must derive from an exception type, got %s", v.Type())
}

func instanceMessage(inst *InstanceValue) string {
	if m, ok := inst.Attrs["message"]; ok {
		return m.String()
	}
	return ""
}

func (i *Interpreter) evalVarDeclStmt(s *ast.VarDeclStmt, env *Env) Value {
	var v Value = None
	if s.Value != nil {
		v = i.evalExpr(s.Value, env)
		if isSignal(v) {
			return v
		}
	}
	env.Define(s.Name, v)
	return None
}

func (i *Interpreter) evalIfStmt(s *ast.IfStmt, env *Env) Value {
	cond := i.evalExpr(s.If.Cond, env)
	if isSignal(cond) {
		return cond
	}
	if Truthy(cond) {
		return i.evalBlock(s.If.Body, NewEnclosedEnv(env))
	}
	for _, elif := range s.Elifs {
		cond := i.evalExpr(elif.Cond, env)
		if isSignal(cond) {
			return cond
		}
		if Truthy(cond) {
			return i.evalBlock(elif.Body, NewEnclosedEnv(env))
		}
	}
	if s.Else != nil {
		return i.evalBlock(s.Else, NewEnclosedEnv(env))
	}
	return None
}

func (i *Interpreter) evalForStmt(s *ast.ForStmt, env *Env) Value {
	iter := i.evalExpr(s.Iter, env)
	if isSignal(iter) {
		return iter
	}
	items, errVal := iterableElements(iter)
	if errVal != nil {
		return errVal
	}
	for _, item := range items {
		loopEnv := NewEnclosedEnv(env)
		loopEnv.Define(s.VarName, item)
		result := i.evalBlock(s.Body, loopEnv)
		if isSignal(result) {
			return result
		}
	}
	return None
}

func (i *Interpreter) evalWhileStmt(s *ast.WhileStmt, env *Env) Value {
	for {
		cond := i.evalExpr(s.Cond, env)
		if isSignal(cond) {
			return cond
		}
		if !Truthy(cond) {
			return None
		}
		result := i.evalBlock(s.Body, NewEnclosedEnv(env))
		if isSignal(result) {
			return result
		}
	}
}

// iterableElements expands a value into the sequence a `for` loop walks:
// list/tuple elements in order, a string's characters, or a dict's keys
// (in insertion order), per §4.7.
func iterableElements(v Value) ([]Value, Value) {
	switch v := v.(type) {
	case *ListValue:
		return v.Elements, nil
	case *TupleValue:
		return v.Elements, nil
	case *StringValue:
		chars := make([]Value, 0, len(v.Value))
		for _, r := range v.Value {
			chars = append(chars, &StringValue{Value: string(r)})
		}
		return chars, nil
	case *DictValue:
		keys := make([]Value, 0, len(v.Order))
		// Order holds dictKeyString's type-prefixed form; decode it back.
		for _, k := range v.Order {
			switch k[:2] {
			case "i:":
				n, _ := strconv.ParseInt(k[2:], 10, 64)
				keys = append(keys, &IntValue{Value: n})
			case "b:":
				keys = append(keys, &BoolValue{Value: k[2:] == "True"})
			default:
				keys = append(keys, &StringValue{Value: k[2:]})
			}
		}
		return keys, nil
	default:
		return nil, typeError("%s is not iterable", v.Type())
	}
}
