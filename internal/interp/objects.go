package interp

import (
	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/typegraph"
)

// newInstance constructs a fresh instance of class and runs its `init`
// constructor (found via the MRO, §4.7: "dynamic dispatch via the Override
// Table"), if one exists anywhere on the chain.
func (i *Interpreter) newInstance(class *typegraph.ClassInfo, args []Value) Value {
	inst := NewInstance(class)
	ctor, ok := class.Overrides["init"]
	if !ok {
		if len(args) != 0 {
			return typeError("%s() takes no arguments (%d given)", class.Decl.Name, len(args))
		}
		return inst
	}
	result := i.callMethod(inst, ctor.Owner, ctor.Member, args)
	if raise, ok := isRaise(result); ok {
		return raise
	}
	return inst
}

// callMethod runs member's body with self bound to receiver and a fresh
// scope enclosing the global environment, so a method's parameter scope is
// anchored to its defining environment rather than the call site's.
func (i *Interpreter) callMethod(receiver *InstanceValue, owner *typegraph.ClassInfo, member *ast.MemberDecl, args []Value) Value {
	if len(args) != len(member.Params) {
		return typeError("%s() takes %d argument(s) (%d given)", member.Name, len(member.Params), len(args))
	}
	env := NewEnclosedEnv(i.Global)
	env.Define("self", receiver)
	env.Define("__owner__", ownerMarker{owner})
	for idx, p := range member.Params {
		env.Define(p.Name, args[idx])
	}
	result := i.evalBlock(member.Body, env)
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value
	}
	if raise, ok := isRaise(result); ok {
		return raise
	}
	return None
}

// ownerMarker is stashed in the call environment so a nested `super` lookup
// knows which class in the MRO to resume searching after.
type ownerMarker struct{ owner *typegraph.ClassInfo }

func (ownerMarker) Type() string   { return "__owner__" }
func (ownerMarker) String() string { return "__owner__" }

func currentOwner(env *Env) *typegraph.ClassInfo {
	v, ok := env.Get("__owner__")
	if !ok {
		return nil
	}
	m, ok := v.(ownerMarker)
	if !ok {
		return nil
	}
	return m.owner
}

// callFunction runs a top-level function's body in a fresh scope enclosing
// the global environment.
func (i *Interpreter) callFunction(fn *ast.FuncDef, args []Value) Value {
	if len(args) != len(fn.Params) {
		return typeError("%s() takes %d argument(s) (%d given)", fn.Name, len(fn.Params), len(args))
	}
	env := NewEnclosedEnv(i.Global)
	for idx, p := range fn.Params {
		env.Define(p.Name, args[idx])
	}
	result := i.evalBlock(fn.Body, env)
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value
	}
	if raise, ok := isRaise(result); ok {
		return raise
	}
	return None
}

// staticKey formats the lookup key for a static field, keyed by the class
// that originally declares it (so a subclass sees the same shared slot).
func staticKey(owner *typegraph.ClassInfo, name string) string {
	return owner.Decl.Name + "." + name
}

// staticFieldOwner walks info's MRO to find which class declares a static
// field named name.
func staticFieldOwner(info *typegraph.ClassInfo, name string) (*typegraph.ClassInfo, *ast.MemberDecl, bool) {
	for _, cls := range info.MRO {
		for _, m := range cls.Decl.Members {
			if m.Kind == ast.MemberField && m.IsStatic && m.Name == name {
				return cls, m, true
			}
		}
	}
	return nil, nil, false
}

// getStatic resolves a class's static field, lazily evaluating its
// initializer expression on first access.
func (i *Interpreter) getStatic(info *typegraph.ClassInfo, name string) (Value, bool) {
	owner, member, ok := staticFieldOwner(info, name)
	if !ok {
		return nil, false
	}
	key := staticKey(owner, name)
	if v, ok := i.statics[key]; ok {
		return v, true
	}
	var v Value = None
	if member.FieldInit != nil {
		v = i.evalExpr(member.FieldInit, i.Global)
	}
	i.statics[key] = v
	return v, true
}

func (i *Interpreter) setStatic(info *typegraph.ClassInfo, name string, value Value) bool {
	owner, _, ok := staticFieldOwner(info, name)
	if !ok {
		return false
	}
	i.statics[staticKey(owner, name)] = value
	return true
}

// staticMethodOwner finds a static method by name anywhere on info's MRO.
// Static methods never enter the Override Table (computeOverrides only
// tracks MemberMethod/MemberConstructor), so this walks the MRO directly,
// mirroring staticFieldOwner.
func staticMethodOwner(info *typegraph.ClassInfo, name string) (*typegraph.ClassInfo, *ast.MemberDecl, bool) {
	for _, cls := range info.MRO {
		for _, m := range cls.Decl.Members {
			if m.Kind == ast.MemberStaticMethod && m.Name == name {
				return cls, m, true
			}
		}
	}
	return nil, nil, false
}

func (i *Interpreter) callStaticMethod(member *ast.MemberDecl, args []Value) Value {
	if len(args) != len(member.Params) {
		return typeError("%s() takes %d argument(s) (%d given)", member.Name, len(member.Params), len(args))
	}
	env := NewEnclosedEnv(i.Global)
	for idx, p := range member.Params {
		env.Define(p.Name, args[idx])
	}
	result := i.evalBlock(member.Body, env)
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value
	}
	if raise, ok := isRaise(result); ok {
		return raise
	}
	return None
}
