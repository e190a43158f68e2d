package interp

import "github.com/reclipse/spicy/internal/ast"

func (i *Interpreter) evalCallExpr(e *ast.CallExpr, env *Env) Value {
	if id, ok := e.Callee.(*ast.Identifier); ok && id.Name == "super" {
		return i.callSuperInit(e, env)
	}

	callee := i.evalExpr(e.Callee, env)
	if isSignal(callee) {
		return callee
	}
	args, errVal := i.evalExprList(e.Args, env)
	if errVal != nil {
		return errVal
	}

	switch c := callee.(type) {
	case *ExceptionClassValue:
		msg := ""
		if len(args) > 0 {
			msg = args[0].String()
		}
		return newException(c.Name, "%s", msg)
	case *ClassValue:
		return i.newInstance(c.Info, args)
	case *FunctionValue:
		return i.callFunction(c.Decl, args)
	case *Builtin:
		return c.Fn(i, args)
	case *BoundMethod:
		return i.callMethod(c.Receiver, c.Owner, c.Member, args)
	case *BoundStaticMethod:
		return i.callStaticMethod(c.Member, args)
	case *BoundBuiltinMethod:
		return c.Fn(i, c.Receiver, args)
	default:
		return typeError("%q object is not callable", callee.Type())
	}
}

// callSuperInit implements the bare `super(...)` call that §4.6 rule 5a
// requires as a constructor's first statement: it resolves the nearest
// ancestor `init` relative to the currently executing method's owner and
// runs it bound to the same receiver, the constructor analogue of
// resolveSuperAttr's method lookup.
func (i *Interpreter) callSuperInit(e *ast.CallExpr, env *Env) Value {
	selfVal, ok := env.Get("self")
	if !ok {
		return typeError("super() used outside of a method")
	}
	self := selfVal.(*InstanceValue)
	owner := currentOwner(env)
	if owner == nil || owner.Parent == nil {
		return typeError("super() has no parent class to initialize")
	}
	ov, ok := owner.Parent.Overrides["init"]
	if !ok {
		return typeError("%q has no ancestor constructor to call", owner.Decl.Name)
	}
	args, errVal := i.evalExprList(e.Args, env)
	if errVal != nil {
		return errVal
	}
	return i.callMethod(self, ov.Owner, ov.Member, args)
}
