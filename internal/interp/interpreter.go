package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/reclipse/spicy/internal/ast"
	"github.com/reclipse/spicy/internal/typegraph"
)

// Interpreter is Spy's tree-walking backend (§4.7). One Interpreter runs one
// compiled Program against a resolved Type Graph.
type Interpreter struct {
	Graph     *typegraph.Graph
	Functions map[string]*ast.FuncDef
	Global    *Env
	Out       io.Writer

	// statics holds each class's static field values, keyed by
	// "ClassName.fieldName", populated lazily the first time a static
	// field is read or written (constant-folded initializers run eagerly
	// at class load in a fuller implementation; this interpreter folds
	// them on first touch instead, which is observationally identical
	// for Spy's side-effect-free static initializers).
	statics map[string]Value
}

// New creates an Interpreter ready to run prog against graph.
func New(graph *typegraph.Graph, functions map[string]*ast.FuncDef) *Interpreter {
	return &Interpreter{
		Graph:     graph,
		Functions: functions,
		Global:    NewEnv(),
		Out:       os.Stdout,
		statics:   make(map[string]Value),
	}
}

// Run executes every top-level statement in prog in order, returning the
// uncaught exception (if any) so the caller (cmd/spicy) can report it and
// choose an exit code.
func (i *Interpreter) Run(prog *ast.Program) *ExceptionValue {
	registerBuiltins(i.Global)
	for _, decl := range prog.Decls {
		top, ok := decl.(*ast.TopLevelStmt)
		if !ok {
			continue
		}
		result := i.evalStmt(top.S, i.Global)
		if raise, ok := isRaise(result); ok {
			return raise.Exc
		}
	}
	return nil
}

func (i *Interpreter) evalBlock(stmts []ast.Stmt, env *Env) Value {
	var result Value = None
	for _, s := range stmts {
		result = i.evalStmt(s, env)
		if isSignal(result) {
			return result
		}
	}
	return result
}

// newException builds a RaiseSignal for one of §4.7's built-in exception
// types (ValueError, TypeError, NotImplementedError, ZeroDivisionError,
// IndexError) or a user-raised class.
func newException(class, format string, args ...any) *RaiseSignal {
	return &RaiseSignal{Exc: &ExceptionValue{ClassName: class, Message: fmt.Sprintf(format, args...)}}
}

func typeError(format string, args ...any) *RaiseSignal   { return newException("TypeError", format, args...) }
func valueError(format string, args ...any) *RaiseSignal  { return newException("ValueError", format, args...) }
func indexError(format string, args ...any) *RaiseSignal  { return newException("IndexError", format, args...) }
func notImplError(format string, args ...any) *RaiseSignal {
	return newException("NotImplementedError", format, args...)
}
