package interp

import (
	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
)

// Function is a user-defined JMPL function: an AST declaration paired
// with the environment it closed over at the point it was declared.
// That closure, not the caller's environment, is the enclosing scope
// for every invocation — this is what makes closures capture mutable
// state rather than a snapshot of it.
type Function struct {
	decl    *ast.Function
	closure *Environment
}

func (f *Function) Type() string { return "Function" }
func (f *Function) Arity() int   { return len(f.decl.Params) }

// Call binds each argument to its parameter in a fresh environment
// chained off the closure, then executes the body as a block. A
// `return` inside the body unwinds to here via returnSignal; falling
// off the end yields the block's implicit last-expression value
// instead.
func (f *Function) Call(in *Interpreter, args []Value) (result Value, rerr *errors.Diagnostic) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.defineNative(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				result, rerr = sig.value, nil
				return
			}
			panic(r)
		}
	}()

	return in.executeBlockStmt(f.decl.Body, env)
}

// Native wraps a built-in intrinsic (only `clock` exists today) behind
// the same Callable interface as user functions.
type Native struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, *errors.Diagnostic)
}

func (n *Native) Type() string { return "NativeFunction" }
func (n *Native) Arity() int   { return n.arity }
func (n *Native) Call(in *Interpreter, args []Value) (Value, *errors.Diagnostic) {
	return n.fn(in, args)
}
