// Package interp implements JMPL's tree-walking Interpreter and its
// runtime support: the Value union, the Environment chain, callables,
// and runtime error propagation.
package interp

import (
	"io"

	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
)

// returnSignal is the internal unwinding mechanism for `return`
// statements: it is recovered only at the nearest Function.Call
// boundary and never escapes as a visible error.
type returnSignal struct {
	value Value
}

// Interpreter evaluates statements and expressions against a chain of
// environments, honoring the distances the resolver computed.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	out     io.Writer

	// Trace, when set, makes the interpreter emit a kr/pretty dump of
	// each top-level statement to stderr before running it — purely a
	// debugging aid, wired to `jmpl run --trace`.
	Trace bool
}

// New returns an Interpreter writing `out` output to w, with globals
// bootstrapped with the standard library (only the `clock` intrinsic).
func New(w io.Writer) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{globals: globals, env: globals, out: w}
	registerBuiltins(globals)
	return in
}

// SetLocals installs the resolver's distance side-table wholesale,
// for a single-shot run (file or -e).
func (in *Interpreter) SetLocals(locals map[ast.Expr]int) {
	in.locals = locals
}

// MergeLocals adds a resolver's distances into the existing
// side-table rather than replacing it, for the REPL: each line gets
// its own resolver pass, but earlier lines' closures must keep
// resolving against the distances recorded for their own AST nodes.
func (in *Interpreter) MergeLocals(locals map[ast.Expr]int) {
	if in.locals == nil {
		in.locals = make(map[ast.Expr]int, len(locals))
	}
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
}

// Interpret executes stmts in order against the current environment.
// It returns the first runtime error encountered, if any, at which
// point evaluation has already stopped: runtime errors abort
// evaluation.
func (in *Interpreter) Interpret(stmts []ast.Stmt) *errors.Diagnostic {
	for _, s := range stmts {
		in.traceDump(s)
		if _, err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches a single statement. The returned Value is only
// meaningful when s is the last statement of a block, per the
// implicit last-expression value rule; every other caller ignores it.
func (in *Interpreter) execute(s ast.Stmt) (Value, *errors.Diagnostic) {
	switch n := s.(type) {
	case *ast.Expression:
		return in.evaluate(n.Expression)

	case *ast.Let:
		var value Value = Null
		if n.Initialiser != nil {
			v, err := in.evaluate(n.Initialiser)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if !in.env.Define(n.Name.Lexeme, value) {
			return nil, errors.NewRuntime(errors.Identifier, n.Name, "Variable '"+n.Name.Lexeme+"' already declared in this scope")
		}
		return nil, nil

	case *ast.Block:
		return in.executeBlock(n.Statements, NewEnclosedEnvironment(in.env))

	case *ast.If:
		cond, err := in.evaluate(n.Condition)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.execute(n.Then)
		} else if n.Else != nil {
			return in.execute(n.Else)
		}
		return nil, nil

	case *ast.While:
		for {
			cond, err := in.evaluate(n.Condition)
			if err != nil {
				return nil, err
			}
			if !isTruthy(cond) {
				break
			}
			if _, err := in.execute(n.Body); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case *ast.Function:
		fn := &Function{decl: n, closure: in.env}
		if !in.env.Define(n.Name.Lexeme, fn) {
			return nil, errors.NewRuntime(errors.Identifier, n.Name, "Variable '"+n.Name.Lexeme+"' already declared in this scope")
		}
		return nil, nil

	case *ast.Return:
		var value Value = Null
		if n.Value != nil {
			v, err := in.evaluate(n.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		panic(returnSignal{value: value})

	case *ast.Output:
		value, err := in.evaluate(n.Expression)
		if err != nil {
			return nil, err
		}
		io.WriteString(in.out, stringify(value)+"\n")
		return nil, nil

	default:
		// unreachable: every ast.Stmt variant is handled above
		return nil, errors.NewRuntime(errors.Syntax, token.Token{Line: s.Line()}, "Unknown statement")
	}
}

// executeBlock is the shared primitive behind Block statements and
// function bodies. It swaps in newEnv for the
// duration of the call, always restoring the previous environment on
// the way out — including when a statement errors or a `return`
// unwinds through it. The last statement's implicit value (if it has
// one) is returned to the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, newEnv *Environment) (result Value, rerr *errors.Diagnostic) {
	previous := in.env
	in.env = newEnv
	defer func() { in.env = previous }()

	var last Value
	for i, s := range stmts {
		v, err := in.execute(s)
		if err != nil {
			return nil, err
		}
		if i == len(stmts)-1 {
			last = blockValueOf(s, v)
		}
	}
	return last, nil
}

// blockValueOf applies the "implicit last-expression value" rule: only
// an Expression statement or a nested Block contributes a value when
// it is the last statement of a block; every other statement kind
// contributes none, regardless of what execute happened to return.
func blockValueOf(s ast.Stmt, v Value) Value {
	switch s.(type) {
	case *ast.Expression, *ast.Block:
		return v
	default:
		return nil
	}
}

// executeBlockStmt runs a function body, which the grammar
// allows to be any single statement (conventionally a Block). It
// normalizes both shapes through executeBlock so the "implicit last
// expression" rule applies uniformly.
func (in *Interpreter) executeBlockStmt(body ast.Stmt, newEnv *Environment) (Value, *errors.Diagnostic) {
	if block, ok := body.(*ast.Block); ok {
		return in.executeBlock(block.Statements, newEnv)
	}
	return in.executeBlock([]ast.Stmt{body}, newEnv)
}
