package interp

import (
	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
)

// evaluate dispatches a single expression against the current environment.
func (in *Interpreter) evaluate(e ast.Expr) (Value, *errors.Diagnostic) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return in.evaluate(n.Expression)

	case *ast.Variable:
		return in.evalVariable(n)

	case *ast.Assign:
		return in.evalAssign(n)

	case *ast.Unary:
		return in.evalUnary(n)

	case *ast.Binary:
		return in.evalBinary(n)

	case *ast.Logical:
		return in.evalLogical(n)

	case *ast.Call:
		return in.evalCall(n)

	case *ast.SequenceOp:
		return in.evalSequenceOp(n)

	default:
		// unreachable: every ast.Expr variant is handled above
		return nil, errors.NewRuntime(errors.Syntax, token.Token{Line: e.Line()}, "Unknown expression")
	}
}

// literalValue converts an ast.Literal's raw Go value (as produced by
// the scanner/parser: float64, string, bool, or nil) into a Value.
func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null
	case float64:
		return Number(val)
	case string:
		return String(val)
	case bool:
		return Boolean(val)
	default:
		return Null
	}
}

// evalVariable reads a variable reference, consulting the resolved
// distance if the resolver recorded one for this exact node,
// otherwise falling back to the global environment.
func (in *Interpreter) evalVariable(n *ast.Variable) (Value, *errors.Diagnostic) {
	name := n.Name.Lexeme
	if distance, ok := in.locals[n]; ok {
		if v, ok := in.env.GetAt(distance, name); ok {
			return v, nil
		}
	} else if v, ok := in.globals.Get(name); ok {
		return v, nil
	}
	return nil, errors.NewRuntime(errors.Variable, n.Name, "Undefined variable '"+name+"'")
}

// evalAssign mirrors evalVariable's resolution rule for writes.
func (in *Interpreter) evalAssign(n *ast.Assign) (Value, *errors.Diagnostic) {
	value, err := in.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	name := n.Name.Lexeme
	if distance, ok := in.locals[n]; ok {
		in.env.AssignAt(distance, name, value)
		return value, nil
	}
	if in.globals.Assign(name, value) {
		return value, nil
	}
	return nil, errors.NewRuntime(errors.Variable, n.Name, "Undefined variable '"+name+"'")
}

func (in *Interpreter) evalLogical(n *ast.Logical) (Value, *errors.Diagnostic) {
	left, err := in.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(n.Right)
}

func (in *Interpreter) evalCall(n *ast.Call) (Value, *errors.Diagnostic) {
	callee, err := in.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntime(errors.Syntax, n.Paren, "Only functions can be called")
	}
	if len(args) != callable.Arity() {
		return nil, errors.NewRuntime(errors.Argument, n.Paren, "Expected arguments but got a different count")
	}
	return callable.Call(in, args)
}
