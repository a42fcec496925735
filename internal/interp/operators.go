package interp

import (
	"math"

	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
)

func (in *Interpreter) evalUnary(n *ast.Unary) (Value, *errors.Diagnostic) {
	right, err := in.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.Minus:
		num, ok := right.(Number)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operand must be a number")
		}
		return -num, nil
	case token.Not:
		return Boolean(!isTruthy(right)), nil
	default:
		return nil, errors.NewRuntime(errors.Syntax, n.Op, "Unknown unary operator")
	}
}

func (in *Interpreter) evalBinary(n *ast.Binary) (Value, *errors.Diagnostic) {
	left, err := in.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be numbers")
		}
		switch n.Op.Kind {
		case token.Greater:
			return Boolean(l > r), nil
		case token.GreaterEqual:
			return Boolean(l >= r), nil
		case token.Less:
			return Boolean(l < r), nil
		default:
			return Boolean(l <= r), nil
		}

	case token.Minus:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be numbers")
		}
		return Number(l - r), nil

	case token.Asterisk:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be numbers")
		}
		return Number(l * r), nil

	case token.Caret:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be numbers")
		}
		return Number(math.Pow(l, r)), nil

	case token.Slash:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be numbers")
		}
		if r == 0 {
			return nil, errors.NewRuntime(errors.ZeroDivision, n.Op, "Division by zero")
		}
		return Number(l / r), nil

	case token.Plus:
		if l, r, ok := numberOperands(left, right); ok {
			return Number(l + r), nil
		}
		if _, isLStr := left.(String); isLStr {
			return String(stringify(left) + stringify(right)), nil
		}
		if _, isRStr := right.(String); isRStr {
			return String(stringify(left) + stringify(right)), nil
		}
		return nil, errors.NewRuntime(errors.Type, n.Op, "Operands must be two numbers or include a string")

	case token.EqualEqual:
		return Boolean(isEqual(left, right)), nil
	case token.NotEqual:
		return Boolean(!isEqual(left, right)), nil

	default:
		return nil, errors.NewRuntime(errors.Syntax, n.Op, "Unknown binary operator")
	}
}

func numberOperands(a, b Value) (float64, float64, bool) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		return 0, 0, false
	}
	return float64(an), float64(bn), true
}
