package interp

import (
	"math"

	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
)

func isIntegral(f float64) bool {
	return f == math.Trunc(f)
}

// evalSequenceOp evaluates `∑(upper, lower) summand`. The lower bound
// introduces (Let form) or reuses (Assign form) a binding that the
// loop increments once per iteration; both the initial read and every
// increment go through the environment's chain-walking Get/Assign
// rather than a resolved distance, since the synthetic lower-bound
// node isn't what the resolver recorded a distance against.
func (in *Interpreter) evalSequenceOp(n *ast.SequenceOp) (Value, *errors.Diagnostic) {
	upperVal, err := in.evaluate(n.Upper)
	if err != nil {
		return nil, err
	}
	upperNum, ok := upperVal.(Number)
	if !ok || !isIntegral(float64(upperNum)) {
		return nil, errors.NewRuntime(errors.Syntax, n.Name, "Upper bound must be an integer")
	}
	upper := float64(upperNum)

	var loopVarName string
	previous := in.env

	switch lower := n.Lower.(type) {
	case *ast.Let:
		in.env = NewEnclosedEnvironment(previous)
		defer func() { in.env = previous }()

		loopVarName = lower.Name.Lexeme
		var value Value = Null
		if lower.Initialiser != nil {
			v, err := in.evaluate(lower.Initialiser)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if !in.env.Define(loopVarName, value) {
			return nil, errors.NewRuntime(errors.Identifier, lower.Name, "Variable '"+loopVarName+"' already declared in this scope")
		}

	case *ast.Expression:
		assign, ok := lower.Expression.(*ast.Assign)
		if !ok {
			return nil, errors.NewRuntime(errors.Syntax, n.Name, "Invalid summation lower bound")
		}
		loopVarName = assign.Name.Lexeme
		if _, err := in.evaluate(assign); err != nil {
			return nil, err
		}

	default:
		return nil, errors.NewRuntime(errors.Syntax, n.Name, "Invalid summation lower bound")
	}

	var accumNumber Number
	var accumString String
	isString := false
	started := false

	for {
		lv, ok := in.env.Get(loopVarName)
		if !ok {
			return nil, errors.NewRuntime(errors.Variable, n.Name, "Undefined variable '"+loopVarName+"'")
		}
		i, ok := lv.(Number)
		if !ok || !isIntegral(float64(i)) {
			return nil, errors.NewRuntime(errors.Syntax, n.Name, "Summation variable must be an integer")
		}
		if float64(i) > upper {
			break
		}

		summandVal, err := in.evaluate(n.Summand)
		if err != nil {
			return nil, err
		}

		if !started {
			switch summandVal.(type) {
			case Number:
				isString = false
			case String:
				isString = true
			default:
				return nil, errors.NewRuntime(errors.Syntax, n.Name, "Summand must be a number or string")
			}
			started = true
		}

		if isString {
			s, ok := summandVal.(String)
			if !ok {
				return nil, errors.NewRuntime(errors.Syntax, n.Name, "Summand must be a string")
			}
			accumString += s
		} else {
			num, ok := summandVal.(Number)
			if !ok {
				return nil, errors.NewRuntime(errors.Syntax, n.Name, "Summand must be a number")
			}
			accumNumber += num
		}

		if !in.env.Assign(loopVarName, Number(float64(i)+1)) {
			return nil, errors.NewRuntime(errors.Variable, n.Name, "Undefined variable '"+loopVarName+"'")
		}
	}

	if isString {
		return accumString, nil
	}
	return accumNumber, nil
}
