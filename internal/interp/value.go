package interp

import (
	"strconv"
	"strings"

	"github.com/Jogll1/J-JMPL/internal/errors"
)

// Value is JMPL's dynamically-typed runtime value: a Number, String,
// Boolean, Null, or Callable. It carries no
// inheritance root — Callable is a capability interface any Go type
// can implement, not a base class.
type Value interface {
	// Type names the value's runtime kind, for error messages.
	Type() string
}

// Number is an IEEE-754 double.
type Number float64

func (Number) Type() string { return "Number" }

// String is UTF-8 text.
type String string

func (String) Type() string { return "String" }

// Boolean is a truth value.
type Boolean bool

func (Boolean) Type() string { return "Boolean" }

// nullValue is JMPL's singular null; Null is its only instance.
type nullValue struct{}

func (nullValue) Type() string { return "Null" }

// Null is the unique null value.
var Null Value = nullValue{}

// Callable is implemented by any value that can appear on the left of
// a Call expression: user-defined Function and native intrinsics.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, *errors.Diagnostic)
}

// stringify renders a Value the way the `out` statement does: numbers
// never keep a trailing ".0", null prints as "null".
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case nullValue:
		return "null"
	case Number:
		return formatNumber(float64(val))
	case String:
		return string(val)
	case Boolean:
		if val {
			return "true"
		}
		return "false"
	case *Function:
		return "<fn " + val.decl.Name.Lexeme + ">"
	case *Native:
		return "<native fn>"
	default:
		return "null"
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		s = s[:len(s)-2]
	}
	return s
}

// isTruthy implements JMPL's truthiness table: Null is false; an empty
// String is false; Number 0 is false; Boolean is itself; everything
// else (including non-empty strings, non-zero numbers, and every
// Callable) is true.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, nullValue:
		return false
	case String:
		return val != ""
	case Number:
		return val != 0
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// isEqual implements JMPL's equality table.
func isEqual(a, b Value) bool {
	aNull := a == nil || a == Value(nullValue{})
	bNull := b == nil || b == Value(nullValue{})
	if aNull && bNull {
		return true
	}
	if aNull || bNull {
		return false
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && sameCallable(av, bv)
	default:
		return false
	}
}

// sameCallable compares callables by identity: two callables are the
// same only if they are the same *Function or the same *Native pointer.
func sameCallable(a, b Callable) bool {
	af, aok := a.(*Function)
	bf, bok := b.(*Function)
	if aok && bok {
		return af == bf
	}
	an, anok := a.(*Native)
	bn, bnok := b.(*Native)
	if anok && bnok {
		return an == bn
	}
	return false
}
