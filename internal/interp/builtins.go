package interp

import (
	"time"

	"github.com/Jogll1/J-JMPL/internal/errors"
)

// registerBuiltins installs the intrinsic globals every interpreter
// starts with. `clock` is the only one: seconds since the Unix epoch,
// as a Number, arity 0.
func registerBuiltins(globals *Environment) {
	globals.defineNative("clock", &Native{
		name:  "clock",
		arity: 0,
		fn: func(in *Interpreter, args []Value) (Value, *errors.Diagnostic) {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
}
