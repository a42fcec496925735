// Package jmpl is the embeddable front door to the JMPL pipeline:
// scan, parse, resolve, and interpret, collected behind a single
// Run/RunFile call for hosts that don't need the individual passes.
package jmpl

import (
	"io"
	"os"

	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/interp"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
	"github.com/Jogll1/J-JMPL/internal/resolver"
)

// Options configures a single Run.
type Options struct {
	// Out receives `out` statement writes. Defaults to os.Stdout.
	Out io.Writer
	// Trace enables kr/pretty execution tracing to stderr.
	Trace bool
	// DumpEnv, when true, populates Result.Env with the final
	// environment's bound names after a successful run.
	DumpEnv bool
}

// Result reports what a Run produced: whichever diagnostics were
// raised during the static passes, or the single runtime diagnostic
// that aborted evaluation.
type Result struct {
	StaticErrors []*errors.Diagnostic
	RuntimeError *errors.Diagnostic
	// Env holds the post-run environment dump, set only when
	// Options.DumpEnv was true and evaluation completed.
	Env []string
}

// HadError reports whether anything went wrong, static or runtime.
func (r Result) HadError() bool {
	return len(r.StaticErrors) > 0 || r.RuntimeError != nil
}

// Run lexes, parses, resolves, and (if no static errors) interprets
// source. Static errors short-circuit evaluation entirely, mirroring
// the one-shot CLI/REPL driver's behaviour.
func Run(source string, opts Options) Result {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	l := lexer.New(source)
	tokens := l.ScanTokens()

	p := parser.New(tokens)
	stmts := p.Parse()

	var static []*errors.Diagnostic
	static = append(static, l.Errors()...)
	static = append(static, p.Errors()...)

	r := resolver.New()
	r.Resolve(stmts)
	static = append(static, r.Errors()...)

	if len(static) > 0 {
		return Result{StaticErrors: static}
	}

	in := interp.New(out)
	in.Trace = opts.Trace
	in.SetLocals(r.Locals)

	if rerr := in.Interpret(stmts); rerr != nil {
		return Result{RuntimeError: rerr}
	}

	res := Result{}
	if opts.DumpEnv {
		res.Env = in.DumpEnv()
	}
	return res
}

// RunFile reads path as UTF-8 source and runs it.
func RunFile(path string, opts Options) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Run(string(content), opts), nil
}

// NewInterpreter returns a freshly bootstrapped Interpreter writing to
// w, for hosts that want to drive the passes themselves (e.g. a REPL
// keeping one Interpreter alive across lines).
func NewInterpreter(w io.Writer) *interp.Interpreter {
	return interp.New(w)
}
