package interp_test

import (
	"bytes"
	"testing"

	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
	"github.com/Jogll1/J-JMPL/internal/resolver"

	"github.com/Jogll1/J-JMPL/internal/interp"
)

func run(t *testing.T, source string) (string, *interp.Interpreter) {
	t.Helper()

	l := lexer.New(source)
	tokens := l.ScanTokens()
	if len(l.Errors()) > 0 {
		t.Fatalf("scan errors: %v", l.Errors())
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}

	r := resolver.New()
	r.Resolve(stmts)
	if len(r.Errors()) > 0 {
		t.Fatalf("resolve errors: %v", r.Errors())
	}

	var buf bytes.Buffer
	in := interp.New(&buf)
	in.SetLocals(r.Locals)
	if err := in.Interpret(stmts); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return buf.String(), in
}

func TestArithmeticAndLet(t *testing.T) {
	out, _ := run(t, "out 1 + 2;")
	if out != "3\n" {
		t.Errorf("got %q, want %q", out, "3\n")
	}

	out, _ = run(t, "let a = 1; let b = 2; out a + b;")
	if out != "3\n" {
		t.Errorf("got %q, want %q", out, "3\n")
	}
}

func TestFibonacci(t *testing.T) {
	out, _ := run(t, "function fib(n) = if n < 2 then return n; else return fib(n-1) + fib(n-2); out fib(10);")
	if out != "55\n" {
		t.Errorf("got %q, want %q", out, "55\n")
	}
}

func TestClosuresCaptureMutableState(t *testing.T) {
	src := `function mkc() = ( let i = 0; function c() = ( i := i + 1; i ); c ); let f = mkc(); out f(); out f(); out f();`
	out, _ := run(t, src)
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestSummationOfNumbers(t *testing.T) {
	out, _ := run(t, `out ∑(5, let i = 1) i;`)
	if out != "15\n" {
		t.Errorf("got %q, want %q", out, "15\n")
	}
}

func TestSummationOfStrings(t *testing.T) {
	out, _ := run(t, `out ∑(3, let i = 1) "a";`)
	if out != "aaa\n" {
		t.Errorf("got %q, want %q", out, "aaa\n")
	}
}

func TestSummationReusingExistingBinding(t *testing.T) {
	out, _ := run(t, `let i = 1; out ∑(3, i := i) i;`)
	if out != "6\n" {
		t.Errorf("got %q, want %q", out, "6\n")
	}
}

func TestSummationReusingLocalBinding(t *testing.T) {
	src := `function total() = ( let i = 1; out ∑(3, i := i) i; ); total();`
	out, _ := run(t, src)
	if out != "6\n" {
		t.Errorf("got %q, want %q", out, "6\n")
	}
}

func TestBlockBodiedFunctionReadsParameter(t *testing.T) {
	out, _ := run(t, `function g(x) = ( out x; ); g(1);`)
	if out != "1\n" {
		t.Errorf("got %q, want %q", out, "1\n")
	}
}

func TestBlockBodiedFunctionReadsClosedOverLocal(t *testing.T) {
	src := `function outer() = ( let x = 5; function g() = ( x ); g() ); out outer();`
	out, _ := run(t, src)
	if out != "5\n" {
		t.Errorf("got %q, want %q", out, "5\n")
	}
}

func TestStringifyNumberNeverEndsInDotZero(t *testing.T) {
	out, _ := run(t, "out 4/2;")
	if out != "2\n" {
		t.Errorf("got %q, want %q", out, "2\n")
	}
}

func TestStringifyNull(t *testing.T) {
	out, _ := run(t, "out null;")
	if out != "null\n" {
		t.Errorf("got %q, want %q", out, "null\n")
	}
}

func TestShortCircuitOr(t *testing.T) {
	out, _ := run(t, `out true or (1/0 > 0);`)
	if out != "true\n" {
		t.Errorf("got %q, want %q", out, "true\n")
	}
}

func TestShortCircuitAnd(t *testing.T) {
	out, _ := run(t, `out false and (1/0 > 0);`)
	if out != "false\n" {
		t.Errorf("got %q, want %q", out, "false\n")
	}
}

func TestDivisionByZero(t *testing.T) {
	l := lexer.New("out 1/0;")
	tokens := l.ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()
	r := resolver.New()
	r.Resolve(stmts)

	var buf bytes.Buffer
	in := interp.New(&buf)
	in.SetLocals(r.Locals)
	err := in.Interpret(stmts)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Kind.Name() != "ZeroDivisionError" {
		t.Errorf("got kind %q, want ZeroDivisionError", err.Kind.Name())
	}
}
