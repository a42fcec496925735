package resolver_test

import (
	"testing"

	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
	"github.com/Jogll1/J-JMPL/internal/resolver"
)

func resolve(t *testing.T, source string) ([]ast.Stmt, *resolver.Resolver) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := resolver.New()
	r.Resolve(stmts)
	return stmts, r
}

func TestResolveLocalDistance(t *testing.T) {
	// (let a = 1; (out a;))
	stmts, r := resolve(t, "( let a = 1; ( out a; ) )")

	outer := stmts[0].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	output := inner.Statements[0].(*ast.Output)
	variable := output.Expression.(*ast.Variable)

	distance, ok := r.Locals[variable]
	if !ok {
		t.Fatal("expected a recorded distance for the inner reference to 'a'")
	}
	if distance != 1 {
		t.Errorf("got distance %d, want 1", distance)
	}
}

func TestResolveGlobalHasNoRecordedDistance(t *testing.T) {
	stmts, r := resolve(t, "let a = 1; out a;")
	output := stmts[1].(*ast.Output)
	variable := output.Expression.(*ast.Variable)

	if _, ok := r.Locals[variable]; ok {
		t.Error("expected no recorded distance for a global reference")
	}
}

func TestResolveSelfReferenceInInitialiserErrors(t *testing.T) {
	_, r := resolve(t, "( let a = a; )")
	if len(r.Errors()) == 0 {
		t.Fatal("expected a VariableError for reading 'a' from its own initialiser")
	}
	if r.Errors()[0].Kind.Name() != "VariableError" {
		t.Errorf("got kind %q, want VariableError", r.Errors()[0].Kind.Name())
	}
}

func TestResolveTopLevelReturnErrors(t *testing.T) {
	_, r := resolve(t, "return 1;")
	if len(r.Errors()) == 0 {
		t.Fatal("expected a ReturnError for a top-level return")
	}
	if r.Errors()[0].Kind.Name() != "ReturnError" {
		t.Errorf("got kind %q, want ReturnError", r.Errors()[0].Kind.Name())
	}
}

func TestResolveDuplicateLocalDeclarationErrors(t *testing.T) {
	_, r := resolve(t, "( let a = 1; let a = 2; )")
	if len(r.Errors()) == 0 {
		t.Fatal("expected a VariableError for redeclaring 'a' in the same scope")
	}
}

func TestResolveFunctionParametersShadowEnclosingScope(t *testing.T) {
	_, r := resolve(t, "function f(a) = return a;")
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}
}

// A block-bodied function's parameter environment is the only scope
// Function.Call creates; executeBlockStmt runs the block's statements
// directly in it rather than nesting a second environment. The
// resolver must record the same single-scope distance for a reference
// to that parameter, not two.
func TestResolveBlockBodiedFunctionParamDistanceIsZero(t *testing.T) {
	stmts, r := resolve(t, "function g(x) = ( out x; );")

	fn := stmts[0].(*ast.Function)
	body := fn.Body.(*ast.Block)
	output := body.Statements[0].(*ast.Output)
	variable := output.Expression.(*ast.Variable)

	distance, ok := r.Locals[variable]
	if !ok {
		t.Fatal("expected a recorded distance for the block body's reference to 'x'")
	}
	if distance != 0 {
		t.Errorf("got distance %d, want 0", distance)
	}
}

// The Assign-form summation lower bound (`i := i`) reuses an existing
// binding in place; evalSequenceOp never creates a new environment for
// it, unlike the Let form. The resolver must not introduce an extra
// scope here either, so a local loop variable resolves to the scope it
// actually lives in.
func TestResolveSequenceOpAssignFormStaysInEnclosingScope(t *testing.T) {
	stmts, r := resolve(t, "( let i = 1; out ∑(3, i := i) i; )")

	block := stmts[0].(*ast.Block)
	output := block.Statements[1].(*ast.Output)
	seq := output.Expression.(*ast.SequenceOp)
	summand := seq.Summand.(*ast.Variable)

	distance, ok := r.Locals[summand]
	if !ok {
		t.Fatal("expected a recorded distance for the summand's reference to 'i'")
	}
	if distance != 0 {
		t.Errorf("got distance %d, want 0", distance)
	}
}
