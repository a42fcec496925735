package parser_test

import (
	"testing"

	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return stmts
}

func TestParseLetDeclaration(t *testing.T) {
	stmts := parse(t, "let a = 1;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	let, ok := stmts[0].(*ast.Let)
	if !ok {
		t.Fatalf("got %T, want *ast.Let", stmts[0])
	}
	if let.Name.Lexeme != "a" {
		t.Errorf("got name %q, want %q", let.Name.Lexeme, "a")
	}
	if _, ok := let.Initialiser.(*ast.Literal); !ok {
		t.Errorf("got initialiser %T, want *ast.Literal", let.Initialiser)
	}
}

func TestParseBlockUsesParens(t *testing.T) {
	stmts := parse(t, "( let a = 1; out a; )")
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in block, want 2", len(block.Statements))
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	stmts := parse(t, "out 1 + 2 * 3;")
	out := stmts[0].(*ast.Output)
	binary, ok := out.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("got %T, want *ast.Binary", out.Expression)
	}
	if binary.Op.Lexeme != "+" {
		t.Fatalf("got top-level op %q, want %q (multiplication should bind tighter)", binary.Op.Lexeme, "+")
	}
	if _, ok := binary.Right.(*ast.Binary); !ok {
		t.Errorf("got right operand %T, want *ast.Binary for 2 * 3", binary.Right)
	}
}

func TestParseAssignmentRequiresVariableTarget(t *testing.T) {
	l := lexer.New("1 := 2;")
	p := parser.New(l.ScanTokens())
	p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for invalid assignment target")
	}
}

func TestParseSummationShape(t *testing.T) {
	stmts := parse(t, "out ∑(5, let i = 1) i;")
	out := stmts[0].(*ast.Output)
	seq, ok := out.Expression.(*ast.SequenceOp)
	if !ok {
		t.Fatalf("got %T, want *ast.SequenceOp", out.Expression)
	}
	if _, ok := seq.Lower.(*ast.Let); !ok {
		t.Errorf("got lower bound %T, want *ast.Let", seq.Lower)
	}
}

func TestParseFunctionSingleStatementBody(t *testing.T) {
	stmts := parse(t, "function id(x) = return x;")
	fn := stmts[0].(*ast.Function)
	if len(fn.Params) != 1 || fn.Params[0].Lexeme != "x" {
		t.Fatalf("got params %v, want [x]", fn.Params)
	}
	if _, ok := fn.Body.(*ast.Return); !ok {
		t.Errorf("got body %T, want *ast.Return", fn.Body)
	}
}

func TestParseReportsErrorButContinuesSynchronizing(t *testing.T) {
	l := lexer.New("let ;\nlet b = 2;")
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for the malformed first declaration")
	}
	found := false
	for _, s := range stmts {
		if let, ok := s.(*ast.Let); ok && let.Name.Lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Error("expected parsing to recover and still produce the second declaration")
	}
}
