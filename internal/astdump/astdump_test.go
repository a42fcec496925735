package astdump_test

import (
	"strings"
	"testing"

	"github.com/Jogll1/J-JMPL/internal/astdump"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
)

func TestDumpAndQuery(t *testing.T) {
	l := lexer.New("out 1 + 2;")
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	doc, err := astdump.Dump(stmts)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	if got := astdump.Query(doc, "0.type"); got != "Output" {
		t.Errorf("got type %q, want %q", got, "Output")
	}
	if got := astdump.Query(doc, "0.expression.type"); got != "Binary" {
		t.Errorf("got expression type %q, want %q", got, "Binary")
	}
	if got := astdump.Query(doc, "0.expression.op"); got != "+" {
		t.Errorf("got op %q, want %q", got, "+")
	}
}

func TestPrettyIndentsOutput(t *testing.T) {
	pretty := astdump.Pretty(`{"type":"Output"}`)
	if !strings.Contains(pretty, "\n") {
		t.Error("expected Pretty to add newlines/indentation")
	}
}
