package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
	"github.com/Jogll1/J-JMPL/internal/resolver"

	"github.com/Jogll1/J-JMPL/internal/interp"
)

// TestFixtures runs every .jmpl program under testdata/fixtures and
// snapshots its combined stdout/diagnostic output, so a change in
// observable behaviour shows up as a diff instead of silently passing.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.jmpl")
	if err != nil {
		t.Fatalf("globbing fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}

			var buf bytes.Buffer
			buf.WriteString(runFixture(string(content)))

			snaps.MatchSnapshot(t, name, buf.String())
		})
	}
}

// runFixture executes source through the full pipeline and renders a
// single string describing the outcome: stdout on success, or the
// formatted diagnostics on a static/runtime failure.
func runFixture(source string) string {
	l := lexer.New(source)
	tokens := l.ScanTokens()

	p := parser.New(tokens)
	stmts := p.Parse()

	var static []string
	for _, d := range l.Errors() {
		static = append(static, d.Error())
	}
	for _, d := range p.Errors() {
		static = append(static, d.Error())
	}

	r := resolver.New()
	r.Resolve(stmts)
	for _, d := range r.Errors() {
		static = append(static, d.Error())
	}

	if len(static) > 0 {
		out := "STATIC ERRORS >>>>\n"
		for _, s := range static {
			out += s + "\n"
		}
		return out
	}

	var out bytes.Buffer
	in := interp.New(&out)
	in.SetLocals(r.Locals)

	if rerr := in.Interpret(stmts); rerr != nil {
		return "STDOUT >>>>\n" + out.String() + "RUNTIME ERROR >>>>\n" + rerr.Error() + "\n"
	}
	return "STDOUT >>>>\n" + out.String()
}
