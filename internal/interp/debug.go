package interp

import (
	"fmt"
	"os"
	"sort"

	"github.com/kr/pretty"
	"github.com/maruel/natural"

	"github.com/Jogll1/J-JMPL/internal/ast"
)

// traceDump prints the line and a pretty-formatted view of the
// statement about to run to stderr, when Trace is on. Wired to `jmpl run --trace`; a no-op otherwise.
func (in *Interpreter) traceDump(s ast.Stmt) {
	if !in.Trace {
		return
	}
	fmt.Fprintf(os.Stderr, "# trace line %d: %# v\n", s.Line(), pretty.Formatter(s))
}

// DumpEnv lists every name reachable from the current environment,
// nearest scope first, each scope's own names in natural sort order.
// Wired to `jmpl run --dump-env`.
func (in *Interpreter) DumpEnv() []string {
	var out []string
	for e := in.env; e != nil; e = e.enclosing {
		names := e.names()
		sort.Sort(natural.StringSlice(names))
		out = append(out, names...)
	}
	return out
}
