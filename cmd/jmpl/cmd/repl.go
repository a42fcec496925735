package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
	"github.com/Jogll1/J-JMPL/internal/resolver"
	"github.com/Jogll1/J-JMPL/pkg/jmpl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive JMPL session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return startRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// startRepl keeps a single Interpreter alive across lines, so later
// lines see earlier `let`/`function` definitions. A scan/parse/resolve
// error aborts only the offending line; the session continues.
func startRepl() error {
	prompt := replPrompt
	if prompt == "" {
		prompt = "> "
	}

	interp := jmpl.NewInterpreter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print(prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Print(prompt)
			continue
		}

		l := lexer.New(line)
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
			for _, d := range static {
				fmt.Fprintln(os.Stderr, d.Error())
			}
			fmt.Print(prompt)
			continue
		}

		interp.MergeLocals(r.Locals)
		if rerr := interp.Interpret(stmts); rerr != nil {
			fmt.Fprintln(os.Stderr, rerr.Error())
		}
		if dumpEnv {
			fmt.Fprintln(os.Stderr, "# env: "+strings.Join(interp.DumpEnv(), ", "))
		}

		fmt.Print(prompt)
	}
	return scanner.Err()
}

var replPrompt = "> "
