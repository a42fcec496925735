package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jogll1/J-JMPL/pkg/jmpl"
)

var (
	evalExpr string
	trace    bool
	dumpEnv  bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	cmd.Flags().BoolVar(&trace, "trace", false, "trace execution to stderr (kr/pretty)")
	cmd.Flags().BoolVar(&dumpEnv, "dump-env", false, "dump the final environment's bindings to stderr after running")
}

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a JMPL file or expression",
	Long: `Execute a JMPL program from a file or an inline expression.

With no path and no -e, jmpl starts a REPL instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

// runScript is shared by the bare root command and `jmpl run`. Exit
// codes follow the CLI contract exactly: 64 on misuse, 65 on a static
// (scan/parse/resolve) error, 70 on a runtime error, 0 otherwise.
func runScript(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: jmpl [path]")
		os.Exit(64)
	}

	if evalExpr == "" && len(args) == 0 {
		return startRepl()
	}

	var source, filename string
	if evalExpr != "" {
		source, filename = evalExpr, "<eval>"
	} else {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		source = string(content)
	}

	result := jmpl.Run(source, jmpl.Options{Out: os.Stdout, Trace: trace, DumpEnv: dumpEnv})

	if len(result.StaticErrors) > 0 {
		for _, d := range result.StaticErrors {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(65)
	}
	if result.RuntimeError != nil {
		fmt.Fprintln(os.Stderr, result.RuntimeError.Error())
		os.Exit(70)
	}
	if dumpEnv && len(result.Env) > 0 {
		fmt.Fprintln(os.Stderr, "# env: "+strings.Join(result.Env, ", "))
	}
	return nil
}
