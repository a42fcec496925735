// Package cmd implements the `jmpl` command-line tool: one cobra root
// command with run (the default), repl, ast, and version subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jogll1/J-JMPL/internal/config"
)

var (
	// Version information, overridable via -ldflags at build time.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jmpl [path]",
	Short: "JMPL language interpreter",
	Long: `jmpl is a tree-walking interpreter for JMPL, a small
dynamically-typed, expression-oriented scripting language with a
mathematical flavor: unicode operator aliases, a ∑ summation operator,
and ':=' assignment.

Run a script, start a REPL, or inspect a program's AST.`,
	Version:      Version,
	SilenceUsage: true,
	// Bare invocation (no subcommand) behaves like `jmpl run`.
	RunE: runScript,
	Args: cobra.ArbitraryArgs,
	// Load .jmplrc.yaml before any subcommand runs, applying its
	// settings as defaults for flags the user didn't pass explicitly.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.FindAndLoad(dir)
		if err != nil {
			return err
		}
		replPrompt = cfg.Prompt
		if !cmd.Flags().Changed("trace") {
			trace = cfg.Trace
		}
		if !cmd.Flags().Changed("dump-env") {
			dumpEnv = cfg.DumpEnv
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addRunFlags(rootCmd)
}

var verbose bool
