package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jogll1/J-JMPL/internal/astdump"
	"github.com/Jogll1/J-JMPL/internal/lexer"
	"github.com/Jogll1/J-JMPL/internal/parser"
)

var astQuery string

var astCmd = &cobra.Command{
	Use:   "ast <path>",
	Short: "Print a file's parsed AST as JSON",
	Long: `Parse a JMPL file and print its AST as JSON.

Pass --query with a gjson path to extract a single value instead of
printing the whole tree, e.g. --query "0.type".`,
	Args: cobra.ExactArgs(1),
	RunE: dumpAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVar(&astQuery, "query", "", "gjson path to extract instead of the full tree")
}

func dumpAST(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	tokens := l.ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()

	if errs := append(l.Errors(), p.Errors()...); len(errs) > 0 {
		for _, d := range errs {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(65)
	}

	doc, err := astdump.Dump(stmts)
	if err != nil {
		return fmt.Errorf("building AST JSON: %w", err)
	}

	if astQuery != "" {
		fmt.Println(astdump.Query(doc, astQuery))
		return nil
	}
	fmt.Println(astdump.Pretty(doc))
	return nil
}
