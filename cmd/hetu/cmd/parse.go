package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/internal/parser"
	"github.com/hetu-script/hetu-go/internal/resolver"
)

var (
	parseEvalExpr  string
	parseDumpAST   bool
	parseCheckOnly bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Hetu file or expression and print the AST",
	Long: `Parse a Hetu program, run the lexical resolver over it, and print
the resulting AST (or just report errors with --check-only).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", true, "print the parsed AST")
	parseCmd.Flags().BoolVar(&parseCheckOnly, "check-only", false, "only report parse/resolve errors, don't print the AST")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	p := parser.New(l, filename)
	prog, perr := p.ParseProgram()
	if perr != nil {
		return fmt.Errorf("%s", perr.WithSource(input).Format(true))
	}

	if errs := resolver.Resolve(prog); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(e.WithSource(input).Format(true))
		}
		return fmt.Errorf("resolution failed with %d error(s)", len(errs))
	}

	if !parseCheckOnly && parseDumpAST {
		fmt.Println(prog.String())
	}
	return nil
}
