package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hetu-script/hetu-go/internal/lexer"
	"github.com/hetu-script/hetu-go/pkg/token"
)

var (
	lexEvalExpr  string
	lexShowPos   bool
	lexShowType  bool
	lexOnlyError bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Hetu file or expression",
	Long: `Tokenize (lex) a Hetu program and print the resulting tokens.

Examples:
  hetu lex script.ht
  hetu lex -e "var year = 2020"
  hetu lex --show-type --show-pos script.ht`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token kind names")
	lexCmd.Flags().BoolVar(&lexOnlyError, "only-errors", false, "show only illegal tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFile(filename))
	count, errCount := 0, 0
	for {
		tok := l.NextToken()
		if lexOnlyError && tok.Kind != token.ILLEGAL {
			if tok.Kind == token.EOF {
				break
			}
			continue
		}
		count++
		if tok.Kind == token.ILLEGAL {
			errCount++
		}
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "---\ntotal tokens: %d\n", count)
	}
	if lexOnlyError && errCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errCount)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	switch {
	case tok.Kind == token.EOF:
		out += " EOF"
	case tok.Kind == token.ILLEGAL:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Kind)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}

func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
