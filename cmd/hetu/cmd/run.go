package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hetu-script/hetu-go/internal/hetujson"
	"github.com/hetu-script/hetu-go/pkg/hetu"
)

var (
	runEvalExpr   string
	runInvokeFunc string
	runJSONResult bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Hetu file or expression",
	Long: `Execute a Hetu program from a file or inline expression.

Examples:
  hetu run script.ht
  hetu run -e "var year = 2020 proc main { print(year) }" --invoke main
  hetu run --json-result script.ht`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().StringVar(&runInvokeFunc, "invoke", "", "invoke this top-level function after loading")
	runCmd.Flags().BoolVar(&runJSONResult, "json-result", false, "print the result value as JSON instead of its script String() form")
}

func runRun(_ *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	engine, err := hetu.New(opts...)
	if err != nil {
		return err
	}

	evalOpts := hetu.EvalOptions{Style: hetu.StyleLibrary, InvokeFunc: runInvokeFunc}

	var result hetu.Result
	if runEvalExpr != "" {
		evalOpts.FileName = "<eval>"
		result = engine.Eval(runEvalExpr, evalOpts)
	} else if len(args) == 1 {
		result = engine.EvalFile(args[0], evalOpts)
	} else {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Err)
		return fmt.Errorf("execution failed")
	}

	if runJSONResult {
		text, err := hetujson.Stringify(result.Value)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	if result.Value != nil {
		fmt.Println(result.Value.String())
	}
	return nil
}

func engineOptions() ([]hetu.Option, error) {
	if configPath == "" {
		return nil, nil
	}
	cfg, err := hetu.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg.Options(), nil
}
