package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/hetu"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Hetu session",
	Long: `A minimal line-oriented REPL: each line is evaluated in function
style against a persistent global namespace.

Commands:
  :vars   list global variable names
  :reset  discard all state and start a fresh engine
  :quit   exit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	engine, err := hetu.New(opts...)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("hetu repl — :quit to exit, :vars to list globals, :reset to start over")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case line == ":reset":
			engine, err = hetu.New(opts...)
			if err != nil {
				return err
			}
			fmt.Println("(state reset)")
			continue
		case line == ":vars":
			printVars(engine)
			continue
		}

		result := engine.Eval(line, hetu.EvalOptions{Style: hetu.StyleFunction, FileName: "<repl>"})
		if !result.Success {
			fmt.Fprintln(os.Stderr, result.Err)
			continue
		}
		if result.Value != nil {
			fmt.Println(result.Value.String())
		}
	}
	return scanner.Err()
}

func printVars(engine *hetu.Engine) {
	names := make([]string, 0)
	engine.Globals().Range(func(name string, _ *runtime.Binding) bool {
		names = append(names, name)
		return true
	})
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	for _, name := range names {
		fmt.Println(name)
	}
}
