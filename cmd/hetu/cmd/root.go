// Package cmd implements the hetu CLI: run, lex, parse, and repl
// subcommands over pkg/hetu, grounded on the teacher's cmd/dwscript/cmd
// layout (one cobra.Command per file, package-level flag vars wired up
// in each file's init).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"

	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "hetu",
	Short: "Hetu script interpreter",
	Long: `hetu is a Go implementation of the Hetu scripting language core:
a lexer, a recursive-descent parser, a lexical resolver, and a
tree-walking evaluator, embeddable via pkg/hetu or driven standalone
through this CLI.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a hetu.yaml config file")
}
