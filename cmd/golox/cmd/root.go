/*
File   : golox/cmd/golox/cmd/root.go
Author : ostin-r
*/

// Package cmd defines the golox command tree.
package cmd

import (
	"os"

	"github.com/ostin-r/golox/file"
	"github.com/ostin-r/golox/repl"
	"github.com/spf13/cobra"
)

// Version of the interpreter (set by build flags).
var Version = "0.1.0-dev"

// BANNER is shown when the REPL starts.
const BANNER = `        _
  __ _ | | ___  __  __
 / _' || |/ _ \ \ \/ /
| (_| || | (_) | >  <
 \__, ||_|\___/ /_/\_\
 |___/`

// PROMPT is the per-turn REPL prompt.
const PROMPT = "> "

var rootCmd = &cobra.Command{
	Use:   "golox [file]",
	Short: "Lox tree-walking interpreter",
	Long: `golox is a Go implementation of the Lox scripting language: a small
dynamically-typed language with first-class functions, lexical closures
and classes.

With no arguments golox starts an interactive session; with a file path
it runs the file. File runs exit 65 on static (lex/parse/resolve)
errors and 70 on runtime errors.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 0 {
			repler := repl.NewRepl(BANNER, Version, PROMPT)
			repler.Start(os.Stdout)
			return
		}
		os.Exit(file.RunFile(args[0]))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
