/*
File   : golox/cmd/golox/cmd/parse.go
Author : ostin-r
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ostin-r/golox/file"
	"github.com/ostin-r/golox/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Lox file and dump the AST",
	Long: `Run the lexer and parser over a Lox source file and print the AST in
parenthesized prefix form, one top-level statement per line. Exits 65
when the file contains static errors.

Example:
  golox parse script.lox`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "Could not read file '%s': %v\n", args[0], err)
			os.Exit(file.ExitUsage)
		}

		par := parser.NewParser(string(source))
		root := par.Parse()

		printer := &parser.AstPrinter{}
		fmt.Print(printer.Print(root))

		if par.HasErrors() {
			for _, message := range par.GetErrors() {
				color.New(color.FgRed).Fprintln(os.Stderr, message)
			}
			os.Exit(file.ExitStatic)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
