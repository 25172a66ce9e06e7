/*
File   : golox/cmd/golox/cmd/lex.go
Author : ostin-r
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ostin-r/golox/file"
	"github.com/ostin-r/golox/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Lox file and dump the token stream",
	Long: `Run only the lexer over a Lox source file and print one token per
line, for debugging the scanner. Exits 65 when the file contains
lexical errors.

Example:
  golox lex script.lox`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "Could not read file '%s': %v\n", args[0], err)
			os.Exit(file.ExitUsage)
		}

		lex := lexer.NewLexer(string(source))
		for _, token := range lex.ScanTokens() {
			fmt.Println(token.String())
		}

		if lex.HasErrors() {
			for _, message := range lex.GetErrors() {
				color.New(color.FgRed).Fprintln(os.Stderr, message)
			}
			os.Exit(file.ExitStatic)
		}
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
