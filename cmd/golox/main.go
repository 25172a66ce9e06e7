/*
File   : golox/cmd/golox/main.go
Author : ostin-r
*/

// Package main is the entry point for the golox interpreter binary.
// It provides two modes of operation:
// 1. REPL mode (no arguments): interactive Read-Eval-Print Loop
// 2. File mode (one argument): execute a Lox source file
// plus the lex/parse debug subcommands.
package main

import (
	"os"

	"github.com/ostin-r/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
