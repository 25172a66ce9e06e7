/*
File   : golox/file/file.go
Author : ostin-r
*/

// Package file drives the lex → parse → resolve → interpret pipeline for
// file-mode execution and maps its outcome to process exit codes.
package file

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ostin-r/golox/eval"
	"github.com/ostin-r/golox/parser"
	"github.com/ostin-r/golox/resolver"
)

// Exit codes for file-mode runs, following the sysexits convention the
// language uses: EX_DATAERR for static errors, EX_SOFTWARE for runtime
// errors.
const (
	ExitOK      = 0  // Clean run
	ExitUsage   = 1  // Unreadable file or bad invocation
	ExitStatic  = 65 // Any lex/parse/resolve error
	ExitRuntime = 70 // A runtime error aborted execution
)

// redColor renders diagnostics; color auto-disables off-TTY so piped
// output stays byte-exact.
var redColor = color.New(color.FgRed)

// RunFile reads and executes a Lox source file, reporting diagnostics to
// stderr, and returns the exit code for the run.
func RunFile(fileName string) int {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		return ExitUsage
	}

	evaluator := eval.NewEvaluator()
	return RunSource(evaluator, string(fileContent), os.Stderr)
}

// RunSource executes one program on the given evaluator and returns the
// exit code. Static errors (from the lexer, parser or resolver) are all
// reported, evaluation is skipped, and the run exits 65. A runtime error
// has already been reported by Interpret and exits 70.
//
// The REPL calls this once per input line with a persistent evaluator,
// which is how globals survive across turns.
func RunSource(evaluator *eval.Evaluator, source string, errWriter io.Writer) int {
	par := parser.NewParser(source)
	root := par.Parse()

	// Lexical errors are folded into the parser's list, so one check
	// covers both stages.
	if par.HasErrors() {
		reportStaticErrors(errWriter, par.GetErrors())
		return ExitStatic
	}

	res := resolver.NewResolver()
	res.Resolve(root)
	if res.HasErrors() {
		reportStaticErrors(errWriter, res.GetErrors())
		return ExitStatic
	}

	evaluator.Resolve(res.Locals)
	if runtimeErr := evaluator.Interpret(root); runtimeErr != nil {
		return ExitRuntime
	}
	return ExitOK
}

// reportStaticErrors prints every collected static diagnostic, one per
// line, in the "[line N] Error: MESSAGE" format the stages produce.
func reportStaticErrors(errWriter io.Writer, errors []string) {
	for _, message := range errors {
		redColor.Fprintln(errWriter, message)
	}
}
