/*
File   : golox/repl/repl.go
Author : ostin-r

Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See the effects immediately (print writes to the terminal)
- Navigate command history using arrow keys

The REPL uses the readline library for line editing and drives the same
parse → resolve → interpret pipeline as file mode, one input line at a
time. Each line may mutate the persistent globals environment, so
globals survive across turns; static and runtime errors are printed but
never terminate the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/ostin-r/golox/eval"
	"github.com/ostin-r/golox/file"
)

// Color definitions for REPL output:
// - greenColor: the banner
// - cyanColor: informational messages and instructions
var (
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents a Read-Eval-Print Loop instance.
// It encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the interpreter
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions
// when the session starts.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	cyanColor.Fprintf(writer, "golox %s\n", r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type Lox code and press enter; an empty line exits.")
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates a persistent evaluator
// 4. Reads, parses, resolves and executes one line per turn
//
// The loop ends on an empty input line or on EOF (Ctrl+D). Errors of any
// kind are reported and the session continues with the next line.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session: top-level declarations made
	// on earlier lines stay visible on later ones.
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.SetErrWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt.
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			break
		}

		rl.SaveHistory(line)

		// Exit codes are meaningless per-line; diagnostics have already
		// been written, so the result is dropped and the session goes on.
		file.RunSource(evaluator, line, writer)
	}
}
