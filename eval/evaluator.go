/*
File   : golox/eval/evaluator.go
Author : ostin-r
*/

/*
Package eval implements the tree-walking evaluator for Lox.

The evaluator executes the AST the parser produced, using the resolver's
side table to find each variable binding in O(1) scope hops. It owns the
globals environment and a mutable reference to the current environment,
which block execution and function calls swap in and out; restoration is
guaranteed on every exit path, including return unwinds and runtime
errors.

Return is a typed panic absorbed exactly at the function-call boundary.
Runtime errors are a typed panic absorbed at the top-level Interpret
call, where they are reported and execution of the current program stops.
*/
package eval

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ostin-r/golox/objects"
	"github.com/ostin-r/golox/parser"
	"github.com/ostin-r/golox/scope"
)

// returnSignal carries a return value out of arbitrarily deep block
// execution. It is matched and absorbed only at the call boundary in
// callFunction, never elsewhere.
type returnSignal struct {
	Value objects.LoxObject
}

// Evaluator holds the state for executing Lox programs: the globals
// environment, the current environment, the resolver's side table, the
// output sink for print, and the clock source behind the native clock
// function.
type Evaluator struct {
	Globals *scope.Scope // The outermost environment; holds builtins and top-level names
	Scp     *scope.Scope // The current environment; swapped by blocks and calls
	Locals  map[int]int  // Resolver side table: expression identity → scope depth

	Writer    io.Writer        // Destination for print output (default: os.Stdout)
	ErrWriter io.Writer        // Destination for runtime diagnostics (default: os.Stderr)
	Clock     func() time.Time // Wall-clock source for the clock builtin (default: time.Now)
}

// NewEvaluator creates an evaluator with a fresh globals environment.
// The native clock function (arity 0, seconds since the Unix epoch as a
// number) is defined in globals at construction time.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Globals:   scope.NewScope(nil),
		Locals:    make(map[int]int),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Clock:     time.Now,
	}
	ev.Scp = ev.Globals

	ev.Globals.Define("clock", &objects.Builtin{
		Name:       "clock",
		ArityCount: 0,
		Fn: func(args []objects.LoxObject) objects.LoxObject {
			return &objects.Number{Value: float64(ev.Clock().UnixNano()) / float64(time.Second)}
		},
	})
	return ev
}

// SetWriter redirects print output, which is useful for tests and for
// the REPL.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetErrWriter redirects runtime diagnostics.
func (e *Evaluator) SetErrWriter(w io.Writer) {
	e.ErrWriter = w
}

// Resolve merges a resolver's side table into the evaluator. The REPL
// calls this once per input line; ids are process-unique, so tables from
// successive parses never collide.
func (e *Evaluator) Resolve(locals map[int]int) {
	for id, depth := range locals {
		e.Locals[id] = depth
	}
}

// Interpret executes a whole program. A runtime error raised anywhere in
// the program unwinds to here, is reported to ErrWriter in the runtime
// diagnostic format (message, then "[line N]"), and is returned so the
// driver can map it to an exit code. A nil return means clean execution.
func (e *Evaluator) Interpret(root *parser.RootNode) (runtimeErr *objects.RuntimeError) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if lre, ok := recovered.(*objects.RuntimeError); ok {
				fmt.Fprintf(e.ErrWriter, "%s\n[line %d]\n", lre.Message, lre.Token.Line)
				runtimeErr = lre
				return
			}
			panic(recovered)
		}
	}()

	for _, stmt := range root.Statements {
		e.execute(stmt)
	}
	return nil
}
