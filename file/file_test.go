/*
File   : golox/file/file_test.go
Author : ostin-r
*/
package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ostin-r/golox/eval"
	"github.com/stretchr/testify/assert"
)

// runSource executes one program on a fresh evaluator with captured
// output and diagnostics.
func runSource(t *testing.T, src string) (code int, out string, errOut string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(&outBuf)
	evaluator.SetErrWriter(&errBuf)

	code = RunSource(evaluator, src, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

// TestRunSource_CleanRun tests exit 0 and plain print output.
func TestRunSource_CleanRun(t *testing.T) {
	code, out, errOut := runSource(t, `print 1 + 2;`)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "3\n", out)
	assert.Empty(t, errOut)
}

// TestRunSource_StaticErrors tests exit 65 for each static stage, with
// evaluation skipped entirely.
func TestRunSource_StaticErrors(t *testing.T) {
	// Lexical.
	code, out, errOut := runSource(t, "print 1;\n@")
	assert.Equal(t, ExitStatic, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[line 2] Error: Unexpected character '@'.")

	// Syntactic — several errors surface in one run.
	code, out, errOut = runSource(t, "var 1 = 2;\nvar = 3;")
	assert.Equal(t, ExitStatic, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[line 1] Error: Expect variable name.")
	assert.Contains(t, errOut, "[line 2] Error: Expect variable name.")

	// Resolution.
	code, out, errOut = runSource(t, `return 1;`)
	assert.Equal(t, ExitStatic, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[line 1] Error: Can't return from top-level code.")
}

// TestRunSource_RuntimeError tests exit 70, the diagnostic format, and
// that print produced nothing before the failing statement.
func TestRunSource_RuntimeError(t *testing.T) {
	code, out, errOut := runSource(t, `print 1 + "x";`)

	assert.Equal(t, ExitRuntime, code)
	assert.Empty(t, out)
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", errOut)
}

// TestRunSource_PersistentEvaluator tests the REPL contract: globals
// defined on one line survive to the next, and errors leave the session
// usable.
func TestRunSource_PersistentEvaluator(t *testing.T) {
	var out, errOut bytes.Buffer
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(&out)
	evaluator.SetErrWriter(&errOut)

	assert.Equal(t, ExitOK, RunSource(evaluator, `var x = 10;`, &errOut))
	assert.Equal(t, ExitRuntime, RunSource(evaluator, `print missing;`, &errOut))
	assert.Equal(t, ExitStatic, RunSource(evaluator, `var ( = 1;`, &errOut))
	assert.Equal(t, ExitOK, RunSource(evaluator, `print x;`, &errOut))

	assert.Equal(t, "10\n", out.String())
}

// TestRunFile tests file-mode execution end to end, including the
// unreadable-file case.
func TestRunFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.lox")
	assert.NoError(t, os.WriteFile(path, []byte("var a = 2;\nprint a * 3;\n"), 0o644))

	// Print output goes to the process stdout in file mode, so only the
	// exit code is asserted here; output itself is covered by RunSource.
	assert.Equal(t, ExitOK, RunFile(path))

	bad := filepath.Join(dir, "bad.lox")
	assert.NoError(t, os.WriteFile(bad, []byte("print nil + 1;\n"), 0o644))
	assert.Equal(t, ExitRuntime, RunFile(bad))

	assert.Equal(t, ExitUsage, RunFile(filepath.Join(dir, "does-not-exist.lox")))
}
