/*
File   : golox/parser/parser_test.go
Author : ostin-r
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// printProgram parses a source string and renders the AST in prefix
// form, the most convenient shape for structural assertions.
func printProgram(t *testing.T, src string) (string, *Parser) {
	t.Helper()
	par := NewParser(src)
	root := par.Parse()
	printer := &AstPrinter{}
	return strings.TrimRight(printer.Print(root), "\n"), par
}

// represents a test case for expression parsing
// Input: source code (one expression statement)
// Expected: the prefix rendering of the parsed tree
type TestParseExpression struct {
	Input    string
	Expected string
}

// TestParser_Precedence tests precedence climbing and associativity
// through the shape of the parsed tree.
func TestParser_Precedence(t *testing.T) {

	tests := []TestParseExpression{
		// Multiplication binds tighter than addition.
		{Input: `1 + 2 * 3;`, Expected: `(expr (+ 1 (* 2 3)))`},
		// Grouping overrides precedence.
		{Input: `(1 + 2) * 3;`, Expected: `(expr (* (group (+ 1 2)) 3))`},
		// Same-precedence operators associate left.
		{Input: `1 - 2 - 3;`, Expected: `(expr (- (- 1 2) 3))`},
		{Input: `8 / 4 / 2;`, Expected: `(expr (/ (/ 8 4) 2))`},
		// Comparison binds looser than terms.
		{Input: `1 + 2 < 3 * 4;`, Expected: `(expr (< (+ 1 2) (* 3 4)))`},
		// Equality binds looser than comparison.
		{Input: `1 < 2 == true;`, Expected: `(expr (== (< 1 2) true))`},
		// and binds tighter than or.
		{Input: `a or b and c;`, Expected: `(expr (or a (and b c)))`},
		// Unary binds tightest and nests.
		{Input: `!!true;`, Expected: `(expr (! (! true)))`},
		{Input: `-1 + 2;`, Expected: `(expr (+ (- 1) 2))`},
		// Assignment is right-associative.
		{Input: `a = b = 3;`, Expected: `(expr (= a (= b 3)))`},
		// Calls and property access chain left to right.
		{Input: `f(1)(2);`, Expected: `(expr (call (call f 1) 2))`},
		{Input: `a.b.c;`, Expected: `(expr (. (. a b) c))`},
		{Input: `obj.field = 1;`, Expected: `(expr (= (. obj field) 1))`},
	}

	for _, test := range tests {
		got, par := printProgram(t, test.Input)
		assert.False(t, par.HasErrors(), "input %q: %v", test.Input, par.GetErrors())
		assert.Equal(t, test.Expected, got, "input %q", test.Input)
	}
}

// TestParser_Statements tests statement-level parses.
func TestParser_Statements(t *testing.T) {

	tests := []TestParseExpression{
		{Input: `print 1 + 2;`, Expected: `(print (+ 1 2))`},
		{Input: `var x;`, Expected: `(var x)`},
		{Input: `var x = 10;`, Expected: `(var x 10)`},
		{Input: `{ var x = 1; print x; }`, Expected: `(block (var x 1) (print x))`},
		{Input: `if (a) print 1; else print 2;`, Expected: `(if a (print 1) (print 2))`},
		{Input: `while (a < 3) a = a + 1;`, Expected: `(while (< a 3) (expr (= a (+ a 1))))`},
		{Input: `fun f(a, b) { return a; }`, Expected: `(fun f (a b) (block (return a)))`},
		{Input: `return;`, Expected: `(return)`},
		{Input: `class Point { init(x) { this.x = x; } show() { print this.x; } }`,
			Expected: `(class Point (fun init (x) (block (expr (= (. this x) x)))) (fun show () (block (print (. this x)))))`},
	}

	for _, test := range tests {
		got, par := printProgram(t, test.Input)
		assert.False(t, par.HasErrors(), "input %q: %v", test.Input, par.GetErrors())
		assert.Equal(t, test.Expected, got, "input %q", test.Input)
	}
}

// TestParser_ForDesugar tests that for loops disappear during parsing,
// leaving an equivalent while inside a block.
func TestParser_ForDesugar(t *testing.T) {
	got, par := printProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, par.HasErrors())
	assert.Equal(t,
		`(block (var i 0) (while (< i 3) (block (print i) (expr (= i (+ i 1))))))`,
		got)

	// All three clauses are optional; a missing condition loops forever.
	got, par = printProgram(t, `for (;;) print 1;`)
	assert.False(t, par.HasErrors())
	assert.Equal(t, `(while true (print 1))`, got)
}

// TestParser_InvalidAssignmentTarget tests that a non-assignable
// left-hand side reports at the '=' without abandoning the statement.
func TestParser_InvalidAssignmentTarget(t *testing.T) {
	par := NewParser("1 + 2 = 3;\nprint 4;")
	root := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Equal(t, "[line 1] Error: Invalid assignment target.", par.GetErrors()[0])
	// The statement after the bad one still parses.
	assert.Len(t, root.Statements, 2)
}

// TestParser_ErrorRecovery tests panic-mode recovery: several syntax
// errors surface in one pass, and clean statements around them survive.
func TestParser_ErrorRecovery(t *testing.T) {
	par := NewParser("var 1 = 2;\nprint 3;\nvar = 4;\nprint 5;")
	root := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Len(t, par.GetErrors(), 2)
	assert.Contains(t, par.GetErrors()[0], "[line 1] Error: Expect variable name.")
	assert.Contains(t, par.GetErrors()[1], "[line 3] Error: Expect variable name.")

	// Both print statements parsed despite the bad declarations.
	assert.Len(t, root.Statements, 2)
}

// TestParser_MissingSemicolon tests a common syntax error's message and
// anchor token.
func TestParser_MissingSemicolon(t *testing.T) {
	par := NewParser("print 1")
	par.Parse()

	assert.True(t, par.HasErrors())
	assert.Equal(t, "[line 1] Error: Expect ';' after value.", par.GetErrors()[0])
}

// TestParser_LexicalErrorsCarryOver tests that lexer diagnostics appear
// in the parser's error list.
func TestParser_LexicalErrorsCarryOver(t *testing.T) {
	par := NewParser("var a = 1; #")
	par.Parse()

	assert.True(t, par.HasErrors())
	assert.Equal(t, "[line 1] Error: Unexpected character '#'.", par.GetErrors()[0])
}

// TestParser_UniqueExpressionIds tests that every Var/Assign/This node
// receives a distinct identity, including across separate parses (the
// REPL feeds many parses into one evaluator).
func TestParser_UniqueExpressionIds(t *testing.T) {
	seen := make(map[int]bool)

	collect := func(src string) {
		par := NewParser(src)
		root := par.Parse()
		assert.False(t, par.HasErrors())
		for _, stmt := range root.Statements {
			expr := stmt.(*ExpressionStatementNode).Expr
			switch node := expr.(type) {
			case *VariableExpressionNode:
				assert.False(t, seen[node.Id], "duplicate id %d", node.Id)
				seen[node.Id] = true
			case *AssignExpressionNode:
				assert.False(t, seen[node.Id], "duplicate id %d", node.Id)
				seen[node.Id] = true
			}
		}
	}

	collect("x; y; x;")
	collect("x; x = 1;")
	assert.Len(t, seen, 5)
}

// TestParser_ArgumentCap tests the 255-argument cap: the error is
// reported but the call still parses.
func TestParser_ArgumentCap(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	par := NewParser("f(" + strings.Join(args, ", ") + ");")
	root := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Can't have more than 255 arguments.")
	assert.Len(t, root.Statements, 1)
}
