/*
File   : golox/resolver/resolver.go
Author : ostin-r
*/

/*
Package resolver implements the static resolution pass that runs between
parsing and evaluation.

The resolver walks the AST once, tracking a stack of lexical scopes, and
binds every variable use to a specific enclosing scope by depth. The
output is a side table mapping expression identity to the number of
scope hops the evaluator must take to find the binding; names not in the
table live in globals. Because the table is computed before execution,
a closure keeps seeing the binding that was visible at its definition
site even if the surrounding block later declares a shadowing variable.

The pass also reports the static errors the language defines:
  - reading a local variable in its own initializer (var x = x;)
  - duplicate declarations in the same non-global block
  - return outside of any function
  - returning a value from an initializer
  - using this outside of a class

All diagnostics are collected; the resolver never stops early, so every
resolution problem surfaces in one pass.
*/
package resolver

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/parser"
)

// FunctionType tracks what kind of function body the resolver is inside,
// so return statements can be validated.
type FunctionType int

const (
	FUNCTION_NONE        FunctionType = iota // Not inside any function
	FUNCTION_FUNCTION                        // Inside a plain function
	FUNCTION_METHOD                          // Inside a class method
	FUNCTION_INITIALIZER                     // Inside an init method
)

// ClassType tracks whether the resolver is inside a class body, so
// `this` can be validated.
type ClassType int

const (
	CLASS_NONE  ClassType = iota // Not inside any class
	CLASS_CLASS                  // Inside a class declaration
)

// Resolver holds the state of the static resolution pass.
//
// Each entry of the scope stack maps a name to its defined-flag: false
// while the declaration's initializer is being resolved, true once the
// name is usable. The distinction is what catches `var x = x;`.
type Resolver struct {
	// Locals is the side table: expression identity → scope depth.
	// Depth counts enclosing scopes to skip, 0 being the innermost.
	Locals map[int]int

	// Errors collects static diagnostics, already formatted.
	Errors []string

	scopes          []map[string]bool
	currentFunction FunctionType
	currentClass    ClassType
}

// NewResolver creates a resolver with an empty scope stack. The global
// scope is deliberately not modeled: names that resolve to no scope are
// global by definition.
func NewResolver() *Resolver {
	return &Resolver{
		Locals: make(map[int]int),
		Errors: make([]string, 0),
		scopes: make([]map[string]bool, 0),
	}
}

// Resolve runs the pass over a whole program.
func (r *Resolver) Resolve(root *parser.RootNode) {
	r.resolveStatements(root.Statements)
}

// HasErrors reports whether any static errors were recorded.
func (r *Resolver) HasErrors() bool {
	return len(r.Errors) > 0
}

// GetErrors returns the collected static diagnostics.
func (r *Resolver) GetErrors() []string {
	return r.Errors
}

// resolveStatements resolves a statement list in order.
func (r *Resolver) resolveStatements(statements []parser.StatementNode) {
	for _, stmt := range statements {
		r.resolveStatement(stmt)
	}
}

// resolveStatement dispatches on the concrete statement type.
func (r *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch node := stmt.(type) {
	case *parser.BlockStatementNode:
		r.beginScope()
		r.resolveStatements(node.Statements)
		r.endScope()
	case *parser.DeclarativeStatementNode:
		r.declare(node.Name)
		if node.Initializer != nil {
			r.resolveExpression(node.Initializer)
		}
		r.define(node.Name)
	case *parser.FunctionStatementNode:
		// The name is defined before the body resolves, so the function
		// can refer to itself recursively.
		r.declare(node.Name)
		r.define(node.Name)
		r.resolveFunction(node, FUNCTION_FUNCTION)
	case *parser.ClassStatementNode:
		enclosingClass := r.currentClass
		r.currentClass = CLASS_CLASS

		r.declare(node.Name)
		r.define(node.Name)

		// Method bodies resolve inside a scope where `this` is defined;
		// the evaluator mirrors this with the scope created by Bind.
		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true
		for _, method := range node.Methods {
			functionType := FUNCTION_METHOD
			if method.Name.Literal == "init" {
				functionType = FUNCTION_INITIALIZER
			}
			r.resolveFunction(method, functionType)
		}
		r.endScope()

		r.currentClass = enclosingClass
	case *parser.ExpressionStatementNode:
		r.resolveExpression(node.Expr)
	case *parser.PrintStatementNode:
		r.resolveExpression(node.Expr)
	case *parser.IfStatementNode:
		r.resolveExpression(node.Condition)
		r.resolveStatement(node.Then)
		if node.Else != nil {
			r.resolveStatement(node.Else)
		}
	case *parser.WhileLoopStatementNode:
		r.resolveExpression(node.Condition)
		r.resolveStatement(node.Body)
	case *parser.ReturnStatementNode:
		if r.currentFunction == FUNCTION_NONE {
			r.addError(node.Keyword, "Can't return from top-level code.")
		}
		if node.Value != nil {
			if r.currentFunction == FUNCTION_INITIALIZER {
				r.addError(node.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpression(node.Value)
		}
	}
}

// resolveExpression dispatches on the concrete expression type.
func (r *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch node := expr.(type) {
	case *parser.VariableExpressionNode:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][node.Name.Literal]; declared && !defined {
				r.addError(node.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(node.Id, node.Name)
	case *parser.AssignExpressionNode:
		r.resolveExpression(node.Value)
		r.resolveLocal(node.Id, node.Name)
	case *parser.ThisExpressionNode:
		if r.currentClass == CLASS_NONE {
			r.addError(node.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(node.Id, node.Keyword)
	case *parser.BinaryExpressionNode:
		r.resolveExpression(node.Left)
		r.resolveExpression(node.Right)
	case *parser.LogicalExpressionNode:
		r.resolveExpression(node.Left)
		r.resolveExpression(node.Right)
	case *parser.UnaryExpressionNode:
		r.resolveExpression(node.Right)
	case *parser.CallExpressionNode:
		r.resolveExpression(node.Callee)
		for _, argument := range node.Arguments {
			r.resolveExpression(argument)
		}
	case *parser.GetExpressionNode:
		// Properties are looked up dynamically; only the object resolves.
		r.resolveExpression(node.Object)
	case *parser.SetExpressionNode:
		r.resolveExpression(node.Value)
		r.resolveExpression(node.Object)
	case *parser.ParenthesizedExpressionNode:
		r.resolveExpression(node.Expr)
	}
	// Literals carry no names to resolve.
}

// resolveFunction resolves a function body in a fresh scope containing
// the parameters. The caller has already declared and defined the
// function's own name in the enclosing scope.
func (r *Resolver) resolveFunction(node *parser.FunctionStatementNode, functionType FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = functionType

	r.beginScope()
	for _, param := range node.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(node.Body.Statements)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// resolveLocal searches the scope stack innermost-out for the name. On
// the first hit it records (exprId → depth) in the side table. A miss
// leaves the expression unrecorded, which the evaluator treats as a
// globals lookup.
func (r *Resolver) resolveLocal(exprId int, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Literal]; ok {
			r.Locals[exprId] = len(r.scopes) - 1 - i
			return
		}
	}
}

// beginScope pushes a fresh scope onto the stack.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks a name as existing-but-uninitialized in the innermost
// scope. Declaring the same name twice in one non-global block is a
// static error. Declarations at the top level (empty stack) are global
// and unrestricted.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, exists := innermost[name.Literal]; exists {
		r.addError(name, "Already a variable with this name in this scope.")
	}
	innermost[name.Literal] = false
}

// define marks a declared name as fully initialized and usable.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Literal] = true
}

// addError records a static diagnostic at the given token.
func (r *Resolver) addError(token lexer.Token, message string) {
	r.Errors = append(r.Errors, fmt.Sprintf("[line %d] Error: %s", token.Line, message))
}
