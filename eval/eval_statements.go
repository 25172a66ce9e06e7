/*
File   : golox/eval/eval_statements.go
Author : ostin-r
*/
package eval

import (
	"fmt"

	"github.com/ostin-r/golox/function"
	"github.com/ostin-r/golox/objects"
	"github.com/ostin-r/golox/parser"
	"github.com/ostin-r/golox/scope"
)

// execute runs one statement, dispatching on the concrete node type.
func (e *Evaluator) execute(stmt parser.StatementNode) {
	switch node := stmt.(type) {
	case *parser.ExpressionStatementNode:
		e.evaluate(node.Expr)
	case *parser.PrintStatementNode:
		value := e.evaluate(node.Expr)
		fmt.Fprintln(e.Writer, value.ToString())
	case *parser.DeclarativeStatementNode:
		e.executeVarDeclaration(node)
	case *parser.BlockStatementNode:
		e.executeBlock(node.Statements, scope.NewScope(e.Scp))
	case *parser.IfStatementNode:
		if objects.IsTruthy(e.evaluate(node.Condition)) {
			e.execute(node.Then)
		} else if node.Else != nil {
			e.execute(node.Else)
		}
	case *parser.WhileLoopStatementNode:
		for objects.IsTruthy(e.evaluate(node.Condition)) {
			e.execute(node.Body)
		}
	case *parser.FunctionStatementNode:
		// The function value captures the environment in effect right
		// now; defining the name first is what makes recursion work.
		fn := function.NewFunction(node, e.Scp, false)
		e.Scp.Define(node.Name.Literal, fn)
	case *parser.ReturnStatementNode:
		e.executeReturn(node)
	case *parser.ClassStatementNode:
		e.executeClassDeclaration(node)
	}
}

// executeVarDeclaration evaluates the initializer (or defaults to nil)
// and defines the name in the current environment.
func (e *Evaluator) executeVarDeclaration(node *parser.DeclarativeStatementNode) {
	var value objects.LoxObject = &objects.Nil{}
	if node.Initializer != nil {
		value = e.evaluate(node.Initializer)
	}
	e.Scp.Define(node.Name.Literal, value)
}

// executeBlock runs statements in the given environment, restoring the
// previous environment on every exit path: normal completion, a return
// unwind, or a runtime error propagating upward.
func (e *Evaluator) executeBlock(statements []parser.StatementNode, blockScope *scope.Scope) {
	previous := e.Scp
	defer func() {
		e.Scp = previous
	}()

	e.Scp = blockScope
	for _, stmt := range statements {
		e.execute(stmt)
	}
}

// executeReturn evaluates the return value (nil for a bare return) and
// unwinds to the enclosing function call.
func (e *Evaluator) executeReturn(node *parser.ReturnStatementNode) {
	var value objects.LoxObject = &objects.Nil{}
	if node.Value != nil {
		value = e.evaluate(node.Value)
	}
	panic(&returnSignal{Value: value})
}

// executeClassDeclaration builds the class object and binds it to its
// name. The name is defined before the methods are built so methods can
// refer to the class itself.
func (e *Evaluator) executeClassDeclaration(node *parser.ClassStatementNode) {
	e.Scp.Define(node.Name.Literal, &objects.Nil{})

	methods := make(map[string]*function.Function, len(node.Methods))
	for _, method := range node.Methods {
		isInitializer := method.Name.Literal == "init"
		methods[method.Name.Literal] = function.NewFunction(method, e.Scp, isInitializer)
	}

	class := function.NewClass(node.Name.Literal, methods)
	e.Scp.Assign(node.Name, class)
}
