/*
File   : golox/eval/eval_expressions.go
Author : ostin-r
*/
package eval

import (
	"fmt"

	"github.com/ostin-r/golox/function"
	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
	"github.com/ostin-r/golox/parser"
)

// evaluate computes the value of one expression, dispatching on the
// concrete node type. Operands always evaluate strictly left to right.
func (e *Evaluator) evaluate(expr parser.ExpressionNode) objects.LoxObject {
	switch node := expr.(type) {
	case *parser.NumberLiteralExpressionNode:
		return node.Value
	case *parser.StringLiteralExpressionNode:
		return node.Value
	case *parser.BooleanLiteralExpressionNode:
		return node.Value
	case *parser.NilLiteralExpressionNode:
		return &objects.Nil{}
	case *parser.ParenthesizedExpressionNode:
		return e.evaluate(node.Expr)
	case *parser.UnaryExpressionNode:
		return e.evaluateUnary(node)
	case *parser.BinaryExpressionNode:
		return e.evaluateBinary(node)
	case *parser.LogicalExpressionNode:
		return e.evaluateLogical(node)
	case *parser.VariableExpressionNode:
		return e.lookupVariable(node.Name, node.Id)
	case *parser.AssignExpressionNode:
		return e.evaluateAssign(node)
	case *parser.CallExpressionNode:
		return e.evaluateCall(node)
	case *parser.GetExpressionNode:
		return e.evaluateGet(node)
	case *parser.SetExpressionNode:
		return e.evaluateSet(node)
	case *parser.ThisExpressionNode:
		return e.lookupVariable(node.Keyword, node.Id)
	}
	panic(fmt.Sprintf("unhandled expression node %T", expr))
}

// evaluateUnary applies ! or - to its operand. Negation requires a
// number; ! applies the truthiness rule and always succeeds.
func (e *Evaluator) evaluateUnary(node *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.evaluate(node.Right)

	switch node.Operation.Type {
	case lexer.MINUS_OP:
		value := e.checkNumberOperand(node.Operation, right)
		return &objects.Number{Value: -value}
	case lexer.BANG_OP:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}
	}
	panic(fmt.Sprintf("unhandled unary operator %s", node.Operation.Literal))
}

// evaluateBinary applies an arithmetic, comparison or equality operator.
// Both operands evaluate before any type checking, left first.
//
// + is overloaded: two strings concatenate, two numbers add, anything
// else is a runtime error. Division follows IEEE-754, so dividing by
// zero produces ±Inf or NaN rather than an error. == and != never fail.
func (e *Evaluator) evaluateBinary(node *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.evaluate(node.Left)
	right := e.evaluate(node.Right)

	switch node.Operation.Type {
	case lexer.PLUS_OP:
		if l, ok := left.(*objects.String); ok {
			if r, ok := right.(*objects.String); ok {
				return &objects.String{Value: l.Value + r.Value}
			}
		}
		if l, ok := left.(*objects.Number); ok {
			if r, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: l.Value + r.Value}
			}
		}
		panic(objects.NewRuntimeError(node.Operation, "Operands must be two numbers or two strings."))
	case lexer.MINUS_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Number{Value: l - r}
	case lexer.STAR_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Number{Value: l * r}
	case lexer.SLASH_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Number{Value: l / r}
	case lexer.GT_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Boolean{Value: l > r}
	case lexer.GE_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Boolean{Value: l >= r}
	case lexer.LT_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Boolean{Value: l < r}
	case lexer.LE_OP:
		l, r := e.checkNumberOperands(node.Operation, left, right)
		return &objects.Boolean{Value: l <= r}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}
	case lexer.BANG_EQ_OP:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}
	}
	panic(fmt.Sprintf("unhandled binary operator %s", node.Operation.Literal))
}

// evaluateLogical implements short-circuiting and/or. The result is the
// raw operand value that decided the outcome, not a coerced boolean:
// `nil or "x"` is "x", `1 and 2` is 2.
func (e *Evaluator) evaluateLogical(node *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.evaluate(node.Left)

	if node.Operation.Type == lexer.OR_KEY {
		if objects.IsTruthy(left) {
			return left
		}
	} else {
		if !objects.IsTruthy(left) {
			return left
		}
	}
	return e.evaluate(node.Right)
}

// evaluateAssign evaluates the value and writes it to the binding the
// resolver selected, or to globals when the side table has no entry.
// The assignment expression evaluates to the written value.
func (e *Evaluator) evaluateAssign(node *parser.AssignExpressionNode) objects.LoxObject {
	value := e.evaluate(node.Value)

	if depth, ok := e.Locals[node.Id]; ok {
		e.Scp.AssignAt(depth, node.Name.Literal, value)
	} else {
		e.Globals.Assign(node.Name, value)
	}
	return value
}

// evaluateGet reads a property off an instance. Property access on any
// non-instance value is a runtime error at the property name.
func (e *Evaluator) evaluateGet(node *parser.GetExpressionNode) objects.LoxObject {
	object := e.evaluate(node.Object)
	if instance, ok := object.(*function.Instance); ok {
		return instance.Get(node.Name)
	}
	panic(objects.NewRuntimeError(node.Name, "Only instances have properties."))
}

// evaluateSet writes a property field on an instance. The object
// evaluates before the value, matching source order.
func (e *Evaluator) evaluateSet(node *parser.SetExpressionNode) objects.LoxObject {
	object := e.evaluate(node.Object)

	instance, ok := object.(*function.Instance)
	if !ok {
		panic(objects.NewRuntimeError(node.Name, "Only instances have fields."))
	}

	value := e.evaluate(node.Value)
	instance.Set(node.Name, value)
	return value
}

// lookupVariable reads a variable through the resolver side table: a
// recorded depth means exactly that many scope hops, no searching; an
// unrecorded expression is a globals lookup by name.
func (e *Evaluator) lookupVariable(name lexer.Token, exprId int) objects.LoxObject {
	if depth, ok := e.Locals[exprId]; ok {
		return e.Scp.GetAt(depth, name.Literal)
	}
	return e.Globals.Get(name)
}
