/*
File   : golox/parser/printer.go
Author : ostin-r
*/
package parser

import (
	"bytes"
	"fmt"
	"strings"
)

// AstPrinter renders an AST in parenthesized prefix form, one top-level
// statement per line. It backs the `golox parse` debug command and the
// parser snapshot tests; the evaluator never uses it.
//
// Example:
//
//	print 1 + 2 * 3;   =>   (print (+ 1 (* 2 3)))
type AstPrinter struct {
	Buf bytes.Buffer
}

// Print renders the whole program and returns the text.
func (p *AstPrinter) Print(root *RootNode) string {
	p.Buf.Reset()
	for _, stmt := range root.Statements {
		p.Buf.WriteString(p.printStatement(stmt))
		p.Buf.WriteString("\n")
	}
	return p.Buf.String()
}

// PrintExpression renders a single expression subtree.
func (p *AstPrinter) PrintExpression(expr ExpressionNode) string {
	return p.printExpression(expr)
}

func (p *AstPrinter) printStatement(stmt StatementNode) string {
	switch node := stmt.(type) {
	case *ExpressionStatementNode:
		return p.parenthesize("expr", p.printExpression(node.Expr))
	case *PrintStatementNode:
		return p.parenthesize("print", p.printExpression(node.Expr))
	case *DeclarativeStatementNode:
		if node.Initializer == nil {
			return p.parenthesize("var", node.Name.Literal)
		}
		return p.parenthesize("var", node.Name.Literal, p.printExpression(node.Initializer))
	case *BlockStatementNode:
		parts := make([]string, 0, len(node.Statements))
		for _, inner := range node.Statements {
			parts = append(parts, p.printStatement(inner))
		}
		return p.parenthesize("block", parts...)
	case *IfStatementNode:
		if node.Else == nil {
			return p.parenthesize("if", p.printExpression(node.Condition), p.printStatement(node.Then))
		}
		return p.parenthesize("if", p.printExpression(node.Condition),
			p.printStatement(node.Then), p.printStatement(node.Else))
	case *WhileLoopStatementNode:
		return p.parenthesize("while", p.printExpression(node.Condition), p.printStatement(node.Body))
	case *FunctionStatementNode:
		params := make([]string, 0, len(node.Params))
		for _, param := range node.Params {
			params = append(params, param.Literal)
		}
		return p.parenthesize("fun "+node.Name.Literal,
			"("+strings.Join(params, " ")+")", p.printStatement(node.Body))
	case *ReturnStatementNode:
		if node.Value == nil {
			return "(return)"
		}
		return p.parenthesize("return", p.printExpression(node.Value))
	case *ClassStatementNode:
		parts := make([]string, 0, len(node.Methods))
		for _, method := range node.Methods {
			parts = append(parts, p.printStatement(method))
		}
		return p.parenthesize("class "+node.Name.Literal, parts...)
	default:
		return fmt.Sprintf("(? %s)", stmt.Literal())
	}
}

func (p *AstPrinter) printExpression(expr ExpressionNode) string {
	switch node := expr.(type) {
	case *NumberLiteralExpressionNode:
		return node.Value.ToString()
	case *StringLiteralExpressionNode:
		return fmt.Sprintf("%q", node.Value.Value)
	case *BooleanLiteralExpressionNode:
		return node.Token.Literal
	case *NilLiteralExpressionNode:
		return "nil"
	case *ParenthesizedExpressionNode:
		return p.parenthesize("group", p.printExpression(node.Expr))
	case *UnaryExpressionNode:
		return p.parenthesize(node.Operation.Literal, p.printExpression(node.Right))
	case *BinaryExpressionNode:
		return p.parenthesize(node.Operation.Literal,
			p.printExpression(node.Left), p.printExpression(node.Right))
	case *LogicalExpressionNode:
		return p.parenthesize(node.Operation.Literal,
			p.printExpression(node.Left), p.printExpression(node.Right))
	case *VariableExpressionNode:
		return node.Name.Literal
	case *AssignExpressionNode:
		return p.parenthesize("=", node.Name.Literal, p.printExpression(node.Value))
	case *CallExpressionNode:
		parts := []string{p.printExpression(node.Callee)}
		for _, arg := range node.Arguments {
			parts = append(parts, p.printExpression(arg))
		}
		return p.parenthesize("call", parts...)
	case *GetExpressionNode:
		return p.parenthesize(".", p.printExpression(node.Object), node.Name.Literal)
	case *SetExpressionNode:
		return p.parenthesize("=",
			p.parenthesize(".", p.printExpression(node.Object), node.Name.Literal),
			p.printExpression(node.Value))
	case *ThisExpressionNode:
		return "this"
	default:
		return fmt.Sprintf("(? %s)", expr.Literal())
	}
}

// parenthesize joins a head and its parts into one parenthesized form.
func (p *AstPrinter) parenthesize(head string, parts ...string) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(head)
	for _, part := range parts {
		sb.WriteString(" ")
		sb.WriteString(part)
	}
	sb.WriteString(")")
	return sb.String()
}
