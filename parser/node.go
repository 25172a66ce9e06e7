/*
File   : golox/parser/node.go
Author : ostin-r
*/
package parser

import (
	"strings"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
)

// Node: base interface for all nodes of the AST
// Literal(): returns the source-shaped string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker distinguishing statements in the type system
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker distinguishing expressions in the type system
//
// The evaluator and resolver dispatch on the concrete node types with an
// exhaustive type switch; there is no visitor indirection.
type ExpressionNode interface {
	Node
	Expression()
}

// nodeCounter backs the allocation of unique expression identities.
// Var/Assign/This nodes each receive a fresh id at construction; the
// resolver keys its depth side table by that id, so two structurally
// identical nodes in different source positions resolve independently.
// The counter is package-level so ids stay unique across the parses of a
// REPL session, which all feed one evaluator.
var nodeCounter int

// nextNodeID returns a process-unique expression identity.
func nextNodeID() int {
	nodeCounter++
	return nodeCounter
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level declarations in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range root.Statements {
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

// NumberLiteralExpressionNode: represents a number literal
// Example: 42, 3.14
type NumberLiteralExpressionNode struct {
	Token lexer.Token     // The number token with its lexeme
	Value *objects.Number // The decoded number value
}

func (node *NumberLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *NumberLiteralExpressionNode) Expression()     {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello"
type StringLiteralExpressionNode struct {
	Token lexer.Token     // The string token with its lexeme (incl. quotes)
	Value *objects.String // The decoded string value (quotes stripped)
}

func (node *StringLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *StringLiteralExpressionNode) Expression()     {}

// BooleanLiteralExpressionNode: represents a boolean literal
// Example: true, false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token      // The true/false keyword token
	Value *objects.Boolean // The decoded boolean value
}

func (node *BooleanLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *BooleanLiteralExpressionNode) Expression()     {}

// NilLiteralExpressionNode: represents the nil literal
type NilLiteralExpressionNode struct {
	Token lexer.Token // The nil keyword token
}

func (node *NilLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *NilLiteralExpressionNode) Expression()     {}

// ParenthesizedExpressionNode: represents a grouped expression
// Example: (1 + 2)
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (node *ParenthesizedExpressionNode) Literal() string { return "(" + node.Expr.Literal() + ")" }
func (node *ParenthesizedExpressionNode) Expression()     {}

// UnaryExpressionNode: represents a prefix operator application
// Example: -x, !ready
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token (! or -)
	Right     ExpressionNode // The operand
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}
func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents an infix arithmetic/comparison operator
// Example: a + b, x < 10
type BinaryExpressionNode struct {
	Left      ExpressionNode // Left operand, evaluated first
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}
func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode: represents `and` / `or`.
// Distinct from BinaryExpressionNode because both operators short-circuit
// and yield the raw operand value rather than a coerced boolean.
type LogicalExpressionNode struct {
	Left      ExpressionNode // Left operand, always evaluated
	Operation lexer.Token    // The and/or keyword token
	Right     ExpressionNode // Right operand, evaluated only when needed
}

func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}
func (node *LogicalExpressionNode) Expression() {}

// VariableExpressionNode: represents a variable use
// Example: x
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token
	Id   int         // Unique expression identity for the resolver side table
}

func (node *VariableExpressionNode) Literal() string { return node.Name.Literal }
func (node *VariableExpressionNode) Expression()     {}

// AssignExpressionNode: represents an assignment to a variable
// Example: x = 10
type AssignExpressionNode struct {
	Name  lexer.Token    // The identifier token of the target
	Value ExpressionNode // The assigned expression
	Id    int            // Unique expression identity for the resolver side table
}

func (node *AssignExpressionNode) Literal() string {
	return node.Name.Literal + " = " + node.Value.Literal()
}
func (node *AssignExpressionNode) Expression() {}

// CallExpressionNode: represents a call
// Example: f(1, 2)
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression producing the callable
	Paren     lexer.Token      // The closing paren; anchors arity diagnostics
	Arguments []ExpressionNode // Arguments in source order
}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (node *CallExpressionNode) Expression() {}

// GetExpressionNode: represents a property read on an instance
// Example: point.x
type GetExpressionNode struct {
	Object ExpressionNode // The expression producing the instance
	Name   lexer.Token    // The property name token
}

func (node *GetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Literal
}
func (node *GetExpressionNode) Expression() {}

// SetExpressionNode: represents a property write on an instance
// Example: point.x = 3
type SetExpressionNode struct {
	Object ExpressionNode // The expression producing the instance
	Name   lexer.Token    // The property name token
	Value  ExpressionNode // The assigned expression
}

func (node *SetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Literal + " = " + node.Value.Literal()
}
func (node *SetExpressionNode) Expression() {}

// ThisExpressionNode: represents `this` inside a method body
type ThisExpressionNode struct {
	Keyword lexer.Token // The this keyword token
	Id      int         // Unique expression identity for the resolver side table
}

func (node *ThisExpressionNode) Literal() string { return node.Keyword.Literal }
func (node *ThisExpressionNode) Expression()     {}

// ---------------------------------------------------------------------------
// Statement nodes
// ---------------------------------------------------------------------------

// ExpressionStatementNode: an expression evaluated for its side effects
// Example: f();
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() + ";" }
func (node *ExpressionStatementNode) Statement()      {}

// PrintStatementNode: the print statement
// Example: print "hi";
type PrintStatementNode struct {
	Expr ExpressionNode // The expression whose stringified value is emitted
}

func (node *PrintStatementNode) Literal() string { return "print " + node.Expr.Literal() + ";" }
func (node *PrintStatementNode) Statement()      {}

// DeclarativeStatementNode: a variable declaration, with an optional
// initializer. A missing initializer binds nil.
// Example: var x = 10;
type DeclarativeStatementNode struct {
	Name        lexer.Token    // The declared identifier token
	Initializer ExpressionNode // nil when no initializer is present
}

func (node *DeclarativeStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Literal + ";"
	}
	return "var " + node.Name.Literal + " = " + node.Initializer.Literal() + ";"
}
func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited sequence of declarations that
// executes in a fresh child scope
type BlockStatementNode struct {
	Statements []StatementNode
}

func (node *BlockStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (node *BlockStatementNode) Statement() {}

// IfStatementNode: conditional execution with an optional else branch
type IfStatementNode struct {
	Condition ExpressionNode // Selects the branch by truthiness
	Then      StatementNode  // Executed when the condition is truthy
	Else      StatementNode  // nil when no else branch is present
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.Then.Literal()
	if node.Else != nil {
		res += " else " + node.Else.Literal()
	}
	return res
}
func (node *IfStatementNode) Statement() {}

// WhileLoopStatementNode: loops while the condition stays truthy.
// `for` loops desugar to this node during parsing.
type WhileLoopStatementNode struct {
	Condition ExpressionNode
	Body      StatementNode
}

func (node *WhileLoopStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}
func (node *WhileLoopStatementNode) Statement() {}

// FunctionStatementNode: a named function declaration. Also used for the
// methods of a class declaration.
type FunctionStatementNode struct {
	Name   lexer.Token         // The declared name token
	Params []lexer.Token       // Parameter name tokens, capped at 255
	Body   *BlockStatementNode // The function body
}

func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Literal)
	}
	return "fun " + node.Name.Literal + "(" + strings.Join(params, ", ") + ") " + node.Body.Literal()
}
func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: returns from the enclosing function, with an
// optional value (nil value means `return;`).
type ReturnStatementNode struct {
	Keyword lexer.Token    // The return keyword token, anchors diagnostics
	Value   ExpressionNode // nil for a bare return
}

func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}
func (node *ReturnStatementNode) Statement() {}

// ClassStatementNode: a class declaration holding its method declarations
// Example: class Point { init(x, y) { ... } show() { ... } }
type ClassStatementNode struct {
	Name    lexer.Token              // The class name token
	Methods []*FunctionStatementNode // Method declarations in source order
}

func (node *ClassStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("class " + node.Name.Literal + " { ")
	for _, method := range node.Methods {
		sb.WriteString(method.Literal())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (node *ClassStatementNode) Statement() {}
