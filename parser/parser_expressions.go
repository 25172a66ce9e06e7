/*
File   : golox/parser/parser_expressions.go
Author : ostin-r
*/
package parser

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
)

// parseExpression parses one expression. Assignment is the lowest
// precedence level:
//
//	expression → assignment
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseAssignment()
}

// parseAssignment parses right-associative assignment:
//
//	assignment → (call ".") IDENT "=" assignment
//	           | IDENT "=" assignment
//	           | logic_or
//
// The left-hand side is parsed as an ordinary expression first; when an
// "=" follows, the parsed expression is rewritten into an assignment
// target. A Var rewrites to Assign, a property Get rewrites to Set, and
// anything else is reported at the "=" token without throwing, so
// parsing continues in place.
func (par *Parser) parseAssignment() ExpressionNode {
	expr := par.parseOr()

	if par.match(lexer.ASSIGN_OP) {
		equals := par.previous()
		value := par.parseAssignment()

		switch target := expr.(type) {
		case *VariableExpressionNode:
			return &AssignExpressionNode{Name: target.Name, Value: value, Id: nextNodeID()}
		case *GetExpressionNode:
			return &SetExpressionNode{Object: target.Object, Name: target.Name, Value: value}
		}

		par.reportError(equals, "Invalid assignment target.")
	}

	return expr
}

// parseOr parses short-circuiting disjunction:
//
//	logic_or → logic_and ("or" logic_and)*
func (par *Parser) parseOr() ExpressionNode {
	expr := par.parseAnd()

	for par.match(lexer.OR_KEY) {
		operator := par.previous()
		right := par.parseAnd()
		expr = &LogicalExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseAnd parses short-circuiting conjunction:
//
//	logic_and → equality ("and" equality)*
func (par *Parser) parseAnd() ExpressionNode {
	expr := par.parseEquality()

	for par.match(lexer.AND_KEY) {
		operator := par.previous()
		right := par.parseEquality()
		expr = &LogicalExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseEquality parses the equality operators:
//
//	equality → comparison (("!=" | "==") comparison)*
func (par *Parser) parseEquality() ExpressionNode {
	expr := par.parseComparison()

	for par.match(lexer.BANG_EQ_OP, lexer.EQ_OP) {
		operator := par.previous()
		right := par.parseComparison()
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseComparison parses the ordering operators:
//
//	comparison → term ((">" | ">=" | "<" | "<=") term)*
func (par *Parser) parseComparison() ExpressionNode {
	expr := par.parseTerm()

	for par.match(lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP) {
		operator := par.previous()
		right := par.parseTerm()
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseTerm parses addition and subtraction:
//
//	term → factor (("+" | "-") factor)*
func (par *Parser) parseTerm() ExpressionNode {
	expr := par.parseFactor()

	for par.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		operator := par.previous()
		right := par.parseFactor()
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseFactor parses multiplication and division:
//
//	factor → unary (("*" | "/") unary)*
func (par *Parser) parseFactor() ExpressionNode {
	expr := par.parseUnary()

	for par.match(lexer.STAR_OP, lexer.SLASH_OP) {
		operator := par.previous()
		right := par.parseUnary()
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}
	return expr
}

// parseUnary parses the prefix operators:
//
//	unary → ("!" | "-") unary | call
func (par *Parser) parseUnary() ExpressionNode {
	if par.match(lexer.BANG_OP, lexer.MINUS_OP) {
		operator := par.previous()
		right := par.parseUnary()
		return &UnaryExpressionNode{Operation: operator, Right: right}
	}
	return par.parseCall()
}

// parseCall parses call and property-access chains:
//
//	call → primary ("(" arguments? ")" | "." IDENT)*
//
// Calls and gets are left-associative, so `a.b(c).d` parses naturally by
// folding each suffix onto the expression built so far.
func (par *Parser) parseCall() ExpressionNode {
	expr := par.parsePrimary()

	for {
		if par.match(lexer.LEFT_PAREN) {
			expr = par.finishCall(expr)
		} else if par.match(lexer.DOT_OP) {
			name := par.consume(lexer.IDENTIFIER_ID, "Expect property name after '.'.")
			expr = &GetExpressionNode{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr
}

// finishCall parses the argument list of a call whose "(" has already
// been consumed. The closing paren token is stored on the node so arity
// errors report its line. Argument lists are capped at MAX_ARGUMENTS;
// exceeding the cap reports an error but parsing continues.
func (par *Parser) finishCall(callee ExpressionNode) ExpressionNode {
	arguments := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= MAX_ARGUMENTS {
				par.reportError(par.peek(), fmt.Sprintf("Can't have more than %d arguments.", MAX_ARGUMENTS))
			}
			arguments = append(arguments, par.parseExpression())
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	paren := par.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpressionNode{Callee: callee, Paren: paren, Arguments: arguments}
}

// parsePrimary parses the highest-precedence forms:
//
//	primary → NUMBER | STRING | "true" | "false" | "nil"
//	        | "this" | IDENT | "(" expression ")"
//
// Any other token cannot start an expression and is a syntax error.
func (par *Parser) parsePrimary() ExpressionNode {
	switch {
	case par.match(lexer.NUMBER_LIT):
		token := par.previous()
		return &NumberLiteralExpressionNode{
			Token: token,
			Value: &objects.Number{Value: token.Value.(float64)},
		}
	case par.match(lexer.STRING_LIT):
		token := par.previous()
		return &StringLiteralExpressionNode{
			Token: token,
			Value: &objects.String{Value: token.Value.(string)},
		}
	case par.match(lexer.TRUE_KEY):
		return &BooleanLiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: true}}
	case par.match(lexer.FALSE_KEY):
		return &BooleanLiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: false}}
	case par.match(lexer.NIL_LIT):
		return &NilLiteralExpressionNode{Token: par.previous()}
	case par.match(lexer.THIS_KEY):
		return &ThisExpressionNode{Keyword: par.previous(), Id: nextNodeID()}
	case par.match(lexer.IDENTIFIER_ID):
		return &VariableExpressionNode{Name: par.previous(), Id: nextNodeID()}
	case par.match(lexer.LEFT_PAREN):
		expr := par.parseExpression()
		par.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ParenthesizedExpressionNode{Expr: expr}
	}

	panic(par.reportError(par.peek(), "Expect expression."))
}
