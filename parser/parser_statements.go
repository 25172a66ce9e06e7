/*
File   : golox/parser/parser_statements.go
Author : ostin-r
*/
package parser

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
)

// parseDeclaration parses one declaration:
//
//	declaration → classDecl | funDecl | varDecl | statement
//
// This is the recovery boundary for syntax errors: a parse error thrown
// by any nested rule is absorbed here, the parser synchronizes to the
// next statement boundary, and nil is returned so the bad declaration is
// dropped while parsing continues.
func (par *Parser) parseDeclaration() (stmt StatementNode) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if _, ok := recovered.(parseError); !ok {
				panic(recovered)
			}
			par.synchronize()
			stmt = nil
		}
	}()

	if par.match(lexer.CLASS_KEY) {
		return par.parseClassDeclaration()
	}
	if par.match(lexer.FUN_KEY) {
		return par.parseFunction("function")
	}
	if par.match(lexer.VAR_KEY) {
		return par.parseVarDeclaration()
	}
	return par.parseStatement()
}

// parseClassDeclaration parses a class declaration:
//
//	classDecl → "class" IDENT "{" function* "}"
//
// The "class" keyword has already been consumed.
func (par *Parser) parseClassDeclaration() StatementNode {
	name := par.consume(lexer.IDENTIFIER_ID, "Expect class name.")
	par.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	methods := make([]*FunctionStatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		methods = append(methods, par.parseFunction("method"))
	}

	par.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ClassStatementNode{Name: name, Methods: methods}
}

// parseFunction parses a function declaration body shared between named
// functions and class methods:
//
//	function(K) → IDENT "(" params? ")" block
//
// kind is "function" or "method" and only flavors the diagnostics.
// Parameter lists are capped at MAX_ARGUMENTS; exceeding the cap reports
// an error but parsing continues.
func (par *Parser) parseFunction(kind string) *FunctionStatementNode {
	name := par.consume(lexer.IDENTIFIER_ID, fmt.Sprintf("Expect %s name.", kind))
	par.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))

	params := make([]lexer.Token, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= MAX_ARGUMENTS {
				par.reportError(par.peek(), fmt.Sprintf("Can't have more than %d parameters.", MAX_ARGUMENTS))
			}
			params = append(params, par.consume(lexer.IDENTIFIER_ID, "Expect parameter name."))
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	par.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := par.parseBlock()
	return &FunctionStatementNode{Name: name, Params: params, Body: body}
}

// parseVarDeclaration parses a variable declaration:
//
//	varDecl → "var" IDENT ("=" expression)? ";"
//
// The "var" keyword has already been consumed. A missing initializer
// leaves Initializer nil, which the evaluator binds to the nil value.
func (par *Parser) parseVarDeclaration() StatementNode {
	name := par.consume(lexer.IDENTIFIER_ID, "Expect variable name.")

	var initializer ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		initializer = par.parseExpression()
	}

	par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration.")
	return &DeclarativeStatementNode{Name: name, Initializer: initializer}
}

// parseStatement parses one statement:
//
//	statement → printStmt | ifStmt | whileStmt | forStmt
//	          | returnStmt | block | exprStmt
func (par *Parser) parseStatement() StatementNode {
	if par.match(lexer.PRINT_KEY) {
		return par.parsePrintStatement()
	}
	if par.match(lexer.IF_KEY) {
		return par.parseIfStatement()
	}
	if par.match(lexer.WHILE_KEY) {
		return par.parseWhileStatement()
	}
	if par.match(lexer.FOR_KEY) {
		return par.parseForStatement()
	}
	if par.match(lexer.RETURN_KEY) {
		return par.parseReturnStatement()
	}
	if par.match(lexer.LEFT_BRACE) {
		return par.parseBlock()
	}
	return par.parseExpressionStatement()
}

// parsePrintStatement parses `print expression ;`. The "print" keyword
// has already been consumed.
func (par *Parser) parsePrintStatement() StatementNode {
	expr := par.parseExpression()
	par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after value.")
	return &PrintStatementNode{Expr: expr}
}

// parseIfStatement parses `if (cond) then (else other)?`.
// The else binds to the nearest preceding if.
func (par *Parser) parseIfStatement() StatementNode {
	par.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := par.parseExpression()
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := par.parseStatement()
	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.parseStatement()
	}
	return &IfStatementNode{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// parseWhileStatement parses `while (cond) body`.
func (par *Parser) parseWhileStatement() StatementNode {
	par.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := par.parseExpression()
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := par.parseStatement()
	return &WhileLoopStatementNode{Condition: condition, Body: body}
}

// parseForStatement parses a C-style for loop and desugars it into a
// while loop:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond ?: true) { body; incr; } }
//
// so the evaluator never sees a dedicated for node. Each clause is
// optional; a missing condition loops forever.
func (par *Parser) parseForStatement() StatementNode {
	par.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer StatementNode
	if par.match(lexer.SEMICOLON_DELIM) {
		initializer = nil
	} else if par.match(lexer.VAR_KEY) {
		initializer = par.parseVarDeclaration()
	} else {
		initializer = par.parseExpressionStatement()
	}

	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		condition = par.parseExpression()
	}
	par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition.")

	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		increment = par.parseExpression()
	}
	par.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := par.parseStatement()

	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}

	if condition == nil {
		condition = &BooleanLiteralExpressionNode{
			Token: lexer.NewToken(lexer.TRUE_KEY, "true"),
			Value: &objects.Boolean{Value: true},
		}
	}
	var loop StatementNode = &WhileLoopStatementNode{Condition: condition, Body: body}

	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}
	return loop
}

// parseReturnStatement parses `return expression? ;`. The "return"
// keyword has already been consumed; its token is kept for diagnostics
// (return outside a function is a static error caught by the resolver).
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.previous()

	var value ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		value = par.parseExpression()
	}

	par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after return value.")
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

// parseBlock parses `{ declaration* }`. The opening brace has already
// been consumed.
func (par *Parser) parseBlock() *BlockStatementNode {
	statements := make([]StatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	par.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return &BlockStatementNode{Statements: statements}
}

// parseExpressionStatement parses `expression ;`.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	par.consume(lexer.SEMICOLON_DELIM, "Expect ';' after expression.")
	return &ExpressionStatementNode{Expr: expr}
}
