/*
File   : golox/parser/parser.go
Author : ostin-r
*/

/*
Package parser implements a recursive-descent parser for the Lox
programming language.

The parser converts the token stream from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Declarations (classes, functions, variables)
- Statements (print, if, while, for, return, blocks)
- Expressions with full precedence climbing (assignment through primary)
- Property access and assignment-target rewriting
- Operator precedence and associativity

Key features:
- One parsing method per grammar rule, lowest precedence first
- Error collection (doesn't stop at the first error)
- Panic-mode recovery: a syntax error unwinds out of the current
  declaration, then the parser synchronizes at the next statement
  boundary and keeps going, so several errors surface in a single pass
- `for` loops desugar to `while` during parsing
*/
package parser

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
)

// MAX_ARGUMENTS caps the length of argument and parameter lists.
// Exceeding the cap reports an error but does not stop parsing.
const MAX_ARGUMENTS = 255

// parseError is the sentinel used for panic-mode error recovery. It is
// thrown out of the rule that detected the syntax error and absorbed in
// declaration(), which synchronizes and continues.
type parseError struct{}

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Tokens []lexer.Token // The full token sequence, ending in EOF

	// Collect parsing diagnostics instead of stopping at the first error.
	// This allows reporting multiple errors in a single parse. Lexical
	// errors recorded by the lexer are carried over so that callers see
	// the whole static picture in one place.
	Errors []string

	current int // Index of the next token to consume
}

// NewParser creates and initializes a new Parser instance for the given
// source text. It runs the lexer immediately; lexical diagnostics are
// folded into the parser's error list.
//
// Parameters:
//
//	src - The Lox source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance.
//	Call Parse() to produce the AST.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	tokens := lex.ScanTokens()

	par := &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
	par.Errors = append(par.Errors, lex.Errors...)
	return par
}

// Parse parses the whole token stream and returns the program root.
// The top level is a sequence of declarations until EOF. Declarations
// that fail to parse are dropped after synchronization, so the returned
// root holds every statement that parsed cleanly.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}
	return root
}

// HasErrors reports whether any static errors were recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the collected static diagnostics.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// ---------------------------------------------------------------------------
// Token stream helpers
// ---------------------------------------------------------------------------

// match consumes the next token when its type is one of the given types.
func (par *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// check reports whether the next token has the given type, without
// consuming it.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	if par.isAtEnd() {
		return false
	}
	return par.peek().Type == tokenType
}

// advance consumes and returns the current token.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.current++
	}
	return par.previous()
}

// isAtEnd reports whether the parser has reached the sentinel EOF token.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// peek returns the next token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.current]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.current-1]
}

// consume expects the next token to have the given type and consumes it.
// Anything else is a syntax error reported at the offending token, which
// throws into panic-mode recovery.
func (par *Parser) consume(tokenType lexer.TokenType, message string) lexer.Token {
	if par.check(tokenType) {
		return par.advance()
	}
	panic(par.reportError(par.peek(), message))
}

// reportError records a static diagnostic for the given token and returns
// the recovery sentinel. Callers that can recover locally (for example
// an invalid assignment target) simply ignore the returned sentinel
// instead of panicking with it.
func (par *Parser) reportError(token lexer.Token, message string) parseError {
	par.Errors = append(par.Errors, fmt.Sprintf("[line %d] Error: %s", token.Line, message))
	return parseError{}
}

// synchronize discards tokens until the parser reaches a likely statement
// boundary: just past a semicolon, or just before a token that starts a
// statement. This bounds the blast radius of a syntax error so the rest
// of the program can still be checked.
func (par *Parser) synchronize() {
	par.advance()

	for !par.isAtEnd() {
		if par.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}
