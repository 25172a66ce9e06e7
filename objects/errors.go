/*
File   : golox/objects/errors.go
Author : ostin-r
*/
package objects

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
)

// RuntimeError represents an error raised while evaluating a Lox program:
// an operand type mismatch, an undefined variable, a call of something
// that is not callable, a wrong argument count, or an undefined property.
//
// The token identifies the operator or name responsible for the error so
// diagnostics can point at a source line. Runtime errors unwind to the
// top-level Interpret call, which reports them in the form
// "MESSAGE\n[line N]".
type RuntimeError struct {
	Token   lexer.Token // The token responsible for the error
	Message string      // Human-readable description
}

// NewRuntimeError creates a RuntimeError anchored at the given token.
func NewRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

// Error implements the error interface with the runtime diagnostic
// format: the message, then the line of the responsible token.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}
