/*
File   : golox/eval/eval_helpers.go
Author : ostin-r
*/
package eval

import (
	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
)

// checkNumberOperand asserts a unary operand is a number and returns its
// value; anything else is a runtime error at the operator token.
func (e *Evaluator) checkNumberOperand(operator lexer.Token, operand objects.LoxObject) float64 {
	if number, ok := operand.(*objects.Number); ok {
		return number.Value
	}
	panic(objects.NewRuntimeError(operator, "Operand must be a number."))
}

// checkNumberOperands asserts both binary operands are numbers and
// returns their values. The check runs after both operands have been
// evaluated, so side effects of the right operand happen even when the
// left one is already known to be invalid.
func (e *Evaluator) checkNumberOperands(operator lexer.Token, left, right objects.LoxObject) (float64, float64) {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if lok && rok {
		return l.Value, r.Value
	}
	panic(objects.NewRuntimeError(operator, "Operands must be numbers."))
}
