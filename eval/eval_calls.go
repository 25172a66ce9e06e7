/*
File   : golox/eval/eval_calls.go
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

// evaluateCall evaluates the callee, then each argument in source order,
// then dispatches on the kind of callable. Calling any other value is a
// runtime error. Arity mismatches report at the call's closing paren.
func (e *Evaluator) evaluateCall(node *parser.CallExpressionNode) objects.LoxObject {
	callee := e.evaluate(node.Callee)

	arguments := make([]objects.LoxObject, 0, len(node.Arguments))
	for _, argument := range node.Arguments {
		arguments = append(arguments, e.evaluate(argument))
	}

	switch fn := callee.(type) {
	case *function.Function:
		e.checkArity(node, fn.Arity(), len(arguments))
		return e.callFunction(fn, arguments)
	case *function.Class:
		e.checkArity(node, fn.Arity(), len(arguments))
		return e.callClass(fn, arguments)
	case *objects.Builtin:
		e.checkArity(node, fn.Arity(), len(arguments))
		return fn.Fn(arguments)
	}
	panic(objects.NewRuntimeError(node.Paren, "Can only call functions and classes."))
}

// checkArity verifies the argument count against the declared arity,
// reporting mismatches at the closing paren token.
func (e *Evaluator) checkArity(node *parser.CallExpressionNode, arity, got int) {
	if got != arity {
		panic(objects.NewRuntimeError(node.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", arity, got)))
	}
}

// callFunction invokes a user-defined function: a fresh environment is
// chained onto the function's captured closure, the parameters are bound
// to the (already evaluated) arguments, and the body runs with block
// semantics. A return statement anywhere in the body unwinds to here and
// yields the returned value; falling off the end yields nil. The unwind
// is absorbed at this boundary only — never inside nested blocks.
//
// An initializer always yields the bound instance, even on a bare
// return; the resolver has already rejected `return value;` in init.
func (e *Evaluator) callFunction(fn *function.Function, arguments []objects.LoxObject) (result objects.LoxObject) {
	defer func() {
		if recovered := recover(); recovered != nil {
			ret, ok := recovered.(*returnSignal)
			if !ok {
				panic(recovered)
			}
			if fn.IsInitializer {
				result = fn.Closure.GetAt(0, "this")
				return
			}
			result = ret.Value
		}
	}()

	callScope := scope.NewScope(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callScope.Define(param.Literal, arguments[i])
	}

	e.executeBlock(fn.Declaration.Body.Statements, callScope)

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this")
	}
	return &objects.Nil{}
}

// callClass constructs a new instance and, when the class declares an
// init method, runs it bound to the fresh instance. Construction always
// evaluates to the instance.
func (e *Evaluator) callClass(class *function.Class, arguments []objects.LoxObject) objects.LoxObject {
	instance := function.NewInstance(class)
	if initializer := class.FindMethod("init"); initializer != nil {
		e.callFunction(initializer.Bind(instance), arguments)
	}
	return instance
}
