/*
File   : golox/function/function.go
Author : ostin-r
*/

// Package function holds the runtime values that reference AST nodes:
// user-defined functions, classes and instances. They live apart from the
// objects package because the parser itself depends on objects for
// literal values, and these types depend on the parser's node types.
package function

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
	"github.com/ostin-r/golox/parser"
	"github.com/ostin-r/golox/scope"
)

// Function represents a user-defined function value in Lox.
// It pairs the function's declaration with the scope captured at the
// point the declaration was executed, which is what makes closures work:
// the body later runs in a child of exactly that scope, observing the
// bindings that existed at the definition site (shared, not copied).
//
// Fields:
//   - Declaration: the parsed function statement (name, params, body)
//   - Closure: the scope in effect when the declaration executed
//   - IsInitializer: true for a class's init method; initializers always
//     return the bound instance
type Function struct {
	Declaration   *parser.FunctionStatementNode // Name, parameters and body
	Closure       *scope.Scope                  // Captured defining scope
	IsInitializer bool                          // init methods return `this`
}

// NewFunction creates a function value capturing the given scope.
func NewFunction(declaration *parser.FunctionStatementNode, closure *scope.Scope, isInitializer bool) *Function {
	return &Function{
		Declaration:   declaration,
		Closure:       closure,
		IsInitializer: isInitializer,
	}
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString renders the conventional function form, e.g. "<fn count>".
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Literal)
}

// Arity returns the declared parameter count of the function.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind produces a copy of the function whose closure is a fresh scope
// defining "this" as the given instance. Method access on an instance
// returns the bound copy, so `this` inside the body resolves one scope
// hop outside the call frame.
func (f *Function) Bind(instance *Instance) *Function {
	bound := scope.NewScope(f.Closure)
	bound.Define("this", instance)
	return NewFunction(f.Declaration, bound, f.IsInitializer)
}

// Class represents a class object: a named collection of methods that
// also acts as a callable constructing instances of itself.
type Class struct {
	Name    string               // The declared class name
	Methods map[string]*Function // Method name → function value
}

// NewClass creates a class object with the given method table.
func NewClass(name string, methods map[string]*Function) *Class {
	return &Class{Name: name, Methods: methods}
}

// GetType returns the type identifier for this Class object.
func (c *Class) GetType() objects.LoxType {
	return objects.ClassType
}

// ToString renders the class name, matching how print shows classes.
func (c *Class) ToString() string {
	return c.Name
}

// FindMethod looks up a method by name, returning nil when absent.
func (c *Class) FindMethod(name string) *Function {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	return nil
}

// Arity returns the parameter count of the class's initializer, or zero
// when the class declares no init method.
func (c *Class) Arity() int {
	if initializer := c.FindMethod("init"); initializer != nil {
		return initializer.Arity()
	}
	return 0
}

// Instance represents an instance of a Lox class. State lives in the
// Fields map; behavior lives on the class and is bound on access.
type Instance struct {
	Class  *Class                       // The instantiating class
	Fields map[string]objects.LoxObject // Per-instance property storage
}

// NewInstance creates an empty instance of the given class.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]objects.LoxObject),
	}
}

// GetType returns the type identifier for this Instance object.
func (i *Instance) GetType() objects.LoxType {
	return objects.InstanceType
}

// ToString renders the conventional instance form, e.g. "Point instance".
func (i *Instance) ToString() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}

// Get reads a property. Fields shadow methods; a method hit returns a
// copy bound to this instance. An unknown name is a runtime error at the
// property token.
func (i *Instance) Get(name lexer.Token) objects.LoxObject {
	if value, ok := i.Fields[name.Literal]; ok {
		return value
	}
	if method := i.Class.FindMethod(name.Literal); method != nil {
		return method.Bind(i)
	}
	panic(objects.NewRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Literal)))
}

// Set writes a property field unconditionally; Lox allows creating new
// fields by assignment.
func (i *Instance) Set(name lexer.Token, value objects.LoxObject) {
	i.Fields[name.Literal] = value
}
