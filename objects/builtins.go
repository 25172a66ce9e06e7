/*
File   : golox/objects/builtins.go
Author : ostin-r
*/
package objects

import "fmt"

// Builtin represents a native function implemented in Go and exposed to
// Lox programs through the globals environment.
//
// Fields:
//   - Name: the name the function is bound to in globals
//   - ArityCount: the declared number of parameters, checked at call sites
//   - Fn: the Go implementation; receives already-evaluated arguments
type Builtin struct {
	Name       string                      // Name bound in globals
	ArityCount int                         // Declared parameter count
	Fn         func(args []LoxObject) LoxObject // Host implementation
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() LoxType {
	return BuiltinType
}

// ToString renders the conventional native-function form, e.g.
// "<native fn clock>".
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<native fn %s>", b.Name)
}

// Arity returns the declared parameter count of the builtin.
func (b *Builtin) Arity() int {
	return b.ArityCount
}
