/*
File   : golox/scope/scope.go
Author : ostin-r
*/
package scope

import (
	"fmt"

	"github.com/ostin-r/golox/lexer"
	"github.com/ostin-r/golox/objects"
)

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own name→value bindings and can reach
// bindings in enclosing scopes through the parent link. The chain strictly
// points from child to parent, so cycles cannot form; several closures may
// share the same scope, keeping it alive past the block that created it.
//
// This structure supports:
// - Variable shadowing: inner scopes can redefine names from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function, loop, etc.) gets its own scope
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the globals (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: creates the globals (root) scope with no parent
// - parent != nil: creates a nested scope that can access parent variables
//
// Parameters:
//   - parent: The enclosing scope, or nil for the globals scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globals := NewScope(nil)          // Create the globals scope
//	functionScope := NewScope(globals) // Create a function scope
//	blockScope := NewScope(functionScope) // Create a nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// Define creates (or overwrites) a binding in this scope.
//
// Define writes unconditionally: redeclaring a name at the same level is
// permitted, matching the language semantics of var. It never touches
// parent scopes; use Assign for updates that should follow the chain.
func (s *Scope) Define(name string, value objects.LoxObject) {
	s.Variables[name] = value
}

// Get looks up a variable by name, walking the chain outward from this
// scope. The name token identifies the use-site for error reporting.
//
// A miss after the whole chain has been searched raises a runtime error
// at the token's line, which unwinds to the top-level Interpret call.
func (s *Scope) Get(name lexer.Token) objects.LoxObject {
	if value, ok := s.Variables[name.Literal]; ok {
		return value
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	panic(objects.NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Literal)))
}

// Assign updates an existing variable in the scope where it is bound,
// walking the chain outward. Unlike Define it never creates a binding;
// assigning an undefined name raises a runtime error at the token.
//
// This is what lets closures mutate variables of their captured scope:
// the update lands on the original binding, not on a copy.
func (s *Scope) Assign(name lexer.Token, value objects.LoxObject) {
	if _, ok := s.Variables[name.Literal]; ok {
		s.Variables[name.Literal] = value
		return
	}
	if s.Parent != nil {
		s.Parent.Assign(name, value)
		return
	}
	panic(objects.NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Literal)))
}

// GetAt reads a binding exactly depth hops up the chain, without
// searching. The resolver guarantees the binding exists at that depth,
// so GetAt operates on the target scope's map directly.
func (s *Scope) GetAt(depth int, name string) objects.LoxObject {
	return s.Ancestor(depth).Variables[name]
}

// AssignAt writes a binding exactly depth hops up the chain, without
// searching. Symmetric to GetAt.
func (s *Scope) AssignAt(depth int, name string, value objects.LoxObject) {
	s.Ancestor(depth).Variables[name] = value
}

// Ancestor follows exactly depth parent links and returns that scope.
// Depth 0 is the receiver itself.
func (s *Scope) Ancestor(depth int) *Scope {
	scp := s
	for i := 0; i < depth; i++ {
		scp = scp.Parent
	}
	return scp
}
