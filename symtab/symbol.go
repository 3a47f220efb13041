/*
File    : cromfront/symtab/symbol.go
Package : symtab

Package symtab implements the Symbol & SymbolTable machinery of spec.md
§3/§4.E: name -> (token, annotation, declaration-state, optional nested
field/parameter tables), and the scope stack that resolves names across
nested blocks, struct bodies, and function bodies.

A runtime environment (name -> evaluated value, with Bind/Assign/LookUp
methods) is the usual shape for an interpreter's scope chain. This
package keeps that same map-chain shape and method names in spirit
(LookUp-style lookups, lazy map initialization) but retargets it at
compile-time symbols with a declaration-state lifecycle instead of
runtime values, per spec.md §3's Symbol lifecycle.
*/
package symtab

import (
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// State is a Symbol's position in its declaration lifecycle.
type State int

const (
	// NoState is the zero value: a Symbol struct that has not been bound
	// to a real declaration (returned only by the ERROR sentinel below).
	NoState State = iota
	// Declared means the name and type are known but there is no value
	// yet (e.g. "i32 x;" or a bodiless function declaration).
	Declared
	// Uninitialized marks a reserved slot created when a function is
	// first referenced by a call before its declaration has been parsed,
	// or while a function's own declaration is being parsed.
	Uninitialized
	// Defined means the symbol has a value: a variable was assigned, a
	// function has a body, or an enum member was given a literal.
	Defined
	// FnParam marks a symbol bound within a function's own parameter
	// table; such symbols never live in the main scope stack.
	FnParam
)

var stateNames = map[State]string{
	NoState:       "none",
	Declared:      "declared",
	Uninitialized: "uninitialized",
	Defined:       "defined",
	FnParam:       "fn_param",
}

// String renders a State for diagnostics.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "invalid-state"
}

// Symbol is one entry in a SymbolTable: the declaring token (pinned for
// diagnostics), its type annotation, its lifecycle State, and — for
// struct and function symbols — the nested table holding its members.
type Symbol struct {
	Token      token.Token
	Annotation types.Annotation
	State      State

	// StructFields holds a struct symbol's field table. Nil for anything
	// that is not a struct type.
	StructFields *Table

	// FnParams holds a function symbol's parameter table, registered via
	// RegisterFnParam. Nil for anything that is not a function.
	FnParams *Table
}

// errSymbol is the sentinel returned by Table.Retrieve when a lookup
// misses, per spec.md §4.E: "if absent returns a sentinel with kind=ERROR".
var errSymbol = Symbol{State: NoState, Annotation: types.Annotation{Ostensible: -1, Actual: -1}}

// IsError reports whether sym is the not-found sentinel.
func (sym Symbol) IsError() bool {
	return sym.Annotation.Actual == -1
}
