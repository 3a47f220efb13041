/*
File    : cromfront/symtab/scope.go
Package : symtab
*/
package symtab

import (
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/token"
)

// ScopeStack is an ordered list of Tables, index 0 being the outermost
// (global) scope and the last index being the innermost. It resolves
// names across nested blocks the way a chain of environments resolves
// names for closures, but over compile-time Symbols instead of runtime
// values.
type ScopeStack struct {
	tables  []*Table
	shadow  *Table
	shadows []*Table
}

// NewScopeStack returns a stack pre-seeded with one global scope at
// depth 0 — the environment chain is never left empty.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{tables: []*Table{NewTable()}}
}

// Depth reports the current nesting depth: 0 is the global scope alone.
func (s *ScopeStack) Depth() int {
	return len(s.tables) - 1
}

// BeginScope pushes a fresh, empty Table as the new innermost scope.
func (s *ScopeStack) BeginScope() {
	s.tables = append(s.tables, NewTable())
}

// EndScope pops the innermost scope. Popping the global scope (depth 0)
// is a compiler-internal error — scope underflow — per spec.md §4.E/§7,
// since every BeginScope the parser issues must be matched by exactly
// one EndScope before the global scope is reached.
func (s *ScopeStack) EndScope(sink *cerr.Sink, pos token.Position) {
	if s.Depth() == 0 {
		sink.Fatal(pos, "symtab: end_scope called at depth 0 (scope underflow)")
		return
	}
	s.tables = s.tables[:len(s.tables)-1]
}

// current returns the innermost active table: the shadow table when one
// is in effect, otherwise the top of the scope stack.
func (s *ScopeStack) current() *Table {
	if s.shadow != nil {
		return s.shadow
	}
	return s.tables[len(s.tables)-1]
}

// Add inserts sym into the current scope (or shadow table, if shadowing).
func (s *ScopeStack) Add(sym Symbol) Symbol {
	return s.current().Add(sym)
}

// Retrieve resolves name starting at the current scope (or shadow table)
// and walking outward to the global scope. Returns the ERROR sentinel if
// no scope holds the name.
func (s *ScopeStack) Retrieve(name string) Symbol {
	if s.shadow != nil {
		if sym := s.shadow.Retrieve(name); !sym.IsError() {
			return sym
		}
	}
	for i := len(s.tables) - 1; i >= 0; i-- {
		if sym := s.tables[i].Retrieve(name); !sym.IsError() {
			return sym
		}
	}
	return errSymbol
}

// IsIn reports whether name resolves anywhere in the stack (or shadow).
func (s *ScopeStack) IsIn(name string) bool {
	return !s.Retrieve(name).IsError()
}

// RegisterFnParam appends param to the parameter table of the function
// symbol named fnName, looked up in the current table (or shadow). It
// forwards to Table.RegisterFnParam, per spec.md §4.E's
// register_fn_param(table, fn_identifier, param) operation.
func (s *ScopeStack) RegisterFnParam(fnName string, param Symbol) {
	s.current().RegisterFnParam(fnName, param)
}

// ExistsInOuterScope reports whether name is declared in any scope other
// than the innermost one — used by the parser to distinguish a fresh
// local declaration from one that merely shadows an enclosing name.
func (s *ScopeStack) ExistsInOuterScope(name string) bool {
	for i := len(s.tables) - 2; i >= 0; i-- {
		if s.tables[i].IsIn(name) {
			return true
		}
	}
	return false
}

// IsInCurrentScope reports whether name is declared in the innermost
// scope (or shadow table) only, ignoring enclosing scopes — the check
// the parser uses to detect redeclaration within one block.
func (s *ScopeStack) IsInCurrentScope(name string) bool {
	return s.current().IsIn(name)
}

// Shadow temporarily redirects Add/Retrieve/IsInCurrentScope at a
// caller-supplied table instead of the scope stack, without pushing a
// new stack frame. The parser uses this while parsing a struct body or
// a function body, whose members or parameters live in their own Table
// (Symbol.StructFields / Symbol.FnParams) rather than in a block scope.
// Shadows nest: Unshadow restores whichever table was active before.
func (s *ScopeStack) Shadow(tbl *Table) {
	s.shadows = append(s.shadows, s.shadow)
	s.shadow = tbl
}

// Unshadow restores the previously active shadow table (or none).
func (s *ScopeStack) Unshadow() {
	if len(s.shadows) == 0 {
		s.shadow = nil
		return
	}
	s.shadow = s.shadows[len(s.shadows)-1]
	s.shadows = s.shadows[:len(s.shadows)-1]
}
