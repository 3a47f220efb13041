/*
File    : cromfront/symtab/table.go
Package : symtab
*/
package symtab

// Table maps an identifier lexeme to its Symbol. Two tables are always
// semantically distinct even when they hold the same keys — struct field
// tables and function parameter tables are never confused with the scope
// stack's block tables, even though all three share this type.
type Table struct {
	symbols map[string]Symbol
}

// NewTable returns an empty Table ready for use.
func NewTable() *Table {
	return &Table{symbols: make(map[string]Symbol)}
}

// Add inserts sym under its token's lexeme, or overwrites the existing
// entry if one is present. Insertion is idempotent on update: re-adding
// the same name with an advanced declaration State simply replaces the
// prior Symbol, matching spec.md §3/§4.E. The stored Symbol is returned.
func (tbl *Table) Add(sym Symbol) Symbol {
	if tbl.symbols == nil {
		tbl.symbols = make(map[string]Symbol)
	}
	tbl.symbols[sym.Token.Literal] = sym
	return sym
}

// Retrieve looks up name by lexeme equality. If absent it returns the
// ERROR sentinel (Symbol.IsError() reports true) rather than a second
// return value, per spec.md §4.E.
func (tbl *Table) Retrieve(name string) Symbol {
	if tbl.symbols == nil {
		return errSymbol
	}
	if sym, ok := tbl.symbols[name]; ok {
		return sym
	}
	return errSymbol
}

// IsIn reports whether name has an entry in tbl.
func (tbl *Table) IsIn(name string) bool {
	if tbl.symbols == nil {
		return false
	}
	_, ok := tbl.symbols[name]
	return ok
}

// RegisterFnParam appends param to the parameter table of the function
// symbol named fnName, looked up in tbl. It is a no-op if fnName does not
// resolve to a symbol with a non-nil FnParams table; callers are expected
// to have already inserted the function symbol with an initialized
// FnParams table before registering its parameters.
func (tbl *Table) RegisterFnParam(fnName string, param Symbol) {
	fn := tbl.Retrieve(fnName)
	if fn.IsError() || fn.FnParams == nil {
		return
	}
	fn.FnParams.Add(param)
}
