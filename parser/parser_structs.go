/*
File    : cromfront/parser/parser_structs.go
Package : parser

The `struct` production of spec.md §4.H: `struct IDENTIFIER { field
declarations... }`. Field declarations are ordinary statements parsed
under a shadowed field table, so the same parseTypeKeywordPrefix path
used for local variables also builds a struct's fields — they simply
land in Symbol.StructFields instead of the enclosing scope, via the
ScopeStack's shadow redirection. An empty body is an error. This
front-end's shadow-table discipline replaces a nested runtime Env.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

func parseStructDeclaration(p *Parser, _ bool) *ast.Node {
	structTok := p.current
	if !p.expect(token.IDENTIFIER) {
		return ast.New(ast.DECLARATION, structTok, types.None)
	}
	nameTok := p.current

	if p.Scopes.IsInCurrentScope(nameTok.Literal) {
		p.Sink.Emit(cerr.Redeclaration, nameTok.Position, "redeclaration of %q in the same scope", nameTok.Literal)
	}

	fields := symtab.NewTable()
	structAnn := types.Annotation{Ostensible: types.KindStruct, Actual: types.KindStruct, DeclaredOnLine: nameTok.Line()}
	p.Scopes.Add(symtab.Symbol{Token: nameTok, Annotation: structAnn, State: symtab.Declared, StructFields: fields})

	body := func() *ast.Node {
		p.Scopes.Shadow(fields)
		defer p.Scopes.Unshadow()
		return p.parseChainBlock() // current is nameTok, so next == '{'
	}()

	if body.IsEmptyChain() {
		p.Sink.Emit(cerr.EmptyStructBody, nameTok.Position, "struct %q has an empty body", nameTok.Literal)
	}

	p.Scopes.Add(symtab.Symbol{Token: nameTok, Annotation: structAnn, State: symtab.Defined, StructFields: fields})
	return ast.New(ast.DECLARATION, nameTok, structAnn, ast.At(ast.LEFT, body))
}
