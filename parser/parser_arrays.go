/*
File    : cromfront/parser/parser_arrays.go
Package : parser

The array-subscript continuation of spec.md §4.H: `identifier [ identifier
| int-literal ]`. A parseIndexExpression narrowed from "any expression
may be subscripted" to this grammar's production, which only ever
subscripts a bare identifier or integer literal — never a nested
expression.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
)

// parseArraySubscriptOf implements ArraySubscript of spec.md §4.H. array
// is the already-built IDENTIFIER/DECLARATION node for the array name;
// identTok is its token, used to report an undeclared array name.
func parseArraySubscriptOf(p *Parser, array *ast.Node, identTok token.Token) *ast.Node {
	openTok := identTok
	sym := p.Scopes.Retrieve(identTok.Literal)
	if sym.IsError() {
		p.Sink.Emit(cerr.UndeclaredIdentifier, identTok.Position, "undeclared identifier %q", identTok.Literal)
	}

	p.advance() // current: '['
	p.advance() // current: the subscript token (identifier or int-literal)

	var index *ast.Node
	switch p.current.Kind {
	case token.IDENTIFIER:
		subTok := p.current
		subSym := p.Scopes.Retrieve(subTok.Literal)
		if subSym.IsError() {
			p.Sink.Emit(cerr.UndeclaredIdentifier, subTok.Position, "undeclared identifier %q", subTok.Literal)
		} else if subSym.State != symtab.Defined {
			p.Sink.Emit(cerr.UninitializedSubscript, subTok.Position,
				"%q must be defined before use as a subscript", subTok.Literal)
		}
		index = ast.New(ast.IDENTIFIER, subTok, subSym.Annotation)
	case token.INT_LITERAL:
		index = parseLiteralPrefix(p, false)
	default:
		p.Sink.Emit(cerr.ExpectedToken, p.current.Position,
			"expected identifier or integer literal in subscript, got %s", p.current.Kind)
		index = ast.New(ast.LITERAL, p.current, array.Annotation)
	}

	if !p.expect(token.RIGHT_BRACKET) {
		return array
	}

	return ast.New(ast.ARRAY_SUBSCRIPT, openTok, array.Annotation, ast.At(ast.LEFT, array), ast.At(ast.RIGHT, index))
}
