/*
File    : cromfront/parser/parser_enum.go
Package : parser

The `enum` production of spec.md §4.H: `enum IDENTIFIER { identifier (=
literal)? (, identifier …)* }`. Members are inserted into the enclosing
scope as DEFINED symbols (this grammar has no qualified `Enum.Member`
access, so member names must already be unique in that scope), building
a flat member list against this front-end's symtab declaration-state
bookkeeping and ENUM_IDENTIFIER node kind.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

func parseEnumDeclaration(p *Parser, _ bool) *ast.Node {
	enumTok := p.current
	if !p.expect(token.IDENTIFIER) {
		return ast.New(ast.DECLARATION, enumTok, types.None)
	}
	nameTok := p.current

	if p.Scopes.IsInCurrentScope(nameTok.Literal) {
		p.Sink.Emit(cerr.Redeclaration, nameTok.Position, "redeclaration of %q in the same scope", nameTok.Literal)
	}
	enumAnn := types.Annotation{Ostensible: types.KindEnum, Actual: types.KindEnum, DeclaredOnLine: nameTok.Line()}
	p.Scopes.Add(symtab.Symbol{Token: nameTok, Annotation: enumAnn, State: symtab.Declared})

	if !p.expect(token.LEFT_BRACE) {
		return ast.New(ast.DECLARATION, nameTok, enumAnn)
	}

	// A member's Ostensible kind stays enum (it was written as one of this
	// enum's names), but its Actual kind is the underlying integer kind
	// once the enum is resolved, per types.Annotation's Ostensible/Actual
	// split.
	memberAnn := types.Annotation{
		Ostensible: types.KindEnum, Actual: types.KindInt,
		IsSigned: true, BitWidth: 32, DeclaredOnLine: nameTok.Line(),
	}

	seen := symtab.NewTable()
	var members []*ast.Node
	for p.next.Kind != token.RIGHT_BRACE {
		if !p.expect(token.IDENTIFIER) {
			break
		}
		memberTok := p.current
		if seen.IsIn(memberTok.Literal) {
			p.Sink.Emit(cerr.DuplicateEnumMember, memberTok.Position, "duplicate enum member %q", memberTok.Literal)
		}
		seen.Add(symtab.Symbol{Token: memberTok, Annotation: memberAnn, State: symtab.Defined})
		p.Scopes.Add(symtab.Symbol{Token: memberTok, Annotation: memberAnn, State: symtab.Defined})

		var memberNode *ast.Node
		if p.next.Kind == token.ASSIGN {
			p.advance() // current: '='
			p.advance() // current: the assigned literal
			value := parseLiteralPrefix(p, false)
			memberNode = ast.New(ast.ENUM_IDENTIFIER, memberTok, memberAnn, ast.At(ast.LEFT, value))
		} else {
			memberNode = ast.New(ast.ENUM_IDENTIFIER, memberTok, memberAnn)
		}
		members = append(members, memberNode)

		if p.next.Kind == token.COMMA {
			p.advance()
		}
	}
	if !p.expect(token.RIGHT_BRACE) {
		return ast.New(ast.DECLARATION, nameTok, enumAnn, ast.At(ast.LEFT, chainOf(members)))
	}

	p.Scopes.Add(symtab.Symbol{Token: nameTok, Annotation: enumAnn, State: symtab.Defined})
	return ast.New(ast.DECLARATION, nameTok, enumAnn, ast.At(ast.LEFT, chainOf(members)))
}
