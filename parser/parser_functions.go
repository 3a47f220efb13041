/*
File    : cromfront/parser/parser_functions.go
Package : parser

Function declaration and function call productions of spec.md §4.H.
A parseFunctionDeclaration/parseCallExpression pair, with runtime
closure objects replaced by this front-end's symtab.Symbol.FnParams
table plus a CHAIN-shaped parameter/argument list.

A function's own parameter table doubles as its body's shadow table:
while parsing the body, identifier lookups are redirected there so a
parameter reads like any other in-scope name, without pushing an extra
block scope on top of it (mirroring how a struct body shadows its field
table, per spec.md §4.E).
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// chainOf folds nodes into a CHAIN spine (each node at LEFT, the next
// CHAIN at RIGHT, terminated by an empty CHAIN), the same shape
// parseChain builds for statement sequences, reused here for parameter
// and argument lists.
func chainOf(nodes []*ast.Node) *ast.Node {
	tail := ast.New(ast.CHAIN, token.Token{}, types.None)
	for i := len(nodes) - 1; i >= 0; i-- {
		tail = ast.New(ast.CHAIN, token.Token{}, types.None, ast.At(ast.LEFT, nodes[i]), ast.At(ast.RIGHT, tail))
	}
	return tail
}

// parseFunctionDeclaration implements the function-declaration production
// of spec.md §4.H: `identifier ( params ) :: return-type [ ; | { body } ]`.
// p.current is '(' on entry. A bodiless form leaves the symbol DECLARED;
// a body promotes it to DEFINED. Two bodiless declarations, or a
// re-definition, are errors; so is a duplicate parameter name.
func parseFunctionDeclaration(p *Parser, identTok token.Token) *ast.Node {
	existing := p.Scopes.Retrieve(identTok.Literal)

	fnParams := symtab.NewTable()
	wasDeclared := !existing.IsError() && existing.State == symtab.Declared
	wasDefined := !existing.IsError() && existing.State == symtab.Defined

	p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: existing.Annotation, State: symtab.Declared, FnParams: fnParams})

	var paramNodes []*ast.Node
	for p.next.Kind != token.RIGHT_PAREN {
		p.advance() // current: a parameter's type keyword

		if !token.IsTypeKeyword(p.current.Kind) {
			p.Sink.Emit(cerr.ExpectedToken, p.current.Position,
				"expected a type keyword in parameter list, got %s", p.current.Kind)
			break
		}
		paramAnn := annotationForTypeKeyword(p.current.Kind, p.current.Line())

		if !p.expect(token.IDENTIFIER) {
			break
		}
		paramTok := p.current
		if fnParams.IsIn(paramTok.Literal) {
			p.Sink.Emit(cerr.DuplicateParameter, paramTok.Position, "duplicate parameter %q", paramTok.Literal)
		}
		p.Scopes.RegisterFnParam(identTok.Literal, symtab.Symbol{Token: paramTok, Annotation: paramAnn, State: symtab.FnParam})
		paramNodes = append(paramNodes, ast.New(ast.FUNCTION_PARAM, paramTok, paramAnn))

		if p.next.Kind == token.COMMA {
			p.advance()
		}
	}
	if !p.expect(token.RIGHT_PAREN) {
		return ast.New(ast.FUNCTION, identTok, types.None)
	}
	if !p.expect(token.COLON_SEPARATOR) {
		return ast.New(ast.FUNCTION, identTok, types.None)
	}
	if !token.IsTypeKeyword(p.next.Kind) {
		p.Sink.Emit(cerr.MalformedControlHead, p.next.Position,
			"expected a return type after '::', got %s", p.next.Kind)
		return ast.New(ast.FUNCTION, identTok, types.None)
	}
	p.advance() // current: the return-type keyword
	retTok := p.current
	retAnn := annotationForTypeKeyword(retTok.Kind, retTok.Line()).AsFunction()
	retNode := ast.New(ast.FUNCTION_RETURN_TYPE, retTok, retAnn)
	paramsChain := chainOf(paramNodes)

	if p.next.Kind == token.SEMICOLON {
		p.advance() // current: ';'
		if wasDeclared {
			p.Sink.Emit(cerr.DuplicateFunctionDeclaration, identTok.Position,
				"duplicate bodiless declaration of %q", identTok.Literal)
		}
		if wasDefined {
			p.Sink.Emit(cerr.DuplicateFunctionDeclaration, identTok.Position,
				"declaration of already-defined function %q", identTok.Literal)
		}
		p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: retAnn, State: symtab.Declared, FnParams: fnParams})
		return ast.New(ast.FUNCTION, identTok, retAnn, ast.At(ast.LEFT, paramsChain), ast.At(ast.MIDDLE, retNode))
	}

	if wasDefined {
		p.Sink.Emit(cerr.DuplicateFunctionDeclaration, identTok.Position,
			"redefinition of %q", identTok.Literal)
	}
	p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: retAnn, State: symtab.Defined, FnParams: fnParams})

	p.Scopes.Shadow(fnParams)
	defer p.Scopes.Unshadow()
	bodyChain := p.parseChainBlock()
	bodyNode := ast.New(ast.FUNCTION_BODY, bodyChain.Token, types.None, ast.At(ast.LEFT, bodyChain))

	return ast.New(ast.FUNCTION, identTok, retAnn,
		ast.At(ast.LEFT, paramsChain), ast.At(ast.MIDDLE, retNode), ast.At(ast.RIGHT, bodyNode))
}

// parseFunctionCall implements the function-call production of spec.md
// §4.H: a comma-separated argument list of identifiers (possibly nested
// calls) and literals, tolerating a trailing comma before `)`. p.current
// is '(' on entry. A name not yet in scope at all is reserved here as an
// Uninitialized placeholder — a forward reference to a declaration the
// parser hasn't reached yet — so a later call to the same still-undefined
// name reports "not yet defined" rather than "undeclared". Calling an
// undeclared name, or one that is DECLARED but not DEFINED, is an error.
func parseFunctionCall(p *Parser, identTok token.Token) *ast.Node {
	sym := p.Scopes.Retrieve(identTok.Literal)
	if sym.IsError() {
		sym = p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: types.None, State: symtab.Uninitialized})
	}
	switch {
	case sym.IsError():
		p.Sink.Emit(cerr.UndeclaredFunction, identTok.Position, "call of undeclared function %q", identTok.Literal)
	case sym.State == symtab.Uninitialized:
		p.Sink.Emit(cerr.UndefinedFunction, identTok.Position,
			"call of %q, forward-referenced before its declaration has been parsed", identTok.Literal)
	case sym.State != symtab.Defined:
		p.Sink.Emit(cerr.UndefinedFunction, identTok.Position,
			"call of %q, which is declared but not yet defined", identTok.Literal)
	}

	var args []*ast.Node
	for p.next.Kind != token.RIGHT_PAREN {
		p.advance() // current: the first token of an argument
		argTok := p.current
		value := p.parseExpression(LOWEST)
		args = append(args, ast.New(ast.FUNCTION_ARGUMENT, argTok, value.Annotation, ast.At(ast.LEFT, value)))
		if p.next.Kind == token.COMMA {
			p.advance()
		}
	}
	if !p.expect(token.RIGHT_PAREN) {
		return ast.New(ast.FUNCTION_CALL, identTok, sym.Annotation)
	}

	return ast.New(ast.FUNCTION_CALL, identTok, sym.Annotation, ast.At(ast.LEFT, chainOf(args)))
}
