/*
File    : cromfront/parser/parser_identifiers.go
Package : parser

The IDENTIFIER prefix rule of spec.md §4.H: a name is looked up in the
current and outer scopes, then one of three disjoint continuations is
taken — function call/declaration, array subscript, or
assignment/terse-assignment/increment/read-access, driven by this
front-end's symtab.ScopeStack declaration-state lifecycle and
can_assign discipline rather than a dynamically-typed Env lookup.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
)

// parseIdentifierPrefix resolves a bare identifier use (not preceded by
// a type keyword, so not a fresh declaration) and dispatches to its
// continuation.
func parseIdentifierPrefix(p *Parser, canAssign bool) *ast.Node {
	identTok := p.current
	sym := p.Scopes.Retrieve(identTok.Literal)

	node := ast.New(ast.IDENTIFIER, identTok, sym.Annotation)
	return continueIdentifier(p, node, identTok, canAssign)
}

// continueIdentifier implements the three disjoint continuations shared
// by both a fresh type-keyword declaration and a bare identifier use.
func continueIdentifier(p *Parser, node *ast.Node, identTok token.Token, canAssign bool) *ast.Node {
	switch {
	case p.next.Kind == token.LEFT_PAREN:
		return resolveCallOrDeclaration(p, identTok)

	case p.next.Kind == token.LEFT_BRACKET:
		return parseArraySubscriptOf(p, node, identTok)

	case p.next.Kind == token.PLUS_PLUS || p.next.Kind == token.MINUS_MINUS:
		sym := p.Scopes.Retrieve(identTok.Literal)
		op := p.next
		p.advance()
		if sym.IsError() {
			p.Sink.Emit(cerr.UndeclaredIdentifier, identTok.Position, "undeclared identifier %q", identTok.Literal)
		} else if sym.State != symtab.Defined {
			p.Sink.Emit(cerr.CannotAssign, identTok.Position, "%q must be defined before increment/decrement", identTok.Literal)
		}
		kind := ast.POSTFIX_INCREMENT
		if op.Kind == token.MINUS_MINUS {
			kind = ast.POSTFIX_DECREMENT
		}
		return ast.New(kind, op, sym.Annotation, ast.At(ast.LEFT, node))

	case p.next.Kind == token.ASSIGN:
		if !canAssign {
			p.Sink.Emit(cerr.CannotAssign, p.next.Position, "assignment not allowed in this context")
		}
		if p.Scopes.Retrieve(identTok.Literal).IsError() {
			p.Sink.Emit(cerr.UndeclaredIdentifier, identTok.Position, "undeclared identifier %q", identTok.Literal)
		}
		return parseAssignmentTo(p, identTok, node)

	case isTerseAssignOp(p.next.Kind):
		sym := p.Scopes.Retrieve(identTok.Literal)
		if sym.IsError() {
			p.Sink.Emit(cerr.UndeclaredIdentifier, identTok.Position, "undeclared identifier %q", identTok.Literal)
		} else if sym.State != symtab.Defined {
			p.Sink.Emit(cerr.CannotAssign, identTok.Position, "%q must be defined before compound assignment", identTok.Literal)
		}
		return parseTerseAssignmentTo(p, identTok, node)

	default:
		sym := p.Scopes.Retrieve(identTok.Literal)
		if sym.IsError() {
			p.Sink.Emit(cerr.UndeclaredIdentifier, identTok.Position, "undeclared identifier %q", identTok.Literal)
		}
		return node
	}
}

func isTerseAssignOp(k token.Kind) bool {
	switch k {
	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN,
		token.SHIFT_LEFT_ASSIGN, token.SHIFT_RIGHT_ASSIGN:
		return true
	default:
		return false
	}
}

// resolveCallOrDeclaration disambiguates `identifier (` using the
// exactly-two-tokens-of-lookahead rule of spec.md §5: a type keyword
// right after `(` means a parameter list (declaration); an empty `()`
// immediately followed by `::` also means a declaration; anything else
// is a call.
func resolveCallOrDeclaration(p *Parser, identTok token.Token) *ast.Node {
	p.advance() // current: '('

	if token.IsTypeKeyword(p.next.Kind) {
		return parseFunctionDeclaration(p, identTok)
	}
	if p.next.Kind == token.RIGHT_PAREN && p.afterNext.Kind == token.COLON_SEPARATOR {
		return parseFunctionDeclaration(p, identTok)
	}
	return parseFunctionCall(p, identTok)
}
