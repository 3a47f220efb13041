/*
File    : cromfront/parser/parser_assignments.go
Package : parser

Assignment and terse-assignment productions of spec.md §4.H: `=`
transitions the target symbol to DEFINED; compound-assignment operators
additionally require the target was already DEFINED. Both are
right-associative (recurse with their own precedence, not precedence+1).
A pure AST production over the symtab.ScopeStack lifecycle, with no
runtime Env to mutate.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
	"github.com/rtmath/cromfront/value"
)

func parseAssignmentTo(p *Parser, identTok token.Token, target *ast.Node) *ast.Node {
	p.advance() // current becomes the '=' token
	opTok := p.current
	p.advance() // current becomes the first token of the right-hand side

	rhs := p.parseExpression(ASSIGNMENT)

	checkAssignmentCompatibility(p, target, rhs)
	markDefined(p, identTok)
	return ast.New(ast.ASSIGNMENT, opTok, target.Annotation, ast.At(ast.LEFT, target), ast.At(ast.RIGHT, rhs))
}

// checkAssignmentCompatibility implements spec.md §8 scenario 2's
// TYPE_DISAGREEMENT check: a literal (or any expression) assigned to a
// declared name whose kind doesn't match is an error. When the two kinds
// do agree and the right-hand side is a bare literal, the literal is
// re-decoded under the target's own (possibly narrower) annotation so
// overflow is detected against the declared bit width rather than the
// literal's unsized default — e.g. a u64-declared hex literal that
// overflows 64 bits, per spec.md §8 scenario 7.
func checkAssignmentCompatibility(p *Parser, target *ast.Node, rhs *ast.Node) {
	if rhs == nil || target.Annotation.Actual == types.KindNone || rhs.Annotation.Actual == types.KindNone {
		return
	}
	if target.Annotation.Actual != rhs.Annotation.Actual {
		p.Sink.Emit(cerr.TypeDisagreement, rhs.Token.Position,
			"cannot assign a %s value to %q, declared %s", rhs.Annotation.Actual, target.Token.Literal, target.Annotation.Actual)
		return
	}
	if rhs.Kind == ast.LITERAL && target.Annotation.IsNumeric() {
		value.New(p.Sink, target.Annotation, rhs.Token, p.OverflowIsFatal)
	}
}

func parseTerseAssignmentTo(p *Parser, identTok token.Token, target *ast.Node) *ast.Node {
	p.advance() // current becomes the compound-assignment operator token
	opTok := p.current
	p.advance() // current becomes the first token of the right-hand side

	rhs := p.parseExpression(ASSIGNMENT)

	checkAssignmentCompatibility(p, target, rhs)
	markDefined(p, identTok)
	return ast.New(ast.TERSE_ASSIGNMENT, opTok, target.Annotation, ast.At(ast.LEFT, target), ast.At(ast.RIGHT, rhs))
}

// markDefined promotes an existing symbol to DEFINED — a one-way
// transition per spec.md §4.E ("DECLARED -> DEFINED but never the
// reverse"). A miss (undeclared identifier) was already reported by the
// caller and is left alone here.
func markDefined(p *Parser, identTok token.Token) {
	sym := p.Scopes.Retrieve(identTok.Literal)
	if sym.IsError() {
		return
	}
	sym.State = symtab.Defined
	p.Scopes.Add(sym)
}
