/*
File    : cromfront/parser/parser_expressions.go
Package : parser

The arithmetic/comparison/logical/bitwise infix rules, unary prefix
rules, prefix increment/decrement, and the parenthesized-expression
(with optional ternary fold) production of spec.md §4.H, built into
this front-end's uniform ast.Node with a BINARY_OP/UNARY_OP kind tag.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/token"
)

// parseBinaryOp implements every infix rule of spec.md §4.H: arithmetic,
// comparison, logical, and bitwise operators all produce a BINARY_OP
// node whose RIGHT child is parsed one precedence level tighter (left
// associativity is the default for every binary operator in this
// grammar — only assignment is right-associative).
func parseBinaryOp(p *Parser, left *ast.Node) *ast.Node {
	opTok := p.current
	prec := p.precedence[opTok.Kind]
	p.advance()
	right := p.parseExpression(prec + 1)
	return ast.New(ast.BINARY_OP, opTok, left.Annotation, ast.At(ast.LEFT, left), ast.At(ast.RIGHT, right))
}

// parseUnaryPrefix implements `!`, `-`, `~` — each produces a UNARY_OP
// node whose LEFT child is the operand, parsed at UNARY precedence.
func parseUnaryPrefix(p *Parser, _ bool) *ast.Node {
	opTok := p.current
	p.advance()
	operand := p.parseExpression(UNARY)
	return ast.New(ast.UNARY_OP, opTok, operand.Annotation, ast.At(ast.LEFT, operand))
}

// parsePrefixIncDec implements prefix `++`/`--`.
func parsePrefixIncDec(p *Parser, _ bool) *ast.Node {
	opTok := p.current
	kind := ast.PREFIX_INCREMENT
	if opTok.Kind == token.MINUS_MINUS {
		kind = ast.PREFIX_DECREMENT
	}
	p.advance()
	operand := p.parseExpression(PREFIX_INC)
	return ast.New(kind, opTok, operand.Annotation, ast.At(ast.LEFT, operand))
}

// parseGroupedOrTernary implements `( expr )`, folding into a ternary-if
// when a `?` immediately follows the closing paren, per spec.md §4.H.
// The fold reuses the IF node kind — spec.md's ternary is literally an
// "if" shape at expression position (condition/then/else), not a
// separate AST kind.
func parseGroupedOrTernary(p *Parser, _ bool) *ast.Node {
	openTok := p.current
	p.advance() // current becomes the first token of the inner expression

	inner := p.parseExpression(LOWEST)
	if !p.expect(token.RIGHT_PAREN) {
		return inner
	}

	if p.next.Kind != token.QUESTION {
		return inner
	}
	p.advance() // current becomes '?'
	p.advance() // current becomes the first token of the then-branch
	thenBranch := p.parseExpression(TERNARY)

	// The lexer's only colon-shaped token is "::" (a lone ':' is a lex
	// error, per spec.md §4.B.9), so the ternary's then/else separator
	// reuses COLON_SEPARATOR rather than introducing a single-colon token.
	if !p.expect(token.COLON_SEPARATOR) {
		return inner
	}
	p.advance() // current becomes the first token of the else-branch
	elseBranch := p.parseExpression(TERNARY)

	return ast.New(ast.IF, openTok, thenBranch.Annotation,
		ast.At(ast.LEFT, inner), ast.At(ast.MIDDLE, thenBranch), ast.At(ast.RIGHT, elseBranch))
}
