/*
File    : cromfront/parser/parser_conditionals.go
Package : parser

The `if`/`else` production of spec.md §4.H: `if ( expr ) { block } [else
(if … | { block })]`, with its own scope pushed around each block. Bare
`else if` chains without extra braces, built into this front-end's
uniform ast.Node (LEFT=condition, MIDDLE=then-branch, RIGHT=else-branch).
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

func parseIfExpression(p *Parser, _ bool) *ast.Node {
	ifTok := p.current

	if !p.expect(token.LEFT_PAREN) {
		return ast.New(ast.IF, ifTok, types.None)
	}
	p.advance() // current: the first token of the condition
	cond := p.parseExpression(LOWEST)
	if !p.expect(token.RIGHT_PAREN) {
		return ast.New(ast.IF, ifTok, types.None, ast.At(ast.LEFT, cond))
	}
	thenBranch := p.parseBlock() // current is ')', so next == '{'

	if p.next.Kind != token.ELSE {
		return ast.New(ast.IF, ifTok, types.None, ast.At(ast.LEFT, cond), ast.At(ast.MIDDLE, thenBranch))
	}
	p.advance() // current: 'else'

	var elseBranch *ast.Node
	if p.next.Kind == token.IF {
		p.advance() // current: 'if'
		elseBranch = parseIfExpression(p, false)
	} else {
		elseBranch = p.parseBlock() // current is 'else', so next == '{'
	}

	return ast.New(ast.IF, ifTok, types.None,
		ast.At(ast.LEFT, cond), ast.At(ast.MIDDLE, thenBranch), ast.At(ast.RIGHT, elseBranch))
}
