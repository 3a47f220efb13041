/*
File    : cromfront/parser/parser_loops.go
Package : parser

`while` and `for` productions of spec.md §4.H. `for` is desugared at
parse time rather than carried as its own node kind: it is rewritten
into `statement(init); while (cond) { block; post }`, since spec.md
§4.H's closed Node kind list has no FOR entry — only WHILE.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// parseWhileExpression implements `while expr { block }` — note the
// condition carries no parentheses, unlike `if`. An optional trailing
// `;` is tolerated by the caller's selfDelimiting check.
func parseWhileExpression(p *Parser, _ bool) *ast.Node {
	whileTok := p.current
	p.advance() // current: the first token of the condition
	cond := p.parseExpression(LOWEST)

	body := p.parseBlock() // current is the last token of cond, so next == '{'

	return ast.New(ast.WHILE, whileTok, types.None, ast.At(ast.LEFT, cond), ast.At(ast.MIDDLE, body))
}

// parseForExpression implements `for (init-stmt; cond-stmt; post-expr) {
// block }`. spec.md §4.H's Node kind list has no FOR entry, only WHILE,
// so the desugaring "statement(init); while(cond) { block; post }" is
// folded into a single WHILE node: RIGHT carries the init statement (an
// ordinary `while` leaves RIGHT nil), LEFT the condition, and MIDDLE the
// body with post spliced onto its tail. One scope is pushed around the
// whole loop, with init and body sharing a single block scope.
func parseForExpression(p *Parser, _ bool) *ast.Node {
	forTok := p.current
	if !p.expect(token.LEFT_PAREN) {
		return ast.New(ast.WHILE, forTok, types.None)
	}

	p.Scopes.BeginScope()
	defer p.Scopes.EndScope(p.Sink, forTok.Position)

	p.advance() // current: the first token of the init statement
	initStmt := p.parseStatement()
	p.advance() // current: the first token of the condition

	cond := p.parseExpression(LOWEST)
	if !p.expect(token.SEMICOLON) {
		return ast.New(ast.WHILE, forTok, types.None, ast.At(ast.LEFT, cond), ast.At(ast.RIGHT, initStmt))
	}
	p.advance() // current: the first token of the post expression
	post := p.parseExpression(LOWEST)
	if !p.expect(token.RIGHT_PAREN) {
		return ast.New(ast.WHILE, forTok, types.None, ast.At(ast.LEFT, cond), ast.At(ast.RIGHT, initStmt))
	}

	body := p.parseChainBlock() // current is ')', so next == '{'; scope is the loop's own, already pushed
	postStmt := ast.New(ast.STATEMENT, post.Token, post.Annotation, ast.At(ast.LEFT, post))
	bodyWithPost := appendToChain(body, postStmt)

	return ast.New(ast.WHILE, forTok, types.None,
		ast.At(ast.LEFT, cond), ast.At(ast.MIDDLE, bodyWithPost), ast.At(ast.RIGHT, initStmt))
}

// appendToChain splices extra onto the tail of a CHAIN spine (replacing
// its terminating empty CHAIN), used to add the for-loop's post
// expression as the last statement of its desugared while-body.
func appendToChain(chain *ast.Node, extra *ast.Node) *ast.Node {
	if chain.IsEmptyChain() {
		return ast.New(ast.CHAIN, token.Token{}, types.None,
			ast.At(ast.LEFT, extra), ast.At(ast.RIGHT, ast.New(ast.CHAIN, token.Token{}, types.None)))
	}
	return ast.New(ast.CHAIN, token.Token{}, types.None,
		ast.At(ast.LEFT, chain.Left()), ast.At(ast.RIGHT, appendToChain(chain.Right(), extra)))
}
