/*
File    : cromfront/parser/parser_statements.go
Package : parser

Statement production, break/continue/return, and block-scope helpers of
spec.md §4.H, building spec.md's CHAIN-spine blocks with scope-guard
push/pop around each block.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// parseStatement matches if/while/for, else falls through to an
// expression statement. A trailing `;` is optional when the expression
// is a self-delimiting block (enum/struct/function definitions), per
// spec.md §4.H.
func (p *Parser) parseStatement() *ast.Node {
	tok := p.current
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return ast.New(ast.STATEMENT, tok, types.None)
	}

	if selfDelimiting(expr) {
		if p.next.Kind == token.SEMICOLON {
			p.advance()
		}
	} else if !p.expect(token.SEMICOLON) {
		// Error already recorded by expect; continue at the next token so
		// one missing semicolon doesn't cascade into unrelated errors.
	}

	return ast.New(ast.STATEMENT, tok, expr.Annotation, ast.At(ast.LEFT, expr))
}

// selfDelimiting reports whether a production has already consumed its own
// terminator (a `}`, or the `;` that `break`, `continue` and a bodiless
// function declaration take themselves) and so does not require a
// trailing `;`. A DECLARATION is self-delimiting only
// when it is a struct or enum type declaration (or a function, which is
// itself a DECLARATION continuation) — a plain scalar declaration like
// `i32 x;` still needs its own semicolon.
func selfDelimiting(n *ast.Node) bool {
	switch n.Kind {
	case ast.FUNCTION, ast.IF, ast.WHILE, ast.BREAK, ast.CONTINUE:
		return true
	case ast.DECLARATION:
		return n.Annotation.Actual == types.KindEnum || n.Annotation.Actual == types.KindStruct || n.Annotation.IsFunction
	default:
		return false
	}
}

// parseBlock parses `{ statements... }` as a CHAIN spine, pushing and
// popping a scope around it (a scope-guard, per spec.md §5: every
// begin_scope reaches its matching end_scope on every exit path).
func (p *Parser) parseBlock() *ast.Node {
	p.Scopes.BeginScope()
	defer p.Scopes.EndScope(p.Sink, p.current.Position)
	return p.parseChainBlock()
}

// parseChainBlock parses `{ statements... }` as a CHAIN spine without
// touching the scope stack itself — used by productions (function and
// struct bodies) that manage their own shadow table instead of a pushed
// block scope.
func (p *Parser) parseChainBlock() *ast.Node {
	if !p.expect(token.LEFT_BRACE) {
		return ast.New(ast.CHAIN, p.current, types.None)
	}
	p.advance() // current becomes the first token inside the block (or '}')
	return p.parseChain(token.RIGHT_BRACE)
}

func parseBreakStatement(p *Parser, _ bool) *ast.Node {
	tok := p.current
	if !p.expect(token.SEMICOLON) {
		p.Sink.Emit(cerr.MalformedControlHead, tok.Position, "break must be immediately followed by ';'")
	}
	return ast.New(ast.BREAK, tok, types.None)
}

func parseContinueStatement(p *Parser, _ bool) *ast.Node {
	tok := p.current
	if !p.expect(token.SEMICOLON) {
		p.Sink.Emit(cerr.MalformedControlHead, tok.Position, "continue must be immediately followed by ';'")
	}
	return ast.New(ast.CONTINUE, tok, types.None)
}

func parseReturnStatement(p *Parser, _ bool) *ast.Node {
	tok := p.current
	if p.next.Kind == token.SEMICOLON {
		p.advance()
		return ast.New(ast.RETURN, tok, types.None)
	}
	p.advance()
	value := p.parseExpression(LOWEST)
	return ast.New(ast.RETURN, tok, value.Annotation, ast.At(ast.LEFT, value))
}
