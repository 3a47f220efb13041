/*
File    : cromfront/parser/parser_literals.go
Package : parser

Literal prefix rules of spec.md §4.H: every literal token wraps into a
LITERAL node carrying the annotation its kind implies, with value.New
performing base decoding and overflow detection per spec.md §4.D.
A single parseLiteralPrefix serves every literal kind and returns a leaf
node carrying a types.Annotation; the value.Value it computes is used
only for its diagnostics and is not stored on the node.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
	"github.com/rtmath/cromfront/value"
)

// literalAnnotation returns the default (unsized-context) annotation for
// a literal token kind. Where a literal appears in a declaration with an
// explicit type (e.g. `i8 x = 200;`), the declaration's own annotation —
// not this default — governs overflow detection against a narrower
// bit-width; see checkAssignmentCompatibility.
func literalAnnotation(kind token.Kind, line int) types.Annotation {
	switch kind {
	case token.INT_LITERAL:
		return types.NewScalar(types.KindInt, true, 64, line)
	case token.HEX_LITERAL, token.BINARY_LITERAL:
		return types.NewScalar(types.KindInt, false, 64, line)
	case token.FLOAT_LITERAL:
		return types.NewScalar(types.KindFloat, false, 64, line)
	case token.CHAR_LITERAL:
		return types.NewScalar(types.KindChar, false, 8, line)
	case token.BOOL_LITERAL:
		return types.NewScalar(types.KindBool, false, 0, line)
	case token.STRING_LITERAL:
		return types.NewScalar(types.KindString, false, 0, line)
	default:
		return types.None
	}
}

// parseLiteralPrefix builds a LITERAL node from the current token,
// computing its Value via value.New for overflow detection.
func parseLiteralPrefix(p *Parser, _ bool) *ast.Node {
	tok := p.current
	ann := literalAnnotation(tok.Kind, tok.Line())
	_ = value.New(p.Sink, ann, tok, p.OverflowIsFatal) // diagnostics only; folded value is re-derived by later passes from the node
	return ast.New(ast.LITERAL, tok, ann)
}
