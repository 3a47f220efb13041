/*
File    : cromfront/parser/parser_precedence.go
Package : parser

The precedence ladder of spec.md §4.H, low to high: assignment, ternary,
logical, bitwise, term, factor, unary, prefix increment/decrement, array
subscripting. A numeric-constant precedence table with a registerPrefix/
registerInfix registration idiom, collapsed to exactly the bands
spec.md names rather than a finer-grained per-operator C-like ladder.
spec.md §8 requires `&&` and `||` to share one precedence (so
`a && b || c` parses as `(a && b) || c`) and `^ & | << >>` to share
another — the opposite of ranking each operator separately.
*/
package parser

import "github.com/rtmath/cromfront/token"

const (
	LOWEST int = iota * 10
	ASSIGNMENT
	TERNARY
	LOGICAL    // && || == != < >  (also !, as a prefix rule, not infix)
	BITWISE    // ^ & | << >>      (also ~, as a prefix rule, not infix)
	TERM       // + -
	FACTOR     // * / %
	UNARY      // prefix - ! ~
	PREFIX_INC // prefix ++ --
	SUBSCRIPT  // array subscripting
)

// registerRules wires every prefix and infix production into p's tables:
// one call site names the whole grammar.
func (p *Parser) registerRules() {
	// Type-keyword declarations.
	p.registerPrefix(parseTypeKeywordPrefix,
		token.I8, token.I16, token.I32, token.I64,
		token.U8, token.U16, token.U32, token.U64,
		token.F32, token.F64, token.CHAR_TYPE, token.STRING_TYPE,
		token.BOOL_TYPE, token.VOID)

	p.registerPrefix(parseIdentifierPrefix, token.IDENTIFIER)

	p.registerPrefix(parseLiteralPrefix,
		token.INT_LITERAL, token.HEX_LITERAL, token.BINARY_LITERAL,
		token.FLOAT_LITERAL, token.CHAR_LITERAL, token.BOOL_LITERAL,
		token.STRING_LITERAL)

	p.registerPrefix(parseGroupedOrTernary, token.LEFT_PAREN)

	p.registerPrefix(parseUnaryPrefix, token.BANG, token.MINUS, token.TILDE)
	p.registerPrefix(parsePrefixIncDec, token.PLUS_PLUS, token.MINUS_MINUS)

	p.registerPrefix(parseEnumDeclaration, token.ENUM)
	p.registerPrefix(parseStructDeclaration, token.STRUCT)

	p.registerPrefix(parseBreakStatement, token.BREAK)
	p.registerPrefix(parseContinueStatement, token.CONTINUE)
	p.registerPrefix(parseReturnStatement, token.RETURN)

	p.registerPrefix(parseIfExpression, token.IF)
	p.registerPrefix(parseWhileExpression, token.WHILE)
	p.registerPrefix(parseForExpression, token.FOR)

	// Infix productions.
	p.registerInfix(parseBinaryOp, TERM, token.PLUS, token.MINUS)
	p.registerInfix(parseBinaryOp, FACTOR, token.STAR, token.SLASH, token.PERCENT)
	p.registerInfix(parseBinaryOp, LOGICAL,
		token.AND_AND, token.OR_OR, token.EQUALITY, token.NOT_EQUAL,
		token.LESS, token.GREATER, token.LESS_EQUAL, token.GREATER_EQUAL)
	p.registerInfix(parseBinaryOp, BITWISE,
		token.CARET, token.AMP, token.PIPE, token.SHIFT_LEFT, token.SHIFT_RIGHT)

	// `=`, the compound-assignment operators, `(`, `[`, and postfix
	// `++`/`--` are NOT registered as generic infix operators: spec.md
	// §4.H wires them as disjoint continuations handled directly inside
	// continueIdentifier, since only an identifier (never an arbitrary
	// expression) may be assigned to, called, subscripted, or incremented.
	// Those continuations consume their whole production — operator and
	// right-hand side alike — before the prefix rule returns, so the
	// generic Pratt infix loop in parseExpression never needs to see
	// these token kinds.
}
