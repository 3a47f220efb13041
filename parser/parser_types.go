/*
File    : cromfront/parser/parser_types.go
Package : parser

The type-keyword prefix rule of spec.md §4.H: `i8`…`string`/`bool`/`void`
optionally followed by `[int-literal]` to make an array annotation, then
an IDENTIFIER naming the declared symbol. This language's explicit-width
type keywords feed a types.Annotation instead of a bare string tag.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// annotationForTypeKeyword maps a type-keyword token.Kind to the
// types.Annotation it introduces, per spec.md §3.
func annotationForTypeKeyword(kind token.Kind, line int) types.Annotation {
	switch kind {
	case token.I8:
		return types.NewScalar(types.KindInt, true, 8, line)
	case token.I16:
		return types.NewScalar(types.KindInt, true, 16, line)
	case token.I32:
		return types.NewScalar(types.KindInt, true, 32, line)
	case token.I64:
		return types.NewScalar(types.KindInt, true, 64, line)
	case token.U8:
		return types.NewScalar(types.KindInt, false, 8, line)
	case token.U16:
		return types.NewScalar(types.KindInt, false, 16, line)
	case token.U32:
		return types.NewScalar(types.KindInt, false, 32, line)
	case token.U64:
		return types.NewScalar(types.KindInt, false, 64, line)
	case token.F32:
		return types.NewScalar(types.KindFloat, false, 32, line)
	case token.F64:
		return types.NewScalar(types.KindFloat, false, 64, line)
	case token.CHAR_TYPE:
		return types.NewScalar(types.KindChar, false, 8, line)
	case token.STRING_TYPE:
		return types.NewScalar(types.KindString, false, 0, line)
	case token.BOOL_TYPE:
		return types.NewScalar(types.KindBool, false, 0, line)
	case token.VOID:
		return types.NewScalar(types.KindVoid, false, 0, line)
	default:
		return types.None
	}
}

// parseTypeKeywordPrefix implements the type-keyword production of
// spec.md §4.H. An optional `[N]` makes the annotation an array; the
// identifier that follows is inserted into the current scope as
// DECLARED, or, when `(` follows it, reserved as UNINITIALIZED until
// parseFunctionDeclaration records the function's own state. A function
// form over a function symbol already in the current scope completes
// that symbol instead. Any other redeclaration within the same scope is
// reported at the second declaring token, per spec.md §8 scenario 5.
func parseTypeKeywordPrefix(p *Parser, canAssign bool) *ast.Node {
	typeTok := p.current
	ann := annotationForTypeKeyword(typeTok.Kind, typeTok.Line())

	if p.next.Kind == token.LEFT_BRACKET {
		p.advance() // consume '['
		if !p.expect(token.INT_LITERAL) {
			return ast.New(ast.DECLARATION, typeTok, types.None)
		}
		size := parseArraySizeLiteral(p.current.Literal)
		ann = ann.AsArray(size)
		if !p.expect(token.RIGHT_BRACKET) {
			return ast.New(ast.DECLARATION, typeTok, types.None)
		}
	}

	// A function declaration's return type is the type keyword that
	// follows "::" after the parameter list, e.g. "i32 f() :: i32 { ... }";
	// parseFunctionDeclaration consumes it, not this rule, since the
	// identifier always comes first in this grammar's declaration form.
	if !p.expect(token.IDENTIFIER) {
		return ast.New(ast.DECLARATION, typeTok, types.None)
	}
	identTok := p.current

	isFnForm := p.next.Kind == token.LEFT_PAREN
	prior := p.Scopes.Retrieve(identTok.Literal)
	inScope := p.Scopes.IsInCurrentScope(identTok.Literal)
	completesFn := isFnForm && inScope && prior.FnParams != nil
	if inScope && !completesFn {
		p.Sink.Emit(cerr.Redeclaration, identTok.Position,
			"redeclaration of %q in the same scope (first declared at line %d)",
			identTok.Literal, prior.Token.Line())
	}

	ann.DeclaredOnLine = identTok.Line()
	if !isFnForm {
		p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: ann, State: symtab.Declared})
	} else if !completesFn {
		p.Scopes.Add(symtab.Symbol{Token: identTok, Annotation: ann, State: symtab.Uninitialized})
	}

	node := ast.New(ast.DECLARATION, identTok, ann)
	return continueIdentifier(p, node, identTok, canAssign)
}

// parseArraySizeLiteral decodes a fixed array size from an INT_LITERAL
// lexeme. A malformed size here is a compiler-internal bug: the lexer
// guarantees INT_LITERAL lexemes are all-decimal-digit.
func parseArraySizeLiteral(lit string) int {
	n := 0
	for _, c := range lit {
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		n = 1
	}
	return n
}
