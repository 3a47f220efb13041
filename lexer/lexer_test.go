package lexer

import (
	"strings"
	"testing"

	"github.com/rtmath/cromfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(src string) []token.Token {
	lex := New(src, "test.crom")
	var toks []token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.ERROR {
			break
		}
	}
	return toks
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := allTokens("i32 x foo_bar if else while")
	kinds := []token.Kind{token.I32, token.IDENTIFIER, token.IDENTIFIER, token.IF, token.ELSE, token.WHILE, token.EOF}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestDecimalAndFloatLiterals(t *testing.T) {
	toks := allTokens("42 3.5")
	require.Len(t, toks, 3)
	assert.Equal(t, token.INT_LITERAL, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, token.FLOAT_LITERAL, toks[1].Kind)
	assert.Equal(t, "3.5", toks[1].Literal)
}

func TestHexLiteralStripsPrefix(t *testing.T) {
	toks := allTokens("0x1A")
	require.Len(t, toks, 2)
	assert.Equal(t, token.HEX_LITERAL, toks[0].Kind)
	assert.Equal(t, "1A", toks[0].Literal)
}

func TestHexLiteralTooLongIsError(t *testing.T) {
	toks := allTokens("0x" + strings.Repeat("F", 17))
	require.NotEmpty(t, toks)
	assert.Equal(t, token.ERROR, toks[0].Kind)
}

func TestBinaryLiteralStripsDecoration(t *testing.T) {
	toks := allTokens("b'1010'")
	require.Len(t, toks, 2)
	assert.Equal(t, token.BINARY_LITERAL, toks[0].Kind)
	assert.Equal(t, "1010", toks[0].Literal)
}

func TestBinaryLiteralTooLongIsError(t *testing.T) {
	toks := allTokens("b'" + strings.Repeat("1", 65) + "'")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.ERROR, toks[0].Kind)
}

func TestBinaryLiteralUnterminated(t *testing.T) {
	toks := allTokens("b'101")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.ERROR, toks[0].Kind)
}

func TestCharLiteral(t *testing.T) {
	toks := allTokens("'x'")
	require.Len(t, toks, 2)
	assert.Equal(t, token.CHAR_LITERAL, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Literal)
}

func TestStringLiteral(t *testing.T) {
	toks := allTokens(`"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING_LITERAL, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestUnterminatedStringIsError(t *testing.T) {
	toks := allTokens(`"hello`)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.ERROR, toks[0].Kind)
}

func TestMultiLineStringIsError(t *testing.T) {
	toks := allTokens("\"hello\nworld\"")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.ERROR, toks[0].Kind)
}

func TestGreedyMultiCharOperators(t *testing.T) {
	toks := allTokens("<<= << < <= == = != !")
	kinds := []token.Kind{
		token.SHIFT_LEFT_ASSIGN, token.SHIFT_LEFT, token.LESS, token.LESS_EQUAL,
		token.EQUALITY, token.ASSIGN, token.NOT_EQUAL, token.BANG, token.EOF,
	}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestColonSeparatorAndStrayColon(t *testing.T) {
	toks := allTokens("::")
	require.Len(t, toks, 2)
	assert.Equal(t, token.COLON_SEPARATOR, toks[0].Kind)

	strayToks := allTokens(":")
	require.NotEmpty(t, strayToks)
	assert.Equal(t, token.ERROR, strayToks[0].Kind)
}

func TestIncrementDecrementDistinctFromPlusMinus(t *testing.T) {
	toks := allTokens("++ -- + -")
	kinds := []token.Kind{token.PLUS_PLUS, token.MINUS_MINUS, token.PLUS, token.MINUS, token.EOF}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestLineCommentSkipped(t *testing.T) {
	toks := allTokens("i32 x // this is ignored\n;")
	kinds := []token.Kind{token.I32, token.IDENTIFIER, token.SEMICOLON, token.EOF}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	lex := New("i32\nx", "test.crom")
	_ = lex.NextToken() // i32, line 1
	second := lex.NextToken()
	assert.Equal(t, 2, second.Position.Line)
}

func TestWhitespaceRoundTrip(t *testing.T) {
	withSpacing := "i32   x ;\n\n"
	stripped := "i32 x ;"

	a := allTokens(withSpacing)
	b := allTokens(stripped)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Kind, b[i].Kind, "token %d", i)
		assert.Equal(t, a[i].Literal, b[i].Literal, "token %d", i)
	}
}

func TestEOFIdempotent(t *testing.T) {
	lex := New("", "test.crom")
	first := lex.NextToken()
	second := lex.NextToken()
	assert.Equal(t, token.EOF, first.Kind)
	assert.Equal(t, token.EOF, second.Kind)
}
