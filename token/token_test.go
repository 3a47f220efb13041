package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"return", RETURN},
		{"i32", I32},
		{"u64", U64},
		{"f32", F32},
		{"char", CHAR_TYPE},
		{"string", STRING_TYPE},
		{"bool", BOOL_TYPE},
		{"void", VOID},
		{"enum", ENUM},
		{"struct", STRUCT},
		{"true", BOOL_LITERAL},
		{"false", BOOL_LITERAL},
		{"myVar", IDENTIFIER},
		{"_count", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdentifier(tt.ident))
		})
	}
}

func TestIsTypeKeyword(t *testing.T) {
	for _, k := range []Kind{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, CHAR_TYPE, STRING_TYPE, BOOL_TYPE, VOID} {
		assert.True(t, IsTypeKeyword(k), "%s should be a type keyword", k)
	}
	for _, k := range []Kind{IF, IDENTIFIER, ENUM, STRUCT, PLUS} {
		assert.False(t, IsTypeKeyword(k), "%s should not be a type keyword", k)
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "5:10", Position{Line: 5, Column: 10}.String())
	assert.Equal(t, "main.crom:5:10", Position{Filename: "main.crom", Line: 5, Column: 10}.String())
}

func TestTokenString(t *testing.T) {
	tok := New(IDENTIFIER, "x", Position{Line: 1, Column: 1})
	assert.Equal(t, "x:identifier", tok.String())
	assert.Equal(t, 1, tok.Line())
}
