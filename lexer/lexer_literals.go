/*
File    : cromfront/lexer/lexer_literals.go
Package : lexer

Literal scanning: hex/binary/decimal/float numerics, identifiers and
keywords, char and string literals — spec.md §4.B.3-8. readNumber/
readIdentifier/readStringLiteral style helpers, sized to this language's
literal forms: a length-limited "0x" hex run, a length-limited "b'…'"
binary run, and no escape-sequence handling at all in char/string
literals (spec.md Non-goals).
*/
package lexer

import "github.com/rtmath/cromfront/token"

// readHexLiteral consumes "0x" followed by hex digits. The stored
// Literal holds only the digit run (the "0x" prefix is stripped), so
// value.literalBase can decode purely from the token's Kind. The total
// lexeme length, prefix included, is checked against MaxHexLiteralLength
// per spec.md §4.B.3.
func (lex *Lexer) readHexLiteral(startPos token.Position) token.Token {
	lex.Advance() // consume '0'
	lex.Advance() // consume 'x'

	digitsStart := lex.Position
	for isHexDigit(lex.Current) {
		lex.Advance()
	}
	digits := lex.Src[digitsStart:lex.Position]

	if 2+len(digits) > lex.MaxHexLiteralLength {
		return lex.errorToken("hex literal exceeds maximum length of %d characters", lex.MaxHexLiteralLength)
	}
	return token.New(token.HEX_LITERAL, digits, startPos)
}

// readBinaryLiteral consumes "b'" followed by '0'/'1' digits and a
// closing "'". The stored Literal holds only the digit run. Total lexeme
// length (b' + digits + ') is checked against MaxBinaryLiteralLength per
// spec.md §4.B.5.
func (lex *Lexer) readBinaryLiteral(startPos token.Position) token.Token {
	lex.Advance() // consume 'b'
	lex.Advance() // consume opening '\''

	digitsStart := lex.Position
	for isBinaryDigit(lex.Current) {
		lex.Advance()
	}
	digits := lex.Src[digitsStart:lex.Position]

	if lex.Current != '\'' {
		return lex.errorToken("unterminated binary literal")
	}
	lex.Advance() // consume closing '\''

	if 3+len(digits) > lex.MaxBinaryLiteralLength {
		return lex.errorToken("binary literal exceeds maximum length of %d characters", lex.MaxBinaryLiteralLength)
	}
	return token.New(token.BINARY_LITERAL, digits, startPos)
}

// readDecimalOrFloat consumes a run of digits, optionally promoted to a
// FLOAT_LITERAL by a ".digits" suffix, per spec.md §4.B.4.
func (lex *Lexer) readDecimalOrFloat(startPos token.Position) token.Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}

	isFloat := false
	if lex.Current == '.' && isDigit(lex.Peek()) {
		isFloat = true
		lex.Advance() // consume '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	literal := lex.Src[start:lex.Position]
	if isFloat {
		return token.New(token.FLOAT_LITERAL, literal, startPos)
	}
	return token.New(token.INT_LITERAL, literal, startPos)
}

// readIdentifier consumes an identifier or keyword, per spec.md §4.B.6:
// leading alpha/underscore, then alphanumeric/underscore; checked against
// the closed keyword set (including true/false, whose Kind is
// BOOL_LITERAL, and the type keywords, whose Kind is the keyword itself).
func (lex *Lexer) readIdentifier(startPos token.Position) token.Token {
	start := lex.Position
	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return token.New(token.LookupIdentifier(literal), literal, startPos)
}

// readCharLiteral consumes 'x' — a single byte, no escapes — per
// spec.md §4.B.7.
func (lex *Lexer) readCharLiteral(startPos token.Position) token.Token {
	lex.Advance() // consume opening quote

	if lex.Current == 0 || lex.Current == '\n' {
		return lex.errorToken("unterminated char literal")
	}
	ch := lex.Current
	lex.Advance()

	if lex.Current != '\'' {
		return lex.errorToken("char literal must be exactly one byte")
	}
	lex.Advance() // consume closing quote

	return token.New(token.CHAR_LITERAL, string(ch), startPos)
}

// readStringLiteral consumes "…" — no embedded newlines, no escapes —
// per spec.md §4.B.8. Reaching EOF or a newline before the closing quote
// is an unterminated/multi-line string error.
func (lex *Lexer) readStringLiteral(startPos token.Position) token.Token {
	lex.Advance() // consume opening quote

	start := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 {
			return lex.errorToken("unterminated string literal")
		}
		if lex.Current == '\n' {
			return lex.errorToken("string literal must not span multiple lines")
		}
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	lex.Advance() // consume closing quote

	return token.New(token.STRING_LITERAL, literal, startPos)
}
