/*
File    : cromfront/lexer/lexer.go
Package : lexer

Package lexer implements spec.md §4.B: a byte-stream scanner producing a
lazy token stream, one Token per NextToken call, terminated by an
infinite run of EOF tokens. Same field layout (Src, Current, Position,
SrcLength, Line, Column) and Advance/Peek/IgnoreWhitespace shape as a
classic hand-rolled scanner, retargeted at this language's surface
syntax: explicit-width numeric type keywords, `0x`/`b'…'` literal forms
with length limits, no escape sequences in string/char literals, and a
single `::` token with no member-access `.`/`...` range operators (this
language has neither).
*/
package lexer

import (
	"fmt"
	"unicode"

	"github.com/rtmath/cromfront/token"
)

// Default literal length ceilings from spec.md §4.B.3/§4.B.5. Exported so
// the config package can override them on a constructed Lexer without an
// import cycle back into lexer.
const (
	DefaultMaxHexLiteralLength    = 18 // "0x" + 16 hex digits
	DefaultMaxBinaryLiteralLength = 67 // "b'" + 64 bits + "'"
)

// Lexer scans Crom source text into tokens. Filename is carried so every
// emitted token.Position carries an origin file, per spec.md §3.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
	Filename  string

	MaxHexLiteralLength    int
	MaxBinaryLiteralLength int
}

// New returns a Lexer positioned at the start of src.
func New(src, filename string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:                    src,
		Current:                current,
		Position:               0,
		SrcLength:              len(src),
		Line:                   1,
		Column:                 1,
		Filename:               filename,
		MaxHexLiteralLength:    DefaultMaxHexLiteralLength,
		MaxBinaryLiteralLength: DefaultMaxBinaryLiteralLength,
	}
}

func (lex *Lexer) pos() token.Position {
	return token.Position{Filename: lex.Filename, Line: lex.Line, Column: lex.Column}
}

func (lex *Lexer) errorToken(format string, args ...any) token.Token {
	return token.New(token.ERROR, fmt.Sprintf(format, args...), lex.pos())
}

// Peek returns the next byte without consuming it, or 0 at end of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes the current byte and moves to the next one.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// skipWhitespaceAndComments implements spec.md §4.B.1: spaces/tabs/CR are
// silently skipped, newlines bump Line and reset Column, and "//" begins a
// line comment consumed to end-of-line (there is no block-comment form).
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == '\n':
			lex.Line++
			lex.Advance()
			lex.Column = 1
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// NextToken implements the scan_token() contract of spec.md §4.B: it never
// retries, and once an ERROR token has been returned the caller must abort.
// Calling NextToken repeatedly past EOF keeps returning EOF (spec.md §8
// idempotence property).
func (lex *Lexer) NextToken() token.Token {
	lex.skipWhitespaceAndComments()

	if lex.Current == 0 {
		return token.New(token.EOF, "", lex.pos())
	}

	startPos := lex.pos()

	switch {
	case lex.Current == '0' && lex.Peek() == 'x':
		return lex.readHexLiteral(startPos)
	case isDigit(lex.Current):
		return lex.readDecimalOrFloat(startPos)
	case lex.Current == 'b' && lex.Peek() == '\'':
		return lex.readBinaryLiteral(startPos)
	case isAlpha(lex.Current):
		return lex.readIdentifier(startPos)
	case lex.Current == '\'':
		return lex.readCharLiteral(startPos)
	case lex.Current == '"':
		return lex.readStringLiteral(startPos)
	default:
		return lex.readOperatorOrPunctuation(startPos)
	}
}
