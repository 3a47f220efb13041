/*
File    : cromfront/cerr/errors.go
Package : cerr

Package cerr is the front-end's diagnostic sink: a closed Kind
enumeration plus a structured Diagnostic, so a caller can filter or
count by category instead of grepping messages.
*/
package cerr

import (
	"fmt"

	"github.com/rtmath/cromfront/token"
)

// Kind classifies a Diagnostic. The set mirrors the error taxonomy of
// spec.md §7 exactly: lex, parse, name, type-disagreement, numeric, and
// internal errors.
type Kind int

const (
	// Lex errors.
	UnterminatedString Kind = iota
	MultiLineString
	HexLiteralTooWide
	BinaryLiteralTooWide
	UnknownCharacter
	StrayColon

	// Parse errors.
	ExpectedToken
	UnknownPrefix
	UnknownInfix
	MalformedControlHead
	StrayOperator

	// Name errors.
	UndeclaredIdentifier
	UndeclaredFunction
	UndefinedFunction
	UninitializedSubscript
	Redeclaration
	DuplicateFunctionDeclaration
	DuplicateParameter
	DuplicateEnumMember
	EmptyStructBody
	CannotAssign

	// Type-disagreement errors.
	TypeDisagreement

	// Numeric errors.
	IntegerOverflow
	FloatOverflow
	FloatUnderflow

	// Internal (non-recoverable) errors.
	InternalError
)

var kindNames = map[Kind]string{
	UnterminatedString:          "unterminated string",
	MultiLineString:             "multi-line string",
	HexLiteralTooWide:           "hex literal too wide",
	BinaryLiteralTooWide:        "binary literal too wide",
	UnknownCharacter:            "unknown character",
	StrayColon:                  "stray colon",
	ExpectedToken:                "expected token",
	UnknownPrefix:               "unknown prefix",
	UnknownInfix:                "unknown infix",
	MalformedControlHead:        "malformed control-flow head",
	StrayOperator:               "stray operator",
	UndeclaredIdentifier:        "undeclared identifier",
	UndeclaredFunction:          "undeclared function",
	UndefinedFunction:           "undefined function",
	UninitializedSubscript:      "uninitialized subscript",
	Redeclaration:               "redeclaration",
	DuplicateFunctionDeclaration: "duplicate function declaration",
	DuplicateParameter:          "duplicate parameter",
	DuplicateEnumMember:         "duplicate enum member",
	EmptyStructBody:             "empty struct body",
	CannotAssign:                "cannot assign",
	TypeDisagreement:            "type disagreement",
	IntegerOverflow:             "integer overflow",
	FloatOverflow:               "float overflow",
	FloatUnderflow:              "float underflow",
	InternalError:               "internal error",
}

// String renders a Kind for diagnostics and test assertions.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error kind"
}

// Fatal reports whether diagnostics of this Kind are always non-recoverable.
// Only InternalError is; everything else is reported and parsing continues.
func (k Kind) Fatal() bool {
	return k == InternalError
}

// Diagnostic is a single positional error or warning, pinned to the token
// that produced it.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Position token.Position
}

// String renders a Diagnostic as "[position] kind: message", where
// position is "file:line:column" (or "line:column" with no file name).
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Position, d.Kind, d.Message)
}

// fatalError is the panic value thrown by Sink.Fatal and recovered at the
// top of Parser.Parse, matching the error_and_exit / error_at_token split
// of spec.md §6: positional diagnostics continue parsing, fatal ones abort.
type fatalError struct {
	Diagnostic Diagnostic
}

// Sink accumulates diagnostics emitted during a single lex+parse pass, a
// structured replacement for a bare Parser.Errors []string field.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty Sink ready to collect diagnostics.
func NewSink() *Sink {
	return &Sink{}
}

// Emit records a positional, non-fatal diagnostic and returns it so callers
// can thread it through without a second lookup.
func (s *Sink) Emit(kind Kind, pos token.Position, format string, args ...any) Diagnostic {
	d := Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Position: pos}
	s.diagnostics = append(s.diagnostics, d)
	return d
}

// EmitAt is a convenience wrapper around Emit that pulls the Position off a
// token, mirroring the spec's error_at_token(tok, fmt, ...) collaborator.
func (s *Sink) EmitAt(kind Kind, tok token.Token, format string, args ...any) Diagnostic {
	return s.Emit(kind, tok.Position, format, args...)
}

// Fatal records an InternalError diagnostic and panics with it. It is
// reached by compiler-internal invariant violations (Value arithmetic on
// mismatched kinds, scope-stack underflow) and, when overflow_is_fatal is
// set, by numeric literal overflow/underflow; it is never called for other
// user-facing lex/parse/name/type errors.
func (s *Sink) Fatal(pos token.Position, format string, args ...any) {
	d := s.Emit(InternalError, pos, format, args...)
	panic(fatalError{Diagnostic: d})
}

// Recover must be deferred at the top of any function that calls Fatal
// indirectly (Parser.Parse). It turns the fatalError panic back into a
// normal diagnostic-collection return instead of crashing the process,
// while letting any other panic propagate untouched.
func Recover() {
	if r := recover(); r != nil {
		if _, ok := r.(fatalError); ok {
			return
		}
		panic(r)
	}
}

// Diagnostics returns every diagnostic recorded so far, in emission order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diagnostics) > 0
}

// Count returns the number of diagnostics recorded, matching spec.md §7's
// requirement that "the final build returns an AST together with an error
// count".
func (s *Sink) Count() int {
	return len(s.diagnostics)
}
