/*
File    : cromfront/config/config.go
Package : config

Compiler-limits configuration, loadable from an optional YAML file via
gopkg.in/yaml.v3, per SPEC_FULL.md §2.3.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rtmath/cromfront/lexer"
	"github.com/rtmath/cromfront/parser"
)

// Limits holds the tunables spec.md leaves as fixed constants: literal
// length ceilings (§4.B.3, §4.B.5) and whether numeric overflow halts
// compilation or is merely reported.
type Limits struct {
	MaxHexLiteralLength    int  `yaml:"max_hex_literal_length"`
	MaxBinaryLiteralLength int  `yaml:"max_binary_literal_length"`
	OverflowIsFatal        bool `yaml:"overflow_is_fatal"`
}

// Default returns the spec's built-in constants: the lexer's own
// defaults, with overflow treated as a recoverable diagnostic rather
// than a hard error.
func Default() Limits {
	return Limits{
		MaxHexLiteralLength:    lexer.DefaultMaxHexLiteralLength,
		MaxBinaryLiteralLength: lexer.DefaultMaxBinaryLiteralLength,
		OverflowIsFatal:        false,
	}
}

// Load reads and unmarshals a YAML limits file at path, filling in any
// field the file omits with Default()'s value so a partial config (e.g.
// just overflow_is_fatal) doesn't zero out the literal-length ceilings.
func Load(path string) (Limits, error) {
	limits := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return limits, nil
}

// ApplyToLexer overrides a constructed Lexer's literal-length ceilings
// with this Limits' values, the seam SPEC_FULL.md §2.3 names for wiring
// an optional --config file into the lex/parse pipeline.
func (l Limits) ApplyToLexer(lex *lexer.Lexer) {
	lex.MaxHexLiteralLength = l.MaxHexLiteralLength
	lex.MaxBinaryLiteralLength = l.MaxBinaryLiteralLength
}

// NewParser builds a parser.Parser over src with this Limits' ceilings
// and overflow_is_fatal switch already applied, the one-call entry point
// cmd/cromc uses once an optional --config file has been loaded (or
// Default() used instead).
func (l Limits) NewParser(src, filename string) *parser.Parser {
	lex := lexer.New(src, filename)
	l.ApplyToLexer(lex)
	p := parser.NewFromLexer(lex)
	p.SetOverflowIsFatal(l.OverflowIsFatal)
	return p
}
