/*
File    : cromfront/parser/parser.go
Package : parser

Package parser implements spec.md §4.H: a Pratt-style precedence parser
producing the ast.Node tree, driving the lexer token-by-token while
consulting and mutating a symtab.ScopeStack. A Parser struct with
advance/expect/addError collaborators, generalized to the three-token
lookahead (current, next, after_next) spec.md §5 requires to
disambiguate function declarations from function calls, with runtime
Env/eval machinery replaced outright by this front-end's
symtab.ScopeStack + value.Value constant folding.
*/
package parser

import (
	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/lexer"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// prefixFn parses a production that can begin an expression. canAssign is
// the §4.H "can_assign discipline" flag: true only when the enclosing
// precedence is at or below assignment, so only identifier-shaped
// productions ever need to consult it.
type prefixFn func(p *Parser, canAssign bool) *ast.Node

// infixFn parses a production that continues an expression already
// parsed as left, given the operator token that was just consumed.
type infixFn func(p *Parser, left *ast.Node) *ast.Node

// Parser holds all parsing state explicitly — no file-scope globals, per
// spec.md §9's "no hidden singletons" design note.
type Parser struct {
	lex *lexer.Lexer
	Sink *cerr.Sink

	current   token.Token
	next      token.Token
	afterNext token.Token

	Scopes *symtab.ScopeStack

	// OverflowIsFatal controls whether a literal that overflows or
	// underflows its declared bit width is a recoverable diagnostic
	// (default) or a Fatal, compilation-halting error — the config
	// package's overflow_is_fatal switch, applied via SetOverflowIsFatal.
	OverflowIsFatal bool

	prefixRules map[token.Kind]prefixFn
	infixRules  map[token.Kind]infixFn
	precedence  map[token.Kind]int
}

// SetOverflowIsFatal sets whether numeric overflow/underflow during literal
// decoding panics through cerr.Sink.Fatal instead of being reported as a
// recoverable diagnostic. The config package calls this once, after
// NewFromLexer, with a loaded Limits' overflow_is_fatal value.
func (p *Parser) SetOverflowIsFatal(fatal bool) {
	p.OverflowIsFatal = fatal
}

// New builds a Parser over src and primes its three-token lookahead.
func New(src, filename string) *Parser {
	return NewFromLexer(lexer.New(src, filename))
}

// NewFromLexer builds a Parser over an already-constructed Lexer — the
// seam the config package uses to apply a loaded Limits' literal-length
// ceilings before parsing begins, per SPEC_FULL.md §2.3.
func NewFromLexer(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex:         lex,
		Sink:        cerr.NewSink(),
		Scopes:      symtab.NewScopeStack(),
		prefixRules: make(map[token.Kind]prefixFn),
		infixRules:  make(map[token.Kind]infixFn),
		precedence:  make(map[token.Kind]int),
	}
	p.registerRules()
	p.advance()
	p.advance()
	p.advance()
	return p
}

// registerPrefix associates a prefix production with one or more token
// kinds.
func (p *Parser) registerPrefix(fn prefixFn, kinds ...token.Kind) {
	for _, k := range kinds {
		p.prefixRules[k] = fn
	}
}

// registerInfix associates an infix production and its precedence with
// one or more token kinds.
func (p *Parser) registerInfix(fn infixFn, prec int, kinds ...token.Kind) {
	for _, k := range kinds {
		p.infixRules[k] = fn
		p.precedence[k] = prec
	}
}

// advance shifts the three-token lookahead window forward by one,
// pulling a fresh token from the lexer into afterNext.
func (p *Parser) advance() {
	p.current = p.next
	p.next = p.afterNext
	p.afterNext = p.lex.NextToken()
}

// nextPrecedence reports the infix precedence of p.next, or lowest
// if p.next is not an infix operator — the loop-continuation test of
// the Pratt algorithm.
func (p *Parser) nextPrecedence() int {
	if prec, ok := p.precedence[p.next.Kind]; ok {
		return prec
	}
	return LOWEST
}

// expect reports a parse error if p.next is not of kind, otherwise
// advances past it and returns true.
func (p *Parser) expect(kind token.Kind) bool {
	if p.next.Kind != kind {
		p.Sink.Emit(cerr.ExpectedToken, p.next.Position, "expected %s, got %s", kind, p.next.Kind)
		return false
	}
	p.advance()
	return true
}

// Parse drives the top-level production: a CHAIN spine of statements
// terminated by an empty CHAIN tail, per spec.md §4.H chain construction.
// Internal (Fatal) errors are recovered at this boundary so a single
// compiler-internal bug doesn't crash the whole compile.
func (p *Parser) Parse() (root *ast.Node, err error) {
	defer cerr.Recover()

	root = ast.New(ast.START, p.current, types.None, ast.At(ast.LEFT, p.parseChain(token.EOF)))
	return root, nil
}

// parseChain builds a CHAIN spine of statements, stopping at stopAt
// (EOF for the top level, RIGHT_BRACE for block, function and struct
// bodies), per spec.md §4.H "chain construction".
func (p *Parser) parseChain(stopAt token.Kind) *ast.Node {
	if p.current.Kind == stopAt {
		return ast.New(ast.CHAIN, p.current, types.None)
	}
	stmt := p.parseStatement()
	p.advance()
	rest := p.parseChain(stopAt)
	return ast.New(ast.CHAIN, token.Token{}, types.None, ast.At(ast.LEFT, stmt), ast.At(ast.RIGHT, rest))
}

// parseExpression is the Pratt loop: consumes one token, dispatches to
// its prefix rule, then repeatedly consumes infix operators whose
// precedence is greater than minPrec. Right-associative operators (only
// assignment, per spec.md §4.H) recurse into their right-hand side with
// their own precedence rather than precedence+1.
func (p *Parser) parseExpression(minPrec int) *ast.Node {
	canAssign := minPrec <= ASSIGNMENT

	prefix, ok := p.prefixRules[p.current.Kind]
	if !ok {
		p.Sink.Emit(cerr.UnknownPrefix, p.current.Position, "no prefix parse rule for %s", p.current.Kind)
		// A non-nil sentinel keeps every downstream .Annotation/.Kind
		// access safe, matching the rest of the parser's convention of
		// returning a well-formed (if empty) node on every error path
		// rather than propagating nil through the AST.
		return ast.New(ast.LITERAL, p.current, types.None)
	}
	left := prefix(p, canAssign)

	for minPrec < p.nextPrecedence() {
		infix, ok := p.infixRules[p.next.Kind]
		if !ok {
			break
		}
		p.advance()
		left = infix(p, left)
	}
	return left
}
