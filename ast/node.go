/*
File    : cromfront/ast/node.go
Package : ast

Package ast implements the uniform AST_Node of spec.md §3/§8: a single
node shape with a kind tag, arity, owning token, type annotation, and
three named child slots, rather than a one-struct-per-kind hierarchy
behind a visitor interface. spec.md §3 mandates the ternary-slot shape
explicitly, so this package trades visitor dispatch for a plain switch
inside Node.String(), printing depth-first the way a recursive AST dump
normally does.
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
)

// Kind identifies what an AST_Node represents.
type Kind int

const (
	START Kind = iota
	CHAIN
	STATEMENT
	DECLARATION
	IDENTIFIER
	ENUM_IDENTIFIER
	ARRAY_SUBSCRIPT
	IF
	WHILE
	BREAK
	CONTINUE
	RETURN
	FUNCTION
	FUNCTION_RETURN_TYPE
	FUNCTION_PARAM
	FUNCTION_BODY
	FUNCTION_CALL
	FUNCTION_ARGUMENT
	LITERAL
	ASSIGNMENT
	UNARY_OP
	BINARY_OP
	TERSE_ASSIGNMENT
	PREFIX_INCREMENT
	PREFIX_DECREMENT
	POSTFIX_INCREMENT
	POSTFIX_DECREMENT
)

var kindNames = map[Kind]string{
	START:                "START",
	CHAIN:                "CHAIN",
	STATEMENT:            "STATEMENT",
	DECLARATION:          "DECLARATION",
	IDENTIFIER:           "IDENTIFIER",
	ENUM_IDENTIFIER:      "ENUM_IDENTIFIER",
	ARRAY_SUBSCRIPT:      "ARRAY_SUBSCRIPT",
	IF:                   "IF",
	WHILE:                "WHILE",
	BREAK:                "BREAK",
	CONTINUE:             "CONTINUE",
	RETURN:               "RETURN",
	FUNCTION:             "FUNCTION",
	FUNCTION_RETURN_TYPE: "FUNCTION_RETURN_TYPE",
	FUNCTION_PARAM:       "FUNCTION_PARAM",
	FUNCTION_BODY:        "FUNCTION_BODY",
	FUNCTION_CALL:        "FUNCTION_CALL",
	FUNCTION_ARGUMENT:    "FUNCTION_ARGUMENT",
	LITERAL:              "LITERAL",
	ASSIGNMENT:           "ASSIGNMENT",
	UNARY_OP:             "UNARY_OP",
	BINARY_OP:            "BINARY_OP",
	TERSE_ASSIGNMENT:     "TERSE_ASSIGNMENT",
	PREFIX_INCREMENT:     "PREFIX_INCREMENT",
	PREFIX_DECREMENT:     "PREFIX_DECREMENT",
	POSTFIX_INCREMENT:    "POSTFIX_INCREMENT",
	POSTFIX_DECREMENT:    "POSTFIX_DECREMENT",
}

// String renders a Kind for diagnostics and the pretty-printer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_KIND"
}

// Slot names the three child positions every Node carries, per spec.md §3.
type Slot int

const (
	LEFT Slot = iota
	RIGHT
	MIDDLE
)

// Node is the uniform AST node: kind, arity, owning token, annotation, and
// three named child slots. Ownership is tree-exclusive — a Node pointer is
// never shared between two parents.
type Node struct {
	Kind       Kind
	Arity      int
	Token      token.Token
	Annotation types.Annotation
	Children   [3]*Node
}

// New builds a Node with the given children already wired into their slots.
// Arity is computed from how many of the three slots are non-nil, matching
// each kind's pinned slot usage documented in spec.md §4.H.
func New(kind Kind, tok token.Token, ann types.Annotation, children ...NodeSlot) *Node {
	n := &Node{Kind: kind, Token: tok, Annotation: ann}
	for _, c := range children {
		n.Children[c.Slot] = c.Node
	}
	for _, child := range n.Children {
		if child != nil {
			n.Arity++
		}
	}
	return n
}

// NodeSlot pairs a child Node with the slot it occupies, for use with New.
type NodeSlot struct {
	Slot Slot
	Node *Node
}

// At returns a NodeSlot, a small constructor to keep call sites in parser
// code readable: ast.New(ast.BINARY_OP, tok, ann, ast.At(ast.LEFT, l), ast.At(ast.RIGHT, r)).
func At(slot Slot, n *Node) NodeSlot {
	return NodeSlot{Slot: slot, Node: n}
}

// Left, Right, Middle read the three named slots; nil is a valid, common
// value (an unused slot, or an empty CHAIN tail).
func (n *Node) Left() *Node   { return n.Children[LEFT] }
func (n *Node) Right() *Node  { return n.Children[RIGHT] }
func (n *Node) Middle() *Node { return n.Children[MIDDLE] }

// IsEmptyChain reports whether n is a CHAIN node whose spine has ended:
// both LEFT and RIGHT are nil, per spec.md §8's chain-spine invariant.
func (n *Node) IsEmptyChain() bool {
	return n.Kind == CHAIN && n.Left() == nil && n.Right() == nil
}

// String renders the tree depth-first, one node per line — a plain
// recursive dump rather than a visitor dispatch, since Node here is one
// shape.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	if n == nil {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString("<nil>\n")
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s", n.Kind)
	if n.Token.Literal != "" {
		fmt.Fprintf(b, " %q", n.Token.Literal)
	}
	if n.Annotation.Actual != types.KindNone {
		fmt.Fprintf(b, " :%s", n.Annotation.Actual)
	}
	b.WriteString("\n")
	for slot := 0; slot < 3; slot++ {
		if child := n.Children[slot]; child != nil {
			child.write(b, depth+1)
		}
	}
}
