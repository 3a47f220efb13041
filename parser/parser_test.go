package parser

import (
	"testing"

	"github.com/rtmath/cromfront/ast"
	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/symtab"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// program parses src and fails the test if Parse itself returns an error
// (it never does per spec.md §7 — diagnostics are collected, not
// returned — but this guards against a future contract change).
func program(t *testing.T, src string) (*ast.Node, *Parser) {
	t.Helper()
	p := New(src, "test.crom")
	root, err := p.Parse()
	require.NoError(t, err)
	return root, p
}

// firstStatement drills into root.START -> CHAIN -> first STATEMENT's child.
func firstStatement(root *ast.Node) *ast.Node {
	return root.Left().Left().Left()
}

func nthStatement(root *ast.Node, n int) *ast.Node {
	chain := root.Left()
	for i := 0; i < n; i++ {
		chain = chain.Right()
	}
	return chain.Left().Left()
}

func TestScenario1_BoolAssignmentNoError(t *testing.T) {
	root, p := program(t, `bool check = true;`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	sym := p.Scopes.Retrieve("check")
	require.False(t, sym.IsError())
	assert.Equal(t, symtab.Defined, sym.State)

	assign := firstStatement(root)
	require.Equal(t, ast.ASSIGNMENT, assign.Kind)
	require.Equal(t, ast.LITERAL, assign.Right().Kind)
	assert.Equal(t, "true", assign.Right().Token.Literal)
}

func TestScenario2_BoolAssignedIntIsTypeDisagreement(t *testing.T) {
	_, p := program(t, `bool check = 2;`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.TypeDisagreement, p.Sink.Diagnostics()[0].Kind)
}

func TestScenario3_BoolAssignedNegatedFalse(t *testing.T) {
	root, p := program(t, `bool check = !false;`)
	assert.False(t, p.Sink.HasErrors())

	assign := firstStatement(root)
	require.Equal(t, ast.UNARY_OP, assign.Right().Kind)
	assert.Equal(t, "!", assign.Right().Token.Literal)
	assert.Equal(t, "false", assign.Right().Left().Token.Literal)
}

func TestScenario4_NestedBooleanExpressionParses(t *testing.T) {
	root, p := program(t, `bool check = (true && (false || true) && !false);`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	assign := firstStatement(root)
	require.Equal(t, ast.BINARY_OP, assign.Right().Kind)
	assert.Equal(t, "&&", assign.Right().Token.Literal)
}

func TestScenario5_RedeclarationInSameScope(t *testing.T) {
	_, p := program(t, "i32 x;\ni32 x;")
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.Redeclaration, p.Sink.Diagnostics()[0].Kind)
	assert.Equal(t, 2, p.Sink.Diagnostics()[0].Position.Line)
}

func TestScenario6_FunctionDeclarationAndCallResolve(t *testing.T) {
	src := `i32 add(i32 a, i32 b) :: i32 { return a + b; }
i32 main() :: i32 { return add(1,2); }`
	_, p := program(t, src)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	add := p.Scopes.Retrieve("add")
	require.False(t, add.IsError())
	assert.Equal(t, symtab.Defined, add.State)
	require.NotNil(t, add.FnParams)
	assert.True(t, add.FnParams.IsIn("a"))
	assert.True(t, add.FnParams.IsIn("b"))

	main := p.Scopes.Retrieve("main")
	require.False(t, main.IsError())
	assert.Equal(t, symtab.Defined, main.State)
}

func TestScenario7_U64HexOverflow(t *testing.T) {
	_, p := program(t, `u64 big = 0xFFFFFFFFFFFFFFFFFFFF;`)
	require.True(t, p.Sink.HasErrors(), "expected an overflow diagnostic")
	found := false
	for _, d := range p.Sink.Diagnostics() {
		if d.Kind == cerr.IntegerOverflow {
			found = true
		}
	}
	assert.True(t, found, "diagnostics: %v", p.Sink.Diagnostics())
}

func TestScenario8_EmptyStructBodyIsError(t *testing.T) {
	_, p := program(t, `struct Empty { }`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.EmptyStructBody, p.Sink.Diagnostics()[0].Kind)
}

func TestPrecedenceLaw_LogicalIsFlat(t *testing.T) {
	root, p := program(t, `bool r = a && b || c;`)
	_ = p

	rhs := firstStatement(root).Right()
	require.Equal(t, ast.BINARY_OP, rhs.Kind)
	assert.Equal(t, "||", rhs.Token.Literal, "|| must be the outermost node: (a && b) || c")
	require.Equal(t, ast.BINARY_OP, rhs.Left().Kind)
	assert.Equal(t, "&&", rhs.Left().Token.Literal)
}

func TestPrecedenceLaw_BitwiseIsFlat(t *testing.T) {
	root, p := program(t, `u32 r = a | b & c;`)
	_ = p

	rhs := firstStatement(root).Right()
	require.Equal(t, ast.BINARY_OP, rhs.Kind)
	assert.Equal(t, "&", rhs.Token.Literal, "& must be the outermost node: (a | b) & c")
	require.Equal(t, ast.BINARY_OP, rhs.Left().Kind)
	assert.Equal(t, "|", rhs.Left().Token.Literal)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	root, p := program(t, `i32 a; i32 b; a = b = 5;`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	assign := nthStatement(root, 2)
	require.Equal(t, ast.ASSIGNMENT, assign.Kind)
	assert.Equal(t, "a", assign.Left().Token.Literal)
	inner := assign.Right()
	require.Equal(t, ast.ASSIGNMENT, inner.Kind)
	assert.Equal(t, "b", inner.Left().Token.Literal)
}

func TestChainSpineEndsInEmptyChain(t *testing.T) {
	root, _ := program(t, `i32 x = 1;`)
	chain := root.Left()
	for !chain.IsEmptyChain() {
		require.NotNil(t, chain.Left())
		chain = chain.Right()
	}
}

func TestForDesugarsToWhileWithInitAndPost(t *testing.T) {
	root, p := program(t, `for (i32 i = 0; i < 10; i = i + 1) { }`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	loop := firstStatement(root)
	require.Equal(t, ast.WHILE, loop.Kind)
	require.NotNil(t, loop.Right(), "desugared for-loop carries its init statement at RIGHT")
	assert.Equal(t, ast.STATEMENT, loop.Right().Kind)

	bodyChain := loop.Middle()
	require.NotNil(t, bodyChain.Left(), "post-expression must be spliced onto the body's tail")
}

func TestWhileAcceptsBareCondition(t *testing.T) {
	root, p := program(t, `bool done = false; while done { }`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	loop := nthStatement(root, 1)
	require.Equal(t, ast.WHILE, loop.Kind)
	assert.Equal(t, "done", loop.Left().Token.Literal)
}

func TestIfElseIfChain(t *testing.T) {
	src := `bool a; bool b;
if (a) { } else if (b) { } else { }`
	root, p := program(t, src)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	ifNode := nthStatement(root, 2)
	require.Equal(t, ast.IF, ifNode.Kind)
	elseIf := ifNode.Right()
	require.Equal(t, ast.IF, elseIf.Kind)
	require.NotNil(t, elseIf.Right())
}

func TestTernaryFoldsIntoIfNode(t *testing.T) {
	root, p := program(t, `bool a; i32 r = (a) ? 1 :: 2;`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	ternary := nthStatement(root, 1).Right()
	require.Equal(t, ast.IF, ternary.Kind)
	assert.Equal(t, "1", ternary.Middle().Token.Literal)
	assert.Equal(t, "2", ternary.Right().Token.Literal)
}

func TestArraySubscriptRequiresDefinedIndex(t *testing.T) {
	_, p := program(t, `i32[4] arr; i32 idx; arr[idx];`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.UninitializedSubscript, p.Sink.Diagnostics()[0].Kind)
}

func TestArraySubscriptWithDefinedIndexIsFine(t *testing.T) {
	_, p := program(t, `i32[4] arr; i32 idx = 0; arr[idx];`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())
}

func TestFunctionCallBeforeDefinitionIsUndefinedFunction(t *testing.T) {
	_, p := program(t, `i32 main() :: i32 { return helper(); } i32 helper() :: i32 { return 1; }`)
	require.True(t, p.Sink.HasErrors())
	found := false
	for _, d := range p.Sink.Diagnostics() {
		if d.Kind == cerr.UndefinedFunction {
			found = true
		}
	}
	assert.True(t, found, "diagnostics: %v", p.Sink.Diagnostics())
}

func TestDuplicateParameterIsError(t *testing.T) {
	_, p := program(t, `i32 add(i32 a, i32 a) :: i32 { return a; }`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.DuplicateParameter, p.Sink.Diagnostics()[0].Kind)
}

func TestEnumMembersAreDefinedWithEnumAnnotation(t *testing.T) {
	_, p := program(t, `enum Color { RED, GREEN, BLUE }`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	red := p.Scopes.Retrieve("RED")
	require.False(t, red.IsError())
	assert.Equal(t, symtab.Defined, red.State)
	assert.Equal(t, types.KindEnum, red.Annotation.Ostensible)
	assert.Equal(t, types.KindInt, red.Annotation.Actual)
}

func TestDuplicateEnumMemberIsError(t *testing.T) {
	_, p := program(t, `enum Color { RED, RED }`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.DuplicateEnumMember, p.Sink.Diagnostics()[0].Kind)
}

func TestStructFieldsLiveInShadowTableNotEnclosingScope(t *testing.T) {
	_, p := program(t, `struct Point { i32 x; i32 y; }`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	point := p.Scopes.Retrieve("Point")
	require.False(t, point.IsError())
	require.NotNil(t, point.StructFields)
	assert.True(t, point.StructFields.IsIn("x"))
	assert.True(t, point.StructFields.IsIn("y"))
	assert.False(t, p.Scopes.IsIn("x"), "struct fields must not leak into the enclosing scope")
}

func TestPostfixIncrementRequiresDefined(t *testing.T) {
	_, p := program(t, `i32 x; x++;`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.CannotAssign, p.Sink.Diagnostics()[0].Kind)
}

func TestUndeclaredIdentifierIsError(t *testing.T) {
	_, p := program(t, `x = 1;`)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.UndeclaredIdentifier, p.Sink.Diagnostics()[0].Kind)
}

func TestTrailingCommaInCallIsTolerated(t *testing.T) {
	src := `i32 add(i32 a, i32 b) :: i32 { return a + b; }
i32 main() :: i32 { return add(1, 2,); }`
	_, p := program(t, src)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())
}

func TestBreakAndContinueRequireImmediateSemicolon(t *testing.T) {
	src := `while true { break; continue; }`
	_, p := program(t, src)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())
}

func TestEOFIdempotentAtTopLevel(t *testing.T) {
	root, p := program(t, ``)
	assert.False(t, p.Sink.HasErrors())
	assert.True(t, root.Left().IsEmptyChain())
}

func TestReadingIdentifierOnAssignmentRightHandSideIsFine(t *testing.T) {
	// A declared identifier read as the value of another declaration's
	// assignment parses as a plain read access with no diagnostic.
	_, p := program(t, `i32 x; i32 y = x;`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())
}

func TestTokenLookaheadDisambiguatesCallFromDeclaration(t *testing.T) {
	_, p := program(t, `i32 compute(i32 n) :: i32 { return n; } i32 r = compute(5);`)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	compute := p.Scopes.Retrieve("compute")
	require.False(t, compute.IsError())
	assert.Equal(t, symtab.Defined, compute.State)
}

func TestBodilessThenBodyPromotesToDefined(t *testing.T) {
	src := `i32 forward() :: i32; i32 forward() :: i32 { return 1; }`
	_, p := program(t, src)
	assert.False(t, p.Sink.HasErrors(), "diagnostics: %v", p.Sink.Diagnostics())

	fn := p.Scopes.Retrieve("forward")
	require.False(t, fn.IsError())
	assert.Equal(t, symtab.Defined, fn.State)
}

func TestTwoBodilessDeclarationsIsError(t *testing.T) {
	src := `i32 forward() :: i32; i32 forward() :: i32;`
	_, p := program(t, src)
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.DuplicateFunctionDeclaration, p.Sink.Diagnostics()[0].Kind)
}

func TestScopeUnderflowIsFatal(t *testing.T) {
	p := New(`{}`, "test.crom")
	assert.Panics(t, func() {
		p.Scopes.EndScope(p.Sink, token.Position{Line: 1})
		p.Scopes.EndScope(p.Sink, token.Position{Line: 1})
	})
}
