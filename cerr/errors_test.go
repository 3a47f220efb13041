package cerr

import (
	"testing"

	"github.com/rtmath/cromfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkEmitAccumulates(t *testing.T) {
	sink := NewSink()
	assert.False(t, sink.HasErrors())

	pos := token.Position{Filename: "main.crom", Line: 3, Column: 5}
	d := sink.Emit(Redeclaration, pos, "redeclaration of %q", "x")

	assert.Equal(t, Redeclaration, d.Kind)
	assert.Equal(t, `redeclaration of "x"`, d.Message)
	require.True(t, sink.HasErrors())
	assert.Equal(t, 1, sink.Count())
	assert.Equal(t, []Diagnostic{d}, sink.Diagnostics())
}

func TestSinkEmitAtUsesTokenPosition(t *testing.T) {
	sink := NewSink()
	tok := token.New(token.IDENTIFIER, "y", token.Position{Line: 1, Column: 1})
	d := sink.EmitAt(UndeclaredIdentifier, tok, "undeclared identifier %q", tok.Literal)
	assert.Equal(t, tok.Position, d.Position)
}

func TestSinkFatalPanicsAndRecovers(t *testing.T) {
	sink := NewSink()

	func() {
		defer Recover()
		sink.Fatal(token.Position{Line: 1, Column: 1}, "scope stack underflow")
	}()

	require.Equal(t, 1, sink.Count())
	assert.Equal(t, InternalError, sink.Diagnostics()[0].Kind)
	assert.True(t, sink.Diagnostics()[0].Kind.Fatal())
}

func TestRecoverRepanicsOnUnrelatedPanic(t *testing.T) {
	assert.Panics(t, func() {
		defer Recover()
		panic("boom")
	})
}

func TestKindFatalOnlyInternal(t *testing.T) {
	assert.True(t, InternalError.Fatal())
	for _, k := range []Kind{Redeclaration, TypeDisagreement, IntegerOverflow, ExpectedToken} {
		assert.False(t, k.Fatal(), "%s should not be fatal", k)
	}
}
