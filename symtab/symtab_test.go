package symtab

import (
	"testing"

	"github.com/rtmath/cromfront/cerr"
	"github.com/rtmath/cromfront/token"
	"github.com/rtmath/cromfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, token.Position{Line: 1, Column: 1})
}

func TestTableAddAndRetrieve(t *testing.T) {
	tbl := NewTable()
	sym := Symbol{Token: ident("x"), Annotation: types.NewScalar(types.KindInt, true, 32, 1), State: Declared}
	tbl.Add(sym)

	got := tbl.Retrieve("x")
	require.False(t, got.IsError())
	assert.Equal(t, Declared, got.State)
}

func TestTableRetrieveMissReturnsErrorSentinel(t *testing.T) {
	tbl := NewTable()
	got := tbl.Retrieve("nope")
	assert.True(t, got.IsError())
}

func TestTableAddOverwritesOnReAdd(t *testing.T) {
	tbl := NewTable()
	tbl.Add(Symbol{Token: ident("x"), State: Declared})
	tbl.Add(Symbol{Token: ident("x"), State: Defined})

	got := tbl.Retrieve("x")
	assert.Equal(t, Defined, got.State)
}

func TestTableIsIn(t *testing.T) {
	tbl := NewTable()
	assert.False(t, tbl.IsIn("x"))
	tbl.Add(Symbol{Token: ident("x"), State: Declared})
	assert.True(t, tbl.IsIn("x"))
}

func TestRegisterFnParam(t *testing.T) {
	tbl := NewTable()
	fn := Symbol{Token: ident("add"), State: Defined, FnParams: NewTable()}
	tbl.Add(fn)

	tbl.RegisterFnParam("add", Symbol{Token: ident("a"), State: FnParam})

	got := tbl.Retrieve("add")
	require.False(t, got.IsError())
	require.NotNil(t, got.FnParams)
	assert.True(t, got.FnParams.IsIn("a"))
}

func TestScopeStackBeginEndScope(t *testing.T) {
	s := NewScopeStack()
	sink := cerr.NewSink()
	pos := token.Position{Line: 1, Column: 1}

	assert.Equal(t, 0, s.Depth())
	s.BeginScope()
	assert.Equal(t, 1, s.Depth())
	s.EndScope(sink, pos)
	assert.Equal(t, 0, s.Depth())
	assert.False(t, sink.HasErrors())
}

func TestScopeStackEndScopeAtZeroIsFatal(t *testing.T) {
	s := NewScopeStack()
	sink := cerr.NewSink()
	pos := token.Position{Line: 1, Column: 1}

	assert.Panics(t, func() {
		s.EndScope(sink, pos)
	})
}

func TestScopeStackRetrieveWalksOuterScopes(t *testing.T) {
	s := NewScopeStack()
	s.Add(Symbol{Token: ident("g"), State: Declared})
	s.BeginScope()
	s.Add(Symbol{Token: ident("l"), State: Declared})

	assert.True(t, s.IsIn("g"))
	assert.True(t, s.IsIn("l"))
	assert.False(t, s.IsInCurrentScope("g"))
	assert.True(t, s.IsInCurrentScope("l"))
}

func TestScopeStackExistsInOuterScope(t *testing.T) {
	s := NewScopeStack()
	s.Add(Symbol{Token: ident("g"), State: Declared})
	s.BeginScope()

	assert.True(t, s.ExistsInOuterScope("g"))
	assert.False(t, s.ExistsInOuterScope("nope"))
}

func TestScopeStackShadowRedirectsAddAndRetrieve(t *testing.T) {
	s := NewScopeStack()
	s.Add(Symbol{Token: ident("outer"), State: Declared})

	fields := NewTable()
	s.Shadow(fields)
	s.Add(Symbol{Token: ident("field1"), State: Declared})

	assert.True(t, fields.IsIn("field1"))
	assert.False(t, s.tables[0].IsIn("field1"))
	assert.True(t, s.IsInCurrentScope("field1"))
	assert.False(t, s.IsInCurrentScope("outer"))

	s.Unshadow()
	assert.True(t, s.IsInCurrentScope("outer"))
}

func TestScopeStackShadowNests(t *testing.T) {
	s := NewScopeStack()
	inner := NewTable()
	outer := NewTable()

	s.Shadow(outer)
	s.Shadow(inner)
	s.Add(Symbol{Token: ident("x"), State: Declared})
	assert.True(t, inner.IsIn("x"))
	assert.False(t, outer.IsIn("x"))

	s.Unshadow()
	s.Add(Symbol{Token: ident("y"), State: Declared})
	assert.True(t, outer.IsIn("y"))

	s.Unshadow()
	assert.Nil(t, s.shadow)
}
