package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rtmath/cromfront/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesLexerConstants(t *testing.T) {
	d := Default()
	assert.Equal(t, 18, d.MaxHexLiteralLength)
	assert.Equal(t, 67, d.MaxBinaryLiteralLength)
	assert.False(t, d.OverflowIsFatal)
}

func TestLoadFillsOmittedFieldsFromDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overflow_is_fatal: true\n"), 0o644))

	limits, err := Load(path)
	require.NoError(t, err)
	assert.True(t, limits.OverflowIsFatal)
	assert.Equal(t, 18, limits.MaxHexLiteralLength, "omitted fields fall back to Default()")
}

func TestLoadOverridesAllFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	yamlSrc := "max_hex_literal_length: 10\nmax_binary_literal_length: 40\noverflow_is_fatal: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlSrc), 0o644))

	limits, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, limits.MaxHexLiteralLength)
	assert.Equal(t, 40, limits.MaxBinaryLiteralLength)
	assert.True(t, limits.OverflowIsFatal)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestNewParserAppliesNarrowerHexLimit(t *testing.T) {
	limits := Default()
	limits.MaxHexLiteralLength = 4 // "0x" + 2 digits at most

	p := limits.NewParser(`i32 x = 0xFFFF;`, "limits.crom")
	_, err := p.Parse()
	require.NoError(t, err)
	assert.True(t, p.Sink.HasErrors(), "a hex literal past the configured ceiling must be rejected")
}

func TestNewParserAppliesOverflowIsFatal(t *testing.T) {
	limits := Default()
	limits.OverflowIsFatal = true

	p := limits.NewParser(`i8 x = 200;`, "limits.crom")
	_, err := p.Parse()
	require.NoError(t, err, "Parse recovers a Fatal overflow via cerr.Recover rather than propagating a panic")
	require.True(t, p.Sink.HasErrors())
	assert.Equal(t, cerr.InternalError, p.Sink.Diagnostics()[len(p.Sink.Diagnostics())-1].Kind)
}
