package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConfigFlagFound(t *testing.T) {
	path, rest := extractConfigFlag([]string{"--config", "limits.yaml", "prog.crom"})
	assert.Equal(t, "limits.yaml", path)
	assert.Equal(t, []string{"prog.crom"}, rest)
}

func TestExtractConfigFlagAbsent(t *testing.T) {
	path, rest := extractConfigFlag([]string{"prog.crom"})
	assert.Equal(t, "", path)
	assert.Equal(t, []string{"prog.crom"}, rest)
}

func TestExtractConfigFlagTrailingWithNoValueIsIgnored(t *testing.T) {
	path, rest := extractConfigFlag([]string{"prog.crom", "--config"})
	assert.Equal(t, "", path)
	assert.Equal(t, []string{"prog.crom", "--config"}, rest)
}
