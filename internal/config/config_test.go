package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionals(t *testing.T) {
	cfg, err := Parse([]string{"./project", "dump.txt"})
	require.NoError(t, err)
	assert.Equal(t, "./project", cfg.InputDir)
	assert.Equal(t, "dump.txt", cfg.OutputFile)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ShowSkipped)
}

func TestParseFlagsBeforePositionals(t *testing.T) {
	cfg, err := Parse([]string{"-verbose", "-show-skipped", "-no-color", "src", "out.txt"})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.ShowSkipped)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, "src", cfg.InputDir)
	assert.Equal(t, "out.txt", cfg.OutputFile)
}

func TestParseArgumentCount(t *testing.T) {
	_, err := Parse([]string{"only-one"})
	require.Error(t, err)

	_, err = Parse([]string{"one", "two", "three"})
	require.Error(t, err)

	_, err = Parse(nil)
	require.Error(t, err)
}

func TestParseVersionNeedsNoPositionals(t *testing.T) {
	cfg, err := Parse([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestParseLogLevel(t *testing.T) {
	cfg, err := Parse([]string{"-log-level", "warn", "in", "out.txt"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
