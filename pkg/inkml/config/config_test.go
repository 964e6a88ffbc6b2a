package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfiguration(t *testing.T) {
	cfg := NewDefaultConfiguration()
	require.Equal(t, 1000.0, cfg.DefaultResolutionValue)
	require.Equal(t, 0.0, cfg.MinBrushWidthCm)
	require.False(t, cfg.TrailingNewlineOnEmit)
	require.Equal(t, "none", cfg.LogLevel)
}

func TestParseRoundTripsYAML(t *testing.T) {
	const doc = `
defaultResolutionValue: 2540
minBrushWidthCm: 0.2
trailingNewlineOnEmit: true
logLevel: debug
`
	cfg, err := Parse(strings.NewReader(doc), "/tmp/whatever.yaml")
	require.NoError(t, err)
	require.Equal(t, 2540.0, cfg.DefaultResolutionValue)
	require.Equal(t, 0.2, cfg.MinBrushWidthCm)
	require.True(t, cfg.TrailingNewlineOnEmit)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/tmp/whatever.yaml", cfg.Path)
}

func TestParseDefaultsLogLevelWhenAbsent(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`defaultResolutionValue: 1000`), "")
	require.NoError(t, err)
	require.Equal(t, "none", cfg.LogLevel)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/inkml.yaml"

	cfg := NewDefaultConfiguration()
	cfg.DefaultResolutionValue = 500
	cfg.MinBrushWidthCm = 0.15
	cfg.LogLevel = "info"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 500.0, loaded.DefaultResolutionValue)
	require.Equal(t, 0.15, loaded.MinBrushWidthCm)
	require.Equal(t, "info", loaded.LogLevel)
	require.Equal(t, path, loaded.Path)
}
