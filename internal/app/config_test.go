package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavegraph/internal/function"
	"wavegraph/internal/graph"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, graph.DefaultConfig(), cfg.Graph())
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-resolution", "250", "-function", "ripple", "-speed", "0.5"})
	require.NoError(t, err)
	g := cfg.Graph()
	assert.Equal(t, graph.MaxResolution, g.Resolution)
	assert.Equal(t, function.Ripple, g.Function)
	assert.Equal(t, 0.5, cfg.Speed)
}

func TestLoadRejectsUnknownFunction(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-function", "torus"})
	assert.Error(t, err)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	data := []byte("resolution = 40\nfunction = \"Cylinder\"\nspeed = 2.5\ntps = 30\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(newFlagSet(), []string{"-config", path, "-resolution", "20"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Resolution, "explicit flag wins over file")
	assert.Equal(t, function.Cylinder, cfg.Function)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, 30, cfg.TPS)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("function = \"torus\"\n"), 0o644))
	_, err = Load(newFlagSet(), []string{"-config", path})
	assert.Error(t, err)
}

func TestOverridesApplyLast(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-function", "sine", "-set", "function=sphere", "-set", "resolution=33"})
	require.NoError(t, err)
	g := cfg.Graph()
	assert.Equal(t, function.Sphere, g.Function)
	assert.Equal(t, 33, g.Resolution)

	var l KVList
	assert.Error(t, l.Set("novalue"))
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())
	NewLogger(&buf, true).Debug("shown", "function", function.Ripple)
	assert.Contains(t, buf.String(), "function=Ripple")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "wavegraph - Sphere", Title(function.Sphere))
}

func TestLoadRejectsBadHostSettings(t *testing.T) {
	for _, args := range [][]string{
		{"-speed", "-1"},
		{"-tps", "0"},
		{"-tps", "-30"},
		{"-width", "0"},
		{"-height", "-5"},
		{"-hud", "-1"},
	} {
		_, err := Load(newFlagSet(), args)
		assert.Error(t, err, "%v", args)
	}

	cfg, err := Load(newFlagSet(), []string{"-speed", "0", "-hud", "0"})
	require.NoError(t, err, "a frozen clock and hidden HUD are allowed")
	assert.Zero(t, cfg.Delta())
}

func TestLoadRejectsBadHostSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte("speed = -2.0\n"), 0o644))
	_, err := Load(newFlagSet(), []string{"-config", path})
	assert.Error(t, err)

	cfg, err := Load(newFlagSet(), []string{"-config", path, "-speed", "1"})
	require.NoError(t, err, "explicit flag overrides the bad file value")
	assert.Equal(t, 1.0, cfg.Speed)
}

func TestDelta(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-tps", "30", "-speed", "2"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/30, cfg.Delta(), 1e-9)
}
