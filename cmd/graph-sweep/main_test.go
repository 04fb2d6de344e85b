package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavegraph/internal/app"
	"wavegraph/internal/sweep"
)

func load(t *testing.T, args ...string) (*app.Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("graph-sweep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := app.Load(fs, args)
	require.NoError(t, err)
	return cfg, fs
}

func TestOptionsUseSweepDefaultResolution(t *testing.T) {
	cfg, fs := load(t)
	opts := options(cfg, fs, sweep.DefaultOptions(), 10, 2)
	assert.Equal(t, sweep.DefaultOptions().Resolution, opts.Resolution)
	assert.Equal(t, 10, opts.Ticks)
	assert.Equal(t, 2, opts.Workers)
}

func TestOptionsHonorExplicitResolution(t *testing.T) {
	cfg, fs := load(t, "-resolution", "20")
	assert.Equal(t, 20, options(cfg, fs, sweep.DefaultOptions(), 1, 1).Resolution)

	cfg, fs = load(t, "-set", "resolution=30")
	assert.Equal(t, 30, options(cfg, fs, sweep.DefaultOptions(), 1, 1).Resolution)
}

func TestOptionsShareDumpClock(t *testing.T) {
	cfg, fs := load(t, "-tps", "20", "-speed", "0.5")
	assert.InDelta(t, 0.025, options(cfg, fs, sweep.DefaultOptions(), 1, 1).Dt, 1e-9)
}
