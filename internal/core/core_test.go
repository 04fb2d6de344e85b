package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid(10)
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 9, g.Index(9, 0))
	assert.Equal(t, 10, g.Index(0, 1))
	assert.Equal(t, 99, g.Index(9, 9))
}

func TestGridCoord(t *testing.T) {
	g := NewGrid(10)
	assert.InDelta(t, -0.9, g.Coord(0), 1e-6)
	assert.InDelta(t, 0.9, g.Coord(9), 1e-6)
	assert.InDelta(t, 0.2, g.Step(), 1e-7)
	assert.Len(t, g.Coords(), 10)
	assert.Equal(t, g.Coord(3), g.Coords()[3])
}

func TestNewGridFallsBackToOneCell(t *testing.T) {
	g := NewGrid(-4)
	assert.Equal(t, 1, g.Resolution)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, float32(0), g.Coord(0))
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(4)
	assert.InDelta(t, 0.25, fs.Delta(), 1e-12)
	fs.Advance(1)
	fs.Advance(2)
	assert.InDelta(t, 0.75, fs.Elapsed(), 1e-6)
	assert.InDelta(t, 0.75, fs.Advance(-3), 1e-6, "negative speed must not rewind")
	fs.SetTPS(0)
	assert.InDelta(t, 1.0/60, fs.Delta(), 1e-9)
	fs.Reset()
	assert.Zero(t, fs.Elapsed())
	assert.Equal(t, float32(0.5), TickTime(10, 0.05))
}

func TestVec3Dot(t *testing.T) {
	assert.Equal(t, float32(32), V3(1, 2, 3).Dot(V3(4, 5, 6)))
}
