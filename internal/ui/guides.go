package ui

import (
	"image/color"

	"wavegraph/internal/core"
)

// Axis is one colored coordinate axis from the origin to Tip.
type Axis struct {
	Tip   core.Vec3
	Color color.RGBA
}

// Axes returns the x (red), y (green) and z (blue) axes, each 1.2 units long.
func Axes() []Axis {
	return []Axis{
		{Tip: core.V3(1.2, 0, 0), Color: color.RGBA{R: 200, G: 60, B: 60, A: 255}},
		{Tip: core.V3(0, 1.2, 0), Color: color.RGBA{R: 60, G: 200, B: 60, A: 255}},
		{Tip: core.V3(0, 0, 1.2), Color: color.RGBA{R: 60, G: 100, B: 220, A: 255}},
	}
}

// BoxEdges returns the 12 edges of the cube spanning [-1, 1] on every axis.
func BoxEdges() [][2]core.Vec3 {
	var corners [8]core.Vec3
	for i := range corners {
		corners[i] = core.V3(sign(i&1), sign(i&2), sign(i&4))
	}
	var edges [][2]core.Vec3
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, [2]core.Vec3{corners[i], corners[i|bit]})
			}
		}
	}
	return edges
}

func sign(bit int) float32 {
	if bit != 0 {
		return 1
	}
	return -1
}
