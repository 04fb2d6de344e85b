package render

import (
	"github.com/chewxy/math32"

	"wavegraph/internal/core"
)

// Camera is an orthographic view orbiting the origin. Yaw turns around the
// vertical axis, pitch tilts toward a top-down view.
type Camera struct {
	Yaw   float32
	Pitch float32
	Zoom  float32 // pixels per graph unit
}

// DefaultCamera looks at the graph slightly from above.
func DefaultCamera() Camera {
	return Camera{Yaw: -math32.Pi / 6, Pitch: math32.Pi / 7, Zoom: 160}
}

// Orbit adjusts yaw and pitch, keeping pitch within a quarter turn so the
// view never flips.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = math32.Mod(c.Yaw+dYaw, 2*math32.Pi)
	limit := float32(math32.Pi / 2)
	c.Pitch = clamp(c.Pitch+dPitch, -limit, limit)
}

// Project maps p onto a w×h screen centered on the origin. depth grows away
// from the viewer, so drawing in decreasing depth order paints back to front.
func (c Camera) Project(p core.Vec3, w, h int) (sx, sy, depth float32) {
	right, up, forward := c.basis()
	sx = float32(w)/2 + p.Dot(right)*c.Zoom
	sy = float32(h)/2 - p.Dot(up)*c.Zoom
	return sx, sy, p.Dot(forward)
}

func (c Camera) basis() (right, up, forward core.Vec3) {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	right = core.V3(cy, 0, -sy)
	forward = core.V3(sy*cp, -sp, cy*cp)
	up = core.V3(sy*sp, cp, cy*sp)
	return right, up, forward
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
