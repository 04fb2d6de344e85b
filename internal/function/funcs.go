package function

import (
	"github.com/chewxy/math32"

	"wavegraph/internal/core"
)

const pi = math32.Pi

// Func maps domain coordinates (u, v) and time t to a point.
type Func func(u, v, t float32) core.Vec3

// sine: y = sin(π(u+t)).
func sine(u, v, t float32) core.Vec3 {
	return core.Vec3{X: u, Y: math32.Sin(pi * (u + t)), Z: v}
}

func sine2D(u, v, t float32) core.Vec3 {
	y := math32.Sin(pi * (u + t))
	y += math32.Sin(pi * (v + t))
	y *= 0.5
	return core.Vec3{X: u, Y: y, Z: v}
}

// multiSine adds a wave twice as fast and half as tall, then scales the
// [-1.5, 1.5] sum back by 2/3.
func multiSine(u, v, t float32) core.Vec3 {
	y := math32.Sin(pi * (u + t))
	y += math32.Sin(2*pi*(u+2*t)) * 0.5
	y *= 2.0 / 3.0
	return core.Vec3{X: u, Y: y, Z: v}
}

// multiSine2D is a main diagonal wave plus one secondary wave per axis.
func multiSine2D(u, v, t float32) core.Vec3 {
	y := 4 * math32.Sin(pi*(u+v+t*0.5))
	y += math32.Sin(pi * (u + t))
	y += math32.Sin(pi * (v + 2*t))
	y *= 1 / 5.5
	return core.Vec3{X: u, Y: y, Z: v}
}

// ripple travels outward from the origin and fades with distance d.
func ripple(u, v, t float32) core.Vec3 {
	d := math32.Sqrt(u*u + v*v)
	y := math32.Sin(pi * (4*d - t))
	y /= 1 + 10*d
	return core.Vec3{X: u, Y: y, Z: v}
}

func cylinder(u, v, t float32) core.Vec3 {
	r := 0.8 + math32.Sin(pi*(6*u+2*v+t))*0.2
	return core.Vec3{
		X: r * math32.Sin(pi*u),
		Y: v,
		Z: r * math32.Cos(pi*u),
	}
}

func sphere(u, v, t float32) core.Vec3 {
	return spherePoint(u, v, sphereRadius(v))
}

func pulsingSphere(u, v, t float32) core.Vec3 {
	return spherePoint(u, v, pulsingRadius(u, v, t))
}

func sphereRadius(v float32) float32 { return math32.Cos(pi * v / 10) }

func pulsingRadius(u, v, t float32) float32 {
	r := 0.8 + math32.Sin(pi*(6*u+t))*0.1
	r += math32.Sin(pi*(4*v+t)) * 0.1
	return r
}

// spherePoint places (u, v) on a sphere-like shell of radius r. The ring
// radius at height v is s = r·cos(πv/2).
func spherePoint(u, v, r float32) core.Vec3 {
	s := r * math32.Cos(pi*0.5*v)
	return core.Vec3{
		X: s * math32.Sin(pi*u),
		Y: r * math32.Sin(pi*0.5*v),
		Z: s * math32.Cos(pi*u),
	}
}

// RingRadius returns s for the closed-surface functions, the radius of the
// horizontal ring a point at (u, v, t) lies on. It is zero for the others.
func RingRadius(name Name, u, v, t float32) float32 {
	var r float32
	switch name {
	case Sphere:
		r = sphereRadius(v)
	case PulsingSphere:
		r = pulsingRadius(u, v, t)
	default:
		return 0
	}
	return r * math32.Cos(pi*0.5*v)
}
