package core

// Vec3 is a position in graph space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Dot returns the scalar product.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
