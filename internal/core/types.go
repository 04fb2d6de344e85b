package core

// Animator is the contract a host driver relies on to advance and read an
// animated point set.
type Animator interface {
	Name() string
	Resolution() int
	Step(t float32)
	Points() []Vec3
}

// PointSink is a host-owned collection of positionable handles, for example
// renderable markers. Animators only write coordinates into it.
type PointSink interface {
	Len() int
	SetPosition(i int, p Vec3)
}

// PointBuffer is the simplest PointSink: a plain slice of positions.
type PointBuffer []Vec3

// Len reports the number of slots.
func (b PointBuffer) Len() int { return len(b) }

// SetPosition stores p in slot i.
func (b PointBuffer) SetPosition(i int, p Vec3) { b[i] = p }
