package core

import "time"

// FixedStep is the host-side animation clock. Every tick advances elapsed
// time by one fixed step scaled by the animation speed.
type FixedStep struct {
	step    time.Duration
	elapsed float64
}

// NewFixedStep constructs a clock ticking at the given TPS. Non-positive
// rates fall back to 60.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Delta returns the duration of one tick in seconds.
func (f *FixedStep) Delta() float64 { return f.step.Seconds() }

// Advance moves the animation clock forward by one tick scaled by speed and
// returns the new elapsed time. Negative speeds are treated as zero so time
// never runs backward.
func (f *FixedStep) Advance(speed float64) float32 {
	if speed > 0 {
		f.elapsed += f.step.Seconds() * speed
	}
	return float32(f.elapsed)
}

// Elapsed returns the animation time accumulated so far.
func (f *FixedStep) Elapsed() float32 { return float32(f.elapsed) }

// Reset rewinds the animation clock to zero.
func (f *FixedStep) Reset() { f.elapsed = 0 }

// TickTime returns the time of tick n for a clock that advances dt per tick.
// Headless drivers use it so frame n is always evaluated at n·dt.
func TickTime(n int, dt float64) float32 {
	return float32(float64(n) * dt)
}
