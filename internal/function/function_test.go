package function

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples walks a dense lattice over u, v ∈ [-1, 1] and t ∈ [-4, 4].
func samples(fn func(u, v, t float32)) {
	for i := 0; i <= 40; i++ {
		u := -1 + float32(i)*0.05
		for j := 0; j <= 40; j++ {
			v := -1 + float32(j)*0.05
			for k := 0; k <= 32; k++ {
				t := -4 + float32(k)*0.25
				fn(u, v, t)
			}
		}
	}
}

func TestEveryNameHasEntry(t *testing.T) {
	table := Standard()
	require.Equal(t, Count(), table.Len())
	for _, n := range Names() {
		assert.NotNil(t, table.Func(n), "no func for %v", n)
	}
}

func TestNewTablePanicsOnMissingEntry(t *testing.T) {
	assert.PanicsWithValue(t, "function: no entry for PulsingSphere", func() {
		NewTable(
			Entry{Sine, sine},
			Entry{Sine2D, sine2D},
			Entry{MultiSine, multiSine},
			Entry{MultiSine2D, multiSine2D},
			Entry{Ripple, ripple},
			Entry{Cylinder, cylinder},
			Entry{Sphere, sphere},
		)
	})
}

func TestNewTablePanicsOnDuplicateEntry(t *testing.T) {
	assert.Panics(t, func() {
		NewTable(Entry{Sine, sine}, Entry{Sine, sine2D})
	})
	assert.Panics(t, func() {
		NewTable(Entry{Name(42), sine})
	})
}

func TestEvaluateInvalidNamePanics(t *testing.T) {
	assert.Panics(t, func() { Evaluate(Name(-1), 0, 0, 0) })
	assert.Panics(t, func() { Evaluate(numNames, 0, 0, 0) })
}

func TestEvaluateIsPure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range Names() {
		for i := 0; i < 500; i++ {
			u := rng.Float32()*2 - 1
			v := rng.Float32()*2 - 1
			tm := rng.Float32()*200 - 100
			a := Evaluate(n, u, v, tm)
			b := Evaluate(n, u, v, tm)
			if a != b {
				t.Fatalf("%v(%v, %v, %v) not deterministic: %v vs %v", n, u, v, tm, a, b)
			}
		}
	}
}

func TestSineAtGridCorner(t *testing.T) {
	p := Evaluate(Sine, -0.9, -0.9, 0)
	assert.Equal(t, float32(-0.9), p.X)
	assert.Equal(t, float32(-0.9), p.Z)
	assert.InDelta(t, -0.309017, p.Y, 1e-5)
}

func TestRippleAtOrigin(t *testing.T) {
	for _, tm := range []float32{0, 0.25, 0.5, 1.3, 7} {
		p := Evaluate(Ripple, 0, 0, tm)
		assert.InDelta(t, math32.Sin(-pi*tm), p.Y, 1e-6, "t=%v", tm)
	}
}

func TestWaveFamilyPassesThroughDomain(t *testing.T) {
	for _, n := range []Name{Sine, Sine2D, MultiSine, MultiSine2D, Ripple} {
		p := Evaluate(n, 0.3, -0.7, 1.1)
		assert.Equal(t, float32(0.3), p.X, "%v x", n)
		assert.Equal(t, float32(-0.7), p.Z, "%v z", n)
	}
}

func TestWaveFamilyNormalized(t *testing.T) {
	const eps = 1e-6
	for _, n := range []Name{Sine, Sine2D, MultiSine, Ripple} {
		samples(func(u, v, tm float32) {
			y := Evaluate(n, u, v, tm).Y
			if y < -1-eps || y > 1+eps {
				t.Fatalf("%v(%v, %v, %v).y = %v outside [-1, 1]", n, u, v, tm, y)
			}
		})
	}
}

func TestMultiSine2DWithinScalingBound(t *testing.T) {
	// Peaks of the three terms can align, so the 1/5.5 scaling leaves a
	// worst case of 6/5.5.
	bound := float32(6/5.5) + 1e-6
	samples(func(u, v, tm float32) {
		y := Evaluate(MultiSine2D, u, v, tm).Y
		if math32.Abs(y) > bound {
			t.Fatalf("MultiSine2D(%v, %v, %v).y = %v", u, v, tm, y)
		}
	})
	peak := Evaluate(MultiSine2D, 0.3, 0.1, 0.2).Y
	assert.InDelta(t, 6/5.5, peak, 1e-5)
}

func TestClosedSurfaceRingRadius(t *testing.T) {
	for _, n := range []Name{Sphere, PulsingSphere} {
		samples(func(u, v, tm float32) {
			p := Evaluate(n, u, v, tm)
			s := RingRadius(n, u, v, tm)
			got := p.X*p.X + p.Z*p.Z
			if math32.Abs(got-s*s) > 1e-5 {
				t.Fatalf("%v(%v, %v, %v): x²+z² = %v, s² = %v", n, u, v, tm, got, s*s)
			}
		})
	}
	assert.Zero(t, RingRadius(Sine, 0.2, 0.3, 1))
}

func TestCylinderHeightFollowsV(t *testing.T) {
	samples(func(u, v, tm float32) {
		p := Evaluate(Cylinder, u, v, tm)
		if p.Y != v {
			t.Fatalf("Cylinder y = %v, want %v", p.Y, v)
		}
		r := math32.Sqrt(p.X*p.X + p.Z*p.Z)
		if r < 0.6-1e-5 || r > 1+1e-5 {
			t.Fatalf("Cylinder radius %v outside [0.6, 1]", r)
		}
	})
}

func TestSphereIsStatic(t *testing.T) {
	assert.Equal(t, Evaluate(Sphere, 0.4, 0.2, 0), Evaluate(Sphere, 0.4, 0.2, 9.5))
}

func TestParseNameRoundTrip(t *testing.T) {
	for _, n := range Names() {
		parsed, err := ParseName(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
	n, err := ParseName(" pulsing-sphere ")
	require.NoError(t, err)
	assert.Equal(t, PulsingSphere, n)

	_, err = ParseName("torus")
	assert.Error(t, err)
}

func TestNameCycling(t *testing.T) {
	assert.Equal(t, Sine2D, Sine.Next())
	assert.Equal(t, Sine, PulsingSphere.Next())
	assert.Equal(t, PulsingSphere, Sine.Prev())
	assert.Equal(t, "Name(99)", Name(99).String())
}

func TestNameText(t *testing.T) {
	b, err := Ripple.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Ripple", string(b))

	var n Name
	require.NoError(t, n.UnmarshalText([]byte("multisine2d")))
	assert.Equal(t, MultiSine2D, n)

	_, err = Name(-3).MarshalText()
	assert.Error(t, err)
}
