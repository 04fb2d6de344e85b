package render

import (
	"image/color"
	"sort"

	"wavegraph/internal/core"
)

// Marker is one projected point ready to draw.
type Marker struct {
	X, Y   float32
	Depth  float32
	Radius float32
	Color  color.RGBA
}

// Markers is a core.PointSink that projects every position it receives.
type Markers struct {
	Camera  Camera
	Palette HeightPalette
	W, H    int
	Size    float32 // marker diameter in graph units

	items []Marker
	order []int
}

// NewMarkers allocates n markers for a w×h view.
func NewMarkers(n, w, h int, cam Camera) *Markers {
	m := &Markers{Camera: cam, Palette: DefaultPalette, W: w, H: h}
	m.Resize(n)
	return m
}

// Resize changes the marker count, for example after the grid is rebuilt.
func (m *Markers) Resize(n int) {
	if n < 0 {
		n = 0
	}
	m.items = make([]Marker, n)
	m.order = make([]int, n)
	for i := range m.order {
		m.order[i] = i
	}
}

// Len reports the number of marker slots.
func (m *Markers) Len() int { return len(m.items) }

// SetPosition projects p into slot i.
func (m *Markers) SetPosition(i int, p core.Vec3) {
	x, y, d := m.Camera.Project(p, m.W, m.H)
	r := m.Size * m.Camera.Zoom / 2
	if r < 1 {
		r = 1
	}
	m.items[i] = Marker{X: x, Y: y, Depth: d, Radius: r, Color: m.Palette.At(p.Y)}
}

// BackToFront returns the markers ordered farthest first.
func (m *Markers) BackToFront() []Marker {
	sort.SliceStable(m.order, func(a, b int) bool {
		return m.items[m.order[a]].Depth > m.items[m.order[b]].Depth
	})
	out := make([]Marker, len(m.order))
	for i, idx := range m.order {
		out[i] = m.items[idx]
	}
	return out
}

var _ core.PointSink = (*Markers)(nil)
