package graph

import (
	"wavegraph/internal/core"
	"wavegraph/internal/function"
)

// Graph animates a square grid of points with a parametric function. The zero
// value is uninitialized; call Initialize (or use New) before Step.
type Graph struct {
	table *function.Table
	grid  *core.Grid
	fn    function.Name
	t     float32
}

// New returns a ready Graph for the normalized configuration using the
// standard function table.
func New(cfg Config) *Graph {
	return NewWithTable(cfg, function.Standard())
}

// NewWithTable is New with a caller-supplied function table.
func NewWithTable(cfg Config, table *function.Table) *Graph {
	cfg = cfg.Normalized()
	g := &Graph{table: table, fn: cfg.Function}
	g.Initialize(cfg.Resolution)
	return g
}

// Initialize allocates resolution² points at the origin. Calling it again
// rebuilds the grid at the new size; the selected function is kept.
func (g *Graph) Initialize(resolution int) {
	if g.table == nil {
		g.table = function.Standard()
	}
	g.grid = core.NewGrid(resolution)
	g.t = 0
}

// Ready reports whether Initialize has run.
func (g *Graph) Ready() bool { return g.grid != nil }

// Name returns the animator identifier.
func (g *Graph) Name() string { return "graph" }

// Resolution returns the grid edge length.
func (g *Graph) Resolution() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.Resolution
}

// Scale is the uniform per-point size, 2/resolution, used by hosts that draw
// a marker for each point.
func (g *Graph) Scale() float32 {
	if g.grid == nil {
		return 0
	}
	return g.grid.Step()
}

// Function returns the selected function.
func (g *Graph) Function() function.Name { return g.fn }

// SetFunction selects the function used from the next Step on. It panics on
// undeclared names.
func (g *Graph) SetFunction(name function.Name) {
	if !name.Valid() {
		panic("graph: invalid function " + name.String())
	}
	g.fn = name
}

// Time returns the t of the most recent Step.
func (g *Graph) Time() float32 { return g.t }

// Points exposes the current positions in row-major order.
func (g *Graph) Points() []core.Vec3 {
	if g.grid == nil {
		return nil
	}
	return g.grid.Points()
}

// Grid exposes the underlying grid for index and coordinate helpers.
func (g *Graph) Grid() *core.Grid { return g.grid }

// Step evaluates the selected function for every cell at time t. Repeated
// calls with the same t produce identical positions.
func (g *Graph) Step(t float32) {
	if g.grid == nil {
		panic("graph: Step before Initialize")
	}
	f := g.table.Func(g.fn)
	coords := g.grid.Coords()
	points := g.grid.Points()
	i := 0
	for _, v := range coords {
		for _, u := range coords {
			points[i] = f(u, v, t)
			i++
		}
	}
	g.t = t
}

// Publish copies the current positions into sink. Slots beyond the shorter of
// the two lengths are left untouched.
func (g *Graph) Publish(sink core.PointSink) {
	points := g.Points()
	n := sink.Len()
	if len(points) < n {
		n = len(points)
	}
	for i := 0; i < n; i++ {
		sink.SetPosition(i, points[i])
	}
}

var _ core.Animator = (*Graph)(nil)
