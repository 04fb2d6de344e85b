package core

// Grid stores a square grid of points in row-major order. Rows run along z,
// columns along x.
type Grid struct {
	Resolution int
	step       float32
	coords     []float32
	data       []Vec3
}

// NewGrid allocates a resolution×resolution grid. Non-positive resolutions
// fall back to a single cell.
func NewGrid(resolution int) *Grid {
	if resolution <= 0 {
		resolution = 1
	}
	g := &Grid{
		Resolution: resolution,
		step:       2 / float32(resolution),
		coords:     make([]float32, resolution),
		data:       make([]Vec3, resolution*resolution),
	}
	for i := range g.coords {
		g.coords[i] = (float32(i)+0.5)*g.step - 1
	}
	return g
}

// Points exposes the backing slice so callers can read/write positions directly.
func (g *Grid) Points() []Vec3 { return g.data }

// Len returns the number of points, always Resolution².
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for column x and row z.
func (g *Grid) Index(x, z int) int { return z*g.Resolution + x }

// Step is the width of one cell in domain units.
func (g *Grid) Step() float32 { return g.step }

// Coord maps a column or row index into the open domain (-1, 1) by sampling
// the cell center.
func (g *Grid) Coord(i int) float32 { return g.coords[i] }

// Coords returns every domain coordinate along one axis in increasing order.
// The slice is shared; callers must not modify it.
func (g *Grid) Coords() []float32 { return g.coords }
