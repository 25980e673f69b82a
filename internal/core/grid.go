package core

// FloatGrid stores a 2D scalar field in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or zero outside the grid.
func (g *FloatGrid) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out of range coordinates are ignored.
func (g *FloatGrid) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *FloatGrid) Clone() *FloatGrid {
	c := &FloatGrid{W: g.W, H: g.H, data: make([]float32, len(g.data))}
	copy(c.data, g.data)
	return c
}
