package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/core"
	"lava-lamp/internal/lava"
)

// Threshold is the density at which the metaball surface is drawn.
const Threshold = 1

// minDistSq keeps the field finite at ball centers.
const minDistSq = 1e-6

// View maps the Y/Z plane of the lamp onto a W×H grid with a top-left origin.
type View struct {
	W, H         int
	HalfY, HalfZ float32
}

// NewView builds a view of a lamp with the given half-extents.
func NewView(w, h int, size mgl32.Vec3) View {
	return View{W: w, H: h, HalfY: size.Y(), HalfZ: size.Z()}
}

// Cell returns the fractional grid coordinates of p.
func (v View) Cell(p mgl32.Vec3) (x, y float32) {
	u, t := float32(0.5), float32(0.5)
	if v.HalfY != 0 {
		u = p.Y()/v.HalfY*0.5 + 0.5
	}
	if v.HalfZ != 0 {
		t = -p.Z()/v.HalfZ*0.5 + 0.5
	}
	return u * float32(v.W), t * float32(v.H)
}

// Point returns the simulation position at the center of cell (x, y).
func (v View) Point(x, y int) mgl32.Vec3 {
	u := (float32(x) + 0.5) / float32(max(v.W, 1))
	t := (float32(y) + 0.5) / float32(max(v.H, 1))
	return mgl32.Vec3{0, (u - 0.5) * 2 * v.HalfY, -(t - 0.5) * 2 * v.HalfZ}
}

// PointAt maps fractional screen coordinates to the simulation plane.
func (v View) PointAt(x, y float32) mgl32.Vec3 {
	u := x / float32(max(v.W, 1))
	t := y / float32(max(v.H, 1))
	return mgl32.Vec3{0, (u - 0.5) * 2 * v.HalfY, -(t - 0.5) * 2 * v.HalfZ}
}

// Field is a sampled metaball density together with the blended color of the
// balls contributing to each cell.
type Field struct {
	Density *core.FloatGrid
	tint    []lava.Color
}

// NewField allocates a w×h field.
func NewField(w, h int) *Field {
	g := core.NewFloatGrid(w, h)
	return &Field{Density: g, tint: make([]lava.Color, g.W*g.H)}
}

// Size returns the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.Density.W, H: f.Density.H} }

// At returns the density and tint of cell (x, y).
func (f *Field) At(x, y int) (float32, lava.Color) {
	if x < 0 || y < 0 || x >= f.Density.W || y >= f.Density.H {
		return 0, lava.Color{}
	}
	i := f.Density.Index(x, y)
	return f.Density.Values()[i], f.tint[i]
}

// Build samples the classic metaball sum r²/d² for every cell. Each cell's
// tint is the contribution-weighted average of the ball colors.
func (f *Field) Build(v View, balls []lava.RenderData) {
	d := f.Density.Values()
	w := f.Density.W
	for y := 0; y < f.Density.H; y++ {
		for x := 0; x < w; x++ {
			p := v.Point(x, y)
			var (
				sum  float32
				tint mgl32.Vec4
			)
			for _, b := range balls {
				dy := p.Y() - b.Position.Y()
				dz := p.Z() - b.Position.Z()
				r := b.Radius()
				k := r * r / max(dy*dy+dz*dz, minDistSq)
				sum += k
				tint = tint.Add(b.Color.Mul(k))
			}
			i := y*w + x
			d[i] = sum
			if sum > 0 {
				tint = tint.Mul(1 / sum)
			}
			f.tint[i] = lava.Color{R: tint[0], G: tint[1], B: tint[2], A: tint[3]}
		}
	}
}

// Coverage returns the share of cells inside the surface.
func (f *Field) Coverage() float32 {
	inside := 0
	for _, v := range f.Density.Values() {
		if v >= Threshold {
			inside++
		}
	}
	return float32(inside) / float32(len(f.Density.Values()))
}
