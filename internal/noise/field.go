// Package noise provides the seeded scalar field that drives convection
// currents inside the lamp.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// directionOffset separates the two channels used by Direction in noise space.
const directionOffset = 137.31

// Options tunes how world coordinates map into noise space.
type Options struct {
	// Scale is the number of world units spanned by one noise unit.
	Scale float32
	// Scroll is the world-space offset applied per second of simulated time.
	Scroll mgl32.Vec2
	// Epsilon is the finite-difference step, in world units, used by Curl.
	Epsilon float32

	Alpha   float64
	Beta    float64
	Octaves int32
}

// DefaultOptions returns the options used by the classic lamp.
func DefaultOptions() Options {
	return Options{
		Scale:   10,
		Scroll:  mgl32.Vec2{10, 7},
		Epsilon: 0.1,
		Alpha:   2,
		Beta:    2,
		Octaves: 3,
	}
}

// Field samples a deterministic perlin field. Sampling never consumes
// randomness, so equal inputs give equal outputs for the lifetime of the field.
type Field struct {
	opts Options
	seed int64
	p    *perlin.Perlin
}

// New builds a field for the given seed.
func New(seed int64, opts Options) *Field {
	def := DefaultOptions()
	if !(opts.Scale > 0) {
		opts.Scale = def.Scale
	}
	if !(opts.Epsilon > 0) {
		opts.Epsilon = def.Epsilon
	}
	if opts.Alpha <= 0 {
		opts.Alpha = def.Alpha
	}
	if opts.Beta <= 0 {
		opts.Beta = def.Beta
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	return &Field{
		opts: opts,
		seed: seed,
		p:    perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, seed),
	}
}

// Seed returns the seed the field was built with.
func (f *Field) Seed() int64 { return f.seed }

// Options returns the effective options.
func (f *Field) Options() Options { return f.opts }

// SetScroll changes the scroll velocity without reseeding.
func (f *Field) SetScroll(scroll mgl32.Vec2) { f.opts.Scroll = scroll }

// SetScale changes the spatial scale without reseeding. Non-positive values are ignored.
func (f *Field) SetScale(scale float32) {
	if scale > 0 {
		f.opts.Scale = scale
	}
}

func (f *Field) coords(x, y, t float32) (float64, float64) {
	inv := 1 / f.opts.Scale
	nx := (x + f.opts.Scroll.X()*t) * inv
	ny := (y + f.opts.Scroll.Y()*t) * inv
	return float64(nx), float64(ny)
}

// Sample returns the field value in [0,1] at (x, y) after scrolling by t seconds.
func (f *Field) Sample(x, y, t float32) float32 {
	nx, ny := f.coords(x, y, t)
	return remap01(f.p.Noise2D(nx, ny))
}

// Sample3 returns the 3D field value in [0,1]. No scrolling is applied.
func (f *Field) Sample3(x, y, z float32) float32 {
	inv := float64(1 / f.opts.Scale)
	return remap01(f.p.Noise3D(float64(x)*inv, float64(y)*inv, float64(z)*inv))
}

// Direction returns a pseudo-random vector with components in [-1,1] built
// from two independent channels of the field.
func (f *Field) Direction(x, y, t float32) mgl32.Vec2 {
	nx, ny := f.coords(x, y, t)
	a := remap01(f.p.Noise2D(nx, ny))
	b := remap01(f.p.Noise2D(nx+directionOffset, ny+directionOffset))
	return mgl32.Vec2{a*2 - 1, b*2 - 1}
}

// Curl returns a unit vector perpendicular to the local gradient of the field,
// which produces swirling, non-diverging currents. The result is the gradient
// direction atan2(dY, dX) rotated by -90 degrees, not the gradient itself.
// Flat or invalid regions yield the zero vector.
func (f *Field) Curl(x, y, t float32) mgl32.Vec2 {
	e := f.opts.Epsilon
	dX := float64(f.Sample(x+e, y, t) - f.Sample(x-e, y, t))
	dY := float64(f.Sample(x, y+e, t) - f.Sample(x, y-e, t))
	if math.IsNaN(dX) || math.IsNaN(dY) || math.Hypot(dX, dY) < 1e-9 {
		return mgl32.Vec2{}
	}
	angle := math.Atan2(dY, dX) - math.Pi/2
	v := mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}
	if v[0] != v[0] || v[1] != v[1] {
		return mgl32.Vec2{}
	}
	return v
}

func remap01(v float64) float32 {
	if math.IsNaN(v) {
		return 0.5
	}
	r := v*0.5 + 0.5
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return float32(r)
}
