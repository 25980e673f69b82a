package render

import (
	"image/color"

	"lava-lamp/internal/lava"
)

// Shading controls how a Field is turned into pixels.
type Shading struct {
	Background color.RGBA
	// Glow is the strength of the halo drawn outside the surface.
	Glow float32
	// Rim darkens the surface near its edge.
	Rim float32
}

// DefaultShading returns the standard lamp look.
func DefaultShading() Shading {
	return Shading{
		Background: color.RGBA{R: 18, G: 8, B: 24, A: 255},
		Glow:       0.35,
		Rim:        0.4,
	}
}

// fillFieldRGBA shades f into buf, four bytes per cell. Cells at or above
// Threshold take the blended ball color; cells below fade from a soft halo
// into the background.
func fillFieldRGBA(buf []byte, f *Field, s Shading) {
	bg := lava.Color{
		R: float32(s.Background.R) / 255,
		G: float32(s.Background.G) / 255,
		B: float32(s.Background.B) / 255,
		A: float32(s.Background.A) / 255,
	}
	density := f.Density.Values()
	for i, d := range density {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		tint := f.tint[i]
		var c lava.Color
		if d >= Threshold {
			edge := Threshold / d
			c = tint.Scale(1 - s.Rim*edge*edge)
			c.A = 1
		} else {
			t := d / Threshold
			c = bg.Lerp(tint, s.Glow*t*t)
			c.A = bg.A
		}
		px := c.NRGBA()
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// RGBA shades f into a freshly allocated buffer.
func RGBA(f *Field, s Shading) []byte {
	buf := make([]byte, f.Density.W*f.Density.H*4)
	fillFieldRGBA(buf, f, s)
	return buf
}
