package lava

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with channels nominally in [0,1]. Channels may leave
// that range during blending; Clamp01 is applied before a color is rendered.
type Color struct {
	R, G, B, A float32
}

var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Orange = Color{1, 0.6470588, 0, 1}
	Yellow = Color{1, 1, 0, 1}
	Red    = Color{1, 0, 0, 1}
	Blue   = Color{0, 0, 1, 1}
)

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c, 1), nil
}

// FromHSV builds a color from hue in degrees and saturation/value in [0,1].
func FromHSV(h, s, v float64, a float32) Color {
	return fromColorful(colorful.Hsv(wrapHue(h), clamp01f64(s), clamp01f64(v)), a)
}

func fromColorful(c colorful.Color, a float32) Color {
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex formats the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string { return c.Clamp01().toColorful().Hex() }

// HSV returns hue in degrees and saturation/value in [0,1].
func (c Color) HSV() (h, s, v float64) { return c.Clamp01().toColorful().Hsv() }

// Clamp01 clamps every channel into [0,1]. NaN channels become 0.
func (c Color) Clamp01() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Lerp blends towards to by t in [0,1].
func (c Color) Lerp(to Color, t float32) Color {
	t = clamp01(t)
	rgb := c.toColorful().BlendRgb(to.toColorful(), float64(t))
	return fromColorful(rgb, c.A+(to.A-c.A)*t)
}

// Scale multiplies the color channels, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// Add sums two colors channel-wise, alpha included.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// ShiftHSV offsets hue (degrees, wrapped into [0,360)) and saturation/value
// (clamped into [0,1]).
func (c Color) ShiftHSV(dh, ds, dv float64) Color {
	h, s, v := c.HSV()
	return FromHSV(h+dh, s+ds, v+dv, c.A)
}

// Vec4 returns the channels as a vector.
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4{c.R, c.G, c.B, c.A} }

// NRGBA converts the clamped color to 8-bit channels.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp01()
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R) * 255)),
		G: uint8(math.Round(float64(c.G) * 255)),
		B: uint8(math.Round(float64(c.B) * 255)),
		A: uint8(math.Round(float64(c.A) * 255)),
	}
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01f64(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func easeIn(t float32) float32 { return t * t }

func sineEaseIn(t float32) float32 {
	return 1 - float32(math.Cos(float64(t)*math.Pi/2))
}
