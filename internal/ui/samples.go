package ui

import (
	"math"

	"lava-lamp/internal/core"
	"lava-lamp/internal/lava"
	"lava-lamp/internal/render"
)

type fieldSample struct {
	cx float64
	cy float64
	sx float64
	sy float64
}

// sampleGrid spreads roughly targetSamples points evenly over a w×h field and
// returns them with their screen positions and the spacing in screen pixels.
func sampleGrid(size core.Size, scale int) ([]fieldSample, float64) {
	if size.W <= 0 || size.H <= 0 {
		return nil, 0
	}
	if scale <= 0 {
		scale = 1
	}
	const (
		targetSamples = 240.0
		minSpacing    = 6
		maxSpacing    = 24
	)
	spacing := int(math.Sqrt(float64(size.W*size.H) / targetSamples))
	spacing = min(max(spacing, minSpacing), maxSpacing)

	countX := max((size.W+spacing-1)/spacing, 1)
	countY := max((size.H+spacing-1)/spacing, 1)
	startX := max((size.W-1-(countX-1)*spacing)/2, 0)
	startY := max((size.H-1-(countY-1)*spacing)/2, 0)

	samples := make([]fieldSample, 0, countX*countY)
	for yi := 0; yi < countY; yi++ {
		cy := float64(min(startY+yi*spacing, size.H-1)) + 0.5
		for xi := 0; xi < countX; xi++ {
			cx := float64(min(startX+xi*spacing, size.W-1)) + 0.5
			samples = append(samples, fieldSample{cx: cx, cy: cy, sx: cx * float64(scale), sy: cy * float64(scale)})
		}
	}
	return samples, float64(spacing) * float64(scale)
}

// convectionAt returns the convection force at a field cell in screen
// orientation (Y down).
func convectionAt(w *lava.World, v render.View, cx, cy float64) (float64, float64) {
	p := v.PointAt(float32(cx), float32(cy))
	c := w.ConvectionAt(p.Y(), p.Z())
	return float64(c.X()), -float64(c.Y())
}

// heatBands returns, per field row, the net heating in [-1,1]: positive rows
// warm the lava and negative rows cool it.
func heatBands(w *lava.World, v render.View) []float32 {
	bands := make([]float32, max(v.H, 0))
	for y := range bands {
		p := v.Point(0, y)
		bands[y] = w.Heating(p) - w.Cooling(p)
	}
	return bands
}

func arrowColor(t float64) (r, g, b, a uint8) {
	t = clamp01(t)
	return uint8(math.Round(80 + 70*t)),
		uint8(math.Round(170 + 70*t)),
		uint8(math.Round(230 + 20*t)),
		uint8(math.Round(150 + 90*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
