//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lava-lamp/internal/core"
	"lava-lamp/internal/lava"
	"lava-lamp/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws debug layers on top of the lamp: velocity vectors (1),
// the convection field (2) and the heating bands with the glow centre (3).
type Overlay struct {
	lamp  *lava.Lamp
	glow  *lava.Glow
	scale int

	showVelocity   bool
	showConvection bool
	showHeat       bool

	pixel *ebiten.Image

	samples    []fieldSample
	sampleSpan float64
	cacheSize  core.Size
	cacheScale int

	bandImg *ebiten.Image
	bandBuf []byte
}

// NewOverlay constructs an overlay for lamp rendered at scale.
func NewOverlay(lamp *lava.Lamp, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Overlay{lamp: lamp, scale: scale, pixel: pixel}
}

// SetGlow attaches the glow whose centre is marked by the heat layer.
func (o *Overlay) SetGlow(g *lava.Glow) { o.glow = g }

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showConvection = !o.showConvection
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.lamp == nil {
		return
	}
	size := o.lamp.Size()
	view := render.NewView(size.W, size.H, o.lamp.SimulationSize())
	if o.showHeat {
		o.drawHeatBands(screen, view)
	}
	if o.showConvection {
		o.drawConvection(screen, view, size)
	}
	if o.showVelocity {
		o.drawVelocities(screen, view)
	}
}

func (o *Overlay) toScreen(v render.View, p mgl32.Vec3) (float64, float64) {
	x, y := v.Cell(p)
	return float64(x) * float64(o.scale), float64(y) * float64(o.scale)
}

func (o *Overlay) drawVelocities(screen *ebiten.Image, v render.View) {
	rangeSpeed := float64(o.lamp.Params().DebugSpeedRange)
	if rangeSpeed <= 0 {
		rangeSpeed = 10
	}
	cellsPerUnit := float64(v.W) / math.Max(float64(2*v.HalfY), 1e-3)
	for _, b := range o.lamp.Metaballs() {
		x, y := o.toScreen(v, b.Position())
		vel := b.Velocity()
		speed := float64(vel.Len())
		t := clamp01(speed / rangeSpeed)
		col := interpolateColor(t)
		o.drawPoint(screen, x, y, float64(o.scale)*2, col)
		if speed < 1e-3 {
			continue
		}
		// Quarter of a second of travel.
		k := 0.25 * cellsPerUnit * float64(o.scale)
		o.drawArrow(screen, x, y, x+float64(vel.Y())*k, y-float64(vel.Z())*k, math.Max(float64(o.scale)*0.6, 1), col)
	}
}

func (o *Overlay) drawConvection(screen *ebiten.Image, v render.View, size core.Size) {
	if o.cacheSize != size || o.cacheScale != o.scale || len(o.samples) == 0 {
		o.samples, o.sampleSpan = sampleGrid(size, o.scale)
		o.cacheSize = size
		o.cacheScale = o.scale
	}
	if len(o.samples) == 0 {
		return
	}
	const calmThreshold = 0.05
	power := float64(o.lamp.Params().ConvectionPower)
	if power <= 0 {
		power = 1
	}
	minLength := o.sampleSpan * 0.3
	maxLength := o.sampleSpan * 0.7
	for _, s := range o.samples {
		vx, vy := convectionAt(o.lamp.World, v, s.cx, s.cy)
		speed := math.Hypot(vx, vy)
		if speed < calmThreshold {
			o.drawPoint(screen, s.sx, s.sy, math.Max(o.sampleSpan*0.15, 1), color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		normalized := clamp01(speed / power)
		length := minLength + (maxLength-minLength)*math.Sqrt(normalized)
		nx, ny := vx/speed, vy/speed
		r, g, b, a := arrowColor(normalized)
		o.drawArrow(screen, s.sx-nx*length*0.4, s.sy-ny*length*0.4, s.sx+nx*length*0.6, s.sy+ny*length*0.6,
			math.Max(float64(o.scale)*0.8, 1), color.RGBA{R: r, G: g, B: b, A: a})
	}
}

func (o *Overlay) drawHeatBands(screen *ebiten.Image, v render.View) {
	bands := heatBands(o.lamp.World, v)
	if len(bands) == 0 {
		return
	}
	if o.bandImg == nil || o.bandImg.Bounds().Dy() != len(bands) {
		o.bandImg = ebiten.NewImage(1, len(bands))
		o.bandBuf = make([]byte, len(bands)*4)
	}
	const maxAlpha = 90.0
	warm := color.RGBA{R: 255, G: 110, B: 40}
	cool := color.RGBA{R: 60, G: 120, B: 255}
	for i, net := range bands {
		tint := warm
		intensity := float64(net)
		if intensity < 0 {
			tint = cool
			intensity = -intensity
		}
		intensity = clamp01(intensity)
		glow := 0.35 + 0.65*math.Sqrt(intensity)
		alpha := maxAlpha * intensity
		// Premultiplied.
		o.bandBuf[i*4+0] = scaleColorComponent(tint.R, glow*alpha/255)
		o.bandBuf[i*4+1] = scaleColorComponent(tint.G, glow*alpha/255)
		o.bandBuf[i*4+2] = scaleColorComponent(tint.B, glow*alpha/255)
		o.bandBuf[i*4+3] = uint8(math.Round(alpha))
	}
	o.bandImg.WritePixels(o.bandBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.W*o.scale), float64(o.scale))
	screen.DrawImage(o.bandImg, op)

	if o.glow != nil {
		off := o.glow.Offset()
		x, y := o.toScreen(v, mgl32.Vec3{0, off.X(), off.Y()})
		c := o.glow.Color().NRGBA()
		o.drawPoint(screen, x, y, float64(o.scale)*5, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
}

func (o *Overlay) drawArrow(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	const headAngle = math.Pi / 6
	length := math.Hypot(x2-x1, y2-y1)
	if length <= 1e-4 {
		return
	}
	head := math.Min(length*0.3, float64(o.scale)*4.5)
	angle := math.Atan2(y2-y1, x2-x1)
	o.drawLine(screen, x1, y1, x2-math.Cos(angle)*head*0.5, y2-math.Sin(angle)*head*0.5, thickness, col)
	o.drawLine(screen, x2, y2, x2-math.Cos(angle+headAngle)*head, y2-math.Sin(angle+headAngle)*head, thickness*0.85, col)
	o.drawLine(screen, x2, y2, x2-math.Cos(angle-headAngle)*head, y2-math.Sin(angle-headAngle)*head, thickness*0.85, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(70 + 185*t)),
		G: uint8(math.Round(140 + 60*(1-t))),
		B: uint8(math.Round(255 * (1 - t))),
		A: 220,
	}
}
