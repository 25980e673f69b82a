//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"lava-lamp/internal/lava"
)

// metaballShader evaluates the metaball sum per pixel on the GPU. Balls and
// Colors hold one vec4 per ball as packed by Uniforms.
const metaballShader = `//kage:unit pixels

package main

var Balls [256]vec4
var Colors [256]vec4
var Count float
var Bounds vec2
var Resolution vec2
var Background vec4
var Glow float
var Rim float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := dst.xy / Resolution
	p := vec2((uv.x-0.5)*2*Bounds.x, -(uv.y-0.5)*2*Bounds.y)
	sum := 0.0
	tint := vec4(0)
	for i := 0; i < 256; i++ {
		if float(i) >= Count {
			break
		}
		d := p - Balls[i].yz
		r := Balls[i].w
		k := r * r / max(dot(d, d), 0.000001)
		sum += k
		tint += Colors[i] * k
	}
	if sum > 0 {
		tint /= sum
	}
	if sum >= 1 {
		edge := 1 / sum
		return vec4(tint.rgb*(1-Rim*edge*edge), 1)
	}
	return vec4(mix(Background.rgb, tint.rgb, Glow*sum*sum), Background.a)
}
`

// ShaderPainter draws the lamp directly from ball records with a Kage shader.
type ShaderPainter struct {
	shader  *ebiten.Shader
	target  *ebiten.Image
	w, h    int
	shading Shading
}

// NewShaderPainter compiles the metaball shader for a w×h target.
func NewShaderPainter(w, h int, s Shading) (*ShaderPainter, error) {
	sh, err := ebiten.NewShader([]byte(metaballShader))
	if err != nil {
		return nil, fmt.Errorf("compile metaball shader: %w", err)
	}
	return &ShaderPainter{shader: sh, target: ebiten.NewImage(w, h), w: w, h: h, shading: s}, nil
}

// Paint renders balls for a view and draws the result scaled onto screen.
func (p *ShaderPainter) Paint(screen *ebiten.Image, v View, balls []lava.RenderData, scale int) {
	positions, colors, count := Uniforms(balls)
	bg := p.shading.Background
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Balls":      positions,
		"Colors":     colors,
		"Count":      float32(count),
		"Bounds":     []float32{v.HalfY, v.HalfZ},
		"Resolution": []float32{float32(p.w), float32(p.h)},
		"Background": []float32{float32(bg.R) / 255, float32(bg.G) / 255, float32(bg.B) / 255, float32(bg.A) / 255},
		"Glow":       p.shading.Glow,
		"Rim":        p.shading.Rim,
	}
	p.target.DrawRectShader(p.w, p.h, p.shader, op)

	if scale <= 0 {
		scale = 1
	}
	dop := &ebiten.DrawImageOptions{}
	dop.GeoM.Scale(float64(scale), float64(scale))
	dop.Filter = ebiten.FilterLinear
	screen.DrawImage(p.target, dop)
}
