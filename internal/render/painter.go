//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads shaded fields to an offscreen image and draws it scaled.
type Painter struct {
	img     *ebiten.Image
	buf     []byte
	w, h    int
	shading Shading
}

// NewPainter allocates a painter for w×h fields.
func NewPainter(w, h int, s Shading) *Painter {
	return &Painter{
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, w*h*4),
		w:       w,
		h:       h,
		shading: s,
	}
}

// Paint shades f and draws it onto screen. A nil or mismatched field leaves
// the previous frame in place.
func (p *Painter) Paint(screen *ebiten.Image, f *Field, scale int) {
	if f != nil && f.Density.W == p.w && f.Density.H == p.h {
		fillFieldRGBA(p.buf, f, p.shading)
		p.img.WritePixels(p.buf)
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(p.img, op)
}
