package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon bounds the intersection denominator below which two segments
// are treated as parallel or coincident.
const parallelEpsilon = 1e-12

// Segment is a directed 2D line segment.
type Segment struct {
	Start mgl32.Vec2
	End   mgl32.Vec2
}

// Delta returns End - Start.
func (s Segment) Delta() mgl32.Vec2 { return s.End.Sub(s.Start) }

// Len returns the segment length.
func (s Segment) Len() float32 { return s.Delta().Len() }

// Hit describes where a moving segment crossed another segment.
type Hit struct {
	// Normal is a unit perpendicular of the crossed segment, oriented against
	// the direction of travel.
	Normal mgl32.Vec2
	// Position is the intersection point.
	Position mgl32.Vec2
	// Distance is measured from the start of the moving segment.
	Distance float32
}

// IntersectSegments tests the moving segment self against other using the
// parametric line/line form. Parallel, coincident and degenerate segments
// never intersect.
func IntersectSegments(self, other Segment) (Hit, bool) {
	x1, y1 := self.Start.X(), self.Start.Y()
	x2, y2 := self.End.X(), self.End.Y()
	x3, y3 := other.Start.X(), other.Start.Y()
	x4, y4 := other.End.X(), other.End.Y()

	den := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if !(math.Abs(float64(den)) >= parallelEpsilon) {
		return Hit{}, false
	}
	uA := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / den
	uB := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / den
	if !(uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1) {
		return Hit{}, false
	}

	delta := self.Delta()
	pos := self.Start.Add(delta.Mul(uA))

	dx := x4 - x3
	dy := y4 - y3
	n1 := Normalize2(mgl32.Vec2{-dy, dx})
	n2 := n1.Mul(-1)
	normal := n1
	if delta.Dot(n1) > 0 {
		normal = n2
	}
	return Hit{
		Normal:   normal,
		Position: pos,
		Distance: uA * delta.Len(),
	}, true
}

// Reflect2 mirrors v about the unit normal n.
func Reflect2(v, n mgl32.Vec2) mgl32.Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Reflect3 mirrors v about the unit normal n.
func Reflect3(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Normalize2 returns the unit vector of v, or zero when v has no usable length.
func Normalize2(v mgl32.Vec2) mgl32.Vec2 {
	l := v.Len()
	if !(l > 0) || math.IsInf(float64(l), 0) {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / l)
}

// Normalize3 returns the unit vector of v, or zero when v has no usable length.
func Normalize3(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if !(l > 0) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsNaN3 reports whether any component of v is NaN.
func IsNaN3(v mgl32.Vec3) bool {
	return v[0] != v[0] || v[1] != v[1] || v[2] != v[2]
}

// ScrubNaN3 zeroes the NaN components of v.
func ScrubNaN3(v mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		if v[i] != v[i] {
			v[i] = 0
		}
	}
	return v
}

// Clamp3 clamps v component-wise into [lo, hi].
func Clamp3(v, lo, hi mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		v[i] = mgl32.Clamp(v[i], lo[i], hi[i])
	}
	return v
}
