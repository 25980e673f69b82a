package geom

import "github.com/go-gl/mathgl/mgl32"

// Edge is one side of a Box together with the normal pointing into the box.
type Edge struct {
	Segment
	Inward mgl32.Vec2
}

// Box is an axis-aligned rectangle centered on the origin, described by its
// half-extents. X is horizontal and Y points up.
type Box struct {
	HalfW float32
	HalfH float32
}

// Edges returns the left, bottom, right and top edges. The edges are wound
// counter-clockwise so every left-hand perpendicular faces inward.
func (b Box) Edges() [4]Edge {
	w, h := b.HalfW, b.HalfH
	return [4]Edge{
		{Segment{mgl32.Vec2{-w, h}, mgl32.Vec2{-w, -h}}, mgl32.Vec2{1, 0}},
		{Segment{mgl32.Vec2{-w, -h}, mgl32.Vec2{w, -h}}, mgl32.Vec2{0, 1}},
		{Segment{mgl32.Vec2{w, -h}, mgl32.Vec2{w, h}}, mgl32.Vec2{-1, 0}},
		{Segment{mgl32.Vec2{w, h}, mgl32.Vec2{-w, h}}, mgl32.Vec2{0, -1}},
	}
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p mgl32.Vec2) bool {
	return p.X() >= -b.HalfW && p.X() <= b.HalfW && p.Y() >= -b.HalfH && p.Y() <= b.HalfH
}

// Clamp pulls p onto the box.
func (b Box) Clamp(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mgl32.Clamp(p.X(), -b.HalfW, b.HalfW),
		mgl32.Clamp(p.Y(), -b.HalfH, b.HalfH),
	}
}

// FirstHit returns the nearest edge crossed by seg while leaving the box.
// Crossings made while travelling inward, such as departing from a wall the
// segment starts on, are ignored so a bounce always makes progress.
func (b Box) FirstHit(seg Segment) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, edge := range b.Edges() {
		hit, ok := IntersectSegments(seg, edge.Segment)
		if !ok {
			continue
		}
		if hit.Normal.Dot(edge.Inward) <= 0 {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}
