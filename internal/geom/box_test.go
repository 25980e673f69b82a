package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoxEdgesFaceInward(t *testing.T) {
	box := Box{HalfW: 3, HalfH: 2}
	for i, edge := range box.Edges() {
		d := edge.Delta()
		left := Normalize2(mgl32.Vec2{-d.Y(), d.X()})
		if !near(left.X(), edge.Inward.X()) || !near(left.Y(), edge.Inward.Y()) {
			t.Fatalf("edge %d: left normal %v != inward %v", i, left, edge.Inward)
		}
		mid := edge.Start.Add(d.Mul(0.5))
		if !box.Contains(mid.Add(edge.Inward.Mul(0.1))) {
			t.Fatalf("edge %d: inward normal points out of the box", i)
		}
	}
}

func TestBoxFirstHitPicksNearestEdge(t *testing.T) {
	box := Box{HalfW: 10, HalfH: 10}
	seg := Segment{mgl32.Vec2{8, 8}, mgl32.Vec2{20, 12}}

	hit, ok := box.FirstHit(seg)
	if !ok {
		t.Fatal("expected a wall hit")
	}
	if !near(hit.Position.X(), 10) {
		t.Fatalf("hit %v, want the right wall first", hit.Position)
	}
	if !near(hit.Normal.X(), -1) {
		t.Fatalf("normal %v, want (-1,0)", hit.Normal)
	}
}

func TestBoxFirstHitIgnoresDepartingWall(t *testing.T) {
	box := Box{HalfW: 10, HalfH: 10}
	seg := Segment{mgl32.Vec2{10, 0}, mgl32.Vec2{5, 0}}
	if hit, ok := box.FirstHit(seg); ok {
		t.Fatalf("moving inward off a wall must not hit it, got %+v", hit)
	}
}

func TestBoxFirstHitOnWallMovingOut(t *testing.T) {
	box := Box{HalfW: 10, HalfH: 10}
	seg := Segment{mgl32.Vec2{0, 10}, mgl32.Vec2{0, 12}}
	hit, ok := box.FirstHit(seg)
	if !ok {
		t.Fatal("leaving through the wall it sits on must register")
	}
	if !near(hit.Distance, 0) || !near(hit.Normal.Y(), -1) {
		t.Fatalf("hit = %+v, want distance 0 and normal (0,-1)", hit)
	}
}

func TestBoxClamp(t *testing.T) {
	box := Box{HalfW: 1, HalfH: 2}
	p := box.Clamp(mgl32.Vec2{5, -5})
	if p != (mgl32.Vec2{1, -2}) {
		t.Fatalf("Clamp = %v", p)
	}
}
