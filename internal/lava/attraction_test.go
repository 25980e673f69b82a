package lava

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAttractToPointInsideMinDistanceIsNoOp(t *testing.T) {
	w := quietWorld(t)
	a := mustAdd(t, w, mgl32.Vec3{0, 0.1, 0}, 0.5)
	b := mustAdd(t, w, mgl32.Vec3{0, -0.2, 0.1}, 0.7)
	a.velocity = mgl32.Vec3{0, 1, 2}
	b.velocity = mgl32.Vec3{0, -3, 0}

	w.AttractToPoint(mgl32.Vec3{}, 500, 1)

	if a.Velocity() != (mgl32.Vec3{0, 1, 2}) || b.Velocity() != (mgl32.Vec3{0, -3, 0}) {
		t.Fatalf("velocities changed: %v %v", a.Velocity(), b.Velocity())
	}
}

func TestAttractToPointSkipsOnlyNearBalls(t *testing.T) {
	w := quietWorld(t)
	inner := mustAdd(t, w, mgl32.Vec3{0, 0.1, 0}, 0.5)
	outer := mustAdd(t, w, mgl32.Vec3{0, 4, 0}, 0.5)

	w.AttractToPoint(mgl32.Vec3{}, 50, 1)

	if inner.Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("near ball moved: %v", inner.Velocity())
	}
	if outer.Velocity().Y() >= 0 {
		t.Fatalf("far ball not pulled towards target: %v", outer.Velocity())
	}
}

func TestAttractToPointAccumulates(t *testing.T) {
	w := quietWorld(t)
	b := mustAdd(t, w, mgl32.Vec3{0, 2, 0}, 0.5)
	w.AttractToPoint(mgl32.Vec3{}, 10, 0.1)
	first := b.Velocity().Y()
	w.AttractToPoint(mgl32.Vec3{}, 10, 0.1)
	second := b.Velocity().Y()

	dt := w.Config().NominalDT
	want := -10 * dt / (b.Mass() * 4)
	if math.Abs(float64(first-want)) > 1e-6 {
		t.Fatalf("first pull %f, want %f", first, want)
	}
	if math.Abs(float64(second-2*want)) > 1e-6 {
		t.Fatalf("second pull %f, want %f", second, 2*want)
	}
}

func TestAttractToPointClampsVelocity(t *testing.T) {
	w := quietWorld(t)
	b := mustAdd(t, w, mgl32.Vec3{0, 1, 0}, 0.1)
	w.AttractToPoint(mgl32.Vec3{}, 1e9, 0)
	limit := w.Params().MaxVelocity
	if b.Velocity().Y() != -limit.Y() {
		t.Fatalf("vy = %f, want %f", b.Velocity().Y(), -limit.Y())
	}
}

func TestAttractToPointMassDamping(t *testing.T) {
	w := quietWorld(t)
	heavy := mustAdd(t, w, mgl32.Vec3{0, 2, 0}, 0.9)
	w.AttractToPointMass(mgl32.Vec3{}, 10, 0, 0)
	unit := heavy.Velocity().Y()
	heavy.velocity = mgl32.Vec3{}
	w.AttractToPointMass(mgl32.Vec3{}, 10, 0, 1)
	full := heavy.Velocity().Y()
	if !(unit < full && full < 0) {
		t.Fatalf("mass damping: unit %f, full %f", unit, full)
	}
}

func TestAttractToNaNTargetIsIgnored(t *testing.T) {
	w := quietWorld(t)
	b := mustAdd(t, w, mgl32.Vec3{0, 2, 0}, 0.5)
	nan := float32(math.NaN())
	w.AttractToPoint(mgl32.Vec3{0, nan, 0}, 10, 0)
	w.AttractToPoint(mgl32.Vec3{}, nan, 0)
	if b.Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("NaN attraction leaked: %v", b.Velocity())
	}
}

func TestAttractToPointAtBallCenterIsIgnored(t *testing.T) {
	w := quietWorld(t)
	b := mustAdd(t, w, mgl32.Vec3{0, 2, 0}, 0.5)
	w.AttractToPoint(b.Position(), 10, 0)
	if b.Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("zero-distance attraction produced %v", b.Velocity())
	}
}
