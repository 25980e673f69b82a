package lava

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeSphere struct {
	target mgl32.Vec3
	radius float32
}

// fakeHost resolves every sphere straight to its target and reports it as
// having come to rest.
type fakeHost struct {
	spheres map[ID]fakeSphere
	synced  int
}

func newFakeHost() *fakeHost { return &fakeHost{spheres: map[ID]fakeSphere{}} }

func (h *fakeHost) Sync(id ID, target mgl32.Vec3, radius float32) {
	h.spheres[id] = fakeSphere{target: target, radius: radius}
	h.synced++
}

func (h *fakeHost) Resolved(id ID) (mgl32.Vec3, mgl32.Vec3, bool) {
	s, ok := h.spheres[id]
	return s.target, mgl32.Vec3{}, ok
}

func (h *fakeHost) Destroy(id ID) { delete(h.spheres, id) }

func body(pos, vel mgl32.Vec3, bounds mgl32.Vec3) Body {
	return Body{Position: pos, Velocity: vel, Radius: 0.5, Bounds: bounds, Restitution: 0.5, DT: 1}
}

func TestSlideReflectsOffFloor(t *testing.T) {
	b := body(mgl32.Vec3{0, 0, -8}, mgl32.Vec3{0, 0, -10}, mgl32.Vec3{0, 10, 10})
	pos, vel := SlideBackend{}.Resolve(b, mgl32.Vec3{0, 0, -4})
	if !near(pos.Z(), -8) {
		t.Fatalf("z = %f, want -8 after sliding back", pos.Z())
	}
	if vel.Z() <= 0 {
		t.Fatalf("normal component not reversed: %v", vel)
	}
	if vel.Len() > b.Velocity.Len() {
		t.Fatalf("bounce gained speed: %f > %f", vel.Len(), b.Velocity.Len())
	}
}

func TestSlideGlancingHitKeepsTangent(t *testing.T) {
	b := body(mgl32.Vec3{0, 8, 0}, mgl32.Vec3{0, 4, 4}, mgl32.Vec3{0, 10, 10})
	pos, vel := SlideBackend{}.Resolve(b, mgl32.Vec3{0, 4, 4})
	if !near(pos.Y(), 8) || !near(pos.Z(), 4) {
		t.Fatalf("slide ended at %v", pos)
	}
	if !near(vel.Y(), -2) || !near(vel.Z(), 2) {
		t.Fatalf("velocity %v, want (0,-2,2)", vel)
	}
}

func TestSlideWithoutHitMovesFully(t *testing.T) {
	b := body(mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 10, 10})
	pos, vel := SlideBackend{}.Resolve(b, mgl32.Vec3{0, 2, -3})
	if pos != (mgl32.Vec3{0, 3, -2}) || vel != b.Velocity {
		t.Fatalf("free move gave %v %v", pos, vel)
	}
}

func TestSlideStopsAfterBounceCap(t *testing.T) {
	b := body(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 100, 0}, mgl32.Vec3{0, 1, 1})
	pos, vel := SlideBackend{}.Resolve(b, mgl32.Vec3{0, 100, 0})
	if vel != (mgl32.Vec3{}) {
		t.Fatalf("stuck ball kept velocity %v", vel)
	}
	if pos.Y() < -1 || pos.Y() > 1 {
		t.Fatalf("stuck ball left the box: %v", pos)
	}
}

func TestSlideStartingOnWallMakesProgress(t *testing.T) {
	b := body(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 10, 10})
	pos, vel := SlideBackend{}.Resolve(b, mgl32.Vec3{0, 2, 0})
	if !near(pos.Y(), 8) || vel.Y() >= 0 {
		t.Fatalf("ball pinned to wall: pos %v vel %v", pos, vel)
	}
}

func TestFreeBackendIgnoresWalls(t *testing.T) {
	b := body(mgl32.Vec3{0, 9, 0}, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 10, 10})
	pos, _ := FreeBackend{}.Resolve(b, mgl32.Vec3{0, 5, 0})
	if pos.Y() != 14 {
		t.Fatalf("y = %f, want 14", pos.Y())
	}
}

func TestShadowBackendUsesHost(t *testing.T) {
	host := newFakeHost()
	s := &ShadowBackend{Host: host}
	b := body(mgl32.Vec3{0, 1, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 10, 10})
	b.ID = 3
	pos, vel := s.Resolve(b, mgl32.Vec3{0, 0.5, 0})
	if pos != (mgl32.Vec3{0, 1.5, 1}) || vel != (mgl32.Vec3{}) {
		t.Fatalf("host state not read back: %v %v", pos, vel)
	}
	if host.spheres[3].radius != 0.5 {
		t.Fatal("radius not synced")
	}
	s.Release(3)
	if _, ok := host.spheres[3]; ok {
		t.Fatal("release did not destroy the sphere")
	}
}

func TestWorldFallsBackToFreeWithoutCollision(t *testing.T) {
	cfg := quietConfig()
	cfg.Params.EnableCollision = false
	w := New(cfg)
	b := mustAdd(t, w, mgl32.Vec3{0, 9, 0}, 0.5)
	b.velocity = mgl32.Vec3{0, 10, 0}
	w.Step(1)
	if b.Position().Y() != 10 {
		t.Fatalf("ball not clamped: %v", b.Position())
	}
	if b.Velocity().Y() != 10 {
		t.Fatalf("velocity changed without collision: %v", b.Velocity())
	}
}
