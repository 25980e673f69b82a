package lava

import (
	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/geom"
)

// MaxBounceDepth is the number of wall bounces resolved in one step before a
// ball is considered stuck.
const MaxBounceDepth = 3

// Body is the view of a ball handed to a collision backend.
type Body struct {
	ID       ID
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Radius   float32
	// Bounds holds the half-extents of the lamp.
	Bounds      mgl32.Vec3
	Restitution float32
	DT          float32
}

func (m *Metaball) body(w *World, dt float32) Body {
	return Body{
		ID:          m.id,
		Position:    m.position,
		Velocity:    m.velocity,
		Radius:      m.radius,
		Bounds:      w.size,
		Restitution: w.cfg.Params.WallRestitution,
		DT:          dt,
	}
}

// CollisionBackend moves a body by wishDelta and returns where it ended up
// and its velocity afterwards.
type CollisionBackend interface {
	Resolve(b Body, wishDelta mgl32.Vec3) (position, velocity mgl32.Vec3)
}

// Releaser is implemented by backends that keep per-ball state. Release is
// called when a ball leaves the world.
type Releaser interface {
	Release(id ID)
}

// SlideBackend bounces balls off the walls of the lamp. Motion is resolved in
// the Y/Z plane; the depth axis moves freely and is clamped by the world.
type SlideBackend struct{}

// Resolve reflects the motion off every wall it crosses and keeps sliding
// along the reflected direction until the travel is used up. A ball that
// bounces more than MaxBounceDepth times in one step stops dead.
func (SlideBackend) Resolve(b Body, wishDelta mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	box := geom.Box{HalfW: b.Bounds.Y(), HalfH: b.Bounds.Z()}
	pos := mgl32.Vec2{b.Position.Y(), b.Position.Z()}
	vel := mgl32.Vec2{b.Velocity.Y(), b.Velocity.Z()}
	delta := mgl32.Vec2{wishDelta.Y(), wishDelta.Z()}
	depth := b.Position.X() + wishDelta.X()
	restitution := max(b.Restitution, 0)

	for bounces := 0; ; bounces++ {
		if bounces > MaxBounceDepth {
			return mgl32.Vec3{depth, pos.X(), pos.Y()}, mgl32.Vec3{}
		}
		remaining := delta.Len()
		if remaining == 0 {
			break
		}
		seg := geom.Segment{Start: pos, End: pos.Add(delta)}
		hit, ok := box.FirstHit(seg)
		if !ok {
			pos = seg.End
			break
		}
		pos = hit.Position
		vel = geom.Reflect2(vel, hit.Normal).Mul(restitution)
		dir := geom.Normalize2(geom.Reflect2(delta, hit.Normal))
		delta = dir.Mul(max(remaining-hit.Distance, 0))
	}
	return mgl32.Vec3{depth, pos.X(), pos.Y()}, mgl32.Vec3{b.Velocity.X(), vel.X(), vel.Y()}
}

// FreeBackend moves balls without any collision.
type FreeBackend struct{}

func (FreeBackend) Resolve(b Body, wishDelta mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	return b.Position.Add(wishDelta), b.Velocity
}

// SphereHost is a rigid-body world that keeps one sphere per ball.
type SphereHost interface {
	// Sync moves the sphere for id towards target, creating it when needed.
	Sync(id ID, target mgl32.Vec3, radius float32)
	// Resolved reads back the sphere's simulated state.
	Resolved(id ID) (position, velocity mgl32.Vec3, ok bool)
	// Destroy drops the sphere for id.
	Destroy(id ID)
}

// ShadowBackend lets a host physics world drive the balls. Each ball has a
// shadow sphere whose target follows position plus motion; the resolved
// sphere state is read back. Balls the host has not resolved yet fall back
// to Fallback, or to SlideBackend when it is nil.
type ShadowBackend struct {
	Host     SphereHost
	Fallback CollisionBackend
}

func (s *ShadowBackend) Resolve(b Body, wishDelta mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	s.Host.Sync(b.ID, b.Position.Add(wishDelta), b.Radius)
	if pos, vel, ok := s.Host.Resolved(b.ID); ok {
		return pos, vel
	}
	if s.Fallback != nil {
		return s.Fallback.Resolve(b, wishDelta)
	}
	return SlideBackend{}.Resolve(b, wishDelta)
}

// Release destroys the shadow sphere of a removed ball.
func (s *ShadowBackend) Release(id ID) { s.Host.Destroy(id) }
