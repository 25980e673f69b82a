package lava

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/geom"
)

// applyDamping decays velocity exponentially. Bigger balls lose momentum
// faster. The factor lies in (0,1], so speed never grows and direction never
// flips.
func (w *World) applyDamping(dt float32) {
	k := w.cfg.Params.DampingStrength
	if !(k > 0) {
		return
	}
	for _, b := range w.balls {
		f := float32(math.Exp(float64(-k * dt * b.radius)))
		b.velocity = b.velocity.Mul(f)
	}
}

func (w *World) applyGravity(dt float32) {
	g := w.cfg.Params.Gravity
	if g.Len() == 0 {
		return
	}
	step := g.Mul(dt)
	for _, b := range w.balls {
		b.velocity = b.velocity.Add(step)
	}
}

// applyVelocity moves every ball through the collision backend and then
// clamps it into the lamp regardless of what the backend returned.
func (w *World) applyVelocity(dt float32) {
	var backend CollisionBackend = FreeBackend{}
	if w.cfg.Params.EnableCollision {
		backend = w.backend
	}
	for _, b := range w.balls {
		b.position = geom.ScrubNaN3(b.position)
		b.velocity = geom.ScrubNaN3(b.velocity)
		w.keepInBounds(b)

		delta := b.velocity.Mul(dt)
		if delta.Len() >= motionEpsilon {
			pos, vel := backend.Resolve(b.body(w, dt), delta)
			b.position = geom.ScrubNaN3(pos)
			b.velocity = geom.ScrubNaN3(vel)
		}
		w.keepInBounds(b)
	}
}

func (w *World) keepInBounds(b *Metaball) {
	b.position = geom.Clamp3(b.position, w.size.Mul(-1), w.size)
}

// clampVelocity bounds v component-wise by MaxVelocity.
func (w *World) clampVelocity(v mgl32.Vec3) mgl32.Vec3 {
	m := w.cfg.Params.MaxVelocity
	return geom.Clamp3(v, m.Mul(-1), m)
}
