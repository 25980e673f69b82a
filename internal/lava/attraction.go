package lava

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/geom"
)

// AttractToPoint pulls every ball towards target. The pull falls off with
// the squared distance and is divided by the ball's mass, so big balls barely
// react. Balls closer than minDistance are left alone. The resulting velocity
// is clamped by MaxVelocity.
//
// The pull is added to the velocity, so calling it once per frame from an
// input handler composes predictably.
func (w *World) AttractToPoint(target mgl32.Vec3, force, minDistance float32) {
	w.AttractToPointMass(target, force, minDistance, 1)
}

// AttractToPointMass is AttractToPoint with control over how much mass
// matters: 0 treats every ball as unit mass, 1 uses the full mass.
func (w *World) AttractToPointMass(target mgl32.Vec3, force, minDistance, massDamping float32) {
	if geom.IsNaN3(target) || isNaN(force) || force == 0 {
		return
	}
	massDamping = clamp01(massDamping)
	minSq := minDistSq(minDistance)
	dt := w.dt()
	for _, b := range w.balls {
		dir, d2, ok := attraction(b.position, target, minSq)
		if !ok {
			continue
		}
		mass := 1 + (b.Mass()-1)*massDamping
		intensity := force * dt / (mass * d2)
		b.velocity = w.clampVelocity(b.velocity.Add(dir.Mul(intensity)))
	}
}

// attractToLava makes every ball attract every other one. Velocities are
// blended towards the velocity the pull asks for rather than accumulated,
// since each ball is visited once per other ball.
func (w *World) attractToLava(dt float32) {
	p := w.cfg.Params
	if p.LavaAttractionForce == 0 || len(w.balls) < 2 {
		return
	}
	minSq := minDistSq(p.LavaAttractionMinRange)
	blend := clamp01(dt * p.LavaAttractionBlend)
	for _, src := range w.balls {
		for _, b := range w.balls {
			if b.id == src.id {
				continue
			}
			dir, d2, ok := attraction(b.position, src.position, minSq)
			if !ok {
				continue
			}
			want := w.clampVelocity(dir.Mul(p.LavaAttractionForce / (b.Mass() * d2)))
			b.velocity = lerp3(b.velocity, want, blend)
		}
	}
}

func minDistSq(d float32) float32 {
	if !(d > 0) {
		return 0
	}
	return d * d
}

// attraction returns the unit direction from pos to target and the squared
// distance. ok is false inside the minimum range and for coincident points.
func attraction(pos, target mgl32.Vec3, minSq float32) (dir mgl32.Vec3, d2 float32, ok bool) {
	offset := target.Sub(pos)
	d2 = offset.Dot(offset)
	if !(d2 >= minSq) || d2 == 0 || math.IsInf(float64(d2), 0) {
		return mgl32.Vec3{}, 0, false
	}
	return offset.Mul(1 / float32(math.Sqrt(float64(d2)))), d2, true
}
