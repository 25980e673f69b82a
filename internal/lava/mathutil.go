package lava

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func clampf(v, lo, hi float32) float32 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 { return clampf(v, 0, 1) }

func invLerp(v, a, b float32) float32 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

func remap(v, inLo, inHi, outLo, outHi float32) float32 {
	t := clamp01(invLerp(v, inLo, inHi))
	return outLo + (outHi-outLo)*t
}

func isNaN(v float32) bool { return v != v }

// expDecayTo moves from towards to, closing the gap at rate per second.
func expDecayTo(from, to, rate, dt float32) float32 {
	k := float32(math.Exp(float64(-rate * dt)))
	return to + (from-to)*k
}

func expDecayTo2(from, to mgl32.Vec2, rate, dt float32) mgl32.Vec2 {
	return mgl32.Vec2{expDecayTo(from[0], to[0], rate, dt), expDecayTo(from[1], to[1], rate, dt)}
}

func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
