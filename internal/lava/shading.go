package lava

// slowColor and fastColor bound the speed gradient shown when velocities are
// visualised.
var (
	slowColor = Blue.Scale(0.7)
	fastColor = Red.Scale(0.4)
)

func (w *World) updateColors() {
	for _, b := range w.balls {
		b.calculatedColor = w.colorFor(b)
	}
}

func (w *World) colorFor(b *Metaball) Color {
	p := w.cfg.Params
	if p.VisualizeVelocity {
		speed := float32(0)
		if p.DebugSpeedRange > 0 {
			speed = clamp01(b.Speed() / p.DebugSpeedRange)
		}
		return slowColor.Lerp(fastColor, easeIn(speed))
	}
	var heat float32
	if p.EnableHeat && p.MaxTemperature > 0 {
		heat = sineEaseIn(clamp01(b.temperature / p.MaxTemperature))
	}
	return b.initialColor.Lerp(p.HotColor, heat)
}

// jitter offsets hue by up to ±360·HueVariance degrees and saturation and
// value by up to their variances.
func (w *World) jitter(c Color) Color {
	p := w.cfg.Params
	dh := float64(w.rng.Range(-360, 360) * p.HueVariance)
	ds := float64(w.rng.Signed() * p.SaturationVariance)
	dv := float64(w.rng.Signed() * p.ValueVariance)
	return c.ShiftHSV(dh, ds, dv)
}
