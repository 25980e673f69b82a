package lava

import "github.com/go-gl/mathgl/mgl32"

// minHeatRate keeps large balls from freezing at a fixed temperature.
const minHeatRate = 0.05

// applyHeat exchanges heat with the lamp according to each ball's height and
// pushes the balls along the heat direction and the convection field.
func (w *World) applyHeat(dt float32) {
	p := w.cfg.Params
	if !p.EnableHeat {
		return
	}
	for _, b := range w.balls {
		h := w.heightFraction(b.position)
		delta := p.HeatingCurve.Evaluate(h) - p.CoolingCurve.Evaluate(h)
		b.temperature = clampf(b.temperature+delta*dt*heatRate(b.radius), 0, p.MaxTemperature)

		push := p.HeatDirection.Mul(b.temperature * dt)
		c := w.convection(b.position).Mul(dt)
		push = push.Add(mgl32.Vec3{0, c.X(), c.Y()})
		b.velocity = b.velocity.Add(push)
	}
}

// heightFraction maps the vertical coordinate onto [0,1], 0 at the floor.
func (w *World) heightFraction(pos mgl32.Vec3) float32 {
	return clamp01(invLerp(pos.Z(), -w.size.Z(), w.size.Z()))
}

// heatRate scales heat exchange by size: small balls heat and cool quickly.
func heatRate(radius float32) float32 {
	return clampf(1-radius, minHeatRate, 1)
}

// Heating evaluates the heating curve at pos.
func (w *World) Heating(pos mgl32.Vec3) float32 {
	return w.cfg.Params.HeatingCurve.Evaluate(w.heightFraction(pos))
}

// Cooling evaluates the cooling curve at pos.
func (w *World) Cooling(pos mgl32.Vec3) float32 {
	return w.cfg.Params.CoolingCurve.Evaluate(w.heightFraction(pos))
}

func (w *World) convection(pos mgl32.Vec3) mgl32.Vec2 {
	p := w.cfg.Params
	if p.ConvectionPower == 0 {
		return mgl32.Vec2{}
	}
	var dir mgl32.Vec2
	switch p.ConvectionMode {
	case ConvectionDirect:
		dir = w.noise.Direction(pos.Y(), pos.Z(), w.elapsed)
	default:
		dir = w.noise.Curl(pos.Y(), pos.Z(), w.elapsed)
	}
	return dir.Mul(p.ConvectionPower)
}

// ConvectionAt returns the convection acceleration in the (Y, Z) plane at the
// current simulated time.
func (w *World) ConvectionAt(y, z float32) mgl32.Vec2 {
	return w.convection(mgl32.Vec3{0, y, z})
}
