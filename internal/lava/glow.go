package lava

import "github.com/go-gl/mathgl/mgl32"

// Averages summarises the lava in the Y/Z plane.
type Averages struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Color    Color
	Count    int
}

// ComputeAverages averages positions, velocities and clamped colors.
func ComputeAverages(balls []State) Averages {
	if len(balls) == 0 {
		return Averages{Color: White}
	}
	var (
		pos, vel mgl32.Vec2
		col      Color
	)
	for _, b := range balls {
		pos = pos.Add(mgl32.Vec2{b.Position.Y(), b.Position.Z()})
		vel = vel.Add(mgl32.Vec2{b.Velocity.Y(), b.Velocity.Z()})
		col = col.Add(b.CalculatedColor.Clamp01())
	}
	inv := 1 / float32(len(balls))
	col = col.Scale(inv)
	col.A *= inv
	return Averages{Position: pos.Mul(inv), Velocity: vel.Mul(inv), Color: col, Count: len(balls)}
}

// GlowConfig tunes the lamp light that follows the lava.
type GlowConfig struct {
	// PositionScale multiplies the average lava position.
	PositionScale float32
	// VelocityMaxInput is the average speed mapped to HighVelocityAttenuation.
	VelocityMaxInput        float32
	LowVelocityAttenuation  float32
	HighVelocityAttenuation float32
	SaturationOffset        float64
	ValueOffset             float64
	// Rate is the exponential smoothing rate per second.
	Rate float32
}

// DefaultGlowConfig returns the standard light settings.
func DefaultGlowConfig() GlowConfig {
	return GlowConfig{
		PositionScale:           1,
		VelocityMaxInput:        20,
		LowVelocityAttenuation:  2,
		HighVelocityAttenuation: 0.25,
		Rate:                    8,
	}
}

// Glow is a point light that drifts with the lava, brightens as the lava
// speeds up and takes on the lava's average color.
type Glow struct {
	cfg         GlowConfig
	offset      mgl32.Vec2
	attenuation float32
	color       Color
}

// NewGlow returns a light resting at the origin.
func NewGlow(cfg GlowConfig) *Glow {
	return &Glow{cfg: cfg, attenuation: cfg.LowVelocityAttenuation, color: White}
}

func (g *Glow) Offset() mgl32.Vec2 { return g.offset }

func (g *Glow) Attenuation() float32 { return g.attenuation }

func (g *Glow) Color() Color { return g.color }

// Update eases the light towards the averages. An empty lamp leaves the light
// untouched.
func (g *Glow) Update(avg Averages, dt float32) {
	if avg.Count == 0 || !(dt > 0) {
		return
	}
	target := avg.Position.Mul(g.cfg.PositionScale)
	g.offset = expDecayTo2(g.offset, target, g.cfg.Rate, dt)

	att := remap(avg.Velocity.Len(), 0, g.cfg.VelocityMaxInput,
		g.cfg.LowVelocityAttenuation, g.cfg.HighVelocityAttenuation)
	g.attenuation = expDecayTo(g.attenuation, att, g.cfg.Rate, dt)

	g.color = avg.Color.ShiftHSV(0, g.cfg.SaturationOffset, g.cfg.ValueOffset)
}
