package lava

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxBalls is the hard cap on metaballs per world. Renderers size their
// upload buffers from it.
const MaxBalls = 256

// density converts volume into mass.
const density = 1

// ID identifies a metaball for the lifetime of its world. IDs are never
// reused, so side tables keyed by ID stay valid after removals.
type ID uint32

// Metaball is a single blob of lava. Its state is owned by the World that
// spawned it; collaborators only read it through the accessors.
type Metaball struct {
	id              ID
	position        mgl32.Vec3
	velocity        mgl32.Vec3
	radius          float32
	temperature     float32
	initialColor    Color
	calculatedColor Color
}

// ID returns the stable handle assigned at spawn.
func (m *Metaball) ID() ID { return m.id }

func (m *Metaball) Position() mgl32.Vec3 { return m.position }

func (m *Metaball) Velocity() mgl32.Vec3 { return m.velocity }

func (m *Metaball) Radius() float32 { return m.radius }

func (m *Metaball) Temperature() float32 { return m.temperature }

// InitialColor is the jittered spawn color.
func (m *Metaball) InitialColor() Color { return m.initialColor }

// CalculatedColor is the color produced by the last color pass.
func (m *Metaball) CalculatedColor() Color { return m.calculatedColor }

func (m *Metaball) Speed() float32 { return m.velocity.Len() }

// RenderData packs the ball for upload.
func (m *Metaball) RenderData() RenderData {
	return newRenderData(m.position, m.radius, m.calculatedColor)
}

// State returns a detached copy of the ball.
func (m *Metaball) State() State {
	return State{
		ID:              m.id,
		Position:        m.position,
		Velocity:        m.velocity,
		Radius:          m.radius,
		Temperature:     m.temperature,
		InitialColor:    m.initialColor,
		CalculatedColor: m.calculatedColor,
	}
}

// Volume is the volume of a sphere with the ball's radius.
func (m *Metaball) Volume() float32 {
	r := float64(m.radius)
	return float32(4.0 / 3.0 * math.Pi * r * r * r)
}

// Mass is proportional to Volume, so large balls are far less mobile than
// small ones.
func (m *Metaball) Mass() float32 { return m.Volume() * density }

// State is a value copy of a metaball, safe to hand to other goroutines.
type State struct {
	ID              ID
	Position        mgl32.Vec3
	Velocity        mgl32.Vec3
	Radius          float32
	Temperature     float32
	InitialColor    Color
	CalculatedColor Color
}

// RenderData is the fixed GPU record of one ball: position and radius in the
// first vector, color in the second.
type RenderData struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
}

func newRenderData(pos mgl32.Vec3, radius float32, c Color) RenderData {
	return RenderData{
		Position: mgl32.Vec4{pos.X(), pos.Y(), pos.Z(), radius},
		Color:    c.Clamp01().Vec4(),
	}
}

// Radius returns the packed radius.
func (r RenderData) Radius() float32 { return r.Position.W() }

// WithColor returns a copy with a different color.
func (r RenderData) WithColor(c Color) RenderData {
	r.Color = c.Clamp01().Vec4()
	return r
}

// WithPosition returns a copy with a different position.
func (r RenderData) WithPosition(p mgl32.Vec3) RenderData {
	r.Position = mgl32.Vec4{p.X(), p.Y(), p.Z(), r.Position.W()}
	return r
}

// WithRadius returns a copy with a different radius.
func (r RenderData) WithRadius(radius float32) RenderData {
	r.Position[3] = radius
	return r
}
