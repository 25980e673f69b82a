package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/lava"
)

// Interaction strengths used by the pointer.
const (
	DefaultAttractForce       = 400
	DefaultAttractMinDistance = 0.5
	DefaultMassDamping        = 0.5
)

// Controller holds the viewer-independent state of an interactive lamp:
// pausing, single steps, pointer attraction and spawning, and the glow that
// follows the lava. Both the window and the terminal viewer drive one.
type Controller struct {
	lamp *lava.Lamp
	glow *lava.Glow

	AttractForce       float32
	AttractMinDistance float32
	MassDamping        float32

	paused   bool
	stepOnce bool
	seed     int64
	ticks    uint64
}

// NewController wraps lamp. The seed is reused by Reset.
func NewController(lamp *lava.Lamp) *Controller {
	return &Controller{
		lamp:               lamp,
		glow:               lava.NewGlow(lava.DefaultGlowConfig()),
		AttractForce:       DefaultAttractForce,
		AttractMinDistance: DefaultAttractMinDistance,
		MassDamping:        DefaultMassDamping,
		seed:               lamp.Seed(),
	}
}

func (c *Controller) Lamp() *lava.Lamp { return c.lamp }

func (c *Controller) Glow() *lava.Glow { return c.glow }

func (c *Controller) Paused() bool { return c.paused }

// Ticks counts the steps taken since construction.
func (c *Controller) Ticks() uint64 { return c.ticks }

func (c *Controller) TogglePause() { c.paused = !c.paused }

func (c *Controller) Resume() { c.paused = false }

// StepOnce advances a paused lamp by one tick on the next Tick call.
func (c *Controller) StepOnce() { c.stepOnce = true }

// Tick advances the lamp by dt unless paused and reports whether it did.
func (c *Controller) Tick(dt float32) bool {
	if c.paused && !c.stepOnce {
		return false
	}
	c.stepOnce = false
	c.lamp.Step(dt)
	c.glow.Update(lava.ComputeAverages(c.lamp.Snapshot()), dt)
	c.ticks++
	return true
}

// Attract pulls every ball towards p.
func (c *Controller) Attract(p mgl32.Vec3) {
	c.lamp.AttractToPointMass(p, c.AttractForce, c.AttractMinDistance, c.MassDamping)
}

// Spawn adds a ball of the lamp's lava color at p, sized halfway between the
// generator's radius bounds.
func (c *Controller) Spawn(p mgl32.Vec3) (*lava.Metaball, error) {
	g := c.lamp.Generator().Config()
	radius := (g.MinRadius + g.MaxRadius) / 2
	return c.lamp.AddMetaball(p, c.lamp.Params().LavaColor, radius)
}

// ToggleVelocityColors switches between heat and speed coloring.
func (c *Controller) ToggleVelocityColors() {
	c.lamp.SetVisualizeVelocity(!c.lamp.Params().VisualizeVelocity)
}

// Reset repopulates the lamp with the current seed.
func (c *Controller) Reset() {
	c.lamp.Reset(c.seed)
	c.stepOnce = false
}

// Reseed repopulates the lamp with a seed derived from the clock.
func (c *Controller) Reseed() {
	c.seed = time.Now().UnixNano()
	c.Reset()
}

func (c *Controller) Seed() int64 { return c.seed }
