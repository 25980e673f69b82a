// Package lava simulates a lava lamp: a bounded set of metaballs pushed around
// by heat, convection, gravity and mutual attraction, bouncing off the walls
// of the lamp.
//
// The simulation is single threaded. Callers serialise Step with the mutation
// entry points (AddMetaball, AttractToPoint, Clear and friends) themselves.
package lava

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/core"
	"lava-lamp/internal/geom"
	"lava-lamp/internal/noise"
)

var (
	// ErrMetaballLimit is returned when a spawn would exceed MaxBalls.
	ErrMetaballLimit = errors.New("metaball limit reached")
	// ErrInvalidRadius is returned for radii that are not strictly positive.
	ErrInvalidRadius = errors.New("invalid metaball radius")
)

// motionEpsilon is the smallest per-step displacement worth resolving.
const motionEpsilon = 1e-4

// Option customises a World at construction.
type Option func(*World)

// WithLogger routes capacity and generator reports to l.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithBackend selects the collision backend. The default is SlideBackend.
func WithBackend(b CollisionBackend) Option {
	return func(w *World) {
		if b != nil {
			w.backend = b
		}
	}
}

// World owns every metaball of a lamp together with the bounded volume they
// live in.
type World struct {
	cfg  Config
	size mgl32.Vec3

	balls  []*Metaball
	nextID ID

	seed  int64
	rng   *core.RNG
	noise *noise.Field

	backend CollisionBackend
	logger  *log.Logger

	elapsed float32
	lastDT  float32
}

// New creates an empty world. Populate it with AddMetaball or a Generator.
func New(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:     cfg,
		size:    sanitizeSize(cfg.SimulationSize),
		backend: SlideBackend{},
		logger:  log.Default(),
	}
	w.cfg.SimulationSize = w.size
	for _, opt := range opts {
		opt(w)
	}
	w.Reseed(cfg.Seed)
	return w
}

// Reseed rebuilds the random source and the convection field. A zero seed
// picks a fresh random one. Existing balls are kept.
func (w *World) Reseed(seed int64) {
	if seed == 0 {
		seed = rand.Int64N(math.MaxInt64-1) + 1
	}
	w.seed = seed
	w.rng = core.NewRNG(seed)
	w.noise = noise.New(seed, w.noiseOptions())
	w.elapsed = 0
}

func (w *World) noiseOptions() noise.Options {
	opts := noise.DefaultOptions()
	opts.Scale = w.cfg.Params.ConvectionScale
	opts.Scroll = w.cfg.Params.ConvectionScroll
	return opts
}

// Seed returns the effective seed.
func (w *World) Seed() int64 { return w.seed }

// Config returns the current configuration.
func (w *World) Config() Config { return w.cfg }

// Params returns the current tunables.
func (w *World) Params() Params { return w.cfg.Params }

// SetParams replaces the tunables. The convection field keeps its seed and
// temperatures are clamped to the new MaxTemperature.
func (w *World) SetParams(p Params) {
	w.cfg.Params = p
	w.noise.SetScale(p.ConvectionScale)
	w.noise.SetScroll(p.ConvectionScroll)
	for _, b := range w.balls {
		b.temperature = clampf(b.temperature, 0, p.MaxTemperature)
	}
}

// SetVisualizeVelocity switches the color pass between heat and speed.
func (w *World) SetVisualizeVelocity(on bool) {
	w.cfg.Params.VisualizeVelocity = on
	w.updateColors()
}

// Backend returns the active collision backend.
func (w *World) Backend() CollisionBackend { return w.backend }

// Logger returns the logger used for reports.
func (w *World) Logger() *log.Logger { return w.logger }

// Elapsed is the simulated time since the last reseed.
func (w *World) Elapsed() float32 { return w.elapsed }

// SimulationSize returns the half-extents of the lamp volume.
func (w *World) SimulationSize() mgl32.Vec3 { return w.size }

// SetSimulationSize resizes the lamp and pulls every ball back inside.
// Negative extents are mirrored and NaN extents become zero.
func (w *World) SetSimulationSize(size mgl32.Vec3) {
	w.size = sanitizeSize(size)
	w.cfg.SimulationSize = w.size
	for _, b := range w.balls {
		w.keepInBounds(b)
	}
}

func sanitizeSize(v mgl32.Vec3) mgl32.Vec3 {
	v = geom.ScrubNaN3(v)
	for i := range v {
		v[i] = float32(math.Abs(float64(v[i])))
		if math.IsInf(float64(v[i]), 0) {
			v[i] = 0
		}
	}
	return v
}

// MetaballCount returns the number of live balls.
func (w *World) MetaballCount() int { return len(w.balls) }

// Metaballs returns the live balls as of the call. The slice is a copy; the
// balls themselves keep evolving with the world.
func (w *World) Metaballs() []*Metaball { return slices.Clone(w.balls) }

// Metaball returns the i-th live ball.
func (w *World) Metaball(i int) *Metaball { return w.balls[i] }

// Lookup finds a ball by ID.
func (w *World) Lookup(id ID) (*Metaball, bool) {
	for _, b := range w.balls {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

// Snapshot copies every ball. The result is safe to hand to other goroutines.
func (w *World) Snapshot() []State {
	out := make([]State, len(w.balls))
	for i, b := range w.balls {
		out[i] = b.State()
	}
	return out
}

// RenderData packs every ball into its GPU record.
func (w *World) RenderData() []RenderData {
	out := make([]RenderData, len(w.balls))
	for i, b := range w.balls {
		out[i] = b.RenderData()
	}
	return out
}

// AddMetaball spawns a ball. The color receives a small HSV jitter and the
// temperature a random share of MaxTemperature. At capacity the call is
// reported through the logger and ErrMetaballLimit is returned.
func (w *World) AddMetaball(pos mgl32.Vec3, c Color, radius float32) (*Metaball, error) {
	if len(w.balls) >= MaxBalls {
		w.logger.Printf("lava: unable to add metaball: limit of %d reached", MaxBalls)
		return nil, ErrMetaballLimit
	}
	if !(radius > 0) || math.IsInf(float64(radius), 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}

	p := w.cfg.Params
	w.nextID++
	b := &Metaball{
		id:           w.nextID,
		position:     geom.Clamp3(geom.ScrubNaN3(pos), w.size.Mul(-1), w.size),
		radius:       radius,
		temperature:  w.rng.Range(0, p.InitialTemperature*p.MaxTemperature),
		initialColor: w.jitter(c),
	}
	b.calculatedColor = w.colorFor(b)
	w.balls = append(w.balls, b)
	return b, nil
}

// Remove deletes the ball with the given ID.
func (w *World) Remove(id ID) bool {
	i := slices.IndexFunc(w.balls, func(b *Metaball) bool { return b.id == id })
	if i < 0 {
		return false
	}
	w.balls = slices.Delete(w.balls, i, i+1)
	w.release(id)
	return true
}

// Clear removes every ball and releases backend state held for them.
func (w *World) Clear() {
	for _, b := range w.balls {
		w.release(b.id)
	}
	clear(w.balls)
	w.balls = w.balls[:0]
}

func (w *World) release(id ID) {
	if r, ok := w.backend.(Releaser); ok {
		r.Release(id)
	}
}

// Step advances the simulation by dt seconds. Non-positive or non-finite
// steps are ignored.
func (w *World) Step(dt float32) {
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		return
	}
	w.lastDT = dt
	w.applyHeat(dt)
	w.applyDamping(dt)
	w.applyGravity(dt)
	w.attractToLava(dt)
	w.applyVelocity(dt)
	w.updateColors()
	w.elapsed += dt
}

// dt is the step used by interactive attraction.
func (w *World) dt() float32 {
	if w.lastDT > 0 {
		return w.lastDT
	}
	if w.cfg.NominalDT > 0 {
		return w.cfg.NominalDT
	}
	return 1.0 / 60.0
}

// PointToUV maps a simulation position to UV space with a top-left origin.
// The result is not clamped.
func (w *World) PointToUV(p mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{
		safeDiv(p.Y(), w.size.Y())*0.5 + 0.5,
		-safeDiv(p.Z(), w.size.Z())*0.5 + 0.5,
	}
}

// UVToPoint is the inverse of PointToUV. The depth component is zero.
func (w *World) UVToPoint(uv mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{
		0,
		(uv.X() - 0.5) * 2 * w.size.Y(),
		-(uv.Y() - 0.5) * 2 * w.size.Z(),
	}
}

// Aspect returns the lamp's width and height scaled so the longer side is 1.
func (w *World) Aspect() mgl32.Vec2 {
	y, z := w.size.Y(), w.size.Z()
	if y <= 0 || z <= 0 {
		return mgl32.Vec2{1, 1}
	}
	if z > y {
		return mgl32.Vec2{y / z, 1}
	}
	return mgl32.Vec2{1, z / y}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
