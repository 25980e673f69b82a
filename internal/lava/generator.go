package lava

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Generator fills a world with balls resting near the floor of the lamp.
type Generator struct {
	world *World
	cfg   GeneratorConfig
}

// NewGenerator binds a generator to w.
func NewGenerator(w *World, cfg GeneratorConfig) *Generator {
	if cfg.MaxRadius < cfg.MinRadius {
		cfg.MinRadius, cfg.MaxRadius = cfg.MaxRadius, cfg.MinRadius
	}
	return &Generator{world: w, cfg: cfg}
}

// Config returns the generator settings.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// Populate spawns the configured initial count.
func (g *Generator) Populate() (int, error) { return g.Generate(g.cfg.InitialCount) }

// Generate spawns count balls. A batch that would overflow MaxBalls is
// refused as a whole and reported through the world's logger.
func (g *Generator) Generate(count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	w := g.world
	if w.MetaballCount()+count > MaxBalls {
		w.logger.Printf("lava: adding %d balls would exceed limit of %d", count, MaxBalls)
		return 0, fmt.Errorf("generate %d balls: %w", count, ErrMetaballLimit)
	}
	for i := 0; i < count; i++ {
		if _, err := w.AddMetaball(g.spawnPoint(), w.cfg.Params.LavaColor, g.radius()); err != nil {
			return i, fmt.Errorf("generate ball %d: %w", i, err)
		}
	}
	return count, nil
}

// spawnPoint picks a position in a horizontal band along the floor.
func (g *Generator) spawnPoint() mgl32.Vec3 {
	w := g.world
	half := w.size
	y := w.rng.Range(-0.95*half.Y(), 0.95*half.Y())
	z := w.rng.Range(-half.Z(), -0.8*half.Z())
	return mgl32.Vec3{0, y, z}
}

func (g *Generator) radius() float32 {
	if g.cfg.MaxRadius <= g.cfg.MinRadius {
		return g.cfg.MinRadius
	}
	return g.world.rng.Range(g.cfg.MinRadius, g.cfg.MaxRadius)
}
