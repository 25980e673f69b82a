package lava

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestGeneratorSpawnsAlongFloor(t *testing.T) {
	cfg := quietConfig()
	w := New(cfg)
	g := NewGenerator(w, GeneratorConfig{InitialCount: 40, MinRadius: 0.45, MaxRadius: 0.8})
	n, err := g.Populate()
	if err != nil || n != 40 {
		t.Fatalf("populate: %d, %v", n, err)
	}
	half := w.SimulationSize()
	lowest := half.Z()
	for _, b := range w.Metaballs() {
		p := b.Position()
		lowest = min(lowest, p.Z())
		if p.Z() < -half.Z() || p.Z() > -0.8*half.Z() {
			t.Fatalf("z = %f outside spawn band", p.Z())
		}
		if p.Y() < -0.95*half.Y() || p.Y() > 0.95*half.Y() {
			t.Fatalf("y = %f outside spawn band", p.Y())
		}
		if b.Radius() < 0.45 || b.Radius() > 0.8 {
			t.Fatalf("radius %f outside range", b.Radius())
		}
		if b.InitialColor().Hex() != w.Params().LavaColor.Hex() {
			t.Fatalf("quiet config should not jitter: %s", b.InitialColor().Hex())
		}
	}
	if lowest > -0.9*half.Z() {
		t.Fatalf("lowest z %f, want balls resting near the floor at %f", lowest, -half.Z())
	}
}

func TestGeneratorRefusesOverflowingBatch(t *testing.T) {
	var logs bytes.Buffer
	w := New(quietConfig(), WithLogger(log.New(&logs, "", 0)))
	g := NewGenerator(w, GeneratorConfig{MinRadius: 0.5, MaxRadius: 0.5})
	if _, err := g.Generate(MaxBalls - 10); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	n, err := g.Generate(11)
	if n != 0 || !errors.Is(err, ErrMetaballLimit) {
		t.Fatalf("overflowing batch: %d, %v", n, err)
	}
	if w.MetaballCount() != MaxBalls-10 {
		t.Fatalf("partial batch spawned: %d balls", w.MetaballCount())
	}
	if !strings.Contains(logs.String(), "would exceed") {
		t.Fatalf("overflow not reported: %q", logs.String())
	}
	if n, err := g.Generate(0); n != 0 || err != nil {
		t.Fatalf("empty batch: %d, %v", n, err)
	}
}
