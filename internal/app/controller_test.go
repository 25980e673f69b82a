package app

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/lava"
)

func testLamp(t *testing.T, overrides map[string]string) *lava.Lamp {
	t.Helper()
	cfg, err := lava.PresetConfig("classic", overrides)
	if err != nil {
		t.Fatalf("PresetConfig: %v", err)
	}
	return lava.NewLamp("classic", cfg, lava.WithLogger(log.New(io.Discard, "", 0)))
}

func TestControllerPauseAndStepOnce(t *testing.T) {
	c := NewController(testLamp(t, map[string]string{"seed": "3", "initial_count": "4"}))
	c.TogglePause()
	if c.Tick(1.0 / 60) {
		t.Fatal("paused controller should not step")
	}
	c.StepOnce()
	if !c.Tick(1.0 / 60) {
		t.Fatal("single step should run while paused")
	}
	if c.Tick(1.0 / 60) {
		t.Fatal("single step should only run once")
	}
	if c.Ticks() != 1 {
		t.Fatalf("ticks = %d", c.Ticks())
	}
	c.Resume()
	if !c.Tick(1.0 / 60) {
		t.Fatal("resumed controller should step")
	}
}

func TestControllerAttractMovesBallsTowardsPointer(t *testing.T) {
	c := NewController(testLamp(t, map[string]string{"seed": "5", "initial_count": "0"}))
	b, err := c.Spawn(mgl32.Vec3{0, -3, 0})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	c.Attract(mgl32.Vec3{0, 3, 0})
	if b.Velocity().Y() <= 0 {
		t.Fatalf("velocity %v should point towards +Y", b.Velocity())
	}
}

func TestControllerSpawnRespectsLimit(t *testing.T) {
	c := NewController(testLamp(t, map[string]string{"seed": "5", "initial_count": "256"}))
	if _, err := c.Spawn(mgl32.Vec3{}); !errors.Is(err, lava.ErrMetaballLimit) {
		t.Fatalf("err = %v, want ErrMetaballLimit", err)
	}
}

func TestControllerResetKeepsSeed(t *testing.T) {
	c := NewController(testLamp(t, map[string]string{"seed": "8", "initial_count": "6"}))
	first := c.Lamp().Snapshot()
	for i := 0; i < 30; i++ {
		c.Tick(1.0 / 60)
	}
	c.Reset()
	again := c.Lamp().Snapshot()
	if len(first) != len(again) {
		t.Fatalf("%d balls after reset, want %d", len(again), len(first))
	}
	for i := range first {
		if first[i].Position != again[i].Position || first[i].Radius != again[i].Radius {
			t.Fatalf("ball %d differs after reset", i)
		}
	}
}

func TestControllerToggleVelocityColors(t *testing.T) {
	c := NewController(testLamp(t, map[string]string{"seed": "2"}))
	c.ToggleVelocityColors()
	if !c.Lamp().Params().VisualizeVelocity {
		t.Fatal("velocity colors should be on")
	}
}
