package lava

import (
	"slices"
	"testing"

	"lava-lamp/internal/core"
)

func TestPresetsRegistered(t *testing.T) {
	names := core.Names()
	for _, p := range Presets() {
		if !slices.Contains(names, p.Name) {
			t.Fatalf("preset %q not registered in %v", p.Name, names)
		}
	}
}

func TestPresetConfigOverrides(t *testing.T) {
	cfg, err := PresetConfig("debug", map[string]string{"initial_count": "5"})
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if cfg.Generator.InitialCount != 5 || !cfg.Params.VisualizeVelocity || cfg.Seed != 1 {
		t.Fatalf("debug preset with override: %+v", cfg.Generator)
	}
	if _, err := PresetConfig("lava-lite", nil); err == nil {
		t.Fatal("unknown preset accepted")
	}
}

func TestLampResetRepopulates(t *testing.T) {
	sim := core.Sims()["debug"](map[string]string{"initial_count": "6"})
	lamp, ok := sim.(*Lamp)
	if !ok {
		t.Fatalf("registry returned %T", sim)
	}
	if lamp.MetaballCount() != 6 || lamp.Name() != "debug" {
		t.Fatalf("lamp %q with %d balls", lamp.Name(), lamp.MetaballCount())
	}
	first := lamp.Metaball(0).ID()
	lamp.SetIntParameter("initial_count", 9)
	lamp.Reset(77)
	if lamp.MetaballCount() != 9 || lamp.Seed() != 77 {
		t.Fatalf("reset gave %d balls seed %d", lamp.MetaballCount(), lamp.Seed())
	}
	if lamp.Metaball(0).ID() <= first {
		t.Fatal("reset reused ball IDs")
	}
	size := lamp.Size()
	if size.W <= 0 || size.H <= 0 {
		t.Fatalf("size %+v", size)
	}
}
