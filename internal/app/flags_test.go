package app

import (
	"flag"
	"testing"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Preset != "classic" || cfg.Scale != 2 || cfg.TPS != 60 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigSetFlags(t *testing.T) {
	cfg := parse(t, "-preset", "calm", "-seed", "9", "-set", "damping=3", "-set", "seed=4", "-set", "damping=5")
	got := cfg.Overrides()
	if got["damping"] != "5" {
		t.Fatalf("damping = %q, later pairs should win", got["damping"])
	}
	if got["seed"] != "9" {
		t.Fatalf("seed = %q, -seed should win", got["seed"])
	}
}

func TestKVListRejectsBarePair(t *testing.T) {
	var l KVList
	if err := l.Set("damping"); err == nil {
		t.Fatal("expected error for missing '='")
	}
}

func TestBuildLamp(t *testing.T) {
	cfg := parse(t, "-preset", "debug", "-set", "initial_count=5")
	lamp, err := cfg.BuildLamp()
	if err != nil {
		t.Fatalf("BuildLamp: %v", err)
	}
	if lamp.Name() != "debug" {
		t.Fatalf("name %q", lamp.Name())
	}
	if lamp.MetaballCount() != 5 {
		t.Fatalf("%d balls, want 5", lamp.MetaballCount())
	}
	if !lamp.Params().VisualizeVelocity {
		t.Fatal("debug preset should color by speed")
	}
	if lamp.Seed() != 1 {
		t.Fatalf("seed %d, want preset seed 1", lamp.Seed())
	}
}

func TestBuildLampUnknownPreset(t *testing.T) {
	cfg := parse(t, "-preset", "nope")
	if _, err := cfg.BuildLamp(); err == nil {
		t.Fatal("expected error")
	}
}
