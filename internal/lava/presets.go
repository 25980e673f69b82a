package lava

import (
	"fmt"
	"maps"

	"lava-lamp/internal/core"
)

// Preset is a named set of config overrides.
type Preset struct {
	Name        string
	Description string
	Values      map[string]string
}

var presets = []Preset{
	{
		Name:        "classic",
		Description: "Slow rising and sinking blobs.",
	},
	{
		Name:        "convection",
		Description: "Strong swirling currents and a hotter floor.",
		Values: map[string]string{
			"convection_power": "6",
			"convection_scale": "6",
			"heat_direction_z": "2.5",
			"lava_attraction":  "60",
		},
	},
	{
		Name:        "calm",
		Description: "Heavy damping and weak currents.",
		Values: map[string]string{
			"damping":          "4",
			"convection_power": "0.5",
			"gravity_z":        "-2",
			"max_temperature":  "4",
		},
	},
	{
		Name:        "debug",
		Description: "A dozen balls colored by speed.",
		Values: map[string]string{
			"initial_count":      "12",
			"visualize_velocity": "true",
			"seed":               "1",
		},
	},
}

// Presets lists the built-in presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p
		out[i].Values = maps.Clone(p.Values)
	}
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Config applies overrides on top of the preset values.
func (p Preset) Config(overrides map[string]string) Config {
	merged := maps.Clone(p.Values)
	if merged == nil {
		merged = map[string]string{}
	}
	maps.Copy(merged, overrides)
	return FromMap(merged)
}

// PresetConfig builds the config for a named preset.
func PresetConfig(name string, overrides map[string]string) (Config, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
	return p.Config(overrides), nil
}

// Lamp is a World populated by a Generator. It satisfies core.Sim so the
// viewers can drive any preset.
type Lamp struct {
	*World
	name string
	gen  *Generator
}

// NewLamp builds and populates a lamp.
func NewLamp(name string, cfg Config, opts ...Option) *Lamp {
	w := New(cfg, opts...)
	l := &Lamp{World: w, name: name, gen: NewGenerator(w, cfg.Generator)}
	if _, err := l.gen.Populate(); err != nil {
		w.logger.Printf("lava: populate %s: %v", name, err)
	}
	return l
}

func (l *Lamp) Name() string { return l.name }

// Size is the resolution of the density field the viewers render.
func (l *Lamp) Size() core.Size {
	return core.Size{W: l.cfg.FieldWidth, H: l.cfg.FieldHeight}
}

// Generator returns the lamp's generator.
func (l *Lamp) Generator() *Generator { return l.gen }

// Reset empties the lamp, reseeds it and spawns a fresh batch. The batch
// size follows the current initial_count parameter.
func (l *Lamp) Reset(seed int64) {
	l.Clear()
	l.Reseed(seed)
	cfg := l.gen.Config()
	cfg.InitialCount = l.cfg.Generator.InitialCount
	l.gen = NewGenerator(l.World, cfg)
	if _, err := l.gen.Populate(); err != nil {
		l.logger.Printf("lava: reset %s: %v", l.name, err)
	}
}

func init() {
	for _, p := range presets {
		core.Register(p.Name, func(cfg map[string]string) core.Sim {
			return NewLamp(p.Name, p.Config(cfg))
		})
	}
}
