package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"lava-lamp/internal/core"
	"lava-lamp/internal/lava"
)

// Config represents the command-line parameters shared by the lamp viewers.
type Config struct {
	Preset   string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Shader   bool
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "classic", Scale: 2, TPS: 60, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "lamp preset to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one at random)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Shader, "shader", c.Shader, "render the metaballs with a fragment shader")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// Overrides returns the -set pairs as a map. The -seed flag wins over a seed
// given through -set.
func (c *Config) Overrides() map[string]string {
	out := c.Set.Map()
	if c.Seed != 0 {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}

// BuildLamp looks up the preset in the simulation registry and builds it with
// the configured overrides.
func (c *Config) BuildLamp() (*lava.Lamp, error) {
	factory, ok := core.Sims()[c.Preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(core.Names(), ", "))
	}
	lamp, ok := factory(c.Overrides()).(*lava.Lamp)
	if !ok {
		return nil, fmt.Errorf("preset %q is not a lava lamp", c.Preset)
	}
	return lamp, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if _, _, ok := strings.Cut(value, "="); !ok {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map folds the pairs into a map. Later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
