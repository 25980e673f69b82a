package lava

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ConvectionMode selects how the noise field is turned into a force.
type ConvectionMode string

const (
	// ConvectionCurl follows the curl of the noise field.
	ConvectionCurl ConvectionMode = "curl"
	// ConvectionDirect reads two noise channels as a direction.
	ConvectionDirect ConvectionMode = "direct"
)

// Params holds the per-world tunables. They are constant during a step and
// may be changed between steps.
type Params struct {
	Gravity                mgl32.Vec3
	LavaAttractionForce    float32
	LavaAttractionMinRange float32
	// LavaAttractionBlend is the per-second rate at which a ball's velocity is
	// pulled towards the velocity another ball's attraction asks for.
	LavaAttractionBlend float32

	MaxVelocity     mgl32.Vec3
	DampingStrength float32

	EnableCollision bool
	// WallRestitution is the fraction of velocity kept by a wall bounce.
	WallRestitution float32

	EnableHeat       bool
	MaxTemperature   float32
	HeatDirection    mgl32.Vec3
	HeatingCurve     Curve
	CoolingCurve     Curve
	ConvectionMode   ConvectionMode
	ConvectionPower  float32
	ConvectionScale  float32
	ConvectionScroll mgl32.Vec2
	// InitialTemperature is the upper bound of the spawn temperature as a
	// fraction of MaxTemperature.
	InitialTemperature float32

	LavaColor          Color
	HotColor           Color
	HueVariance        float32
	SaturationVariance float32
	ValueVariance      float32
	VisualizeVelocity  bool
	DebugSpeedRange    float32
}

// GeneratorConfig controls how a lamp is populated.
type GeneratorConfig struct {
	InitialCount int
	MinRadius    float32
	MaxRadius    float32
}

// Config controls the simulation volume and its tunables.
type Config struct {
	// SimulationSize holds the half-extents of the lamp volume.
	SimulationSize mgl32.Vec3
	// Seed drives spawn jitter and the convection field. Zero picks a random seed.
	Seed int64
	// NominalDT is used by AttractToPoint before the first step.
	NominalDT float32

	FieldWidth  int
	FieldHeight int

	Generator GeneratorConfig
	Params    Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SimulationSize: mgl32.Vec3{0, 6, 10},
		NominalDT:      1.0 / 60.0,
		FieldWidth:     180,
		FieldHeight:    300,
		Generator: GeneratorConfig{
			InitialCount: 48,
			MinRadius:    0.45,
			MaxRadius:    0.8,
		},
		Params: Params{
			Gravity:                mgl32.Vec3{0, 0, -4},
			LavaAttractionForce:    100,
			LavaAttractionMinRange: 0.5,
			LavaAttractionBlend:    0.01,
			MaxVelocity:            mgl32.Vec3{0, 25, 25},
			DampingStrength:        2,
			EnableCollision:        true,
			WallRestitution:        0.5,
			EnableHeat:             true,
			MaxTemperature:         6,
			HeatDirection:          mgl32.Vec3{0, 0, 1.5},
			HeatingCurve:           NewCurve(Keyframe{0, 1}, Keyframe{1, 0}),
			CoolingCurve:           NewCurve(Keyframe{0, 0}, Keyframe{1, 1}),
			ConvectionMode:         ConvectionCurl,
			ConvectionPower:        2,
			ConvectionScale:        10,
			ConvectionScroll:       mgl32.Vec2{0.8, 0.5},
			InitialTemperature:     0.5,
			LavaColor:              Orange,
			HotColor:               Yellow,
			HueVariance:            0.02,
			SaturationVariance:     0.05,
			ValueVariance:          0.05,
			DebugSpeedRange:        10,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	p := &c.Params

	setFloat(cfg, "size_x", nonNegative, &c.SimulationSize[0])
	setFloat(cfg, "size_y", nonNegative, &c.SimulationSize[1])
	setFloat(cfg, "size_z", nonNegative, &c.SimulationSize[2])
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setFloat(cfg, "dt", positive, &c.NominalDT)
	setInt(cfg, "field_w", &c.FieldWidth)
	setInt(cfg, "field_h", &c.FieldHeight)

	setInt(cfg, "initial_count", &c.Generator.InitialCount)
	if c.Generator.InitialCount > MaxBalls {
		c.Generator.InitialCount = MaxBalls
	}
	setFloat(cfg, "min_radius", positive, &c.Generator.MinRadius)
	setFloat(cfg, "max_radius", positive, &c.Generator.MaxRadius)
	if c.Generator.MaxRadius < c.Generator.MinRadius {
		c.Generator.MaxRadius = c.Generator.MinRadius
	}

	setFloat(cfg, "gravity_y", anyValue, &p.Gravity[1])
	setFloat(cfg, "gravity_z", anyValue, &p.Gravity[2])
	setFloat(cfg, "lava_attraction", nonNegative, &p.LavaAttractionForce)
	setFloat(cfg, "lava_attraction_min_range", nonNegative, &p.LavaAttractionMinRange)
	setFloat(cfg, "lava_attraction_blend", nonNegative, &p.LavaAttractionBlend)
	var maxVel float32
	if setFloat(cfg, "max_velocity", nonNegative, &maxVel) {
		p.MaxVelocity = mgl32.Vec3{0, maxVel, maxVel}
	}
	setFloat(cfg, "damping", nonNegative, &p.DampingStrength)
	setBool(cfg, "collision", &p.EnableCollision)
	setFloat(cfg, "wall_restitution", nonNegative, &p.WallRestitution)

	setBool(cfg, "heat", &p.EnableHeat)
	setFloat(cfg, "max_temperature", positive, &p.MaxTemperature)
	setFloat(cfg, "heat_direction_y", anyValue, &p.HeatDirection[1])
	setFloat(cfg, "heat_direction_z", anyValue, &p.HeatDirection[2])
	setCurve(cfg, "heating_curve", &p.HeatingCurve)
	setCurve(cfg, "cooling_curve", &p.CoolingCurve)
	if v, ok := cfg["convection_mode"]; ok {
		switch mode := ConvectionMode(strings.ToLower(v)); mode {
		case ConvectionCurl, ConvectionDirect:
			p.ConvectionMode = mode
		}
	}
	setFloat(cfg, "convection_power", nonNegative, &p.ConvectionPower)
	setFloat(cfg, "convection_scale", positive, &p.ConvectionScale)
	setFloat(cfg, "convection_scroll_y", anyValue, &p.ConvectionScroll[0])
	setFloat(cfg, "convection_scroll_z", anyValue, &p.ConvectionScroll[1])
	setFloat(cfg, "initial_temperature", unit, &p.InitialTemperature)

	setColor(cfg, "lava_color", &p.LavaColor)
	setColor(cfg, "hot_color", &p.HotColor)
	setFloat(cfg, "hue_variance", unit, &p.HueVariance)
	setFloat(cfg, "saturation_variance", unit, &p.SaturationVariance)
	setFloat(cfg, "value_variance", unit, &p.ValueVariance)
	setBool(cfg, "visualize_velocity", &p.VisualizeVelocity)
	setFloat(cfg, "debug_speed_range", positive, &p.DebugSpeedRange)
	return c
}

func anyValue(float32) bool { return true }

func nonNegative(v float32) bool { return v >= 0 }

func positive(v float32) bool { return v > 0 }

func unit(v float32) bool { return v >= 0 && v <= 1 }

func setFloat(cfg map[string]string, key string, valid func(float32) bool, dst *float32) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || !valid(float32(parsed)) {
		return false
	}
	*dst = float32(parsed)
	return true
}

func setInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

func setBool(cfg map[string]string, key string, dst *bool) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = parsed
		}
	}
}

func setCurve(cfg map[string]string, key string, dst *Curve) {
	if v, ok := cfg[key]; ok {
		if parsed, err := ParseCurve(v); err == nil {
			*dst = parsed
		}
	}
}

func setColor(cfg map[string]string, key string, dst *Color) {
	if v, ok := cfg[key]; ok {
		if parsed, err := ParseHex(strings.TrimSpace(v)); err == nil {
			*dst = parsed
		}
	}
}
