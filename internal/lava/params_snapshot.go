package lava

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"lava-lamp/internal/core"
)

// Parameters exposes the current tunables for the HUD and the sweep report.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Lamp",
			Params: []core.Parameter{
				floatParam("size_y", "Half width", w.size.Y()),
				floatParam("size_z", "Half height", w.size.Z()),
				int64Param("seed", "Seed", w.seed),
				intParam("balls", "Balls", len(w.balls)),
				intParam("initial_count", "Initial count", w.cfg.Generator.InitialCount),
			},
		},
		{
			Name: "Forces",
			Params: []core.Parameter{
				floatParam("gravity_y", "Gravity Y", p.Gravity.Y()),
				floatParam("gravity_z", "Gravity Z", p.Gravity.Z()),
				floatParam("lava_attraction", "Lava attraction", p.LavaAttractionForce),
				floatParam("lava_attraction_min_range", "Attraction min range", p.LavaAttractionMinRange),
				floatParam("lava_attraction_blend", "Attraction blend", p.LavaAttractionBlend),
				floatParam("max_velocity", "Max velocity", max(p.MaxVelocity.Y(), p.MaxVelocity.Z())),
				floatParam("damping", "Damping", p.DampingStrength),
				boolParam("collision", "Collision", p.EnableCollision),
				floatParam("wall_restitution", "Wall restitution", p.WallRestitution),
			},
		},
		{
			Name: "Heat",
			Params: []core.Parameter{
				boolParam("heat", "Heat", p.EnableHeat),
				floatParam("max_temperature", "Max temperature", p.MaxTemperature),
				floatParam("heat_direction_z", "Heat lift", p.HeatDirection.Z()),
				{Key: "heating_curve", Label: "Heating curve", Value: p.HeatingCurve.String()},
				{Key: "cooling_curve", Label: "Cooling curve", Value: p.CoolingCurve.String()},
				{Key: "convection_mode", Label: "Convection mode", Value: string(p.ConvectionMode)},
				floatParam("convection_power", "Convection power", p.ConvectionPower),
				floatParam("convection_scale", "Convection scale", p.ConvectionScale),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				{Key: "lava_color", Label: "Lava color", Value: p.LavaColor.Hex()},
				{Key: "hot_color", Label: "Hot color", Value: p.HotColor.Hex()},
				floatParam("hue_variance", "Hue variance", p.HueVariance),
				floatParam("saturation_variance", "Saturation variance", p.SaturationVariance),
				floatParam("value_variance", "Value variance", p.ValueVariance),
				boolParam("visualize_velocity", "Velocity colors", p.VisualizeVelocity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gravity_z", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.5, Min: -40, Max: 40, HasMin: true, HasMax: true},
		{Key: "lava_attraction", Label: "Attraction", Type: core.ParamTypeFloat, Step: 10, Min: 0, Max: 500, HasMin: true, HasMax: true},
		{Key: "damping", Label: "Damping", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "wall_restitution", Label: "Restitution", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "max_temperature", Label: "Max temp", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
		{Key: "heat_direction_z", Label: "Heat lift", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "convection_power", Label: "Convection", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "convection_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 50, HasMin: true, HasMax: true},
		{Key: "initial_count", Label: "Balls on reset", Type: core.ParamTypeInt, Step: 4, Min: 0, Max: MaxBalls, HasMin: true, HasMax: true},
		{Key: "collision", Label: "Collision", Type: core.ParamTypeBool},
		{Key: "heat", Label: "Heat", Type: core.ParamTypeBool},
		{Key: "visualize_velocity", Label: "Velocity colors", Type: core.ParamTypeBool},
	}
}

// SetFloatParameter updates a float tunable. Values are clamped to the
// control's bounds. It reports whether the key is known.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value != value {
		return false
	}
	if ctrl, ok := w.control(key); ok {
		value = ctrl.Clamp(value)
	}
	v := float32(value)
	p := w.cfg.Params
	switch key {
	case "gravity_y":
		p.Gravity[1] = v
	case "gravity_z":
		p.Gravity[2] = v
	case "lava_attraction":
		p.LavaAttractionForce = max(v, 0)
	case "lava_attraction_min_range":
		p.LavaAttractionMinRange = max(v, 0)
	case "lava_attraction_blend":
		p.LavaAttractionBlend = max(v, 0)
	case "max_velocity":
		v = max(v, 0)
		p.MaxVelocity = mgl32.Vec3{0, v, v}
	case "damping":
		p.DampingStrength = max(v, 0)
	case "wall_restitution":
		p.WallRestitution = max(v, 0)
	case "max_temperature":
		if !(v > 0) {
			return false
		}
		p.MaxTemperature = v
	case "heat_direction_z":
		p.HeatDirection[2] = v
	case "convection_power":
		p.ConvectionPower = max(v, 0)
	case "convection_scale":
		if !(v > 0) {
			return false
		}
		p.ConvectionScale = v
	case "hue_variance":
		p.HueVariance = clamp01(v)
	case "saturation_variance":
		p.SaturationVariance = clamp01(v)
	case "value_variance":
		p.ValueVariance = clamp01(v)
	default:
		return false
	}
	w.SetParams(p)
	return true
}

// SetIntParameter updates an integer tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "initial_count":
		w.cfg.Generator.InitialCount = min(max(value, 0), MaxBalls)
		return true
	}
	return false
}

// SetBoolParameter toggles a feature.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "collision":
		w.cfg.Params.EnableCollision = value
	case "heat":
		w.cfg.Params.EnableHeat = value
	case "visualize_velocity":
		w.SetVisualizeVelocity(value)
	default:
		return false
	}
	return true
}

func (w *World) control(key string) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(float64(value), 'f', -1, 32),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
