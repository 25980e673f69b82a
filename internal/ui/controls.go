package ui

import (
	"image"
	"math"
	"strconv"

	"lava-lamp/internal/core"
)

// controlState tracks one HUD row: the control, its last known value and
// the layout of its buttons.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// setters bundles whichever parameter setters the sim implements.
type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	bools  core.BoolParameterSetter
}

func settersFor(sim any) setters {
	var s setters
	s.ints, _ = sim.(core.IntParameterSetter)
	s.floats, _ = sim.(core.FloatParameterSetter)
	s.bools, _ = sim.(core.BoolParameterSetter)
	return s
}

func newControlStates(sim any) []controlState {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := provider.ParameterControls()
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refreshControls copies the snapshot values into the control rows.
func refreshControls(states []controlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
		default:
			continue
		}
		state.hasValue = true
	}
}

// target returns the value a button press in direction would produce. Bool
// controls toggle regardless of direction.
func (s *controlState) target(direction int) (float64, bool) {
	if s == nil || direction == 0 || !s.hasValue {
		return 0, false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		return float64(s.intValue + direction*step), true
	case core.ParamTypeFloat:
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		return s.floatValue + float64(direction)*step, true
	case core.ParamTypeBool:
		if s.boolValue {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}

func (s *controlState) canAdjust(set setters, direction int) bool {
	target, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if set.ints == nil {
			return false
		}
	case core.ParamTypeFloat:
		if set.floats == nil {
			return false
		}
	case core.ParamTypeBool:
		return set.bools != nil
	}
	if s.control.HasMin && direction < 0 && target < s.control.Min-1e-9 {
		return false
	}
	if s.control.HasMax && direction > 0 && target > s.control.Max+1e-9 {
		return false
	}
	return true
}

// adjust applies a button press through the matching setter.
func (s *controlState) adjust(set setters, direction int) bool {
	target, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if set.ints == nil {
			return false
		}
		next := int(math.Round(s.control.Clamp(target)))
		if next == s.intValue || !set.ints.SetIntParameter(s.control.Key, next) {
			return false
		}
		s.intValue = next
		s.floatValue = float64(next)
		s.value = strconv.Itoa(next)
	case core.ParamTypeFloat:
		if set.floats == nil {
			return false
		}
		next := s.control.Clamp(target)
		if math.Abs(next-s.floatValue) < 1e-9 || !set.floats.SetFloatParameter(s.control.Key, next) {
			return false
		}
		s.floatValue = next
		s.value = formatFloat(s.control, next)
	case core.ParamTypeBool:
		if set.bools == nil {
			return false
		}
		next := target != 0
		if !set.bools.SetBoolParameter(s.control.Key, next) {
			return false
		}
		s.boolValue = next
		s.value = onOff(next)
	default:
		return false
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
