package lava

import (
	"testing"

	"lava-lamp/internal/core"
)

func TestParametersExposeControls(t *testing.T) {
	w := New(DefaultConfig())
	snap := w.Parameters()
	for _, ctrl := range w.ParameterControls() {
		p, ok := snap.Lookup(ctrl.Key)
		if !ok {
			t.Fatalf("control %q has no parameter", ctrl.Key)
		}
		if p.Type != ctrl.Type {
			t.Fatalf("control %q type %s, parameter type %s", ctrl.Key, ctrl.Type, p.Type)
		}
	}
}

func TestSetFloatParameterClampsAndApplies(t *testing.T) {
	w := New(DefaultConfig())
	if !w.SetFloatParameter("damping", 50) {
		t.Fatal("damping rejected")
	}
	if w.Params().DampingStrength != 10 {
		t.Fatalf("damping %f, want clamp to 10", w.Params().DampingStrength)
	}
	if !w.SetFloatParameter("convection_scale", 20) {
		t.Fatal("convection scale rejected")
	}
	if w.noise.Options().Scale != 20 {
		t.Fatalf("noise scale %f not updated", w.noise.Options().Scale)
	}
	if w.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown key accepted")
	}
	p, _ := w.Parameters().Lookup("damping")
	if p.Value != "10" {
		t.Fatalf("snapshot value %q", p.Value)
	}
}

func TestSetBoolAndIntParameters(t *testing.T) {
	w := New(DefaultConfig())
	if !w.SetBoolParameter("collision", false) || w.Params().EnableCollision {
		t.Fatal("collision toggle")
	}
	if !w.SetBoolParameter("visualize_velocity", true) || !w.Params().VisualizeVelocity {
		t.Fatal("velocity colors toggle")
	}
	if !w.SetIntParameter("initial_count", 1000) || w.Config().Generator.InitialCount != MaxBalls {
		t.Fatalf("initial count %d", w.Config().Generator.InitialCount)
	}
	if w.SetBoolParameter("nope", true) || w.SetIntParameter("nope", 1) {
		t.Fatal("unknown keys accepted")
	}
}

var (
	_ core.ParameterProvider         = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.FloatParameterSetter      = (*World)(nil)
	_ core.IntParameterSetter        = (*World)(nil)
	_ core.BoolParameterSetter       = (*World)(nil)
	_ core.Sim                       = (*Lamp)(nil)
)
