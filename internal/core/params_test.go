package core

import "testing"

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := s.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("unexpected hit")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if c.Clamp(-2) != 0 || c.Clamp(3) != 1 || c.Clamp(0.5) != 0.5 {
		t.Fatal("bounded clamp")
	}
	open := ParameterControl{Min: 0, HasMin: true}
	if open.Clamp(100) != 100 {
		t.Fatal("missing max must not clamp")
	}
}
