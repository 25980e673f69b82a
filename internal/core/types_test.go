package core

import (
	"slices"
	"testing"
)

type stubSim struct{ name string }

func (s stubSim) Name() string { return s.name }
func (s stubSim) Size() Size   { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)  {}
func (s stubSim) Step(float32) {}

func TestRegisterAndNames(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return stubSim{"zz-test"} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("zz-nil", nil)
	t.Cleanup(func() { delete(sims, "zz-test") })

	f, ok := Sims()["zz-test"]
	if !ok || f(nil).Name() != "zz-test" {
		t.Fatal("registered factory not found")
	}
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if slices.Contains(names, "") || slices.Contains(names, "zz-nil") {
		t.Fatalf("invalid registrations leaked: %v", names)
	}
}
