package core

import "sort"

// Size describes the pixel dimensions a simulation prefers to be rendered at.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frame-stepped simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt float32)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
