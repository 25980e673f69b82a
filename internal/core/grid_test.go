package core

import "testing"

func TestFloatGridBounds(t *testing.T) {
	g := NewFloatGrid(3, 2)
	g.Set(2, 1, 4)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	if got := g.At(2, 1); got != 4 {
		t.Fatalf("At(2,1) = %f", got)
	}
	if got := g.At(3, 0); got != 0 {
		t.Fatalf("out of range read = %f", got)
	}
	if got := g.Values()[g.Index(2, 1)]; got != 4 {
		t.Fatalf("Index mismatch: %f", got)
	}
	for i, v := range g.Values() {
		if i != g.Index(2, 1) && v != 0 {
			t.Fatalf("out of range write landed at %d", i)
		}
	}
}

func TestFloatGridCloneAndClear(t *testing.T) {
	g := NewFloatGrid(2, 2)
	g.Set(1, 1, 3)
	c := g.Clone()
	g.Clear()
	if g.At(1, 1) != 0 {
		t.Fatal("Clear left data behind")
	}
	if c.At(1, 1) != 3 {
		t.Fatal("clone shares storage with the original")
	}
}

func TestNewFloatGridMinimumSize(t *testing.T) {
	g := NewFloatGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Values()) != 1 {
		t.Fatalf("got %dx%d", g.W, g.H)
	}
}
