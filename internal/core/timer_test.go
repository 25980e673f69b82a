package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(60)
	fs.now = clock.now
	if got := fs.Pending(); got != 1 {
		t.Fatalf("first Pending = %d, want 1", got)
	}
	if fs.ShouldStep() {
		t.Fatal("no time has passed")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.Pending()
	clock.advance(250 * time.Millisecond)
	if got := fs.Pending(); got != 2 {
		t.Fatalf("Pending = %d, want 2", got)
	}
	clock.advance(50 * time.Millisecond)
	if got := fs.Pending(); got != 1 {
		t.Fatalf("leftover time should complete a tick, got %d", got)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(60)
	fs.now = clock.now
	fs.Pending()
	clock.advance(5 * time.Second)
	if got := fs.Pending(); got != 4 {
		t.Fatalf("Pending = %d, want catch-up cap 4", got)
	}
	if got := fs.Pending(); got != 0 {
		t.Fatalf("surplus time should be dropped, got %d", got)
	}
}

func TestFixedStepDT(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("default interval %s", fs.Interval())
	}
	fs.SetTPS(50)
	if dt := fs.DT(); dt < 0.0199 || dt > 0.0201 {
		t.Fatalf("DT = %f", dt)
	}
}
