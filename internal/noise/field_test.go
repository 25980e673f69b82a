package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSampleDeterministic(t *testing.T) {
	a := New(4242, DefaultOptions())
	b := New(4242, DefaultOptions())

	for i := 0; i < 64; i++ {
		x := float32(i)*0.37 - 5
		y := float32(i)*0.91 + 2
		tm := float32(i) * 0.05
		first := a.Sample(x, y, tm)
		if again := a.Sample(x, y, tm); again != first {
			t.Fatalf("repeated sample differs: %f vs %f", first, again)
		}
		if other := b.Sample(x, y, tm); other != first {
			t.Fatalf("same seed fields differ at (%f,%f,%f): %f vs %f", x, y, tm, first, other)
		}
		if a.Curl(x, y, tm) != b.Curl(x, y, tm) {
			t.Fatal("curl must be deterministic for equal seeds")
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1, DefaultOptions())
	b := New(2, DefaultOptions())
	differ := false
	for i := 0; i < 64 && !differ; i++ {
		x := float32(i)*1.3 + 0.21
		y := float32(i)*0.7 + 0.43
		differ = a.Sample(x, y, 0) != b.Sample(x, y, 0)
	}
	if !differ {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestSampleRange(t *testing.T) {
	f := New(7, DefaultOptions())
	for i := 0; i < 500; i++ {
		v := f.Sample(float32(i)*0.173, float32(i)*0.311, float32(i)*0.01)
		if v < 0 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
		d := f.Direction(float32(i)*0.173, float32(i)*0.311, 0)
		if d.X() < -1 || d.X() > 1 || d.Y() < -1 || d.Y() > 1 {
			t.Fatalf("direction %d out of range: %v", i, d)
		}
		s := f.Sample3(float32(i)*0.2, float32(i)*0.3, float32(i)*0.4)
		if s < 0 || s > 1 {
			t.Fatalf("3D sample %d out of range: %f", i, s)
		}
	}
}

func TestScrollMovesSampleWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.Scroll = mgl32.Vec2{3, -2}
	f := New(99, opts)

	got := f.Sample(1.5, 2.5, 2)
	want := f.Sample(1.5+6, 2.5-4, 0)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Fatalf("scrolled sample %f, want %f", got, want)
	}
}

func TestCurlIsUnitOrZero(t *testing.T) {
	f := New(13, DefaultOptions())
	nonZero := 0
	for i := 0; i < 200; i++ {
		v := f.Curl(float32(i)*0.29+0.1, float32(i)*0.53+0.2, float32(i)*0.02)
		l := v.Len()
		if l == 0 {
			continue
		}
		nonZero++
		if math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("curl %v has length %f", v, l)
		}
	}
	if nonZero == 0 {
		t.Fatal("curl never produced a direction")
	}
}

func TestCurlPerpendicularToGradient(t *testing.T) {
	f := New(21, DefaultOptions())
	x, y := float32(3.3), float32(-1.7)
	e := f.Options().Epsilon
	dX := f.Sample(x+e, y, 0) - f.Sample(x-e, y, 0)
	dY := f.Sample(x, y+e, 0) - f.Sample(x, y-e, 0)
	c := f.Curl(x, y, 0)
	if c.Len() == 0 {
		t.Skip("flat sample point")
	}
	if dot := c.Dot(mgl32.Vec2{dX, dY}); math.Abs(float64(dot)) > 1e-5 {
		t.Fatalf("curl %v not perpendicular to gradient (%f,%f): dot %f", c, dX, dY, dot)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	f := New(1, Options{})
	opts := f.Options()
	if opts.Scale <= 0 || opts.Epsilon <= 0 || opts.Octaves <= 0 {
		t.Fatalf("defaults not applied: %+v", opts)
	}
	f.SetScale(-1)
	if f.Options().Scale != opts.Scale {
		t.Fatal("non-positive scale must be ignored")
	}
}
