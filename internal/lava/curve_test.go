package lava

import "testing"

func TestCurveEvaluate(t *testing.T) {
	c := NewCurve(Keyframe{1, 0}, Keyframe{0, 1})
	cases := []struct {
		x, want float32
	}{
		{-1, 1},
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{3, 0},
	}
	for _, tc := range cases {
		if got := c.Evaluate(tc.x); !near(got, tc.want) {
			t.Fatalf("Evaluate(%f) = %f, want %f", tc.x, got, tc.want)
		}
	}
}

func TestCurveEdgeCases(t *testing.T) {
	if (Curve{}).Evaluate(0.5) != 0 {
		t.Fatal("empty curve must evaluate to 0")
	}
	if ConstantCurve(0.3).Evaluate(0.9) != 0.3 {
		t.Fatal("constant curve")
	}
	over := NewCurve(Keyframe{0, 2}, Keyframe{1, -1})
	if over.Evaluate(0) != 1 || over.Evaluate(1) != 0 {
		t.Fatal("curve output must be clamped to [0,1]")
	}
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("1:0, 0:1,0.5:0.2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := c.String(); got != "0:1,0.5:0.2,1:0" {
		t.Fatalf("String() = %q", got)
	}
	for _, bad := range []string{"", "0.5", "a:1", "0:b"} {
		if _, err := ParseCurve(bad); err == nil {
			t.Fatalf("ParseCurve(%q) should fail", bad)
		}
	}
}
