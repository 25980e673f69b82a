package lava

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Keyframe is a single point of a Curve.
type Keyframe struct {
	X, Y float32
}

// Curve is a piecewise-linear mapping from [0,1] to [0,1].
type Curve struct {
	frames []Keyframe
}

// NewCurve sorts the keyframes by X and builds a curve.
func NewCurve(frames ...Keyframe) Curve {
	fs := append([]Keyframe(nil), frames...)
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].X < fs[j].X })
	return Curve{frames: fs}
}

// ConstantCurve returns a flat curve.
func ConstantCurve(v float32) Curve {
	return NewCurve(Keyframe{0, v}, Keyframe{1, v})
}

// ParseCurve reads "x:y,x:y,..." keyframes.
func ParseCurve(s string) (Curve, error) {
	var frames []Keyframe
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ":")
		if !ok {
			return Curve{}, fmt.Errorf("curve keyframe %q: missing ':'", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
		if err != nil {
			return Curve{}, fmt.Errorf("curve keyframe %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
		if err != nil {
			return Curve{}, fmt.Errorf("curve keyframe %q: %w", part, err)
		}
		frames = append(frames, Keyframe{float32(x), float32(y)})
	}
	if len(frames) == 0 {
		return Curve{}, fmt.Errorf("curve %q has no keyframes", s)
	}
	return NewCurve(frames...), nil
}

// Frames returns a copy of the keyframes.
func (c Curve) Frames() []Keyframe { return append([]Keyframe(nil), c.frames...) }

// String formats the curve in the form accepted by ParseCurve.
func (c Curve) String() string {
	parts := make([]string, len(c.frames))
	for i, f := range c.frames {
		parts[i] = strconv.FormatFloat(float64(f.X), 'f', -1, 32) + ":" + strconv.FormatFloat(float64(f.Y), 'f', -1, 32)
	}
	return strings.Join(parts, ",")
}

// Evaluate samples the curve at x. Inputs and outputs are clamped to [0,1]
// and an empty curve evaluates to 0.
func (c Curve) Evaluate(x float32) float32 {
	n := len(c.frames)
	if n == 0 {
		return 0
	}
	x = clamp01(x)
	if x <= c.frames[0].X {
		return clamp01(c.frames[0].Y)
	}
	if x >= c.frames[n-1].X {
		return clamp01(c.frames[n-1].Y)
	}
	for i := 1; i < n; i++ {
		b := c.frames[i]
		if x > b.X {
			continue
		}
		a := c.frames[i-1]
		span := b.X - a.X
		if span <= 0 {
			return clamp01(b.Y)
		}
		t := (x - a.X) / span
		return clamp01(a.Y + (b.Y-a.Y)*t)
	}
	return clamp01(c.frames[n-1].Y)
}
