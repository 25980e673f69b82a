// Package sweep runs lamp presets headlessly over a grid of parameter values
// and summarises how the lava behaves.
package sweep

import (
	"context"
	"fmt"
	"io"
	"log"
	"maps"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"lava-lamp/internal/lava"
)

// Scenario is one preset with one set of overrides.
type Scenario struct {
	Preset    string
	Key       string
	Value     string
	Overrides map[string]string
}

// Label names the scenario in reports.
func (s Scenario) Label() string {
	if s.Key == "" {
		return s.Preset
	}
	return fmt.Sprintf("%s %s=%s", s.Preset, s.Key, s.Value)
}

// Options controls a sweep run.
type Options struct {
	Steps       int
	DT          float32
	Seed        int64
	Workers     int
	SampleEvery int
}

// DefaultOptions runs 20 simulated seconds per scenario.
func DefaultOptions() Options {
	return Options{Steps: 1200, DT: 1.0 / 60.0, Seed: 1337, Workers: 4, SampleEvery: 20}
}

// Result summarises one scenario. Heights are normalised to [0,1] from floor
// to ceiling and temperatures to [0,1] of MaxTemperature.
type Result struct {
	Scenario Scenario
	Balls    int

	MeanHeight float64
	StdHeight  float64
	MeanTemp   float64
	MeanSpeed  float64
	MaxSpeed   float64
	// Escaped counts samples of balls found outside the lamp.
	Escaped int

	// HeightTrace and TempTrace hold the per-sample means.
	HeightTrace []float64
	TempTrace   []float64
}

// Grid crosses presets with values for key. An empty key or value list runs
// every preset once with base alone.
func Grid(presets []string, key string, values []string, base map[string]string) []Scenario {
	var out []Scenario
	for _, p := range presets {
		if key == "" || len(values) == 0 {
			out = append(out, Scenario{Preset: p, Overrides: maps.Clone(base)})
			continue
		}
		for _, v := range values {
			o := maps.Clone(base)
			if o == nil {
				o = map[string]string{}
			}
			o[key] = v
			out = append(out, Scenario{Preset: p, Key: key, Value: v, Overrides: o})
		}
	}
	return out
}

// Run evaluates every scenario on a bounded pool of goroutines. Results keep
// the order of scenarios.
func Run(ctx context.Context, scenarios []Scenario, opts Options) ([]Result, error) {
	if opts.Steps <= 0 {
		return nil, fmt.Errorf("sweep: steps must be positive, got %d", opts.Steps)
	}
	if !(opts.DT > 0) {
		opts.DT = 1.0 / 60.0
	}
	if opts.SampleEvery <= 0 {
		opts.SampleEvery = 1
	}
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, s := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, s, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Label(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, s Scenario, opts Options) (Result, error) {
	overrides := maps.Clone(s.Overrides)
	if overrides == nil {
		overrides = map[string]string{}
	}
	if _, ok := overrides["seed"]; !ok {
		overrides["seed"] = fmt.Sprint(opts.Seed)
	}
	cfg, err := lava.PresetConfig(s.Preset, overrides)
	if err != nil {
		return Result{}, err
	}
	lamp := lava.NewLamp(s.Preset, cfg, lava.WithLogger(log.New(io.Discard, "", 0)))

	res := Result{Scenario: s, Balls: lamp.MetaballCount()}
	var heights, temps, speeds []float64
	for step := 1; step <= opts.Steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		lamp.Step(opts.DT)
		if step%opts.SampleEvery != 0 {
			continue
		}
		h, t, sp, escaped := sample(lamp.World)
		res.Escaped += escaped
		res.HeightTrace = append(res.HeightTrace, stat.Mean(h, nil))
		res.TempTrace = append(res.TempTrace, stat.Mean(t, nil))
		heights = append(heights, h...)
		temps = append(temps, t...)
		speeds = append(speeds, sp...)
	}
	if len(heights) == 0 {
		return res, nil
	}
	res.MeanHeight, res.StdHeight = stat.MeanStdDev(heights, nil)
	res.MeanTemp = stat.Mean(temps, nil)
	res.MeanSpeed = stat.Mean(speeds, nil)
	for _, v := range speeds {
		res.MaxSpeed = max(res.MaxSpeed, v)
	}
	return res, nil
}

// sample returns per-ball normalised heights, temperatures and speeds, and
// the number of balls outside the lamp.
func sample(w *lava.World) (heights, temps, speeds []float64, escaped int) {
	size := w.SimulationSize()
	maxT := float64(w.Params().MaxTemperature)
	for _, b := range w.Snapshot() {
		p := b.Position
		if p.Y() < -size.Y() || p.Y() > size.Y() || p.Z() < -size.Z() || p.Z() > size.Z() {
			escaped++
		}
		h := 0.5
		if size.Z() > 0 {
			h = float64(p.Z()/size.Z())*0.5 + 0.5
		}
		heights = append(heights, h)
		t := 0.0
		if maxT > 0 {
			t = float64(b.Temperature) / maxT
		}
		temps = append(temps, t)
		speeds = append(speeds, float64(b.Velocity.Len()))
	}
	return heights, temps, speeds, escaped
}
