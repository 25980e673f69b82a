package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lava-lamp/internal/app"
	"lava-lamp/internal/core"
	"lava-lamp/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	presets := flag.String("presets", strings.Join(core.Names(), ","), "comma separated presets to run")
	key := flag.String("param", "", "parameter to sweep (e.g. damping, convection_power)")
	values := flag.String("values", "", "comma separated values for -param")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "ticks to simulate per scenario")
	flag.IntVar(&opts.SampleEvery, "every", opts.SampleEvery, "sample the lava every n ticks")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "parallel scenario evaluations")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed used for every scenario")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	scenarios := sweep.Grid(splitList(*presets), *key, splitList(*values), overrides.Map())
	if len(scenarios) == 0 {
		log.Fatal("nothing to sweep")
	}
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(scenarios), opts.Workers, opts.Steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(sweep.Report(results))
	fmt.Printf("elapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
