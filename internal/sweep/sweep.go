// Package sweep measures the coordinate ranges each function covers over a
// window of time by stepping a full grid repeatedly.
package sweep

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"wavegraph/internal/core"
	"wavegraph/internal/function"
	"wavegraph/internal/graph"
)

// Options control one sweep.
type Options struct {
	Resolution int
	Ticks      int
	Dt         float64
	Workers    int
}

// DefaultOptions covers four seconds at 60 ticks per second on a 50×50
// grid, one worker per CPU.
func DefaultOptions() Options {
	return Options{Resolution: 50, Ticks: 240, Dt: 1.0 / 60, Workers: runtime.NumCPU()}
}

// Result is the bounding box of every point visited by one function.
type Result struct {
	Function function.Name
	Min, Max core.Vec3
	Samples  int
}

func (r Result) String() string {
	return fmt.Sprintf("%-14s x[%+.3f %+.3f] y[%+.3f %+.3f] z[%+.3f %+.3f] n=%d",
		r.Function, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y, r.Min.Z, r.Max.Z, r.Samples)
}

// Run sweeps the named functions in parallel and returns results in
// declaration order. Each worker owns its graph.
func Run(names []function.Name, opts Options) []Result {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	jobs := make(chan function.Name)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				results <- runOne(name, opts)
			}
		}()
	}

	go func() {
		for _, n := range names {
			jobs <- n
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []Result
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Function < out[j].Function })
	return out
}

func runOne(name function.Name, opts Options) Result {
	g := graph.New(graph.Config{Resolution: opts.Resolution, Function: name})
	res := Result{Function: name}
	first := true
	for n := 0; n < opts.Ticks; n++ {
		g.Step(core.TickTime(n, opts.Dt))
		for _, p := range g.Points() {
			if first {
				res.Min, res.Max = p, p
				first = false
			}
			res.Min = core.V3(min(res.Min.X, p.X), min(res.Min.Y, p.Y), min(res.Min.Z, p.Z))
			res.Max = core.V3(max(res.Max.X, p.X), max(res.Max.Y, p.Y), max(res.Max.Z, p.Z))
			res.Samples++
		}
	}
	return res
}
