// Command graph-sweep reports the coordinate range of every function over a
// window of time.
package main

import (
	"flag"
	"fmt"
	"os"

	"wavegraph/internal/app"
	"wavegraph/internal/function"
	"wavegraph/internal/sweep"
)

func main() {
	fs := flag.NewFlagSet("graph-sweep", flag.ExitOnError)
	def := sweep.DefaultOptions()
	ticks := fs.Int("ticks", def.Ticks, "ticks to simulate per function")
	workers := fs.Int("workers", def.Workers, "number of worker goroutines")
	only := fs.Bool("only", false, "sweep just the configured -function")

	cfg, err := app.Load(fs, os.Args[1:])
	log := app.NewLogger(os.Stderr, cfg != nil && cfg.Verbose)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(2)
	}

	opts := options(cfg, fs, def, *ticks, *workers)
	names := function.Names()
	if *only {
		names = []function.Name{cfg.Graph().Function}
	}

	fmt.Printf("Sweeping %d functions (%d workers, %d ticks, resolution %d)\n", len(names), opts.Workers, opts.Ticks, opts.Resolution)
	for _, r := range sweep.Run(names, opts) {
		fmt.Println(r)
	}
}

// options keeps the sweep's own resolution default unless -resolution, a
// config file or a -set override chose one.
func options(cfg *app.Config, fs *flag.FlagSet, def sweep.Options, ticks, workers int) sweep.Options {
	opts := sweep.Options{
		Resolution: def.Resolution,
		Ticks:      ticks,
		Dt:         cfg.Delta(),
		Workers:    workers,
	}
	chosen := cfg.File != "" || len(cfg.Overrides) > 0
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "resolution" {
			chosen = true
		}
	})
	if chosen {
		opts.Resolution = cfg.Graph().Resolution
	}
	return opts
}
