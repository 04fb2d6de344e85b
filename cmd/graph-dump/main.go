// Command graph-dump steps a graph at a fixed rate and writes every frame as
// CSV, YAML or TOML.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"wavegraph/internal/app"
	"wavegraph/internal/core"
	"wavegraph/internal/export"
	"wavegraph/internal/graph"
)

func main() {
	fs := flag.NewFlagSet("graph-dump", flag.ExitOnError)
	frames := fs.Int("frames", 1, "number of frames to write")
	format := fs.String("format", "csv", "output format: csv, yaml or toml")
	out := fs.String("o", "-", "output file, - for stdout")

	cfg, err := app.Load(fs, os.Args[1:])
	log := app.NewLogger(os.Stderr, cfg != nil && cfg.Verbose)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(2)
	}
	if err := run(cfg, *frames, *format, *out, log); err != nil {
		log.Error("dump failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, frames int, format, out string, log *slog.Logger) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	g := graph.New(cfg.Graph())
	dt := cfg.Delta()
	doc := export.Document{Function: g.Function(), Resolution: g.Resolution(), Scale: g.Scale()}
	for n := 0; n < frames; n++ {
		t := core.TickTime(n, dt)
		g.Step(t)
		doc.Frames = append(doc.Frames, export.NewFrame(n, t, g.Points()))
	}
	log.Debug("frames computed", "function", g.Function(), "resolution", g.Resolution(), "frames", frames, "dt", dt)

	var w io.Writer = os.Stdout
	if out != "-" {
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		w = file
	}
	bw := bufio.NewWriter(w)
	if err := export.Write(bw, f, doc); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("wrote frames", "frames", frames, "format", f, "output", out)
	return nil
}
