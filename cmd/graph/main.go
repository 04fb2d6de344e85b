//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"wavegraph/internal/app"
	"wavegraph/internal/graph"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	cfg, err := app.Load(fs, os.Args[1:])
	log := app.NewLogger(os.Stderr, cfg != nil && cfg.Verbose)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(2)
	}

	g := graph.New(cfg.Graph())
	log.Info("starting", "function", g.Function(), "resolution", g.Resolution())

	game := app.New(g, cfg, log)

	ebiten.SetWindowTitle(app.Title(g.Function()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
