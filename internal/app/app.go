//go:build ebiten

package app

import (
	"log/slog"

	"wavegraph/internal/core"
	"wavegraph/internal/function"
	"wavegraph/internal/graph"
	"wavegraph/internal/render"
	"wavegraph/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const orbitStep = 0.03

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a graph to the ebiten.Game interface. It owns the animation
// clock and steps the graph once per tick.
type Game struct {
	graph   *graph.Graph
	clock   *core.FixedStep
	markers *render.Markers
	painter *render.PointPainter
	view    *ebiten.Image
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	w, h     int
	hudWidth int
	speed    float64
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided graph.
func New(g *graph.Graph, cfg *Config, log *slog.Logger) *Game {
	cam := render.DefaultCamera()
	cam.Zoom = float32(min(cfg.Width, cfg.Height)) * 0.3
	game := &Game{
		graph:    g,
		clock:    core.NewFixedStep(cfg.TPS),
		markers:  render.NewMarkers(len(g.Points()), cfg.Width, cfg.Height, cam),
		painter:  render.NewPointPainter(),
		overlay:  ui.NewOverlay(),
		log:      log,
		w:        cfg.Width,
		h:        cfg.Height,
		hudWidth: cfg.HUDWidth,
		speed:    cfg.Speed,
	}
	game.markers.Size = g.Scale()
	if cfg.HUDWidth > 0 {
		game.hud = ui.NewHUD(g, cfg.HUDWidth)
	}
	g.Step(game.clock.Elapsed())
	return game
}

// Update handles per-frame input and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.clock.Reset()
		g.graph.Step(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		next := g.graph.Function().Next()
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			next = g.graph.Function().Prev()
		}
		g.selectFunction(next)
	}
	for i, key := range digitKeys {
		if i < function.Count() && inpututil.IsKeyJustPressed(key) {
			g.selectFunction(function.Name(i))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.speed *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.speed /= 2
	}
	g.orbit()

	g.overlay.Update()
	if g.hud.Update(g.w) {
		g.syncMarkers()
	}

	if !g.paused || g.tickOnce {
		g.graph.Step(g.clock.Advance(g.speed))
		g.tickOnce = false
	}
	g.graph.Publish(g.markers)
	return nil
}

func (g *Game) selectFunction(name function.Name) {
	g.graph.SetFunction(name)
	ebiten.SetWindowTitle(Title(name))
	g.log.Debug("function selected", "function", name)
	if g.paused {
		g.graph.Step(g.clock.Elapsed())
	}
}

func (g *Game) orbit() {
	var yaw, pitch float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= orbitStep
	}
	if yaw != 0 || pitch != 0 {
		g.markers.Camera.Orbit(yaw, pitch)
	}
}

// syncMarkers follows HUD changes: the grid may have been rebuilt or the
// function switched.
func (g *Game) syncMarkers() {
	g.markers.Resize(len(g.graph.Points()))
	g.markers.Size = g.graph.Scale()
	ebiten.SetWindowTitle(Title(g.graph.Function()))
	if g.paused {
		g.graph.Step(g.clock.Elapsed())
	}
	g.log.Debug("hud change", "resolution", g.graph.Resolution(), "function", g.graph.Function())
}

// Draw renders the points, guides and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.view == nil {
		g.view = ebiten.NewImage(g.w, g.h)
	}
	g.painter.Draw(g.view, g.markers)
	g.overlay.Draw(g.view, g.markers.Camera, g.w, g.h)
	screen.DrawImage(g.view, nil)
	if g.hud != nil {
		g.hud.Draw(screen, g.w)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w + g.hudWidth, g.h
}
