//go:build ebiten

package ui

import (
	"image/color"

	"wavegraph/internal/core"
	"wavegraph/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the coordinate axes and the outline of the [-1, 1] domain box
// on top of the points. A toggles the axes, B the box.
type Overlay struct {
	showAxes bool
	showBox  bool
}

// NewOverlay constructs an overlay with the axes visible.
func NewOverlay() *Overlay {
	return &Overlay{showAxes: true}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAxes = !o.showAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBox = !o.showBox
	}
}

// Draw projects the enabled guides with cam onto a w×h region of screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera, w, h int) {
	if o.showBox {
		for _, e := range BoxEdges() {
			o.line(screen, cam, w, h, e[0], e[1], color.RGBA{R: 90, G: 90, B: 110, A: 255})
		}
	}
	if o.showAxes {
		for _, a := range Axes() {
			o.line(screen, cam, w, h, core.Vec3{}, a.Tip, a.Color)
		}
	}
}

func (o *Overlay) line(screen *ebiten.Image, cam render.Camera, w, h int, a, b core.Vec3, clr color.Color) {
	x0, y0, _ := cam.Project(a, w, h)
	x1, y1, _ := cam.Project(b, w, h)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
}
