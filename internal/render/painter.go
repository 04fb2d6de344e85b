//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PointPainter draws projected markers as filled circles.
type PointPainter struct {
	Background color.Color
	Antialias  bool
}

// NewPointPainter returns a painter with a dark background.
func NewPointPainter() *PointPainter {
	return &PointPainter{Background: color.RGBA{R: 12, G: 12, B: 18, A: 255}, Antialias: true}
}

// Draw clears dst and paints every marker back to front.
func (p *PointPainter) Draw(dst *ebiten.Image, markers *Markers) {
	if p.Background != nil {
		dst.Fill(p.Background)
	}
	for _, m := range markers.BackToFront() {
		vector.DrawFilledCircle(dst, m.X, m.Y, m.Radius, m.Color, p.Antialias)
	}
}
