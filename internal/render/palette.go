package render

import "image/color"

// HeightPalette colors points by their y coordinate: low points take the
// first stop, high points the last.
type HeightPalette []color.RGBA

// DefaultPalette runs from deep blue through teal to warm yellow.
var DefaultPalette = HeightPalette{
	{R: 30, G: 40, B: 140, A: 255},
	{R: 20, G: 150, B: 170, A: 255},
	{R: 90, G: 200, B: 100, A: 255},
	{R: 250, G: 210, B: 60, A: 255},
}

// At interpolates the palette for y in [-1, 1]. Values outside the range use
// the end stops. An empty palette yields transparent black.
func (p HeightPalette) At(y float32) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if len(p) == 1 {
		return p[0]
	}
	f := clamp((y+1)/2, 0, 1) * float32(len(p)-1)
	i := int(f)
	if i >= len(p)-1 {
		return p[len(p)-1]
	}
	return blend(p[i], p[i+1], f-float32(i))
}

func blend(a, b color.RGBA, w float32) color.RGBA {
	inv := 1 - w
	return color.RGBA{
		R: uint8(float32(a.R)*inv + float32(b.R)*w + 0.5),
		G: uint8(float32(a.G)*inv + float32(b.G)*w + 0.5),
		B: uint8(float32(a.B)*inv + float32(b.B)*w + 0.5),
		A: uint8(float32(a.A)*inv + float32(b.A)*w + 0.5),
	}
}
