package raster

import (
	"image/color"
	"math"
	"sort"
)

// ColorStop is a gradient color at Offset along the gradient axis.
// Channels are on the 0–255 scale and may exceed it; they are clamped
// only when a pixel is quantized.
type ColorStop struct {
	Offset  float64
	R, G, B float64
}

// LinearGradient varies color along the axis (X0,Y0)→(X1,Y1) and is constant
// along lines perpendicular to it. Points beyond either end take the end color.
//
// With Dither set, pixels are quantized against an 8×8 ordered threshold map
// instead of being rounded, which hides the banding that dark, shallow
// gradients otherwise show on 8-bit outputs.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
	Dither bool
}

func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Dither: true}
}

// AddColorStop inserts a stop keeping Stops ordered by offset. Stops with an
// equal offset keep insertion order. Offsets are clamped to [0,1].
func (g *LinearGradient) AddColorStop(offset, r, gr, b float64) *LinearGradient {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, ColorStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = ColorStop{Offset: offset, R: r, G: gr, B: b}
	return g
}

// Offset projects (x,y) onto the gradient axis and returns the padded
// position in [0,1].
func (g *LinearGradient) Offset(x, y float64) float64 {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0
	}
	return clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq)
}

// ColorAt returns the unquantized color at (x,y).
func (g *LinearGradient) ColorAt(x, y float64) (r, gr, b float64) {
	return g.colorAtOffset(g.Offset(x, y))
}

func (g *LinearGradient) colorAtOffset(t float64) (r, gr, b float64) {
	stops := g.Stops
	switch {
	case len(stops) == 0:
		return 0, 0, 0
	case t <= stops[0].Offset:
		s := stops[0]
		return s.R, s.G, s.B
	case t >= stops[len(stops)-1].Offset:
		s := stops[len(stops)-1]
		return s.R, s.G, s.B
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	a, z := stops[i-1], stops[i]
	span := z.Offset - a.Offset
	if span <= 0 {
		return z.R, z.G, z.B
	}
	f := (t - a.Offset) / span
	return lerp(a.R, z.R, f), lerp(a.G, z.G, f), lerp(a.B, z.B, f)
}

// PixelAt samples the gradient at the center of pixel (x,y) and quantizes it.
func (g *LinearGradient) PixelAt(x, y int) color.RGBA {
	r, gr, b := g.ColorAt(float64(x)+0.5, float64(y)+0.5)
	threshold := 0.5
	if g.Dither {
		threshold = bayer8[y&7][x&7]
	}
	return color.RGBA{R: quantize(r, threshold), G: quantize(gr, threshold), B: quantize(b, threshold), A: 0xFF}
}

// quantize maps v onto 0–255 by flooring v+threshold. A threshold in [0,1)
// keeps exact integers (in particular black) unchanged.
func quantize(v, threshold float64) uint8 {
	q := math.Floor(v + threshold)
	if q <= 0 || math.IsNaN(q) {
		return 0
	}
	if q >= 255 {
		return 255
	}
	return uint8(q)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// bayer8 holds the classic 8×8 ordered dither matrix scaled to (0,1).
var bayer8 = func() [8][8]float64 {
	base := [8][8]int{
		{0, 32, 8, 40, 2, 34, 10, 42},
		{48, 16, 56, 24, 50, 18, 58, 26},
		{12, 44, 4, 36, 14, 46, 6, 38},
		{60, 28, 52, 20, 62, 30, 54, 22},
		{3, 35, 11, 43, 1, 33, 9, 41},
		{51, 19, 59, 27, 49, 17, 57, 25},
		{15, 47, 7, 39, 13, 45, 5, 37},
		{63, 31, 55, 23, 61, 29, 53, 21},
	}
	var m [8][8]float64
	for y := range base {
		for x := range base[y] {
			m[y][x] = (float64(base[y][x]) + 0.5) / 64
		}
	}
	return m
}()
