package starfield

import (
	"image"

	"github.com/rook-computer/starfield/internal/raster"
)

// Glow band brightness profile along its axis.
const (
	glowFadeIn  = 0.45
	glowFadeOut = 0.55

	// glowBlueLift tints the band's plateau slightly towards blue.
	glowBlueLift = 3
)

// GlowBandGradient returns the gradient DrawGlowBand fills with, or nil when
// (x1,y1) and (x2,y2) coincide.
//
// The gradient axis runs through the segment's midpoint perpendicular to it
// and is as long as the segment, so the plateau in the middle tenth of the
// axis forms a band along the segment that fades to black on both sides.
func GlowBandGradient(x1, y1, x2, y2 float64, intensity int) *raster.LinearGradient {
	dir := Vec{X: x2 - x1, Y: y2 - y1}
	length := dir.Len()
	if length == 0 {
		return nil
	}
	b := NormalizeVector(dir)
	o := Vec{X: -b.Y, Y: b.X}
	half := length / 2
	mx, my := x1+b.X*half, y1+b.Y*half

	peak := float64(intensity)
	g := raster.NewLinearGradient(mx+o.X*half, my+o.Y*half, mx-o.X*half, my-o.Y*half)
	g.AddColorStop(0, 0, 0, 0)
	g.AddColorStop(glowFadeIn, peak, peak, peak+glowBlueLift)
	g.AddColorStop(glowFadeOut, peak, peak, peak+glowBlueLift)
	g.AddColorStop(1, 0, 0, 0)
	return g
}

// DrawGlowBand fills the width×height surface with a dithered glow band
// centered on the segment (x1,y1)-(x2,y2). It reports false and leaves the
// surface untouched for a zero-length segment.
func DrawGlowBand(s Surface, x1, y1, x2, y2 float64, intensity, width, height int) bool {
	g := GlowBandGradient(x1, y1, x2, y2, intensity)
	if g == nil {
		return false
	}
	s.FillLinearGradient(image.Rect(0, 0, width, height), g)
	return true
}
