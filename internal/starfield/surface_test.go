package starfield

import (
	"image"
	"image/color"

	"github.com/rook-computer/starfield/internal/raster"
)

type fillCall struct {
	rect  image.Rectangle
	color color.RGBA
}

// recordingSurface captures primitive calls instead of painting.
type recordingSurface struct {
	fills     []fillCall
	gradients []*raster.LinearGradient
}

func (s *recordingSurface) FillRect(r image.Rectangle, c color.RGBA) {
	s.fills = append(s.fills, fillCall{rect: r, color: c})
}

func (s *recordingSurface) FillLinearGradient(_ image.Rectangle, g *raster.LinearGradient) {
	s.gradients = append(s.gradients, g)
}

func isBlack(c color.RGBA) bool { return c.R == 0 && c.G == 0 && c.B == 0 }
