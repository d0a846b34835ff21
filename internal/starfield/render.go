package starfield

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/rook-computer/starfield/internal/raster"
)

// Surface is the raster a starfield is painted on. *raster.Canvas satisfies it.
type Surface interface {
	FillRect(r image.Rectangle, c color.RGBA)
	FillLinearGradient(r image.Rectangle, g *raster.LinearGradient)
}

var black = color.RGBA{A: 0xFF}

// Line is the line of brightness, from the left edge to the right edge.
type Line struct {
	P1, P2 Point
}

// Summary describes what a Render call painted.
type Summary struct {
	Line     Line `json:"line"`
	Stars    int  `json:"stars"`
	GlowBand bool `json:"glowBand"`
}

// Render paints a starfield over the width×height area of s in three passes:
// black background, the optional glow band, then cfg.StarCount stars.
// Non-positive sizes paint nothing.
func Render(s Surface, width, height int, cfg Config, rng *rand.Rand) Summary {
	if width <= 0 || height <= 0 {
		return Summary{}
	}
	cfg = cfg.Normalize()

	s.FillRect(image.Rect(0, 0, width, height), black)

	line := Line{
		P1: Point{X: 0, Y: float64(mustRandomInt(rng, 0, height))},
		P2: Point{X: float64(width), Y: float64(mustRandomInt(rng, 0, height))},
	}
	sum := Summary{Line: line}

	if cfg.GlowBand {
		sum.GlowBand = DrawGlowBand(s, line.P1.X, line.P1.Y, line.P2.X, line.P2.Y, cfg.GlowBandIntensity, width, height)
	}

	for i := 0; i < cfg.StarCount; i++ {
		x := mustRandomInt(rng, 0, width)
		y := mustRandomInt(rng, 0, height)

		thickness := mustRandomInt(rng, 0, MaxThickness)
		if cfg.BrightConcentration {
			thickness = Thickness(DistFromLine(line.P1, line.P2, float64(x), float64(y)))
		}

		c := White
		if cfg.StarColors {
			c = Palette[mustRandomInt(rng, 0, len(Palette))]
		}

		DrawStar(s, x, y, thickness, c)
	}
	sum.Stars = cfg.StarCount
	return sum
}

// Generate renders a fresh width×height starfield from seed.
func Generate(width, height int, cfg Config, seed uint64) (*image.RGBA, Summary) {
	canvas := raster.NewCanvas(width, height)
	sum := Render(canvas, width, height, cfg, NewRand(seed))
	return canvas.Image(), sum
}
