// Package raster provides the in-memory drawing surface, gradients and image
// encoders used by the starfield generator.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an offscreen RGBA raster that generators paint into.
// All primitives take their color explicitly; there is no current fill style.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width×height canvas. Non-positive sizes yield an
// empty canvas on which every primitive is a no-op.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewCanvasFrom wraps an existing image without copying it.
func NewCanvasFrom(img *image.RGBA) *Canvas { return &Canvas{img: img} }

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// FillRect paints rect with an opaque copy of col, clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, col color.RGBA) {
	rect = rect.Canon().Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillLinearGradient paints rect with g, clipped to the canvas.
func (c *Canvas) FillLinearGradient(rect image.Rectangle, g *LinearGradient) {
	rect = rect.Canon().Intersect(c.img.Bounds())
	if rect.Empty() || g == nil {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := c.img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := g.PixelAt(x, y)
			c.img.Pix[row+0] = px.R
			c.img.Pix[row+1] = px.G
			c.img.Pix[row+2] = px.B
			c.img.Pix[row+3] = px.A
			row += 4
		}
	}
}
