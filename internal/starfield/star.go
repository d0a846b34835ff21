package starfield

import (
	"image"
	"image/color"
)

// DrawStar paints a plus-shaped star with its bounding box at (x,y): a t×t
// top square, a 3t×t middle bar and a t×t bottom square, 3t wide and tall
// overall. Thickness 0 draws nothing.
func DrawStar(s Surface, x, y, t int, c color.RGBA) {
	if t <= 0 {
		return
	}
	s.FillRect(image.Rect(x+t, y, x+2*t, y+t), c)
	s.FillRect(image.Rect(x, y+t, x+3*t, y+2*t), c)
	s.FillRect(image.Rect(x+t, y+2*t, x+2*t, y+3*t), c)
}
