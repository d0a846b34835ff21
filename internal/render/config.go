package render

import "image/color"

// Kiosk colors and logical canvas.
var (
	Foreground = color.RGBA{R: 0xED, G: 0xEE, B: 0xFF, A: 0xFF} // #edeeff
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Dimmed     = color.RGBA{R: 0x9D, G: 0xB4, B: 0xFF, A: 0xFF} // #9db4ff

	// Logical canvas size; scaled to framebuffer.
	CanvasWidth  = 1920
	CanvasHeight = 1080
)
