package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/starfield/internal/assets"
	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/render/layout"
)

const (
	defaultFontSize = 32
	fontDPI         = 96
)

// CanvasDrawer implements Drawer on an offscreen RGBA canvas. Renderers own
// one and copy its canvas to their output after each screen draw.
type CanvasDrawer struct {
	canvas *image.RGBA
	ttFont *truetype.Font
	faces  map[int]font.Face
}

// NewCanvasDrawer falls back to basicfont when the embedded font cannot be parsed.
func NewCanvasDrawer(width, height int, logger logging.Logger) *CanvasDrawer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	d := &CanvasDrawer{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		faces:  make(map[int]font.Face),
	}
	tt, err := truetype.Parse(assets.FontTTF)
	if err != nil {
		logger.Errorf("fb", "truetype parse failed, using basicfont: %v", err)
		return d
	}
	d.ttFont = tt
	return d
}

// Canvas is the drawn image. It is reused between frames.
func (d *CanvasDrawer) Canvas() *image.RGBA { return d.canvas }

func (d *CanvasDrawer) Size() (int, int) {
	b := d.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (d *CanvasDrawer) FillBackground() {
	draw.Draw(d.canvas, d.canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (d *CanvasDrawer) face(size int) font.Face {
	if d.ttFont == nil {
		return basicfont.Face7x13
	}
	if size <= 0 {
		size = defaultFontSize
	}
	if f, ok := d.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(d.ttFont, &truetype.Options{Size: float64(size), DPI: fontDPI, Hinting: font.HintingFull})
	d.faces[size] = f
	return f
}

func (d *CanvasDrawer) MeasureText(text string, style TextStyle) TextMetrics {
	face := d.face(style.Size)
	m := face.Metrics()
	return TextMetrics{
		Width:      font.MeasureString(face, text).Ceil(),
		Height:     m.Ascent.Ceil() + m.Descent.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

func (d *CanvasDrawer) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	metrics := d.MeasureText(text, style)
	switch style.Align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}
	fg := style.Color
	if fg == nil {
		fg = Foreground
	}
	baseline := y + metrics.Ascent
	if style.Shadow > 0 {
		d.drawString(text, x+style.Shadow, baseline+style.Shadow, color.Black, style.Size)
	}
	d.drawString(text, x, baseline, fg, style.Size)
	return metrics
}

// DrawTextCentered centers text on the canvas both ways.
func (d *CanvasDrawer) DrawTextCentered(text string, style TextStyle) {
	w, h := d.Size()
	metrics := d.MeasureText(text, style)
	style.Align = TextAlignCenter
	d.DrawText(text, w/2, (h-metrics.Height)/2, style)
}

func (d *CanvasDrawer) drawString(text string, x, baseline int, fg color.Color, size int) {
	drawer := &font.Drawer{Dst: d.canvas, Src: &image.Uniform{C: fg}, Face: d.face(size)}
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func (d *CanvasDrawer) ImageSize(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// DrawImageInRect copies pixels unscaled when the sizes already match, so a
// starfield rendered at canvas size reaches the screen exactly.
func (d *CanvasDrawer) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	if img == nil {
		return
	}
	rect = layout.Normalize(rect)
	src := img.Bounds()
	if rect.Empty() || src.Empty() {
		return
	}

	dst := rect
	switch mode {
	case ScaleModeFit:
		dst = layout.FitAspect(rect, src.Dx(), src.Dy())
	case ScaleModeFill:
		src = layout.FitAspect(src, rect.Dx(), rect.Dy())
	}

	if dst.Size() == src.Size() {
		draw.Draw(d.canvas, dst, img, src.Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(d.canvas, dst, img, src, xdraw.Over, nil)
}
