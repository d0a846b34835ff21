package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestDrawImageInRectExactCopy(t *testing.T) {
	d := NewCanvasDrawer(8, 4, nil)
	d.FillBackground()

	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 7)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xFF
	}
	d.DrawImageInRect(src, image.Rect(0, 0, 8, 4), ScaleModeFill)

	for i := range src.Pix {
		if d.Canvas().Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d = %d, want %d", i, d.Canvas().Pix[i], src.Pix[i])
		}
	}
}

func TestDrawImageInRectFitLetterboxes(t *testing.T) {
	d := NewCanvasDrawer(20, 10, nil)
	d.FillBackground()
	red := color.RGBA{R: 0xFF, A: 0xFF}
	d.DrawImageInRect(solid(5, 5, red), image.Rect(0, 0, 20, 10), ScaleModeFit)

	if got := d.Canvas().RGBAAt(10, 5); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if got := d.Canvas().RGBAAt(1, 5); got != Background {
		t.Errorf("left bar = %v, want background", got)
	}
}

func TestDrawImageInRectFillCovers(t *testing.T) {
	d := NewCanvasDrawer(20, 10, nil)
	d.FillBackground()
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	d.DrawImageInRect(solid(5, 5, blue), image.Rect(0, 0, 20, 10), ScaleModeFill)

	for _, p := range []image.Point{{0, 0}, {19, 9}, {1, 5}} {
		if got := d.Canvas().RGBAAt(p.X, p.Y); got != blue {
			t.Errorf("pixel %v = %v, want blue", p, got)
		}
	}
}

func TestDrawTextMarksCanvas(t *testing.T) {
	d := NewCanvasDrawer(300, 80, nil)
	d.FillBackground()
	m := d.DrawText("stars", 10, 10, TextStyle{Size: 24})
	if m.Width <= 0 || m.Height <= 0 {
		t.Fatalf("metrics = %+v", m)
	}

	lit := 0
	b := image.Rect(10, 10, 10+m.Width, 10+m.Height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if d.Canvas().RGBAAt(x, y) != Background {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no text pixels inside the measured box")
	}
	if d.MeasureText("stars", TextStyle{Size: 48}).Width <= m.Width {
		t.Error("larger size did not measure wider")
	}
}

func TestDrawTextAlignment(t *testing.T) {
	d := NewCanvasDrawer(400, 60, nil)
	d.FillBackground()
	d.DrawText("right", 399, 5, TextStyle{Align: TextAlignRight, Size: 20})

	minX := 400
	for y := 0; y < 60; y++ {
		for x := 0; x < 400; x++ {
			if d.Canvas().RGBAAt(x, y) != Background && x < minX {
				minX = x
			}
		}
	}
	if minX < 200 {
		t.Errorf("right-aligned text starts at x=%d", minX)
	}
}
