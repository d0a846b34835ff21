package render

import (
	"context"
	"image"
	"image/color"

	"github.com/rook-computer/starfield/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	// Size is the logical canvas size screens draw into. Valid after Start.
	Size() (width int, height int)
	SetScreen(screen Screen)
	RunLoop(ctx context.Context, store *state.Store)
	RedrawWithState(snap state.State)
}

type Screen interface {
	Draw(r Drawer, s state.State)
}

type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error                 { return nil }
func (n *NoopRenderer) Stop() error                                     { return nil }
func (n *NoopRenderer) Size() (int, int)                                { return CanvasWidth, CanvasHeight }
func (n *NoopRenderer) SetScreen(screen Screen)                         {}
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store) {}
func (n *NoopRenderer) RedrawWithState(snap state.State)                {}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing low-level framebuffer details.
type Drawer interface {
	// Size returns the logical canvas size (in pixels) that screens draw into.
	Size() (width int, height int)

	FillBackground()

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics
	DrawTextCentered(text string, style TextStyle)

	ImageSize(img image.Image) (width int, height int)
	DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Size  int // font size in points; 0 means renderer default
	Align TextAlign
	// Shadow draws a black copy offset by this many pixels first.
	Shadow int
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

type ScaleMode int

const (
	// ScaleModeFit letterboxes the whole image inside the rect.
	ScaleModeFit ScaleMode = iota
	// ScaleModeFill covers the rect, cropping the image centrally.
	ScaleModeFill
	ScaleModeStretch
)

// runLoop draws once, then redraws whenever store changes. Starfields are
// still images, so there is no frame ticker.
func runLoop(ctx context.Context, store *state.Store, redraw func(state.State)) {
	redraw(store.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case <-store.Changed():
			redraw(store.Snapshot())
		}
	}
}
