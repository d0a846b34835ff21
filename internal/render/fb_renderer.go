package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/state"
)

const DefaultDevice = "/dev/fb0"

// pixelSink is the part of a framebuffer device the blit writes to.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	Device string
	// Width and Height set the logical canvas. Zero means the device size,
	// which avoids resampling single-pixel stars.
	Width, Height int
	Logger        logging.Logger

	mu      sync.Mutex
	fbDev   *fb.Device
	drawer  *CanvasDrawer
	scaled  *image.RGBA
	current Screen
}

func NewFBRenderer(device string, logger logging.Logger) *FBRenderer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &FBRenderer{Device: device, Logger: logger}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Logger == nil {
		r.Logger = logging.NoopLogger{}
	}

	device := r.Device
	if device == "" {
		device = DefaultDevice
	}
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", device, bounds.Dx(), bounds.Dy())

	w, h := r.Width, r.Height
	if w <= 0 || h <= 0 {
		w, h = bounds.Dx(), bounds.Dy()
	}
	r.drawer = NewCanvasDrawer(w, h, r.Logger)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fbDev == nil {
		return nil
	}
	r.fbDev.Close()
	r.fbDev = nil
	return nil
}

func (r *FBRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drawer == nil {
		return r.Width, r.Height
	}
	return r.drawer.Size()
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen Screen) {
	r.mu.Lock()
	r.current = screen
	r.mu.Unlock()
}

// RedrawWithState draws the current screen and copies it to the framebuffer.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || r.fbDev == nil {
		return
	}
	r.drawer.FillBackground()
	r.current.Draw(r.drawer, snap)
	if err := r.blit(r.fbDev); err != nil {
		r.Logger.Errorf("fb", "blit: %v", err)
		return
	}
	r.Logger.Infof("fb", "redraw done, phase=%s", snap.Phase)
}

func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) {
	runLoop(ctx, store, r.RedrawWithState)
}

// blit copies the canvas to dst, resampling only when the sizes differ.
func (r *FBRenderer) blit(dst pixelSink) error {
	if dst == nil || r.drawer == nil {
		return errors.New("framebuffer not open")
	}
	src := r.drawer.Canvas()
	bounds := dst.Bounds()
	if bounds.Size() != src.Bounds().Size() {
		if r.scaled == nil || r.scaled.Bounds().Size() != bounds.Size() {
			r.scaled = image.NewRGBA(image.Rectangle{Max: bounds.Size()})
		}
		xdraw.ApproxBiLinear.Scale(r.scaled, r.scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		src = r.scaled
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			p := src.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
	return nil
}
