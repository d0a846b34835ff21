package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/state"
)

// FileRenderer writes every redraw to an image file. It stands in for the
// framebuffer on machines without one; point an image viewer at Path.
type FileRenderer struct {
	Path          string
	Width, Height int
	Logger        logging.Logger

	mu      sync.Mutex
	drawer  *CanvasDrawer
	format  raster.Format
	current Screen
}

func NewFileRenderer(path string, width, height int, logger logging.Logger) *FileRenderer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &FileRenderer{Path: path, Width: width, Height: height, Logger: logger}
}

func (r *FileRenderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Logger == nil {
		r.Logger = logging.NoopLogger{}
	}
	format, err := raster.ParseFormat(filepath.Ext(r.Path))
	if err != nil {
		return fmt.Errorf("preview file %q: %w", r.Path, err)
	}
	r.format = format
	w, h := r.Width, r.Height
	if w <= 0 || h <= 0 {
		w, h = CanvasWidth, CanvasHeight
	}
	r.drawer = NewCanvasDrawer(w, h, r.Logger)
	r.Logger.Infof("fb", "writing frames to %s (%dx%d)", r.Path, w, h)
	return nil
}

func (r *FileRenderer) Stop() error { return nil }

func (r *FileRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drawer == nil {
		return r.Width, r.Height
	}
	return r.drawer.Size()
}

func (r *FileRenderer) SetScreen(screen Screen) {
	r.mu.Lock()
	r.current = screen
	r.mu.Unlock()
}

func (r *FileRenderer) RedrawWithState(snap state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || r.drawer == nil {
		return
	}
	r.drawer.FillBackground()
	r.current.Draw(r.drawer, snap)
	if err := r.write(); err != nil {
		r.Logger.Errorf("fb", "write %s: %v", r.Path, err)
	}
}

func (r *FileRenderer) RunLoop(ctx context.Context, store *state.Store) {
	runLoop(ctx, store, r.RedrawWithState)
}

// write replaces Path atomically so viewers never see a half-written file.
func (r *FileRenderer) write() error {
	tmp, err := os.CreateTemp(filepath.Dir(r.Path), ".starfield-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := raster.Encode(tmp, r.drawer.Canvas(), r.format); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.Path)
}
