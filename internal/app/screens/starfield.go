package screens

import (
	"fmt"
	"image"

	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/render/layout"
	"github.com/rook-computer/starfield/internal/state"
)

const (
	overlayMargin = 32
	maxQRSize     = 240
	captionSize   = 18
)

// StarfieldScreen shows the current frame edge to edge. Caption and QR add a
// small overlay with the seed and a code linking to the web UI.
type StarfieldScreen struct {
	Caption bool
	QR      bool
	Logger  logging.Logger

	qrURL  string
	qrSize int
	qrImg  image.Image
}

func NewStarfieldScreen(caption, qr bool, logger logging.Logger) *StarfieldScreen {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &StarfieldScreen{Caption: caption, QR: qr, Logger: logger}
}

func (screen *StarfieldScreen) Draw(r render.Drawer, st state.State) {
	if st.Frame.Image == nil {
		BootScreen{}.Draw(r, st)
		return
	}

	w, h := r.Size()
	full := image.Rect(0, 0, w, h)
	r.DrawImageInRect(st.Frame.Image, full, render.ScaleModeFill)

	inner := layout.Inset(full, overlayMargin)
	shadowed := render.TextStyle{Size: captionSize, Color: render.Dimmed, Shadow: 2}

	switch st.Phase {
	case state.RENDERING:
		r.DrawText("rendering", inner.Min.X, inner.Min.Y, shadowed)
	case state.ERROR:
		r.DrawText("render failed: "+st.Err, inner.Min.X, inner.Min.Y, shadowed)
	}

	if screen.QR && st.Network.URL != "" {
		size := h / 5
		if size > maxQRSize {
			size = maxQRSize
		}
		if qr := screen.qrCode(st.Network.URL, size); qr != nil {
			r.DrawImageInRect(qr, layout.AnchorBottomRight(inner, size, size), render.ScaleModeStretch)
		}
	}

	if screen.Caption {
		lines := []string{
			fmt.Sprintf("seed %d", st.Frame.Seed),
			fmt.Sprintf("%d stars", st.Frame.Summary.Stars),
		}
		if st.Network.URL != "" {
			lines = append(lines, st.Network.URL)
		}
		m := r.MeasureText("Mg", shadowed)
		_, footer := layout.SplitHorizontal(inner, inner.Dy()-len(lines)*m.LineHeight)
		for i, line := range lines {
			r.DrawText(line, footer.Min.X, footer.Min.Y+i*m.LineHeight, shadowed)
		}
	}
}

// qrCode caches the code for the last URL and size.
func (screen *StarfieldScreen) qrCode(url string, size int) image.Image {
	if screen.qrImg != nil && screen.qrURL == url && screen.qrSize == size {
		return screen.qrImg
	}
	img, err := render.GenerateQRCodeImage(url, size)
	if err != nil {
		screen.Logger.Errorf("app", "qr code for %s: %v", url, err)
		return nil
	}
	screen.qrURL, screen.qrSize, screen.qrImg = url, size, img
	return img
}
