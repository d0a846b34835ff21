package web

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/starfield"
	"github.com/rook-computer/starfield/internal/state"
)

// StatusSource abstracts the kiosk state read by GET /status.
//
// The concrete implementation is *state.Store.
type StatusSource interface {
	Snapshot() state.State
}

// DisplayFunc renders cfg on the attached screen and returns the frame id.
// Seed 0 means draw a fresh seed.
type DisplayFunc func(ctx context.Context, cfg starfield.Config, seed uint64) (string, error)

type APIV1Deps struct {
	Status   StatusSource
	Renders  *RenderCache
	Limiter  *rate.Limiter
	Defaults RenderDefaults

	// PublicURL is encoded by /qrcode.png. When empty the request host is used.
	PublicURL string

	// Display is nil when no screen is attached (the serve command).
	Display DisplayFunc

	Logger logging.Logger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Status == nil {
		store := state.NewStore()
		store.SetPhase(state.READY)
		out.Status = store
	}
	if out.Renders == nil {
		out.Renders = NewRenderCache(defaultRenderTTL)
	}
	if out.Defaults.Width <= 0 {
		out.Defaults.Width = render.CanvasWidth
	}
	if out.Defaults.Height <= 0 {
		out.Defaults.Height = render.CanvasHeight
	}
	if out.Defaults.Format == "" {
		out.Defaults.Format = raster.FormatPNG
	}
	if out.Logger == nil {
		out.Logger = logging.NoopLogger{}
	}
	return out
}

// NewAPIV1Deps builds the API dependencies from the server settings.
func NewAPIV1Deps(cfg ServerConfig, defaults RenderDefaults, status StatusSource, display DisplayFunc, logger logging.Logger) APIV1Deps {
	return APIV1Deps{
		Status:    status,
		Renders:   NewRenderCache(cfg.CacheTTL),
		Limiter:   newRenderLimiter(cfg.RendersPerSecond, cfg.RenderBurst),
		Defaults:  defaults,
		PublicURL: cfg.PublicURL,
		Display:   display,
		Logger:    logger,
	}.withDefaults()
}
