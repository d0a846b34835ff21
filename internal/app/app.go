package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rook-computer/starfield/internal/app/screens"
	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/starfield"
	"github.com/rook-computer/starfield/internal/state"
	"github.com/rook-computer/starfield/internal/system"
	"github.com/rook-computer/starfield/internal/web"
)

const networkRetry = 5 * time.Second

var errExitRequested = errors.New("exit requested")

// App is the kiosk: a starfield on the attached display, re-rolled from the
// web UI or the keyboard.
type App struct {
	Store  *state.Store
	Render render.Renderer
	Web    web.Server
	Logger logging.Logger

	// Config and Seed select the first frame. Seed 0 draws a fresh seed.
	Config starfield.Config
	Seed   uint64

	Caption bool
	QR      bool

	// PublicURL overrides the address shown on screen. When empty it is
	// derived from NetInfo and ListenAddr.
	PublicURL  string
	ListenAddr string
	NetInfo    system.NetInfo

	renderMu sync.Mutex
	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer render.Renderer, webServer web.Server, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &App{
		Store:   store,
		Render:  renderer,
		Web:     webServer,
		Logger:  logger,
		Config:  starfield.DefaultConfig(),
		NetInfo: system.InterfaceNetInfo{},
		exitCh:  make(chan error, 1),
	}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the kiosk until ctx is done, F4 is pressed or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.Logger == nil {
		app.Logger = logging.NoopLogger{}
	}
	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}
	app.exitOnce.Store(false)

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer func() { _ = app.Render.Stop() }()

	restore := system.EnterGraphics(app.Logger)
	defer restore()

	app.Render.SetScreen(screens.NewStarfieldScreen(app.Caption, app.QR, app.Logger))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Render.RunLoop(gctx, app.Store)
		return nil
	})

	g.Go(func() error {
		if err := app.Web.Start(gctx); err != nil {
			return fmt.Errorf("web: %w", err)
		}
		<-gctx.Done()
		return app.Web.Stop()
	})

	g.Go(func() error {
		app.resolveNetwork(gctx)
		return nil
	})

	g.Go(func() error {
		// Failures are shown on screen; the kiosk keeps serving re-roll requests.
		_, _ = app.Display(gctx, app.Config, app.Seed)
		return nil
	})

	system.WatchKeys(gctx, app.Logger, system.KeyBindings{
		system.KeyF4: func() { app.Exit(nil) },
		system.KeyF5: func() { go app.Reroll(gctx) },
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case err := <-app.exitCh:
			if err != nil {
				return err
			}
			return errExitRequested
		}
	})

	err := g.Wait()
	if errors.Is(err, errExitRequested) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Display renders cfg at the display size and makes it the current frame.
// Concurrent calls are serialized. It satisfies web.DisplayFunc.
func (app *App) Display(ctx context.Context, cfg starfield.Config, seed uint64) (string, error) {
	app.renderMu.Lock()
	defer app.renderMu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	width, height := app.Render.Size()
	if width <= 0 || height <= 0 {
		err := fmt.Errorf("display has no usable size (%dx%d)", width, height)
		app.Store.SetError(err)
		return "", err
	}
	if seed == 0 {
		seed = starfield.NewSeed()
	}

	app.Store.SetPhase(state.RENDERING)
	started := time.Now()
	img, sum := starfield.Generate(width, height, cfg, seed)
	frame := state.Frame{
		ID:         uuid.NewString(),
		Image:      img,
		Config:     cfg,
		Seed:       seed,
		Summary:    sum,
		RenderedAt: time.Now(),
	}
	app.Store.PublishFrame(frame)
	app.Logger.Infof("app", "frame %s %dx%d stars=%d seed=%d in %s",
		frame.ID, width, height, sum.Stars, seed, time.Since(started).Round(time.Millisecond))
	return frame.ID, nil
}

// Reroll renders a new seed with the options of the current frame.
func (app *App) Reroll(ctx context.Context) {
	cfg := app.Config
	if f := app.Store.Snapshot().Frame; f.ID != "" {
		cfg = f.Config
	}
	if _, err := app.Display(ctx, cfg, 0); err != nil && ctx.Err() == nil {
		app.Logger.Errorf("app", "re-roll failed: %v", err)
	}
}

// resolveNetwork publishes the kiosk URL, retrying until the host has an
// address. DHCP often finishes after the kiosk starts.
func (app *App) resolveNetwork(ctx context.Context) {
	if app.PublicURL != "" {
		app.Store.UpdateNetwork(state.NetworkInfo{URL: app.PublicURL})
		return
	}
	if app.NetInfo == nil {
		return
	}
	ticker := time.NewTicker(networkRetry)
	defer ticker.Stop()
	for {
		ip, err := app.NetInfo.IP(ctx)
		if url := system.KioskURL(ip, app.ListenAddr); err == nil && url != "" {
			app.Store.UpdateNetwork(state.NetworkInfo{URL: url})
			app.Logger.Infof("app", "reachable at %s", url)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
