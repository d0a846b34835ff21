package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rook-computer/starfield/internal/app"
	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/state"
	"github.com/rook-computer/starfield/internal/web"
)

type kioskOpts struct {
	serve     serveOpts
	device    string
	noCaption bool
	noQR      bool
	noWeb     bool
	sf        starfieldFlags
}

func newKioskCmd(e *env) *cobra.Command {
	opts := &kioskOpts{}
	cmd := &cobra.Command{
		Use:   "kiosk",
		Short: "Show starfields on the framebuffer and serve the web UI",
		Long: `kiosk fills the display with a starfield and serves the web UI so phones can
re-roll it. F5 draws a new starfield, F4 exits.

A --device ending in an image extension (.png, .jpg, ...) writes each frame to
that file instead of a framebuffer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKiosk(cmd, e, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.device, "device", "", "framebuffer device or preview image file (default from config)")
	flags.BoolVar(&opts.noCaption, "no-caption", false, "hide the seed caption")
	flags.BoolVar(&opts.noQR, "no-qr", false, "hide the QR code")
	flags.BoolVar(&opts.noWeb, "no-web", false, "do not start the web server")
	flags.StringVar(&opts.serve.listen, "listen", "", "listen address (default from config or STARFIELD_LISTEN)")
	flags.BoolVar(&opts.serve.dev, "dev", false, "enable permissive CORS for a UI dev server")
	flags.StringVar(&opts.serve.staticDir, "static-dir", "", "serve this directory instead of the embedded UI")
	opts.sf.register(cmd)
	return cmd
}

func runKiosk(cmd *cobra.Command, e *env, opts *kioskOpts) error {
	sfCfg, err := opts.sf.apply(cmd, e.cfg.Starfield)
	if err != nil {
		return err
	}

	device := e.cfg.Kiosk.Device
	if cmd.Flags().Changed("device") {
		device = opts.device
	}

	store := state.NewStore()
	srvCfg := serverConfig(cmd, e, &opts.serve)
	a := app.New(store, newKioskRenderer(device, e), nil, e.log)
	a.Config = sfCfg
	a.Seed = opts.sf.seedOr(cmd, e.cfg.Canvas.Seed)
	a.Caption = e.cfg.Kiosk.Caption && !opts.noCaption
	a.QR = e.cfg.Kiosk.QR && !opts.noQR && !opts.noWeb
	a.PublicURL = srvCfg.PublicURL
	a.ListenAddr = srvCfg.ListenAddr

	if !opts.noWeb {
		deps := web.NewAPIV1Deps(srvCfg, renderDefaults(e), store, a.Display, e.log)
		a.Web = web.NewHTTPServer(srvCfg, web.NewRouter(srvCfg.StaticDir, deps), e.log)
	}
	return a.Start(cmd.Context())
}

// newKioskRenderer treats a device path with an image extension as a preview file.
func newKioskRenderer(device string, e *env) render.Renderer {
	if ext := strings.ToLower(filepath.Ext(device)); ext != "" {
		if _, err := raster.ParseFormat(ext); err == nil {
			return render.NewFileRenderer(device, e.cfg.Canvas.Width, e.cfg.Canvas.Height, e.log)
		}
	}
	return render.NewFBRenderer(device, e.log)
}
