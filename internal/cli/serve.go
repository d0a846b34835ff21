package cli

import (
	"github.com/spf13/cobra"

	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/web"
)

type serveOpts struct {
	listen    string
	dev       bool
	staticDir string
}

func newServeCmd(e *env) *cobra.Command {
	opts := &serveOpts{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the starfield web UI and API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serverConfig(cmd, e, opts)
			deps := web.NewAPIV1Deps(cfg, renderDefaults(e), nil, nil, e.log)
			srv := web.NewHTTPServer(cfg, web.NewRouter(cfg.StaticDir, deps), e.log)
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}
			return srv.Wait()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.listen, "listen", "", "listen address (default from config or STARFIELD_LISTEN)")
	flags.BoolVar(&opts.dev, "dev", false, "enable permissive CORS for a UI dev server")
	flags.StringVar(&opts.staticDir, "static-dir", "", "serve this directory instead of the embedded UI")
	return cmd
}

func serverConfig(cmd *cobra.Command, e *env, opts *serveOpts) web.ServerConfig {
	cfg := web.ServerConfigFromFile(e.cfg.Server)
	if cmd.Flags().Changed("listen") {
		cfg.ListenAddr = opts.listen
	}
	if cmd.Flags().Changed("dev") {
		cfg.DevMode = opts.dev
	}
	if cmd.Flags().Changed("static-dir") {
		cfg.StaticDir = opts.staticDir
	}
	return cfg
}

func renderDefaults(e *env) web.RenderDefaults {
	format, err := raster.ParseFormat(e.cfg.Canvas.Format)
	if err != nil {
		format = raster.FormatPNG
	}
	return web.RenderDefaults{Width: e.cfg.Canvas.Width, Height: e.cfg.Canvas.Height, Format: format}
}
