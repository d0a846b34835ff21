package web

import (
	"time"

	"github.com/rook-computer/starfield/internal/config"
)

// ServerConfig contains settings for running the HTTP server.
//
// The intended defaults differ per command:
// - kiosk: :80
// - serve: :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool

	// StaticDir, when set to an existing directory, is served at "/" instead
	// of the embedded UI.
	StaticDir string

	// PublicURL is the address phones should open; it is encoded in the QR code.
	// When empty it is derived from the listen address.
	PublicURL string

	RendersPerSecond float64
	RenderBurst      int
	CacheTTL         time.Duration
}

// ServerConfigFromFile maps the [server] section of the config file.
func ServerConfigFromFile(s config.Server) ServerConfig {
	return ServerConfig{
		ListenAddr:       s.Listen,
		DevMode:          s.Dev,
		StaticDir:        s.StaticDir,
		PublicURL:        s.PublicURL,
		RendersPerSecond: s.RendersPerSecond,
		RenderBurst:      s.RenderBurst,
		CacheTTL:         time.Duration(s.CacheTTLSeconds) * time.Second,
	}
}
