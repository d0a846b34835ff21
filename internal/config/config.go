// Package config loads the starfield TOML configuration file and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/starfield"
)

const (
	EnvListenAddr = "STARFIELD_LISTEN"
	EnvDevMode    = "STARFIELD_DEV"
	EnvPublicURL  = "STARFIELD_PUBLIC_URL"
	EnvConfigPath = "STARFIELD_CONFIG"

	// MaxDimension bounds canvas width and height.
	MaxDimension = 8192
)

type Canvas struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Format string `toml:"format"`
	// Seed fixes the random sequence; 0 draws a fresh seed per render.
	Seed uint64 `toml:"seed"`
}

type Server struct {
	Listen    string `toml:"listen"`
	Dev       bool   `toml:"dev"`
	StaticDir string `toml:"static_dir"`
	PublicURL string `toml:"public_url"`
	// RendersPerSecond limits the render endpoints; 0 disables the limit.
	RendersPerSecond float64 `toml:"renders_per_second"`
	RenderBurst      int     `toml:"render_burst"`
	CacheTTLSeconds  int     `toml:"cache_ttl_seconds"`
}

type Kiosk struct {
	Device  string `toml:"device"`
	Caption bool   `toml:"caption"`
	QR      bool   `toml:"qr"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type File struct {
	Canvas    Canvas           `toml:"canvas"`
	Starfield starfield.Config `toml:"starfield"`
	Server    Server           `toml:"server"`
	Kiosk     Kiosk            `toml:"kiosk"`
	Log       Log              `toml:"log"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

func Default() File {
	return File{
		Canvas:    Canvas{Width: 1920, Height: 1080, Format: "png"},
		Starfield: starfield.DefaultConfig(),
		Server: Server{
			Listen:           ":8080",
			RendersPerSecond: 2,
			RenderBurst:      4,
			CacheTTLSeconds:  600,
		},
		Kiosk: Kiosk{Device: "/dev/fb0", Caption: true, QR: true},
		Log:   Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys do not fail the load; they are reported in Undecoded.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return cfg, nil
}

// ApplyEnv overrides server settings from the environment.
func (f *File) ApplyEnv() error {
	if v := os.Getenv(EnvListenAddr); v != "" {
		f.Server.Listen = v
	}
	if v := os.Getenv(EnvPublicURL); v != "" {
		f.Server.PublicURL = v
	}
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		f.Server.Dev = parsed
	}
	return nil
}

// Validate checks ranges and normalizes the starfield section.
func (f *File) Validate() error {
	var errs []error
	if err := CheckSize(f.Canvas.Width, f.Canvas.Height); err != nil {
		errs = append(errs, err)
	}
	if _, err := raster.ParseFormat(f.Canvas.Format); err != nil {
		errs = append(errs, fmt.Errorf("canvas.format: %w", err))
	}
	if f.Starfield.StarCount < 0 {
		errs = append(errs, fmt.Errorf("starfield.star_count must be >= 0 (got %d)", f.Starfield.StarCount))
	}
	if i := f.Starfield.GlowBandIntensity; i < 0 || i > starfield.MaxGlowBandIntensity {
		errs = append(errs, fmt.Errorf("starfield.glow_band_intensity must be in [0,%d] (got %d)", starfield.MaxGlowBandIntensity, i))
	}
	if strings.TrimSpace(f.Server.Listen) == "" {
		errs = append(errs, errors.New("server.listen must not be empty"))
	}
	if f.Server.RendersPerSecond < 0 || f.Server.RenderBurst < 0 || f.Server.CacheTTLSeconds < 0 {
		errs = append(errs, errors.New("server rate and cache settings must be >= 0"))
	}
	return errors.Join(errs...)
}

// CheckSize reports whether width×height is a renderable canvas.
func CheckSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("canvas size %dx%d out of range [1,%d]", width, height, MaxDimension)
	}
	return nil
}
