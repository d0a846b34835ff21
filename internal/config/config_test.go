package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfield.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 || cfg.Server.Listen != ":8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[canvas]
width = 800
height = 600
format = "jpeg"
seed = 77

[starfield]
star_count = 250
glow_band = false
star_colors = true

[server]
listen = "127.0.0.1:9000"

[sparkles]
enabled = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 || cfg.Canvas.Format != "jpeg" || cfg.Canvas.Seed != 77 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if cfg.Starfield.StarCount != 250 || cfg.Starfield.GlowBand || !cfg.Starfield.StarColors {
		t.Errorf("starfield = %+v", cfg.Starfield)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Starfield.BrightConcentration || cfg.Starfield.GlowBandIntensity != 20 {
		t.Errorf("defaults lost: %+v", cfg.Starfield)
	}
	if cfg.Server.Listen != "127.0.0.1:9000" {
		t.Errorf("listen = %q", cfg.Server.Listen)
	}
	if len(cfg.Undecoded) == 0 || !strings.HasPrefix(strings.Join(cfg.Undecoded, ","), "sparkles") {
		t.Errorf("undecoded = %v, want sparkles keys", cfg.Undecoded)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := Load(writeFile(t, "[canvas\nwidth = ")); err == nil {
		t.Error("malformed file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*File)
		want   string
	}{
		{"zero width", func(f *File) { f.Canvas.Width = 0 }, "canvas size"},
		{"huge height", func(f *File) { f.Canvas.Height = MaxDimension + 1 }, "canvas size"},
		{"bad format", func(f *File) { f.Canvas.Format = "gif" }, "canvas.format"},
		{"negative stars", func(f *File) { f.Starfield.StarCount = -1 }, "star_count"},
		{"intensity", func(f *File) { f.Starfield.GlowBandIntensity = 300 }, "glow_band_intensity"},
		{"listen", func(f *File) { f.Server.Listen = " " }, "server.listen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, ":9999")
	t.Setenv(EnvDevMode, "true")
	t.Setenv(EnvPublicURL, "http://starfield.local/")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Listen != ":9999" || !cfg.Server.Dev || cfg.Server.PublicURL != "http://starfield.local/" {
		t.Errorf("server = %+v", cfg.Server)
	}

	t.Setenv(EnvDevMode, "maybe")
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("invalid boolean should fail")
	}
}
