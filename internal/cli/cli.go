// Package cli implements the starfield command-line interface.
//
// # Commands
//
//   - render: paint one starfield to an image file
//   - serve: run the web UI and API
//   - kiosk: show starfields on the framebuffer, with the web UI alongside
//   - palette: list the star colors
//
// # Configuration
//
// Every command reads an optional TOML file (--config or STARFIELD_CONFIG).
// Environment variables override the file and command flags override both.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/rook-computer/starfield/internal/config"
	"github.com/rook-computer/starfield/internal/logging"
	"github.com/rook-computer/starfield/internal/system"
)

const debugLogPath = "./starfield-debug.log"

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

type rootOpts struct {
	configPath string
	verbose    bool
	debug      bool
	stdioLog   string
}

// env is what every command gets after the persistent pre-run: the loaded
// configuration and a logger.
type env struct {
	cfg     config.File
	log     logging.CharmLogger
	stdout  io.Writer
	stderr  io.Writer
	closers []io.Closer
}

func (e *env) setup(opts *rootOpts) error {
	stdioLog := opts.stdioLog
	if stdioLog == "" {
		stdioLog = os.Getenv(system.EnvStdioLog)
	}
	if err := system.RedirectStdIO(stdioLog); err != nil {
		fmt.Fprintln(e.stderr, "stdio log redirect error:", err)
	}

	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	e.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if opts.verbose || opts.debug {
		level = charmlog.DebugLevel
	}

	w := e.stderr
	for _, p := range []string{cfg.Log.File, debugPath(opts.debug)} {
		if p == "" {
			continue
		}
		f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		e.closers = append(e.closers, f)
		w = io.MultiWriter(w, f)
	}
	e.log = logging.New(w, level)

	for _, key := range cfg.Undecoded {
		e.log.L.Warn("unknown config key", "key", key)
	}
	if path != "" {
		e.log.Debugf("config", "loaded %s", path)
	}
	return nil
}

func debugPath(debug bool) string {
	if debug {
		return debugLogPath
	}
	return ""
}

func (e *env) close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
	e.closers = nil
}
