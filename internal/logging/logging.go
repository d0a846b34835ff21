// Package logging provides the component-tagged logger shared by the kiosk,
// the web server and the CLI, backed by charmbracelet/log.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the logging shape every subsystem accepts. component names the
// subsystem ("fb", "web", "app", ...).
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger adapts a charmbracelet logger to Logger.
type CharmLogger struct {
	L *log.Logger
}

// New returns a CharmLogger writing to w at level, with "HH:MM:SS.ms" timestamps.
func New(w io.Writer, level log.Level) CharmLogger {
	return CharmLogger{L: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})}
}

func (l CharmLogger) Infof(component string, format string, args ...interface{}) {
	l.L.With("component", component).Infof(format, args...)
}

func (l CharmLogger) Errorf(component string, format string, args ...interface{}) {
	l.L.With("component", component).Errorf(format, args...)
}

// Debugf is not part of Logger; callers holding a CharmLogger use it for
// --verbose output.
func (l CharmLogger) Debugf(component string, format string, args ...interface{}) {
	l.L.With("component", component).Debugf(format, args...)
}

func (l CharmLogger) SetLevel(level log.Level) { l.L.SetLevel(level) }

// ParseLevel maps a config level name to a charm level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(s)
}
