//go:build !linux

package system

import "github.com/rook-computer/starfield/internal/logging"

// EnterGraphics is a no-op off Linux; there is no KD console to switch.
func EnterGraphics(l logging.Logger) (restore func()) {
	l.Infof("tty", "console mode switching not supported on this platform")
	return func() {}
}
