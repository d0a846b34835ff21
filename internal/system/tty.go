//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/starfield/internal/logging"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Prefer /dev/tty (active VT), fallback to /dev/tty0.
var vtPaths = []string{"/dev/tty", "/dev/tty0"}

// SetGraphicsMode switches the active console to graphics mode to suppress the
// hardware cursor and console text over the framebuffer.
func SetGraphicsMode() error { return setKDMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode restores the console to text mode so cursor and normal console return.
func RestoreTextMode() error { return setKDMode(kdText, "KD_TEXT") }

func setKDMode(mode int, name string) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%s failed: unknown error", name)
}

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}

// EnterGraphics puts the console in graphics mode with the cursor hidden and
// returns a func that undoes both. Failures are logged, not returned: a kiosk
// started over ssh has no VT to switch.
func EnterGraphics(l logging.Logger) (restore func()) {
	if err := SetGraphicsMode(); err != nil {
		l.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	} else {
		l.Infof("tty", "KD_GRAPHICS set")
	}
	if err := HideCursor(); err != nil {
		l.Errorf("tty", "hide cursor failed: %v", err)
	}
	return func() {
		if err := ShowCursor(); err != nil {
			l.Errorf("tty", "show cursor failed: %v", err)
		}
		if err := RestoreTextMode(); err != nil {
			l.Errorf("tty", "KD_TEXT failed: %v", err)
		} else {
			l.Infof("tty", "KD_TEXT set")
		}
	}
}
