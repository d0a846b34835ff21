//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/starfield/internal/logging"
)

// WatchKeys watches Linux evdev devices under /dev/input/event* and runs the
// bound action whenever one of the keys is pressed, until ctx is done.
//
// It is best-effort: if no input devices are available, it logs and returns.
func WatchKeys(ctx context.Context, logger logging.Logger, bindings KeyBindings) {
	if len(bindings) == 0 {
		return
	}

	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found, key bindings disabled")
		return
	}

	for _, path := range paths {
		go watchDevice(ctx, logger, path, tvSize, bindings)
	}
}

func watchDevice(ctx context.Context, logger logging.Logger, path string, tvSize int, bindings KeyBindings) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, code := range pressedKeys(buf[:n], tvSize) {
			if action, ok := bindings[code]; ok {
				logger.Infof("input", "key %d pressed on %s", code, filepath.Base(path))
				action()
			}
		}
	}
}
