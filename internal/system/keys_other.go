//go:build !linux

package system

import (
	"context"

	"github.com/rook-computer/starfield/internal/logging"
)

func WatchKeys(ctx context.Context, logger logging.Logger, bindings KeyBindings) {
	logger.Infof("input", "key bindings not supported on this platform")
}
