//go:build unix

package system

import (
	"os"

	"golang.org/x/sys/unix"
)

// EnvStdioLog names a file to receive stdout and stderr.
const EnvStdioLog = "STARFIELD_STDIO_LOG"

// RedirectStdIO duplicates a log file onto stdout and stderr so panics and all
// prints (including from other goroutines) end up in the file. The console is
// in graphics mode while the kiosk runs, so they would be invisible otherwise.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
