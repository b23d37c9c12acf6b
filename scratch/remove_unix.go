//go:build unix

package scratch

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Remove unlinks path. A missing file is not an error. Directories are
// never removed.
func Remove(path string) error {
	err := unix.Unlink(path)
	if err == nil || errors.Is(err, unix.ENOENT) {
		return nil
	}

	return &os.PathError{Op: "unlink", Path: path, Err: err}
}
