//go:build !unix

package scratch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Remove unlinks path. A missing file is not an error. Directories are
// never removed.
func Remove(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fmt.Errorf("unlink %s: is a directory", path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
