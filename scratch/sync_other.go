//go:build !unix

package scratch

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
