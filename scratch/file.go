// Package scratch manages the single throwaway file a benchmark run
// writes to and syncs.
package scratch

import (
	"fmt"
	"io"
	"os"
)

// FilePerm is the mode the scratch file is created with, before umask.
const FilePerm = 0o666

// File is an open scratch file.
type File struct {
	fd *os.File
}

// Create opens path for reading and writing, creating it if missing.
func Create(path string) (*File, error) {
	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, FilePerm)
	if err != nil {
		return nil, err
	}

	return &File{fd: fd}, nil
}

// WriteFull writes all of p at the current offset. Anything less than
// len(p) bytes is an error.
func (f *File) WriteFull(p []byte) error {
	return writeFull(f.fd, p)
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}

	if n != len(p) {
		return fmt.Errorf("%d of %d bytes: %w", n, len(p), io.ErrShortWrite)
	}

	return nil
}

// Rewind moves the file offset back to the start of the file.
func (f *File) Rewind() error {
	_, err := f.fd.Seek(0, io.SeekStart)

	return err
}

// Sync flushes written data to stable storage.
func (f *File) Sync() error {
	return syncFile(f.fd)
}

// Size returns the current file size in bytes.
func (f *File) Size() (int64, error) {
	stat, err := f.fd.Stat()
	if err != nil {
		return 0, err
	}

	return stat.Size(), nil
}

// Close closes the underlying descriptor.
func (f *File) Close() error {
	return f.fd.Close()
}
