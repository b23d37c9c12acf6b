package bench

import (
	"errors"
	"fmt"
)

// MaxBytes is the largest write size a run accepts.
const MaxBytes = 100 * 1024

// Defaults used when a flag is not given.
const (
	DefaultBytes = 256
	DefaultPath  = "testfile"
	DefaultOps   = 1000
)

var (
	ErrBytesTooLarge = fmt.Errorf("max -b option %d", MaxBytes)
	ErrIllegalBytes  = errors.New("illegal -b option value")
	ErrIllegalOps    = errors.New("illegal -o option value")
	ErrEmptyPath     = errors.New("illegal -f option value")
)

// Config describes a single benchmark run.
type Config struct {
	Bytes int
	Path  string
	Ops   int
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Bytes: DefaultBytes,
		Path:  DefaultPath,
		Ops:   DefaultOps,
	}
}

// Validate checks cfg before any file is touched.
func (c Config) Validate() error {
	switch {
	case c.Bytes > MaxBytes:
		return ErrBytesTooLarge
	case c.Bytes < 1:
		return ErrIllegalBytes
	case c.Ops <= 0:
		return ErrIllegalOps
	case c.Path == "":
		return ErrEmptyPath
	}

	return nil
}
