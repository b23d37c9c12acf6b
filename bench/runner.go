package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/weiihann/writetest/scratch"
)

// Runner executes benchmark runs and announces them on a status writer.
type Runner struct {
	Status io.Writer
	Logger *slog.Logger
}

// NewRunner creates a Runner. The "running" line is written to status.
func NewRunner(status io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		Status: status,
		Logger: logger.With(slog.String("component", "bench")),
	}
}

// Run validates cfg, then writes cfg.Bytes zero bytes at offset zero and
// fsyncs the file cfg.Ops times. The scratch file is removed before and
// after the run, including when the run fails.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := r.Logger.With(slog.String("path", cfg.Path))

	if err := scratch.Remove(cfg.Path); err != nil {
		logger.WarnContext(ctx, "failed to remove stale file",
			slog.String("error", err.Error()),
		)
	}

	f, err := scratch.Create(cfg.Path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := f.Close(); err != nil {
			logger.WarnContext(ctx, "failed to close file",
				slog.String("error", err.Error()),
			)
		}

		if err := scratch.Remove(cfg.Path); err != nil {
			logger.WarnContext(ctx, "failed to remove file",
				slog.String("error", err.Error()),
			)
		}
	}()

	buf := make([]byte, cfg.Bytes)

	fmt.Fprintf(r.Status, "running: %d ops\n", cfg.Ops)

	logger.InfoContext(ctx, "starting run",
		slog.Int("bytes", cfg.Bytes),
		slog.Int("ops", cfg.Ops),
	)

	start := time.Now()

	if err := cycle(f, buf, cfg.Ops); err != nil {
		return nil, err
	}

	usec := time.Since(start).Microseconds()

	result := &Result{
		Path:         cfg.Path,
		Bytes:        cfg.Bytes,
		Ops:          cfg.Ops,
		ElapsedUsec:  usec,
		OpsPerSecond: opsPerSecond(cfg.Ops, usec),
	}

	size, err := f.Size()
	if err != nil {
		logger.WarnContext(ctx, "failed to stat file",
			slog.String("error", err.Error()),
		)
	}

	logger.InfoContext(ctx, "run finished",
		slog.Duration("elapsed", result.Elapsed()),
		slog.Int64("file_size", size),
	)

	return result, nil
}

// cycler is the part of a scratch file the timed loop drives.
type cycler interface {
	// WriteFull writes all of p at the current offset.
	WriteFull(p []byte) error

	// Rewind seeks back to offset zero.
	Rewind() error

	// Sync flushes written data to stable storage.
	Sync() error
}

func cycle(f cycler, buf []byte, ops int) error {
	for i := 0; i < ops; i++ {
		if err := f.WriteFull(buf); err != nil {
			return fmt.Errorf("write: %w", err)
		}

		if err := f.Rewind(); err != nil {
			return fmt.Errorf("lseek: %w", err)
		}

		if err := f.Sync(); err != nil {
			return fmt.Errorf("fsync: %w", err)
		}
	}

	return nil
}
