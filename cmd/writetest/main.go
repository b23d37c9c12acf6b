// Package main provides the CLI entry point for writetest, a benchmark of
// synchronous write+fsync throughput against a single file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/writetest/bench"
	"github.com/weiihann/writetest/report"
)

const usage = "usage: writetest [-b bytes] [-f file] [-o ops]"

// usageError marks errors that should be followed by the usage line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)

		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(stderr, usage)
		}

		return 1
	}

	return 0
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var (
		cfg        = bench.DefaultConfig()
		outputJSON bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "writetest",
		Short: "Measure synchronous write+fsync throughput",
		Long: `Writetest repeatedly writes a zero-filled buffer at offset zero of a
scratch file and fsyncs it, then reports the elapsed time and the number
of operations per second. The scratch file is removed before and after
the run.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				level.Set(slog.LevelInfo)
			}

			out := cmd.OutOrStdout()

			status := out
			if outputJSON {
				status = cmd.ErrOrStderr()
			}

			runner := bench.NewRunner(status, logger)

			result, err := runner.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if outputJSON {
				if err := report.GenerateJSON(out, *result); err != nil {
					return fmt.Errorf("generate JSON report: %w", err)
				}

				return nil
			}

			if err := report.Generate(out, *result); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Bytes, "bytes", "b", bench.DefaultBytes,
		fmt.Sprintf("Bytes written per operation (max %d)", bench.MaxBytes))
	flags.StringVarP(&cfg.Path, "file", "f", bench.DefaultPath,
		"Scratch file path")
	flags.IntVarP(&cfg.Ops, "ops", "o", bench.DefaultOps,
		"Number of write/fsync operations")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the result as JSON instead of text")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Log progress to stderr")

	return cmd
}
