// Package report formats benchmark results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/weiihann/writetest/bench"
)

// Generate writes the elapsed time and throughput lines for r.
func Generate(w io.Writer, r bench.Result) error {
	if r.Ops <= 0 {
		return fmt.Errorf("no operations to report")
	}

	if _, err := fmt.Fprintf(w, "Elapsed time: %s seconds\n",
		formatUsec(r.ElapsedUsec)); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d ops: %7.2f ops per second\n",
		r.Ops, r.OpsPerSecond)

	return err
}

// GenerateJSON writes r as JSON to w.
func GenerateJSON(w io.Writer, r bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// formatUsec renders microseconds as seconds with six fractional digits.
func formatUsec(usec int64) string {
	sign := ""
	if usec < 0 {
		sign = "-"
		usec = -usec
	}

	return fmt.Sprintf("%s%d.%06d", sign, usec/1_000_000, usec%1_000_000)
}
