// Package bench runs the synchronous write+fsync benchmark against a
// single scratch file.
package bench

import "time"

// Result holds the outcome of a completed run.
type Result struct {
	Path         string  `json:"path"`
	Bytes        int     `json:"bytes"`
	Ops          int     `json:"ops"`
	ElapsedUsec  int64   `json:"elapsed_us"`
	OpsPerSecond float64 `json:"ops_per_second"`
}

// Elapsed returns the measured loop time.
func (r Result) Elapsed() time.Duration {
	return time.Duration(r.ElapsedUsec) * time.Microsecond
}

// opsPerSecond computes the mean rate. A loop that finished within
// the clock resolution is counted as one microsecond.
func opsPerSecond(ops int, usec int64) float64 {
	if usec < 1 {
		usec = 1
	}

	return float64(ops) * 1e6 / float64(usec)
}
