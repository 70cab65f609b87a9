// Package bench times Fibonacci strategies and reports the results.
package bench

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LangOneOrg/langone-releases/fib"
)

// Config selects the terms computed by Run. It is fixed at compile time so
// printed results are reproducible between runs.
type Config struct {
	// RecursiveN is the term computed by fib.Recursive.
	RecursiveN int
	// IterativeN is the term computed by fib.Iterative. Values past
	// fib.MaxExactInt64 wrap.
	IterativeN int
}

// DefaultConfig returns the benchmark's standard inputs.
func DefaultConfig() Config {
	return Config{
		RecursiveN: 35,
		IterativeN: 1000,
	}
}

// Result is a single timed computation.
type Result struct {
	Label   string
	N       int
	Value   int64
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("%s F(%d) = %d in %v", r.Label, r.N, r.Value, r.Elapsed)
}

// Measure times fn(n). Nothing runs between the clock reads but the call.
func Measure(label string, n int, fn func(int) int64) Result {
	var start = time.Now()
	var value = fn(n)
	var elapsed = time.Since(start)

	log.WithFields(log.Fields{
		"label":   label,
		"n":       n,
		"value":   value,
		"elapsed": elapsed,
	}).Debug("measured")

	return Result{Label: label, N: n, Value: value, Elapsed: elapsed}
}

// Run computes the recursive and then the iterative term of |cfg|.
func Run(cfg Config) []Result {
	var rec = Measure("Recursive", cfg.RecursiveN, fib.Recursive)
	var iter = Measure("Iterative", cfg.IterativeN, fib.Iterative)

	if fib.Overflows(cfg.IterativeN) {
		log.WithField("n", cfg.IterativeN).Debug("iterative term exceeds int64; value has wrapped")
	}
	return []Result{rec, iter}
}

// Report writes one line per result to |w|.
func Report(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
