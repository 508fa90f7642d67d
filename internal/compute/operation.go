// Package compute defines the Operation abstraction that orchestration and
// the CLI race, compare, and report on: a named, progress-reporting
// wrapper around one of bignum's big-integer algorithms.
package compute

import (
	"context"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/progress"
)

// Request carries every operand an Operation might need. Which fields are
// meaningful depends on the operation: Fib only reads N, Pow reads A and B,
// ModPow reads A, B and M, GCD reads A and B.
type Request struct {
	A, B, M bignum.BigInt
	N       uint64
}

// Options carries the tuning knobs threaded down from config.AppConfig into
// a running operation, independent of how they were resolved. The
// operations in this package accept Options but do not read it; bignum's
// multiplication runs with its own package-level thresholds.
type Options struct {
	Threshold          int
	KaratsubaThreshold int
	SquareThreshold    int
}

// Operation is a named, progress-reporting computation over bignum.BigInt.
// Implementations race against each other under orchestration.
// ExecuteOperations, each writing to its own slot of a shared progress
// channel identified by index.
type Operation interface {
	// Name identifies the algorithm for display and -algo selection.
	Name() string
	// Run executes the operation. progressChan may be nil, in which case
	// progress reporting is skipped. Implementations must not block
	// indefinitely on a full progressChan; sends should be best-effort.
	Run(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req Request, opts Options) (bignum.BigInt, error)
}

// report sends a best-effort progress update, skipped entirely if ch is nil
// and dropped rather than blocking if ch's buffer is full.
func report(ch chan<- progress.ProgressUpdate, index int, value float64) {
	if ch == nil {
		return
	}
	select {
	case ch <- progress.ProgressUpdate{CalculatorIndex: index, Value: value}:
	default:
	}
}
