package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/progress"
)

// CalculationResult encapsulates the outcome of a single computation. It
// serves as the shared domain type between orchestration and presentation
// layers.
type CalculationResult struct {
	// Name is the identifier of the algorithm used (e.g., "fast-doubling").
	Name string
	// Result is the computed value. Zero if an error occurred.
	Result bignum.BigInt
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Label     string
	Verbose   bool
	Details   bool
	ShowValue bool
}

// ProgressReporter defines the interface for displaying calculation
// progress. This interface decouples the orchestration layer from the
// presentation layer: implementations handle the visual representation of
// progress (spinners, progress bars, a TUI) while the orchestration layer
// only coordinates the calculations.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed. wg.Done() must be called exactly once, on
	// return.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numOperations int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numOperations int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numOperations int, out io.Writer) {
	f(wg, progressChan, numOperations, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter. It
// drains the progress channel without displaying anything. Useful for quiet
// mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting calculation results.
// This decouples the orchestration layer from presentation concerns,
// allowing different output formats (CLI, TUI, JSON) without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the final calculation result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
