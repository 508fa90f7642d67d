package tui

import (
	"time"

	"github.com/agbru/bignum/internal/orchestration"
)

// ProgressMsg carries one aggregated progress sample from the running
// computation to the TUI event loop.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the full comparison table of every algorithm
// that ran, one entry per algorithm (a single entry without -compare).
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// FinalResultMsg carries the winning result once a computation finishes.
type FinalResultMsg struct {
	Result    orchestration.CalculationResult
	Label     string
	Verbose   bool
	Details   bool
	ShowValue bool
}

// ErrorMsg carries a calculation failure.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives the periodic UI refresh (elapsed time, sampled stats).
type TickMsg time.Time

// MemStatsMsg carries a runtime.MemStats sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU/memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// CalculationCompleteMsg signals that ExecuteOperations and
// AnalyzeComparisonResults have both finished for the given generation.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the run's context was cancelled
// (SIGINT/SIGTERM or timeout) before completion.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
