package orchestration

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/compute"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/progress"
)

// MockResultPresenter is a mock implementation of ResultPresenter and
// ErrorHandler for testing.
type MockResultPresenter struct{}

func (MockResultPresenter) PresentComparisonTable(results []CalculationResult, out io.Writer) {}
func (MockResultPresenter) PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer) {
}
func (MockResultPresenter) FormatDuration(d time.Duration) string { return d.String() }
func (MockResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.ExitErrorGeneric
}

// MockOperation is a mock implementation of compute.Operation used for
// testing orchestration logic without invoking real algorithms.
type MockOperation struct {
	NameValue string
	RunFunc   func(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req compute.Request, opts compute.Options) (bignum.BigInt, error)
}

func (m *MockOperation) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return "Mock"
}

func (m *MockOperation) Run(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req compute.Request, opts compute.Options) (bignum.BigInt, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, progressChan, index, req, opts)
	}
	return bignum.FromInt64(0), nil
}

func TestExecuteOperations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		operations  []compute.Operation
		expectedLen int
		expectError bool
	}{
		{
			name: "Single success",
			operations: []compute.Operation{
				&MockOperation{RunFunc: func(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req compute.Request, opts compute.Options) (bignum.BigInt, error) {
					return bignum.FromInt64(1), nil
				}},
			},
			expectedLen: 1,
			expectError: false,
		},
		{
			name: "Single failure",
			operations: []compute.Operation{
				&MockOperation{RunFunc: func(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, req compute.Request, opts compute.Options) (bignum.BigInt, error) {
					return bignum.BigInt{}, errors.New("mock error")
				}},
			},
			expectedLen: 1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := ExecuteOperations(context.Background(), tt.operations, compute.Request{}, compute.Options{}, NullProgressReporter{}, &discardWriter{})
			if len(results) != tt.expectedLen {
				t.Errorf("expected %d results, got %d", tt.expectedLen, len(results))
			}
			if tt.expectError {
				if results[0].Err == nil {
					t.Errorf("expected error, got nil")
				}
			} else if results[0].Err != nil {
				t.Errorf("unexpected error: %v", results[0].Err)
			}
		})
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		results        []CalculationResult
		expectedStatus int
	}{
		{
			name: "All success",
			results: []CalculationResult{
				{Name: "A", Result: bignum.FromInt64(5), Duration: time.Millisecond, Err: nil},
				{Name: "B", Result: bignum.FromInt64(5), Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch",
			results: []CalculationResult{
				{Name: "A", Result: bignum.FromInt64(5), Duration: time.Millisecond, Err: nil},
				{Name: "B", Result: bignum.FromInt64(6), Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failure",
			results: []CalculationResult{
				{Name: "A", Duration: time.Millisecond, Err: errors.New("fail")},
				{Name: "B", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "Mixed success/failure",
			results: []CalculationResult{
				{Name: "A", Result: bignum.FromInt64(5), Duration: time.Millisecond, Err: nil},
				{Name: "B", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, MockResultPresenter{}, MockResultPresenter{}, &discardWriter{})
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}

// discardWriter implements io.Writer and discards all data.
type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
