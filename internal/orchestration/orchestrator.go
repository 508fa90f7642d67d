package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/compute"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// computation goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracer emits a span per operation run. With no SDK/exporter configured it
// resolves to otel's no-op tracer, so this costs nothing when tracing isn't
// wired up by the caller's process, and lights up for free the moment one is.
var tracer = otel.Tracer("github.com/agbru/bignum/internal/orchestration")

// ExecuteOperations orchestrates the concurrent execution of one or more
// operations against the same request.
//
// It manages the lifecycle of computation goroutines, collects their
// results, and coordinates the display of progress updates. This function
// is the core of the application's concurrency model.
func ExecuteOperations(ctx context.Context, operations []compute.Operation, req compute.Request, opts compute.Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(operations))
	progressChan := make(chan progress.ProgressUpdate, len(operations)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(operations), out)

	for i, op := range operations {
		idx, operation := i, op
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "compute.Operation.Run", trace.WithAttributes(
				attribute.String("bignum.algorithm", operation.Name()),
				attribute.Int("bignum.operation_index", idx),
			))
			defer span.End()

			startTime := time.Now()
			res, err := operation.Run(spanCtx, progressChan, idx, req, opts)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
			}
			results[idx] = CalculationResult{
				Name: operation.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms
// and generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful computations, and displays a comparative table. It handles
// the logic for determining global success or failure based on the
// individual outcomes.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValidResult.Result) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
