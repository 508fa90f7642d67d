package calibration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/compute"
	"github.com/agbru/bignum/internal/config"
)

// calibrationResult records the outcome of a single benchmark run at a
// candidate threshold value.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// calibrationN is the Fibonacci index used to benchmark threshold
// candidates. Large enough to make Karatsuba/squaring and goroutine
// fan-out worthwhile, small enough that a full sweep finishes quickly.
const calibrationN = 200000

// benchmarkParallelThreshold runs the fast-doubling Fibonacci algorithm with
// the parallel fan-out threshold set to threshold, discarding progress
// updates, and returns how long it took.
func benchmarkParallelThreshold(ctx context.Context, threshold int, opts config.CalculationOptions) calibrationResult {
	opts.Threshold = threshold
	start := time.Now()
	_, _, err := runCalibrationOperation(ctx, compute.FastDoublingFib{}, opts)
	return calibrationResult{Threshold: threshold, Duration: time.Since(start), Err: err}
}

// benchmarkKaratsubaThreshold runs the same workload with the
// schoolbook/Karatsuba multiply crossover set to threshold.
func benchmarkKaratsubaThreshold(ctx context.Context, threshold int, opts config.CalculationOptions) calibrationResult {
	opts.KaratsubaThreshold = threshold
	start := time.Now()
	_, _, err := runCalibrationOperation(ctx, compute.FastDoublingFib{}, opts)
	return calibrationResult{Threshold: threshold, Duration: time.Since(start), Err: err}
}

// benchmarkSquareThreshold runs the same workload with the squaring
// crossover set to threshold.
func benchmarkSquareThreshold(ctx context.Context, threshold int, opts config.CalculationOptions) calibrationResult {
	opts.SquareThreshold = threshold
	start := time.Now()
	_, _, err := runCalibrationOperation(ctx, compute.FastDoublingFib{}, opts)
	return calibrationResult{Threshold: threshold, Duration: time.Since(start), Err: err}
}

func runCalibrationOperation(ctx context.Context, op compute.Operation, opts config.CalculationOptions) (bignum.BigInt, time.Duration, error) {
	req := compute.Request{N: calibrationN}
	computeOpts := compute.Options{
		Threshold:          opts.Threshold,
		KaratsubaThreshold: opts.KaratsubaThreshold,
		SquareThreshold:    opts.SquareThreshold,
	}
	start := time.Now()
	res, err := op.Run(ctx, nil, 0, req, computeOpts)
	return res, time.Since(start), err
}

// bestResult returns the fastest successful result in results, or an error
// if none succeeded.
func bestResult(results []calibrationResult) (calibrationResult, error) {
	var best calibrationResult
	found := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if !found || res.Duration < best.Duration {
			best = res
			found = true
		}
	}
	if !found {
		return calibrationResult{}, fmt.Errorf("calibration: every candidate failed")
	}
	return best, nil
}

// RunCalibration performs a full calibration sweep across every threshold
// dimension (parallel fan-out, Karatsuba multiply, squaring), printing a
// results table for each dimension to out, and returns cfg with the
// winning thresholds applied along with a profile suitable for caching.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer) (config.AppConfig, *CalibrationProfile, error) {
	baseOpts := cfg.ToCalculationOptions()

	parallelCandidates := GenerateParallelThresholds()
	parallelResults := make([]calibrationResult, 0, len(parallelCandidates))
	for _, threshold := range parallelCandidates {
		parallelResults = append(parallelResults, benchmarkParallelThreshold(ctx, threshold, baseOpts))
	}
	bestParallel, err := bestResult(parallelResults)
	if err != nil {
		return cfg, nil, fmt.Errorf("calibration: parallel threshold sweep: %w", err)
	}
	printCalibrationResults(out, parallelResults, bestParallel.Threshold)
	baseOpts.Threshold = bestParallel.Threshold

	karatsubaCandidates := GenerateQuickKaratsubaThresholds()
	karatsubaResults := make([]calibrationResult, 0, len(karatsubaCandidates))
	for _, threshold := range karatsubaCandidates {
		karatsubaResults = append(karatsubaResults, benchmarkKaratsubaThreshold(ctx, threshold, baseOpts))
	}
	bestKaratsuba, err := bestResult(karatsubaResults)
	if err != nil {
		return cfg, nil, fmt.Errorf("calibration: Karatsuba threshold sweep: %w", err)
	}
	printCalibrationResults(out, karatsubaResults, bestKaratsuba.Threshold)
	baseOpts.KaratsubaThreshold = bestKaratsuba.Threshold

	squareCandidates := GenerateQuickSquareThresholds()
	squareResults := make([]calibrationResult, 0, len(squareCandidates))
	for _, threshold := range squareCandidates {
		squareResults = append(squareResults, benchmarkSquareThreshold(ctx, threshold, baseOpts))
	}
	bestSquare, err := bestResult(squareResults)
	if err != nil {
		return cfg, nil, fmt.Errorf("calibration: square threshold sweep: %w", err)
	}
	printCalibrationResults(out, squareResults, bestSquare.Threshold)

	cfg.Threshold = bestParallel.Threshold
	cfg.KaratsubaThreshold = bestKaratsuba.Threshold
	cfg.SquareThreshold = bestSquare.Threshold

	profile := NewProfile()
	profile.OptimalParallelThreshold = bestParallel.Threshold
	profile.OptimalKaratsubaThreshold = bestKaratsuba.Threshold
	profile.OptimalSquareThreshold = bestSquare.Threshold
	profile.CalibrationN = calibrationN
	profile.CalibrationTime = (bestParallel.Duration + bestKaratsuba.Duration + bestSquare.Duration).String()

	printCalibrationOutput(cfg, out)
	return cfg, profile, nil
}

// AutoCalibrate performs a faster, quiet calibration sweep (used at
// startup when -auto-calibrate is set without an explicit -calibrate),
// and returns cfg with adaptive thresholds replaced by measured ones. It
// never prints a results table; only the final summary line.
func AutoCalibrate(ctx context.Context, cfg config.AppConfig, out io.Writer) config.AppConfig {
	baseOpts := cfg.ToCalculationOptions()

	bestParallel, err := bestResult(benchmarkAll(ctx, GenerateQuickParallelThresholds(), baseOpts, benchmarkParallelThreshold))
	if err == nil {
		cfg.Threshold = bestParallel.Threshold
		baseOpts.Threshold = bestParallel.Threshold
	}

	bestKaratsuba, err := bestResult(benchmarkAll(ctx, GenerateQuickKaratsubaThresholds(), baseOpts, benchmarkKaratsubaThreshold))
	if err == nil {
		cfg.KaratsubaThreshold = bestKaratsuba.Threshold
		baseOpts.KaratsubaThreshold = bestKaratsuba.Threshold
	}

	bestSquare, err := bestResult(benchmarkAll(ctx, GenerateQuickSquareThresholds(), baseOpts, benchmarkSquareThreshold))
	if err == nil {
		cfg.SquareThreshold = bestSquare.Threshold
	}

	printCalibrationOutput(cfg, out)
	return cfg
}

func benchmarkAll(ctx context.Context, candidates []int, opts config.CalculationOptions, bench func(context.Context, int, config.CalculationOptions) calibrationResult) []calibrationResult {
	results := make([]calibrationResult, 0, len(candidates))
	for _, threshold := range candidates {
		results = append(results, bench(ctx, threshold, opts))
	}
	return results
}

// LoadCachedCalibration loads a calibration profile from path (or the
// default path if empty), and, if it exists and is valid for the current
// hardware, applies its thresholds to cfg. The returned bool reports
// whether a usable cached profile was found and applied.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	profile, existed := LoadOrCreateProfile(path)
	if !existed || !profile.IsValid() {
		return cfg, false
	}
	if profile.IsStale(30 * 24 * time.Hour) {
		return cfg, false
	}
	cfg.Threshold = profile.OptimalParallelThreshold
	cfg.KaratsubaThreshold = profile.OptimalKaratsubaThreshold
	cfg.SquareThreshold = profile.OptimalSquareThreshold
	return cfg, true
}
