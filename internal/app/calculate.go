package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/compute"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/memguard"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// withOptionalTimeout wraps ctx with a deadline derived from cfg.Timeout,
// or returns ctx unchanged (with a no-op cancel) when Timeout is zero.
func withOptionalTimeout(ctx context.Context, cfg config.AppConfig) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.Timeout)
}

// buildRequest parses cfg's operand strings into a compute.Request using
// cfg.Base, returning a ConfigError wrapping the first operand that fails
// to parse.
func buildRequest(cfg config.AppConfig) (compute.Request, error) {
	req := compute.Request{N: cfg.N}

	parse := func(label, text string) (bignum.BigInt, error) {
		if text == "" {
			return bignum.BigInt{}, nil
		}
		v, ok := bignum.SetString(text, cfg.Base)
		if !ok {
			return bignum.BigInt{}, apperrors.NewConfigError("invalid value for -%s: %q", label, text)
		}
		return v, nil
	}

	var err error
	if req.A, err = parse("a", cfg.A); err != nil {
		return compute.Request{}, err
	}
	if req.B, err = parse("b", cfg.B); err != nil {
		return compute.Request{}, err
	}
	if req.M, err = parse("m", cfg.M); err != nil {
		return compute.Request{}, err
	}
	return req, nil
}

// requestLabel builds a short human-readable label for the operation being
// run, for display in result output.
func requestLabel(cfg config.AppConfig) string {
	switch cfg.Op {
	case "fib":
		return fmt.Sprintf("F(%d)", cfg.N)
	case "pow":
		return fmt.Sprintf("%s^%s", cfg.A, cfg.B)
	case "modpow":
		return fmt.Sprintf("%s^%s mod %s", cfg.A, cfg.B, cfg.M)
	case "gcd":
		return fmt.Sprintf("gcd(%s, %s)", cfg.A, cfg.B)
	default:
		return cfg.Op
	}
}

// workSizeFor estimates the magnitude of the computation, in 64-bit words
// (half the count of bignum's 32-bit limbs), for memguard's auto GC-control
// heuristic. Fibonacci index N is the best available proxy: F(N) has
// roughly N*log2(phi)/64 64-bit words.
func workSizeFor(cfg config.AppConfig) uint64 {
	if cfg.Op == "fib" {
		return cfg.N / 92 // log2(phi) * N / 64, rounded
	}
	return uint64(len(cfg.A)+len(cfg.B)+len(cfg.M)) * 4
}

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer, operations []compute.Operation) int {
	req, err := buildRequest(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitErrorConfig
	}

	ctx, cancelTimeout := withOptionalTimeout(ctx, a.Config)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(operations, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	gc := memguard.NewController(a.Config.MemoryLimit, workSizeFor(a.Config))
	gc.Begin()
	opts := compute.Options{
		Threshold:          a.Config.Threshold,
		KaratsubaThreshold: a.Config.KaratsubaThreshold,
		SquareThreshold:    a.Config.SquareThreshold,
	}
	results := orchestration.ExecuteOperations(ctx, operations, req, opts, progressReporter, progressOut)
	gc.End()

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}

	return a.analyzeResultsWithOutput(results, outputCfg, out)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	label := requestLabel(a.Config)
	bestResult := findBestResult(results)

	if outputCfg.Quiet && bestResult != nil {
		cli.DisplayQuietResult(out, bestResult.Result)

		if err := a.saveResultIfNeeded(bestResult, label, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		Label:     label,
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, label, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.CalculationResult, label string, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Result, label, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
