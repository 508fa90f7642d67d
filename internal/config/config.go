// Package config parses and resolves bignumctl's runtime configuration from
// command-line flags, environment variables, a cached calibration profile,
// and adaptive hardware defaults, in that priority order.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// defaultProfileFileName mirrors calibration.DefaultProfileFileName; it is
// duplicated here (rather than imported) to avoid an import cycle, since
// package calibration imports package config.
const defaultProfileFileName = "bignumctl_calibration.json"

// EnvPrefix is prepended to every environment variable bignumctl reads.
const EnvPrefix = "BIGNUMCTL_"

// AppConfig holds the fully resolved configuration for a single bignumctl
// invocation.
type AppConfig struct {
	// Op selects the operation: "pow", "modpow", "gcd", or "fib".
	Op string
	// A, B, M are the operation's operands as literal text in Base.
	A, B, M string
	// N is the index used by the fib operation.
	N uint64
	// Base is the numeric base (2-36, or 0 to auto-detect a 0x/0o/0b prefix)
	// used to parse A, B, and M.
	Base int
	// Algo selects among multiple implementations of the same operation
	// (e.g. "fast-doubling" vs "iterative" for fib), used by -compare runs.
	Algo string

	Timeout time.Duration

	Threshold          int // goroutine-parallel fan-out threshold, in limb words
	KaratsubaThreshold int // schoolbook/Karatsuba multiply crossover, in limb words
	SquareThreshold    int // schoolbook/Karatsuba squaring crossover, in limb words

	Verbose bool
	Details bool
	Quiet   bool
	JSON    bool

	Compare bool // race every registered algorithm for Op and cross-check results
	TUI     bool // render a live bubbletea progress dashboard instead of plain text

	Serve bool   // run an HTTP server exposing /metrics instead of a one-shot computation
	Addr  string // listen address when Serve is set

	Calibrate          bool
	AutoCalibrate      bool
	CalibrationProfile string

	// ShowValue prints the computed value. On its own it shortens values
	// longer than 100 digits to their leading and trailing digits; Details
	// or Verbose print the value in full.
	ShowValue bool
	// MemoryLimit selects the GC control mode ("auto", "aggressive",
	// "disabled") used for large computations; see internal/memguard.
	MemoryLimit string

	OutputFile string
}

// ToCalculationOptions extracts the subset of AppConfig that algorithm
// implementations need, decoupling them from flag-parsing concerns.
func (c AppConfig) ToCalculationOptions() CalculationOptions {
	return CalculationOptions{
		Threshold:          c.Threshold,
		KaratsubaThreshold: c.KaratsubaThreshold,
		SquareThreshold:    c.SquareThreshold,
	}
}

// CalculationOptions is the tuning knobs passed down into a running
// computation, independent of how they were resolved.
type CalculationOptions struct {
	Threshold          int
	KaratsubaThreshold int
	SquareThreshold    int
}

// ParseConfig parses cmdArgs with a flag.FlagSet named after programName,
// applies environment variable overrides for anything left at its zero
// value, then layers in adaptive hardware-based defaults.
func ParseConfig(programName string, cmdArgs []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}

	fs.StringVar(&cfg.Op, "op", "fib", "operation to perform: pow, modpow, gcd, fib")
	fs.StringVar(&cfg.A, "a", "", "first operand (base/value)")
	fs.StringVar(&cfg.B, "b", "", "second operand (exponent/value)")
	fs.StringVar(&cfg.M, "m", "", "modulus operand, for modpow")
	fs.Uint64Var(&cfg.N, "n", 0, "fibonacci index, for op=fib")
	fs.IntVar(&cfg.Base, "base", 10, "numeric base for parsing operands (0 to auto-detect)")
	fs.StringVar(&cfg.Algo, "algo", "", fmt.Sprintf("algorithm variant to use (available: %v)", availableAlgos))
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "overall computation timeout (0 = no timeout)")
	fs.IntVar(&cfg.Threshold, "threshold", 0, "parallel fan-out threshold in limb words (0 = adaptive)")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", 0, "schoolbook/Karatsuba crossover in limb words (0 = adaptive)")
	fs.IntVar(&cfg.SquareThreshold, "square-threshold", 0, "schoolbook/Karatsuba squaring crossover in limb words (0 = adaptive)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Details, "d", false, "show detailed timing and bit-length information")
	fs.BoolVar(&cfg.Details, "details", false, "show detailed timing and bit-length information")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress all but the final result")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress all but the final result")
	fs.BoolVar(&cfg.JSON, "json", false, "emit the result as a JSON object")
	fs.BoolVar(&cfg.Compare, "compare", false, "race every registered algorithm and cross-check results")
	fs.BoolVar(&cfg.ShowValue, "c", false, "print the computed value (shortened past 100 digits unless -d or -v)")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "print the computed value (shortened past 100 digits unless -d or -v)")
	fs.StringVar(&cfg.MemoryLimit, "memory-limit", "auto", "GC control mode for large computations: auto, aggressive, disabled")
	fs.BoolVar(&cfg.TUI, "tui", false, "render a live progress dashboard")
	fs.BoolVar(&cfg.Serve, "serve", false, "run an HTTP server exposing /metrics")
	fs.StringVar(&cfg.Addr, "addr", ":9090", "listen address for -serve")
	fs.BoolVar(&cfg.Calibrate, "calibrate", false, "run full threshold calibration and save a profile")
	fs.BoolVar(&cfg.AutoCalibrate, "auto-calibrate", false, "run quick startup calibration if no cached profile exists")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", "", "path to the calibration profile file (default: "+defaultProfileFileName+" in the user cache dir)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to this file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result to this file instead of stdout")

	if err := fs.Parse(cmdArgs); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveThresholds(cfg)

	return cfg, nil
}
