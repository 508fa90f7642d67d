// Package app wires configuration, the compute registry, orchestration, and
// presentation (CLI, TUI, or HTTP server) together into bignumctl's
// top-level Run entry point.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/internal/calibration"
	"github.com/agbru/bignum/internal/compute"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/server"
	"github.com/agbru/bignum/internal/tui"
	"github.com/agbru/bignum/internal/ui"
	"github.com/rs/zerolog"
)

// Version is the build version reported by -version and the TUI header.
// Overridden at link time via -ldflags.
var Version = "dev"

// Application represents the bignumctl application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom structured logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "bignumctl")
	}

	programName := "bignumctl"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	availableAlgos, err := availableAlgosFor(cmdArgs)
	if err != nil {
		availableAlgos = nil
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	}

	app.Config = cfg
	return app, nil
}

// availableAlgosFor peeks at the -op flag (without consuming cmdArgs) so the
// -algo flag's usage string can list the algorithms valid for that
// operation.
func availableAlgosFor(cmdArgs []string) ([]string, error) {
	op := "fib"
	for i, a := range cmdArgs {
		if a == "-op" || a == "--op" {
			if i+1 < len(cmdArgs) {
				op = cmdArgs[i+1]
			}
		}
	}
	registry, err := compute.OperationsForOp(op)
	if err != nil {
		return nil, err
	}
	return registry.List(), nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(false)

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}

	if a.Config.AutoCalibrate {
		a.Config = calibration.AutoCalibrate(ctx, a.Config, out)
	}

	if a.Config.Serve {
		return a.runServer(ctx, out)
	}

	operations, err := a.resolveOperations()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.TUI {
		return a.runTUI(ctx, operations)
	}

	return a.runCalculate(ctx, out, operations)
}

// resolveOperations resolves the operation(s) to run for this invocation:
// every registered algorithm for Op when -compare is set, otherwise the
// single algorithm named by -algo (or the operation's default).
func (a *Application) resolveOperations() ([]compute.Operation, error) {
	registry, err := compute.OperationsForOp(a.Config.Op)
	if err != nil {
		return nil, err
	}

	if a.Config.Compare {
		return registry.All(), nil
	}

	algo := a.Config.Algo
	if algo == "" {
		names := registry.List()
		if len(names) == 0 {
			return nil, fmt.Errorf("no algorithm registered for operation %q", a.Config.Op)
		}
		algo = names[0]
	}

	op, err := registry.Get(algo)
	if err != nil {
		return nil, err
	}
	return []compute.Operation{op}, nil
}

// runCalibration runs the full calibration mode, persisting the winning
// thresholds to the calibration profile cache on success.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	cfg, profile, err := calibration.RunCalibration(ctx, a.Config, out)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitErrorGeneric
	}
	a.Config = cfg

	path := cfg.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		fmt.Fprintf(out, "Warning: failed to save calibration profile: %v\n", err)
	}
	return apperrors.ExitSuccess
}

// runServer starts the HTTP /metrics server and blocks until ctx is
// canceled.
func (a *Application) runServer(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	fmt.Fprintf(out, "Listening on %s%s%s (Prometheus metrics at /metrics)\n", ui.ColorCyan(), a.Config.Addr, ui.ColorReset())

	srv := server.NewServer(a.Config.Addr, a.Logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context, operations []compute.Operation) int {
	ctx, cancelTimeout := withOptionalTimeout(ctx, a.Config)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	req, err := buildRequest(a.Config)
	if err != nil {
		return apperrors.ExitErrorConfig
	}

	return tui.Run(ctx, operations, req, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
