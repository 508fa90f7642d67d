package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bignum/internal/compute"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: operation, timeout, environment details, and optimization thresholds.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation: %s%s%s, timeout %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Optimization thresholds: parallel=%s%d%s, Karatsuba=%s%d%s, square=%s%d%s (limb words).\n",
		ui.ColorCyan(), cfg.Threshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.SquareThreshold, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs
// comparison across every registered algorithm for the operation).
func PrintExecutionMode(operations []compute.Operation, out io.Writer) {
	var modeDesc string
	switch {
	case len(operations) == 0:
		modeDesc = "no algorithm selected"
	case len(operations) > 1:
		modeDesc = "parallel comparison of all registered algorithms"
	default:
		modeDesc = fmt.Sprintf("single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), operations[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
