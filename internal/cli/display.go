package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/progress"
	"github.com/agbru/bignum/internal/ui"
)

// truncateDigits shortens a numeric string longer than TruncationLimit
// digits to its leading and trailing DisplayEdges digits, joined by an
// ellipsis, so a multi-million-digit result doesn't flood the terminal.
func truncateDigits(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:DisplayEdges], s[len(s)-DisplayEdges:])
}

// DisplayResult prints a computed value to out, with an optional verbose
// header (bit length, digit count) and the value itself when details or
// showValue request it.
func DisplayResult(result bignum.BigInt, label string, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	text := result.String()

	if verbose || details {
		fmt.Fprintf(out, "\n%s--- Result ---%s\n", ui.ColorUnderline(), ui.ColorReset())
		fmt.Fprintf(out, "%s:        %s%s%s\n", label, ui.ColorMagenta(), text, ui.ColorReset())
		if verbose {
			fmt.Fprintf(out, "Bits:          %s%d%s\n", ui.ColorCyan(), result.GetBitLength(), ui.ColorReset())
			fmt.Fprintf(out, "Digits:        %s%d%s\n", ui.ColorCyan(), len(text), ui.ColorReset())
			fmt.Fprintf(out, "Duration:      %s%s%s\n", ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
		}
		return
	}

	if showValue {
		fmt.Fprintf(out, "%s = %s\n", label, truncateDigits(text))
		return
	}

	fmt.Fprintf(out, "%s computed in %s (%d digits). Pass -c to print it.\n", label, FormatExecutionDuration(duration), len(text))
}

// DisplayProgress renders a spinner and a progress bar tracking the
// average completion of one or more concurrently running operations,
// consuming progress updates from progressChan until it is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numOperations int, out io.Writer) {
	defer wg.Done()

	aggregator := orchestration.NewProgressAggregator(numOperations)
	if aggregator == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner()
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	render := func() {
		bar := progressBar(last.AverageProgress, ProgressBarWidth)
		suffix := fmt.Sprintf(" [%s] %5.1f%%", bar, last.AverageProgress*100)
		if last.ETA > 0 {
			suffix += fmt.Sprintf(" ETA %s", format.FormatExecutionDuration(last.ETA))
		}
		s.UpdateSuffix(suffix)
	}

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				render()
				return
			}
			last = aggregator.Update(update)
		case <-ticker.C:
			render()
		}
	}
}
