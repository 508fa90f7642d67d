package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ProgressState tracks fractional completion (0.0-1.0) for a fixed number
// of concurrently running operations and reports their average.
type ProgressState struct {
	mu             sync.Mutex
	numCalculators int
	progresses     []float64
}

// NewProgressState creates a ProgressState tracking n concurrent operations.
func NewProgressState(n int) *ProgressState {
	if n < 0 {
		n = 0
	}
	return &ProgressState{numCalculators: n, progresses: make([]float64, n)}
}

// Update records the latest fractional progress for operation idx, clamped
// to [0,1]. Out-of-range indices are ignored.
func (p *ProgressState) Update(idx int, progress float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx < 0 || idx >= len(p.progresses) {
		return
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	p.progresses[idx] = progress
}

// CalculateAverage returns the mean progress across all tracked operations.
func (p *ProgressState) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.progresses) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(len(p.progresses))
}

// ProgressWithETA layers an exponentially-smoothed completion-rate estimate
// on top of ProgressState, so callers can render a time-remaining estimate
// alongside the raw percentage.
type ProgressWithETA struct {
	*ProgressState
	numCalculators int
	startTime      time.Time
	lastUpdate     time.Time
	lastAvg        float64
	progressRate   float64 // fraction of total work completed per second
}

// NewProgressWithETA creates a ProgressWithETA tracking n concurrent
// operations.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(n),
		numCalculators: n,
		startTime:      now,
		lastUpdate:     now,
	}
}

// minRateInterval is the smallest elapsed window over which a rate sample
// is trusted; shorter intervals produce too much noise to smooth usefully.
const minRateInterval = 10 * time.Millisecond

// UpdateWithETA records progress for operation idx and returns the new
// overall average along with a refreshed ETA.
func (p *ProgressWithETA) UpdateWithETA(idx int, progress float64) (avg float64, eta time.Duration) {
	p.Update(idx, progress)
	avg = p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate); elapsed >= minRateInterval && avg > p.lastAvg {
		sample := (avg - p.lastAvg) / elapsed.Seconds()
		if p.progressRate == 0 {
			p.progressRate = sample
		} else {
			p.progressRate = 0.7*p.progressRate + 0.3*sample
		}
		p.lastUpdate = now
	}
	p.lastAvg = avg

	return avg, p.GetETA()
}

// maxETA caps displayed estimates so a stalled computation doesn't render
// an absurdly large duration.
const maxETA = 24 * time.Hour

// GetETA estimates the remaining time based on the current smoothed rate.
// Returns 0 if no rate has been established yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// FormatETA renders a duration as a short human-readable estimate.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta / time.Minute)
		s := int((eta % time.Minute) / time.Second)
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta / time.Hour)
		m := int((eta % time.Hour) / time.Minute)
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress (clamped to [0,1]) as a block-character bar
// of the given length.
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	if filled > length {
		filled = length
	}
	var b strings.Builder
	for i := 0; i < length; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA combines a progress bar, percentage, and ETA into
// a single line suitable for a spinner suffix.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	pct := progress * 100
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), pct, FormatETA(eta))
}

// FormatNumberString inserts thousands separators into a base-10 digit
// string, preserving an optional leading minus sign.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var parts []string
	for n > 3 {
		parts = append([]string{s[n-3:]}, parts...)
		s = s[:n-3]
		n = len(s)
	}
	parts = append([]string{s}, parts...)

	result := strings.Join(parts, ",")
	if neg {
		result = "-" + result
	}
	return result
}
