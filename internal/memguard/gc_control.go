// Package memguard controls the Go garbage collector around large
// arbitrary-precision computations, trading GC overhead for a bounded
// memory ceiling while a single big calculation runs.
package memguard

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Mode controls the garbage collector behavior during a calculation.
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeAggressive Mode = "aggressive"
	ModeDisabled   Mode = "disabled"
)

// AutoWorkThreshold is the minimum estimated work size, in 64-bit words,
// for auto mode to disable the GC.
const AutoWorkThreshold uint64 = 1_000_000

// Controller manages Go's garbage collector during intensive computations.
// It disables GC while a calculation runs and restores it afterward,
// reducing pause times and allocator overhead for large operands.
type Controller struct {
	mode              Mode
	originalGCPercent int
	active            bool
	logger            zerolog.Logger
	startStats        runtime.MemStats
	endStats          runtime.MemStats
}

// Stats holds GC statistics accumulated between Begin and End.
type Stats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewController creates a GC controller for the given mode, activating it
// for workSize (a 64-bit-word estimate of the operand magnitude) when mode
// is "auto" and workSize is large enough to make GC overhead matter.
func NewController(mode string, workSize uint64) *Controller {
	c := &Controller{mode: Mode(mode), logger: zerolog.Nop()}
	switch c.mode {
	case ModeAggressive:
		c.active = true
	case ModeAuto:
		c.active = workSize >= AutoWorkThreshold
	default:
		c.active = false
	}
	return c
}

// SetLogger configures the logger used for GC control events.
func (c *Controller) SetLogger(l zerolog.Logger) {
	c.logger = l
}

// Begin disables GC if the controller is active.
func (c *Controller) Begin() {
	if !c.active {
		return
	}
	runtime.ReadMemStats(&c.startStats)
	c.originalGCPercent = debug.SetGCPercent(-1)
	if c.startStats.Sys > 0 {
		limit := int64(float64(c.startStats.Sys) * 3)
		if limit > 0 {
			debug.SetMemoryLimit(limit)
		}
	}
	c.logger.Debug().
		Str("mode", string(c.mode)).
		Uint64("heap_alloc_bytes", c.startStats.HeapAlloc).
		Msg("gc disabled")
}

// End restores original GC settings and triggers a collection.
func (c *Controller) End() {
	if !c.active {
		return
	}
	runtime.ReadMemStats(&c.endStats)
	debug.SetGCPercent(c.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	c.logger.Debug().
		Str("mode", string(c.mode)).
		Uint64("heap_alloc_bytes", c.endStats.HeapAlloc).
		Uint64("total_alloc_bytes", c.endStats.TotalAlloc-c.startStats.TotalAlloc).
		Uint32("gc_cycles", c.endStats.NumGC-c.startStats.NumGC).
		Msg("gc re-enabled")
}

// Stats returns GC statistics delta between Begin and End.
func (c *Controller) Stats() Stats {
	return Stats{
		HeapAlloc:    c.endStats.HeapAlloc,
		TotalAlloc:   c.endStats.TotalAlloc - c.startStats.TotalAlloc,
		NumGC:        c.endStats.NumGC - c.startStats.NumGC,
		PauseTotalNs: c.endStats.PauseTotalNs - c.startStats.PauseTotalNs,
	}
}
