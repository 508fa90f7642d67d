package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/bignum/internal/format"
)

// chartHistoryCapacity bounds how many samples the progress and system
// sparklines retain.
const chartHistoryCapacity = 256

// ChartModel renders rolling sparklines of computation progress and
// system load underneath the metrics panel.
type ChartModel struct {
	progress *RingBuffer
	cpu      *RingBuffer
	mem      *RingBuffer
	eta      time.Duration
	done     bool
	elapsed  time.Duration
	width    int
	height   int
}

// NewChartModel creates an empty chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		progress: NewRingBuffer(chartHistoryCapacity),
		cpu:      NewRingBuffer(chartHistoryCapacity),
		mem:      NewRingBuffer(chartHistoryCapacity),
	}
}

// SetSize updates dimensions.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
}

// AddDataPoint records a new average-progress sample and the current ETA.
func (c *ChartModel) AddDataPoint(_ float64, averageProgress float64, eta time.Duration) {
	c.progress.Push(averageProgress * 100)
	c.eta = eta
}

// UpdateSysStats records a new CPU/memory utilization sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpu.Push(cpuPercent)
	c.mem.Push(memPercent)
}

// SetDone freezes the chart once the computation finishes.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
}

// Reset clears all recorded samples.
func (c *ChartModel) Reset() {
	c.progress.Reset()
	c.cpu.Reset()
	c.mem.Reset()
	c.done = false
	c.eta = 0
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder

	b.WriteString(metricLabelStyle.Render("Progress: "))
	b.WriteString(chartBarStyle.Render(RenderSparkline(c.progress.Slice())))
	if !c.done && c.eta > 0 {
		b.WriteString("  ETA " + metricValueStyle.Render(format.FormatExecutionDuration(c.eta)))
	}
	if c.done {
		b.WriteString("  " + statusDoneStyle.Render("done in "+format.FormatExecutionDuration(c.elapsed)))
	}

	b.WriteString("\n")
	b.WriteString(metricLabelStyle.Render("CPU:      "))
	b.WriteString(cpuSparklineStyle.Render(RenderSparkline(c.cpu.Slice())))
	b.WriteString(fmt.Sprintf(" %5.1f%%", c.cpu.Last()))

	b.WriteString("\n")
	b.WriteString(metricLabelStyle.Render("Mem:      "))
	b.WriteString(memSparklineStyle.Render(RenderSparkline(c.mem.Slice())))
	b.WriteString(fmt.Sprintf(" %5.1f%%", c.mem.Last()))

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(b.String())
}
