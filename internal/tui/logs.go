package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
)

// logHistoryCapacity bounds how many lines the log panel retains; older
// lines are dropped once exceeded.
const logHistoryCapacity = 500

// LogsModel renders a scrolling log of execution events: the resolved
// configuration, per-algorithm progress milestones, and the final result
// or error.
type LogsModel struct {
	lines   []string
	offset  int // lines scrolled up from the bottom
	width   int
	height  int
	lastPct map[int]int // coarse progress percent last logged, per calculator index
}

// NewLogsModel creates a log panel tracking the named algorithms.
func NewLogsModel(algoNames []string) LogsModel {
	lines := make([]string, 0, len(algoNames)+1)
	return LogsModel{lines: lines, lastPct: make(map[int]int)}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

func (l *LogsModel) append(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > logHistoryCapacity {
		l.lines = l.lines[len(l.lines)-logHistoryCapacity:]
	}
}

// AddExecutionConfig logs the resolved configuration at startup.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.append(logTimeStyle.Render(time.Now().Format("15:04:05")) + " " +
		logAlgoStyle.Render(fmt.Sprintf("op=%s algo=%s threshold=%d", cfg.Op, cfg.Algo, cfg.Threshold)))
}

// AddProgressEntry logs a coarse (10%-granularity) progress milestone,
// deduplicating repeated updates at the same percentage.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	pct := int(msg.Value * 100)
	bucket := pct / 10
	if l.lastPct[msg.CalculatorIndex] == bucket {
		return
	}
	l.lastPct[msg.CalculatorIndex] = bucket
	l.append(logTimeStyle.Render(time.Now().Format("15:04:05")) + " " +
		logProgressStyle.Render(fmt.Sprintf("[%d] %d%%", msg.CalculatorIndex, pct)))
}

// AddResults logs a comparison table summary.
func (l *LogsModel) AddResults(results []orchestration.CalculationResult) {
	for _, res := range results {
		status := logSuccessStyle.Render("ok")
		if res.Err != nil {
			status = logErrorStyle.Render("fail: " + res.Err.Error())
		}
		l.append(fmt.Sprintf("%s %s (%s)", logAlgoStyle.Render(res.Name), status, format.FormatExecutionDuration(res.Duration)))
	}
}

// AddFinalResult logs the winning result.
func (l *LogsModel) AddFinalResult(msg FinalResultMsg) {
	l.append(logSuccessStyle.Render(fmt.Sprintf("%s = %d digits, %s",
		msg.Label, len(msg.Result.Result.String()), format.FormatExecutionDuration(msg.Result.Duration))))
}

// AddError logs a terminal error.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.append(logErrorStyle.Render("error: " + msg.Err.Error()))
}

// Reset clears the log history.
func (l *LogsModel) Reset() {
	l.lines = l.lines[:0]
	l.offset = 0
	l.lastPct = make(map[int]int)
}

// Update handles scroll key presses.
func (l LogsModel) Update(msg tea.KeyMsg) LogsModel {
	switch msg.String() {
	case "up":
		if l.offset < len(l.lines)-1 {
			l.offset++
		}
	case "down":
		if l.offset > 0 {
			l.offset--
		}
	case "pgup":
		l.offset += l.height
		if l.offset > len(l.lines) {
			l.offset = len(l.lines)
		}
	case "pgdown":
		l.offset -= l.height
		if l.offset < 0 {
			l.offset = 0
		}
	}
	return l
}

// renderToHeight renders the log panel clamped to exactly targetHeight
// lines (including borders), matching the height of the sibling column.
func (l LogsModel) renderToHeight(targetHeight int) string {
	innerHeight := targetHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	end := len(l.lines) - l.offset
	if end < 0 {
		end = 0
	}
	if end > len(l.lines) {
		end = len(l.lines)
	}
	start := end - innerHeight
	if start < 0 {
		start = 0
	}
	visible := l.lines[start:end]

	body := strings.Join(visible, "\n")
	return panelStyle.
		Width(l.width - 2).
		Height(innerHeight).
		Render(body)
}
