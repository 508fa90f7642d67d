package tui

import "github.com/charmbracelet/lipgloss"

// FooterModel renders the bottom status/help bar.
type FooterModel struct {
	width  int
	done   bool
	errored bool
	paused bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetDone marks the run as finished.
func (f *FooterModel) SetDone(done bool) { f.done = done }

// SetError marks the run as having failed.
func (f *FooterModel) SetError(errored bool) { f.errored = errored }

// SetPaused toggles the paused indicator.
func (f *FooterModel) SetPaused(paused bool) { f.paused = paused }

// View renders the footer.
func (f FooterModel) View() string {
	status := statusRunningStyle.Render("running")
	switch {
	case f.errored:
		status = statusErrorStyle.Render("error")
	case f.done:
		status = statusDoneStyle.Render("done")
	case f.paused:
		status = statusPausedStyle.Render("paused")
	}

	help := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit  ") +
		footerKeyStyle.Render("space") + footerDescStyle.Render(" pause  ") +
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart")

	left := "[" + status + "] " + help
	gap := f.width - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	return left + spaces(gap)
}
