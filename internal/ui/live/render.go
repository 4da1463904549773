package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Build " + state.RunID
	if state.Base != "" {
		line += " | Base: " + state.Base
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts and substep progress line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	done, total := state.totalSubsteps()
	line := "Queued: " + fmtInt(counts.Queued) +
		" Compiling: " + fmtInt(counts.Compiling) +
		" Done: " + fmtInt(counts.Done) +
		" Failed: " + fmtInt(counts.Failed) +
		" | Steps: " + fmtInt(done) + "/" + fmtInt(total)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
