package live

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"examkit/internal/builder"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatFile returns the display name for a version row.
func formatFile(row VersionRow) string {
	if row.File == "" {
		return "#" + fmtInt(row.Index+1)
	}
	return filepath.Base(row.File)
}

// formatSubsteps renders completed substeps as n/2.
func formatSubsteps(substeps int) string {
	return fmtInt(substeps) + "/" + fmtInt(substepsPerVersion)
}

// formatStatus renders a status string for a row.
func formatStatus(row VersionRow, noColor bool) string {
	label := statusLabel(row.Status)
	if row.Status == builder.VersionFailed && row.Error != "" {
		label = label + ": " + row.Error
	}
	return stylizeStatus(label, row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status builder.VersionEventType) string {
	switch status {
	case builder.VersionQueued:
		return "queued"
	case builder.VersionCompilingPrint:
		return "compiling print"
	case builder.VersionPrintDone:
		return "print created"
	case builder.VersionCompilingAnswers:
		return "compiling answers"
	case builder.VersionDone:
		return "done"
	case builder.VersionFailed:
		return "failed"
	default:
		return string(status)
	}
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row VersionRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status builder.VersionEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status builder.VersionEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case builder.VersionDone:
		color = lipgloss.Color("42")
	case builder.VersionFailed:
		color = lipgloss.Color("196")
	case builder.VersionCompilingPrint, builder.VersionCompilingAnswers:
		color = lipgloss.Color("33")
	case builder.VersionPrintDone:
		color = lipgloss.Color("39")
	case builder.VersionQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
