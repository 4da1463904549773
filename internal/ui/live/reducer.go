package live

import (
	"fmt"
	"path/filepath"

	"examkit/internal/builder"
)

// Reduce applies a version event to the UI state.
func Reduce(state State, event builder.VersionEvent) State {
	state = ensureRow(state, event)
	state = applyVersionEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event builder.VersionEvent) State {
	if event.Index < 0 {
		return state
	}
	if event.Index < len(state.Rows) {
		return state
	}
	rows := make([]VersionRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = VersionRow{Index: i, Status: builder.VersionQueued}
	}
	state.Rows = rows
	return state
}

// applyVersionEvent updates a row with the given event.
func applyVersionEvent(state State, event builder.VersionEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.File == "" {
		row.File = event.File
	}
	if row.Version == "" {
		row.Version = event.Version
	}
	row.Status = event.Type
	if event.Substeps > row.Substeps {
		row.Substeps = event.Substeps
	}
	switch event.Type {
	case builder.VersionCompilingPrint:
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	case builder.VersionPrintDone, builder.VersionDone:
		if event.Created != "" {
			row.Created = event.Created
		}
		if isTerminalStatus(event.Type) && !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
	case builder.VersionFailed:
		row.Error = event.Error
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
	}
	state.Rows[event.Index] = row
	return state
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status builder.VersionEventType) bool {
	switch status {
	case builder.VersionDone, builder.VersionFailed:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []VersionRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case builder.VersionQueued:
			counts.Queued++
		case builder.VersionCompilingPrint, builder.VersionPrintDone, builder.VersionCompilingAnswers:
			counts.Compiling++
		case builder.VersionDone:
			counts.Done++
		case builder.VersionFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event builder.VersionEvent) string {
	name := filepath.Base(event.File)
	switch event.Type {
	case builder.VersionPrintDone, builder.VersionDone:
		if event.Created != "" {
			return fmt.Sprintf("%s created %s", name, filepath.Base(event.Created))
		}
		return fmt.Sprintf("%s finished", name)
	case builder.VersionFailed:
		return fmt.Sprintf("%s failed: %s", name, event.Error)
	}
	return ""
}
