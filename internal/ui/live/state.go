package live

import (
	"time"

	"examkit/internal/builder"
)

// substepsPerVersion counts the build phases of one version (print, answers).
const substepsPerVersion = 2

// VersionRow holds UI state for a single exam version.
type VersionRow struct {
	Index      int
	File       string
	Version    string
	Status     builder.VersionEventType
	Substeps   int
	Created    string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates row counts by status bucket.
type StatusCounts struct {
	Queued    int
	Compiling int
	Done      int
	Failed    int
}

// State captures the live UI state for one build run.
type State struct {
	RunID     string
	Base      string
	StartedAt time.Time
	LastEvent string
	Rows      []VersionRow
	Counts    StatusCounts
}

// totalSubsteps returns the number of completed and overall substeps.
func (s State) totalSubsteps() (done, total int) {
	for _, row := range s.Rows {
		done += row.Substeps
	}
	return done, len(s.Rows) * substepsPerVersion
}
