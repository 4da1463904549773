package live

import "examkit/internal/builder"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a build run.
	EventRunStart EventKind = iota
	// EventVersion delivers a version status update.
	EventVersion
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	RunID   string
	Base    string
	Files   []string
	Version builder.VersionEvent
	Results builder.Results
}
