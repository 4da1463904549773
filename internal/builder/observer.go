package builder

import "time"

// VersionEventType identifies a version build status update for observers.
type VersionEventType string

const (
	// VersionQueued marks a version known but not yet building.
	VersionQueued VersionEventType = "queued"
	// VersionCompilingPrint marks the print (noanswers) phase running.
	VersionCompilingPrint VersionEventType = "compiling_print"
	// VersionPrintDone marks the print PDF created.
	VersionPrintDone VersionEventType = "print_done"
	// VersionCompilingAnswers marks the answers phase running.
	VersionCompilingAnswers VersionEventType = "compiling_answers"
	// VersionDone marks both PDFs created.
	VersionDone VersionEventType = "done"
	// VersionFailed marks a failed build phase.
	VersionFailed VersionEventType = "failed"
)

// VersionEvent carries a single status update for one exam version.
type VersionEvent struct {
	Index     int
	File      string
	Version   string
	Type      VersionEventType
	Substeps  int
	Created   string
	Output    string
	Stderr    string
	Error     string
	EmittedAt time.Time
}

// RunObserver receives build lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a build run.
	OnRunStart(runID string, base string, files []string)
	// OnVersionEvent delivers a version status update.
	OnVersionEvent(event VersionEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}
