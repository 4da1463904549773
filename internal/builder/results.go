package builder

import "time"

// VersionResult is the outcome of building one exam version.
type VersionResult struct {
	File        string
	Version     string
	PrintPDF    string
	AnswersPDF  string
	Succeeded   bool
	FailedPhase string
	Error       string
}

// Results aggregates one build run across all versions, in discovery order.
type Results struct {
	RunID     string
	Base      string
	StartedAt time.Time
	Duration  time.Duration
	Versions  []VersionResult
	Failed    bool
}
