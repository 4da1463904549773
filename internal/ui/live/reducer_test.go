package live

import (
	"testing"
	"time"

	"examkit/internal/builder"
)

// TestReduceTracksSubsteps verifies the phase progression of one version.
func TestReduceTracksSubsteps(t *testing.T) {
	started := time.Now()
	state := State{}
	state = Reduce(state, builder.VersionEvent{
		Index: 0, File: "exam-a.tex", Version: "A",
		Type: builder.VersionCompilingPrint, Substeps: 0, EmittedAt: started,
	})
	state = Reduce(state, builder.VersionEvent{
		Index: 0, File: "exam-a.tex", Version: "A",
		Type: builder.VersionPrintDone, Substeps: 1, Created: "exam-a-print.pdf",
	})
	state = Reduce(state, builder.VersionEvent{
		Index: 0, File: "exam-a.tex", Version: "A",
		Type: builder.VersionDone, Substeps: 2, Created: "exam-a-answers.pdf",
		EmittedAt: started.Add(time.Second),
	})

	if len(state.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(state.Rows))
	}
	row := state.Rows[0]
	if row.Substeps != 2 || row.Status != builder.VersionDone {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.StartedAt != started || row.FinishedAt.IsZero() {
		t.Fatalf("timestamps not tracked: %+v", row)
	}
	done, total := state.totalSubsteps()
	if done != 2 || total != 2 {
		t.Fatalf("unexpected substep totals: %d/%d", done, total)
	}
	if state.Counts.Done != 1 {
		t.Fatalf("unexpected counts: %+v", state.Counts)
	}
}

// TestReduceGrowsRows verifies sparse indices create queued placeholders.
func TestReduceGrowsRows(t *testing.T) {
	state := Reduce(State{}, builder.VersionEvent{
		Index: 2, File: "exam-c.tex", Version: "C",
		Type: builder.VersionCompilingPrint,
	})
	if len(state.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(state.Rows))
	}
	if state.Rows[0].Status != builder.VersionQueued || state.Rows[1].Status != builder.VersionQueued {
		t.Fatalf("placeholders not queued: %+v", state.Rows)
	}
	if state.Counts.Queued != 2 || state.Counts.Compiling != 1 {
		t.Fatalf("unexpected counts: %+v", state.Counts)
	}
}

// TestReduceFailureSetsError verifies failure events surface the message.
func TestReduceFailureSetsError(t *testing.T) {
	state := Reduce(State{}, builder.VersionEvent{
		Index: 0, File: "exam-a.tex", Version: "A",
		Type: builder.VersionFailed, Substeps: 1, Error: "latexmk exited with status 1",
		EmittedAt: time.Now(),
	})
	row := state.Rows[0]
	if row.Error == "" || state.Counts.Failed != 1 {
		t.Fatalf("failure not recorded: %+v", state)
	}
	if state.LastEvent == "" {
		t.Fatalf("last event not set")
	}
}
