package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"examkit/internal/exam"
)

// ErrNoVersionFiles indicates no versioned sources matched the base name.
var ErrNoVersionFiles = errors.New("no version files found")

// RunParams configures one build run.
type RunParams struct {
	// Base is the source name without the version suffix, e.g. "exam"
	// for exam-a.tex.
	Base string
	// ShowBuildOutput forwards latexmk output on success, not only on
	// failure.
	ShowBuildOutput bool
	// KeepAux skips auxiliary file cleanup after the run.
	KeepAux bool
	// AuxDir is removed during cleanup when set.
	AuxDir string
	// MaxWorkers bounds parallel version builds; defaults to one worker
	// per version.
	MaxWorkers int
	// Latexmk performs the compilation.
	Latexmk Latexmk
	// Observer receives lifecycle events; may be nil.
	Observer RunObserver
}

// Run builds every version of an exam in parallel. Each version builds its
// print and answers variants sequentially; results keep discovery order.
func Run(ctx context.Context, params RunParams) (Results, error) {
	files, err := exam.FindVersionFiles(params.Base)
	if err != nil {
		return Results{}, err
	}
	if len(files) == 0 {
		return Results{}, fmt.Errorf("%w for base %q", ErrNoVersionFiles, params.Base)
	}

	runID, err := NewRunID()
	if err != nil {
		return Results{}, err
	}
	startedAt := time.Now()
	if params.Observer != nil {
		params.Observer.OnRunStart(runID, params.Base, files)
	}

	workers := params.MaxWorkers
	if workers <= 0 || workers > len(files) {
		workers = len(files)
	}
	deps := buildDeps{
		latexmk:    params.Latexmk,
		observer:   params.Observer,
		showOutput: params.ShowBuildOutput,
	}

	versions := make([]VersionResult, len(files))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, file := range files {
		emit(params.Observer, VersionEvent{
			Index: i, File: file, Version: "",
			Type: VersionQueued, EmittedAt: time.Now(),
		})
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			versions[index] = buildVersion(ctx, deps, index, path)
		}(i, file)
	}
	wg.Wait()

	if !params.KeepAux {
		cleanupAux(ctx, params.Latexmk, params.AuxDir)
	}

	results := Results{
		RunID:     runID,
		Base:      params.Base,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Versions:  versions,
	}
	for _, version := range versions {
		if !version.Succeeded {
			results.Failed = true
			break
		}
	}
	if params.Observer != nil {
		params.Observer.OnRunEnd(results)
	}
	return results, nil
}

// cleanupAux removes latexmk auxiliary files; failures are ignored.
func cleanupAux(ctx context.Context, mk Latexmk, auxDir string) {
	_ = mk.Clean(ctx)
	if auxDir != "" {
		_ = os.RemoveAll(auxDir)
	}
}
