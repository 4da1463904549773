package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"examkit/internal/exam"
)

// Output file name labels for the two build phases.
const (
	printLabel   = "print"
	answersLabel = "answers"
)

// buildDeps bundles dependencies for building a single version.
type buildDeps struct {
	latexmk    Latexmk
	observer   RunObserver
	showOutput bool
}

// buildVersion builds one exam version sequentially: print then answers.
// Progress is reported through the observer; the source file is always
// restored to its original content.
func buildVersion(ctx context.Context, deps buildDeps, index int, path string) VersionResult {
	version := strings.ToUpper(exam.VersionLetter(path))
	result := VersionResult{File: path, Version: version}

	emit(deps.observer, VersionEvent{
		Index: index, File: path, Version: version,
		Type: VersionCompilingPrint, Substeps: 0, EmittedAt: time.Now(),
	})
	printPDF, stdout, stderr, err := buildPhase(ctx, deps.latexmk, path, version, ModeNoAnswers, printLabel)
	if err != nil {
		result.FailedPhase = printLabel
		result.Error = err.Error()
		emit(deps.observer, VersionEvent{
			Index: index, File: path, Version: version,
			Type: VersionFailed, Substeps: 1,
			Output: stdout, Stderr: stderr, Error: err.Error(), EmittedAt: time.Now(),
		})
		return result
	}
	result.PrintPDF = printPDF
	emit(deps.observer, VersionEvent{
		Index: index, File: path, Version: version,
		Type: VersionPrintDone, Substeps: 1, Created: printPDF,
		Output: progressOutput(deps.showOutput, stdout), Stderr: progressOutput(deps.showOutput, stderr),
		EmittedAt: time.Now(),
	})

	emit(deps.observer, VersionEvent{
		Index: index, File: path, Version: version,
		Type: VersionCompilingAnswers, Substeps: 1, EmittedAt: time.Now(),
	})
	answersPDF, stdout, stderr, err := buildPhase(ctx, deps.latexmk, path, version, ModeAnswers, answersLabel)
	if err != nil {
		result.FailedPhase = answersLabel
		result.Error = err.Error()
		emit(deps.observer, VersionEvent{
			Index: index, File: path, Version: version,
			Type: VersionFailed, Substeps: 2,
			Output: stdout, Stderr: stderr, Error: err.Error(), EmittedAt: time.Now(),
		})
		return result
	}
	result.AnswersPDF = answersPDF
	result.Succeeded = true
	emit(deps.observer, VersionEvent{
		Index: index, File: path, Version: version,
		Type: VersionDone, Substeps: 2, Created: answersPDF,
		Output: progressOutput(deps.showOutput, stdout), Stderr: progressOutput(deps.showOutput, stderr),
		EmittedAt: time.Now(),
	})
	return result
}

// buildPhase toggles the answers mode, compiles, and renames the PDF.
// The original source content is restored even on failure.
func buildPhase(ctx context.Context, mk Latexmk, path, version string, mode AnswersMode, label string) (target, stdout, stderr string, err error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return "", "", "", fmt.Errorf("read source: %w", err)
	}
	modified := SetAnswersMode(string(original), mode)
	if modified != string(original) {
		if err := os.WriteFile(path, []byte(modified), 0o644); err != nil {
			return "", "", "", fmt.Errorf("toggle answers mode: %w", err)
		}
	}
	defer restoreSource(path, original)

	stdout, stderr, exitCode, err := mk.Compile(ctx, path, version)
	if err != nil {
		return "", stdout, stderr, err
	}
	if exitCode != 0 {
		return "", stdout, stderr, fmt.Errorf("latexmk exited with status %d", exitCode)
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	pdf := stem + ".pdf"
	target = stem + "-" + label + ".pdf"
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return "", stdout, stderr, fmt.Errorf("replace %s: %w", filepath.Base(target), err)
	}
	if err := os.Rename(pdf, target); err != nil {
		return "", stdout, stderr, fmt.Errorf("rename pdf: %w", err)
	}
	return target, stdout, stderr, nil
}

// restoreSource puts the original source content back if it changed.
func restoreSource(path string, original []byte) {
	current, err := os.ReadFile(path)
	if err != nil || string(current) == string(original) {
		return
	}
	_ = os.WriteFile(path, original, 0o644)
}

// progressOutput passes build output through only when requested.
func progressOutput(show bool, output string) string {
	if !show {
		return ""
	}
	return output
}

// emit forwards an event to a possibly nil observer.
func emit(observer RunObserver, event VersionEvent) {
	if observer == nil {
		return
	}
	observer.OnVersionEvent(event)
}
