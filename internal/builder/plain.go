package builder

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// PlainObserver renders build progress as plain lines, suitable for
// non-TTY output. Safe for concurrent version workers.
type PlainObserver struct {
	w io.Writer
}

// NewPlainObserver wraps a writer for plain progress output.
func NewPlainObserver(w io.Writer) *PlainObserver {
	return &PlainObserver{w: &lockedWriter{w: w}}
}

// OnRunStart prints the discovered version files.
func (p *PlainObserver) OnRunStart(runID string, base string, files []string) {
	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, filepath.Base(file))
	}
	fmt.Fprintf(p.w, "Run %s: found %d exam file(s): %s\n\n", runID, len(files), strings.Join(names, ", "))
}

// OnVersionEvent prints one progress line per build phase.
func (p *PlainObserver) OnVersionEvent(event VersionEvent) {
	name := filepath.Base(event.File)
	switch event.Type {
	case VersionCompilingPrint:
		fmt.Fprintf(p.w, "Processing %s (version %s): compiling print version...\n", name, event.Version)
	case VersionPrintDone:
		p.printOutput(event)
		fmt.Fprintf(p.w, "%s: created %s\n", name, filepath.Base(event.Created))
	case VersionCompilingAnswers:
		fmt.Fprintf(p.w, "%s: compiling answers version...\n", name)
	case VersionDone:
		p.printOutput(event)
		fmt.Fprintf(p.w, "%s: created %s\n", name, filepath.Base(event.Created))
	case VersionFailed:
		p.printOutput(event)
		fmt.Fprintf(p.w, "%s: build failed (%s)\n", name, event.Error)
	}
}

// OnRunEnd prints nothing; the caller renders the summary.
func (p *PlainObserver) OnRunEnd(results Results) {}

// printOutput dumps captured latexmk output, indented for readability.
func (p *PlainObserver) printOutput(event VersionEvent) {
	if out := strings.TrimSpace(event.Output); out != "" {
		fmt.Fprintln(p.w, indent(out, 2))
	}
	if errOut := strings.TrimSpace(event.Stderr); errOut != "" {
		fmt.Fprintln(p.w, indent(errOut, 2))
	}
}

// indent prefixes every line with pad spaces.
func indent(s string, pad int) string {
	prefix := strings.Repeat(" ", pad)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
