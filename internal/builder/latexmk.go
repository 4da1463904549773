package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// exitNotFound mirrors the shell convention for a missing executable.
const exitNotFound = 127

// CommandRunner executes an external command and captures its output.
// Injectable so builds can be tested without a TeX installation.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)

// Latexmk invokes latexmk for exam sources.
type Latexmk struct {
	// Engine is the latexmk target, e.g. "pdf" for -pdf.
	Engine string
	// Opts are extra latexmk options such as -shell-escape.
	Opts []string
	// Runner executes the command; defaults to the real latexmk binary.
	Runner CommandRunner
}

// Compile builds one source file, injecting the uppercase version letter
// via -usepretex.
func (l Latexmk) Compile(ctx context.Context, tex string, versionLetter string) (string, string, int, error) {
	args := make([]string, 0, len(l.Opts)+3)
	args = append(args, l.Opts...)
	args = append(args, "-"+l.Engine)
	args = append(args, fmt.Sprintf(`-usepretex=\def\VERSION{\MakeUppercase{%s}}`, versionLetter))
	args = append(args, tex)
	return l.run(ctx, args...)
}

// Clean removes auxiliary files via latexmk -c.
func (l Latexmk) Clean(ctx context.Context) error {
	_, _, _, err := l.run(ctx, "-"+l.Engine, "-c")
	return err
}

// run dispatches to the configured runner.
func (l Latexmk) run(ctx context.Context, args ...string) (string, string, int, error) {
	runner := l.Runner
	if runner == nil {
		runner = runCommand
	}
	return runner(ctx, "latexmk", args...)
}

// runCommand is the real CommandRunner backed by os/exec.
func runCommand(ctx context.Context, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return "", "", exitNotFound, fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return stdout.String(), stderr.String(), exitNotFound, fmt.Errorf("run %s: %w", name, err)
}
