package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"examkit/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	examDir     string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^question files for variants "([a-z])" and "([a-z])"$`, state.questionFilesForVariants)
	ctx.Step(`^an empty exam directory$`, state.anEmptyExamDirectory)
	ctx.Step(`^a question file for variant "([a-z])" with a commented answer$`, state.questionFileWithCommentedAnswer)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the key record for variant "([A-Z])" is "([^"]+)"$`, state.theKeyRecordForVariant)
	ctx.Step(`^the error mentions "([^"]+)"$`, state.theErrorMentions)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.examDir != "" {
		_ = os.RemoveAll(s.examDir)
	}
}

func (s *featureState) anEmptyExamDirectory() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "examkit-feature-*")
	if err != nil {
		return fmt.Errorf("create temp exam dir: %w", err)
	}
	s.examDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) questionFilesForVariants(first, second string) error {
	if err := s.anEmptyExamDirectory(); err != nil {
		return err
	}
	if err := s.writeQuestionFile(first, singleCorrectSource()); err != nil {
		return err
	}
	return s.writeQuestionFile(second, allCorrectSource())
}

func (s *featureState) questionFileWithCommentedAnswer(variant string) error {
	if err := s.anEmptyExamDirectory(); err != nil {
		return err
	}
	return s.writeQuestionFile(variant, commentedAnswerSource())
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "examkit" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theKeyRecordForVariant matches a record line; the expected fields are
// space-separated in the feature and tab-separated in the output.
func (s *featureState) theKeyRecordForVariant(variant, fields string) error {
	want := strings.Join(strings.Fields(fields), "\t")
	for _, line := range strings.Split(s.stdout.String(), "\n") {
		if strings.HasPrefix(line, variant+"\t") || line == variant {
			if line != want {
				return fmt.Errorf("expected record %q for variant %s, got %q", want, variant, line)
			}
			return nil
		}
	}
	return fmt.Errorf("no record for variant %s in output %q", variant, s.stdout.String())
}

func (s *featureState) theErrorMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected error to mention %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) writeQuestionFile(variant, contents string) error {
	if s.examDir == "" {
		return fmt.Errorf("exam directory is not set")
	}
	name := filepath.Join(s.examDir, fmt.Sprintf("exam-%s-questions.tex", variant))
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write question file: %w", err)
	}
	return nil
}

func singleCorrectSource() string {
	return `\begin{choices}
\choice one
\CHOICE two
\choice three
\end{choices}
`
}

func allCorrectSource() string {
	return `\begin{choices}
\CHOICE one
\CHOICE two
\end{choices}
`
}

func commentedAnswerSource() string {
	return `\begin{choices}
\choice one
% \CHOICE two
\choice three
\end{choices}
`
}
