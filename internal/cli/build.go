package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"examkit/internal/builder"
	"examkit/internal/config"
	"examkit/internal/ui/live"
)

// runBuildVersions is a test seam for build execution.
var runBuildVersions = builder.Run

// runDurationUnit is the rounding applied to the summary duration.
const runDurationUnit = 10 * time.Millisecond

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to config file")
		uiMode := fs.String("ui", "auto", "Progress UI: auto, live, or plain")
		showOutput := fs.Bool("show-output", false, "Forward latexmk output even on success")
		keepAux := fs.Bool("keep-aux", false, "Keep auxiliary files after the run")
		workers := fs.Int("workers", 0, "Parallel version builds; 0 uses the config value")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if len(fs.Args()) != 1 {
			fmt.Fprintln(stderr, "Usage: examkit build <base> [--ui auto|live|plain] [--show-output] [--keep-aux] [--workers N]")
			return ExitUsage
		}
		base := fs.Arg(0)

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, *showOutput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		maxWorkers := *workers
		if maxWorkers <= 0 {
			maxWorkers = cfg.Latex.MaxWorkers
		}

		var observer builder.RunObserver
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			observer = controller
		} else {
			observer = builder.NewPlainObserver(stdout)
		}

		results, err := runBuildVersions(context.Background(), builder.RunParams{
			Base:            base,
			ShowBuildOutput: *showOutput,
			KeepAux:         *keepAux,
			AuxDir:          cfg.Latex.AuxDir,
			MaxWorkers:      maxWorkers,
			Latexmk: builder.Latexmk{
				Engine: cfg.Latex.Engine,
				Opts:   cfg.Latex.OptsList(),
			},
			Observer: observer,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			if errors.Is(err, builder.ErrNoVersionFiles) {
				fmt.Fprintf(stderr, "%v\n", err)
			} else {
				fmt.Fprintf(stderr, "Build failed: %v\n", err)
			}
			return ExitError
		}

		printBuildSummary(results, stdout)
		if results.Failed {
			return ExitError
		}
		return ExitOK
	}
}

// printBuildSummary renders the per-version outcome after the run.
func printBuildSummary(results builder.Results, stdout io.Writer) {
	fmt.Fprintf(stdout, "\nRun %s completed in %s\n", results.RunID, results.Duration.Round(runDurationUnit))
	for _, version := range results.Versions {
		name := filepath.Base(version.File)
		if version.Succeeded {
			fmt.Fprintf(stdout, "  %s: %s, %s\n", name,
				filepath.Base(version.PrintPDF), filepath.Base(version.AnswersPDF))
			continue
		}
		fmt.Fprintf(stdout, "  %s: FAILED during %s build: %s\n", name, version.FailedPhase, version.Error)
	}
}
