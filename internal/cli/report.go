package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"examkit/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		output := fs.String("o", "", "Report file path (default <prefix>-keys.html)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if len(fs.Args()) != 1 {
			fmt.Fprintln(stderr, "Usage: examkit report <prefix> [-o <file>]")
			return ExitUsage
		}
		prefix := fs.Arg(0)

		keys, err := extractKeys(prefix)
		if err != nil {
			fmt.Fprintf(stderr, "Extraction failed: %v\n", err)
			return ExitError
		}

		entries := make([]report.Entry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, report.Entry{
				SourceFile: key.File,
				Variant:    key.Key.Variant,
				Tokens:     key.Key.Tokens,
			})
		}
		html, err := report.BuildReportHTML(prefix, entries)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}

		destination := *output
		if destination == "" {
			destination = prefix + "-keys.html"
		}
		if err := os.WriteFile(destination, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report: %s\n", destination)
		return ExitOK
	}
}
