package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"examkit/internal/answerkey"
	"examkit/internal/config"
	"examkit/internal/exam"
	"examkit/internal/keystore"
)

// archiveExtraction is a test seam for the archive backend.
var archiveExtraction = archiveKeys

// documentKey pairs a question file with its extracted answer key.
type documentKey struct {
	File string
	Key  answerkey.Key
}

// runExtract builds the handler for the extract command.
func runExtract(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to config file")
		output := fs.String("o", "", "Write the key file to a path instead of stdout")
		archive := fs.Bool("archive", false, "Save the extracted keys to the archive")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if len(fs.Args()) != 1 {
			fmt.Fprintln(stderr, "Usage: examkit extract <prefix> [-o <file>] [--archive]")
			return ExitUsage
		}
		prefix := fs.Arg(0)

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		keys, err := extractKeys(prefix)
		if err != nil {
			fmt.Fprintf(stderr, "Extraction failed: %v\n", err)
			return ExitError
		}

		destination := *output
		if destination == "" {
			destination = cfg.Extract.Output
		}
		if err := writeRecords(keys, destination, stdout); err != nil {
			fmt.Fprintf(stderr, "Failed to write key file: %v\n", err)
			return ExitError
		}

		if *archive {
			extractionID, err := archiveExtraction(cfg.Archive.Path, prefix, keys)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to archive keys: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stderr, "Archived extraction %s\n", extractionID)
		}
		return ExitOK
	}
}

// extractKeys runs the extraction pipeline over every question file of a
// prefix, in discovery order.
func extractKeys(prefix string) ([]documentKey, error) {
	files := exam.FindQuestionFiles(prefix)
	if len(files) == 0 {
		return nil, fmt.Errorf("no question files found for prefix %q", prefix)
	}
	keys := make([]documentKey, 0, len(files))
	for _, file := range files {
		doc, err := exam.LoadDocument(prefix, file)
		if err != nil {
			return nil, err
		}
		keys = append(keys, documentKey{
			File: file,
			Key:  answerkey.ExtractKey(doc.Text, doc.Variant),
		})
	}
	return keys, nil
}

// writeRecords emits one record line per document, to a file when a
// destination is set and to stdout otherwise.
func writeRecords(keys []documentKey, destination string, stdout io.Writer) error {
	var lines strings.Builder
	for _, key := range keys {
		lines.WriteString(key.Key.Record())
		lines.WriteString("\n")
	}
	if destination == "" {
		_, err := io.WriteString(stdout, lines.String())
		return err
	}
	return os.WriteFile(destination, []byte(lines.String()), 0o644)
}

// archiveKeys persists one extraction run to the archive database.
func archiveKeys(path, prefix string, keys []documentKey) (string, error) {
	db, err := keystore.Open(path)
	if err != nil {
		return "", err
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	entries := make([]keystore.Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, keystore.Entry{
			SourceFile: key.File,
			Variant:    key.Key.Variant,
			Record:     key.Key.Record(),
		})
	}
	return keystore.SaveExtraction(context.Background(), db, prefix, entries)
}
