package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"

	"examkit/internal/config"
	"examkit/internal/keystore"
)

// loadArchivedKeys is a test seam for the archive query.
var loadArchivedKeys = defaultLoadArchivedKeys

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultPath, "Path to config file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if len(fs.Args()) != 1 {
			fmt.Fprintln(stderr, "Usage: examkit history <prefix>")
			return ExitUsage
		}
		prefix := fs.Arg(0)

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		if _, err := os.Stat(cfg.Archive.Path); err != nil {
			fmt.Fprintf(stderr, "No archive found at %s\n", cfg.Archive.Path)
			return ExitError
		}
		rows, err := loadArchivedKeys(context.Background(), cfg.Archive.Path, prefix)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read history: %v\n", err)
			return ExitError
		}
		if len(rows) == 0 {
			fmt.Fprintf(stdout, "No archived keys for prefix %q\n", prefix)
			return ExitOK
		}

		printHistory(rows, stdout)
		return ExitOK
	}
}

// defaultLoadArchivedKeys opens the archive and queries it.
func defaultLoadArchivedKeys(ctx context.Context, path, prefix string) ([]keystore.HistoryRow, error) {
	db, err := keystore.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)
	return keystore.History(ctx, db, prefix)
}

// printHistory renders archived keys grouped by extraction.
func printHistory(rows []keystore.HistoryRow, stdout io.Writer) {
	lastExtraction := ""
	for _, row := range rows {
		if row.ExtractionID != lastExtraction {
			fmt.Fprintf(stdout, "Extraction %s (%s)\n", row.ExtractionID, row.CreatedAt.Format("2006-01-02 15:04:05"))
			lastExtraction = row.ExtractionID
		}
		fmt.Fprintf(stdout, "  %s\t%s\n", row.SourceFile, row.Record)
	}
}
