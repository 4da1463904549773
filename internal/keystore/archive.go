package keystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one document's answer key within an extraction.
type Entry struct {
	SourceFile string
	Variant    string
	Record     string
}

// HistoryRow is one archived answer key with its extraction metadata.
type HistoryRow struct {
	ExtractionID string
	Prefix       string
	CreatedAt    time.Time
	SourceFile   string
	Variant      string
	Record       string
}

// SaveExtraction archives one extraction run and its per-document keys.
// Returns the new extraction id.
func SaveExtraction(ctx context.Context, db *sql.DB, prefix string, entries []Entry) (string, error) {
	if db == nil {
		return "", errors.New("keystore: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	extractionID := uuid.NewString()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO extractions (extraction_id, prefix, created_at) VALUES (?, ?, now())`,
		extractionID,
		prefix,
	); err != nil {
		return "", fmt.Errorf("insert extraction: %w", err)
	}
	for _, entry := range entries {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO answer_keys (key_id, extraction_id, source_file, variant, record)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(),
			extractionID,
			entry.SourceFile,
			entry.Variant,
			entry.Record,
		); err != nil {
			return "", fmt.Errorf("insert answer key: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit archive tx: %w", err)
	}
	return extractionID, nil
}

// History lists archived keys for a prefix, newest extraction first.
func History(ctx context.Context, db *sql.DB, prefix string) ([]HistoryRow, error) {
	if db == nil {
		return nil, errors.New("keystore: db is nil")
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT e.extraction_id, e.prefix, e.created_at, k.source_file, k.variant, k.record
		 FROM answer_keys k
		 JOIN extractions e ON e.extraction_id = k.extraction_id
		 WHERE e.prefix = ?
		 ORDER BY e.created_at DESC, k.source_file ASC`,
		prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var history []HistoryRow
	for rows.Next() {
		var row HistoryRow
		if err := rows.Scan(&row.ExtractionID, &row.Prefix, &row.CreatedAt, &row.SourceFile, &row.Variant, &row.Record); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		history = append(history, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return history, nil
}
