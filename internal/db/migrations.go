package db

import (
	"context"
	"fmt"
)

// migrate drops the cached tables when they were written by an older schema.
// The tables only mirror the CSV files, so the next load rebuilds them.
func (db *DB) migrate() error {
	var version int
	if err := db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version == schemaVersion {
		return nil
	}

	queries := []string{
		"DROP TABLE IF EXISTS days",
		"DROP TABLE IF EXISTS hours",
		"DROP TABLE IF EXISTS dataset_meta",
		fmt.Sprintf("PRAGMA user_version = %d", schemaVersion),
	}

	for _, query := range queries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return nil
}
