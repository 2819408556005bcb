// Package db stores the rental dataset in SQLite and runs the aggregations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := db.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up database pragmas for optimal performance.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=-64000", // 64MB cache
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (db *DB) createSchema() error {
	if err := db.createDaysTable(); err != nil {
		return err
	}
	if err := db.createHoursTable(); err != nil {
		return err
	}
	return db.createMetaTable()
}

func (db *DB) createDaysTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS days (
		instant INTEGER PRIMARY KEY,
		dteday TEXT NOT NULL,
		season INTEGER NOT NULL,
		yr INTEGER NOT NULL,
		mnth INTEGER NOT NULL,
		holiday INTEGER NOT NULL DEFAULT 0,
		weekday INTEGER NOT NULL,
		workingday INTEGER NOT NULL DEFAULT 0,
		weathersit INTEGER NOT NULL,
		temp REAL,
		atemp REAL,
		hum REAL,
		windspeed REAL,
		casual INTEGER NOT NULL DEFAULT 0,
		registered INTEGER NOT NULL DEFAULT 0,
		cnt INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_days_yr_weather ON days(yr, weathersit);
	CREATE INDEX IF NOT EXISTS idx_days_yr_month ON days(yr, mnth);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createHoursTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS hours (
		instant INTEGER PRIMARY KEY,
		dteday TEXT NOT NULL,
		season INTEGER NOT NULL,
		yr INTEGER NOT NULL,
		mnth INTEGER NOT NULL,
		hr INTEGER NOT NULL,
		holiday INTEGER NOT NULL DEFAULT 0,
		weekday INTEGER NOT NULL,
		workingday INTEGER NOT NULL DEFAULT 0,
		weathersit INTEGER NOT NULL,
		temp REAL,
		atemp REAL,
		hum REAL,
		windspeed REAL,
		casual INTEGER NOT NULL DEFAULT 0,
		registered INTEGER NOT NULL DEFAULT 0,
		cnt INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_hours_yr_hr_weekday ON hours(yr, hr, weekday);
	CREATE INDEX IF NOT EXISTS idx_hours_yr_weather ON hours(yr, weathersit);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createMetaTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS dataset_meta (
		name TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		size INTEGER NOT NULL DEFAULT 0,
		mod_time INTEGER NOT NULL DEFAULT 0,
		row_count INTEGER NOT NULL DEFAULT 0,
		loaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

// Close closes the database connection gracefully.
func (db *DB) Close() error {
	// Checkpoint WAL before closing
	_, _ = db.ExecContext(context.Background(), "PRAGMA wal_checkpoint(TRUNCATE)")
	return db.DB.Close()
}

// Vacuum performs database maintenance to reclaim space.
func (db *DB) Vacuum() error {
	_, err := db.ExecContext(context.Background(), "VACUUM")
	return err
}
