package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

const dayColumns = `instant, dteday, season, yr, mnth, holiday, weekday, workingday,
	weathersit, temp, atemp, hum, windspeed, casual, registered, cnt`

// ReplaceDays clears the days table and inserts records, recording src as
// its source. Both happen in one transaction.
func (db *DB) ReplaceDays(ctx context.Context, records []models.DayRecord, src models.SourceInfo) error {
	query := `INSERT INTO days (` + dayColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return db.replace(ctx, SourceDays, src, len(records), query, func(stmt *sql.Stmt) error {
		for i := range records {
			if _, err := stmt.ExecContext(ctx, dayArgs(&records[i])...); err != nil {
				return fmt.Errorf("failed to insert day %d: %w", records[i].Instant, err)
			}
		}
		return nil
	})
}

// ReplaceHours clears the hours table and inserts records, recording src as
// its source. Both happen in one transaction.
func (db *DB) ReplaceHours(ctx context.Context, records []models.HourRecord, src models.SourceInfo) error {
	query := `INSERT INTO hours (` + dayColumns + `, hr) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return db.replace(ctx, SourceHours, src, len(records), query, func(stmt *sql.Stmt) error {
		for i := range records {
			args := append(dayArgs(&records[i].DayRecord), records[i].Hour)
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert hour %d: %w", records[i].Instant, err)
			}
		}
		return nil
	})
}

func (db *DB) replace(ctx context.Context, table string, src models.SourceInfo, rows int, insert string, fill func(*sql.Stmt) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// table is one of the Source constants, never user input.
	if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()

	if err = fill(stmt); err != nil {
		return err
	}

	src.Rows = rows
	if err = upsertSource(ctx, tx, table, src); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}

	logger.Debug("Replaced table", "table", table, "rows", rows, "source", src.Path)
	return nil
}

func dayArgs(r *models.DayRecord) []any {
	return []any{
		r.Instant,
		r.Date.Format(sqlDateLayout),
		r.Season,
		r.Year,
		r.Month,
		boolToInt(r.Holiday),
		r.Weekday,
		boolToInt(r.WorkingDay),
		int(r.Weather),
		r.Temp,
		r.ATemp,
		r.Humidity,
		r.WindSpeed,
		r.Casual,
		r.Registered,
		r.Count,
	}
}

func upsertSource(ctx context.Context, tx *sql.Tx, name string, src models.SourceInfo) error {
	query := `
		INSERT INTO dataset_meta (name, path, size, mod_time, row_count, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			path = excluded.path,
			size = excluded.size,
			mod_time = excluded.mod_time,
			row_count = excluded.row_count,
			loaded_at = excluded.loaded_at
	`

	loadedAt := src.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now()
	}

	_, err := tx.ExecContext(ctx, query,
		name,
		src.Path,
		src.Size,
		src.ModTime.UnixNano(),
		src.Rows,
		loadedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to record source %s: %w", name, err)
	}
	return nil
}

// GetSource returns the recorded source of a table, or nil if the table was
// never loaded.
func (db *DB) GetSource(name string) (*models.SourceInfo, error) {
	query := `
		SELECT path, size, mod_time, row_count, loaded_at
		FROM dataset_meta
		WHERE name = ?
	`

	var src models.SourceInfo
	var modTime int64
	var loadedAt sql.NullString

	err := db.QueryRowContext(context.Background(), query, name).Scan(
		&src.Path,
		&src.Size,
		&modTime,
		&src.Rows,
		&loadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source %s: %w", name, err)
	}

	src.ModTime = time.Unix(0, modTime)
	if loadedAt.Valid {
		if t, ok := parseTimeString(loadedAt.String); ok {
			src.LoadedAt = t
		}
	}
	return &src, nil
}

// SourceUpToDate reports whether table was last loaded from the file at
// path with the given size and modification time.
func (db *DB) SourceUpToDate(name, path string, size int64, modTime time.Time) (bool, error) {
	src, err := db.GetSource(name)
	if err != nil || src == nil {
		return false, err
	}
	return src.Path == path && src.Size == size && src.ModTime.Equal(modTime), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
