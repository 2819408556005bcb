package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	sqlDateLayout,
}

func parseTimeString(s string) (time.Time, bool) {
	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// yearArgs returns the two bind values for sqlYearFilterClause.
func yearArgs(filter models.YearFilter) []any {
	idx, ok := filter.YearIndex()
	if !ok {
		return []any{-1, -1}
	}
	return []any{idx, idx}
}

// MeanRentalsByWeather returns the mean daily count per weather situation,
// ordered by weather code. Situations with no days are omitted.
func (db *DB) MeanRentalsByWeather(filter models.YearFilter) ([]models.WeatherMean, error) {
	query := `
		SELECT weathersit, AVG(cnt), COUNT(*)
		FROM days
		WHERE ` + sqlYearFilterClause + `
		GROUP BY weathersit
		ORDER BY weathersit
	`

	rows, err := db.QueryContext(context.Background(), query, yearArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather means: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var means []models.WeatherMean
	for rows.Next() {
		var m models.WeatherMean
		var code int
		if err := rows.Scan(&code, &m.Mean, &m.Days); err != nil {
			return nil, fmt.Errorf("failed to scan weather mean: %w", err)
		}
		m.Weather = models.WeatherSituation(code)
		means = append(means, m)
	}

	return means, rows.Err()
}

// TotalRentalsByMonth returns the summed daily count per calendar month, in
// month order. Months with no days are omitted.
func (db *DB) TotalRentalsByMonth(filter models.YearFilter) ([]models.MonthlyTotal, error) {
	query := `
		SELECT mnth, SUM(cnt)
		FROM days
		WHERE ` + sqlYearFilterClause + `
		GROUP BY mnth
		ORDER BY mnth
	`

	rows, err := db.QueryContext(context.Background(), query, yearArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var t models.MonthlyTotal
		var month int
		if err := rows.Scan(&month, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		t.Month = time.Month(month)
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// HourWeekdayTotals pivots the hourly table into summed counts per hour of
// day and weekday.
func (db *DB) HourWeekdayTotals(filter models.YearFilter) (*models.HourWeekdayPivot, error) {
	query := `
		SELECT hr, weekday, SUM(cnt)
		FROM hours
		WHERE ` + sqlYearFilterClause + `
		GROUP BY hr, weekday
		ORDER BY hr, weekday
	`

	rows, err := db.QueryContext(context.Background(), query, yearArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hour/weekday totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	pivot := &models.HourWeekdayPivot{}
	for rows.Next() {
		var hour, weekday int
		var total int64
		if err := rows.Scan(&hour, &weekday, &total); err != nil {
			return nil, fmt.Errorf("failed to scan hour/weekday total: %w", err)
		}
		pivot.Set(hour, weekday, total)
	}

	return pivot, rows.Err()
}

// TimeWeatherMeans returns the mean hourly count for every observed
// combination of time-of-day and weather category.
func (db *DB) TimeWeatherMeans(filter models.YearFilter) (*models.TimeWeatherMatrix, error) {
	query := `
		SELECT ` + sqlTimeCategory + ` AS time_category,
			` + sqlWeatherCategory + ` AS weather_category,
			AVG(cnt), COUNT(*)
		FROM hours
		WHERE ` + sqlYearFilterClause + `
		GROUP BY time_category, weather_category
	`

	rows, err := db.QueryContext(context.Background(), query, yearArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time/weather means: %w", err)
	}
	defer func() { _ = rows.Close() }()

	matrix := &models.TimeWeatherMatrix{}
	for rows.Next() {
		var timeCat, weatherCat, count int
		var mean float64
		if err := rows.Scan(&timeCat, &weatherCat, &mean, &count); err != nil {
			return nil, fmt.Errorf("failed to scan time/weather mean: %w", err)
		}
		matrix.Set(models.TimeOfDay(timeCat), models.WeatherSituation(weatherCat), mean, count)
	}

	return matrix, rows.Err()
}

// DatasetStats returns row counts, the covered date range and total rentals
// for the filtered daily and hourly tables, plus their recorded sources.
func (db *DB) DatasetStats(filter models.YearFilter) (*models.DatasetStats, error) {
	stats := &models.DatasetStats{}
	args := yearArgs(filter)

	var first, last sql.NullString
	var total sql.NullInt64
	err := db.QueryRowContext(context.Background(), `
		SELECT COUNT(*), MIN(dteday), MAX(dteday), SUM(cnt)
		FROM days
		WHERE `+sqlYearFilterClause, args...).Scan(&stats.DayRows, &first, &last, &total)
	if err != nil {
		return nil, fmt.Errorf("failed to query day stats: %w", err)
	}
	if first.Valid {
		stats.FirstDate, _ = parseTimeString(first.String)
	}
	if last.Valid {
		stats.LastDate, _ = parseTimeString(last.String)
	}
	stats.TotalRentals = total.Int64

	err = db.QueryRowContext(context.Background(), `
		SELECT COUNT(*) FROM hours WHERE `+sqlYearFilterClause, args...).Scan(&stats.HourRows)
	if err != nil {
		return nil, fmt.Errorf("failed to query hour stats: %w", err)
	}

	if src, err := db.GetSource(SourceDays); err != nil {
		return nil, err
	} else if src != nil {
		stats.DaySource = *src
	}
	if src, err := db.GetSource(SourceHours); err != nil {
		return nil, err
	} else if src != nil {
		stats.HourSource = *src
	}

	return stats, nil
}
