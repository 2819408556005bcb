// Package dataset reads the daily and hourly bike rental CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

// DateLayout is the format of the dteday column.
const DateLayout = "2006-01-02"

var (
	// ErrFileNotFound is returned when a dataset file does not exist.
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyFile is returned when the file has no header row.
	ErrEmptyFile = errors.New("dataset file is empty")
)

// ParseError describes a malformed cell.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: invalid value %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Columns shared by both tables.
var dayColumns = []string{
	"instant", "dteday", "season", "yr", "mnth", "holiday", "weekday",
	"workingday", "weathersit", "temp", "atemp", "hum", "windspeed",
	"casual", "registered", "cnt",
}

// LoadDays reads the daily table at path.
func LoadDays(path string) ([]models.DayRecord, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDays(f, path)
}

// LoadHours reads the hourly table at path.
func LoadHours(path string) ([]models.HourRecord, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadHours(f, path)
}

// ReadDays parses daily records from r. name is used in error messages.
func ReadDays(r io.Reader, name string) ([]models.DayRecord, error) {
	var out []models.DayRecord
	err := read(r, name, dayColumns, func(row *row) error {
		rec, err := row.day()
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ReadHours parses hourly records from r. name is used in error messages.
func ReadHours(r io.Reader, name string) ([]models.HourRecord, error) {
	cols := append(append([]string{}, dayColumns...), "hr")
	var out []models.HourRecord
	err := read(r, name, cols, func(row *row) error {
		day, err := row.day()
		if err != nil {
			return err
		}
		hour, err := row.intIn("hr", 0, 23)
		if err != nil {
			return err
		}
		out = append(out, models.HourRecord{DayRecord: day, Hour: hour})
		return nil
	})
	return out, err
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return f, nil
}

func read(r io.Reader, name string, required []string, fn func(*row) error) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%w %q in %s", ErrMissingColumn, col, name)
		}
	}

	rw := &row{path: name, index: index}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		rw.line, _ = cr.FieldPos(0)
		rw.fields = rec
		if err := fn(rw); err != nil {
			return err
		}
	}
}

type row struct {
	path   string
	line   int
	index  map[string]int
	fields []string
}

func (r *row) get(col string) string {
	i := r.index[col]
	if i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r *row) fail(col, value string, err error) error {
	return &ParseError{Path: r.path, Line: r.line, Column: col, Value: value, Err: err}
}

func (r *row) atoi(col string) (int, error) {
	v := r.get(col)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, r.fail(col, v, errors.Unwrap(err))
	}
	return n, nil
}

func (r *row) intIn(col string, lo, hi int) (int, error) {
	n, err := r.atoi(col)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, r.fail(col, r.get(col), fmt.Errorf("out of range [%d, %d]", lo, hi))
	}
	return n, nil
}

func (r *row) float(col string) (float64, error) {
	v := r.get(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.fail(col, v, errors.Unwrap(err))
	}
	return f, nil
}

func (r *row) flag(col string) (bool, error) {
	n, err := r.intIn(col, 0, 1)
	return n == 1, err
}

func (r *row) day() (models.DayRecord, error) {
	var rec models.DayRecord
	var err error

	raw := r.get("dteday")
	if rec.Date, err = time.Parse(DateLayout, raw); err != nil {
		return rec, r.fail("dteday", raw, errors.New("expected YYYY-MM-DD"))
	}
	if rec.Instant, err = r.atoi("instant"); err != nil {
		return rec, err
	}
	if rec.Season, err = r.intIn("season", 1, 4); err != nil {
		return rec, err
	}
	if rec.Year, err = r.intIn("yr", 0, 1); err != nil {
		return rec, err
	}
	if rec.Month, err = r.intIn("mnth", 1, 12); err != nil {
		return rec, err
	}
	if rec.Holiday, err = r.flag("holiday"); err != nil {
		return rec, err
	}
	if rec.Weekday, err = r.intIn("weekday", 0, 6); err != nil {
		return rec, err
	}
	if rec.WorkingDay, err = r.flag("workingday"); err != nil {
		return rec, err
	}
	weather, err := r.intIn("weathersit", 1, 4)
	if err != nil {
		return rec, err
	}
	rec.Weather = models.WeatherSituation(weather)

	floats := []struct {
		col string
		dst *float64
	}{
		{"temp", &rec.Temp},
		{"atemp", &rec.ATemp},
		{"hum", &rec.Humidity},
		{"windspeed", &rec.WindSpeed},
	}
	for _, f := range floats {
		if *f.dst, err = r.float(f.col); err != nil {
			return rec, err
		}
	}

	const maxCount = math.MaxInt32
	if rec.Casual, err = r.intIn("casual", 0, maxCount); err != nil {
		return rec, err
	}
	if rec.Registered, err = r.intIn("registered", 0, maxCount); err != nil {
		return rec, err
	}
	if rec.Count, err = r.intIn("cnt", 0, maxCount); err != nil {
		return rec, err
	}
	return rec, nil
}
