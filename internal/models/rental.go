// Package models defines data structures and domain types.
package models

import "time"

// BaseYear is the calendar year of year index 0 in the dataset.
const BaseYear = 2011

// DayRecord is one row of the daily rentals table.
type DayRecord struct {
	Date       time.Time
	Instant    int
	Season     int
	Year       int // 0 = 2011, 1 = 2012
	Month      int // 1-12
	Weekday    int // 0 = Sunday
	Weather    WeatherSituation
	Temp       float64
	ATemp      float64
	Humidity   float64
	WindSpeed  float64
	Casual     int
	Registered int
	Count      int
	Holiday    bool
	WorkingDay bool
}

// CalendarYear returns the four-digit year of the record.
func (r DayRecord) CalendarYear() int {
	return BaseYear + r.Year
}

// HourRecord is one row of the hourly rentals table.
type HourRecord struct {
	DayRecord
	Hour int // 0-23
}

// TimeOfDay returns the time-of-day category of the record's hour.
func (r HourRecord) TimeOfDay() TimeOfDay {
	return TimeOfDayOf(r.Hour)
}

// SourceInfo describes a CSV file that was imported into the database.
type SourceInfo struct {
	LoadedAt time.Time
	ModTime  time.Time
	Path     string
	Size     int64
	Rows     int
}

// DatasetStats summarizes the loaded dataset.
type DatasetStats struct {
	FirstDate    time.Time
	LastDate     time.Time
	DaySource    SourceInfo
	HourSource   SourceInfo
	DayRows      int
	HourRows     int
	TotalRentals int64
}

// HasData returns true if any daily or hourly rows are loaded.
func (s *DatasetStats) HasData() bool {
	return s != nil && (s.DayRows > 0 || s.HourRows > 0)
}

// Days returns the number of calendar days covered by the daily table.
func (s *DatasetStats) Days() int {
	if s == nil || s.FirstDate.IsZero() || s.LastDate.IsZero() {
		return 0
	}
	return int(s.LastDate.Sub(s.FirstDate).Hours()/24) + 1
}
