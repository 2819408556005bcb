package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

const dayHeader = "instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt"

const hourHeader = "instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDays(t *testing.T) {
	path := writeFile(t, "day.csv", strings.Join([]string{
		dayHeader,
		"1,2011-01-01,1,0,1,0,6,0,2,0.344167,0.363625,0.805833,0.160446,331,654,985",
		"2,2011-01-02,1,0,1,0,0,0,2,0.363478,0.353739,0.696087,0.248539,131,670,801",
		"",
	}, "\n"))

	days, err := LoadDays(path)
	require.NoError(t, err)
	require.Len(t, days, 2)

	first := days[0]
	assert.Equal(t, 1, first.Instant)
	assert.Equal(t, 2011, first.CalendarYear())
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 6, first.Weekday)
	assert.Equal(t, models.WeatherMist, first.Weather)
	assert.Equal(t, 985, first.Count)
	assert.False(t, first.WorkingDay)
	assert.InDelta(t, 0.805833, first.Humidity, 1e-9)
	assert.Equal(t, "2011-01-01", first.Date.Format(DateLayout))
}

func TestLoadHours(t *testing.T) {
	path := writeFile(t, "hour.csv", strings.Join([]string{
		hourHeader,
		"1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0,3,13,16",
		"2,2011-01-01,1,0,1,1,0,6,0,1,0.22,0.2727,0.8,0,8,32,40",
	}, "\n"))

	hours, err := LoadHours(path)
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, 1, hours[1].Hour)
	assert.Equal(t, 40, hours[1].Count)
	assert.Equal(t, models.TimeNight, hours[1].TimeOfDay())
}

func TestReadDays_ColumnOrderIndependent(t *testing.T) {
	input := "cnt,dteday,instant,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered\n" +
		"985,2011-01-01,1,1,0,1,0,6,0,2,0.34,0.36,0.80,0.16,331,654\n"

	days, err := ReadDays(strings.NewReader(input), "reordered")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 985, days[0].Count)
	assert.Equal(t, 654, days[0].Registered)
}

func TestReadDays_HeaderOnly(t *testing.T) {
	days, err := ReadDays(strings.NewReader(dayHeader+"\n"), "empty")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestLoadDays_FileNotFound(t *testing.T) {
	_, err := LoadDays(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadDays_EmptyFile(t *testing.T) {
	_, err := ReadDays(strings.NewReader(""), "blank")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadHours_MissingColumn(t *testing.T) {
	// A daily file is not a valid hourly file.
	_, err := ReadHours(strings.NewReader(dayHeader+"\n"), "day.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), `"hr"`)
}

func TestReadDays_InvalidValues(t *testing.T) {
	valid := []string{"1", "2011-01-01", "1", "0", "1", "0", "6", "0", "2", "0.34", "0.36", "0.80", "0.16", "331", "654", "985"}
	columns := strings.Split(dayHeader, ",")

	tests := []struct {
		name   string
		column string
		value  string
	}{
		{"month out of range", "mnth", "13"},
		{"weekday out of range", "weekday", "7"},
		{"weather out of range", "weathersit", "5"},
		{"negative count", "cnt", "-1"},
		{"non-numeric count", "cnt", "many"},
		{"bad date", "dteday", "01/01/2011"},
		{"bad float", "temp", "warm"},
		{"holiday not a flag", "holiday", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := append([]string{}, valid...)
			for i, c := range columns {
				if c == tt.column {
					fields[i] = tt.value
				}
			}
			input := dayHeader + "\n" + strings.Join(valid, ",") + "\n" + strings.Join(fields, ",") + "\n"

			_, err := ReadDays(strings.NewReader(input), "day.csv")
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %T: %v", err, err)
			assert.Equal(t, 3, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
			assert.Equal(t, tt.value, pe.Value)
		})
	}
}

func TestReadHours_HourOutOfRange(t *testing.T) {
	input := hourHeader + "\n1,2011-01-01,1,0,1,24,0,6,0,1,0.24,0.2879,0.81,0,3,13,16\n"
	_, err := ReadHours(strings.NewReader(input), "hour.csv")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "hr", pe.Column)
	assert.Contains(t, pe.Error(), "hour.csv:2")
}

func TestReadDays_RaggedRow(t *testing.T) {
	input := dayHeader + "\n1,2011-01-01,1\n"
	_, err := ReadDays(strings.NewReader(input), "day.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read day.csv")
}
