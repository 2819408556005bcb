package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeakWeather(t *testing.T) {
	_, ok := PeakWeather(nil)
	assert.False(t, ok)

	peak, ok := PeakWeather([]WeatherMean{
		{Weather: WeatherClear, Mean: 4876.8},
		{Weather: WeatherMist, Mean: 4035.9},
		{Weather: WeatherLightPrecip, Mean: 1803.3},
	})
	assert.True(t, ok)
	assert.Equal(t, WeatherClear, peak.Weather)

	// First entry wins ties.
	peak, _ = PeakWeather([]WeatherMean{
		{Weather: WeatherMist, Mean: 10},
		{Weather: WeatherClear, Mean: 10},
	})
	assert.Equal(t, WeatherMist, peak.Weather)
}

func TestPeakMonth(t *testing.T) {
	_, ok := PeakMonth(nil)
	assert.False(t, ok)

	peak, ok := PeakMonth([]MonthlyTotal{
		{Month: time.January, Total: 134933},
		{Month: time.August, Total: 351194},
		{Month: time.September, Total: 345991},
	})
	assert.True(t, ok)
	assert.Equal(t, time.August, peak.Month)
	assert.Equal(t, "Aug", peak.Abbrev())
}

func TestHourWeekdayPivot(t *testing.T) {
	var p HourWeekdayPivot
	assert.True(t, p.Empty())
	_, _, _, ok := p.Peak()
	assert.False(t, ok)

	p.Set(8, 2, 500)
	p.Set(17, 4, 900)
	p.Set(17, 3, 900)
	p.Set(30, 1, 10000) // out of range, ignored

	assert.False(t, p.Empty())
	assert.True(t, p.HasWeekday(4))
	assert.False(t, p.HasWeekday(0))

	hour, day, total, ok := p.Peak()
	assert.True(t, ok)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 3, day, "earlier weekday wins a tie within the same hour")
	assert.Equal(t, int64(900), total)

	series := p.Series(2)
	assert.Len(t, series, 24)
	assert.Equal(t, 500.0, series[8])
	assert.Equal(t, 0.0, series[9])
}

func TestTimeWeatherMatrix(t *testing.T) {
	var m TimeWeatherMatrix
	_, _, _, ok := m.Peak()
	assert.False(t, ok)
	_, _, ok = m.Range()
	assert.False(t, ok)

	m.Set(TimeMorning, WeatherClear, 210.4, 100)
	m.Set(TimeAfternoon, WeatherClear, 461.6, 80)
	m.Set(TimeAfternoon, WeatherMist, 400.2, 40)
	m.Set(TimeNight, WeatherSituation(9), 999, 1) // invalid, ignored

	assert.True(t, m.Has(TimeMorning, WeatherClear))
	assert.False(t, m.Has(TimeNight, WeatherHeavyPrecip))
	assert.Equal(t, 0.0, m.Mean(TimeNight, WeatherHeavyPrecip))

	tc, wc, mean, ok := m.Peak()
	assert.True(t, ok)
	assert.Equal(t, TimeAfternoon, tc)
	assert.Equal(t, WeatherClear, wc)
	assert.InDelta(t, 461.6, mean, 0.001)

	lo, hi, ok := m.Range()
	assert.True(t, ok)
	assert.InDelta(t, 210.4, lo, 0.001)
	assert.InDelta(t, 461.6, hi, 0.001)
}

func TestTimeWeatherMatrix_ZeroMeanObserved(t *testing.T) {
	var m TimeWeatherMatrix
	m.Set(TimeNight, WeatherHeavyPrecip, 0, 3)

	_, w, mean, ok := m.Peak()
	assert.True(t, ok, "observed zero mean still counts")
	assert.Equal(t, WeatherHeavyPrecip, w)
	assert.Equal(t, 0.0, mean)
}

func TestReportKind_Key(t *testing.T) {
	keys := make(map[string]bool)
	for _, k := range AllReports {
		keys[k.Key()] = true
	}
	assert.Len(t, keys, 4)
	assert.Equal(t, "unknown", ReportKind(42).Key())
}
