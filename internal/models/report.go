package models

import "time"

// ReportKind identifies one of the dashboard charts.
type ReportKind int

const (
	// ReportWeather is mean daily rentals by weather situation.
	ReportWeather ReportKind = iota
	// ReportMonthly is total rentals by month.
	ReportMonthly
	// ReportHourWeekday is total rentals by hour of day and weekday.
	ReportHourWeekday
	// ReportTimeWeather is mean hourly rentals by time of day and weather.
	ReportTimeWeather
)

// AllReports lists the report kinds in tab order.
var AllReports = []ReportKind{ReportWeather, ReportMonthly, ReportHourWeekday, ReportTimeWeather}

// Key returns the stable identifier of the report, also used for file names.
func (k ReportKind) Key() string {
	switch k {
	case ReportWeather:
		return "weather"
	case ReportMonthly:
		return "monthly"
	case ReportHourWeekday:
		return "hour_weekday"
	case ReportTimeWeather:
		return "time_weather"
	default:
		return "unknown"
	}
}

// WeatherMean is the mean daily rental count for one weather situation.
type WeatherMean struct {
	Weather WeatherSituation
	Mean    float64
	Days    int
}

// PeakWeather returns the entry with the highest mean. The first entry wins
// ties. ok is false for an empty slice.
func PeakWeather(means []WeatherMean) (peak WeatherMean, ok bool) {
	for i, m := range means {
		if i == 0 || m.Mean > peak.Mean {
			peak = m
		}
	}
	return peak, len(means) > 0
}

// MonthlyTotal is the total rental count for one calendar month.
type MonthlyTotal struct {
	Month time.Month
	Total int64
}

// Abbrev returns the three-letter English month name.
func (m MonthlyTotal) Abbrev() string {
	return m.Month.String()[:3]
}

// PeakMonth returns the month with the highest total. The earliest month
// wins ties.
func PeakMonth(totals []MonthlyTotal) (peak MonthlyTotal, ok bool) {
	for i, t := range totals {
		if i == 0 || t.Total > peak.Total {
			peak = t
		}
	}
	return peak, len(totals) > 0
}

// HourWeekdayPivot holds total rentals indexed by [hour][weekday].
type HourWeekdayPivot struct {
	Totals  [24][7]int64
	Present [24][7]bool
}

// Set records the total for one cell.
func (p *HourWeekdayPivot) Set(hour, weekday int, total int64) {
	if hour < 0 || hour > 23 || weekday < 0 || weekday > 6 {
		return
	}
	p.Totals[hour][weekday] = total
	p.Present[hour][weekday] = true
}

// Empty reports whether no cell has been set.
func (p *HourWeekdayPivot) Empty() bool {
	for h := range p.Present {
		for d := range p.Present[h] {
			if p.Present[h][d] {
				return false
			}
		}
	}
	return true
}

// Series returns the 24 hourly totals for one weekday.
func (p *HourWeekdayPivot) Series(weekday int) []float64 {
	series := make([]float64, 24)
	if weekday < 0 || weekday > 6 {
		return series
	}
	for h := range 24 {
		series[h] = float64(p.Totals[h][weekday])
	}
	return series
}

// HasWeekday reports whether any hour has data for weekday.
func (p *HourWeekdayPivot) HasWeekday(weekday int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}
	for h := range 24 {
		if p.Present[h][weekday] {
			return true
		}
	}
	return false
}

// Peak returns the cell with the highest total, scanning hours first and
// then weekdays so the earliest hour and weekday win ties.
func (p *HourWeekdayPivot) Peak() (hour, weekday int, total int64, ok bool) {
	for h := range 24 {
		for d := range 7 {
			if !p.Present[h][d] {
				continue
			}
			if !ok || p.Totals[h][d] > total {
				hour, weekday, total, ok = h, d, p.Totals[h][d], true
			}
		}
	}
	return hour, weekday, total, ok
}

// TimeWeatherMatrix holds mean rentals indexed by [TimeOfDay][weather index].
// Combinations without observations have a zero count.
type TimeWeatherMatrix struct {
	Means  [4][4]float64
	Counts [4][4]int
}

// Set records the mean for one cell.
func (m *TimeWeatherMatrix) Set(t TimeOfDay, w WeatherSituation, mean float64, count int) {
	if t < TimeMorning || t > TimeNight || !w.Valid() {
		return
	}
	m.Means[t][w.Index()] = mean
	m.Counts[t][w.Index()] = count
}

// Has reports whether the combination was observed.
func (m *TimeWeatherMatrix) Has(t TimeOfDay, w WeatherSituation) bool {
	if t < TimeMorning || t > TimeNight || !w.Valid() {
		return false
	}
	return m.Counts[t][w.Index()] > 0
}

// Mean returns the mean for a combination, or 0 when unobserved.
func (m *TimeWeatherMatrix) Mean(t TimeOfDay, w WeatherSituation) float64 {
	if !m.Has(t, w) {
		return 0
	}
	return m.Means[t][w.Index()]
}

// Range returns the smallest and largest observed means.
func (m *TimeWeatherMatrix) Range() (lo, hi float64, ok bool) {
	for _, t := range AllTimesOfDay {
		for _, w := range AllWeather {
			if !m.Has(t, w) {
				continue
			}
			v := m.Mean(t, w)
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, ok
}

// Peak returns the observed combination with the highest mean, scanning in
// display order so earlier rows and columns win ties.
func (m *TimeWeatherMatrix) Peak() (t TimeOfDay, w WeatherSituation, mean float64, ok bool) {
	for _, tc := range AllTimesOfDay {
		for _, wc := range AllWeather {
			if !m.Has(tc, wc) {
				continue
			}
			if v := m.Mean(tc, wc); !ok || v > mean {
				t, w, mean, ok = tc, wc, v, true
			}
		}
	}
	return t, w, mean, ok
}
