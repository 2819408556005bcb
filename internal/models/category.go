package models

import (
	"fmt"
	"strings"
)

// WeatherSituation is the weathersit code of the dataset.
type WeatherSituation int

const (
	// WeatherClear is clear, few clouds or partly cloudy.
	WeatherClear WeatherSituation = iota + 1
	// WeatherMist is mist combined with clouds.
	WeatherMist
	// WeatherLightPrecip is light snow, light rain or scattered thunderstorms.
	WeatherLightPrecip
	// WeatherHeavyPrecip is heavy rain, ice pallets, thunderstorm or fog.
	WeatherHeavyPrecip
)

// AllWeather lists the weather situations in display order.
var AllWeather = []WeatherSituation{WeatherClear, WeatherMist, WeatherLightPrecip, WeatherHeavyPrecip}

// Valid reports whether w is one of the four known codes.
func (w WeatherSituation) Valid() bool {
	return w >= WeatherClear && w <= WeatherHeavyPrecip
}

// Index returns the zero-based position of w in AllWeather.
func (w WeatherSituation) Index() int {
	return int(w) - 1
}

// Key returns the stable identifier used for translations.
func (w WeatherSituation) Key() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherMist:
		return "mist"
	case WeatherLightPrecip:
		return "light_precip"
	case WeatherHeavyPrecip:
		return "heavy_precip"
	default:
		return "unknown"
	}
}

// String returns the English display name.
func (w WeatherSituation) String() string {
	switch w {
	case WeatherClear:
		return "Clear/Partly Cloudy"
	case WeatherMist:
		return "Mist/Cloudy"
	case WeatherLightPrecip:
		return "Light Rain/Snow"
	case WeatherHeavyPrecip:
		return "Heavy Rain/Extreme"
	default:
		return "Unknown"
	}
}

// WeatherCategoryOf maps a raw weathersit code to its cross-tab category.
// Codes other than 1-3 fall into the extreme category.
func WeatherCategoryOf(code int) WeatherSituation {
	switch WeatherSituation(code) {
	case WeatherClear, WeatherMist, WeatherLightPrecip:
		return WeatherSituation(code)
	default:
		return WeatherHeavyPrecip
	}
}

// TimeOfDay buckets hours of the day.
type TimeOfDay int

const (
	// TimeMorning covers 06:00-09:59.
	TimeMorning TimeOfDay = iota
	// TimeMidday covers 10:00-15:59.
	TimeMidday
	// TimeAfternoon covers 16:00-19:59.
	TimeAfternoon
	// TimeNight covers 20:00-05:59.
	TimeNight
)

// AllTimesOfDay lists the categories in display order.
var AllTimesOfDay = []TimeOfDay{TimeMorning, TimeMidday, TimeAfternoon, TimeNight}

// TimeOfDayOf returns the category for an hour 0-23.
func TimeOfDayOf(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 10:
		return TimeMorning
	case hour >= 10 && hour < 16:
		return TimeMidday
	case hour >= 16 && hour < 20:
		return TimeAfternoon
	default:
		return TimeNight
	}
}

// Key returns the stable identifier used for translations.
func (t TimeOfDay) Key() string {
	switch t {
	case TimeMorning:
		return "morning"
	case TimeMidday:
		return "midday"
	case TimeAfternoon:
		return "afternoon"
	case TimeNight:
		return "night"
	default:
		return "unknown"
	}
}

// String returns the English display name.
func (t TimeOfDay) String() string {
	switch t {
	case TimeMorning:
		return "Morning"
	case TimeMidday:
		return "Midday"
	case TimeAfternoon:
		return "Afternoon"
	case TimeNight:
		return "Night"
	default:
		return "Unknown"
	}
}

// YearFilter restricts aggregations to one year of the dataset.
type YearFilter int

const (
	// YearAll includes every row.
	YearAll YearFilter = iota
	// Year2011 includes rows with yr = 0.
	Year2011
	// Year2012 includes rows with yr = 1.
	Year2012
)

// String returns the display name for a year filter.
func (y YearFilter) String() string {
	switch y {
	case Year2011:
		return "2011"
	case Year2012:
		return "2012"
	default:
		return "2011-2012"
	}
}

// YearIndex returns the dataset yr value selected by the filter. ok is false
// for YearAll.
func (y YearFilter) YearIndex() (idx int, ok bool) {
	switch y {
	case Year2011:
		return 0, true
	case Year2012:
		return 1, true
	default:
		return 0, false
	}
}

// Next cycles to the next year filter.
func (y YearFilter) Next() YearFilter {
	return (y + 1) % 3
}

// ParseYearFilter parses "all", "2011" or "2012". The empty string means all.
func ParseYearFilter(s string) (YearFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", YearAll.String():
		return YearAll, nil
	case "2011":
		return Year2011, nil
	case "2012":
		return Year2012, nil
	}
	return YearAll, fmt.Errorf("unknown year %q: want all, 2011 or 2012", s)
}
