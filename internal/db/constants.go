package db

// SQL fragments shared by the aggregation queries.
const (
	// sqlYearFilterClause restricts rows to one dataset year. Bind the year
	// index twice, or -1 for all years.
	sqlYearFilterClause = "(? < 0 OR yr = ?)"

	// sqlTimeCategory buckets hr into morning, midday, afternoon and night.
	// Values match models.TimeOfDay.
	sqlTimeCategory = `CASE
		WHEN hr >= 6 AND hr < 10 THEN 0
		WHEN hr >= 10 AND hr < 16 THEN 1
		WHEN hr >= 16 AND hr < 20 THEN 2
		ELSE 3
	END`

	// sqlWeatherCategory folds every code above 3 into the extreme category.
	// Values match models.WeatherSituation.
	sqlWeatherCategory = `CASE
		WHEN weathersit IN (1, 2, 3) THEN weathersit
		ELSE 4
	END`

	// sqlDateLayout is the storage format of dteday.
	sqlDateLayout = "2006-01-02"

	// schemaVersion is stored in PRAGMA user_version.
	schemaVersion = 1
)

// Source names recorded in dataset_meta.
const (
	SourceDays  = "days"
	SourceHours = "hours"
)
