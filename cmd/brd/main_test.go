package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/version"
)

const dayCSV = `instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt
1,2011-01-01,1,0,1,0,6,0,2,0.344167,0.363625,0.805833,0.160446,331,654,985
2,2011-01-02,1,0,1,0,0,0,2,0.363478,0.353739,0.696087,0.248539,131,670,801
3,2011-01-03,1,0,1,0,1,1,1,0.196364,0.189405,0.437273,0.248309,120,1229,1349
`

const hourCSV = `instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt
1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0,3,13,16
2,2011-01-01,1,0,1,8,0,6,0,1,0.22,0.2727,0.8,0,8,32,40
3,2011-01-02,1,0,1,17,0,0,0,2,0.22,0.2727,0.8,0,5,27,32
`

// setupEnv writes the CSV fixtures and returns the common flags.
func setupEnv(t *testing.T) (dir string, args []string) {
	t.Helper()

	dir = t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DASHBOARD_LANG", "en")
	t.Setenv("LOG_LEVEL", "error")

	day := filepath.Join(dir, "day.csv")
	hour := filepath.Join(dir, "hour.csv")
	require.NoError(t, os.WriteFile(day, []byte(dayCSV), 0o600))
	require.NoError(t, os.WriteFile(hour, []byte(hourCSV), 0o600))

	return dir, []string{
		"--day", day,
		"--hour", hour,
		"--db", filepath.Join(dir, "cache", "rentals.db"),
		"--export-dir", filepath.Join(dir, "charts"),
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestExportCmd(t *testing.T) {
	dir, flags := setupEnv(t)

	out, err := execute(t, append([]string{"export"}, flags...)...)
	require.NoError(t, err, out)

	for _, name := range []string{"weather.png", "monthly.png", "hour_weekday.png", "time_weather.png"} {
		path := filepath.Join(dir, "charts", name)
		assert.FileExists(t, path)
		assert.Contains(t, out, path)
	}
}

func TestExportCmd_Year(t *testing.T) {
	dir, flags := setupEnv(t)

	_, err := execute(t, append([]string{"export", "--year", "2011"}, flags...)...)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "charts", "monthly_2011.png"))

	_, err = execute(t, append([]string{"export", "--year", "2012"}, flags...)...)
	assert.Error(t, err, "2012 has no rows in the fixture")

	_, err = execute(t, append([]string{"export", "--year", "1999"}, flags...)...)
	assert.Error(t, err)
}

func TestExportCmd_MissingFile(t *testing.T) {
	dir, flags := setupEnv(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "day.csv")))

	_, err := execute(t, append([]string{"export"}, flags...)...)
	assert.Error(t, err)
}

func TestSummaryCmd(t *testing.T) {
	_, flags := setupEnv(t)

	out, err := execute(t, append([]string{"summary", "--plain"}, flags...)...)
	require.NoError(t, err, out)

	for _, want := range []string{
		"Year: 2011-2012",
		"Average Rentals by Weather Condition",
		"Weather Summary",
		"Month Summary",
		"Hour and Day Summary",
		"Time and Weather Summary",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSummaryCmd_Indonesian(t *testing.T) {
	_, flags := setupEnv(t)

	out, err := execute(t, append([]string{"summary", "--plain", "--lang", "id"}, flags...)...)
	require.NoError(t, err, out)
	assert.NotContains(t, out, "Weather Summary")
}

func TestInvalidLanguage(t *testing.T) {
	_, flags := setupEnv(t)

	_, err := execute(t, append([]string{"summary", "--lang", "fr"}, flags...)...)
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	version.Version = "9.9.9"
	version.Commit = "deadbeef"
	t.Cleanup(version.Reset)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, version.Name+" 9.9.9"), out)
}
