package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/db"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

const dayCSV = `instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt
1,2011-01-01,1,0,1,0,6,0,2,0.344167,0.363625,0.805833,0.160446,331,654,985
2,2011-01-02,1,0,1,0,0,0,2,0.363478,0.353739,0.696087,0.248539,131,670,801
`

const hourCSV = `instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt
1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0,3,13,16
2,2011-01-01,1,0,1,1,0,6,0,1,0.22,0.2727,0.8,0,8,32,40
3,2011-01-01,1,0,1,2,0,6,0,1,0.22,0.2727,0.8,0,5,27,32
`

func newTestService(t *testing.T) (*Service, *db.DB, string) {
	t.Helper()
	dir := t.TempDir()

	database, err := db.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	writeCSV(t, filepath.Join(dir, "day.csv"), dayCSV)
	writeCSV(t, filepath.Join(dir, "hour.csv"), hourCSV)

	svc := New(database, filepath.Join(dir, "day.csv"), filepath.Join(dir, "hour.csv"))
	t.Cleanup(func() { _ = svc.Close() })
	return svc, database, dir
}

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoad(t *testing.T) {
	svc, database, _ := newTestService(t)

	res, err := svc.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !res.DaysReloaded || !res.HoursReloaded {
		t.Errorf("expected both tables reloaded, got %+v", res)
	}
	if res.DayRows != 2 || res.HourRows != 3 {
		t.Errorf("unexpected row counts: %+v", res)
	}

	stats, err := database.DatasetStats(models.YearAll)
	if err != nil {
		t.Fatalf("DatasetStats() failed: %v", err)
	}
	if stats.DayRows != 2 || stats.HourRows != 3 {
		t.Errorf("unexpected stored rows: days=%d hours=%d", stats.DayRows, stats.HourRows)
	}
	if !filepath.IsAbs(stats.DaySource.Path) {
		t.Errorf("expected absolute source path, got %s", stats.DaySource.Path)
	}
}

func TestLoad_SkipsUnchanged(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	res, err := svc.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}
	if res.Changed() {
		t.Errorf("expected unchanged files to be skipped, got %+v", res)
	}

	res, err = svc.Load(context.Background(), true)
	if err != nil {
		t.Fatalf("forced Load() failed: %v", err)
	}
	if !res.DaysReloaded || !res.HoursReloaded {
		t.Errorf("expected forced load to reimport, got %+v", res)
	}
}

func TestLoad_ReloadsChangedFile(t *testing.T) {
	svc, _, dir := newTestService(t)

	if _, err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	writeCSV(t, filepath.Join(dir, "hour.csv"), hourCSV+"4,2011-01-01,1,0,1,3,0,6,0,1,0.24,0.2879,0.75,0,3,10,13\n")

	res, err := svc.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if res.DaysReloaded {
		t.Error("daily file did not change and should be skipped")
	}
	if !res.HoursReloaded || res.HourRows != 4 {
		t.Errorf("expected hourly file reloaded with 4 rows, got %+v", res)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	svc, _, dir := newTestService(t)
	if err := os.Remove(filepath.Join(dir, "hour.csv")); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	_, err := svc.Load(context.Background(), false)
	if !errors.Is(err, dataset.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	svc, _, dir := newTestService(t)
	writeCSV(t, filepath.Join(dir, "day.csv"), strings.Replace(dayCSV, ",985", ",lots", 1))

	_, err := svc.Load(context.Background(), false)
	var pe *dataset.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *dataset.ParseError, got %v", err)
	}
	if pe.Column != "cnt" || pe.Line != 2 {
		t.Errorf("unexpected parse error location: %+v", pe)
	}
}

func TestLoad_BadHourKeepsDays(t *testing.T) {
	svc, database, dir := newTestService(t)

	if _, err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	writeCSV(t, filepath.Join(dir, "day.csv"), dayCSV+"3,2011-01-03,1,0,1,0,1,1,1,0.196364,0.189405,0.437273,0.248309,120,1229,1349\n")
	writeCSV(t, filepath.Join(dir, "hour.csv"), hourCSV+"4,2011-01-01,1,0,1,3,0,6,0,1,x,0.2879,0.75,0,3,10,13\n")

	_, err := svc.Load(context.Background(), false)
	var pe *dataset.ParseError
	if !errors.As(err, &pe) || pe.Column != "temp" {
		t.Fatalf("expected temp parse error, got %v", err)
	}

	stats, err := database.DatasetStats(models.YearAll)
	if err != nil {
		t.Fatalf("DatasetStats() failed: %v", err)
	}
	if stats.DayRows != 2 || stats.HourRows != 3 {
		t.Errorf("failed load changed the store: days=%d hours=%d", stats.DayRows, stats.HourRows)
	}

	// The daily file is still pending and imports once the hourly file is fixed.
	writeCSV(t, filepath.Join(dir, "hour.csv"), hourCSV)
	res, err := svc.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !res.DaysReloaded || res.DayRows != 3 {
		t.Errorf("expected daily file reloaded with 3 rows, got %+v", res)
	}
}

func TestLoad_AfterClose(t *testing.T) {
	svc, _, _ := newTestService(t)
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if _, err := svc.Load(context.Background(), false); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	// A debounced reload firing after Close must not emit an event.
	svc.handleFileChange()
	select {
	case ev := <-svc.Events():
		t.Errorf("unexpected event after Close: %+v", ev)
	default:
	}
}

func TestWatchFileChange(t *testing.T) {
	svc, _, dir := newTestService(t)

	if _, err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := svc.StartWatching(); err != nil {
		t.Fatalf("StartWatching() failed: %v", err)
	}

	writeCSV(t, filepath.Join(dir, "day.csv"), dayCSV+"3,2011-01-03,1,0,1,0,1,1,1,0.196364,0.189405,0.437273,0.248309,120,1229,1349\n")

	timeout := time.After(3 * time.Second)
	for {
		select {
		case event := <-svc.Events():
			if event.Type == EventError {
				t.Fatalf("unexpected error event: %v", event.Error)
			}
			if event.Type == EventLoaded {
				if !event.Result.DaysReloaded || event.Result.DayRows != 3 {
					t.Errorf("unexpected result: %+v", event.Result)
				}
				return
			}
		case <-timeout:
			t.Fatal("timeout waiting for EventLoaded")
		}
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	svc, _, dir := newTestService(t)
	if err := svc.StartWatching(); err != nil {
		t.Fatalf("StartWatching() failed: %v", err)
	}

	writeCSV(t, filepath.Join(dir, "notes.txt"), "hello")

	select {
	case event := <-svc.Events():
		t.Errorf("unexpected event for unrelated file: %+v", event)
	case <-time.After(debounceInterval * 3):
	}
}

func TestSendEvent_Full(t *testing.T) {
	svc, _, _ := newTestService(t)

	for i := 0; i < 110; i++ {
		svc.sendEvent(Event{Type: EventLoaded})
	}

	if len(svc.Events()) != 100 {
		t.Errorf("expected 100 events, got %d", len(svc.Events()))
	}
}

func TestClose_Idempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	if err := svc.StartWatching(); err != nil {
		t.Fatalf("StartWatching() failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
