// Package loader imports the rental CSV files into the database and reloads
// them when they change on disk.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/db"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

// debounceInterval groups the burst of write events an editor or a copy
// produces into one reload.
const debounceInterval = 250 * time.Millisecond

// Store persists imported records. *db.DB implements it.
type Store interface {
	ReplaceDays(ctx context.Context, records []models.DayRecord, src models.SourceInfo) error
	ReplaceHours(ctx context.Context, records []models.HourRecord, src models.SourceInfo) error
	SourceUpToDate(name, path string, size int64, modTime time.Time) (bool, error)
}

// Event represents a loader event.
type Event struct {
	Type   EventType
	Error  error
	Result *Result
}

// EventType defines the type of loader event.
type EventType int

const (
	EventLoaded EventType = iota
	EventError
)

// Result describes one load.
type Result struct {
	DayRows       int
	HourRows      int
	DaysReloaded  bool
	HoursReloaded bool
	Duration      time.Duration
}

// Changed reports whether either table was reimported.
func (r *Result) Changed() bool {
	return r != nil && (r.DaysReloaded || r.HoursReloaded)
}

// Service loads the daily and hourly files into a Store.
type Service struct {
	mu            sync.Mutex
	loadMu        sync.Mutex
	store         Store
	dayPath       string
	hourPath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	stopOnce      sync.Once
	debounceTimer *time.Timer
}

// New creates a loader for the given files.
func New(store Store, dayPath, hourPath string) *Service {
	return &Service{
		store:     store,
		dayPath:   dayPath,
		hourPath:  hourPath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}
}

// Events returns the channel of watcher-triggered load events.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Paths returns the daily and hourly file paths.
func (s *Service) Paths() (day, hour string) {
	return s.dayPath, s.hourPath
}

// ErrClosed is returned by Load after Close.
var ErrClosed = errors.New("loader closed")

// Load imports both files. Unless force is set, a file whose path, size and
// modification time match the last import is skipped. Both files are parsed
// before either table is replaced, so a parse error leaves the store as it
// was.
func (s *Service) Load(ctx context.Context, force bool) (*Result, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	select {
	case <-s.stopChan:
		return nil, ErrClosed
	default:
	}

	start := time.Now()
	res := &Result{}

	dayInfo, err := stat(s.dayPath)
	if err != nil {
		return nil, err
	}
	hourInfo, err := stat(s.hourPath)
	if err != nil {
		return nil, err
	}

	res.DaysReloaded, err = s.needsReload(db.SourceDays, dayInfo, force)
	if err != nil {
		return nil, err
	}
	res.HoursReloaded, err = s.needsReload(db.SourceHours, hourInfo, force)
	if err != nil {
		return nil, err
	}

	var (
		days  []models.DayRecord
		hours []models.HourRecord
	)
	if res.DaysReloaded {
		if days, err = dataset.LoadDays(s.dayPath); err != nil {
			return nil, err
		}
	}
	if res.HoursReloaded {
		if hours, err = dataset.LoadHours(s.hourPath); err != nil {
			return nil, err
		}
	}

	if res.DaysReloaded {
		dayInfo.Rows = len(days)
		if err := s.store.ReplaceDays(ctx, days, dayInfo); err != nil {
			return nil, fmt.Errorf("failed to store daily data: %w", err)
		}
		res.DayRows = len(days)
	}
	if res.HoursReloaded {
		hourInfo.Rows = len(hours)
		if err := s.store.ReplaceHours(ctx, hours, hourInfo); err != nil {
			return nil, fmt.Errorf("failed to store hourly data: %w", err)
		}
		res.HourRows = len(hours)
	}

	res.Duration = time.Since(start)
	logger.Info("Dataset loaded",
		"days_reloaded", res.DaysReloaded,
		"hours_reloaded", res.HoursReloaded,
		"day_rows", res.DayRows,
		"hour_rows", res.HourRows,
		"duration", res.Duration,
	)
	return res, nil
}

func (s *Service) needsReload(name string, info models.SourceInfo, force bool) (bool, error) {
	if force {
		return true, nil
	}
	upToDate, err := s.store.SourceUpToDate(name, info.Path, info.Size, info.ModTime)
	if err != nil {
		return false, fmt.Errorf("failed to check %s source: %w", name, err)
	}
	return !upToDate, nil
}

func stat(path string) (models.SourceInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fi, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.SourceInfo{}, fmt.Errorf("%w: %s", dataset.ErrFileNotFound, path)
		}
		return models.SourceInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return models.SourceInfo{
		Path:     abs,
		Size:     fi.Size(),
		ModTime:  fi.ModTime(),
		LoadedAt: time.Now(),
	}, nil
}

// StartWatching watches the directories of both files and reloads when
// either file is written or created.
func (s *Service) StartWatching() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := map[string]bool{
		filepath.Dir(absPath(s.dayPath)):  true,
		filepath.Dir(absPath(s.hourPath)): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			if closeErr := watcher.Close(); closeErr != nil {
				logger.Error("failed to close watcher", "error", closeErr)
			}
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go s.watchLoop(watcher)
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (s *Service) isWatched(name string) bool {
	name = absPath(name)
	return name == absPath(s.dayPath) || name == absPath(s.hourPath)
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if !s.isWatched(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				s.mu.Lock()
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, s.handleFileChange)
				s.mu.Unlock()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange reloads the dataset after an external change.
func (s *Service) handleFileChange() {
	select {
	case <-s.stopChan:
		return
	default:
	}

	res, err := s.Load(context.Background(), false)
	if errors.Is(err, ErrClosed) {
		return
	}
	if err != nil {
		logger.Warn("Reload after file change failed", "error", err)
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}
	if !res.Changed() {
		return
	}
	s.sendEvent(Event{Type: EventLoaded, Result: res})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources. It waits for a
// load in progress to finish.
func (s *Service) Close() error {
	s.stopOnce.Do(func() { close(s.stopChan) })

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		err := s.watcher.Close()
		s.watcher = nil
		return err
	}
	return nil
}
