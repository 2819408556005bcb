// Package main is the entry point for the bike rental dashboard.
// The root command runs the TUI; subcommands export charts and print
// summaries without a terminal UI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/app"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/config"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/tabs/info"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/tabs/report"
)

// options holds flag values that override the loaded configuration.
type options struct {
	dayPath   string
	hourPath  string
	dbPath    string
	language  string
	exportDir string
	noWatch   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "brd",
		Short: "Bike sharing rental dashboard",
		Long: `Interactive terminal dashboard for the daily and hourly bike sharing
rental dataset (day.csv and hour.csv).

Charts:
  1  Average rentals by weather condition
  2  Total rentals by month
  3  Total rentals by weekday and hour
  4  Average rentals by time of day and weather
  5  Dataset information

Configuration is read from .env in the working directory or
~/.config/bike-rental-dashboard/.env, then from the environment:
  DAY_CSV_PATH, HOUR_CSV_PATH, DATABASE_PATH, DASHBOARD_LANG (id|en),
  EXPORT_DIR, WATCH_FILES, DESKTOP_NOTIFY, LOG_LEVEL, LOG_FILE.
Flags override both.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dayPath, "day", "", "daily CSV file")
	flags.StringVar(&opts.hourPath, "hour", "", "hourly CSV file")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite cache file")
	flags.StringVar(&opts.language, "lang", "", "interface language ("+strings.Join(i18n.Available(), ", ")+")")
	flags.StringVar(&opts.exportDir, "export-dir", "", "directory for exported charts")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not reload when the CSV files change")

	cmd.AddCommand(
		newExportCmd(opts),
		newSummaryCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig loads the configuration, applies flag overrides and sets the
// interface language.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.dayPath != "" {
		cfg.DayCSVPath = opts.dayPath
	}
	if opts.hourPath != "" {
		cfg.HourCSVPath = opts.hourPath
	}
	if opts.dbPath != "" {
		cfg.DatabasePath = opts.dbPath
	}
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if opts.exportDir != "" {
		cfg.ExportDir = opts.exportDir
	}
	if opts.noWatch {
		cfg.WatchFiles = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	i18n.Init(cfg.Language)
	return cfg, nil
}

// runTUI runs the interactive dashboard until the user quits.
func runTUI(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logCloser := logger.Init(cfg.Log)
	defer func() { _ = logCloser.Close() }()

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("Error closing services", "error", closeErr)
		}
	}()

	model := app.NewModel(svcManager)
	state := model.GetState()

	md := components.NewMarkdownRenderer(markdownStyle())
	model.SetTabs([]app.Tab{
		report.New(state, models.ReportWeather, md),
		report.New(state, models.ReportMonthly, md),
		report.New(state, models.ReportHourWeekday, md),
		report.New(state, models.ReportTimeWeather, md),
		info.New(state, cfg),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// markdownStyle picks the glamour style matching the terminal background.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
