package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/config"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/version"
)

const summaryWidth = 80

func newExportCmd(opts *options) *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all charts as PNG files",
		Long: `Loads the CSV files and writes weather.png, monthly.png,
hour_weekday.png and time_weather.png to the export directory.
With --year the file names carry the year, for example monthly_2011.png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := models.ParseYearFilter(year)
			if err != nil {
				return err
			}

			mgr, err := batchManager(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer mgr.Close()

			paths, err := mgr.ExportAll(filter)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("nothing to export for %s", filter)
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "all", "year to export (all, 2011 or 2012)")
	return cmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	var (
		year  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the summary of every chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := models.ParseYearFilter(year)
			if err != nil {
				return err
			}

			mgr, err := batchManager(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer mgr.Close()

			style := markdownStyle()
			if plain {
				style = "notty"
			}
			return printSummaries(cmd.OutOrStdout(), mgr, filter, components.NewMarkdownRenderer(style))
		},
	}

	cmd.Flags().StringVar(&year, "year", "all", "year to summarize (all, 2011 or 2012)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

// batchManager loads the configuration for a one-shot subcommand and
// imports the dataset. Watching and desktop notifications stay off.
func batchManager(ctx context.Context, opts *options) (*services.Manager, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger.InitStderr(cfg.Log.Level)

	return openDataset(ctx, cfg)
}

func openDataset(ctx context.Context, cfg *config.Config) (*services.Manager, error) {
	batch := *cfg
	batch.WatchFiles = false
	batch.DesktopNotify = false

	mgr, err := services.NewManager(&batch)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if _, _, err := mgr.Reload(ctx, false); err != nil {
		_ = mgr.Close()
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return mgr, nil
}

func printSummaries(w io.Writer, mgr *services.Manager, filter models.YearFilter, md *components.MarkdownRenderer) error {
	reports, err := mgr.Reports(filter)
	if err != nil {
		return fmt.Errorf("failed to build reports: %w", err)
	}

	fmt.Fprintln(w, i18n.T("filter.year", map[string]any{"Year": filter.String()}))
	for _, r := range reports {
		doc := "## " + r.Title() + "\n\n" + r.Summary()
		out, err := md.Render(doc, summaryWidth)
		if err != nil {
			logger.Warn("Markdown render failed", "report", r.Kind.Key(), "error", err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
