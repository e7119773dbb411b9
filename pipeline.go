package shipdash

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Report describes a finished run.
type Report struct {
	// Records is the number of shipments read.
	Records int

	// Files lists the written files in the order they were written.
	Files []string
}

// chart is one dashboard view: how to aggregate the dataset and how to
// draw the result.
type chart struct {
	name  string
	file  string
	build func(ds *Dataset, cfg *Config, theme Theme) (*Figure, error)
}

var charts = []chart{
	{"warehouse", WarehouseFile, func(ds *Dataset, _ *Config, theme Theme) (*Figure, error) {
		counts, err := WarehouseCounts(ds)
		if err != nil {
			return nil, err
		}
		return WarehouseChart(counts, theme)
	}},
	{"mode", ModeFile, func(ds *Dataset, _ *Config, theme Theme) (*Figure, error) {
		counts, err := ModeCounts(ds)
		if err != nil {
			return nil, err
		}
		return ModeChart(counts, theme)
	}},
	{"rating", RatingFile, func(ds *Dataset, _ *Config, theme Theme) (*Figure, error) {
		stats, err := RatingByMode(ds)
		if err != nil {
			return nil, err
		}
		return RatingChart(stats, theme)
	}},
	{"weight", WeightFile, func(ds *Dataset, cfg *Config, theme Theme) (*Figure, error) {
		bins, err := WeightHistogram(ds, cfg.Bins)
		if err != nil {
			return nil, err
		}
		return WeightChart(bins, theme)
	}},
}

// Run builds the dashboard described by cfg: it creates the output
// directory, loads the input, writes the four charts and then the page.
// It stops at the first error; files written up to then are kept.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output directory: %v", ErrWrite, err)
	}

	ds, err := Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	if _, err := ds.Records(); err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.Input).Int("records", ds.Len()).Msg("Loaded dataset")

	theme := cfg.Theme()
	report := &Report{Records: ds.Len()}
	for _, c := range charts {
		fig, err := c.build(ds, &cfg, theme)
		if err != nil {
			return report, fmt.Errorf("%s chart: %w", c.name, err)
		}
		path := filepath.Join(cfg.OutputDir, c.file)
		if err := fig.Save(path); err != nil {
			return report, fmt.Errorf("%s chart: %w", c.name, err)
		}
		report.Files = append(report.Files, path)
		log.Debug().Str("chart", c.name).Str("file", path).Msg("Wrote chart")
	}

	if err := WritePage(cfg.OutputDir, DashboardPage(cfg.Title)); err != nil {
		return report, err
	}
	page := filepath.Join(cfg.OutputDir, PageFile)
	report.Files = append(report.Files, page)
	log.Info().Str("file", page).Int("files", len(report.Files)).Msg("Wrote dashboard")
	return report, nil
}
