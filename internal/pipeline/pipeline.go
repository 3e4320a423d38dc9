// Package pipeline wires the scrape stages together: proof marker, fetch,
// parse, extract, filter, aggregate, write.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jjf3/rewindos-christmas-episodes/internal/config"
	"github.com/jjf3/rewindos-christmas-episodes/internal/fetcher"
	"github.com/jjf3/rewindos-christmas-episodes/internal/filter"
	"github.com/jjf3/rewindos-christmas-episodes/internal/report"
	"github.com/jjf3/rewindos-christmas-episodes/internal/wiki"
)

// Output file names are fixed; the directories come from config.
const (
	allEntriesFile = "wiki_christmas_entries_all.csv"
	filteredFile   = "wiki_christmas_entries_filtered.csv"
	countsFile     = "wiki_christmas_counts_by_year.csv"
	chartFile      = "wiki_christmas_counts_by_year.png"
	proofFile      = "it_ran.txt"
)

// ErrNoData means extraction produced zero rows. Callers treat it as a
// warning, not a failure: the run ends gracefully with only the proof
// file written.
var ErrNoData = errors.New("no rows captured")

// Fetcher retrieves a raw page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (fetcher.Page, error)
}

// Pipeline runs one scrape end to end. It is sequential; the only
// suspension point is the network fetch.
type Pipeline struct {
	cfg    config.Config
	fetch  Fetcher
	logger *zap.Logger
}

// New builds a Pipeline.
func New(cfg config.Config, fetch Fetcher, logger *zap.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, fetch: fetch, logger: logger}
}

// Run executes the full pipeline. Fetch, parse, and output errors are
// fatal; ErrNoData is returned when extraction finds nothing; chart
// failures only log a warning.
func (p *Pipeline) Run(ctx context.Context) error {
	proofPath := filepath.Join(p.cfg.Output.OutDir, proofFile)
	if err := report.WriteProof(proofPath); err != nil {
		return fmt.Errorf("proof: %w", err)
	}
	p.logger.Info("wrote proof file", zap.String("path", proofPath))

	p.logger.Info("downloading", zap.String("url", p.cfg.Source.URL))
	page, err := p.fetch.Fetch(ctx, p.cfg.Source.URL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	p.logger.Info("downloaded", zap.Int("bytes", len(page.Body)))

	content, err := wiki.ParseContent(page.Body)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	entries, stats := wiki.Extract(content)
	p.logger.Info("scanned content",
		zap.Int("list_items", stats.ListItems),
		zap.Int("list_items_with_year", stats.ListItemsWithYear),
		zap.Int("rows_before_filtering", len(entries)))

	if len(entries) == 0 {
		return ErrNoData
	}

	filtered := filter.Specials(entries, p.cfg.Filter.SpecialsKeywords)
	p.logger.Info("filtered rows", zap.Int("rows_after_filtering", len(filtered)))

	counts := filter.CountByYear(filtered)
	p.logTopYears(counts)

	return p.writeOutputs(entries, filtered, counts)
}

// writeOutputs attempts every artifact independently so one failure never
// suppresses the others. CSV failures are collected and returned; a chart
// failure is only a warning.
func (p *Pipeline) writeOutputs(entries, filtered []wiki.Entry, counts []filter.YearCount) error {
	var writeErr error
	record := func(path string, err error) {
		if err != nil {
			p.logger.Error("write failed", zap.String("path", path), zap.Error(err))
			writeErr = multierr.Append(writeErr, err)
			return
		}
		p.logger.Info("wrote", zap.String("path", path))
	}

	allPath := filepath.Join(p.cfg.Output.DataDir, allEntriesFile)
	record(allPath, report.WriteEntriesCSV(allPath, entries))

	filteredPath := filepath.Join(p.cfg.Output.DataDir, filteredFile)
	record(filteredPath, report.WriteEntriesCSV(filteredPath, filtered))

	countsPath := filepath.Join(p.cfg.Output.DataDir, countsFile)
	record(countsPath, report.WriteCountsCSV(countsPath, counts))

	chartPath := filepath.Join(p.cfg.Output.OutDir, chartFile)
	if err := report.WriteChart(chartPath, counts, p.cfg.Chart.WidthInches, p.cfg.Chart.HeightInches); err != nil {
		p.logger.Warn("chart rendering failed; tabular outputs are unaffected",
			zap.String("path", chartPath), zap.Error(err))
	} else {
		p.logger.Info("wrote chart", zap.String("path", chartPath))
	}

	return writeErr
}

func (p *Pipeline) logTopYears(counts []filter.YearCount) {
	if len(counts) == 0 {
		return
	}
	top := counts
	if len(top) > 10 {
		top = top[:10]
	}
	p.logger.Info("top years", zap.Any("counts", top))
	p.logger.Info("year with the most episodes",
		zap.Int("year", counts[0].Year),
		zap.Int("count", counts[0].Count))
}
