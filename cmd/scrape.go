package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jjf3/rewindos-christmas-episodes/internal/config"
	"github.com/jjf3/rewindos-christmas-episodes/internal/fetcher"
	"github.com/jjf3/rewindos-christmas-episodes/internal/logging"
	"github.com/jjf3/rewindos-christmas-episodes/internal/pipeline"
	"github.com/jjf3/rewindos-christmas-episodes/internal/wiki"
)

// newScrapeCmd creates and configures the 'scrape' subcommand, which runs
// the whole pipeline once and exits.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Runs the scrape once and writes the CSV/PNG artifacts",
		Long: `Fetches the source article, extracts dated list entries, filters
animation sections and specials, aggregates counts by year, and writes
the tabular and chart outputs. There are no retries; any fetch or parse
failure aborts the run.`,
		RunE: runScrapeCommand,
	}
	return cmd
}

func runScrapeCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	f := fetcher.New(fetcher.Config{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Source.RequestTimeout,
	}, logger.Named("fetcher"))

	p := pipeline.New(cfg, f, logger)
	if err := p.Run(cmd.Context()); err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoData):
			// Graceful: the proof file is already on disk.
			logger.Warn("no rows captured; check network access or page structure")
			return nil
		case errors.Is(err, wiki.ErrStructure):
			return fmt.Errorf("source page layout drifted: %w", err)
		default:
			return err
		}
	}

	logger.Info("scrape complete", zap.String("data_dir", cfg.Output.DataDir), zap.String("out_dir", cfg.Output.OutDir))
	return nil
}
