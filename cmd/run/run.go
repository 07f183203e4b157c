// Package run implements the run command, which executes one scrape.
package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/newswatch/internal/browser"
	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
	"github.com/jonesrussell/newswatch/internal/scraper"
	"github.com/jonesrussell/newswatch/internal/storage"
)

// Command returns the run command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Scrape the newest article for the configured search phrase",
		RunE:  runScrape,
	}
}

// runScrape builds the pipeline and executes it once. Pipeline failures are
// logged and swallowed: the run is best-effort and the process exits 0.
// Setup failures (config, logger, output directory) are real errors.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if mkdirErr := os.MkdirAll(cfg.Scraper.OutputDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create output directory: %w", mkdirErr)
	}

	session := browser.NewSession(cfg.Scraper, log)
	extractor := scraper.NewExtractor(session, cfg.Scraper.Selectors, cfg.Scraper.OutputDir, log)
	sink := storage.NewExcelWriter(cfg.Scraper.OutputDir, log)
	runner := scraper.NewRunner(session, extractor, sink, cfg.Scraper, log, os.Stdout)

	if runErr := runner.Run(cmd.Context()); runErr != nil {
		log.Error("Scrape run failed", "error", runErr)
	}
	return nil
}
