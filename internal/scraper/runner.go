package scraper

import (
	"context"
	"fmt"
	"io"

	"github.com/jonesrussell/newswatch/internal/browser"
	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
)

// totalSteps is the number of coarse progress steps reported on stdout.
const totalSteps = 3

// Navigator is the page-level surface of the browser session.
type Navigator interface {
	Navigate(ctx context.Context, pageURL string) (browser.Page, error)
	Close()
}

// ArticleSink persists one extracted article.
type ArticleSink interface {
	Append(article *Article) error
}

// Runner drives the whole pipeline: open site, search, extract, persist.
// The browser session is owned by the run and released on every exit path.
type Runner struct {
	session   Navigator
	extractor *Extractor
	sink      ArticleSink
	cfg       config.ScraperConfig
	log       logger.Interface
	progress  io.Writer
}

// NewRunner wires the pipeline together. The progress writer receives one
// coarse line per completed step; pass os.Stdout in production.
func NewRunner(
	session Navigator,
	extractor *Extractor,
	sink ArticleSink,
	cfg config.ScraperConfig,
	log logger.Interface,
	progress io.Writer,
) *Runner {
	return &Runner{
		session:   session,
		extractor: extractor,
		sink:      sink,
		cfg:       cfg,
		log:       log,
		progress:  progress,
	}
}

// Run executes the pipeline once. Step failures propagate to the caller;
// the session is closed regardless of outcome.
func (r *Runner) Run(ctx context.Context) error {
	defer r.session.Close()

	r.log.Info("Starting news scrape", "phrase", r.cfg.SearchPhrase)

	if err := r.openSite(ctx); err != nil {
		return err
	}
	r.reportProgress(1)

	page, err := r.search(ctx)
	if err != nil {
		return err
	}
	r.reportProgress(2)

	article, err := r.extractor.Extract(ctx, page, r.cfg.SearchPhrase)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := r.sink.Append(article); err != nil {
		return fmt.Errorf("failed to persist article: %w", err)
	}
	r.reportProgress(totalSteps)

	r.log.Info("News scrape completed")
	return nil
}

// openSite loads the landing page. The site sets session cookies here that
// the search endpoint expects.
func (r *Runner) openSite(ctx context.Context) error {
	r.log.Info("Opening site", "url", r.cfg.BaseURL)
	if _, err := r.session.Navigate(ctx, r.cfg.BaseURL); err != nil {
		return fmt.Errorf("failed to open site: %w", err)
	}
	return nil
}

// search loads the results page for the configured phrase, newest-first.
func (r *Runner) search(ctx context.Context) (browser.Page, error) {
	resultsURL, err := r.cfg.SearchResultsURL()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	r.log.Info("Searching for news", "phrase", r.cfg.SearchPhrase, "url", resultsURL)
	page, err := r.session.Navigate(ctx, resultsURL)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return page, nil
}

// reportProgress writes a coarse progress line and logs it.
func (r *Runner) reportProgress(step int) {
	msg := fmt.Sprintf("Progress: %d/%d steps completed.", step, totalSteps)
	r.log.Info(msg)
	if r.progress != nil {
		fmt.Fprintln(r.progress, msg)
	}
}
