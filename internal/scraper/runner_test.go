package scraper_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/newswatch/internal/browser"
	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
	"github.com/jonesrussell/newswatch/internal/scraper"
)

// fakeNavigator serves a canned page for every URL and records navigation.
type fakeNavigator struct {
	page    browser.Page
	navErr  error
	visited []string
	closed  bool
}

func (n *fakeNavigator) Navigate(_ context.Context, pageURL string) (browser.Page, error) {
	n.visited = append(n.visited, pageURL)
	if n.navErr != nil {
		return nil, n.navErr
	}
	return n.page, nil
}

func (n *fakeNavigator) Close() {
	n.closed = true
}

// fakeSink records appended articles and optionally fails.
type fakeSink struct {
	articles []*scraper.Article
	err      error
}

func (s *fakeSink) Append(article *scraper.Article) error {
	if s.err != nil {
		return s.err
	}
	s.articles = append(s.articles, article)
	return nil
}

func runnerConfig() config.ScraperConfig {
	return config.ScraperConfig{
		BaseURL:      "https://news.test/",
		SearchURL:    "https://news.test/search",
		SearchPhrase: "ship",
		Selectors:    testSelectors(),
	}
}

func newRunner(
	t *testing.T,
	nav *fakeNavigator,
	sink *fakeSink,
	progress *bytes.Buffer,
) *scraper.Runner {
	t.Helper()

	cfg := runnerConfig()
	ext := scraper.NewExtractor(&fakeFetcher{data: []byte("img")}, cfg.Selectors, t.TempDir(), logger.NewNoOp())
	return scraper.NewRunner(nav, ext, sink, cfg, logger.NewNoOp(), progress)
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{page: newPage(t, resultsHTML)}
	sink := &fakeSink{}
	progress := &bytes.Buffer{}

	err := newRunner(t, nav, sink, progress).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.articles, 1)
	assert.Equal(t, "Cargo Ship Runs Aground Near Port", sink.articles[0].Title)

	require.Len(t, nav.visited, 2)
	assert.Equal(t, "https://news.test/", nav.visited[0])
	assert.Contains(t, nav.visited[1], "q=ship")

	assert.True(t, nav.closed)
	assert.Contains(t, progress.String(), "Progress: 3/3 steps completed.")
}

func TestRun_OpenFailureClosesSession(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{navErr: errors.New("dial tcp: connection refused")}
	sink := &fakeSink{}

	err := newRunner(t, nav, sink, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)

	assert.Empty(t, sink.articles)
	assert.True(t, nav.closed)
}

func TestRun_NoResultsPropagatesAndSkipsPersist(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{page: newPage(t, emptyResultsHTML)}
	sink := &fakeSink{}

	err := newRunner(t, nav, sink, &bytes.Buffer{}).Run(context.Background())
	assert.ErrorIs(t, err, scraper.ErrNoResults)

	assert.Empty(t, sink.articles)
	assert.True(t, nav.closed)
}

func TestRun_PersistFailureClosesSession(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{page: newPage(t, resultsHTML)}
	sink := &fakeSink{err: errors.New("disk full")}

	err := newRunner(t, nav, sink, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.True(t, nav.closed)
}
