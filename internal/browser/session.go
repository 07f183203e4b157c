// Package browser provides the HTTP session used to drive the target site.
// It replaces a real browser with plain fetches: pages are retrieved and
// parsed into a queryable DOM, resources are retrieved as raw bytes.
package browser

import (
	"context"
	"fmt"
	"net/http"
	"time"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
)

// HTTP transport defaults
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
)

// Session owns the network resources for one scraper run. It must be
// released with Close on every exit path.
type Session struct {
	cfg       config.ScraperConfig
	transport *http.Transport
	log       logger.Interface
	closed    bool
}

// NewSession creates a session configured for the target site.
func NewSession(cfg config.ScraperConfig, log logger.Interface) *Session {
	return &Session{
		cfg: cfg,
		transport: &http.Transport{
			MaxIdleConns:        defaultMaxIdleConns,
			MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
			IdleConnTimeout:     defaultIdleConnTimeout,
		},
		log: log,
	}
}

// newCollector builds a collector bound to the given context. Collectors are
// per-request because colly callbacks register on the collector itself.
func (s *Session) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(s.cfg.UserAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(s.cfg.RequestTimeout)
	c.WithTransport(s.transport)
	return c
}

// Navigate fetches the given URL and returns it as a queryable Page.
func (s *Session) Navigate(ctx context.Context, pageURL string) (Page, error) {
	body, err := s.get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", pageURL, err)
	}

	page, err := NewPageFromHTML(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	s.log.Debug("Page loaded", "url", pageURL, "bytes", len(body))
	return page, nil
}

// Fetch retrieves a raw resource such as an image.
func (s *Session) Fetch(ctx context.Context, resourceURL string) ([]byte, error) {
	body, err := s.get(ctx, resourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resource %s: %w", resourceURL, err)
	}
	return body, nil
}

// get performs a single blocking request and returns the response body.
func (s *Session) get(ctx context.Context, target string) ([]byte, error) {
	var (
		body     []byte
		fetchErr error
	)

	c := s.newCollector(ctx)
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(target); err != nil {
		return nil, err
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return body, nil
}

// Close releases the session's network resources. Safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.transport.CloseIdleConnections()
	s.log.Info("Browser session closed")
}
