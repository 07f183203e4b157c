// Package config provides the application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/newswatch/internal/logger"
)

// Default configuration values.
const (
	// DefaultRequestTimeout bounds every page and resource fetch.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultUserAgent identifies the scraper to the target site.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Common configuration errors.
var (
	ErrMissingBaseURL      = errors.New("scraper base URL is required")
	ErrMissingSearchPhrase = errors.New("search phrase is required")
	ErrMissingOutputDir    = errors.New("output directory is required")
)

// Config holds all settings for one scraper run. It is constructed once at
// startup and passed into the pipeline; nothing reads ambient state after that.
type Config struct {
	App     AppConfig
	Logger  logger.Config
	Scraper ScraperConfig
}

// AppConfig holds application metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ScraperConfig holds the settings for the target site and output location.
type ScraperConfig struct {
	// BaseURL is the site landing page, opened first.
	BaseURL string `mapstructure:"base_url"`
	// SearchURL is the search endpoint; the phrase is sent as the "q"
	// query parameter and results are requested newest-first.
	SearchURL string `mapstructure:"search_url"`
	// SearchPhrase is the fixed phrase searched for and counted.
	SearchPhrase string `mapstructure:"search_phrase"`
	// OutputDir receives the spreadsheet and any downloaded image.
	OutputDir string `mapstructure:"output_dir"`
	// RequestTimeout bounds each page or resource fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// UserAgent is sent on every request.
	UserAgent string `mapstructure:"user_agent"`
	// Selectors locate the pieces of the search results page.
	Selectors Selectors `mapstructure:"selectors"`
}

// Selectors holds the CSS selectors for the search results page.
type Selectors struct {
	// ResultItem matches the first entry in the results list.
	ResultItem string `mapstructure:"result_item"`
	// Title, Description and Timestamp are resolved within the result item.
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Timestamp   string `mapstructure:"timestamp"`
	// Image matches the result's thumbnail element.
	Image string `mapstructure:"image"`
}

// SearchResultsURL builds the results page URL for the configured phrase,
// sorted newest-first.
func (c *ScraperConfig) SearchResultsURL() (string, error) {
	u, err := url.Parse(c.SearchURL)
	if err != nil {
		return "", fmt.Errorf("invalid search URL %q: %w", c.SearchURL, err)
	}
	q := u.Query()
	q.Set("q", c.SearchPhrase)
	q.Set("s", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Load reads the configuration from viper. Defaults are set by the command
// bootstrap before this is called.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        viper.GetString("app.name"),
			Version:     viper.GetString("app.version"),
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Logger: logger.Config{
			Level:       viper.GetString("logger.level"),
			Encoding:    viper.GetString("logger.encoding"),
			Development: viper.GetBool("logger.development"),
		},
		Scraper: ScraperConfig{
			BaseURL:        viper.GetString("scraper.base_url"),
			SearchURL:      viper.GetString("scraper.search_url"),
			SearchPhrase:   viper.GetString("scraper.search_phrase"),
			OutputDir:      viper.GetString("scraper.output_dir"),
			RequestTimeout: viper.GetDuration("scraper.request_timeout"),
			UserAgent:      viper.GetString("scraper.user_agent"),
			Selectors: Selectors{
				ResultItem:  viper.GetString("scraper.selectors.result_item"),
				Title:       viper.GetString("scraper.selectors.title"),
				Description: viper.GetString("scraper.selectors.description"),
				Timestamp:   viper.GetString("scraper.selectors.timestamp"),
				Image:       viper.GetString("scraper.selectors.image"),
			},
		},
	}

	if cfg.Scraper.RequestTimeout <= 0 {
		cfg.Scraper.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = DefaultUserAgent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Scraper.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Scraper.SearchPhrase == "" {
		return ErrMissingSearchPhrase
	}
	if c.Scraper.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if _, err := url.Parse(c.Scraper.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.Scraper.BaseURL, err)
	}
	return nil
}
