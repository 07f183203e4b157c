package scraper

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jonesrussell/newswatch/internal/browser"
	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
)

// ResourceFetcher retrieves a raw resource by URL.
type ResourceFetcher interface {
	Fetch(ctx context.Context, resourceURL string) ([]byte, error)
}

// Extractor pulls one Article out of a search results page. Missing fields
// and image failures degrade to defaults; only an empty results list fails
// the extraction as a whole.
type Extractor struct {
	fetcher   ResourceFetcher
	selectors config.Selectors
	outputDir string
	log       logger.Interface
}

// NewExtractor creates an extractor that saves images under outputDir.
func NewExtractor(
	fetcher ResourceFetcher,
	selectors config.Selectors,
	outputDir string,
	log logger.Interface,
) *Extractor {
	return &Extractor{
		fetcher:   fetcher,
		selectors: selectors,
		outputDir: outputDir,
		log:       log,
	}
}

// Extract locates the first result on the page and assembles the Article.
// Returns ErrNoResults when the results list has no entries.
func (e *Extractor) Extract(ctx context.Context, page browser.Page, phrase string) (*Article, error) {
	item, ok := page.First(e.selectors.ResultItem)
	if !ok {
		return nil, ErrNoResults
	}

	title := e.textField(item, e.selectors.Title, "title")
	description := e.textField(item, e.selectors.Description, "description")
	date := e.textField(item, e.selectors.Timestamp, "date")

	article := &Article{
		Title:             title,
		Date:              date,
		Description:       description,
		ImageFilename:     e.fetchImage(ctx, item),
		SearchPhraseCount: CountPhrase(title, description, phrase),
		ContainsMoney:     ContainsMoney(title, description),
	}

	e.log.Info("Article extracted",
		"title", article.Title,
		"date", article.Date,
		"phrase_count", article.SearchPhraseCount,
		"contains_money", article.ContainsMoney,
	)
	return article, nil
}

// textField reads a text sub-field from the result item. A missing element
// yields an empty string, never an error.
func (e *Extractor) textField(item browser.Element, selector, name string) string {
	text := item.Text(selector)
	if text == "" {
		e.log.Warn("Result field missing, defaulting to empty",
			"field", name,
			"selector", selector,
		)
	}
	return text
}

// fetchImage resolves the result's image through the site relay, downloads it
// and saves it under the output directory. Every failure is absorbed: the
// article simply has no image filename.
func (e *Extractor) fetchImage(ctx context.Context, item browser.Element) string {
	src, ok := item.Attr(e.selectors.Image, "src")
	if !ok || src == "" {
		e.log.Warn("Result has no image element, skipping image download")
		return ""
	}

	imageURL, ok := ResolveImageURL(src)
	if !ok {
		e.log.Warn("Image relay URL carries no image URL, skipping image download",
			"src", src,
		)
		return ""
	}

	name := ImageFilename(imageURL)
	if name == "" {
		e.log.Warn("Image URL has no usable filename, skipping image download",
			"image_url", imageURL,
		)
		return ""
	}

	data, err := e.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		e.log.Warn("Failed to download image",
			"image_url", imageURL,
			"error", err,
		)
		return ""
	}

	dest := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		e.log.Warn("Failed to save image",
			"path", dest,
			"error", err,
		)
		return ""
	}

	e.log.Info("Image saved", "filename", name, "bytes", len(data))
	return name
}
