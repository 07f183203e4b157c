package scraper

import "errors"

// ErrNoResults is returned when the search results list has no entries.
// It is fatal to the extraction step and propagates to the runner.
var ErrNoResults = errors.New("no search results found")
