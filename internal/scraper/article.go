// Package scraper implements the extraction pipeline: locate the newest
// search result, pull its fields, resolve and download the image, classify
// the text, and hand the finished record to the sink.
package scraper

// Article is the single record produced by one run. It is assembled once by
// the extractor and not modified afterwards.
type Article struct {
	// Title of the result; non-empty when extraction succeeds normally.
	Title string
	// Date is the raw display string from the result, not parsed.
	Date string
	// Description may be empty.
	Description string
	// ImageFilename is the local filename of the downloaded image, or
	// empty when no image could be resolved or fetched.
	ImageFilename string
	// SearchPhraseCount is the case-insensitive occurrence count of the
	// search phrase across title and description.
	SearchPhraseCount int
	// ContainsMoney reports whether any monetary pattern matched the
	// title or description.
	ContainsMoney bool
}
