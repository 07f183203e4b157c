package scraper

import (
	"net/url"
	"path"
)

// relayParam is the query parameter under which the site's image relay
// embeds the real, percent-encoded image URL.
const relayParam = "url"

// ResolveImageURL extracts the real image URL from a relay URL. The second
// return value is false when the relay carries no usable image URL; that is
// a "no image" outcome, not an error.
func ResolveImageURL(src string) (string, bool) {
	parsed, err := url.Parse(src)
	if err != nil {
		return "", false
	}
	// Query() percent-decodes parameter values.
	actual := parsed.Query().Get(relayParam)
	if actual == "" {
		return "", false
	}
	return actual, true
}

// ImageFilename derives a local filename from the final path segment of the
// resolved image URL. Returns the empty string when the URL has no usable
// path segment.
func ImageFilename(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return ""
	}
	return name
}
