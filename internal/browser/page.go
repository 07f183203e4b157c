package browser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the read-only query surface over a fetched page. The extractor
// depends on this capability, not on the underlying HTTP or HTML machinery.
type Page interface {
	// First returns the first element matching the selector.
	First(selector string) (Element, bool)
}

// Element is a single located element within a page.
type Element interface {
	// Text returns the trimmed text of the first descendant matching the
	// selector, or the empty string if none matches.
	Text(selector string) string
	// Attr returns the named attribute of the first descendant matching
	// the selector. The second return value reports whether the element
	// and attribute were found.
	Attr(selector, name string) (string, bool)
}

// NewPageFromHTML parses raw HTML into a Page.
func NewPageFromHTML(html []byte) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &documentPage{doc: doc}, nil
}

// documentPage is a goquery-backed Page.
type documentPage struct {
	doc *goquery.Document
}

// First returns the first element matching the selector.
func (p *documentPage) First(selector string) (Element, bool) {
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &selectionElement{sel: sel}, true
}

// selectionElement is a goquery-backed Element.
type selectionElement struct {
	sel *goquery.Selection
}

// Text returns the trimmed text of the first matching descendant.
func (e *selectionElement) Text(selector string) string {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(found.Text())
}

// Attr returns the named attribute of the first matching descendant.
func (e *selectionElement) Attr(selector, name string) (string, bool) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return "", false
	}
	return found.Attr(name)
}
