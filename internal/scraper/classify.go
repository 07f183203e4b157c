package scraper

import (
	"regexp"
	"strings"
)

// moneyPatterns are tested in order against "title description". The shapes
// are deliberately literal: a dollar sign amount with optional thousands
// separators and an optional one- or two-digit decimal part, an integer
// followed by "dollars", or an integer followed by "USD".
var moneyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d[\d,]*\.?\d{0,2}`),
	regexp.MustCompile(`\d+ dollars`),
	regexp.MustCompile(`\d+ USD`),
}

// CountPhrase returns the case-insensitive occurrence count of phrase in the
// title plus the count in the description. Pure function of its inputs.
func CountPhrase(title, description, phrase string) int {
	if phrase == "" {
		return 0
	}
	needle := strings.ToLower(phrase)
	return strings.Count(strings.ToLower(title), needle) +
		strings.Count(strings.ToLower(description), needle)
}

// ContainsMoney reports whether any monetary pattern matches the combined
// title and description. Pure function of its inputs.
func ContainsMoney(title, description string) bool {
	text := title + " " + description
	for _, pattern := range moneyPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
