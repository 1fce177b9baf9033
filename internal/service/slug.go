package service

import "strings"

// Slugify lowercases a label and collapses every whitespace run into a
// single hyphen. The same rule is applied whenever a page URL is
// derived from a navigation label.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(label))), "-")
}

// PageURLFromLabel derives the canonical page URL for a label.
func PageURLFromLabel(label string) string {
	return "/" + Slugify(label)
}
