package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeText sanitizes multi-line free text (notes, remarks): HTML is
// escaped and control characters other than newlines and tabs are dropped.
func SanitizeText(input string) string {
	escaped := html.EscapeString(strings.TrimSpace(input))

	var result strings.Builder
	for _, r := range escaped {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// StripHTML removes HTML tags from a string.
func StripHTML(input string) string {
	return htmlTagPattern.ReplaceAllString(input, "")
}
