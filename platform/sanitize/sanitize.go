// Package sanitize provides text sanitization utilities for user-supplied input.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	// alnumRegex keeps letters and digits only
	alnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// StripHTML removes all HTML tags from a string, making it safe for text-only
// display and storage. This is a defense-in-depth measure; the document
// renderer escapes its output independently.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Text sanitizes a string for safe text storage by stripping HTML
// and trimming whitespace. Use for user-provided free-text fields like
// item descriptions and notes.
func Text(s string) string {
	return StripHTML(s)
}

// FileStem reduces a user-supplied name to an alphanumeric-only token
// capped at maxLen runes, for use inside attachment filenames.
func FileStem(s string, maxLen int) string {
	stem := alnumRegex.ReplaceAllString(s, "")
	if maxLen > 0 && len(stem) > maxLen {
		stem = stem[:maxLen]
	}
	if stem == "" {
		return "lead"
	}
	return stem
}
