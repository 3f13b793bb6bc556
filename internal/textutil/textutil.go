// Package textutil provides small text helpers for building excerpts of
// transcripts and draft bodies.
package textutil

import "strings"

// Truncate cuts text to at most limit runes, appending an ellipsis when
// anything was removed.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Excerpt collapses whitespace runs to single spaces and truncates, producing
// a one-line preview suitable for tables.
func Excerpt(text string, limit int) string {
	return Truncate(strings.Join(strings.Fields(text), " "), limit)
}
