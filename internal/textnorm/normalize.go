// Package textnorm canonicalises raw post text before scoring and topic
// modeling. The passes run in a fixed order: URL-like tokens, then
// mention/hashtag tokens, then punctuation, then lowercasing and trimming.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`(?i)(https?\S+|www\S+)`)
	mentionRe = regexp.MustCompile(`[@#]\w+`)
	punctRe   = regexp.MustCompile(`[^\w\s]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize returns the canonical cleaned form of text. It is pure and
// idempotent; the output contains only lowercase alphanumerics and single
// spaces, with no leading or trailing whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = urlRe.ReplaceAllString(text, "")
	text = mentionRe.ReplaceAllString(text, "")
	text = punctRe.ReplaceAllString(text, "")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// NormalizeNullable treats a nil pointer as absent text. Absence is decided
// here once so downstream consumers never see a nil.
func NormalizeNullable(text *string) string {
	if text == nil {
		return ""
	}
	return Normalize(*text)
}
