package extract

import (
	"regexp"
	"strings"
)

var (
	leadingBoldQuote = regexp.MustCompile(`^\*\*\s*>\s*`)
	leadingEmphasis  = regexp.MustCompile(`^\*+\s*`)
	leadingQuote     = regexp.MustCompile(`^>\s*`)
	trailingEmphasis = regexp.MustCompile(`\s*\*+$`)
)

// stripMarkup removes residual chat-style markup from a candidate answer:
// a leading bold+quote combination, leading runs of emphasis characters, a
// leading block-quote marker, and trailing runs of emphasis characters.
// Every cascade rule applies this before testing non-emptiness so that a
// section containing only markup falls through to the next rule.
func stripMarkup(s string) string {
	s = strings.TrimSpace(s)
	s = leadingBoldQuote.ReplaceAllString(s, "")
	s = leadingEmphasis.ReplaceAllString(s, "")
	s = leadingQuote.ReplaceAllString(s, "")
	s = trailingEmphasis.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
