package parser

import (
	"regexp"
	"strings"
)

var (
	reSpaceRuns   = regexp.MustCompile(`[^\S\n]+`)
	reNewlineRuns = regexp.MustCompile(`\n+`)
)

// Normalize collapses runs of whitespace to a single space, runs of newlines
// to a single newline, trims and lowercases. All keyword and pattern matching
// runs against normalized text. Identity fields (name, email, phone) must be
// extracted from the original text instead: capitalization is a signal for
// name detection, and the email/phone patterns are case-insensitive by flag.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = reSpaceRuns.ReplaceAllString(text, " ")
	text = reNewlineRuns.ReplaceAllString(text, "\n")
	return strings.ToLower(strings.TrimSpace(text))
}
