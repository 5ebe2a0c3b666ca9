package chat

import (
	"regexp"
	"strings"
)

// subjectPatterns are tried in order against the raw query text; the
// first pattern that matches wins and later ones are never consulted,
// even if the captured group trims down to nothing. Matching is
// case-insensitive so the capture keeps the user's original casing.
var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for\s+([a-z0-9\s]+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)of\s+([a-z0-9\s]+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)with\s+([a-z0-9\s]+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)([a-z0-9\s]+?)\s+project`),
	regexp.MustCompile(`(?i)([a-z0-9\s]+?)\s+status`),
}

// ExtractSubject pulls a candidate project or client name out of free
// text. It returns the empty string when no pattern matches or the
// first matching pattern captured only whitespace. This is a greedy
// heuristic, not a parser: multi-clause text yields whatever the first
// pattern captures up to the next delimiter.
func ExtractSubject(text string) string {
	text = strings.TrimSpace(text)
	for _, pattern := range subjectPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}
