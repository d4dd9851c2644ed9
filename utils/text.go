package utils

import (
	"regexp"
	"strings"
)

var (
	brMarker = regexp.MustCompile(`(?i)<br\s*/?\s*>`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// BrToNewline converts embedded line-break markers into literal newlines.
func BrToNewline(s string) string {
	return brMarker.ReplaceAllString(s, "\n")
}

// CollapseWhitespace trims a name and collapses inner whitespace runs to
// single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// StripLeadingZeros normalizes a zero-padded numeric identifier. An
// all-zero or empty input yields the empty string.
func StripLeadingZeros(id string) string {
	return strings.TrimLeft(id, "0")
}
