// Package slug normalizes free-form label attributes into code segments.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespace   = regexp.MustCompile(`\s+`)
	invalidChars = regexp.MustCompile(`[^a-z0-9\-]`)
	multiHyphen  = regexp.MustCompile(`-{2,}`)
)

// Make lowercases s, collapses internal whitespace to single hyphens,
// strips everything outside [a-z0-9-] and collapses repeated hyphens.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespace.ReplaceAllString(s, "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return s
}

// Pad renders n as a zero-padded string of at least width digits.
func Pad(n int, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
