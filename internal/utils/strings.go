package utils

import (
	"regexp"
	"strings"
)

var (
	// control characters other than tab and newline
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B-\x1F\x7F\p{Cf}\p{Co}\p{Cs}]`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// SanitizeMessage strips control characters, collapses runs of blank
// lines and trims surrounding whitespace. Line breaks are kept.
func SanitizeMessage(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = controlChars.ReplaceAllString(s, "")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// MaskToken hides all but the edges of a credential for logging
func MaskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
