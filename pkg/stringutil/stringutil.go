// Package stringutil provides small string helpers shared across packages.
package stringutil

import "strings"

// Truncate shortens s to at most maxLen characters, appending "..." when
// content is dropped. For maxLen of 3 or less the string is cut without
// the ellipsis marker.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// ContainsIgnoreCase reports whether substr occurs in s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// NonBlankLines splits s on newlines, trims surrounding whitespace from
// each line, and returns the lines that still have content.
func NonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
