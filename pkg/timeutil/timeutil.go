// Package timeutil provides compact duration formatting for log output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration in the shortest sensible unit,
// in the style of the npm debug package ("+12ms", "+1.3s").
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return trimZero(fmt.Sprintf("%.1fs", d.Seconds()))
	case d < time.Hour:
		return trimZero(fmt.Sprintf("%.1fm", d.Minutes()))
	default:
		return trimZero(fmt.Sprintf("%.1fh", d.Hours()))
	}
}

// trimZero drops a trailing ".0" so whole values read as "3s", not "3.0s".
func trimZero(s string) string {
	if len(s) < 3 {
		return s
	}
	unit := s[len(s)-1]
	if s[len(s)-3] == '.' && s[len(s)-2] == '0' {
		return s[:len(s)-3] + string(unit)
	}
	return s
}
