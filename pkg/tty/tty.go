// Package tty answers terminal capability questions for the console and
// logger layers.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the given file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsStdoutTerminal reports whether stdout is attached to a terminal.
func IsStdoutTerminal() bool {
	return IsTerminal(os.Stdout)
}

// IsStderrTerminal reports whether stderr is attached to a terminal.
func IsStderrTerminal() bool {
	return IsTerminal(os.Stderr)
}

// IsAccessible reports whether the user asked for accessible output.
// Animated UI elements (spinners) are suppressed when this is set.
func IsAccessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// IsColorEnabled reports whether colored output should be produced on
// stderr. FORCE_COLOR forces colors on; NO_COLOR and ACCESSIBLE force
// them off; otherwise colors follow terminal detection.
func IsColorEnabled() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" || IsAccessible() {
		return false
	}
	return IsStderrTerminal()
}
