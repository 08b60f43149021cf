// Package console formats user-facing terminal output: status lines,
// tables, layout boxes, and the fetch spinner. Validators and the GitHub
// client produce plain text; every bit of styling happens here.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/harmonyeval/harmony-verifier/pkg/styles"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(styles.ColorError)
	warningStyle  = lipgloss.NewStyle().Foreground(styles.ColorWarning)
	infoStyle     = lipgloss.NewStyle().Foreground(styles.ColorInfo)
	verboseStyle  = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	progressStyle = lipgloss.NewStyle().Foreground(styles.ColorAccent).Bold(true)
)

// FormatSuccessMessage formats a passing check or completed step.
func FormatSuccessMessage(message string) string {
	return successStyle.Render("✓ " + message)
}

// FormatErrorMessage formats a failed check or fatal condition.
func FormatErrorMessage(message string) string {
	return errorStyle.Render("✗ " + message)
}

// FormatWarningMessage formats a recoverable problem or skipped step.
func FormatWarningMessage(message string) string {
	return warningStyle.Render("⚠️ " + message)
}

// FormatInfoMessage formats a neutral status line.
func FormatInfoMessage(message string) string {
	return infoStyle.Render("ℹ " + message)
}

// FormatVerboseMessage formats secondary detail that most runs can ignore.
func FormatVerboseMessage(message string) string {
	return verboseStyle.Render(message)
}

// FormatProgressMessage formats a step banner while work is in flight.
func FormatProgressMessage(message string) string {
	return progressStyle.Render("→ " + message)
}
