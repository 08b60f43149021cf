// Package styles centralizes the lipgloss color palette used by the
// console layer. Colors are adaptive so output stays readable on both
// light and dark terminal backgrounds.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// ColorSuccess marks completed checks and passing validations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}

	// ColorError marks failed checks and fatal conditions.
	ColorError = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}

	// ColorWarning marks recoverable problems and skipped steps.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}

	// ColorInfo marks neutral status output.
	ColorInfo = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}

	// ColorMuted is for secondary detail such as verbose output.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#57606a", Dark: "#8b949e"}

	// ColorAccent highlights titles and values the eye should land on.
	ColorAccent = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#a371f7"}
)
