package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/harmonyeval/harmony-verifier/pkg/styles"
)

var (
	titleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorAccent).
			Align(lipgloss.Center).
			Bold(true).
			Padding(0, 1)

	infoLabelStyle = lipgloss.NewStyle().Bold(true)

	emphasisBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				Padding(0, 2).
				Bold(true)
)

// LayoutTitleBox renders a centered title inside a rounded box of the
// given content width.
func LayoutTitleBox(title string, width int) string {
	return titleBoxStyle.Width(width).Render(title)
}

// LayoutInfoSection renders a "label: value" line with an emphasized label.
func LayoutInfoSection(label, value string) string {
	return fmt.Sprintf("%s %s", infoLabelStyle.Render(label+":"), value)
}

// LayoutEmphasisBox renders content inside a thick border in the given
// color, for verdicts that must not be missed.
func LayoutEmphasisBox(content string, color lipgloss.AdaptiveColor) string {
	return emphasisBoxStyle.BorderForeground(color).Foreground(color).Render(content)
}

// LayoutJoinVertical stacks sections left-aligned into a single block.
func LayoutJoinVertical(sections ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
