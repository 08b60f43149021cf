package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harmonyeval/harmony-verifier/pkg/styles"
)

// TableConfig describes a table for RenderTable.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(styles.ColorAccent)
)

// RenderTable renders a bordered table with an optional title line above
// it. A config with no headers and no rows produces no output.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return ""
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(config.Headers...).
		Rows(config.Rows...)

	var out strings.Builder
	if config.Title != "" {
		out.WriteString(tableTitleStyle.Render(config.Title))
		out.WriteString("\n")
	}
	out.WriteString(tbl.Render())
	out.WriteString("\n")
	return out.String()
}
