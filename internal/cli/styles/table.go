package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumber-addons/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// AddonTableColumns returns columns for the addon list table.
func AddonTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 28},
		{Title: "ID", Width: 36},
		{Title: "Version", Width: 10},
	}
}

// AddonRow converts an addon to a table row.
func AddonRow(a entity.Addon) table.Row {
	name := a.Name
	if name == "" {
		name = a.ID
	}
	return table.Row{name, a.ID, a.Version}
}

// TableWidth returns the total width of the given columns including cell padding.
func TableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
