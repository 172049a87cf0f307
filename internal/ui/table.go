package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is ever selected in printed output.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for plain CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// CatalogRow is one status entry as shown by the catalog listing.
type CatalogRow struct {
	Working bool
	Answer  string
	Icon    string
	Message string
}

// catalogColumns is shared by the plain and colored catalog renderings.
var catalogColumns = []TableColumn{
	{Title: "#", Width: 3},
	{Title: "ANSWER", Width: 7},
	{Title: "ICON", Width: 17},
	{Title: "MESSAGE", Width: 46},
}

// RenderCatalogTable renders catalog entries with the answer in its tier color.
// With color off it falls back to RenderSimpleTable.
func RenderCatalogTable(rows []CatalogRow, color bool) string {
	if len(rows) == 0 {
		return "Catalog is empty"
	}

	if !color {
		plain := make([][]string, len(rows))
		for i, row := range rows {
			plain[i] = []string{strconv.Itoa(i + 1), row.Answer, row.Icon, row.Message}
		}
		return RenderSimpleTable(catalogColumns, plain)
	}

	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	var header strings.Builder
	for _, col := range catalogColumns {
		header.WriteString(padRight(col.Title, col.Width+1))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.TrimRight(header.String(), " ")) + "\n")

	for i, row := range rows {
		iconCell := Icon(row.Icon) + " " + row.Icon
		if !KnownIcon(row.Icon) {
			iconCell = mutedStyle.Render(iconCell)
		}
		line := padRight(mutedStyle.Render(strconv.Itoa(i+1)), catalogColumns[0].Width+1) +
			padRight(AnswerTier(row.Working).Style().Bold(true).Render(row.Answer), catalogColumns[1].Width+1) +
			padRight(iconCell, catalogColumns[2].Width+1) +
			row.Message
		b.WriteString(line + "\n")
	}

	return b.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
