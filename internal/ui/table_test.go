package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "Answer", Width: 10},
	}
	rows := []table.Row{
		{"coding", "YES"},
		{"napping", "NO"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Answer")
	assert.Contains(t, view, "coding")
	assert.Contains(t, view, "napping")
}

func TestNewTable_EmptyRows(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "Name", Width: 20}}, []table.Row{})

	assert.Contains(t, tbl.View(), "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Icon", Width: 15},
		{Title: "Answer", Width: 10},
	}
	rows := [][]string{
		{"Database", "YES"},
		{"Beer", "NO"},
	}

	output := RenderSimpleTable(columns, rows)

	for _, want := range []string{"Icon", "Answer", "Database", "Beer", "YES", "NO"} {
		assert.Contains(t, output, want)
	}
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	output := RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, [][]string{})
	assert.Empty(t, output)
}

func TestRenderCatalogTable(t *testing.T) {
	rows := []CatalogRow{
		{Working: true, Answer: "YES", Icon: "Database", Message: "Optimizing database queries..."},
		{Working: false, Answer: "NO", Icon: "Beer", Message: "Happy hour started early."},
		{Working: false, Answer: "NO", Icon: "Sparkles", Message: "Somewhere else."},
	}

	for _, color := range []bool{true, false} {
		output := RenderCatalogTable(rows, color)

		assert.Contains(t, output, "ANSWER")
		assert.Contains(t, output, "MESSAGE")
		assert.Contains(t, output, "Optimizing database queries...")
		assert.Contains(t, output, "Happy hour started early.")
		assert.Contains(t, output, "Sparkles")
		assert.Contains(t, output, "3")
	}
}

func TestRenderCatalogTable_ColoredLayout(t *testing.T) {
	rows := []CatalogRow{
		{Working: true, Answer: "YES", Icon: "Coffee", Message: "Fueling up."},
	}

	output := RenderCatalogTable(rows, true)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// header, its bottom border, one row
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[2], Icon("Coffee")+" Coffee")
}

func TestRenderCatalogTable_Empty(t *testing.T) {
	assert.Equal(t, "Catalog is empty", RenderCatalogTable(nil, true))
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "shorter than width", input: "foo", width: 5, expected: "foo  "},
		{name: "equal to width", input: "foobar", width: 6, expected: "foobar"},
		{name: "longer than width", input: "foobar", width: 3, expected: "foobar"},
		{name: "empty string", input: "", width: 3, expected: "   "},
		{name: "zero width", input: "foo", width: 0, expected: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, padRight(tt.input, tt.width))
		})
	}
}
