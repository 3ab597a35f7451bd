package cli

import (
	"strings"
)

// Table is a simple column formatter with widths sized to the content.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render formats the table as a string with a header, a separator line, and
// one line per row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)

	var b strings.Builder
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)

	separators := make([]string, len(t.headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeLine(separators)

	for _, row := range t.rows {
		writeLine(row)
	}

	return b.String()
}

// padRight pads a string with spaces on the right to the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
