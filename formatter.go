package contacts

import (
	"io"
	"strings"
)

// WidthCalculator measures text in terminal cells.
type WidthCalculator interface {
	// DisplayWidth returns the number of cells s occupies: 2 for each
	// wide or fullwidth East Asian character, 1 for everything else.
	DisplayWidth(s string) int

	// Pad appends spaces to s until it is width cells wide.
	// Text already at or beyond width is returned unchanged.
	Pad(s string, width int) string
}

// Column describes one column of the contact table.
type Column struct {
	Label string
	Width int // in display cells
	Value func(*Contact) string
}

// DefaultColumns is the name, title, email layout used by the CLI.
var DefaultColumns = []Column{
	{Label: "姓名", Width: 16, Value: func(c *Contact) string { return c.Name }},
	{Label: "職稱", Width: 32, Value: func(c *Contact) string { return c.Title }},
	{Label: "Email", Width: 32, Value: func(c *Contact) string { return c.Email }},
}

// TableRenderer renders contacts as fixed-width text columns.
//
// Cells wider than their column are neither truncated nor wrapped; the
// rest of the line is pushed right.
type TableRenderer struct {
	Width   WidthCalculator
	Columns []Column
}

// NewTableRenderer returns a renderer using DefaultColumns.
func NewTableRenderer(w WidthCalculator) *TableRenderer {
	return &TableRenderer{Width: w, Columns: DefaultColumns}
}

// Render writes a header line, a dashed separator spanning the total
// column width, and one line per contact to w.
func (r *TableRenderer) Render(w io.Writer, contacts []*Contact) error {
	_, err := io.WriteString(w, r.Format(contacts))
	return err
}

// Format returns the rendered table as a string.
func (r *TableRenderer) Format(contacts []*Contact) string {
	var b strings.Builder

	total := 0
	for _, col := range r.Columns {
		b.WriteString(r.Width.Pad(col.Label, col.Width))
		total += col.Width
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", total))
	b.WriteString("\n")

	for _, c := range contacts {
		for _, col := range r.Columns {
			b.WriteString(r.Width.Pad(col.Value(c), col.Width))
		}
		b.WriteString("\n")
	}

	return b.String()
}
