// Package table renders aligned tables with lipgloss.
package table

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Builder provides a convenient interface for creating styled tables using lipgloss/table
type Builder struct {
	headers []string
	rows    [][]string
	style   Style
	output  io.Writer
}

// Style defines the visual styling options for tables
type Style struct {
	Border lipgloss.Border
	// HeaderStyle applies styling to header row
	HeaderStyle lipgloss.Style
	// MarginLeft sets left margin
	MarginLeft int
	// PaddingLeft and PaddingRight set padding inside cells
	PaddingLeft  int
	PaddingRight int
}

// DefaultStyle returns a rounded, bold-header style for terminals
func DefaultStyle() Style {
	return Style{
		Border:       lipgloss.RoundedBorder(),
		HeaderStyle:  lipgloss.NewStyle().Bold(true),
		MarginLeft:   1,
		PaddingLeft:  1,
		PaddingRight: 1,
	}
}

// NoBorderStyle returns a borderless style for plain output
func NoBorderStyle() Style {
	return Style{
		Border:       lipgloss.HiddenBorder(),
		HeaderStyle:  lipgloss.NewStyle(),
		PaddingRight: 2,
	}
}

// New creates a new table builder with default styling
func New() *Builder {
	return NewWithStyle(DefaultStyle())
}

// NewWithStyle creates a new table builder with custom styling
func NewWithStyle(style Style) *Builder {
	return &Builder{
		style:  style,
		output: os.Stdout,
	}
}

// SetOutput sets the output writer for the table
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// Headers sets the table headers
func (b *Builder) Headers(headers ...string) *Builder {
	b.headers = make([]string, len(headers))
	copy(b.headers, headers)
	return b
}

// Row adds a data row to the table
func (b *Builder) Row(columns ...string) *Builder {
	row := make([]string, len(columns))
	copy(row, columns)
	b.rows = append(b.rows, row)
	return b
}

// RowCount returns the number of data rows in the table
func (b *Builder) RowCount() int {
	return len(b.rows)
}

// Build creates and returns the formatted table as a string
func (b *Builder) Build() string {
	t := table.New().
		Border(b.style.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if row == table.HeaderRow {
				style = b.style.HeaderStyle
			}
			return style.
				PaddingLeft(b.style.PaddingLeft).
				PaddingRight(b.style.PaddingRight)
		})

	if len(b.headers) > 0 {
		t.Headers(b.headers...)
	}
	for _, row := range b.rows {
		t.Row(row...)
	}

	return lipgloss.NewStyle().
		MarginLeft(b.style.MarginLeft).
		Render(t.Render())
}

// Println writes the table followed by a newline to the configured output writer
func (b *Builder) Println() error {
	_, err := fmt.Fprintln(b.output, b.Build())
	return err
}
