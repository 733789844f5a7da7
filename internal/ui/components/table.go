package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DataTable renders a window of raw records around the selected row
type DataTable struct {
	Header   []string
	Rows     [][]string
	Selected int
	Window   int // visible rows
	Width    int
	Colors   Colors
}

// NewDataTable creates a table over header and rows
func NewDataTable(header []string, rows [][]string, width, window int) *DataTable {
	return &DataTable{
		Header: header,
		Rows:   rows,
		Width:  width,
		Window: window,
		Colors: DefaultColors(),
	}
}

// visibleRange returns the [start, end) slice of rows kept on screen so the
// selection stays visible
func (t *DataTable) visibleRange() (int, int) {
	window := max(1, t.Window)
	if len(t.Rows) <= window {
		return 0, len(t.Rows)
	}
	start := t.Selected - window/2
	start = max(0, min(start, len(t.Rows)-window))
	return start, start + window
}

// columnWidth splits the width evenly between columns
func (t *DataTable) columnWidth() int {
	if len(t.Header) == 0 {
		return t.Width
	}
	// the marker column takes three cells
	return max(1, (t.Width-3)/len(t.Header)-1)
}

// Render renders the table
func (t *DataTable) Render() string {
	if len(t.Header) == 0 {
		return lipgloss.NewStyle().Foreground(t.Colors.Muted).Render("No data loaded")
	}

	width := t.columnWidth()
	lines := make([]string, 0, t.Window+3)
	lines = append(lines, t.Colors.header().Render("   "+t.joinCells(t.Header, width)))

	start, end := t.visibleRange()
	for i := start; i < end; i++ {
		cells := t.joinCells(t.Rows[i], width)
		if i == t.Selected {
			lines = append(lines, t.Colors.selected().Render("⮞  "+cells))
		} else {
			lines = append(lines, t.Colors.row(i).Render("   "+cells))
		}
	}

	if len(t.Rows) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Colors.Muted).Render("   (no rows)"))
	}

	position := fmt.Sprintf("row %d of %d", min(t.Selected+1, len(t.Rows)), len(t.Rows))
	lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Colors.Muted).Render(position))

	return strings.Join(lines, "\n")
}

func (t *DataTable) joinCells(cells []string, width int) string {
	padded := make([]string, len(t.Header))
	for i := range t.Header {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = pad(cell, width)
	}
	return strings.Join(padded, " ")
}
