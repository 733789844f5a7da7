package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats a report as plain text using go-termfmt trees
type terminalFormatter struct {
	opts      *termfmt.TerminalOptions
	precision int
}

// NewTerminal creates a new terminal formatter
func NewTerminal(opts Options) Formatter {
	termOpts := termfmt.DefaultOptions()
	termOpts.Color = opts.Color
	termOpts.Emoji = opts.Emoji
	return &terminalFormatter{opts: termOpts, precision: opts.Precision}
}

func (f *terminalFormatter) Format(report *analysis.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeDataset(&b, report)
	f.writeStatistics(&b, report)
	f.writePairs(&b, report)
	f.writeAmbiguities(&b, report)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Dataset Summary"
	b.WriteString("╔" + strings.Repeat("═", len(header)+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", len(header)+2) + "╝\n\n")
}

// writeDataset writes the dataset facts as a tree
func (f *terminalFormatter) writeDataset(b *strings.Builder, report *analysis.Report) {
	symbol := termfmt.GetEmoji("summary", f.opts)
	b.WriteString(symbol + " Dataset\n")

	items := []termfmt.TreeItem{
		{Label: "Source", Value: report.Source},
		{Label: "Rows", Value: formatNumber(report.Rows)},
		{Label: "Dropped Rows", Value: formatNumber(report.Dropped)},
		{Label: "Columns", Value: fmt.Sprintf("%d (%d numeric)", len(report.Header), report.NumericCount())},
		{Label: "Probe Mode", Value: report.Mode, Last: true},
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeStatistics writes the statistics matrix as aligned columns
func (f *terminalFormatter) writeStatistics(b *strings.Builder, report *analysis.Report) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	if report.NumericCount() == 0 {
		b.WriteString("└─ no numeric columns\n\n")
		return
	}

	header, rows := statMatrix(report, f.precision)
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = lipgloss.Width(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i < 2 {
				padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			} else {
				padded[i] = strings.Repeat(" ", widths[i]-lipgloss.Width(cell)) + cell
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(padded, "  "), " ") + "\n")
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	b.WriteString("\n")
}

// writePairs writes each plot series with its correlation
func (f *terminalFormatter) writePairs(b *strings.Builder, report *analysis.Report) {
	symbol := termfmt.GetEmoji("pattern", f.opts)
	b.WriteString(symbol + " Series\n")

	if len(report.Relations) == 0 {
		b.WriteString("└─ no series\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(report.Relations))
	for i, rel := range report.Relations {
		pearson, covariance := relationCells(rel.Relation, f.precision)
		items = append(items, termfmt.TreeItem{
			Label: pairLabel(rel.Labels.X, rel.Labels.Y),
			Value: fmt.Sprintf("%d points", rel.Relation.Count),
			Children: []termfmt.TreeItem{
				{Label: "Pearson", Value: pearson},
				{Label: "Covariance", Value: covariance, Last: true},
			},
			Last: i == len(report.Relations)-1,
		})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}

// writeAmbiguities lists columns kept numeric despite unparsable values
func (f *terminalFormatter) writeAmbiguities(b *strings.Builder, report *analysis.Report) {
	if len(report.Ambiguities) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("warning", f.opts)
	b.WriteString("\n" + symbol + " Ambiguous Columns\n")
	for _, amb := range report.Ambiguities {
		fmt.Fprintf(b, "• %s: %d value(s) dropped, %d kept\n", amb.Label, amb.Dropped, amb.Kept)
	}
}
