package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/csvscope/internal/analysis"
)

// markdownFormatter formats a report as Markdown
type markdownFormatter struct {
	precision int
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown(opts Options) Formatter {
	return &markdownFormatter{precision: opts.Precision}
}

func (f *markdownFormatter) Format(report *analysis.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Dataset Report\n\n")
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	f.writeSummaryTable(&b, report)
	f.writeStatistics(&b, report)
	f.writeSeries(&b, report)
	f.writeAmbiguities(&b, report)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, report *analysis.Report) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Source | %s |\n", escapeMarkdown(report.Source))
	fmt.Fprintf(b, "| Rows | %s |\n", formatNumber(report.Rows))
	fmt.Fprintf(b, "| Dropped Rows | %s |\n", formatNumber(report.Dropped))
	fmt.Fprintf(b, "| Columns | %d |\n", len(report.Header))
	fmt.Fprintf(b, "| Numeric Columns | %d |\n", report.NumericCount())
	fmt.Fprintf(b, "| Probe Mode | %s |\n\n", report.Mode)
}

func (f *markdownFormatter) writeStatistics(b *strings.Builder, report *analysis.Report) {
	b.WriteString("## Statistics\n\n")
	if report.NumericCount() == 0 {
		b.WriteString("No numeric columns.\n\n")
		return
	}

	header, rows := statMatrix(report, f.precision)
	writeMarkdownRow(b, header)
	separator := make([]string, len(header))
	for i := range separator {
		if i < 2 {
			separator[i] = "---"
		} else {
			separator[i] = "---:"
		}
	}
	writeMarkdownRow(b, separator)
	for _, row := range rows {
		writeMarkdownRow(b, row)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeSeries(b *strings.Builder, report *analysis.Report) {
	if len(report.Relations) == 0 {
		return
	}

	b.WriteString("## Series\n\n")
	b.WriteString("| X | Y | Points | Pearson | Covariance |\n")
	b.WriteString("|---|---|---:|---:|---:|\n")
	for _, rel := range report.Relations {
		pearson, covariance := relationCells(rel.Relation, f.precision)
		writeMarkdownRow(b, []string{
			rel.Labels.X,
			rel.Labels.Y,
			fmt.Sprintf("%d", rel.Relation.Count),
			pearson,
			covariance,
		})
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeAmbiguities(b *strings.Builder, report *analysis.Report) {
	if len(report.Ambiguities) == 0 {
		return
	}

	b.WriteString("## Ambiguous Columns\n\n")
	for _, amb := range report.Ambiguities {
		fmt.Fprintf(b, "- **%s**: %d value(s) dropped, %d kept\n", escapeMarkdown(amb.Label), amb.Dropped, amb.Kept)
	}
	b.WriteString("\n")
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escapeMarkdown(cell)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
