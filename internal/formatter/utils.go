package formatter

import (
	"fmt"
	"strconv"

	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/stats"
)

// notAvailable is printed for undefined statistics
const notAvailable = "n/a"

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	return addCommas(strconv.Itoa(n))
}

func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// formatFloat renders v with the given number of decimals
func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// statCell renders one statistic of a row, or n/a when undefined
func statCell(row stats.Row, s stats.Stat, precision int) string {
	v, ok := row.Value(s)
	if !ok || finite(v) == nil {
		return notAvailable
	}
	return formatFloat(v, precision)
}

// relationCells renders pearson and covariance of a series
func relationCells(rel stats.Relation, precision int) (pearson, covariance string) {
	if !rel.Defined || finite(rel.Pearson) == nil || finite(rel.Covariance) == nil {
		return notAvailable, notAvailable
	}
	return formatFloat(rel.Pearson, precision), formatFloat(rel.Covariance, precision)
}

// statMatrix lays the statistics out the way the interactive table does:
// one row per statistic, one column per numeric label
func statMatrix(report *analysis.Report, precision int) (header []string, rows [][]string) {
	header = append([]string{"S/N", "Measurement"}, report.Labels...)
	for i, s := range stats.All {
		row := []string{strconv.Itoa(i + 1), s.String()}
		for _, column := range report.Stats {
			row = append(row, statCell(column.Row, s, precision))
		}
		rows = append(rows, row)
	}
	return header, rows
}

func pairLabel(x, y string) string {
	return fmt.Sprintf("%s vs %s", x, y)
}
