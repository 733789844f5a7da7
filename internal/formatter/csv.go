package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/csvscope/internal/analysis"
)

// csvFormatter writes the statistics matrix as CSV
type csvFormatter struct {
	precision int
}

// NewCSV creates a new CSV formatter
func NewCSV(opts Options) Formatter {
	return &csvFormatter{precision: opts.Precision}
}

func (f *csvFormatter) Format(report *analysis.Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	header, rows := statMatrix(report, f.precision)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
