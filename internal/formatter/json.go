package formatter

import (
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/stats"
)

// jsonFormatter formats a report as indented JSON
type jsonFormatter struct {
	precision int
}

// NewJSON creates a new JSON formatter
func NewJSON(opts Options) Formatter {
	return &jsonFormatter{precision: opts.Precision}
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary     *SummaryOutput      `json:"summary"`
	Statistics  []*ColumnOutput     `json:"statistics"`
	Series      []*SeriesOutput     `json:"series"`
	Ambiguities []dataset.Ambiguity `json:"ambiguities,omitempty"`
}

// SummaryOutput represents the dataset facts
type SummaryOutput struct {
	Source        string    `json:"source"`
	Rows          int       `json:"rows"`
	Dropped       int       `json:"dropped"`
	Columns       int       `json:"columns"`
	NumericLabels []string  `json:"numeric_labels"`
	ProbeMode     string    `json:"probe_mode"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// ColumnOutput holds the statistics of one column. Undefined statistics are
// null.
type ColumnOutput struct {
	Label  string              `json:"label"`
	Count  int                 `json:"count"`
	Values map[string]*float64 `json:"values"`
}

// SeriesOutput describes one plot series
type SeriesOutput struct {
	X          string   `json:"x"`
	Y          string   `json:"y"`
	Points     int      `json:"points"`
	Pearson    *float64 `json:"pearson"`
	Covariance *float64 `json:"covariance"`
}

func (f *jsonFormatter) Format(report *analysis.Report) ([]byte, error) {
	output := &JSONOutput{
		Summary: &SummaryOutput{
			Source:        report.Source,
			Rows:          report.Rows,
			Dropped:       report.Dropped,
			Columns:       len(report.Header),
			NumericLabels: nonNil(report.Labels),
			ProbeMode:     report.Mode,
			GeneratedAt:   report.GeneratedAt,
		},
		Statistics:  createColumnOutputs(report),
		Series:      createSeriesOutputs(report),
		Ambiguities: report.Ambiguities,
	}

	return json.MarshalIndent(output, "", "  ")
}

func createColumnOutputs(report *analysis.Report) []*ColumnOutput {
	outputs := make([]*ColumnOutput, 0, len(report.Stats))
	for _, column := range report.Stats {
		values := make(map[string]*float64, len(stats.All))
		for _, s := range stats.All {
			values[s.String()] = nil
			if v, ok := column.Row.Value(s); ok {
				values[s.String()] = finite(v)
			}
		}
		outputs = append(outputs, &ColumnOutput{
			Label:  column.Label,
			Count:  column.Row.Count,
			Values: values,
		})
	}
	return outputs
}

func createSeriesOutputs(report *analysis.Report) []*SeriesOutput {
	outputs := make([]*SeriesOutput, 0, len(report.Relations))
	for _, rel := range report.Relations {
		output := &SeriesOutput{
			X:      rel.Labels.X,
			Y:      rel.Labels.Y,
			Points: rel.Relation.Count,
		}
		if rel.Relation.Defined {
			output.Pearson = finite(rel.Relation.Pearson)
			output.Covariance = finite(rel.Relation.Covariance)
		}
		outputs = append(outputs, output)
	}
	return outputs
}

// finite returns a pointer to v, or nil when JSON cannot represent it
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nonNil(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}
