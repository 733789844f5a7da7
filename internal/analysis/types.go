package analysis

import (
	"time"

	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/stats"
)

// Report is everything the presentation layer reads about one dataset.
// It is built once per (re)load and never mutated afterwards.
type Report struct {
	Source      string                  `json:"source"`
	Header      dataset.Header          `json:"header"`
	Rows        int                     `json:"rows"`
	Dropped     int                     `json:"dropped"`
	Mode        string                  `json:"probe_mode"`
	Labels      []string                `json:"numeric_labels"`
	Columns     []dataset.NumericColumn `json:"-"`
	Stats       []ColumnStats           `json:"statistics"`
	Pairs       []dataset.LabelPair     `json:"pairs"`
	Series      []dataset.PlotSeries    `json:"-"`
	Relations   []SeriesRelation        `json:"relations"`
	Ambiguities []dataset.Ambiguity     `json:"ambiguities,omitempty"`
	GeneratedAt time.Time               `json:"generated_at"`
	Duration    time.Duration           `json:"duration_ns"`

	// Table keeps the raw records for the data explorer
	Table *dataset.Table `json:"-"`
}

// ColumnStats is the statistics row of one numeric column
type ColumnStats struct {
	Label string    `json:"label"`
	Row   stats.Row `json:"row"`
}

// SeriesRelation is the correlation of one plot series
type SeriesRelation struct {
	Labels   dataset.LabelPair `json:"labels"`
	Relation stats.Relation    `json:"relation"`
}

// NumericCount returns how many columns were classified numeric
func (r *Report) NumericCount() int {
	if r == nil {
		return 0
	}
	return len(r.Columns)
}

// Record returns the raw record at index i, or nil when out of range
func (r *Report) Record(i int) dataset.Record {
	if r == nil || r.Table == nil || i < 0 || i >= len(r.Table.Records) {
		return nil
	}
	return r.Table.Records[i]
}
