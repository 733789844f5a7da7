// Package analysis runs the dataset pipeline: classification, statistics,
// pairing and series correlation, producing one immutable Report.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/logger"
	"github.com/yildizm/csvscope/internal/monitor"
	"github.com/yildizm/csvscope/internal/stats"
)

// Engine turns loaded tables into reports
type Engine struct {
	mode    dataset.ProbeMode
	log     *logger.Logger
	metrics *monitor.Collector
	now     func() time.Time
}

// NewEngine creates an engine using the legacy first-value probe
func NewEngine() *Engine {
	return &Engine{
		mode: dataset.ProbeFirst,
		log:  logger.NewWithCallback("analysis", func() bool { return false }),
		now:  time.Now,
	}
}

// WithStrict switches classification to the strict probe
func (e *Engine) WithStrict(strict bool) *Engine {
	if strict {
		e.mode = dataset.ProbeStrict
	} else {
		e.mode = dataset.ProbeFirst
	}
	return e
}

// WithLogger replaces the engine logger
func (e *Engine) WithLogger(log *logger.Logger) *Engine {
	if log != nil {
		e.log = log.WithComponent("analysis")
	}
	return e
}

// WithMonitor times every pipeline phase into c
func (e *Engine) WithMonitor(c *monitor.Collector) *Engine {
	e.metrics = c
	return e
}

// Mode returns the active probe mode
func (e *Engine) Mode() dataset.ProbeMode {
	return e.mode
}

// LoadOptions wires row drops into the engine's debug log
func (e *Engine) LoadOptions(opts dataset.LoadOptions) dataset.LoadOptions {
	next := opts.OnDrop
	opts.OnDrop = func(rowErr *dataset.RowParseError) {
		e.log.DebugWithFields("dropped malformed row", []logger.Field{
			logger.Line(rowErr.Line),
			logger.Error(rowErr.Err),
		})
		if next != nil {
			next(rowErr)
		}
	}
	return opts
}

// Run loads path and analyzes it. Ingestion errors are returned unchanged.
func (e *Engine) Run(ctx context.Context, path string, opts dataset.LoadOptions) (*Report, error) {
	var table *dataset.Table
	err := e.metrics.TrackOperationWithError(monitor.OperationLoad, func() error {
		var err error
		table, err = dataset.Load(path, e.LoadOptions(opts))
		return err
	})
	if err != nil {
		return nil, err
	}
	e.metrics.RecordRows(table.Rows(), table.Dropped)
	if table.Dropped > 0 {
		e.log.Info("dropped %d malformed rows from %s", table.Dropped, table.Source)
	}
	return e.Analyze(ctx, table)
}

// Analyze classifies the table, computes per-column statistics, pairs the
// numeric columns into plot series and relates each series. Computation
// never fails; only cancellation returns an error.
func (e *Engine) Analyze(ctx context.Context, table *dataset.Table) (*Report, error) {
	start := e.now()
	if table == nil {
		table = &dataset.Table{}
	}

	report := &Report{
		Source:    table.Source,
		Header:    table.Header,
		Rows:      table.Rows(),
		Dropped:   table.Dropped,
		Mode:      e.mode.String(),
		Stats:     []ColumnStats{},
		Relations: []SeriesRelation{},
		Table:     table,
	}

	var classification dataset.Classification
	e.metrics.TrackOperation(monitor.OperationClassify, func() {
		classification = dataset.Classify(table.Records, table.Header, e.mode)
	})
	report.Columns = classification.Columns
	report.Labels = classification.Labels
	report.Ambiguities = classification.Ambiguities
	for _, amb := range classification.Ambiguities {
		e.log.WarnWithFields("column %q classified numeric with unparsable values", []logger.Field{
			logger.F("dropped", amb.Dropped),
			logger.F("kept", amb.Kept),
		}, amb.Label)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	e.metrics.TrackOperation(monitor.OperationStatistics, func() {
		for _, column := range classification.Columns {
			row, err := stats.Compute(column.Values)
			if err != nil {
				e.logUndefined(column.Label, err)
			}
			report.Stats = append(report.Stats, ColumnStats{Label: column.Label, Row: row})
		}
	})

	if err := ctx.Err(); err != nil {
		return report, err
	}

	var grouping dataset.Grouping
	e.metrics.TrackOperation(monitor.OperationPairing, func() {
		grouping = dataset.Group(classification.Columns)
	})
	report.Pairs = grouping.Labels
	report.Series = grouping.Series

	e.metrics.TrackOperation(monitor.OperationRelate, func() {
		for _, series := range grouping.Series {
			xs, ys := series.XY()
			rel, err := stats.Relate(xs, ys)
			if err != nil {
				e.log.Debug("series %s/%s: %v", series.LabelX, series.LabelY, err)
			}
			report.Relations = append(report.Relations, SeriesRelation{
				Labels:   dataset.LabelPair{X: series.LabelX, Y: series.LabelY},
				Relation: rel,
			})
		}
	})

	report.GeneratedAt = e.now()
	report.Duration = report.GeneratedAt.Sub(start)
	e.log.InfoWithFields("analysis complete", []logger.Field{
		logger.F("rows", report.Rows),
		logger.F("numeric", len(report.Columns)),
		logger.F("series", len(report.Series)),
		logger.Duration(report.Duration),
	})

	return report, nil
}

func (e *Engine) logUndefined(label string, err error) {
	var divErr *stats.DivisionError
	if !errors.As(err, &divErr) {
		e.log.Warn("statistics for %q: %v", label, err)
		return
	}
	e.log.Debug("statistics for %q: %v", label, err)
}
