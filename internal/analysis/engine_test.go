package analysis

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/logger"
	"github.com/yildizm/csvscope/internal/monitor"
	"github.com/yildizm/csvscope/internal/stats"
)

func table(header dataset.Header, rows ...dataset.Record) *dataset.Table {
	return &dataset.Table{Source: "test.csv", Header: header, Records: rows}
}

func TestAnalyze_SortedPairing(t *testing.T) {
	tbl := table(dataset.Header{"A", "B", "name"},
		dataset.Record{"3", "30", "c"},
		dataset.Record{"1", "10", "a"},
		dataset.Record{"2", "20", "b"},
	)

	report, err := NewEngine().Analyze(context.Background(), tbl)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, report.Labels)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, "first", report.Mode)

	require.Len(t, report.Stats, 2)
	a := report.Stats[0]
	assert.Equal(t, "A", a.Label)
	assert.InDelta(t, 2.0, a.Row.Mean, 1e-12)
	assert.InDelta(t, 2.0/3.0, a.Row.Variance, 1e-12)
	assert.Equal(t, 2.0, a.Row.P25)
	assert.Equal(t, 3.0, a.Row.P75)

	require.Len(t, report.Series, 1)
	assert.Equal(t, []dataset.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}}, report.Series[0].Points)
	assert.Equal(t, []dataset.LabelPair{{X: "A", Y: "B"}}, report.Pairs)

	require.Len(t, report.Relations, 1)
	assert.True(t, report.Relations[0].Relation.Defined)
	assert.InDelta(t, 1.0, report.Relations[0].Relation.Pearson, 1e-12)
}

func TestAnalyze_StatsAlignWithColumns(t *testing.T) {
	tbl := table(dataset.Header{"x", "y", "z"},
		dataset.Record{"1", "5", "9"},
		dataset.Record{"2", "6", "8"},
		dataset.Record{"3", "7", "7"},
		dataset.Record{"4", "8", "6"},
	)

	report, err := NewEngine().Analyze(context.Background(), tbl)

	require.NoError(t, err)
	require.Len(t, report.Stats, report.NumericCount())
	for i, column := range report.Columns {
		assert.Equal(t, column.Label, report.Stats[i].Label)
	}

	// three numeric columns: the last one is paired with the counter
	require.Len(t, report.Pairs, 2)
	assert.Equal(t, dataset.CounterLabel, report.Pairs[1].Y)
}

func TestAnalyze_AmbiguityLoggedAtWarn(t *testing.T) {
	var buf bytes.Buffer
	engine := NewEngine().WithLogger(logger.NewWithWriter("test", false, &buf))

	tbl := table(dataset.Header{"v"},
		dataset.Record{"abc"},
		dataset.Record{"2"},
		dataset.Record{"3"},
	)

	report, err := engine.Analyze(context.Background(), tbl)

	require.NoError(t, err)
	require.Len(t, report.Ambiguities, 1)
	assert.Equal(t, dataset.Ambiguity{Label: "v", Dropped: 1, Kept: 2}, report.Ambiguities[0])
	assert.Contains(t, buf.String(), "WARN [analysis]")
	assert.Contains(t, buf.String(), `"v"`)
}

func TestAnalyze_StrictExcludesAmbiguousColumn(t *testing.T) {
	tbl := table(dataset.Header{"v"},
		dataset.Record{"abc"},
		dataset.Record{"2"},
		dataset.Record{"3"},
	)

	engine := NewEngine().WithStrict(true)
	report, err := engine.Analyze(context.Background(), tbl)

	require.NoError(t, err)
	assert.Equal(t, dataset.ProbeStrict, engine.Mode())
	assert.Empty(t, report.Labels)
	assert.Empty(t, report.Stats)
	assert.Empty(t, report.Series)
	assert.Empty(t, report.Ambiguities)
}

func TestAnalyze_UndefinedStatsDoNotAbort(t *testing.T) {
	tbl := table(dataset.Header{"c", "d"},
		dataset.Record{"4", "1"},
		dataset.Record{"4", "2"},
	)

	report, err := NewEngine().Analyze(context.Background(), tbl)

	require.NoError(t, err)
	require.Len(t, report.Stats, 2)
	assert.False(t, report.Stats[0].Row.Defined(stats.Skewness))
	assert.False(t, report.Relations[0].Relation.Defined)
}

func TestAnalyze_EmptyTable(t *testing.T) {
	report, err := NewEngine().Analyze(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, report.Rows)
	assert.Empty(t, report.Stats)
	assert.Nil(t, report.Record(0))
}

func TestAnalyze_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine().Analyze(ctx, table(dataset.Header{"a"}, dataset.Record{"1"}))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsDroppedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := strings.Join([]string{"a,b", "1,2", "3", "4,5"}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var buf bytes.Buffer
	var seen int
	opts := dataset.DefaultLoadOptions()
	opts.OnDrop = func(*dataset.RowParseError) { seen++ }

	engine := NewEngine().WithLogger(logger.NewWithWriter("test", true, &buf))
	report, err := engine.Run(context.Background(), path, opts)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 1, seen, "caller hook still runs")
	assert.Contains(t, buf.String(), "DEBUG [analysis] dropped malformed row [line=3")
	assert.Equal(t, dataset.Record{"4", "5"}, report.Record(1))
}

func TestRun_MissingFile(t *testing.T) {
	_, err := NewEngine().Run(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), dataset.DefaultLoadOptions())

	var ingestErr *dataset.IngestionError
	assert.ErrorAs(t, err, &ingestErr)
}

func TestRun_TimesEveryPhase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\nbad\n4,5,6\n"), 0o600))

	metrics := monitor.New()
	_, err := NewEngine().WithMonitor(metrics).Run(context.Background(), path, dataset.DefaultLoadOptions())
	require.NoError(t, err)

	snapshot := metrics.Snapshot()
	ops := make([]monitor.OperationType, 0, len(snapshot.Operations))
	for _, op := range snapshot.Operations {
		ops = append(ops, op.Operation)
	}
	assert.Equal(t, monitor.Operations, ops)
	assert.EqualValues(t, 2, snapshot.Rows)
	assert.EqualValues(t, 1, snapshot.Dropped)
}
