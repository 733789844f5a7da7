package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(label string, values ...float64) NumericColumn {
	return NumericColumn{Label: label, Values: values}
}

func TestGroup_Empty(t *testing.T) {
	grouping := Group(nil)

	assert.Empty(t, grouping.Labels)
	assert.Empty(t, grouping.Series)
}

func TestGroup_EvenCount(t *testing.T) {
	columns := []NumericColumn{
		column("A", 1, 2, 3),
		column("B", 10, 20, 30),
	}

	grouping := Group(columns)

	require.Len(t, grouping.Series, 1)
	assert.Equal(t, []LabelPair{{X: "A", Y: "B"}}, grouping.Labels)
	assert.Equal(t, "A", grouping.Series[0].LabelX)
	assert.Equal(t, "B", grouping.Series[0].LabelY)
	assert.Equal(t, []Point{{1, 10}, {2, 20}, {3, 30}}, grouping.Series[0].Points)
}

func TestGroup_OddCountAppendsCounter(t *testing.T) {
	columns := []NumericColumn{
		column("A", 1, 2, 3, 4, 5),
		column("B", 1, 2, 3, 4, 5),
		column("C", 6, 7, 8, 9, 10),
	}

	grouping := Group(columns)

	require.Len(t, grouping.Series, 2)
	assert.Equal(t, LabelPair{X: "C", Y: CounterLabel}, grouping.Labels[1])

	// the counter runs 0..5 inclusive, one longer than the data columns
	counter := counterColumn(columns[0].Len())
	assert.Equal(t, 6, counter.Len())
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, counter.Values)

	second := grouping.Series[1]
	assert.Len(t, second.Points, 5)
	assert.Equal(t, Point{X: 6, Y: 0}, second.Points[0])
	assert.Equal(t, Point{X: 10, Y: 4}, second.Points[4])
}

func TestGroup_SingleColumn(t *testing.T) {
	grouping := Group([]NumericColumn{column("only", 5, 7)})

	require.Len(t, grouping.Series, 1)
	assert.Equal(t, []Point{{5, 0}, {7, 1}}, grouping.Series[0].Points)
}

func TestGroup_TruncatesToShorterColumn(t *testing.T) {
	grouping := Group([]NumericColumn{
		column("long", 1, 2, 3, 4),
		column("short", 9, 8),
	})

	require.Len(t, grouping.Series, 1)
	assert.Equal(t, []Point{{1, 9}, {2, 8}}, grouping.Series[0].Points)
}

func TestGroup_Idempotent(t *testing.T) {
	columns := []NumericColumn{
		column("A", 1, 2),
		column("B", 3, 4),
		column("C", 5, 6),
	}

	first := Group(columns)
	second := Group(columns)

	assert.Equal(t, first, second)
	assert.Len(t, columns, 3, "input slice must not grow")
}

func TestPlotSeriesXY(t *testing.T) {
	series := PlotSeries{Points: []Point{{1, 2}, {3, 4}}}

	xs, ys := series.XY()

	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}
