package dataset

// CounterLabel names the synthetic column appended for odd column counts
const CounterLabel = "Increasing counter"

// Grouping holds the plot series built from consecutive column pairs
type Grouping struct {
	Labels []LabelPair  `json:"labels"`
	Series []PlotSeries `json:"series"`
}

// Group pairs numeric columns (0,1), (2,3), ... into plot series. An odd
// count is evened out with a counter column 0..len(first) inclusive, which
// is one value longer than the data columns; zipping truncates it.
func Group(columns []NumericColumn) Grouping {
	grouping := Grouping{
		Labels: []LabelPair{},
		Series: []PlotSeries{},
	}
	if len(columns) == 0 {
		return grouping
	}

	extended := make([]NumericColumn, len(columns), len(columns)+1)
	copy(extended, columns)
	if len(extended)%2 != 0 {
		extended = append(extended, counterColumn(columns[0].Len()))
	}

	for i := 0; i+1 < len(extended); i += 2 {
		x, y := extended[i], extended[i+1]
		grouping.Labels = append(grouping.Labels, LabelPair{X: x.Label, Y: y.Label})
		grouping.Series = append(grouping.Series, PlotSeries{
			LabelX: x.Label,
			LabelY: y.Label,
			Points: zip(x.Values, y.Values),
		})
	}

	return grouping
}

func counterColumn(upTo int) NumericColumn {
	values := make([]float64, 0, upTo+1)
	for i := 0; i <= upTo; i++ {
		values = append(values, float64(i))
	}
	return NumericColumn{Label: CounterLabel, Values: values}
}

func zip(xs, ys []float64) []Point {
	n := min(len(xs), len(ys))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points
}
