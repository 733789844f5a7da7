package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_SmallSample(t *testing.T) {
	row, err := Compute([]float64{3, 1, 2})

	// kurtosis needs four values
	var divErr *DivisionError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, Kurtosis, divErr.Stat)

	assert.Equal(t, 3, row.Count)
	assert.InDelta(t, 2.0, row.Mean, 1e-12)
	assert.InDelta(t, 2.0, row.Range, 1e-12)
	assert.InDelta(t, 2.0/3.0, row.Variance, 1e-12)
	assert.InDelta(t, 0.816, row.StdDev, 1e-3)
	assert.Equal(t, 2.0, row.P25)
	assert.Equal(t, 2.0, row.P50)
	assert.Equal(t, 3.0, row.P75)
	assert.Equal(t, row.P50, row.Median)
	assert.InDelta(t, 0.0, row.Skewness, 1e-12)
	assert.True(t, row.Defined(Skewness))
	assert.False(t, row.Defined(Kurtosis))
	assert.Equal(t, []Stat{Kurtosis}, row.Undefined)
}

func TestCompute_FullBattery(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	row, err := Compute(values)

	require.NoError(t, err)
	assert.Empty(t, row.Undefined)
	assert.InDelta(t, 5.0, row.Mean, 1e-12)
	assert.InDelta(t, 4.0, row.Variance, 1e-12)
	assert.InDelta(t, 2.0, row.StdDev, 1e-12)
	assert.InDelta(t, 7.0, row.Range, 1e-12)

	// sum of z^3 = (-27 -1 -1 -1 0 0 8 64) / 8 = 5.25
	assert.InDelta(t, 5.25/(8*7*6)*math.Sqrt(8), row.Skewness, 1e-12)
	// sum of z^4 = (81 1 1 1 0 0 16 256) / 16 = 22.25
	wantKurt := 22.25/(7*6*5)*(8*9/math.Pow(7*6, 2)) - 3
	assert.InDelta(t, wantKurt, row.Kurtosis, 1e-12)
}

func TestCompute_Properties(t *testing.T) {
	samples := map[string][]float64{
		"ascending":  {1, 2, 3, 4, 5, 6},
		"negative":   {-4.5, 10, 0, 2.25, -1},
		"duplicates": {7, 7, 1, 1, 3},
		"wide":       {1e-3, 1e6, 42, 3.14},
	}

	for name, values := range samples {
		t.Run(name, func(t *testing.T) {
			row, _ := Compute(values)

			assert.InDelta(t, row.StdDev*row.StdDev, row.Variance, 1e-6*math.Max(1, row.Variance))
			assert.LessOrEqual(t, row.P25, row.P50)
			assert.LessOrEqual(t, row.P50, row.P75)

			lo, hi := values[0], values[0]
			for _, v := range values {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			assert.InDelta(t, hi-lo, row.Range, 1e-9)
		})
	}
}

func TestCompute_Undefined(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		undefined []Stat
	}{
		{"empty", nil, All},
		{"single", []float64{5}, []Stat{Skewness, Kurtosis}},
		{"pair", []float64{1, 2}, []Stat{Skewness, Kurtosis}},
		{"three", []float64{1, 2, 4}, []Stat{Kurtosis}},
		{"constant", []float64{4, 4, 4, 4, 4}, []Stat{Skewness, Kurtosis}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Compute(tt.values)

			require.Error(t, err)
			assert.Equal(t, tt.undefined, row.Undefined)
			for _, s := range tt.undefined {
				v, ok := row.Value(s)
				assert.False(t, ok, s.String())
				assert.Zero(t, v)
				assert.False(t, math.IsNaN(v))
			}

			var divErr *DivisionError
			assert.True(t, errors.As(err, &divErr))
			assert.Equal(t, len(tt.values), divErr.Count)
		})
	}
}

func TestCompute_NonFiniteInput(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"positive infinity", []float64{1, 2, 3, math.Inf(1)}},
		{"negative infinity", []float64{math.Inf(-1), 1, 2, 3}},
		{"nan", []float64{1, 2, 3, math.NaN()}},
		{"nan only", []float64{math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Compute(tt.values)

			var divErr *DivisionError
			require.ErrorAs(t, err, &divErr)
			assert.Equal(t, "non-finite value", divErr.Reason)
			assert.Equal(t, All, row.Undefined)
			for _, s := range All {
				v, ok := row.Value(s)
				assert.False(t, ok, s.String())
				assert.Zero(t, v)
			}
			assert.Equal(t, len(tt.values), row.Count)
		})
	}
}

func TestCompute_Overflow(t *testing.T) {
	row, err := Compute([]float64{-1e308, 1e308, 1e308, -1e308})

	var divErr *DivisionError
	require.ErrorAs(t, err, &divErr)
	assert.True(t, row.Defined(Mean))
	assert.False(t, row.Defined(Range), "range overflows to +Inf")
	assert.Zero(t, row.Range)
	for _, s := range All {
		v, ok := row.Value(s)
		if ok {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), s.String())
		}
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2, 5}

	_, _ = Compute(values)

	assert.Equal(t, []float64{3, 1, 2, 5}, values)
}

func TestPercentiles_RoundsHalfAwayFromZero(t *testing.T) {
	// n=3: 25th index round(0.5)=1, 75th index round(1.5)=2
	p25, p50, p75 := Percentiles([]float64{10, 30, 20})

	assert.Equal(t, 20.0, p25)
	assert.Equal(t, 20.0, p50)
	assert.Equal(t, 30.0, p75)
}

func TestRowValue(t *testing.T) {
	row, err := Compute([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	for _, s := range All {
		_, ok := row.Value(s)
		assert.True(t, ok, s.String())
	}
	median, _ := row.Value(Median)
	assert.Equal(t, row.Median, median)

	_, ok := row.Value(Stat(99))
	assert.False(t, ok)
}

func TestStatString(t *testing.T) {
	names := make([]string, 0, len(All))
	for _, s := range All {
		names = append(names, s.String())
	}

	assert.Equal(t, []string{
		"mean", "median", "range", "variance", "standard deviation",
		"percentile 25", "percentile 50", "percentile 75", "skewness", "kurtosis",
	}, names)
	assert.Equal(t, "Stat(42)", Stat(42).String())
}

func TestRelate(t *testing.T) {
	t.Run("perfect positive", func(t *testing.T) {
		rel, err := Relate([]float64{1, 2, 3}, []float64{10, 20, 30})

		require.NoError(t, err)
		assert.True(t, rel.Defined)
		assert.InDelta(t, 1.0, rel.Pearson, 1e-12)
		// sample covariance: sum((x-2)(y-20)) / 2 = (10 + 0 + 10) / 2
		assert.InDelta(t, 10.0, rel.Covariance, 1e-12)
	})

	t.Run("perfect negative", func(t *testing.T) {
		rel, err := Relate([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})

		require.NoError(t, err)
		assert.InDelta(t, -1.0, rel.Pearson, 1e-12)
	})

	t.Run("too few pairs", func(t *testing.T) {
		rel, err := Relate([]float64{1}, []float64{2})

		assert.Error(t, err)
		assert.False(t, rel.Defined)
		assert.Equal(t, 1, rel.Count)
	})

	t.Run("constant side", func(t *testing.T) {
		rel, err := Relate([]float64{1, 2, 3}, []float64{5, 5, 5})

		assert.Error(t, err)
		assert.False(t, rel.Defined)
	})

	t.Run("non-finite values", func(t *testing.T) {
		for _, xs := range [][]float64{
			{1, math.NaN(), 3},
			{1, 2, math.Inf(1)},
		} {
			rel, err := Relate(xs, []float64{10, 20, 30})

			assert.Error(t, err)
			assert.False(t, rel.Defined)
			assert.Zero(t, rel.Pearson)
			assert.Zero(t, rel.Covariance)
		}
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := Relate([]float64{1, 2}, []float64{1})

		assert.Error(t, err)
	})
}
