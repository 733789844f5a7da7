// Package stats computes the descriptive statistics shown for every
// numeric column: mean, median, range, population variance and standard
// deviation, nearest-rank percentiles, skewness and excess kurtosis.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Stat identifies one statistic of a Row
type Stat int

const (
	Mean Stat = iota
	Median
	Range
	Variance
	StdDev
	P25
	P50
	P75
	Skewness
	Kurtosis
)

// All lists the statistics in display order
var All = []Stat{Mean, Median, Range, Variance, StdDev, P25, P50, P75, Skewness, Kurtosis}

var statNames = map[Stat]string{
	Mean:     "mean",
	Median:   "median",
	Range:    "range",
	Variance: "variance",
	StdDev:   "standard deviation",
	P25:      "percentile 25",
	P50:      "percentile 50",
	P75:      "percentile 75",
	Skewness: "skewness",
	Kurtosis: "kurtosis",
}

func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

// minCount is the smallest sample each statistic is defined for
var minCount = map[Stat]int{
	Skewness: 3,
	Kurtosis: 4,
}

// DivisionError reports a statistic that cannot be computed for a sample
type DivisionError struct {
	Stat   Stat
	Count  int
	Reason string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("cannot compute %s over %d values: %s", e.Stat, e.Count, e.Reason)
}

// Row holds the statistics of one numeric column. Undefined lists the
// statistics whose fields were left at zero because they cannot be computed.
type Row struct {
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	Range     float64 `json:"range"`
	Variance  float64 `json:"variance"`
	StdDev    float64 `json:"std_dev"`
	P25       float64 `json:"p25"`
	P50       float64 `json:"p50"`
	P75       float64 `json:"p75"`
	Skewness  float64 `json:"skewness"`
	Kurtosis  float64 `json:"kurtosis"`
	Undefined []Stat  `json:"undefined,omitempty"`
}

// Defined reports whether s was computed
func (r Row) Defined(s Stat) bool {
	for _, u := range r.Undefined {
		if u == s {
			return false
		}
	}
	return true
}

// Value returns the statistic s and whether it is defined
func (r Row) Value(s Stat) (float64, bool) {
	field := r.field(s)
	if field == nil || !r.Defined(s) {
		return 0, false
	}
	return *field, true
}

func (r *Row) field(s Stat) *float64 {
	switch s {
	case Mean:
		return &r.Mean
	case Median:
		return &r.Median
	case Range:
		return &r.Range
	case Variance:
		return &r.Variance
	case StdDev:
		return &r.StdDev
	case P25:
		return &r.P25
	case P50:
		return &r.P50
	case P75:
		return &r.P75
	case Skewness:
		return &r.Skewness
	case Kurtosis:
		return &r.Kurtosis
	default:
		return nil
	}
}

// Compute calculates every statistic for values. The row is always
// returned; the error joins one *DivisionError per undefined statistic.
func Compute(values []float64) (Row, error) {
	row := Row{Count: len(values)}
	if len(values) == 0 {
		return row, row.undefineAll("empty sample")
	}
	for _, v := range values {
		if !isFinite(v) {
			return row, row.undefineAll("non-finite value")
		}
	}

	data := mstats.Float64Data(values)

	// none of these fail on a non-empty sample
	mean, _ := mstats.Mean(data)
	lo, _ := mstats.Min(data)
	hi, _ := mstats.Max(data)
	variance, _ := mstats.PopulationVariance(data)

	row.Mean = mean
	row.Range = hi - lo
	row.Variance = variance
	row.StdDev = math.Sqrt(variance)
	row.P25, row.P50, row.P75 = Percentiles(values)
	row.Median = row.P50

	var errs []error
	for _, s := range []Stat{Skewness, Kurtosis} {
		if err := row.checkShape(s); err != nil {
			errs = append(errs, err)
		}
	}
	if row.Defined(Skewness) {
		row.Skewness = skewness(values, mean, row.StdDev)
	}
	if row.Defined(Kurtosis) {
		row.Kurtosis = kurtosis(values, mean, row.StdDev)
	}

	// sums of large finite values can still overflow
	for _, s := range All {
		if v, ok := row.Value(s); ok && !isFinite(v) {
			*row.field(s) = 0
			errs = append(errs, row.undefine(s, "non-finite value"))
		}
	}

	return row, errors.Join(errs...)
}

// checkShape marks a moment statistic undefined for small or constant samples
func (r *Row) checkShape(s Stat) error {
	if need := minCount[s]; r.Count < need {
		return r.undefine(s, fmt.Sprintf("needs at least %d values", need))
	}
	if !isFinite(r.StdDev) {
		return r.undefine(s, "non-finite value")
	}
	if r.StdDev == 0 {
		return r.undefine(s, "standard deviation is zero")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r *Row) undefineAll(reason string) error {
	errs := make([]error, 0, len(All))
	for _, s := range All {
		errs = append(errs, r.undefine(s, reason))
	}
	return errors.Join(errs...)
}

func (r *Row) undefine(s Stat, reason string) error {
	r.Undefined = append(r.Undefined, s)
	return &DivisionError{Stat: s, Count: r.Count, Reason: reason}
}

// Percentiles returns the 25th, 50th and 75th nearest-rank percentiles
func Percentiles(values []float64) (p25, p50, p75 float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentile(sorted, 25), percentile(sorted, 50), percentile(sorted, 75)
}

// percentile picks the value at round(p/100 * (n-1)) of a sorted sample
func percentile(sorted []float64, p int) float64 {
	index := int(math.Round(float64(p) / 100 * float64(len(sorted)-1)))
	return sorted[index]
}

func skewness(values []float64, mean, stdDev float64) float64 {
	n := float64(len(values))
	var sum float64
	for _, x := range values {
		sum += math.Pow((x-mean)/stdDev, 3)
	}
	return sum / (n * (n - 1) * (n - 2)) * math.Sqrt(n)
}

func kurtosis(values []float64, mean, stdDev float64) float64 {
	n := float64(len(values))
	var sum float64
	for _, x := range values {
		sum += math.Pow((x-mean)/stdDev, 4)
	}
	scale := n * (n + 1) / math.Pow((n-1)*(n-2), 2)
	return sum/((n-1)*(n-2)*(n-3))*scale - 3
}
