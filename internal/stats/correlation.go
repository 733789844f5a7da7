package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Relation describes how the two coordinates of a plot series move together
type Relation struct {
	Count      int     `json:"count"`
	Pearson    float64 `json:"pearson"`
	Covariance float64 `json:"covariance"`
	Defined    bool    `json:"defined"`
}

// Relate computes the Pearson correlation and sample covariance of paired
// values. Fewer than two pairs, a constant side or a non-finite result leave
// it undefined.
func Relate(xs, ys []float64) (Relation, error) {
	if len(xs) != len(ys) {
		return Relation{}, fmt.Errorf("mismatched lengths %d and %d", len(xs), len(ys))
	}
	rel := Relation{Count: len(xs)}
	if rel.Count < 2 {
		return rel, fmt.Errorf("correlation needs at least 2 pairs, got %d", rel.Count)
	}
	if constant(xs) || constant(ys) {
		return rel, fmt.Errorf("correlation undefined for a constant series")
	}

	pearson := stat.Correlation(xs, ys, nil)
	covariance := stat.Covariance(xs, ys, nil)
	if !isFinite(pearson) || !isFinite(covariance) {
		return rel, fmt.Errorf("correlation undefined for non-finite values")
	}

	rel.Pearson = pearson
	rel.Covariance = covariance
	rel.Defined = true
	return rel, nil
}

func constant(values []float64) bool {
	return floats.Max(values) == floats.Min(values)
}
