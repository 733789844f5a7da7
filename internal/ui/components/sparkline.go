package components

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

var sparkChars = []rune("▁▂▃▄▅▆▇█")

// SparklineChart draws values as a single row of block characters
type SparklineChart struct {
	Values []float64
	Width  int
	Min    float64
	Max    float64
}

// NewSparklineChart creates a new sparkline chart. Min and Max cover the
// finite values only.
func NewSparklineChart(values []float64, width int) *SparklineChart {
	s := &SparklineChart{Values: values, Width: width}
	if bounded := finite(values); len(bounded) > 0 {
		s.Min = floats.Min(bounded)
		s.Max = floats.Max(bounded)
	}
	return s
}

// Render samples the values down to Width characters. Non-finite samples
// are drawn as blanks.
func (s *SparklineChart) Render() string {
	if len(s.Values) == 0 || s.Width <= 0 {
		return ""
	}

	step := max(1, len(s.Values)/s.Width)

	var result strings.Builder
	for i := 0; i < s.Width && i*step < len(s.Values); i++ {
		v := s.Values[i*step]
		if !isFinite(v) {
			result.WriteRune(' ')
			continue
		}
		normalized := 0.0
		if s.Max > s.Min {
			normalized = (v - s.Min) / (s.Max - s.Min)
		}
		index := min(max(0, int(normalized*float64(len(sparkChars)-1))), len(sparkChars)-1)
		result.WriteRune(sparkChars[index])
	}

	return result.String()
}
