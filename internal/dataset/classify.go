package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ProbeMode selects how a column is tested for being numeric
type ProbeMode int

const (
	// ProbeFirst checks only the lexicographically smallest value.
	// Values that do not parse are dropped from the column afterwards.
	ProbeFirst ProbeMode = iota
	// ProbeStrict requires every value of the column to parse
	ProbeStrict
)

func (m ProbeMode) String() string {
	switch m {
	case ProbeFirst:
		return "first"
	case ProbeStrict:
		return "strict"
	default:
		return fmt.Sprintf("ProbeMode(%d)", int(m))
	}
}

// Ambiguity records a column accepted as numeric although some of its
// values did not parse and were silently dropped
type Ambiguity struct {
	Label   string `json:"label"`
	Dropped int    `json:"dropped"`
	Kept    int    `json:"kept"`
}

// Classification is the result of column classification
type Classification struct {
	Columns     []NumericColumn `json:"columns"`
	Labels      []string        `json:"labels"`
	Ambiguities []Ambiguity     `json:"ambiguities,omitempty"`
}

// Classify selects the numeric columns of a table.
//
// Each column is sorted as strings before probing, so the parsed values
// follow string order ("10" sorts before "2").
func Classify(records []Record, header Header, mode ProbeMode) Classification {
	result := Classification{
		Columns: []NumericColumn{},
		Labels:  []string{},
	}

	for index, column := range transpose(records, len(header)) {
		if len(column) == 0 {
			continue
		}
		sort.Strings(column)

		var values []float64
		var ok bool
		switch mode {
		case ProbeStrict:
			values, ok = parseAll(column)
		default:
			values, ok = parseAfterProbe(column)
		}
		if !ok {
			continue
		}

		label := header[index]
		result.Columns = append(result.Columns, NumericColumn{Label: label, Values: values})
		result.Labels = append(result.Labels, label)

		if dropped := len(column) - len(values); dropped > 0 {
			result.Ambiguities = append(result.Ambiguities, Ambiguity{
				Label:   label,
				Dropped: dropped,
				Kept:    len(values),
			})
		}
	}

	return result
}

// transpose turns row-major records into one string slice per column
func transpose(records []Record, width int) [][]string {
	columns := make([][]string, width)
	for i := range columns {
		columns[i] = make([]string, 0, len(records))
	}
	for _, record := range records {
		for index, field := range record {
			if index < width {
				columns[index] = append(columns[index], field)
			}
		}
	}
	return columns
}

// parseAfterProbe probes the first value (trimmed) and then keeps every
// untrimmed value that parses
func parseAfterProbe(column []string) ([]float64, bool) {
	if !isValidFloat(column[0]) {
		return nil, false
	}

	values := make([]float64, 0, len(column))
	for _, s := range column {
		if v, ok := parseFinite(s); ok {
			values = append(values, v)
		}
	}
	return values, true
}

func parseAll(column []string) ([]float64, bool) {
	values := make([]float64, 0, len(column))
	for _, s := range column {
		v, ok := parseFinite(strings.TrimSpace(s))
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

func isValidFloat(s string) bool {
	_, ok := parseFinite(strings.TrimSpace(s))
	return ok
}

// parseFinite parses s as a float. NaN and infinities (including overflow
// such as "1e400") count as unparsable.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
