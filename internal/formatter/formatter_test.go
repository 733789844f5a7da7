package formatter

import (
	"context"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/stats"
)

func sampleReport(t *testing.T) *analysis.Report {
	t.Helper()
	table := &dataset.Table{
		Source: "sample.csv",
		Header: dataset.Header{"A", "B", "name", "C"},
		Records: []dataset.Record{
			{"3", "30", "c", "x"},
			{"1", "10", "a", "7"},
			{"2", "20", "b", "8"},
		},
		Dropped: 1,
	}
	report, err := analysis.NewEngine().Analyze(context.Background(), table)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return report
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "terminal", "", "json", "markdown", "md", "csv"} {
		if _, err := New(format, DefaultOptions()); err != nil {
			t.Errorf("New(%q) failed: %v", format, err)
		}
	}
	if _, err := New("xml", DefaultOptions()); err == nil {
		t.Error("Expected unknown format to fail")
	}
}

func TestTerminalFormatter(t *testing.T) {
	opts := DefaultOptions()
	opts.Color = false
	opts.Precision = 2

	out, err := NewTerminal(opts).Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"Dataset Summary",
		"sample.csv",
		"S/N",
		"Measurement",
		"standard deviation",
		"A vs B",
		"C vs " + dataset.CounterLabel,
		"Ambiguous Columns",
		"C: 1 value(s) dropped, 2 kept",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	// kurtosis of three values is undefined
	if !strings.Contains(output, notAvailable) {
		t.Errorf("expected undefined statistics to print %s", notAvailable)
	}
}

func TestTerminalFormatter_NoNumericColumns(t *testing.T) {
	report, err := analysis.NewEngine().Analyze(context.Background(), &dataset.Table{
		Header:  dataset.Header{"name"},
		Records: []dataset.Record{{"alice"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := NewTerminal(DefaultOptions()).Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "no numeric columns") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSON(DefaultOptions()).Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Summary.Rows != 3 || doc.Summary.Dropped != 1 || doc.Summary.ProbeMode != "first" {
		t.Errorf("unexpected summary %+v", doc.Summary)
	}
	if len(doc.Statistics) != 3 {
		t.Fatalf("Expected 3 numeric columns, got %d", len(doc.Statistics))
	}

	a := doc.Statistics[0]
	if a.Label != "A" || a.Values["mean"] == nil || *a.Values["mean"] != 2 {
		t.Errorf("unexpected stats for A: %+v", a)
	}
	if a.Values["kurtosis"] != nil {
		t.Errorf("undefined kurtosis should be null, got %v", *a.Values["kurtosis"])
	}

	if len(doc.Series) != 2 || doc.Series[0].Pearson == nil {
		t.Fatalf("unexpected series %+v", doc.Series)
	}
	if len(doc.Ambiguities) != 1 {
		t.Errorf("Expected one ambiguity, got %d", len(doc.Ambiguities))
	}
}

func TestJSONFormatter_NonFiniteValues(t *testing.T) {
	report := &analysis.Report{
		Source: "odd.csv",
		Header: dataset.Header{"A", "B"},
		Labels: []string{"A"},
		Stats: []analysis.ColumnStats{{
			Label: "A",
			Row:   stats.Row{Count: 2, Mean: math.NaN(), Range: math.Inf(1), Median: 1.5},
		}},
		Relations: []analysis.SeriesRelation{{
			Labels:   dataset.LabelPair{X: "A", Y: "B"},
			Relation: stats.Relation{Count: 2, Pearson: math.NaN(), Covariance: math.Inf(-1), Defined: true},
		}},
	}

	out, err := NewJSON(DefaultOptions()).Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	values := doc.Statistics[0].Values
	for _, name := range []string{"mean", "range"} {
		if values[name] != nil {
			t.Errorf("%s should be null, got %v", name, *values[name])
		}
	}
	if values["median"] == nil || *values["median"] != 1.5 {
		t.Errorf("finite median lost: %v", values["median"])
	}
	if doc.Series[0].Pearson != nil || doc.Series[0].Covariance != nil {
		t.Errorf("non-finite relation should be null: %+v", doc.Series[0])
	}

	text, err := NewCSV(DefaultOptions()).Format(report)
	if err != nil {
		t.Fatalf("CSV format failed: %v", err)
	}
	if strings.Contains(string(text), "NaN") || strings.Contains(string(text), "Inf") {
		t.Errorf("non-finite value leaked into CSV:\n%s", text)
	}
}

func TestJSONFormatter_NaNCells(t *testing.T) {
	table := &dataset.Table{
		Source:  "pandas.csv",
		Header:  dataset.Header{"a", "b"},
		Records: []dataset.Record{{"1", "10"}, {"2", "NaN"}, {"3", "inf"}, {"NaN", "40"}},
	}
	report, err := analysis.NewEngine().Analyze(context.Background(), table)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	out, err := NewJSON(DefaultOptions()).Format(report)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got := strings.Join(doc.Summary.NumericLabels, ","); got != "a,b" {
		t.Errorf("numeric labels = %q, want a,b", got)
	}
	if len(doc.Ambiguities) != 2 {
		t.Errorf("Expected both columns reported as ambiguous, got %+v", doc.Ambiguities)
	}
	if mean := doc.Statistics[0].Values["mean"]; mean == nil || *mean != 2 {
		t.Errorf("mean of a = %v, want 2", mean)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdown(DefaultOptions()).Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"# Dataset Report",
		"## Summary",
		"| S/N | Measurement | A | B | C |",
		"| 1 | mean | 2.0000 | 20.0000 |",
		"## Series",
		"## Ambiguous Columns",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	opts := DefaultOptions()
	opts.Precision = 1

	out, err := NewCSV(opts).Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	if len(records) != 11 {
		t.Fatalf("Expected header plus 10 statistics, got %d rows", len(records))
	}
	if strings.Join(records[0], ",") != "S/N,Measurement,A,B,C" {
		t.Errorf("unexpected header %v", records[0])
	}
	if strings.Join(records[3], ",") != "3,range,2.0,20.0,1.0" {
		t.Errorf("unexpected range row %v", records[3])
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%d) = %s, want %s", in, got, want)
		}
	}
}
