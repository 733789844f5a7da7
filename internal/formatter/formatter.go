package formatter

import (
	"fmt"

	"github.com/yildizm/csvscope/internal/analysis"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *analysis.Report) ([]byte, error)
}

// Options shared by the formatters
type Options struct {
	Precision int  // decimals for statistics
	Color     bool // text only
	Emoji     bool // text only
}

// DefaultOptions returns four decimals with colour and emoji enabled
func DefaultOptions() Options {
	return Options{Precision: 4, Color: true, Emoji: true}
}

// New returns the formatter registered for format
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(opts), nil
	case "markdown", "md":
		return NewMarkdown(opts), nil
	case "csv":
		return NewCSV(opts), nil
	case "text", "terminal", "":
		return NewTerminal(opts), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
