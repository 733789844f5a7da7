package config

import (
	"fmt"
	"unicode/utf8"
)

// Config holds the complete application configuration
type Config struct {
	Version        string               `yaml:"version" json:"version"`
	Input          InputConfig          `yaml:"input" json:"input"`
	Classification ClassificationConfig `yaml:"classification" json:"classification"`
	UI             UIConfig             `yaml:"ui" json:"ui"`
	Output         OutputConfig         `yaml:"output" json:"output"`
}

// InputConfig configures how datasets are tokenized
type InputConfig struct {
	Delimiter        string `yaml:"delimiter" json:"delimiter"`                   // single character
	Comment          string `yaml:"comment" json:"comment"`                       // optional comment prefix
	LazyQuotes       bool   `yaml:"lazy_quotes" json:"lazy_quotes"`               // tolerate bare quotes
	TrimLeadingSpace bool   `yaml:"trim_leading_space" json:"trim_leading_space"` // strip space after delimiters
	Sheet            string `yaml:"sheet" json:"sheet"`                           // xlsx sheet, empty means first
	MaxRows          int    `yaml:"max_rows" json:"max_rows"`                     // cap on kept records
}

// ClassificationConfig configures numeric column detection
type ClassificationConfig struct {
	StrictMode bool `yaml:"strict_mode" json:"strict_mode"`
}

// UIConfig configures the interactive view
type UIConfig struct {
	Palette     string `yaml:"palette" json:"palette"`           // blue|emerald|indigo|red
	RowWindow   int    `yaml:"row_window" json:"row_window"`     // rows shown around the selection
	ChartWidth  int    `yaml:"chart_width" json:"chart_width"`   // canvas columns per chart
	ChartHeight int    `yaml:"chart_height" json:"chart_height"` // canvas rows per chart
	NoEmoji     bool   `yaml:"no_emoji" json:"no_emoji"`
}

// OutputConfig configures non-interactive output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	Precision     int    `yaml:"precision" json:"precision"` // decimals for statistics
}

// Palettes lists the accepted ui.palette values
var Palettes = []string{"blue", "emerald", "indigo", "red"}

// Formats lists the accepted output.default_format values
var Formats = []string{"text", "json", "markdown", "csv"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			Delimiter: ",",
			MaxRows:   1000000,
		},
		UI: UIConfig{
			Palette:     "blue",
			RowWindow:   20,
			ChartWidth:  48,
			ChartHeight: 16,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			Precision:     4,
		},
	}
}

// DelimiterRune returns the configured field separator
func (c InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CommentRune returns the comment prefix, or 0 when comments are disabled
func (c InputConfig) CommentRune() rune {
	if c.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Comment)
	return r
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateInputConfig() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if !validSeparator(c.Input.DelimiterRune()) {
		return fmt.Errorf("invalid delimiter: %q", c.Input.Delimiter)
	}
	if c.Input.Comment != "" {
		if utf8.RuneCountInString(c.Input.Comment) != 1 {
			return fmt.Errorf("comment must be a single character, got %q", c.Input.Comment)
		}
		if !validSeparator(c.Input.CommentRune()) || c.Input.CommentRune() == c.Input.DelimiterRune() {
			return fmt.Errorf("invalid comment character: %q", c.Input.Comment)
		}
	}
	if c.Input.MaxRows < 1 {
		return fmt.Errorf("max_rows must be greater than 0")
	}
	return nil
}

func (c *Config) validateUIConfig() error {
	if !contains(Palettes, c.UI.Palette) {
		return fmt.Errorf("invalid palette: %s (must be one of: blue, emerald, indigo, red)", c.UI.Palette)
	}
	if c.UI.RowWindow < 1 {
		return fmt.Errorf("row_window must be greater than 0")
	}
	if c.UI.ChartWidth < 1 || c.UI.ChartHeight < 1 {
		return fmt.Errorf("chart_width and chart_height must be greater than 0")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" && !contains(Formats, c.Output.DefaultFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown, csv)", c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		return fmt.Errorf("precision must be between 0 and 15")
	}
	return nil
}

// validSeparator mirrors the runes encoding/csv rejects as delimiters
func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
