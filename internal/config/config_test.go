package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Input.Delimiter != "," {
		t.Errorf("Expected delimiter ',', got %q", cfg.Input.Delimiter)
	}
	if cfg.Classification.StrictMode {
		t.Error("Expected legacy probe by default")
	}
	if cfg.UI.Palette != "blue" {
		t.Errorf("Expected palette blue, got %s", cfg.UI.Palette)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "multi-character delimiter",
			mutate: func(c *Config) { c.Input.Delimiter = ";;" },
			errMsg: `delimiter must be a single character, got ";;"`,
		},
		{
			name:   "quote delimiter",
			mutate: func(c *Config) { c.Input.Delimiter = `"` },
			errMsg: `invalid delimiter: "\""`,
		},
		{
			name:   "comment equals delimiter",
			mutate: func(c *Config) { c.Input.Comment = "," },
			errMsg: `invalid comment character: ","`,
		},
		{
			name:   "tab delimiter with comment",
			mutate: func(c *Config) { c.Input.Delimiter = "\t"; c.Input.Comment = "#" },
		},
		{
			name:   "zero max rows",
			mutate: func(c *Config) { c.Input.MaxRows = 0 },
			errMsg: "max_rows must be greater than 0",
		},
		{
			name:   "invalid palette",
			mutate: func(c *Config) { c.UI.Palette = "purple" },
			errMsg: "invalid palette: purple (must be one of: blue, emerald, indigo, red)",
		},
		{
			name:   "zero row window",
			mutate: func(c *Config) { c.UI.RowWindow = 0 },
			errMsg: "row_window must be greater than 0",
		},
		{
			name:   "zero chart height",
			mutate: func(c *Config) { c.UI.ChartHeight = 0 },
			errMsg: "chart_width and chart_height must be greater than 0",
		},
		{
			name:   "invalid output format",
			mutate: func(c *Config) { c.Output.DefaultFormat = "invalid" },
			errMsg: "invalid output format: invalid (must be one of: text, json, markdown, csv)",
		},
		{
			name:   "precision too high",
			mutate: func(c *Config) { c.Output.Precision = 16 },
			errMsg: "precision must be between 0 and 15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %q but got none", tt.errMsg)
			}
			if err.Error() != tt.errMsg {
				t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
			}
		})
	}
}

func TestRunes(t *testing.T) {
	input := InputConfig{Delimiter: "|", Comment: "#"}
	if input.DelimiterRune() != '|' {
		t.Errorf("DelimiterRune() = %q", input.DelimiterRune())
	}
	if input.CommentRune() != '#' {
		t.Errorf("CommentRune() = %q", input.CommentRune())
	}
	if (InputConfig{}).CommentRune() != 0 {
		t.Error("empty comment should disable comments")
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			if !strings.Contains(content, "delimiter") {
				t.Fatalf("sample lacks input section")
			}
			cfg, err := loadString(t, content)
			if err != nil {
				t.Fatalf("sample config rejected: %v", err)
			}
			if cfg.Input.Delimiter != "," {
				t.Errorf("Expected delimiter ',', got %q", cfg.Input.Delimiter)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"relative path", "./config.yaml"},
		{"absolute path", "/etc/csvscope/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.input {
				t.Errorf("Expected %s, got %s", tt.input, got)
			}
		})
	}

	if got := expandPath("~/.config/csvscope/config.yaml"); strings.HasPrefix(got, "~") {
		t.Errorf("Expected path to be expanded, got %s", got)
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 config paths, got %d", len(paths))
	}
	if paths[0] != "./.csvscope.yaml" {
		t.Errorf("Expected project config first, got %s", paths[0])
	}
	if strings.HasPrefix(paths[1], "~") {
		t.Errorf("Expected user path to be expanded, got %s", paths[1])
	}
	if paths[2] != "/etc/csvscope/config.yaml" {
		t.Errorf("Expected system config last, got %s", paths[2])
	}
}
