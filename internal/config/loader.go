package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "CSVSCOPE_"

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.csvscope.yaml",               // Project-specific config (highest priority)
	"~/.config/csvscope/config.yaml", // User config
	"/etc/csvscope/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFile     string
	lookupEnv   func(string) (string, bool)
}

// NewLoader creates a new config loader reading overrides from the process
// environment and, when present, ./.env
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFile:     ".env",
		lookupEnv:   os.LookupEnv,
	}
}

// WithEnvFile sets the dotenv file consulted for overrides. Empty disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables, then the dotenv file
// 3. ./.csvscope.yaml
// 4. ~/.config/csvscope/config.yaml
// 5. /etc/csvscope/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over the current config. Keys absent from
// the file keep their previous value, booleans included.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or a fixed search path
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	merged := *config
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	*config = merged

	return nil
}

// lookup returns an override from the environment, falling back to the
// dotenv values
func (l *Loader) lookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}
}

// readEnvFile parses the dotenv file without touching the process environment
func (l *Loader) readEnvFile() (map[string]string, error) {
	if l.envFile == "" || !fileExists(l.envFile) {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(l.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.envFile, err)
	}
	return values, nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	dotenv, err := l.readEnvFile()
	if err != nil {
		return err
	}
	lookup := l.lookup(dotenv)

	envMappings := map[string]func(string) error{
		// Input Config
		"INPUT_DELIMITER":          func(v string) error { config.Input.Delimiter = v; return nil },
		"INPUT_COMMENT":            func(v string) error { config.Input.Comment = v; return nil },
		"INPUT_LAZY_QUOTES":        func(v string) error { return parseBool(v, &config.Input.LazyQuotes) },
		"INPUT_TRIM_LEADING_SPACE": func(v string) error { return parseBool(v, &config.Input.TrimLeadingSpace) },
		"INPUT_SHEET":              func(v string) error { config.Input.Sheet = v; return nil },
		"INPUT_MAX_ROWS":           func(v string) error { return parseInt(v, &config.Input.MaxRows) },

		// Classification Config
		"CLASSIFICATION_STRICT_MODE": func(v string) error { return parseBool(v, &config.Classification.StrictMode) },

		// UI Config
		"UI_PALETTE":      func(v string) error { config.UI.Palette = strings.ToLower(v); return nil },
		"UI_ROW_WINDOW":   func(v string) error { return parseInt(v, &config.UI.RowWindow) },
		"UI_CHART_WIDTH":  func(v string) error { return parseInt(v, &config.UI.ChartWidth) },
		"UI_CHART_HEIGHT": func(v string) error { return parseInt(v, &config.UI.ChartHeight) },
		"UI_NO_EMOJI":     func(v string) error { return parseBool(v, &config.UI.NoEmoji) },

		// Output Config
		"OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"OUTPUT_PRECISION":      func(v string) error { return parseInt(v, &config.Output.Precision) },
	}

	for suffix, setter := range envMappings {
		envVar := EnvPrefix + suffix
		if value, ok := lookup(envVar); ok {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// Marshal renders a config as YAML
func Marshal(config *Config) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range GetConfigPaths() {
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
