package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/config"
	"github.com/yildizm/csvscope/internal/dataset"
	"github.com/yildizm/csvscope/internal/emoji"
	"github.com/yildizm/csvscope/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	logFile   string

	globalConfig *config.Config
)

// skipConfigAnnotation marks commands that must work with a broken config
const skipConfigAnnotation = "csvscope/skip-config"

// NewRootCommand creates the root command. Given a file and no subcommand it
// behaves like explore.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvscope [file]",
		Short: "Explore and summarize CSV datasets",
		Long: `CSVScope loads a delimited text file (or an .xlsx sheet), detects its numeric
columns and shows them in an interactive terminal explorer: the raw rows, line
and scatter charts of paired columns, a statistics table and per-pair
correlation.

Use the stats command or --no-tui for plain text, JSON, Markdown or CSV output.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setupGlobals,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runExplore(cmd, args)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while the interactive view runs")

	addDatasetFlags(rootCmd)
	addExploreFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newExploreCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// setupGlobals loads the configuration and lets explicit flags override it
func setupGlobals(cmd *cobra.Command, args []string) error {
	if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
		emoji.SetEmojiDisabled(noEmoji)
		return nil
	}

	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	globalConfig = cfg

	if !flagChanged(cmd, "verbose") {
		verbose = cfg.Output.Verbose
	}
	if !flagChanged(cmd, "output") {
		outputFmt = cfg.Output.DefaultFormat
	}

	// Auto-disable emojis on Windows if not explicitly set
	if runtime.GOOS == "windows" && !flagChanged(cmd, "no-emoji") {
		noEmoji = true
	}
	if !flagChanged(cmd, "no-emoji") && cfg.UI.NoEmoji {
		noEmoji = true
	}
	emoji.SetEmojiDisabled(noEmoji)

	if noColor {
		// lipgloss and the palette helpers both honor NO_COLOR
		if err := os.Setenv("NO_COLOR", "1"); err != nil {
			return fmt.Errorf("failed to disable color: %w", err)
		}
	}

	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && flag.Changed
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",

		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CSVScope %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func isEmojiDisabled() bool {
	return noEmoji
}

// GetGlobalConfig returns the loaded configuration, or defaults before loading
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// dataset flags shared by every command that reads an input file
var (
	delimiterFlag string
	sheetFlag     string
	strictFlag    bool
)

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", "", "field delimiter (default from config, usually ',')")
	cmd.Flags().StringVar(&sheetFlag, "sheet", "", "xlsx sheet to read (default: first sheet)")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "classify a column numeric only when every value parses")
}

// effectiveInput merges the dataset flags over the loaded configuration
func effectiveInput(cmd *cobra.Command) (config.InputConfig, bool, error) {
	cfg := GetGlobalConfig()
	input := cfg.Input
	strict := cfg.Classification.StrictMode

	if flagChanged(cmd, "delimiter") {
		input.Delimiter = delimiterFlag
		probe := *cfg
		probe.Input = input
		if err := probe.Validate(); err != nil {
			return input, strict, err
		}
	}
	if flagChanged(cmd, "sheet") {
		input.Sheet = sheetFlag
	}
	if flagChanged(cmd, "strict") {
		strict = strictFlag
	}
	return input, strict, nil
}

// loadOptions maps the input configuration onto the dataset loader
func loadOptions(input config.InputConfig) dataset.LoadOptions {
	return dataset.LoadOptions{
		Delimiter:        input.DelimiterRune(),
		Comment:          input.CommentRune(),
		LazyQuotes:       input.LazyQuotes,
		TrimLeadingSpace: input.TrimLeadingSpace,
		Sheet:            input.Sheet,
		MaxRows:          input.MaxRows,
	}
}

// newEngine builds the analysis engine for a command
func newEngine(strict bool) *analysis.Engine {
	return analysis.NewEngine().
		WithStrict(strict).
		WithLogger(newLogger("analysis"))
}
