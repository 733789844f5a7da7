package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/formatter"
	"github.com/yildizm/csvscope/internal/monitor"
)

var (
	statsOutputFile string
	statsTimings    bool
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print the statistics report of a dataset",
		Long: `Compute per-column statistics, column pairs and their correlation and
print them without starting the interactive view.

Examples:
  csvscope stats data.csv
  csvscope stats -o json data.csv
  csvscope stats -o markdown --output-file report.md data.csv
  csvscope stats --strict -d ';' export.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runStats,
	}

	addDatasetFlags(cmd)
	cmd.Flags().StringVar(&statsOutputFile, "output-file", "", "save output to file instead of stdout")
	cmd.Flags().BoolVar(&statsTimings, "timings", false, "print pipeline phase timings to stderr")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	var metrics *monitor.Collector
	if statsTimings {
		metrics = monitor.New()
	}

	report, err := analyzeFile(cmd, args[0], metrics)
	if err != nil {
		return err
	}
	if statsTimings {
		fmt.Fprint(cmd.ErrOrStderr(), monitor.FormatText(metrics.Snapshot()))
	}

	if statsOutputFile == "" {
		return writeReport(cmd.OutOrStdout(), report)
	}

	output, err := formatReport(report)
	if err != nil {
		return err
	}
	if err := writeOutputBytesToFile(output, statsOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", statsOutputFile)
	}
	return nil
}

// formatReport renders the report in the selected output format
func formatReport(report *analysis.Report) ([]byte, error) {
	f, err := formatter.New(getOutputFormat(), formatter.Options{
		Precision: GetGlobalConfig().Output.Precision,
		Color:     !noColor,
		Emoji:     !isEmojiDisabled(),
	})
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}

func writeReport(w io.Writer, report *analysis.Report) error {
	output, err := formatReport(report)
	if err != nil {
		return err
	}
	_, err = w.Write(output)
	return err
}

// validateFilePath rejects empty paths and directories. Missing files are
// left to the loader, which reports them as ingestion errors.
func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
