package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/config"
	"github.com/yildizm/csvscope/internal/logger"
	"github.com/yildizm/csvscope/internal/monitor"
	"github.com/yildizm/csvscope/internal/ui"
)

var (
	exploreWatch bool
	exploreNoTUI bool
)

func newExploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Explore a dataset in the interactive terminal view",
		Long: `Load a dataset and open the interactive explorer.

Tabs: Data Explorer, Visualization, Statistics and Extras. Press ? inside the
view for key bindings. With --watch the file is reloaded whenever it changes.

Examples:
  csvscope explore data.csv
  csvscope explore --watch --palette emerald data.csv
  csvscope explore --no-tui -o markdown data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runExplore,
	}

	addDatasetFlags(cmd)
	addExploreFlags(cmd)

	return cmd
}

var paletteFlag string

func addExploreFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&exploreWatch, "watch", "w", false, "reload the view when the file changes")
	cmd.Flags().BoolVar(&exploreNoTUI, "no-tui", false, "disable terminal UI, output to stdout")
	cmd.Flags().StringVar(&paletteFlag, "palette", "", "starting palette (blue, emerald, indigo, red)")
}

// shouldUseTUIMode reports whether explore opens the interactive view
func shouldUseTUIMode() bool {
	return !exploreNoTUI && getOutputFormat() == "text" && !isVerbose()
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := validateFilePath(path); err != nil {
		return err
	}

	input, strict, err := effectiveInput(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine := newEngine(strict)
	opts := loadOptions(input)

	// ingestion errors are fatal before any UI starts
	report, err := engine.Run(ctx, path, opts)
	if err != nil {
		return err
	}

	if !shouldUseTUIMode() {
		return writeReport(cmd.OutOrStdout(), report)
	}

	uiOpts, err := uiOptions(cmd, GetGlobalConfig())
	if err != nil {
		return err
	}
	uiOpts.Watching = exploreWatch

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	model := ui.NewModel(report, uiOpts).WithReload(ui.LoadReportCommand(engine, path, opts))
	program := ui.NewProgram(model)

	if exploreWatch {
		watcher, err := newFileWatcher(path, newLogger("watch"))
		if err != nil {
			return err
		}
		defer watcher.Close()

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watcher.Run(watchCtx, func() {
			program.Send(ui.Reload(watchCtx, engine, path, opts))
		})
	}

	_, err = program.Run()
	return err
}

// uiOptions merges the ui config with the --palette flag
func uiOptions(cmd *cobra.Command, cfg *config.Config) (ui.Options, error) {
	palette := cfg.UI.Palette
	if flagChanged(cmd, "palette") {
		probe := *cfg
		probe.UI.Palette = paletteFlag
		if err := probe.Validate(); err != nil {
			return ui.Options{}, err
		}
		palette = paletteFlag
	}

	return ui.Options{
		Palette:     palette,
		RowWindow:   cfg.UI.RowWindow,
		ChartWidth:  cfg.UI.ChartWidth,
		ChartHeight: cfg.UI.ChartHeight,
		Precision:   cfg.Output.Precision,
	}, nil
}

// redirectLogs keeps log lines off the alternate screen: they go to the
// --log-file when given and are discarded otherwise
func redirectLogs() (func(), error) {
	if logFile == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(nil) }, nil
	}

	// #nosec G304 - user supplied log destination
	f, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)

	return func() {
		logger.SetOutput(nil)
		if err := f.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}, nil
}

// analyzeFile runs the pipeline for commands that print instead of exploring
func analyzeFile(cmd *cobra.Command, path string, metrics *monitor.Collector) (*analysis.Report, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}

	input, strict, err := effectiveInput(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return newEngine(strict).WithMonitor(metrics).Run(ctx, path, loadOptions(input))
}
