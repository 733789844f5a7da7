package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/csvscope/internal/logger"
)

// reloadDelay coalesces the burst of events a single save produces
const reloadDelay = 150 * time.Millisecond

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Reprint the statistics report whenever a dataset changes",
		Long: `Monitor a dataset for changes and print a fresh report after every write.

Uses file system notifications on the file's directory, so editors that save
by replacing the file are picked up too. Press Ctrl+C to stop watching.

Examples:
  csvscope watch data.csv
  csvscope watch -o json data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	addDatasetFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	printReport := func() {
		report, err := analyzeFile(cmd, path, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
			return
		}
		if err := writeReport(out, report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to print report: %v\n", err)
		}
	}

	// the first report must succeed, later failures only warn
	report, err := analyzeFile(cmd, path, nil)
	if err != nil {
		return err
	}
	if err := writeReport(out, report); err != nil {
		return err
	}

	watcher, err := newFileWatcher(path, newLogger("watch"))
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", path)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	return watcher.Run(ctx, printReport)
}

// fileWatcher reports changes to one file by watching its directory
type fileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	log     *logger.Logger
}

// newFileWatcher starts watching the directory that holds path
func newFileWatcher(path string, log *logger.Logger) (*fileWatcher, error) {
	if err := validateWatchFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		cleanupWatcher(watcher, log)
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &fileWatcher{watcher: watcher, target: target, log: log}, nil
}

// Close stops the watcher
func (w *fileWatcher) Close() {
	cleanupWatcher(w.watcher, w.log)
}

// Run calls onChange once per burst of write or create events on the target
// until ctx is done or the watcher is closed
func (w *fileWatcher) Run(ctx context.Context, onChange func()) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pending:
			pending = nil
			w.log.Debug("reloading %s", w.target)
			onChange()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				pending = time.After(reloadDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

// relevant reports whether event changed the watched file's content
func (w *fileWatcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

// validateWatchFilePath checks that path names an existing regular file.
// Relative paths, parent directories included, are accepted like any other
// input path.
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
