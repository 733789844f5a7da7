package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/dataset"
)

// ReportMsg delivers a freshly computed report that replaces the current one
type ReportMsg struct {
	Report *analysis.Report
}

// ReloadErrorMsg reports a failed reload; the current report stays on screen
type ReloadErrorMsg struct {
	Err error
}

// LoadReportCommand creates a tea command that reloads and reanalyzes path
func LoadReportCommand(engine *analysis.Engine, path string, opts dataset.LoadOptions) tea.Cmd {
	return func() tea.Msg {
		return Reload(context.Background(), engine, path, opts)
	}
}

// Reload runs the full pipeline and wraps the outcome as a message
func Reload(ctx context.Context, engine *analysis.Engine, path string, opts dataset.LoadOptions) tea.Msg {
	report, err := engine.Run(ctx, path, opts)
	if err != nil {
		return ReloadErrorMsg{Err: err}
	}
	return ReportMsg{Report: report}
}
