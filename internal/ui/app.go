package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/csvscope/internal/analysis"
	"github.com/yildizm/csvscope/internal/nav"
	"github.com/yildizm/csvscope/internal/stats"
)

// Model is the interactive explorer state. The report is replaced as a whole
// on reload and never mutated.
type Model struct {
	report *analysis.Report
	opts   Options

	tabs      nav.Selection
	rows      nav.Selection // Data Explorer
	series    nav.Selection // Visualization
	measures  nav.Selection // Statistics
	relations nav.Selection // Extras

	palettes  nav.PaletteCursor[Palette]
	lifecycle nav.Lifecycle

	width    int
	height   int
	showHelp bool

	reloads   int
	reloadErr error
	reload    tea.Cmd
}

// NewModel creates the explorer over an analyzed report
func NewModel(report *analysis.Report, opts Options) *Model {
	m := &Model{
		opts:      opts,
		tabs:      nav.NewSelection(len(Tabs)),
		measures:  nav.NewSelection(len(stats.All)),
		palettes:  nav.NewPaletteCursor(Palettes, PaletteIndex(opts.Palette)),
		lifecycle: nav.Running,
	}
	m.setReport(report)
	return m
}

// WithReload binds the command run by the reload key
func (m *Model) WithReload(cmd tea.Cmd) *Model {
	m.reload = cmd
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ReportMsg:
		return m.handleReport(msg)
	case ReloadErrorMsg:
		return m.handleReloadError(msg)
	}
	return m, nil
}

// setReport swaps the report in and clamps every selection to the new sizes
func (m *Model) setReport(report *analysis.Report) {
	m.report = report

	var rows, series, relations int
	if report != nil {
		rows = report.Rows
		series = len(report.Series)
		relations = len(report.Relations)
	}

	m.rows.Resize(rows)
	m.series.Resize(series)
	m.relations.Resize(relations)
}

// active returns the selection j/k move on the current tab
func (m *Model) active() *nav.Selection {
	switch m.ActiveTab() {
	case TabVisualization:
		return &m.series
	case TabStatistics:
		return &m.measures
	case TabExtras:
		return &m.relations
	default:
		return &m.rows
	}
}

// handleWindowResize handles window resize events
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m.handleQuit()
	case "?":
		m.showHelp = !m.showHelp
	case "j", "down":
		m.active().Next()
	case "k", "up":
		m.active().Previous()
	case "l", "right":
		m.palettes.Next()
	case "h", "left":
		m.palettes.Previous()
	case "t", "enter":
		m.tabs.Next()
	case "b", "shift+tab":
		m.tabs.Previous()
	case "r":
		return m, m.reload
	}
	return m, nil
}

// handleQuit handles quit commands
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.lifecycle.Quit()
	return m, tea.Quit
}

// handleReport swaps in a reloaded report
func (m *Model) handleReport(msg ReportMsg) (tea.Model, tea.Cmd) {
	if msg.Report == nil {
		return m, nil
	}
	m.setReport(msg.Report)
	m.reloads++
	m.reloadErr = nil
	return m, nil
}

// handleReloadError keeps the current report and surfaces the failure
func (m *Model) handleReloadError(msg ReloadErrorMsg) (tea.Model, tea.Cmd) {
	m.reloadErr = msg.Err
	return m, nil
}

// Report returns the report on screen
func (m *Model) Report() *analysis.Report {
	return m.report
}

// ActiveTab returns the tab on screen
func (m *Model) ActiveTab() Tab {
	return Tabs[m.tabs.Index()]
}

// SelectedRow returns the highlighted record index in the data explorer
func (m *Model) SelectedRow() int {
	return m.rows.Index()
}

// SelectedSeries returns the plot series shown in the visualization tab
func (m *Model) SelectedSeries() int {
	return m.series.Index()
}

// Palette returns the palette in use
func (m *Model) Palette() Palette {
	p, ok := m.palettes.Current()
	if !ok {
		return Blue
	}
	return p
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.lifecycle.Done()
}

// ReloadErr returns the last reload failure, cleared by a successful reload
func (m *Model) ReloadErr() error {
	return m.reloadErr
}

// statusLine summarizes the source and reload state for the footer
func (m *Model) statusLine() string {
	if m.report == nil {
		return ""
	}
	status := fmt.Sprintf("%s | palette %s", filepath.Base(m.report.Source), m.Palette().Name)
	if m.opts.Watching {
		status += " | watching"
	}
	if m.reloads > 0 {
		status += fmt.Sprintf(" | reloaded %d×", m.reloads)
	}
	return status
}

// NewProgram runs the model on the alternate screen. Callers keep the program
// to Send reloads into it.
func NewProgram(model *Model) *tea.Program {
	return tea.NewProgram(model, tea.WithAltScreen())
}
