package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/csvscope/internal/emoji"
	"github.com/yildizm/csvscope/internal/stats"
	"github.com/yildizm/csvscope/internal/ui/components"
)

const (
	fallbackWidth  = 100
	fallbackHeight = 30
	appTitle       = "CSV Scope"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.lifecycle.Done() {
		return m.renderGoodbyeScreen()
	}

	width, height := m.size()
	styles := NewStyles(m.Palette())

	if m.showHelp {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.renderHelpView(styles))
	}

	menuWidth := max(22, width/5)
	contentWidth := max(20, width-menuWidth-2)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderMenu(menuWidth),
		" ",
		m.renderContent(styles, contentWidth),
	)

	footer := components.NewFooter(width)
	footer.Colors = m.Palette().Colors()
	footer.Status = m.statusLine()
	if m.reloadErr != nil {
		footer.Error = fmt.Sprintf("%s reload failed: %v", emoji.GetEmoji("error"), m.reloadErr)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(styles, width),
		body,
		footer.Render(),
	)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return width, height
}

func (m *Model) renderHeader(styles *Styles, width int) string {
	tabs := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if tab == m.ActiveTab() {
			tabs[i] = styles.TabOn.Render(tab.String())
		} else {
			tabs[i] = styles.Tab.Render(tab.String())
		}
	}

	title := styles.Title.Render(appTitle)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, styles.Muted.Render("│"))),
	)
}

func (m *Model) renderMenu(width int) string {
	items := make([]components.MenuItem, len(Tabs))
	for i, tab := range Tabs {
		items[i] = components.MenuItem{Title: tab.String(), Icon: emoji.GetEmoji(tabIcons[tab])}
	}

	menu := components.NewMenu("Menu", items, width)
	menu.Selected = m.tabs.Index()
	menu.Colors = m.Palette().Colors()
	return menu.Render()
}

func (m *Model) renderContent(styles *Styles, width int) string {
	if m.report == nil {
		return styles.Muted.Render("No report loaded")
	}

	switch m.ActiveTab() {
	case TabVisualization:
		return m.renderVisualization(styles, width)
	case TabStatistics:
		return m.renderStatistics(width)
	case TabExtras:
		return m.renderExtras(styles, width)
	default:
		return m.renderDataExplorer(width)
	}
}

func (m *Model) renderDataExplorer(width int) string {
	var rows [][]string
	if m.report.Table != nil {
		rows = make([][]string, len(m.report.Table.Records))
		for i, record := range m.report.Table.Records {
			rows[i] = record
		}
	}

	table := components.NewDataTable(m.report.Header, rows, width, m.opts.RowWindow)
	table.Selected = m.rows.Index()
	table.Colors = m.Palette().Colors()
	return table.Render()
}

func (m *Model) renderVisualization(styles *Styles, width int) string {
	if len(m.report.Series) == 0 {
		return styles.Muted.Render("No numeric columns to plot")
	}

	series := m.report.Series[m.series.Index()]
	xs, ys := series.XY()
	title := fmt.Sprintf("%s vs %s", series.LabelX, series.LabelY)

	chartWidth := min(m.opts.ChartWidth, max(10, width/2-8))
	colors := m.Palette().Colors()

	charts := make([]string, 0, 2)
	for _, kind := range []components.ChartKind{components.LineChart, components.ScatterPlot} {
		chart := components.NewChart(kind, title, xs, ys, chartWidth, m.opts.ChartHeight)
		chart.LabelX, chart.LabelY = series.LabelX, series.LabelY
		chart.Colors = colors
		if kind == components.LineChart {
			chart.Title = "Line: " + title
		} else {
			chart.Title = "Scatter: " + title
		}
		charts = append(charts, styles.Box.Render(chart.Render()))
	}

	position := styles.Muted.Render(fmt.Sprintf("series %d of %d (j/k to switch)", m.series.Index()+1, len(m.report.Series)))
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, charts...), position)
}

func (m *Model) renderStatistics(width int) string {
	labels := make([]string, len(m.report.Stats))
	for i, col := range m.report.Stats {
		labels[i] = col.Label
	}

	measurements := make([]string, len(stats.All))
	cells := make([][]string, len(stats.All))
	for i, s := range stats.All {
		measurements[i] = s.String()
		cells[i] = make([]string, len(m.report.Stats))
		for j, col := range m.report.Stats {
			cells[i][j] = m.formatStat(col.Row, s)
		}
	}

	table := components.NewStatTable(labels, measurements, cells, width)
	table.Selected = m.measures.Index()
	table.Colors = m.Palette().Colors()
	return table.Render()
}

func (m *Model) formatStat(row stats.Row, s stats.Stat) string {
	v, ok := row.Value(s)
	if !ok {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', m.opts.Precision, 64)
}

func (m *Model) renderExtras(styles *Styles, width int) string {
	colors := m.Palette().Colors()
	r := m.report

	cards := []*components.StatsCard{
		components.NewStatsCard("Rows", strconv.Itoa(r.Rows), "records kept"),
		components.NewStatsCard("Dropped", strconv.Itoa(r.Dropped), "malformed rows"),
		components.NewStatsCard("Numeric", fmt.Sprintf("%d/%d", r.NumericCount(), len(r.Header)), "columns"),
		components.NewStatsCard("Series", strconv.Itoa(len(r.Series)), "plot pairs"),
	}
	cards[1].Warn = r.Dropped > 0
	cardWidth := max(16, min(24, width/4-2))
	for _, card := range cards {
		card.Width = cardWidth
		card.Colors = colors
	}

	facts := components.NewSummaryBox(emoji.GetEmoji("info")+" Dataset", max(30, width/2-2))
	facts.Colors = colors
	facts.AddKeyValue("Source", r.Source)
	facts.AddKeyValue("Probe mode", r.Mode)
	facts.AddKeyValue("Ambiguities", strconv.Itoa(len(r.Ambiguities)))
	for _, amb := range r.Ambiguities {
		facts.AddLine(fmt.Sprintf("  %s %s: %d dropped, %d kept", emoji.GetEmoji("warning"), amb.Label, amb.Dropped, amb.Kept))
	}
	for _, col := range r.Columns {
		facts.AddKeyValue(col.Label, components.NewSparklineChart(col.Values, 16).Render())
	}

	relations := components.NewSummaryBox(emoji.GetEmoji("scale")+" Relations", max(30, width/2-2))
	relations.Colors = colors
	if len(r.Relations) == 0 {
		relations.AddLine("no series")
	}
	for i, rel := range r.Relations {
		marker := "  "
		if i == m.relations.Index() {
			marker = "⮞ "
		}
		relations.AddLine(fmt.Sprintf("%s%s vs %s", marker, rel.Labels.X, rel.Labels.Y))
		relations.AddLine("    pearson    " + m.formatRelation(rel.Relation.Defined, rel.Relation.Pearson))
		relations.AddLine("    covariance " + m.formatRelation(rel.Relation.Defined, rel.Relation.Covariance))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.CardRow(cards, max(1, width/(cardWidth+2))),
		lipgloss.JoinHorizontal(lipgloss.Top, facts.Render(), relations.Render()),
	)
}

func (m *Model) formatRelation(defined bool, v float64) string {
	if !defined {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', m.opts.Precision, 64)
}

func (m *Model) renderHelpView(styles *Styles) string {
	sections := []struct {
		title string
		lines []string
	}{
		{emoji.GetEmoji("target") + " Navigation", []string{
			"j/↓  k/↑        Move selection in the current tab",
			"t/Enter  b/S-Tab Next / previous tab",
			"l/→  h/←        Next / previous palette",
		}},
		{emoji.GetEmoji("reload") + " Data", []string{
			"r               Reload the input file",
		}},
		{emoji.GetEmoji("door") + " Exit", []string{
			"q/Esc/Ctrl+C    Quit",
			"?               Toggle this help",
		}},
	}

	content := []string{styles.Accent.Render(emoji.GetEmoji("help") + " " + appTitle + " Help"), ""}
	for _, section := range sections {
		content = append(content, styles.Accent.Render(section.title))
		for _, line := range section.lines {
			content = append(content, styles.Body.Render("  "+line))
		}
		content = append(content, "")
	}
	content = append(content, styles.Muted.Render("Press ? to go back"))

	return styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

func (m *Model) renderGoodbyeScreen() string {
	return emoji.GetEmoji("door") + " Goodbye\n"
}
