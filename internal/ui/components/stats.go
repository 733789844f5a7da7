package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatTable renders statistics with one row per measurement and one column
// per numeric label
type StatTable struct {
	Labels       []string
	Measurements []string
	Cells        [][]string // Cells[measurement][label]
	Selected     int
	Width        int
	Colors       Colors
}

// NewStatTable creates a statistics table
func NewStatTable(labels, measurements []string, cells [][]string, width int) *StatTable {
	return &StatTable{
		Labels:       labels,
		Measurements: measurements,
		Cells:        cells,
		Width:        width,
		Colors:       DefaultColors(),
	}
}

// Render renders the table
func (s *StatTable) Render() string {
	if len(s.Labels) == 0 {
		return lipgloss.NewStyle().Foreground(s.Colors.Muted).Render("No numeric columns to summarize")
	}

	snWidth := 4
	nameWidth := len("Measurement")
	for _, name := range s.Measurements {
		nameWidth = max(nameWidth, lipgloss.Width(name))
	}
	remaining := s.Width - snWidth - nameWidth - 2
	valueWidth := max(6, remaining/len(s.Labels)-1)

	header := []string{pad("S/N", snWidth), pad("Measurement", nameWidth)}
	for _, label := range s.Labels {
		header = append(header, padLeft(label, valueWidth))
	}
	lines := []string{s.Colors.header().Render(strings.Join(header, " "))}

	for i, name := range s.Measurements {
		cells := []string{pad(strconv.Itoa(i+1), snWidth), pad(name, nameWidth)}
		for j := range s.Labels {
			var value string
			if i < len(s.Cells) && j < len(s.Cells[i]) {
				value = s.Cells[i][j]
			}
			cells = append(cells, padLeft(value, valueWidth))
		}

		line := strings.Join(cells, " ")
		if i == s.Selected {
			lines = append(lines, s.Colors.selected().Render(line))
		} else {
			lines = append(lines, s.Colors.row(i).Render(line))
		}
	}

	return strings.Join(lines, "\n")
}

// StatsCard shows a single headline figure
type StatsCard struct {
	Title       string
	Value       string
	Description string
	Icon        string
	Warn        bool
	Width       int
	Colors      Colors
}

// NewStatsCard creates a new stats card
func NewStatsCard(title, value, description string) *StatsCard {
	return &StatsCard{
		Title:       title,
		Value:       value,
		Description: description,
		Width:       20,
		Colors:      DefaultColors(),
	}
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	valueColor := s.Colors.Selected
	if s.Warn {
		valueColor = s.Colors.Warning
	}

	title := lipgloss.NewStyle().Foreground(s.Colors.HeaderFg).Bold(true).Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(s.Value),
		lipgloss.NewStyle().Foreground(s.Colors.Muted).Render(s.Description),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Colors.Border).
		Padding(0, 1).
		Width(s.Width).
		Render(content)
}

// CardRow lays cards out side by side, wrapping after columns cards
func CardRow(cards []*StatsCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	columns = max(1, columns)

	var rows []string
	for i := 0; i < len(cards); i += columns {
		end := min(i+columns, len(cards))
		rendered := make([]string, 0, end-i)
		for _, card := range cards[i:end] {
			rendered = append(rendered, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SummaryBox renders aligned key/value lines under a title
type SummaryBox struct {
	Title   string
	Content []string
	Width   int
	Colors  Colors
}

// NewSummaryBox creates a new summary box
func NewSummaryBox(title string, width int) *SummaryBox {
	return &SummaryBox{Title: title, Width: width, Colors: DefaultColors()}
}

// AddLine adds a line to the summary
func (s *SummaryBox) AddLine(line string) {
	s.Content = append(s.Content, line)
}

// AddKeyValue adds a key-value pair to the summary
func (s *SummaryBox) AddKeyValue(key, value string) {
	s.Content = append(s.Content, pad(key, 16)+": "+value)
}

// Render renders the summary box
func (s *SummaryBox) Render() string {
	content := make([]string, 0, len(s.Content)+2)
	content = append(content, lipgloss.NewStyle().Foreground(s.Colors.Selected).Bold(true).Render(s.Title), "")

	body := lipgloss.NewStyle().Foreground(s.Colors.RowFg)
	for _, line := range s.Content {
		content = append(content, body.Render(line))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Colors.Border).
		Padding(0, 1).
		Width(s.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}
