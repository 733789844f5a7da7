package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of the tab menu
type MenuItem struct {
	Title string
	Icon  string
}

// Menu renders the tab list on the left side of the screen
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Width    int
	Colors   Colors
}

// NewMenu creates a menu with the given items
func NewMenu(title string, items []MenuItem, width int) *Menu {
	return &Menu{
		Title:  title,
		Items:  items,
		Width:  width,
		Colors: DefaultColors(),
	}
}

// Render renders the menu
func (m *Menu) Render() string {
	inner := max(1, m.Width-2)
	lines := []string{m.Colors.header().Width(inner).Render(pad(m.Title, inner)), ""}

	for i, item := range m.Items {
		label := item.Title
		if item.Icon != "" {
			label = item.Icon + " " + label
		}

		if i == m.Selected {
			lines = append(lines, m.Colors.selected().Width(inner).Render(pad(" █ "+label, inner)))
		} else {
			lines = append(lines, m.Colors.row(i).Width(inner).Render(pad("   "+label, inner)))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Colors.Border).
		Render(strings.Join(lines, "\n"))
}
