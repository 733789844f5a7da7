package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InfoText lists the default key bindings
const InfoText = "(Esc) quit | (↑) move up | (↓) move down | (→) next color | (←) previous color | (t) next tab | (?) help"

// Footer renders the key hint bar and an optional status line
type Footer struct {
	Info   string
	Status string
	Error  string
	Width  int
	Colors Colors
}

// NewFooter creates a footer with the default key hints
func NewFooter(width int) *Footer {
	return &Footer{Info: InfoText, Width: width, Colors: DefaultColors()}
}

// Render renders the footer
func (f *Footer) Render() string {
	inner := max(1, f.Width-2)
	lines := []string{
		lipgloss.NewStyle().Foreground(f.Colors.RowFg).Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, truncate(f.Info, inner))),
	}

	if f.Error != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(f.Colors.Warning).Bold(true).Render(truncate(f.Error, inner)))
	} else if f.Status != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(f.Colors.Muted).Render(truncate(f.Status, inner)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Colors.Border).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}
