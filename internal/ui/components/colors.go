package components

import "github.com/charmbracelet/lipgloss"

// Colors is the palette-derived colour set every component renders with
type Colors struct {
	Buffer    lipgloss.TerminalColor
	HeaderBg  lipgloss.TerminalColor
	HeaderFg  lipgloss.TerminalColor
	RowFg     lipgloss.TerminalColor
	Selected  lipgloss.TerminalColor
	NormalRow lipgloss.TerminalColor
	AltRow    lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
}

// DefaultColors is a neutral set used when no palette is supplied
func DefaultColors() Colors {
	return Colors{
		Buffer:    lipgloss.Color("#020617"),
		HeaderBg:  lipgloss.Color("#1e3a8a"),
		HeaderFg:  lipgloss.Color("#e2e8f0"),
		RowFg:     lipgloss.Color("#e2e8f0"),
		Selected:  lipgloss.Color("#60a5fa"),
		NormalRow: lipgloss.Color("#020617"),
		AltRow:    lipgloss.Color("#0f172a"),
		Border:    lipgloss.Color("#60a5fa"),
		Muted:     lipgloss.Color("#94a3b8"),
		Warning:   lipgloss.Color("#fbbf24"),
	}
}

func (c Colors) header() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.HeaderFg).Background(c.HeaderBg).Bold(true)
}

func (c Colors) row(i int) lipgloss.Style {
	bg := c.NormalRow
	if i%2 == 1 {
		bg = c.AltRow
	}
	return lipgloss.NewStyle().Foreground(c.RowFg).Background(bg)
}

func (c Colors) selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Selected).Reverse(true).Bold(true)
}

// truncate cuts s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// pad right-pads s to width cells
func pad(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + spaces(gap)
	}
	return s
}

// padLeft left-pads s to width cells
func padLeft(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		return spaces(gap) + s
	}
	return s
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
