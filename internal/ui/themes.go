package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/csvscope/internal/ui/components"
)

// Slate shades shared by every palette
const (
	slate200 = lipgloss.Color("#e2e8f0")
	slate400 = lipgloss.Color("#94a3b8")
	slate900 = lipgloss.Color("#0f172a")
	slate950 = lipgloss.Color("#020617")
	amber400 = lipgloss.Color("#fbbf24")
)

// Palette is one selectable accent colour family
type Palette struct {
	Name string
	C400 lipgloss.Color // selected text, borders
	C700 lipgloss.Color // tab highlight
	C900 lipgloss.Color // header background
}

// Available palettes in rotation order
var (
	Blue    = Palette{Name: "blue", C400: "#60a5fa", C700: "#1d4ed8", C900: "#1e3a8a"}
	Emerald = Palette{Name: "emerald", C400: "#34d399", C700: "#047857", C900: "#064e3b"}
	Indigo  = Palette{Name: "indigo", C400: "#818cf8", C700: "#4338ca", C900: "#312e81"}
	Red     = Palette{Name: "red", C400: "#f87171", C700: "#b91c1c", C900: "#7f1d1d"}

	Palettes = []Palette{Blue, Emerald, Indigo, Red}
)

// PaletteIndex returns the position of the named palette, or 0 when unknown
func PaletteIndex(name string) int {
	for i, p := range Palettes {
		if p.Name == name {
			return i
		}
	}
	return 0
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Colors derives the component colour set from the palette
func (p Palette) Colors() components.Colors {
	if IsColorDisabled() {
		none := lipgloss.NoColor{}
		return components.Colors{
			Buffer: none, HeaderBg: none, HeaderFg: none, RowFg: none, Selected: none,
			NormalRow: none, AltRow: none, Border: none, Muted: none, Warning: none,
		}
	}
	return components.Colors{
		Buffer:    slate950,
		HeaderBg:  p.C900,
		HeaderFg:  slate200,
		RowFg:     slate200,
		Selected:  p.C400,
		NormalRow: slate950,
		AltRow:    slate900,
		Border:    p.C400,
		Muted:     slate400,
		Warning:   amber400,
	}
}

// Styles contains the screen-level styles derived from a palette
type Styles struct {
	Palette Palette

	Title  lipgloss.Style
	Tab    lipgloss.Style
	TabOn  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Box    lipgloss.Style
	Help   lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles builds the styles for a palette
func NewStyles(p Palette) *Styles {
	c := p.Colors()

	tabOn := lipgloss.NewStyle().Foreground(c.HeaderFg).Bold(true).Padding(0, 1)
	if !IsColorDisabled() {
		tabOn = tabOn.Background(p.C700)
	} else {
		tabOn = tabOn.Underline(true)
	}

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(c.HeaderFg).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),

		Tab:   lipgloss.NewStyle().Foreground(c.Muted).Padding(0, 1),
		TabOn: tabOn,

		Body: lipgloss.NewStyle().
			Foreground(c.RowFg),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(1, 2),

		Accent: lipgloss.NewStyle().
			Foreground(c.Selected).
			Bold(true),
	}
}
