package ui

// Tab is one of the cyclic top-level views
type Tab int

const (
	TabDataExplorer Tab = iota
	TabVisualization
	TabStatistics
	TabExtras
)

// Tabs lists the tabs in cycle order
var Tabs = []Tab{TabDataExplorer, TabVisualization, TabStatistics, TabExtras}

var tabTitles = [...]string{"Data Explorer", "Visualization", "Statistics", "Extras"}

var tabIcons = [...]string{"table", "chart", "statistics", "extras"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return "Unknown"
	}
	return tabTitles[t]
}

// Options tune the interactive view
type Options struct {
	Palette     string
	RowWindow   int
	ChartWidth  int
	ChartHeight int
	Precision   int
	Watching    bool
}

// DefaultOptions mirrors the configuration defaults
func DefaultOptions() Options {
	return Options{
		Palette:     "blue",
		RowWindow:   20,
		ChartWidth:  48,
		ChartHeight: 16,
		Precision:   4,
	}
}
