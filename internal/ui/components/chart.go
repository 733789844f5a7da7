package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
)

// BoundsPadding widens both axes so edge points are not drawn on the frame
const BoundsPadding = 10.0

// ChartKind selects how points are drawn on the canvas
type ChartKind int

const (
	LineChart ChartKind = iota
	ScatterPlot
)

// Bounds is the visible data range of a chart
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// PaddedBounds returns the data range widened by BoundsPadding on each side.
// Non-finite values are ignored; empty input yields [-pad, pad] on both axes.
func PaddedBounds(xs, ys []float64) Bounds {
	xs, ys = finite(xs), finite(ys)
	b := Bounds{MinX: -BoundsPadding, MaxX: BoundsPadding, MinY: -BoundsPadding, MaxY: BoundsPadding}
	if len(xs) > 0 {
		b.MinX = floats.Min(xs) - BoundsPadding
		b.MaxX = floats.Max(xs) + BoundsPadding
	}
	if len(ys) > 0 {
		b.MinY = floats.Min(ys) - BoundsPadding
		b.MaxY = floats.Max(ys) + BoundsPadding
	}
	return b
}

// finite returns the values that are neither NaN nor infinite
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Canvas is a fixed grid of cells points are plotted onto
type Canvas struct {
	width, height int
	bounds        Bounds
	cells         [][]rune
}

// NewCanvas creates an empty canvas mapping bounds onto width x height cells
func NewCanvas(width, height int, bounds Bounds) *Canvas {
	width, height = max(2, width), max(2, height)
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(spaces(width))
	}
	return &Canvas{width: width, height: height, bounds: bounds, cells: cells}
}

// Cell maps a data coordinate to a (column, row) cell, row 0 at the top.
// ok is false when the point is not finite or falls outside the bounds.
func (c *Canvas) Cell(x, y float64) (col, row int, ok bool) {
	b := c.bounds
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, false
	}
	if x < b.MinX || x > b.MaxX || y < b.MinY || y > b.MaxY {
		return 0, 0, false
	}
	col = scale(x, b.MinX, b.MaxX, c.width)
	row = c.height - 1 - scale(y, b.MinY, b.MaxY, c.height)
	return col, row, true
}

func scale(v, lo, hi float64, cells int) int {
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	return min(cells-1, max(0, int(math.Round((v-lo)/span*float64(cells-1)))))
}

// Set marks a single data point
func (c *Canvas) Set(x, y float64, mark rune) {
	if col, row, ok := c.Cell(x, y); ok {
		c.cells[row][col] = mark
	}
}

// Line connects two data points with mark, leaving existing marks alone
func (c *Canvas) Line(x0, y0, x1, y1 float64, mark rune) {
	c0, r0, ok0 := c.Cell(x0, y0)
	c1, r1, ok1 := c.Cell(x1, y1)
	if !ok0 || !ok1 {
		return
	}

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	err := dc + dr
	for {
		if c.cells[r0][c0] == ' ' {
			c.cells[r0][c0] = mark
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

// Rows returns the canvas as text, top row first
func (c *Canvas) Rows() []string {
	rows := make([]string, len(c.cells))
	for i, cells := range c.cells {
		rows[i] = string(cells)
	}
	return rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Chart renders one plot series on a bordered canvas with axis labels
type Chart struct {
	Title  string
	LabelX string
	LabelY string
	Kind   ChartKind
	Xs     []float64
	Ys     []float64
	Width  int
	Height int
	Colors Colors
}

// NewChart creates a chart over paired coordinates
func NewChart(kind ChartKind, title string, xs, ys []float64, width, height int) *Chart {
	return &Chart{
		Title:  title,
		Kind:   kind,
		Xs:     xs,
		Ys:     ys,
		Width:  width,
		Height: height,
		Colors: DefaultColors(),
	}
}

// Plot draws the points onto a fresh canvas
func (ch *Chart) Plot() *Canvas {
	n := min(len(ch.Xs), len(ch.Ys))
	canvas := NewCanvas(ch.Width, ch.Height, PaddedBounds(ch.Xs[:n], ch.Ys[:n]))

	if ch.Kind == LineChart {
		for i := 1; i < n; i++ {
			canvas.Line(ch.Xs[i-1], ch.Ys[i-1], ch.Xs[i], ch.Ys[i], '·')
		}
	}
	for i := 0; i < n; i++ {
		canvas.Set(ch.Xs[i], ch.Ys[i], '•')
	}
	return canvas
}

// Render renders the chart
func (ch *Chart) Render() string {
	title := lipgloss.NewStyle().Foreground(ch.Colors.Selected).Bold(true).Render(ch.Title)
	muted := lipgloss.NewStyle().Foreground(ch.Colors.Muted)

	if min(len(ch.Xs), len(ch.Ys)) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, muted.Render("no data"))
	}

	canvas := ch.Plot()
	b := canvas.bounds

	maxY := formatAxis(b.MaxY)
	minY := formatAxis(b.MinY)
	gutter := max(lipgloss.Width(maxY), lipgloss.Width(minY))

	plot := lipgloss.NewStyle().Foreground(ch.Colors.Selected)
	rows := canvas.Rows()
	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, title)
	for i, row := range rows {
		label := ""
		switch i {
		case 0:
			label = maxY
		case len(rows) - 1:
			label = minY
		}
		lines = append(lines, muted.Render(padLeft(label, gutter)+" │")+plot.Render(row))
	}

	axis := spaces(gutter+1) + "└" + strings.Repeat("─", canvas.width)
	lines = append(lines, muted.Render(axis))

	minX, maxX := formatAxis(b.MinX), formatAxis(b.MaxX)
	gap := max(1, canvas.width-lipgloss.Width(minX)-lipgloss.Width(maxX))
	lines = append(lines, muted.Render(spaces(gutter+2)+minX+spaces(gap)+maxX))

	if ch.LabelX != "" || ch.LabelY != "" {
		lines = append(lines, muted.Render(spaces(gutter+2)+"x: "+ch.LabelX+"  y: "+ch.LabelY))
	}

	return strings.Join(lines, "\n")
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
