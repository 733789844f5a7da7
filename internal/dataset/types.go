package dataset

// Record is one input row, one field per header column
type Record []string

// Header holds the column names of a table
type Header []string

// Table is a loaded dataset. Records always have len(Header) fields.
type Table struct {
	Source  string   `json:"source"`
	Header  Header   `json:"header"`
	Records []Record `json:"-"`
	Dropped int      `json:"dropped"`
}

// Rows returns the number of kept records
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// NumericColumn is a column whose values were classified as floats
type NumericColumn struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Len returns the number of parsed values
func (c NumericColumn) Len() int {
	return len(c.Values)
}

// Point is a single (x, y) coordinate of a plot series
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LabelPair names the two axes of a plot series
type LabelPair struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// PlotSeries pairs the values of two numeric columns by sorted position
type PlotSeries struct {
	LabelX string  `json:"label_x"`
	LabelY string  `json:"label_y"`
	Points []Point `json:"points"`
}

// XY splits the points into separate coordinate slices
func (s PlotSeries) XY() (xs, ys []float64) {
	xs = make([]float64, len(s.Points))
	ys = make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
