package models

type ChartKind string

const (
	PIE     ChartKind = "pie"
	SCATTER ChartKind = "scatter"
)

// Slice is one wedge of a pie chart.
type Slice struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Colour string  `json:"colour"`
}

// Marker describes how scatter points are drawn.
type Marker struct {
	Size    float64 `json:"size"`
	Opacity float64 `json:"opacity"`
}

// ChartSpec is a renderer agnostic description of a chart. Handlers return one of these and the
// web layer turns it into markup.
type ChartSpec struct {
	// Key is the output the chart is displayed in, e.g. "success-pie-chart".
	Key   string    `json:"key"`
	Kind  ChartKind `json:"kind"`
	Title string    `json:"title"`
	// Slices is only set for pie charts.
	Slices []Slice `json:"slices,omitempty"`
	// Series is only set for scatter charts, one per colour group.
	Series      []*Series `json:"series,omitempty"`
	XLabel      string    `json:"xLabel,omitempty"`
	YLabel      string    `json:"yLabel,omitempty"`
	Marker      Marker    `json:"marker"`
	Annotations []string  `json:"annotations,omitempty"`
}

// Total sums the values of every pie slice.
func (c *ChartSpec) Total() float64 {
	var total float64
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

// PointCount is the number of scatter points across every series.
func (c *ChartSpec) PointCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// Empty reports whether the chart has nothing to draw.
func (c *ChartSpec) Empty() bool {
	switch c.Kind {
	case PIE:
		return c.Total() == 0
	case SCATTER:
		return c.PointCount() == 0
	}
	return true
}
