package handlers

import (
	"fmt"
	"math"
	"strings"

	"launchdash/models"
	"launchdash/utils"
)

const (
	PIE_SIZE   = 360
	PIE_RADIUS = 140

	SCATTER_WIDTH  = 760
	SCATTER_HEIGHT = 380
	PLOT_LEFT      = 70
	PLOT_RIGHT     = 170 // room for the legend
	PLOT_TOP       = 20
	PLOT_BOTTOM    = 60
)

type arcView struct {
	// Path is empty when the arc is the whole circle.
	Path    string
	Full    bool
	Colour  string
	Label   string
	Value   string
	Percent string
	// LabelX and LabelY position the percentage inside the arc.
	LabelX float64
	LabelY float64
}

type legendView struct {
	Label  string
	Colour string
	Y      float64
}

type pieView struct {
	Size   float64
	Centre float64
	Radius float64
	Arcs   []arcView
	Legend []legendView
}

type pointView struct {
	CX     float64
	CY     float64
	Colour string
	Hover  string
}

type tickView struct {
	Pos   float64
	Label string
}

type scatterView struct {
	Width   float64
	Height  float64
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
	Radius  float64
	Opacity float64
	Points  []pointView
	XTicks  []tickView
	YTicks  []tickView
	Legend  []legendView
}

// chartView is what the "chart" template renders. Only one of Pie and Scatter is set.
type chartView struct {
	Spec    *models.ChartSpec
	Empty   bool
	Pie     *pieView
	Scatter *scatterView
}

func newChartView(spec *models.ChartSpec) *chartView {
	view := &chartView{Spec: spec, Empty: spec.Empty()}
	switch spec.Kind {
	case models.PIE:
		view.Pie = newPieView(spec)
	case models.SCATTER:
		view.Scatter = newScatterView(spec)
	}
	return view
}

func newPieView(spec *models.ChartSpec) *pieView {
	view := &pieView{
		Size:   PIE_SIZE,
		Centre: PIE_SIZE / 2,
		Radius: PIE_RADIUS,
	}

	for i, s := range spec.Slices {
		view.Legend = append(view.Legend, legendView{Label: s.Label, Colour: s.Colour, Y: float64(20 + i*22)})
	}

	total := spec.Total()
	if total <= 0 {
		return view
	}

	// Start at 12 o'clock and go clockwise.
	angle := -math.Pi / 2
	for _, s := range spec.Slices {
		if s.Value <= 0 {
			continue
		}
		fraction := s.Value / total
		sweep := fraction * 2 * math.Pi
		mid := angle + sweep/2

		arc := arcView{
			Colour:  s.Colour,
			Label:   s.Label,
			Value:   utils.FormatNumber(s.Value),
			Percent: fmt.Sprintf("%.1f%%", fraction*100),
			LabelX:  round2(view.Centre + 0.62*view.Radius*math.Cos(mid)),
			LabelY:  round2(view.Centre + 0.62*view.Radius*math.Sin(mid)),
		}
		if fraction >= 1 {
			arc.Full = true
			arc.LabelX, arc.LabelY = view.Centre, view.Centre
		} else {
			arc.Path = arcPath(view.Centre, view.Radius, angle, angle+sweep)
		}
		view.Arcs = append(view.Arcs, arc)
		angle += sweep
	}
	return view
}

func arcPath(c, r, from, to float64) string {
	largeArc := 0
	if to-from > math.Pi {
		largeArc = 1
	}
	x1, y1 := c+r*math.Cos(from), c+r*math.Sin(from)
	x2, y2 := c+r*math.Cos(to), c+r*math.Sin(to)
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		num(c), num(c), num(x1), num(y1), num(r), num(r), largeArc, num(x2), num(y2))
}

func newScatterView(spec *models.ChartSpec) *scatterView {
	view := &scatterView{
		Width:   SCATTER_WIDTH,
		Height:  SCATTER_HEIGHT,
		Left:    PLOT_LEFT,
		Right:   SCATTER_WIDTH - PLOT_RIGHT,
		Top:     PLOT_TOP,
		Bottom:  SCATTER_HEIGHT - PLOT_BOTTOM,
		Radius:  spec.Marker.Size / 2,
		Opacity: spec.Marker.Opacity,
	}

	xMin, xMax := xDomain(spec)
	yMin, yMax := -0.25, 1.25
	xScale := func(x float64) float64 {
		return round2(view.Left + (x-xMin)/(xMax-xMin)*(view.Right-view.Left))
	}
	yScale := func(y float64) float64 {
		return round2(view.Bottom - (y-yMin)/(yMax-yMin)*(view.Bottom-view.Top))
	}

	for _, t := range niceTicks(xMin, xMax, 6) {
		view.XTicks = append(view.XTicks, tickView{Pos: xScale(t), Label: utils.FormatNumber(t)})
	}
	for _, t := range []float64{0, 0.5, 1} {
		view.YTicks = append(view.YTicks, tickView{Pos: yScale(t), Label: utils.FormatNumber(t)})
	}

	for i, series := range spec.Series {
		view.Legend = append(view.Legend, legendView{Label: series.Key, Colour: series.Colour, Y: float64(PLOT_TOP + 10 + i*22)})
		for _, p := range series.Points {
			view.Points = append(view.Points, pointView{
				CX:     xScale(p.X),
				CY:     yScale(p.Y),
				Colour: series.Colour,
				Hover:  hoverText(series.Key, p),
			})
		}
	}
	return view
}

// xDomain pads the payload extent by 5% on each side, an empty or single valued chart gets a
// fixed window so the axis still renders.
func xDomain(spec *models.ChartSpec) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p.X)
			hi = math.Max(hi, p.X)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 10000
	}
	if lo == hi {
		return lo - 500, hi + 500
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// niceTicks returns round valued ticks within [lo, hi], roughly n of them.
func niceTicks(lo, hi float64, n int) []float64 {
	span := hi - lo
	if span <= 0 || n < 1 {
		return nil
	}
	raw := span / float64(n)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	step := magnitude
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step = m * magnitude
		if step >= raw {
			break
		}
	}

	var ticks []float64
	for t := math.Ceil(lo/step) * step; t <= hi; t += step {
		if t == 0 {
			// math.Ceil keeps the sign, don't label a tick "-0"
			t = 0
		}
		ticks = append(ticks, utils.RoundToXDp(t, 6))
	}
	return ticks
}

func hoverText(category string, p models.ScatterPoint) string {
	lines := []string{
		fmt.Sprintf("Payload Mass (kg): %s", utils.FormatNumber(p.X)),
		fmt.Sprintf("Booster Version Category: %s", category),
	}
	for _, h := range p.Hover {
		lines = append(lines, fmt.Sprintf("%s: %s", h.Label, h.Value))
	}
	return strings.Join(lines, "\n")
}

func round2(f float64) float64 {
	return utils.RoundToXDp(f, 2)
}

func num(f float64) string {
	return utils.FormatNumber(round2(f))
}
