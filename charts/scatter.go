package charts

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"launchdash/models"
	"launchdash/store"
	"launchdash/utils"
)

const (
	X_LABEL = "Payload Mass (kg)"
	Y_LABEL = "Outcome (1=Success, 0=Failure)"
)

// Points are always drawn the same way.
var scatterMarker = models.Marker{Size: 10, Opacity: 0.85}

// PayloadCorrelation builds the scatter chart of payload mass against outcome for the launches
// whose payload lies within [low, high], narrowed to one site unless site is models.ALL_SITES.
// Points are grouped into series by booster version category in order of first appearance.
func PayloadCorrelation(ds *store.Dataset, site string, low, high float64) *models.ChartSpec {
	allSites := site == models.ALL_SITES || site == ""
	payload := models.PayloadRange{Min: low, Max: high}

	records := ds.Filter(func(r *models.LaunchRecord) bool {
		if !payload.Contains(r.PayloadMass()) {
			return false
		}
		return allSites || r.Site() == site
	})

	spec := &models.ChartSpec{
		Key:    store.SCATTER_CHART,
		Kind:   models.SCATTER,
		XLabel: X_LABEL,
		YLabel: Y_LABEL,
		Marker: scatterMarker,
		Series: make([]*models.Series, 0),
	}
	if allSites {
		spec.Title = "Correlation between Payload and Success for All Sites"
	} else {
		spec.Title = fmt.Sprintf("Correlation between Payload and Success for %s", site)
	}

	byCategory := make(map[string]*models.Series)
	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, r := range records {
		series, ok := byCategory[r.BoosterCategory()]
		if !ok {
			series = models.NewSeries(r.BoosterCategory(), colour(len(spec.Series)))
			byCategory[r.BoosterCategory()] = series
			spec.Series = append(spec.Series, series)
		}

		y := utils.BoolToFloat(r.Success())
		series.Add(r.PayloadMass(), y, hoverFields(r)...)
		xs = append(xs, r.PayloadMass())
		ys = append(ys, y)
	}

	if annotation, ok := correlationAnnotation(xs, ys); ok {
		spec.Annotations = append(spec.Annotations, annotation)
	}

	return spec
}

func hoverFields(r *models.LaunchRecord) []models.HoverField {
	fields := []models.HoverField{
		{Label: "Launch Site", Value: r.Site()},
		{Label: "class", Value: strconv.Itoa(r.Class())},
	}
	if r.BoosterVersion() != "" {
		fields = append(fields, models.HoverField{Label: "Booster Version", Value: r.BoosterVersion()})
	}
	if r.FlightNumber() != 0 {
		fields = append(fields, models.HoverField{Label: "Flight Number", Value: strconv.Itoa(r.FlightNumber())})
	}
	return fields
}

// correlationAnnotation is only produced when the correlation is defined, i.e. at least two
// points and neither variable is constant.
func correlationAnnotation(xs, ys []float64) (string, bool) {
	if len(xs) < 2 {
		return "", false
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return "", false
	}
	return fmt.Sprintf("Pearson r = %.2f (n=%d)", utils.RoundToXDp(r, 2), len(xs)), true
}
