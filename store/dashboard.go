package store

import (
	"maps"
	"slices"
	"sort"
	"sync"

	"launchdash/models"
)

const (
	PIE_CHART     = "success-pie-chart"
	SCATTER_CHART = "success-payload-scatter-chart"
)

var DashboardOutputs = map[string]*models.Output{
	PIE_CHART: models.NewOutput(
		PIE_CHART,
		[]string{models.SITE_INPUT},
		1,
	),
	SCATTER_CHART: models.NewOutput(
		SCATTER_CHART,
		[]string{models.SITE_INPUT, models.PAYLOAD_INPUT},
		2,
	),
}

// OrderedOutputs returns the outputs sorted by layout priority.
var OrderedOutputs = sync.OnceValue(func() []*models.Output {
	ordered := slices.Collect(maps.Values(DashboardOutputs))
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LayoutPriority() < ordered[j].LayoutPriority()
	})
	return ordered
})
