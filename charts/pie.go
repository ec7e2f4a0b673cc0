package charts

import (
	"fmt"
	"sort"

	"launchdash/models"
	"launchdash/store"
)

const (
	ALL_SITES_PIE_TITLE = "Total Successful Launches by Site"
	SUCCESS_LABEL       = "Success"
	FAILURE_LABEL       = "Failure"
)

// OutcomeDistribution builds the pie chart for the selected site. For models.ALL_SITES each slice
// is a site sized by its number of successful launches, otherwise the slices split the site's
// launches into successes and failures. Outcomes that never happened get no slice.
func OutcomeDistribution(ds *store.Dataset, site string) *models.ChartSpec {
	spec := &models.ChartSpec{
		Key:  store.PIE_CHART,
		Kind: models.PIE,
	}

	if site == models.ALL_SITES || site == "" {
		spec.Title = ALL_SITES_PIE_TITLE
		spec.Slices = successesBySite(ds)
		return spec
	}

	spec.Title = fmt.Sprintf("Launch Outcomes for %s", site)
	spec.Slices = outcomesForSite(ds, site)
	return spec
}

func successesBySite(ds *store.Dataset) []models.Slice {
	successes := make(map[string]int, len(ds.Sites()))
	for _, r := range ds.Records() {
		successes[r.Site()] += r.Class()
	}

	slices := make([]models.Slice, 0, len(ds.Sites()))
	for i, site := range ds.Sites() {
		slices = append(slices, models.Slice{
			Label:  site,
			Value:  float64(successes[site]),
			Colour: colour(i),
		})
	}
	return slices
}

func outcomesForSite(ds *store.Dataset, site string) []models.Slice {
	var success, failure int
	for _, r := range ds.Records() {
		if r.Site() != site {
			continue
		}
		if r.Success() {
			success++
		} else {
			failure++
		}
	}

	slices := make([]models.Slice, 0, 2)
	if success > 0 {
		slices = append(slices, models.Slice{Label: SUCCESS_LABEL, Value: float64(success), Colour: SUCCESS_COLOUR})
	}
	if failure > 0 {
		slices = append(slices, models.Slice{Label: FAILURE_LABEL, Value: float64(failure), Colour: FAILURE_COLOUR})
	}
	// Largest first, stable so a tie keeps Success in front.
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	return slices
}
