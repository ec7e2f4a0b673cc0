package store

import (
	"github.com/montanaflynn/stats"
	"launchdash/models"
	"launchdash/utils"
)

// SiteSummary aggregates the launches from one site.
type SiteSummary struct {
	Site          string
	Launches      int
	Successes     int
	SuccessRate   float64
	MeanPayload   float64
	MedianPayload float64
}

// Summaries returns one summary per site in site order, followed by one for the whole dataset
// with Site set to models.ALL_SITES.
func (d *Dataset) Summaries() ([]SiteSummary, error) {
	summaries := make([]SiteSummary, 0, len(d.sites)+1)
	for _, site := range d.sites {
		summary, err := summarise(site, d.Filter(func(r *models.LaunchRecord) bool {
			return r.Site() == site
		}))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	total, err := summarise(models.ALL_SITES, d.records)
	if err != nil {
		return nil, err
	}
	return append(summaries, total), nil
}

func summarise(site string, records []*models.LaunchRecord) (SiteSummary, error) {
	summary := SiteSummary{Site: site, Launches: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	payloads := make(stats.Float64Data, 0, len(records))
	for _, r := range records {
		payloads = append(payloads, r.PayloadMass())
		summary.Successes += r.Class()
	}

	mean, err := payloads.Mean()
	if err != nil {
		return summary, err
	}
	median, err := payloads.Median()
	if err != nil {
		return summary, err
	}

	summary.MeanPayload = utils.RoundToXDp(mean, 1)
	summary.MedianPayload = utils.RoundToXDp(median, 1)
	summary.SuccessRate = utils.RoundToXDp(float64(summary.Successes)/float64(summary.Launches), 3)
	return summary, nil
}
