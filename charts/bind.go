package charts

import (
	"launchdash/events"
	"launchdash/models"
	"launchdash/store"
)

// Bind registers both chart handlers on the dispatcher, reading from ds.
func Bind(d *events.Dispatcher, ds *store.Dataset) {
	d.Bind(store.PIE_CHART, func(sel models.FilterSelection) *models.ChartSpec {
		return OutcomeDistribution(ds, sel.Site)
	}, store.DashboardOutputs[store.PIE_CHART].Inputs()...)

	d.Bind(store.SCATTER_CHART, func(sel models.FilterSelection) *models.ChartSpec {
		return PayloadCorrelation(ds, sel.Site, sel.PayloadLow, sel.PayloadHigh)
	}, store.DashboardOutputs[store.SCATTER_CHART].Inputs()...)
}
