package ui

import (
	"math"
	"strconv"

	"launchdash/config"
	"launchdash/models"
	"launchdash/store"
)

const ALL_SITES_LABEL = "All Sites"

// DashboardLayout builds the launch records page: title, site dropdown, pie chart, payload slider
// and scatter chart.
func DashboardLayout(ds *store.Dataset, cfg *config.Dashboard) *Layout {
	options := []Option{{Label: ALL_SITES_LABEL, Value: models.ALL_SITES}}
	for _, site := range ds.Sites() {
		options = append(options, Option{Label: site, Value: site})
	}

	slider := PayloadSlider(ds.PayloadRange(), cfg.SliderStep)
	graphStyle := Style{"width": "90%", "margin": "auto"}

	return NewBuilder().
		Heading(cfg.Title, Style{"textAlign": "center", "color": "#503D36", "fontSize": "40px"}).
		Markdown(cfg.Description).
		Dropdown(models.SITE_INPUT, options, models.ALL_SITES, "Select a Launch Site here", Style{"width": "80%", "margin": "auto"}).
		Break().
		Container(graphStyle).Graph(store.PIE_CHART).End().
		Break().
		Paragraph("Payload range (Kg):", Style{"textAlign": "center"}).
		RangeSlider(models.PAYLOAD_INPUT, slider).
		Break().
		Container(graphStyle).Graph(store.SCATTER_CHART).End().
		Build()
}

// PayloadSlider spans the whole payload range in whole kilograms, starting fully open.
func PayloadSlider(payload models.PayloadRange, step float64) Slider {
	lo := math.Floor(payload.Min)
	hi := math.Ceil(payload.Max)
	return Slider{
		Min:  lo,
		Max:  hi,
		Step: step,
		Low:  lo,
		High: hi,
		Marks: []Mark{
			{Value: lo, Label: strconv.Itoa(int(lo))},
			{Value: hi, Label: strconv.Itoa(int(hi))},
		},
		AllowCross: false,
	}
}
