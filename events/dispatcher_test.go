package events

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"launchdash/models"
)

const (
	pieOutput     = "pie"
	scatterOutput = "scatter"
)

type recorder struct {
	calls []string
	seen  []models.FilterSelection
}

func (r *recorder) handler(output string) Handler {
	return func(sel models.FilterSelection) *models.ChartSpec {
		r.calls = append(r.calls, output)
		r.seen = append(r.seen, sel)
		return &models.ChartSpec{Key: output, Title: sel.Site}
	}
}

func newTestDispatcher(hub *EventHub) (*Dispatcher, *recorder) {
	initial := models.NewFilterSelection(models.ALL_SITES, models.PayloadRange{Min: 0, Max: 10000})
	d := NewDispatcher(initial, hub)
	rec := &recorder{}
	d.Bind(pieOutput, rec.handler(pieOutput), models.SITE_INPUT)
	d.Bind(scatterOutput, rec.handler(scatterOutput), models.SITE_INPUT, models.PAYLOAD_INPUT)
	return d, rec
}

func TestDispatcherRefresh(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	assert.Equal(t, []string{pieOutput, scatterOutput}, d.Refresh())
	assert.Equal(t, []string{pieOutput, scatterOutput}, rec.calls)
}

func TestDispatcherSiteChangeRunsBoth(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	next := models.NewFilterSelection("KSC LC-39A", models.PayloadRange{Min: 0, Max: 10000})
	assert.Equal(t, []string{pieOutput, scatterOutput}, d.Update(next))
	assert.Equal(t, []string{pieOutput, scatterOutput}, rec.calls)
	assert.Equal(t, next, d.Selection())
	for _, sel := range rec.seen {
		assert.Equal(t, next, sel)
	}
}

func TestDispatcherPayloadChangeRunsScatterOnly(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	next := models.NewFilterSelection(models.ALL_SITES, models.PayloadRange{Min: 2000, Max: 8000})
	assert.Equal(t, []string{scatterOutput}, d.Update(next))
	assert.Equal(t, []string{scatterOutput}, rec.calls)
}

func TestDispatcherBothInputsRunEachOnce(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	next := models.NewFilterSelection("VAFB SLC-4E", models.PayloadRange{Min: 2000, Max: 8000})
	assert.Equal(t, []string{pieOutput, scatterOutput}, d.Update(next))
	assert.Equal(t, []string{pieOutput, scatterOutput}, rec.calls)
}

func TestDispatcherUnchangedSelectionRunsNothing(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	assert.Nil(t, d.Update(d.Selection()))
	assert.Empty(t, rec.calls)
}

func TestDispatcherBroadcastsToHub(t *testing.T) {
	hub := NewHub()
	d, _ := newTestDispatcher(hub)
	d.Refresh()

	_, ch, cancel := hub.Subscribe()
	defer cancel()
	// Replay of the initial render.
	assert.Equal(t, pieOutput, (<-ch).Output)
	assert.Equal(t, scatterOutput, (<-ch).Output)

	d.Update(models.NewFilterSelection("CCAFS LC-40", models.PayloadRange{Min: 0, Max: 10000}))
	pie := <-ch
	scatter := <-ch
	assert.Equal(t, pieOutput, pie.Output)
	assert.Equal(t, "CCAFS LC-40", pie.Spec.Title)
	assert.Equal(t, scatterOutput, scatter.Output)

	latest := hub.Latest(pieOutput)
	require.NotNil(t, latest)
	if diff := cmp.Diff(pie, latest); diff != "" {
		t.Errorf("latest differs from broadcast (-broadcast +latest):\n%s", diff)
	}
}
