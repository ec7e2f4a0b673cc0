package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"unicode"

	ds "github.com/starfederation/datastar-go/datastar"
	"launchdash/charts"
	"launchdash/config"
	"launchdash/events"
	"launchdash/models"
	"launchdash/store"
	"launchdash/ui"
	"launchdash/web"
)

type Dashboard struct {
	templates *template.Template
	config    *config.Dashboard
	dataset   *store.Dataset
	layout    *ui.Layout
	slider    ui.Slider

	sessions *sessions
}

// filterSignals is what the page sends when an input changes. Range inputs may report their value
// as a string depending on how the signal was bound, so both forms are accepted.
type filterSignals struct {
	Site        string     `json:"site"`
	PayloadLow  flexNumber `json:"payloadLow"`
	PayloadHigh flexNumber `json:"payloadHigh"`
}

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("payload %s is not a finite number", s)
	}
	*n = flexNumber(f)
	return nil
}

// nodeContext lets the recursive node template reach the rendered charts.
type nodeContext struct {
	Node   *ui.Node
	Charts map[string]template.HTML
}

func NewDashboard(dataset *store.Dataset, cfg *config.Dashboard) (dashboard *Dashboard, err error) {
	dashboard = &Dashboard{
		config:  cfg,
		dataset: dataset,
		layout:  ui.DashboardLayout(dataset, cfg),
		slider:  ui.PayloadSlider(dataset.PayloadRange(), cfg.SliderStep),
	}

	templates := template.New("").Funcs(template.FuncMap{
		"style":    styleAttr,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"node": func(n *ui.Node, charts map[string]template.HTML) nodeContext {
			return nodeContext{n, charts}
		},
		"num": num,
	})
	dashboard.templates, err = templates.ParseFS(web.Static, "templates/dashboard/*.gohtml")
	if err != nil {
		return nil, err
	}

	dashboard.sessions, err = newSessions(cfg.SessionCacheSize, dashboard.newSession)
	return dashboard, err
}

func (d *Dashboard) Templates() *template.Template {
	return d.templates
}

func (d *Dashboard) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/filter": d.FilterHandler,
	}
}

func (d *Dashboard) Data(clientID string) map[string]interface{} {
	dispatcher := d.sessions.get(clientID)
	selection := dispatcher.Selection()

	renderedCharts := make(map[string]template.HTML)
	for _, output := range store.OrderedOutputs() {
		event := dispatcher.Hub().Latest(output.Key())
		if event == nil {
			continue
		}
		html, err := d.renderChart(event.Spec)
		if err != nil {
			log.Printf("error rendering chart %s: %s", output.Key(), err)
			continue
		}
		renderedCharts[output.Key()] = html
	}

	signals, err := json.Marshal(selection)
	if err != nil {
		log.Printf("error encoding signals: %s", err)
	}

	return map[string]interface{}{
		"title":       d.config.Title,
		"datastarURL": d.config.DatastarURL,
		"signals":     string(signals),
		"layout":      d.layout,
		"charts":      renderedCharts,
	}
}

func (d *Dashboard) Subscribe(clientID string) (<-chan *events.Event, func()) {
	hub := d.sessions.get(clientID).Hub()
	_, updates, cancel := hub.Subscribe()
	log.Printf("client %s subscribed to updates (%d open)", clientID, hub.Subscribers())
	return updates, cancel
}

// PatchOnEvent morphs the chart element the event belongs to.
func (d *Dashboard) PatchOnEvent(sse *ds.ServerSentEventGenerator, event *events.Event) error {
	html, err := d.renderChart(event.Spec)
	if err != nil {
		return err
	}
	return sse.PatchElements(string(html))
}

// FilterHandler is called when the client changes the site dropdown or the payload slider.
func (d *Dashboard) FilterHandler(w http.ResponseWriter, r *http.Request) {
	// Read signals sent from the client
	var sig filterSignals
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	clientID := getClientID(w, r)
	selection := d.normaliseSelection(sig)
	outputs := d.sessions.get(clientID).Update(selection)
	if len(outputs) > 0 {
		log.Printf("client %s: %s re-rendered %s", clientID, describe(selection), strings.Join(outputs, ", "))
	}

	// Charts arrive through the updates stream.
	w.WriteHeader(http.StatusNoContent)
}

// normaliseSelection is the server half of the slider and dropdown widgets, it keeps the
// selection within what the widgets can actually produce.
func (d *Dashboard) normaliseSelection(sig filterSignals) models.FilterSelection {
	site := sig.Site
	// The dropdown only offers known sites.
	if site == "" || !d.dataset.HasSite(site) {
		site = models.ALL_SITES
	}
	low, high := d.slider.Clamp(float64(sig.PayloadLow), float64(sig.PayloadHigh))
	return models.FilterSelection{Site: site, PayloadLow: low, PayloadHigh: high}
}

func (d *Dashboard) newSession() *events.Dispatcher {
	initial := models.NewFilterSelection(models.ALL_SITES, models.PayloadRange{Min: d.slider.Low, Max: d.slider.High})
	dispatcher := events.NewDispatcher(initial, events.NewHub())
	charts.Bind(dispatcher, d.dataset)
	dispatcher.Refresh()
	return dispatcher
}

func (d *Dashboard) renderChart(spec *models.ChartSpec) (template.HTML, error) {
	var buf bytes.Buffer
	if err := d.templates.ExecuteTemplate(&buf, "chart", newChartView(spec)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func describe(sel models.FilterSelection) string {
	return sel.Site + " [" + num(sel.PayloadLow) + ", " + num(sel.PayloadHigh) + "]"
}

// styleAttr turns {"textAlign": "center"} into "text-align: center".
func styleAttr(style ui.Style) template.CSS {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, r := range k {
			if unicode.IsUpper(r) {
				b.WriteByte('-')
				b.WriteRune(unicode.ToLower(r))
				continue
			}
			b.WriteRune(r)
		}
		b.WriteString(": ")
		b.WriteString(style[k])
		b.WriteString("; ")
	}
	return template.CSS(strings.TrimSpace(b.String()))
}
