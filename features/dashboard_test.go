package features

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"launchdash/charts"
	"launchdash/events"
	"launchdash/models"
	"launchdash/store"
)

// dashboardContext holds the state of one scenario.
type dashboardContext struct {
	records    []*models.LaunchRecord
	dataset    *store.Dataset
	dispatcher *events.Dispatcher
	rendered   []string
}

func (dc *dashboardContext) theLaunchRecords(table *godog.Table) error {
	for i, row := range table.Rows[1:] {
		if len(row.Cells) != 4 {
			return fmt.Errorf("row %d: expected 4 cells, got %d", i+1, len(row.Cells))
		}
		payload, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		class, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		dc.records = append(dc.records, models.NewLaunchRecord(i+1, row.Cells[0].Value, payload, "", row.Cells[2].Value, class))
	}
	return nil
}

func (dc *dashboardContext) theDashboardIsOpen() error {
	dataset, err := store.NewDataset(dc.records)
	if err != nil {
		return err
	}
	dc.dataset = dataset
	dc.dispatcher = events.NewDispatcher(models.NewFilterSelection(models.ALL_SITES, dataset.PayloadRange()), events.NewHub())
	charts.Bind(dc.dispatcher, dataset)
	dc.dispatcher.Refresh()
	return nil
}

func (dc *dashboardContext) iSelectTheSite(site string) error {
	sel := dc.dispatcher.Selection()
	sel.Site = site
	dc.rendered = dc.dispatcher.Update(sel)
	return nil
}

func (dc *dashboardContext) iSelectThePayloadRange(low, high int) error {
	sel := dc.dispatcher.Selection()
	sel.PayloadLow, sel.PayloadHigh = float64(low), float64(high)
	dc.rendered = dc.dispatcher.Update(sel)
	return nil
}

func (dc *dashboardContext) theChartsAreReRendered(list string) error {
	want := strings.Split(list, ", ")
	if !slices.Equal(want, dc.rendered) {
		return fmt.Errorf("expected %v to be re-rendered, got %v", want, dc.rendered)
	}
	return nil
}

func (dc *dashboardContext) noChartsAreReRendered() error {
	if len(dc.rendered) > 0 {
		return fmt.Errorf("expected nothing to be re-rendered, got %v", dc.rendered)
	}
	return nil
}

func (dc *dashboardContext) chart(output string) (*models.ChartSpec, error) {
	event := dc.dispatcher.Hub().Latest(output)
	if event == nil {
		return nil, fmt.Errorf("%s was never rendered", output)
	}
	return event.Spec, nil
}

func (dc *dashboardContext) chartIsTitled(output string) func(string) error {
	return func(title string) error {
		spec, err := dc.chart(output)
		if err != nil {
			return err
		}
		if spec.Title != title {
			return fmt.Errorf("expected title %q, got %q", title, spec.Title)
		}
		return nil
	}
}

func (dc *dashboardContext) thePieChartShows(table *godog.Table) error {
	spec, err := dc.chart(store.PIE_CHART)
	if err != nil {
		return err
	}
	rows := table.Rows[1:]
	if len(rows) != len(spec.Slices) {
		return fmt.Errorf("expected %d slices, got %d", len(rows), len(spec.Slices))
	}
	for i, row := range rows {
		value, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		got := spec.Slices[i]
		if got.Label != row.Cells[0].Value || got.Value != value {
			return fmt.Errorf("slice %d: expected %s=%v, got %s=%v", i, row.Cells[0].Value, value, got.Label, got.Value)
		}
	}
	return nil
}

func (dc *dashboardContext) thePieChartTotalIs(total int) error {
	spec, err := dc.chart(store.PIE_CHART)
	if err != nil {
		return err
	}
	if spec.Total() != float64(total) {
		return fmt.Errorf("expected total %d, got %v", total, spec.Total())
	}
	return nil
}

func (dc *dashboardContext) theScatterChartShowsPoints(n int) error {
	spec, err := dc.chart(store.SCATTER_CHART)
	if err != nil {
		return err
	}
	if spec.PointCount() != n {
		return fmt.Errorf("expected %d points, got %d", n, spec.PointCount())
	}
	return nil
}

func (dc *dashboardContext) theScatterChartPayloadsAre(list string) error {
	spec, err := dc.chart(store.SCATTER_CHART)
	if err != nil {
		return err
	}
	var got []string
	for _, s := range spec.Series {
		for _, p := range s.Points {
			got = append(got, strconv.FormatFloat(p.X, 'f', -1, 64))
		}
	}
	slices.SortFunc(got, func(a, b string) int {
		x, _ := strconv.ParseFloat(a, 64)
		y, _ := strconv.ParseFloat(b, 64)
		return int(x - y)
	})
	if strings.Join(got, ", ") != list {
		return fmt.Errorf("expected payloads %s, got %s", list, strings.Join(got, ", "))
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	dc := &dashboardContext{}

	sc.Step(`^the launch records:$`, dc.theLaunchRecords)
	sc.Step(`^the dashboard is open$`, dc.theDashboardIsOpen)
	sc.Step(`^I select the site "([^"]*)"$`, dc.iSelectTheSite)
	sc.Step(`^I select the payload range (\d+) to (\d+)$`, dc.iSelectThePayloadRange)
	sc.Step(`^the charts "([^"]*)" are re-rendered$`, dc.theChartsAreReRendered)
	sc.Step(`^no charts are re-rendered$`, dc.noChartsAreReRendered)
	sc.Step(`^the pie chart is titled "([^"]*)"$`, dc.chartIsTitled(store.PIE_CHART))
	sc.Step(`^the scatter chart is titled "([^"]*)"$`, dc.chartIsTitled(store.SCATTER_CHART))
	sc.Step(`^the pie chart shows:$`, dc.thePieChartShows)
	sc.Step(`^the pie chart total is (\d+)$`, dc.thePieChartTotalIs)
	sc.Step(`^the scatter chart shows (\d+) points?$`, dc.theScatterChartShowsPoints)
	sc.Step(`^the scatter chart payloads are "([^"]*)"$`, dc.theScatterChartPayloadsAre)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"."},
			Tags:     "~@wip",
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
