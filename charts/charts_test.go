package charts

import (
	"testing"

	"github.com/stretchr/testify/require"
	"launchdash/config"
	"launchdash/models"
	"launchdash/store"
)

// scenarioDataset has site A with 3 successes and 2 failures, and site B with 1 success and
// 4 failures. Payloads run from 1000 to 10000 in steps of 1000.
func scenarioDataset(t *testing.T) *store.Dataset {
	t.Helper()
	rows := []struct {
		site     string
		payload  float64
		category string
		class    int
	}{
		{"A", 1000, "v1.0", 1},
		{"B", 2000, "v1.0", 0},
		{"A", 3000, "v1.1", 1},
		{"B", 4000, "v1.1", 1},
		{"A", 5000, "FT", 0},
		{"B", 6000, "FT", 0},
		{"A", 7000, "FT", 1},
		{"B", 8000, "B4", 0},
		{"A", 9000, "B4", 0},
		{"B", 10000, "B5", 0},
	}
	records := make([]*models.LaunchRecord, 0, len(rows))
	for i, r := range rows {
		records = append(records, models.NewLaunchRecord(i+1, r.site, r.payload, "", r.category, r.class))
	}
	ds, err := store.NewDataset(records)
	require.NoError(t, err)
	return ds
}

func testdataDataset(t *testing.T) *store.Dataset {
	t.Helper()
	ds, err := store.Load("../store/testdata/launches.csv", config.DefaultColumns())
	require.NoError(t, err)
	return ds
}

func sliceValues(spec *models.ChartSpec) map[string]float64 {
	values := make(map[string]float64, len(spec.Slices))
	for _, s := range spec.Slices {
		values[s.Label] = s.Value
	}
	return values
}
