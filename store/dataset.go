package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"launchdash/config"
	"launchdash/models"
)

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrBadValue          = errors.New("bad value")
	ErrEmptyDataset      = errors.New("dataset has no records")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Dataset is the immutable set of launch records the dashboard is built from. Everything derived
// from the records is computed once in NewDataset.
type Dataset struct {
	records      []*models.LaunchRecord
	sites        []string
	payloadRange models.PayloadRange
}

// Load reads a .csv or .xlsx file of launch records.
func Load(path string, columns config.Columns) (*Dataset, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	records, err := parseRows(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dataset, err := NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("loaded %d launch records from %s (%d sites)", dataset.Len(), path, len(dataset.Sites()))
	return dataset, nil
}

// NewDataset builds a dataset from records, which must not be modified afterwards.
func NewDataset(records []*models.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	d := &Dataset{records: records}

	seen := make(map[string]bool)
	d.payloadRange = models.PayloadRange{Min: records[0].PayloadMass(), Max: records[0].PayloadMass()}
	for _, r := range records {
		if !seen[r.Site()] {
			seen[r.Site()] = true
			d.sites = append(d.sites, r.Site())
		}
		d.payloadRange.Min = min(d.payloadRange.Min, r.PayloadMass())
		d.payloadRange.Max = max(d.payloadRange.Max, r.PayloadMass())
	}
	slices.Sort(d.sites)

	return d, nil
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns every record in file order. Callers must not modify the slice.
func (d *Dataset) Records() []*models.LaunchRecord {
	return d.records
}

// Sites returns the sorted distinct launch sites.
func (d *Dataset) Sites() []string {
	return d.sites
}

func (d *Dataset) HasSite(site string) bool {
	_, found := slices.BinarySearch(d.sites, site)
	return found
}

func (d *Dataset) PayloadRange() models.PayloadRange {
	return d.payloadRange
}

// Filter returns the records keep returns true for, in file order.
func (d *Dataset) Filter(keep func(*models.LaunchRecord) bool) []*models.LaunchRecord {
	filtered := make([]*models.LaunchRecord, 0, len(d.records))
	for _, r := range d.records {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open dataset: %w", err)
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("couldn't close file: %s", err)
		}
	}(file)

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("couldn't read csv %s: %w", path, err)
	}
	return rows, nil
}

// readXLSX reads the first sheet of a workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open dataset: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("couldn't close workbook: %s", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets: %w", path, ErrEmptyDataset)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("couldn't read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func parseRows(rows [][]string, columns config.Columns) ([]*models.LaunchRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		header[strings.TrimSpace(h)] = i
	}

	required := func(name string) (int, error) {
		idx, ok := header[name]
		if !ok {
			return 0, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
		return idx, nil
	}
	siteIdx, err := required(columns.Site)
	if err != nil {
		return nil, err
	}
	payloadIdx, err := required(columns.Payload)
	if err != nil {
		return nil, err
	}
	categoryIdx, err := required(columns.BoosterCategory)
	if err != nil {
		return nil, err
	}
	outcomeIdx, err := required(columns.Outcome)
	if err != nil {
		return nil, err
	}
	flightIdx, hasFlight := header[columns.FlightNumber]
	versionIdx, hasVersion := header[columns.BoosterVersion]

	records := make([]*models.LaunchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// header is line 1
		line := i + 2
		if isBlank(row) {
			continue
		}
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		payload, err := strconv.ParseFloat(cell(payloadIdx), 64)
		if err != nil || math.IsNaN(payload) || math.IsInf(payload, 0) {
			return nil, fmt.Errorf("line %d: payload %q: %w", line, cell(payloadIdx), ErrBadValue)
		}
		class, err := parseOutcome(cell(outcomeIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: outcome %q: %w", line, cell(outcomeIdx), err)
		}

		var flight int
		if hasFlight && cell(flightIdx) != "" {
			flight, err = strconv.Atoi(cell(flightIdx))
			if err != nil {
				return nil, fmt.Errorf("line %d: flight number %q: %w", line, cell(flightIdx), ErrBadValue)
			}
		}
		var version string
		if hasVersion {
			version = cell(versionIdx)
		}

		records = append(records, models.NewLaunchRecord(
			flight,
			cell(siteIdx),
			payload,
			version,
			cell(categoryIdx),
			class,
		))
	}

	return records, nil
}

// parseOutcome accepts 0 and 1, including spreadsheet style "1.0".
func parseOutcome(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrBadValue
	}
	switch v {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}
	return 0, ErrBadValue
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
