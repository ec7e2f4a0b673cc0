package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_TITLE              = "SpaceX Launch Records Dashboard"
	DEFAULT_SLIDER_STEP        = 1000
	DEFAULT_SESSION_CACHE_SIZE = 1024
	DEFAULT_DATASTAR_URL       = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
)

var ErrUnsupportedConfig = errors.New("unsupported config format")

// Columns maps dataset headers to launch record fields.
type Columns struct {
	Site            string `yaml:"site" toml:"site"`
	Payload         string `yaml:"payload" toml:"payload"`
	BoosterCategory string `yaml:"booster_category" toml:"booster_category"`
	Outcome         string `yaml:"outcome" toml:"outcome"`
	// FlightNumber and BoosterVersion are optional, rows just won't carry them if the header is missing.
	FlightNumber   string `yaml:"flight_number" toml:"flight_number"`
	BoosterVersion string `yaml:"booster_version" toml:"booster_version"`
}

func DefaultColumns() Columns {
	return Columns{
		Site:            "Launch Site",
		Payload:         "Payload Mass (kg)",
		BoosterCategory: "Booster Version Category",
		Outcome:         "class",
		FlightNumber:    "Flight Number",
		BoosterVersion:  "Booster Version",
	}
}

type Dashboard struct {
	Title string `yaml:"title" toml:"title"`
	// Description is markdown shown under the title.
	Description      string  `yaml:"description" toml:"description"`
	Columns          Columns `yaml:"columns" toml:"columns"`
	SliderStep       float64 `yaml:"slider_step" toml:"slider_step"`
	SessionCacheSize int     `yaml:"session_cache_size" toml:"session_cache_size"`
	DatastarURL      string  `yaml:"datastar_url" toml:"datastar_url"`
}

func DefaultDashboard() *Dashboard {
	return &Dashboard{
		Title:            DEFAULT_TITLE,
		Columns:          DefaultColumns(),
		SliderStep:       DEFAULT_SLIDER_STEP,
		SessionCacheSize: DEFAULT_SESSION_CACHE_SIZE,
		DatastarURL:      DEFAULT_DATASTAR_URL,
	}
}

// LoadDashboard reads a yaml or toml dashboard file on top of the defaults. An empty path just
// returns the defaults.
func LoadDashboard(path string) (*Dashboard, error) {
	dashboard := DefaultDashboard()
	if path == "" {
		return dashboard, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read dashboard config: %w", err)
	}

	var file Dashboard
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		_, err = toml.Decode(string(data), &file)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't parse dashboard config %s: %w", path, err)
	}

	dashboard.merge(&file)
	return dashboard, nil
}

// merge copies every non zero field of other into d.
func (d *Dashboard) merge(other *Dashboard) {
	if other.Title != "" {
		d.Title = other.Title
	}
	if other.Description != "" {
		d.Description = other.Description
	}
	if other.SliderStep > 0 {
		d.SliderStep = other.SliderStep
	}
	if other.SessionCacheSize > 0 {
		d.SessionCacheSize = other.SessionCacheSize
	}
	if other.DatastarURL != "" {
		d.DatastarURL = other.DatastarURL
	}

	c := other.Columns
	for _, f := range []struct {
		src string
		dst *string
	}{
		{c.Site, &d.Columns.Site},
		{c.Payload, &d.Columns.Payload},
		{c.BoosterCategory, &d.Columns.BoosterCategory},
		{c.Outcome, &d.Columns.Outcome},
		{c.FlightNumber, &d.Columns.FlightNumber},
		{c.BoosterVersion, &d.Columns.BoosterVersion},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}
