package ui

import "math"

// Kind is the type of element a layout node renders as.
type Kind string

const (
	ROOT         Kind = "root"
	HEADING      Kind = "heading"
	PARAGRAPH    Kind = "paragraph"
	MARKDOWN     Kind = "markdown"
	BREAK        Kind = "break"
	DROPDOWN     Kind = "dropdown"
	RANGE_SLIDER Kind = "range-slider"
	GRAPH        Kind = "graph"
	CONTAINER    Kind = "container"
)

// Style is a set of css declarations, e.g. {"textAlign": "center"}. Keys are written in camel case
// and converted when rendered.
type Style map[string]string

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Mark is a labelled tick on a slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Slider holds the settings of a RANGE_SLIDER node. Low and High are the initial handle
// positions, AllowCross lets the handles pass each other.
type Slider struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Step       float64 `json:"step"`
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Marks      []Mark  `json:"marks,omitempty"`
	AllowCross bool    `json:"allowCross"`
}

// InputMax is the max to give a stepped html range input so its top position reaches Max. The
// browser only stops on Min + k*Step, so a range that isn't a whole number of steps gets rounded
// up and the server clamps the value back down with Clamp.
func (s Slider) InputMax() float64 {
	if s.Step <= 0 {
		return s.Max
	}
	return s.Min + math.Ceil((s.Max-s.Min)/s.Step)*s.Step
}

// Clamp keeps a pair of handle values inside [Min, Max] with low <= high. Crossed handles are
// swapped when the slider allows crossing, otherwise the low handle is pushed back. A NaN handle
// goes to its end of the slider.
func (s Slider) Clamp(low, high float64) (float64, float64) {
	if math.IsNaN(low) {
		low = s.Min
	}
	if math.IsNaN(high) {
		high = s.Max
	}
	low = min(max(low, s.Min), s.Max)
	high = min(max(high, s.Min), s.Max)
	if low > high {
		if s.AllowCross {
			return high, low
		}
		low = high
	}
	return low, high
}

// Node is one element of the page.
type Node struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`
	// HTML is pre-rendered markup, only set for MARKDOWN nodes.
	HTML        string   `json:"html,omitempty"`
	Style       Style    `json:"style,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Value       string   `json:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Searchable  bool     `json:"searchable,omitempty"`
	Slider      *Slider  `json:"slider,omitempty"`
	Children    []*Node  `json:"children,omitempty"`
}
