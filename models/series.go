package models

// HoverField is a label/value pair shown when hovering over a point.
type HoverField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ScatterPoint struct {
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Hover []HoverField `json:"hover,omitempty"`
}

// Series is a group of scatter points sharing a colour.
type Series struct {
	// Key is the group the points belong to, for launches it's the booster version category.
	Key string `json:"key"`
	// Colour is a 3 byte hex colour with the # prefix.
	Colour string         `json:"colour"`
	Points []ScatterPoint `json:"points"`
}

func NewSeries(key, colour string) *Series {
	return &Series{
		Key:    key,
		Colour: colour,
		Points: make([]ScatterPoint, 0),
	}
}

func (s *Series) Add(x, y float64, hover ...HoverField) {
	s.Points = append(s.Points, ScatterPoint{X: x, Y: y, Hover: hover})
}
