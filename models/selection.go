package models

// ALL_SITES is the dropdown value meaning "don't filter by site".
const ALL_SITES = "ALL"

// Input widget identifiers. Handlers are bound to these.
const (
	SITE_INPUT    = "site-dropdown"
	PAYLOAD_INPUT = "payload-slider"
)

// FilterSelection is the current state of the input widgets.
type FilterSelection struct {
	Site        string  `json:"site"`
	PayloadLow  float64 `json:"payloadLow"`
	PayloadHigh float64 `json:"payloadHigh"`
}

func NewFilterSelection(site string, payload PayloadRange) FilterSelection {
	return FilterSelection{
		Site:        site,
		PayloadLow:  payload.Min,
		PayloadHigh: payload.Max,
	}
}

// AllSites reports whether the selection covers every launch site.
func (s FilterSelection) AllSites() bool {
	return s.Site == ALL_SITES || s.Site == ""
}

// Payload returns the selected payload bounds as a range.
func (s FilterSelection) Payload() PayloadRange {
	return PayloadRange{Min: s.PayloadLow, Max: s.PayloadHigh}
}

// ChangedInputs returns the widget identifiers whose value differs between s and next.
func (s FilterSelection) ChangedInputs(next FilterSelection) []string {
	var changed []string
	if s.Site != next.Site {
		changed = append(changed, SITE_INPUT)
	}
	if s.PayloadLow != next.PayloadLow || s.PayloadHigh != next.PayloadHigh {
		changed = append(changed, PAYLOAD_INPUT)
	}
	return changed
}
