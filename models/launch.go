package models

type LaunchRecord struct {
	// flightNumber is the flight number, 0 when the dataset doesn't carry one.
	flightNumber int
	// site is the launch site name, e.g. "CCAFS LC-40".
	site string
	// payloadMass is the payload mass in kg.
	payloadMass float64
	// boosterVersion is the exact booster version, e.g. "F9 v1.1 B1003". Optional.
	boosterVersion string
	// boosterCategory is the booster version category, e.g. "v1.1" or "FT". Used to colour scatter points.
	boosterCategory string
	// class is the launch outcome, 1 is a success and 0 is a failure.
	class int
}

func NewLaunchRecord(
	flightNumber int,
	site string,
	payloadMass float64,
	boosterVersion,
	boosterCategory string,
	class int,
) *LaunchRecord {
	return &LaunchRecord{
		flightNumber,
		site,
		payloadMass,
		boosterVersion,
		boosterCategory,
		class,
	}
}

func (r *LaunchRecord) FlightNumber() int {
	return r.flightNumber
}

func (r *LaunchRecord) Site() string {
	return r.site
}

func (r *LaunchRecord) PayloadMass() float64 {
	return r.payloadMass
}

func (r *LaunchRecord) BoosterVersion() string {
	return r.boosterVersion
}

func (r *LaunchRecord) BoosterCategory() string {
	return r.boosterCategory
}

func (r *LaunchRecord) Class() int {
	return r.class
}

func (r *LaunchRecord) Success() bool {
	return r.class == 1
}

// PayloadRange is the [Min, Max] payload mass across a dataset.
type PayloadRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether mass lies within the range, bounds included.
func (p PayloadRange) Contains(mass float64) bool {
	return mass >= p.Min && mass <= p.Max
}
