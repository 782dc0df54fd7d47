// Package guess infers the nearest airport or en-route fix at which each
// tracked flight entered and exited the observed airspace volume, from
// positional samples and a static gazetteer.
//
// The pipeline is Reduce (per-flight first/last endpoints), Classify
// (grounded vs airborne split at an altitude threshold), Assign (greedy
// priority-ordered nearest-location claim, run over airports and then
// optionally over fixes) and Assemble (per-flight entry/exit join).
// Guesser drives all four over one batch.
package guess

import "github.com/carats-tools/trkguess/pkg/track"

// Endpoint is the first or last recorded position of a flight within an
// observation window, plus the location assignment made for it.
type Endpoint struct {
	// Callsign identifies the flight.
	Callsign string

	// Date is the observation date (YYYYMMDD), empty for dateless batches.
	// It is part of the flight identity: the same callsign on two dates is
	// two flights.
	Date string

	// Time is the sample's zero-padded time of day.
	Time string

	// Latitude in decimal degrees.
	Latitude float64

	// Longitude in decimal degrees.
	Longitude float64

	// Altitude in feet.
	Altitude int

	// Category is the aircraft type code carried through from the sample.
	Category string

	// Location is the assigned location name. Empty until a gazetteer
	// entry claims this endpoint; once set it is never overwritten.
	Location string

	// DistanceKm is the planar distance to Location. Meaningful only when
	// the endpoint is assigned.
	DistanceKm float64
}

// Assigned reports whether a location has claimed this endpoint.
func (e *Endpoint) Assigned() bool {
	return e.Location != ""
}

// flightKey identifies one flight within a batch.
type flightKey struct {
	callsign string
	date     string
}

func (e *Endpoint) key() flightKey {
	return flightKey{callsign: e.Callsign, date: e.Date}
}

// endpointFrom copies the identity and position of a sample into an
// unassigned endpoint.
func endpointFrom(s track.PositionSample) Endpoint {
	return Endpoint{
		Callsign:  s.Callsign,
		Date:      s.Date,
		Time:      s.Time,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Altitude:  s.Altitude,
		Category:  s.Category,
	}
}
