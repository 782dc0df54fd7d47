// Package track reads CARATS radar track batches: CSV files of timed
// position samples, one row per radar return, plus a compact binary cache
// format for repeated runs over the same batch.
package track

// PositionSample is one radar return for one flight. Samples are immutable
// and append-only within a batch.
type PositionSample struct {
	// Date is the observation date in YYYYMMDD form, derived from the
	// source filename. Empty when the source carries no date; single-day
	// batches work without one.
	Date string

	// Time is the zero-padded time of day ("HH:MM:SS") as recorded in the
	// source. Lexical order equals chronological order within a date.
	Time string

	// Callsign identifies the flight.
	Callsign string

	// Latitude in decimal degrees.
	Latitude float64

	// Longitude in decimal degrees.
	Longitude float64

	// Altitude in feet.
	Altitude int

	// Category is the aircraft type/category code from the source.
	Category string
}
