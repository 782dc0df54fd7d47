package guess

import "sort"

// Result is one per-flight row of the guess table: the entry and exit
// assignments joined on flight identity. A flight observed at only one
// boundary still appears, with the other side's fields unset.
type Result struct {
	// Callsign identifies the flight.
	Callsign string

	// Date is the observation date, empty for dateless batches.
	Date string

	// EntryPoint is the assigned entry location name, empty when the
	// flight had no entry endpoint or no location claimed it.
	EntryPoint string

	// EntryDistanceKm is the distance to EntryPoint; nil when unset.
	EntryDistanceKm *float64

	// ExitPoint is the assigned exit location name, empty when the flight
	// had no exit endpoint or no location claimed it.
	ExitPoint string

	// ExitDistanceKm is the distance to ExitPoint; nil when unset.
	ExitDistanceKm *float64
}

// Assemble outer-joins entry and exit endpoints on (callsign, date) into one
// row per flight, ordered by callsign then date. Endpoints land in the
// result whether or not they were assigned; only assigned ones carry a
// distance.
func Assemble(entries, exits []Endpoint) []Result {
	index := make(map[flightKey]int)
	var keys []flightKey
	var rows []Result

	row := func(k flightKey) *Result {
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			keys = append(keys, k)
			rows = append(rows, Result{Callsign: k.callsign, Date: k.date})
		}
		return &rows[i]
	}

	for _, e := range entries {
		r := row(e.key())
		r.EntryPoint = e.Location
		if e.Assigned() {
			d := e.DistanceKm
			r.EntryDistanceKm = &d
		}
	}
	for _, e := range exits {
		r := row(e.key())
		r.ExitPoint = e.Location
		if e.Assigned() {
			d := e.DistanceKm
			r.ExitDistanceKm = &d
		}
	}

	sort.Slice(keys, func(a, b int) bool {
		if keys[a].callsign != keys[b].callsign {
			return keys[a].callsign < keys[b].callsign
		}
		return keys[a].date < keys[b].date
	})

	out := make([]Result, 0, len(keys))
	for _, k := range keys {
		out = append(out, rows[index[k]])
	}
	return out
}
