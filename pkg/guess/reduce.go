package guess

import (
	"sort"

	"github.com/carats-tools/trkguess/pkg/track"
)

// Reduce collapses a batch of position samples to one first and one last
// endpoint per flight, keyed by (callsign, date). "First" keeps the sample
// with the minimum time, "last" the maximum; ties go to input order, so the
// first endpoint keeps the earliest tied sample and the last endpoint the
// latest. Both returned slices hold one entry per flight, ordered by
// callsign then date.
//
// An empty batch reduces to two empty slices.
func Reduce(samples []track.PositionSample) (first, last []Endpoint) {
	type extremes struct {
		first Endpoint
		last  Endpoint
	}

	index := make(map[flightKey]int)
	var keys []flightKey
	var flights []extremes

	for _, s := range samples {
		e := endpointFrom(s)
		k := e.key()
		i, seen := index[k]
		if !seen {
			index[k] = len(flights)
			keys = append(keys, k)
			flights = append(flights, extremes{first: e, last: e})
			continue
		}
		if e.Time < flights[i].first.Time {
			flights[i].first = e
		}
		if e.Time >= flights[i].last.Time {
			flights[i].last = e
		}
	}

	sort.Slice(keys, func(a, b int) bool {
		if keys[a].callsign != keys[b].callsign {
			return keys[a].callsign < keys[b].callsign
		}
		return keys[a].date < keys[b].date
	})

	first = make([]Endpoint, 0, len(keys))
	last = make([]Endpoint, 0, len(keys))
	for _, k := range keys {
		f := flights[index[k]]
		first = append(first, f.first)
		last = append(last, f.last)
	}
	return first, last
}
