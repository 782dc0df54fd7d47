package guess

import (
	"github.com/carats-tools/trkguess/pkg/coordinates"
	"github.com/carats-tools/trkguess/pkg/gazetteer"
)

// DefaultRadiusKm is the default claim radius for location assignment.
const DefaultRadiusKm = 10.0

// Assign runs the greedy nearest-location pass over endpoints, mutating
// them in place. Locations are iterated in the given order and each claims
// every still-unassigned endpoint within radiusKm of it.
//
// Priority is positional, not distance-based: a location earlier in the
// list that is barely within radius beats a later, closer one. Assignments
// are write-once, so endpoints already claimed (including by a previous
// Assign call) are never reconsidered, and an endpoint that no location
// reaches simply stays unassigned. Callers order high-traffic locations
// first to keep the scan short.
func Assign(endpoints []Endpoint, locations []gazetteer.Location, radiusKm float64) {
	for _, loc := range locations {
		unassigned := 0
		for i := range endpoints {
			e := &endpoints[i]
			if e.Assigned() {
				continue
			}
			d := coordinates.PlanarDistanceKm(coordinates.Geographic{
				Latitude:  e.Latitude,
				Longitude: e.Longitude,
			}, loc.Position)
			if d <= radiusKm {
				e.Location = loc.Name
				e.DistanceKm = d
			} else {
				unassigned++
			}
		}
		if unassigned == 0 {
			return
		}
	}
}
