package coordinates

import "math"

// Constants for coordinate calculations
const (
	// KmPerDegree is the flat-earth scale factor in kilometers per degree.
	// All distances in this package are computed with the planar
	// approximation sqrt(dlat^2 + dlon^2) * 111.32, which is what the
	// historical CARATS processing used. It is only valid over short
	// ranges at mid-latitudes and must not be swapped for a haversine
	// formula: downstream consumers compare against prior outputs.
	KmPerDegree = 111.32

	// CoordinatePrecision is the number of decimal places kept when
	// converting DMS strings to decimal degrees (~1.1 m at the equator).
	CoordinatePrecision = 5
)

// Geographic represents a position on Earth's surface.
// Uses the WGS84 coordinate system (same as GPS).
type Geographic struct {
	// Latitude in decimal degrees (-90 to +90)
	// Positive = North, Negative = South
	Latitude float64

	// Longitude in decimal degrees (-180 to +180)
	// Positive = East, Negative = West
	Longitude float64
}

// PlanarDistanceKm returns the flat-earth distance between two points in
// kilometers. Degree differences are treated as planar offsets and scaled
// by KmPerDegree.
func PlanarDistanceKm(a, b Geographic) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	return math.Sqrt(dLat*dLat+dLon*dLon) * KmPerDegree
}
