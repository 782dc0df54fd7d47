package guess

// DefaultAltitudeThresholdFt is the altitude at or below which a flight's
// endpoint counts as on or near the ground.
const DefaultAltitudeThresholdFt = 6000

// Classify splits reduced endpoints by the altitude threshold. Flights whose
// first endpoint is at or below the threshold were observed departing;
// flights whose last endpoint is at or below it were observed landing.
// Flights in neither set were airborne at both ends of the window: their
// first and last endpoints are returned separately as candidates for
// fix-based boundary assignment instead of airport assignment.
//
// A thresholdFt of zero or below selects DefaultAltitudeThresholdFt.
func Classify(first, last []Endpoint, thresholdFt int) (departed, landed, airborneFirst, airborneLast []Endpoint) {
	if thresholdFt <= 0 {
		thresholdFt = DefaultAltitudeThresholdFt
	}

	grounded := make(map[flightKey]bool)
	for _, e := range first {
		if e.Altitude <= thresholdFt {
			departed = append(departed, e)
			grounded[e.key()] = true
		}
	}
	for _, e := range last {
		if e.Altitude <= thresholdFt {
			landed = append(landed, e)
			grounded[e.key()] = true
		}
	}

	for _, e := range first {
		if !grounded[e.key()] {
			airborneFirst = append(airborneFirst, e)
		}
	}
	for _, e := range last {
		if !grounded[e.key()] {
			airborneLast = append(airborneLast, e)
		}
	}
	return departed, landed, airborneFirst, airborneLast
}
