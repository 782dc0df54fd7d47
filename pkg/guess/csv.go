package guess

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carats-tools/trkguess/pkg/track"
)

// Output column names. Downstream consumers match on these exactly.
const (
	colCallsign      = "Callsign"
	colDate          = "date"
	colEntryPoint    = "EntryPoint"
	colEntryDistance = "Distance_to_EntryPoint"
	colExitPoint     = "ExitPoint"
	colExitDistance  = "Distance_to_ExitPoint"
)

// WriteResults renders the per-flight guess table as CSV. With includeDate
// the date column follows the callsign. Unset fields render as empty cells.
func WriteResults(w io.Writer, results []Result, includeDate bool) error {
	cw := csv.NewWriter(w)

	header := []string{colCallsign}
	if includeDate {
		header = append(header, colDate)
	}
	header = append(header, colEntryPoint, colEntryDistance, colExitPoint, colExitDistance)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write guess header: %w", err)
	}

	for _, r := range results {
		row := []string{r.Callsign}
		if includeDate {
			row = append(row, r.Date)
		}
		row = append(row,
			r.EntryPoint, formatDistance(r.EntryDistanceKm),
			r.ExitPoint, formatDistance(r.ExitDistanceKm),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write guess row for %s: %w", r.Callsign, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAnnotatedTracks re-emits every raw sample row with the per-flight
// entry/exit columns appended, for row-level annotation of the full
// trajectory table.
func WriteAnnotatedTracks(w io.Writer, samples []track.PositionSample, results []Result, includeDate bool) error {
	byFlight := make(map[flightKey]Result, len(results))
	for _, r := range results {
		byFlight[flightKey{callsign: r.Callsign, date: r.Date}] = r
	}

	cw := csv.NewWriter(w)

	header := []string{"time", colCallsign, "Latitude", "Longitude", "Altitude", "Type"}
	if includeDate {
		header = append([]string{colDate}, header...)
	}
	header = append(header, colEntryPoint, colEntryDistance, colExitPoint, colExitDistance)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write annotation header: %w", err)
	}

	for _, s := range samples {
		r := byFlight[flightKey{callsign: s.Callsign, date: s.Date}]
		row := []string{
			s.Time, s.Callsign,
			strconv.FormatFloat(s.Latitude, 'f', -1, 64),
			strconv.FormatFloat(s.Longitude, 'f', -1, 64),
			strconv.Itoa(s.Altitude),
			s.Category,
		}
		if includeDate {
			row = append([]string{s.Date}, row...)
		}
		row = append(row,
			r.EntryPoint, formatDistance(r.EntryDistanceKm),
			r.ExitPoint, formatDistance(r.ExitDistanceKm),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write annotated row for %s: %w", s.Callsign, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatDistance renders a distance cell, empty when unset.
func formatDistance(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(*d, 'f', -1, 64)
}
