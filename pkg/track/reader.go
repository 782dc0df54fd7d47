package track

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// trk CSV column layout: time, Callsign, Latitude, Longitude, Altitude, Type.
const trkColumns = 6

// ReadCSV parses trk rows from r, stamping every sample with date (which may
// be empty). A leading header line is tolerated and skipped; any other row
// that fails to parse aborts the read.
func ReadCSV(r io.Reader, date string) ([]PositionSample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = trkColumns
	cr.TrimLeadingSpace = true

	var samples []PositionSample
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trk row %d: %w", line+1, err)
		}
		line++

		s, err := parseRecord(record, date)
		if err != nil {
			if line == 1 {
				// Some trk exports carry a header line.
				continue
			}
			return nil, fmt.Errorf("trk row %d: %w", line, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// ReadFile reads one trk CSV, deriving the batch date from its name.
func ReadFile(path string) ([]PositionSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trk file: %w", err)
	}
	defer f.Close()

	samples, err := ReadCSV(f, DateFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ReadPaths reads and concatenates several trk CSVs in the given order.
func ReadPaths(paths []string) ([]PositionSample, error) {
	var all []PositionSample
	for _, p := range paths {
		samples, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, samples...)
	}
	return all, nil
}

// parseRecord converts one CSV record into a PositionSample.
func parseRecord(record []string, date string) (PositionSample, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return PositionSample{}, fmt.Errorf("latitude %q is not numeric", record[2])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return PositionSample{}, fmt.Errorf("longitude %q is not numeric", record[3])
	}
	alt, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return PositionSample{}, fmt.Errorf("altitude %q is not an integer", record[4])
	}

	return PositionSample{
		Date:      date,
		Time:      strings.TrimSpace(record[0]),
		Callsign:  strings.TrimSpace(record[1]),
		Latitude:  lat,
		Longitude: lon,
		Altitude:  alt,
		Category:  strings.TrimSpace(record[5]),
	}, nil
}

// DateFromPath extracts the YYYYMMDD date embedded in trk filenames like
// "trk20190816_00_12.csv". Returns "" when the name does not follow that
// convention.
func DateFromPath(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndex(base, "trk")
	if i < 0 {
		return ""
	}
	rest := base[i+len("trk"):]
	if j := strings.IndexAny(rest, "_."); j >= 0 {
		rest = rest[:j]
	}
	if len(rest) != 8 {
		return ""
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return rest
}

// CollectPaths resolves trk inputs to an ordered list of existing files.
// Explicit inputs (files or glob patterns) come first, then paths generated
// as dir/trk<date>_<sourceTime>.csv for every date × sourceTime combination.
// Generated paths that do not exist are silently dropped; a glob pattern
// that matches nothing contributes nothing.
func CollectPaths(inputs, dates, sourceTimes []string, dir string) ([]string, error) {
	var paths []string
	for _, in := range inputs {
		matches, err := filepath.Glob(in)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", in, err)
		}
		paths = append(paths, matches...)
	}

	if dir != "" {
		for _, d := range dates {
			for _, st := range sourceTimes {
				paths = append(paths, filepath.Join(dir, fmt.Sprintf("trk%s_%s.csv", d, st)))
			}
		}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return existing, nil
}
