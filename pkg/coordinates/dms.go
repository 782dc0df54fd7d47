package coordinates

import (
	"fmt"
	"math"
	"strconv"
)

// ParseError reports a malformed coordinate string. Gazetteer loading wraps
// it with the offending row so callers can use errors.As to distinguish bad
// source data from I/O failures.
type ParseError struct {
	// Input is the string that failed to parse.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse coordinate %q: %s", e.Input, e.Reason)
}

// ParseDMS converts a fixed-width degrees-minutes-seconds string to decimal
// degrees. The string carries degrees (degDigits wide, 2 for latitude, 3 for
// longitude), then two digits of minutes and two of seconds with no
// separators: "354030" is 35°40'30", "1394600" is 139°46'00". Characters
// beyond the fixed width are ignored.
//
// The result is degrees + minutes/60 + seconds/3600 rounded to
// CoordinatePrecision decimal places. A string shorter than the fixed width
// or with a non-numeric field yields a *ParseError.
func ParseDMS(s string, degDigits int) (float64, error) {
	if degDigits != 2 && degDigits != 3 {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("degree field must be 2 or 3 digits, not %d", degDigits)}
	}

	width := degDigits + 4
	if len(s) < width {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("need at least %d characters, have %d", width, len(s))}
	}

	deg, err := dmsField(s, s[:degDigits], "degrees")
	if err != nil {
		return 0, err
	}
	min, err := dmsField(s, s[degDigits:degDigits+2], "minutes")
	if err != nil {
		return 0, err
	}
	sec, err := dmsField(s, s[degDigits+2:degDigits+4], "seconds")
	if err != nil {
		return 0, err
	}

	decimal := float64(deg) + float64(min)/60.0 + float64(sec)/3600.0
	return roundTo(decimal, CoordinatePrecision), nil
}

// dmsField parses one numeric field of a DMS string.
func dmsField(input, field, name string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("%s field %q is not numeric", name, field)}
	}
	return v, nil
}

// roundTo rounds v to n decimal places.
func roundTo(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(v*scale) / scale
}
