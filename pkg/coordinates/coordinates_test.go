package coordinates

import (
	"errors"
	"math"
	"testing"
)

// TestParseDMS verifies fixed-width DMS conversion against known airport
// coordinates.
func TestParseDMS(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		degDigits int
		want      float64
	}{
		{
			name:      "Tokyo International latitude",
			input:     "354030",
			degDigits: 2,
			want:      35.675,
		},
		{
			name:      "Tokyo International longitude",
			input:     "1394600",
			degDigits: 3,
			want:      139.76667,
		},
		{
			name:      "zero seconds",
			input:     "420000",
			degDigits: 2,
			want:      42.0,
		},
		{
			name:      "trailing characters beyond fixed width are ignored",
			input:     "354030N",
			degDigits: 2,
			want:      35.675,
		},
		{
			name:      "rounding to five decimal places",
			input:     "0010101",
			degDigits: 3,
			want:      1.01694, // 1 + 1/60 + 1/3600 = 1.016944...
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDMS(tt.input, tt.degDigits)
			if err != nil {
				t.Fatalf("ParseDMS(%q, %d) returned error: %v", tt.input, tt.degDigits, err)
			}
			if got != tt.want {
				t.Errorf("ParseDMS(%q, %d) = %v, want %v", tt.input, tt.degDigits, got, tt.want)
			}
		})
	}
}

// TestParseDMSErrors verifies that malformed strings produce a *ParseError.
func TestParseDMSErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		degDigits int
	}{
		{name: "too short for latitude", input: "35403", degDigits: 2},
		{name: "too short for longitude", input: "139460", degDigits: 3},
		{name: "empty string", input: "", degDigits: 2},
		{name: "non-numeric degrees", input: "3A4030", degDigits: 2},
		{name: "non-numeric minutes", input: "35X030", degDigits: 2},
		{name: "non-numeric seconds", input: "3540ZZ", degDigits: 2},
		{name: "invalid degree width", input: "354030", degDigits: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDMS(tt.input, tt.degDigits)
			if err == nil {
				t.Fatalf("ParseDMS(%q, %d) succeeded, want error", tt.input, tt.degDigits)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error %v is not a *ParseError", err)
			}
		})
	}
}

// TestPlanarDistanceKm verifies the flat-earth distance approximation.
func TestPlanarDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Geographic
		want      float64
		tolerance float64
	}{
		{
			name: "identical points",
			a:    Geographic{Latitude: 35.675, Longitude: 139.76667},
			b:    Geographic{Latitude: 35.675, Longitude: 139.76667},
			want: 0.0,
		},
		{
			name: "one degree of latitude",
			a:    Geographic{Latitude: 35.0, Longitude: 139.0},
			b:    Geographic{Latitude: 36.0, Longitude: 139.0},
			want: 111.32,
		},
		{
			name: "one degree of longitude",
			a:    Geographic{Latitude: 35.0, Longitude: 139.0},
			b:    Geographic{Latitude: 35.0, Longitude: 140.0},
			want: 111.32,
		},
		{
			name:      "diagonal offset",
			a:         Geographic{Latitude: 35.0, Longitude: 139.0},
			b:         Geographic{Latitude: 35.3, Longitude: 139.4},
			want:      math.Sqrt(0.3*0.3+0.4*0.4) * 111.32,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanarDistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("PlanarDistanceKm = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPlanarDistanceKmSymmetry checks that argument order does not matter.
func TestPlanarDistanceKmSymmetry(t *testing.T) {
	a := Geographic{Latitude: 35.675, Longitude: 139.76667}
	b := Geographic{Latitude: 34.78528, Longitude: 135.43806}
	if d1, d2 := PlanarDistanceKm(a, b), PlanarDistanceKm(b, a); d1 != d2 {
		t.Errorf("distance is not symmetric: %v vs %v", d1, d2)
	}
}
