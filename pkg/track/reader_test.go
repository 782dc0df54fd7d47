package track

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const trkCSV = `00:01:05,JAL001,35.70,139.77,500,B738
00:02:05,JAL001,35.80,139.80,4500,B738
00:01:30,ANA205,34.79,135.44,300,A320
`

// TestReadCSV verifies parsing of headerless trk rows.
func TestReadCSV(t *testing.T) {
	samples, err := ReadCSV(strings.NewReader(trkCSV), "20190816")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(samples))
	}

	first := samples[0]
	if first.Callsign != "JAL001" {
		t.Errorf("Callsign = %s, want JAL001", first.Callsign)
	}
	if first.Time != "00:01:05" {
		t.Errorf("Time = %s, want 00:01:05", first.Time)
	}
	if first.Latitude != 35.70 {
		t.Errorf("Latitude = %v, want 35.70", first.Latitude)
	}
	if first.Altitude != 500 {
		t.Errorf("Altitude = %d, want 500", first.Altitude)
	}
	if first.Category != "B738" {
		t.Errorf("Category = %s, want B738", first.Category)
	}
	if first.Date != "20190816" {
		t.Errorf("Date = %s, want 20190816", first.Date)
	}
}

// TestReadCSVHeaderLine verifies a header line is tolerated and skipped.
func TestReadCSVHeaderLine(t *testing.T) {
	src := "time,Callsign,Latitude,Longitude,Altitude,Type\n" + trkCSV
	samples, err := ReadCSV(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(samples) != 3 {
		t.Errorf("Expected 3 samples after skipping header, got %d", len(samples))
	}
}

// TestReadCSVMalformedRow verifies a bad row past the header aborts the read.
func TestReadCSVMalformedRow(t *testing.T) {
	src := "00:01:05,JAL001,35.70,139.77,500,B738\n00:02:05,JAL001,bogus,139.80,4500,B738\n"
	if _, err := ReadCSV(strings.NewReader(src), ""); err == nil {
		t.Fatal("ReadCSV succeeded on malformed row, want error")
	}
}

// TestReadCSVEmpty verifies empty input yields no samples and no error.
func TestReadCSVEmpty(t *testing.T) {
	samples, err := ReadCSV(strings.NewReader(""), "")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Expected no samples, got %d", len(samples))
	}
}

// TestDateFromPath covers the trkYYYYMMDD_* filename convention.
func TestDateFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "trk20190816_00_12.csv", want: "20190816"},
		{path: "/data/201908/trk20190816_12_18.csv", want: "20190816"},
		{path: "trk20190816.csv", want: "20190816"},
		{path: "tracks.csv", want: ""},
		{path: "trk2019_00_12.csv", want: ""},
		{path: "trk2019081X_00_12.csv", want: ""},
	}
	for _, tt := range tests {
		if got := DateFromPath(tt.path); got != tt.want {
			t.Errorf("DateFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

// TestReadPaths verifies concatenation across files preserves file order.
func TestReadPaths(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "trk20190816_00_12.csv")
	p2 := filepath.Join(dir, "trk20190817_00_12.csv")
	if err := os.WriteFile(p1, []byte("00:01:05,JAL001,35.70,139.77,500,B738\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte("00:01:05,JAL001,35.70,139.77,500,B738\n"), 0644); err != nil {
		t.Fatal(err)
	}

	samples, err := ReadPaths([]string{p1, p2})
	if err != nil {
		t.Fatalf("ReadPaths failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0].Date != "20190816" || samples[1].Date != "20190817" {
		t.Errorf("Dates = %s, %s; want 20190816, 20190817", samples[0].Date, samples[1].Date)
	}
}

// TestCollectPaths verifies glob expansion and date-based path generation.
func TestCollectPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"trk20190816_00_12.csv", "trk20190816_12_18.csv", "other.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Glob input.
	paths, err := CollectPaths([]string{filepath.Join(dir, "trk*.csv")}, nil, nil, "")
	if err != nil {
		t.Fatalf("CollectPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("Glob matched %d paths, want 2: %v", len(paths), paths)
	}

	// Generated paths, with one combination missing on disk.
	paths, err = CollectPaths(nil, []string{"20190816"}, []string{"00_12", "12_18", "18_24"}, dir)
	if err != nil {
		t.Fatalf("CollectPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("Generated %d existing paths, want 2: %v", len(paths), paths)
	}
}
