package track

import (
	"path/filepath"
	"testing"
)

// TestCacheRoundTrip verifies a batch survives the compressed cache.
func TestCacheRoundTrip(t *testing.T) {
	samples := []PositionSample{
		{Date: "20190816", Time: "00:01:05", Callsign: "JAL001", Latitude: 35.70, Longitude: 139.77, Altitude: 500, Category: "B738"},
		{Date: "20190816", Time: "00:02:05", Callsign: "ANA205", Latitude: 34.79, Longitude: 135.44, Altitude: 30000, Category: "A320"},
	}

	path := filepath.Join(t.TempDir(), "batch.trkz")
	if err := WriteCache(path, samples); err != nil {
		t.Fatalf("WriteCache failed: %v", err)
	}

	got, err := ReadCache(path)
	if err != nil {
		t.Fatalf("ReadCache failed: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), len(got))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("Sample %d = %+v, want %+v", i, got[i], samples[i])
		}
	}
}

// TestReadCacheMissingFile verifies the open error path.
func TestReadCacheMissingFile(t *testing.T) {
	if _, err := ReadCache(filepath.Join(t.TempDir(), "absent.trkz")); err == nil {
		t.Fatal("ReadCache of missing file succeeded, want error")
	}
}
