package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the complete application configuration.
// Command-line flags override whatever is loaded here.
type Config struct {
	Guess   GuessConfig   `json:"guess"`
	Sources SourcesConfig `json:"sources"`
	Output  OutputConfig  `json:"output"`
}

// GuessConfig holds the assignment parameters.
type GuessConfig struct {
	// AltitudeThresholdFt is the altitude (feet) at or below which a
	// flight endpoint counts as on or near the ground (default: 6000)
	AltitudeThresholdFt int `json:"altitude_threshold_ft"`

	// RadiusKm is the maximum planar distance within which a location may
	// claim an endpoint (default: 10.0)
	RadiusKm float64 `json:"radius_km"`

	// TargetLocations restricts and orders the airport candidates.
	// The list order is the assignment priority; put high-traffic
	// airports first. Empty means the full gazetteer in source order.
	TargetLocations []string `json:"target_locations"`

	// IncludeFixes enables the second assignment phase: flights airborne
	// at both ends of the window are matched against the fix gazetteer.
	IncludeFixes bool `json:"include_fixes"`
}

// SourcesConfig locates the input data.
type SourcesConfig struct {
	// AirportFile is the whitespace-delimited aerodrome gazetteer
	AirportFile string `json:"airport_file"`

	// FixesFile is the fix gazetteer, required when IncludeFixes is set
	FixesFile string `json:"fixes_file"`

	// TrkDir is the directory holding trkYYYYMMDD_<slot>.csv files
	TrkDir string `json:"trk_dir"`

	// Dates are the YYYYMMDD dates to process from TrkDir
	Dates []string `json:"dates"`

	// SourceTimes are the time slots within each date (e.g. "00_12")
	SourceTimes []string `json:"source_times"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Path is the output CSV path
	Path string `json:"path"`

	// IncludeTracks emits every raw sample row with the entry/exit
	// columns appended, instead of the one-row-per-flight summary
	IncludeTracks bool `json:"include_tracks"`

	// IncludeDate adds the date column to the output when the batch
	// carries dates
	IncludeDate bool `json:"include_date"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return &cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Guess: GuessConfig{
			AltitudeThresholdFt: 6000,
			RadiusKm:            10.0,
			IncludeFixes:        false,
		},
		Sources: SourcesConfig{
			SourceTimes: []string{"00_12", "12_18", "18_24"},
		},
		Output: OutputConfig{
			Path:        "airport_guess.csv",
			IncludeDate: false,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config, so shared config files can stay free of machine-local paths.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv("TRKGUESS_AIRPORT_FILE"); v != "" {
		c.Sources.AirportFile = v
	}
	if v := os.Getenv("TRKGUESS_FIXES_FILE"); v != "" {
		c.Sources.FixesFile = v
	}
	if v := os.Getenv("TRKGUESS_TRK_DIR"); v != "" {
		c.Sources.TrkDir = v
	}
	if v := os.Getenv("TRKGUESS_OUTPUT"); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv("TRKGUESS_TARGET_LOCATIONS"); v != "" {
		c.Guess.TargetLocations = splitList(v)
	}
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
