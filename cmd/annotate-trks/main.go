package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carats-tools/trkguess/pkg/config"
	"github.com/carats-tools/trkguess/pkg/gazetteer"
	"github.com/carats-tools/trkguess/pkg/guess"
	"github.com/carats-tools/trkguess/pkg/track"
)

// Annotates CARATS trk batches with inferred airspace entry/exit points.
// Inputs are trk CSVs (given directly, as globs, or generated from
// dates × source times under a trk directory) plus an airport gazetteer
// and optionally a fix gazetteer for overflights.

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to configuration file")
	inputs := flag.String("input", "", "Comma-separated trk CSV files or glob patterns")
	dates := flag.String("dates", "", "Comma-separated dates like 20190816,20190817 (used with -source-times and -trk-dir)")
	sourceTimes := flag.String("source-times", "", "Comma-separated source times like 00_12,12_18")
	trkDir := flag.String("trk-dir", "", "Directory where trkYYYYMMDD_<slot>.csv files live")
	airportFile := flag.String("airport-file", "", "Aerodrome gazetteer file")
	fixesFile := flag.String("fixes-file", "", "Fix gazetteer file (enables the fix assignment phase)")
	targets := flag.String("target-locations", "", "Comma-separated airport names in priority order (default: gazetteer order)")
	radius := flag.Float64("radius", 0, "Assignment radius in km (default: 10.0)")
	threshold := flag.Int("altitude-threshold", 0, "Grounded-endpoint altitude threshold in feet (default: 6000)")
	output := flag.String("output", "", "Output CSV path")
	includeTrks := flag.Bool("include-trks", false, "Write full trk rows with entry/exit columns appended")
	includeDate := flag.Bool("include-date", false, "Include the date column in the output")
	verbose := flag.Bool("verbose", false, "Verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyFlags(cfg, *inputs, *dates, *sourceTimes, *trkDir, *airportFile, *fixesFile, *targets, *radius, *threshold, *output, *includeTrks, *includeDate)

	if cfg.Sources.AirportFile == "" {
		log.Fatal("No airport gazetteer given. Use -airport-file or set sources.airport_file in the config.")
	}

	paths, err := track.CollectPaths(splitList(*inputs), cfg.Sources.Dates, cfg.Sources.SourceTimes, cfg.Sources.TrkDir)
	if err != nil {
		log.Fatalf("Failed to collect trk files: %v", err)
	}
	if len(paths) == 0 {
		log.Fatal("No trk input found. Use -input or (-dates, -source-times and -trk-dir).")
	}
	if *verbose {
		log.Printf("Collected %d trk files", len(paths))
	}

	airports, err := gazetteer.LoadFile(cfg.Sources.AirportFile, gazetteer.KindAirport)
	if err != nil {
		log.Fatalf("Failed to load airport gazetteer: %v", err)
	}
	if *verbose {
		log.Printf("Loaded %d airports from %s", airports.Len(), cfg.Sources.AirportFile)
	}

	g := guess.New(airports)
	if len(cfg.Guess.TargetLocations) > 0 {
		g.SetTargets(cfg.Guess.TargetLocations)
	}
	if cfg.Guess.IncludeFixes {
		if cfg.Sources.FixesFile == "" {
			log.Fatal("Fix phase enabled but no fixes file given. Use -fixes-file or set sources.fixes_file.")
		}
		fixes, err := gazetteer.LoadFile(cfg.Sources.FixesFile, gazetteer.KindFix)
		if err != nil {
			log.Fatalf("Failed to load fix gazetteer: %v", err)
		}
		g.SetFixes(fixes)
		if *verbose {
			log.Printf("Loaded %d fixes from %s", fixes.Len(), cfg.Sources.FixesFile)
		}
	}

	for _, p := range paths {
		var samples []track.PositionSample
		if filepath.Ext(p) == ".trkz" {
			samples, err = track.ReadCache(p)
		} else {
			samples, err = track.ReadFile(p)
		}
		if err != nil {
			log.Fatalf("Failed to read %s: %v", p, err)
		}
		g.AddSamples(samples)
	}
	if *verbose {
		log.Printf("Read %d position samples", len(g.Samples()))
	}

	g.Preprocess(cfg.Guess.AltitudeThresholdFt)
	g.AssignLocations(cfg.Guess.RadiusKm)

	if *verbose {
		assigned := 0
		for _, r := range g.Results() {
			if r.EntryPoint != "" || r.ExitPoint != "" {
				assigned++
			}
		}
		log.Printf("Assigned entry/exit points for %d of %d flights", assigned, len(g.Results()))
	}

	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	if err := g.WriteCSV(f, cfg.Output.IncludeDate, cfg.Output.IncludeTracks); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %s", cfg.Output.Path)
}

// applyFlags lets command-line flags override configuration file values.
// Only flags the user actually set are applied.
func applyFlags(cfg *config.Config, inputs, dates, sourceTimes, trkDir, airportFile, fixesFile, targets string, radius float64, threshold int, output string, includeTrks, includeDate bool) {
	if dates != "" {
		cfg.Sources.Dates = splitList(dates)
	}
	if sourceTimes != "" {
		cfg.Sources.SourceTimes = splitList(sourceTimes)
	}
	if trkDir != "" {
		cfg.Sources.TrkDir = trkDir
	}
	if inputs != "" && trkDir == "" && dates == "" {
		// Explicit inputs replace the config's generated paths entirely.
		cfg.Sources.TrkDir = ""
		cfg.Sources.Dates = nil
	}
	if airportFile != "" {
		cfg.Sources.AirportFile = airportFile
	}
	if fixesFile != "" {
		cfg.Sources.FixesFile = fixesFile
		cfg.Guess.IncludeFixes = true
	}
	if targets != "" {
		cfg.Guess.TargetLocations = splitList(targets)
	}
	if radius > 0 {
		cfg.Guess.RadiusKm = radius
	}
	if threshold > 0 {
		cfg.Guess.AltitudeThresholdFt = threshold
	}
	if output != "" {
		cfg.Output.Path = output
	}
	if includeTrks {
		cfg.Output.IncludeTracks = true
	}
	if includeDate {
		cfg.Output.IncludeDate = true
	}
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: annotate-trks [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Infers airspace entry/exit points for CARATS trk batches.\n\n")
		flag.PrintDefaults()
	}
}
