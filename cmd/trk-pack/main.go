package main

import (
	"flag"
	"log"
	"strings"

	"github.com/carats-tools/trkguess/pkg/track"
)

// Packs trk CSV batches into the compressed binary cache format so repeated
// guessing runs over the same batch skip the CSV parsing cost. The cache is
// a zstd-compressed msgpack stream readable by annotate-trks.

func main() {
	inputs := flag.String("input", "", "Comma-separated trk CSV files or glob patterns")
	dates := flag.String("dates", "", "Comma-separated dates like 20190816 (used with -source-times and -trk-dir)")
	sourceTimes := flag.String("source-times", "", "Comma-separated source times like 00_12,12_18")
	trkDir := flag.String("trk-dir", "", "Directory where trkYYYYMMDD_<slot>.csv files live")
	output := flag.String("output", "batch.trkz", "Output cache path")
	show := flag.Bool("show", false, "Read an existing cache given with -input and print a summary instead of packing")
	flag.Parse()

	if *show {
		showCache(splitList(*inputs))
		return
	}

	paths, err := track.CollectPaths(splitList(*inputs), splitList(*dates), splitList(*sourceTimes), *trkDir)
	if err != nil {
		log.Fatalf("Failed to collect trk files: %v", err)
	}
	if len(paths) == 0 {
		log.Fatal("No trk input found. Use -input or (-dates, -source-times and -trk-dir).")
	}

	samples, err := track.ReadPaths(paths)
	if err != nil {
		log.Fatalf("Failed to read trk files: %v", err)
	}
	log.Printf("Read %d samples from %d files", len(samples), len(paths))

	if err := track.WriteCache(*output, samples); err != nil {
		log.Fatalf("Failed to write cache: %v", err)
	}
	log.Printf("Wrote %s", *output)
}

// showCache prints a per-date flight and sample summary of cache files.
func showCache(paths []string) {
	if len(paths) == 0 {
		log.Fatal("-show needs cache files via -input")
	}
	for _, p := range paths {
		samples, err := track.ReadCache(p)
		if err != nil {
			log.Fatalf("Failed to read cache %s: %v", p, err)
		}

		flights := make(map[string]bool)
		byDate := make(map[string]int)
		for _, s := range samples {
			flights[s.Date+"/"+s.Callsign] = true
			byDate[s.Date]++
		}

		log.Printf("%s: %d samples, %d flights", p, len(samples), len(flights))
		for date, n := range byDate {
			if date == "" {
				date = "(no date)"
			}
			log.Printf("  %s: %d samples", date, n)
		}
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
