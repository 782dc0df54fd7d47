// Package gazetteer loads ordered lists of named geographic locations
// (airports and en-route fixes) used as assignment candidates.
//
// Order is semantically significant: it is the priority in which locations
// claim endpoints during assignment, so a gazetteer preserves its source
// order exactly.
package gazetteer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carats-tools/trkguess/pkg/coordinates"
)

// Kind distinguishes the two location categories a flight endpoint may be
// matched against. A single assignment only ever draws from one kind.
type Kind int

const (
	// KindAirport is an aerodrome a flight departs from or lands at.
	KindAirport Kind = iota

	// KindFix is a named non-airport boundary point used to label airspace
	// entry/exit for flights that neither depart nor land within the
	// observation window.
	KindFix
)

func (k Kind) String() string {
	switch k {
	case KindAirport:
		return "airport"
	case KindFix:
		return "fix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Location is one named candidate point. Immutable after load.
type Location struct {
	// Name identifies the location (ICAO code for airports, fix name for
	// fixes). Unique within its gazetteer.
	Name string

	// Kind says whether this is an airport or a fix.
	Kind Kind

	// Position in decimal degrees, converted from the source DMS strings
	// at load time.
	Position coordinates.Geographic
}

// Gazetteer is an ordered, immutable set of locations of a single kind.
type Gazetteer struct {
	locations []Location
	byName    map[string]int
}

// Load reads a whitespace-delimited gazetteer from r. Airport rows are
// "name lat_dms lon_dms"; fix rows carry one extra column between the name
// and the coordinates, which is ignored. Latitudes have two degree digits,
// longitudes three.
//
// Blank lines are skipped. Any malformed row fails the whole load with an
// error naming the row; no partial gazetteer is ever returned.
func Load(r io.Reader, kind Kind) (*Gazetteer, error) {
	latCol, lonCol := 1, 2
	if kind == KindFix {
		latCol, lonCol = 2, 3
	}
	minFields := lonCol + 1

	g := &Gazetteer{byName: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minFields {
			return nil, fmt.Errorf("%s gazetteer row %d: want %d columns, have %d", kind, lineNo, minFields, len(fields))
		}

		name := fields[0]
		lat, err := coordinates.ParseDMS(fields[latCol], 2)
		if err != nil {
			return nil, fmt.Errorf("%s gazetteer row %d (%s): latitude: %w", kind, lineNo, name, err)
		}
		lon, err := coordinates.ParseDMS(fields[lonCol], 3)
		if err != nil {
			return nil, fmt.Errorf("%s gazetteer row %d (%s): longitude: %w", kind, lineNo, name, err)
		}

		if _, dup := g.byName[name]; dup {
			return nil, fmt.Errorf("%s gazetteer row %d: duplicate location %s", kind, lineNo, name)
		}
		g.byName[name] = len(g.locations)
		g.locations = append(g.locations, Location{
			Name: name,
			Kind: kind,
			Position: coordinates.Geographic{
				Latitude:  lat,
				Longitude: lon,
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s gazetteer: %w", kind, err)
	}

	return g, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, kind Kind) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s gazetteer: %w", kind, err)
	}
	defer f.Close()

	g, err := Load(f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Len returns the number of locations.
func (g *Gazetteer) Len() int {
	return len(g.locations)
}

// All returns the locations in source order. The returned slice is shared;
// callers must not modify it.
func (g *Gazetteer) All() []Location {
	return g.locations
}

// Lookup returns the location with the given name.
func (g *Gazetteer) Lookup(name string) (Location, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Location{}, false
	}
	return g.locations[i], true
}

// Names returns all location names in source order. This is the default
// priority list when no explicit target list is supplied.
func (g *Gazetteer) Names() []string {
	names := make([]string, len(g.locations))
	for i, loc := range g.locations {
		names[i] = loc.Name
	}
	return names
}
