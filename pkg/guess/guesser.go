package guess

import (
	"io"

	"github.com/carats-tools/trkguess/pkg/gazetteer"
	"github.com/carats-tools/trkguess/pkg/track"
)

// Guesser runs the full inference pipeline over one batch of track data:
// accumulate samples, reduce and classify, assign locations, assemble the
// per-flight result table. A Guesser is single-use per batch and is not
// safe for concurrent use; the whole pipeline is a synchronous in-memory
// transformation.
type Guesser struct {
	airports *gazetteer.Gazetteer
	fixes    *gazetteer.Gazetteer
	targets  []string

	samples []track.PositionSample
	hasDate bool

	departed      []Endpoint
	landed        []Endpoint
	airborneFirst []Endpoint
	airborneLast  []Endpoint

	results []Result
}

// New returns a Guesser that assigns from the given airport gazetteer.
func New(airports *gazetteer.Gazetteer) *Guesser {
	return &Guesser{airports: airports}
}

// SetFixes supplies a fix gazetteer, enabling the second assignment phase:
// flights airborne at both ends of the window are matched against fixes
// instead of airports.
func (g *Guesser) SetFixes(fixes *gazetteer.Gazetteer) {
	g.fixes = fixes
}

// SetTargets restricts and orders the airport candidates. The list is the
// assignment priority; names not present in the airport gazetteer are
// skipped. With no targets set, the gazetteer's own order is the priority.
func (g *Guesser) SetTargets(names []string) {
	g.targets = names
}

// AddSamples appends a batch of samples. May be called repeatedly to
// concatenate several source files before preprocessing.
func (g *Guesser) AddSamples(samples []track.PositionSample) {
	g.samples = append(g.samples, samples...)
	if !g.hasDate {
		for _, s := range samples {
			if s.Date != "" {
				g.hasDate = true
				break
			}
		}
	}
}

// Samples returns the accumulated batch.
func (g *Guesser) Samples() []track.PositionSample {
	return g.samples
}

// HasDate reports whether any accumulated sample carried an observation
// date. Resolved once per batch; it controls the date column in output.
func (g *Guesser) HasDate() bool {
	return g.hasDate
}

// Preprocess reduces the accumulated samples to per-flight endpoints and
// classifies them against thresholdFt (zero selects the default). An empty
// batch leaves every endpoint table empty; that is not an error.
func (g *Guesser) Preprocess(thresholdFt int) {
	first, last := Reduce(g.samples)
	g.departed, g.landed, g.airborneFirst, g.airborneLast = Classify(first, last, thresholdFt)
	g.results = nil
}

// AssignLocations runs the assignment phases and assembles the result
// table. Airports claim the departed/landed endpoints first; when a fix
// gazetteer is present the airborne endpoints then get a fix-based pass and
// are folded back in, so fix-assigned flights appear in the same table.
// A radiusKm of zero or below selects DefaultRadiusKm.
func (g *Guesser) AssignLocations(radiusKm float64) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	airports := g.priorityLocations()
	Assign(g.departed, airports, radiusKm)
	Assign(g.landed, airports, radiusKm)

	if g.fixes != nil {
		Assign(g.airborneFirst, g.fixes.All(), radiusKm)
		Assign(g.airborneLast, g.fixes.All(), radiusKm)
		g.departed = append(g.departed, g.airborneFirst...)
		g.landed = append(g.landed, g.airborneLast...)
		g.airborneFirst = nil
		g.airborneLast = nil
	}

	g.results = Assemble(g.departed, g.landed)
}

// priorityLocations resolves the airport candidate list in priority order.
func (g *Guesser) priorityLocations() []gazetteer.Location {
	if g.targets == nil {
		return g.airports.All()
	}
	locs := make([]gazetteer.Location, 0, len(g.targets))
	for _, name := range g.targets {
		if loc, ok := g.airports.Lookup(name); ok {
			locs = append(locs, loc)
		}
	}
	return locs
}

// Departed returns the entry endpoints (after AssignLocations, including
// fix-assigned ones). Read-only.
func (g *Guesser) Departed() []Endpoint {
	return g.departed
}

// Landed returns the exit endpoints. Read-only.
func (g *Guesser) Landed() []Endpoint {
	return g.landed
}

// Results returns the assembled per-flight table. Empty until
// AssignLocations has run.
func (g *Guesser) Results() []Result {
	return g.results
}

// WriteCSV renders the result table to w. With includeTracks every raw
// sample row is emitted with the flight's entry/exit columns appended
// instead of the one-row-per-flight summary. The date column appears when
// requested and the batch actually carried dates.
func (g *Guesser) WriteCSV(w io.Writer, includeDate, includeTracks bool) error {
	withDate := includeDate && g.hasDate
	if includeTracks {
		return WriteAnnotatedTracks(w, g.samples, g.results, withDate)
	}
	return WriteResults(w, g.results, withDate)
}
