// Package fake generates plausible track records for tests, benchmarks
// and demos. Generation is deterministic for a given seed and Go
// version.
package fake

import (
	"fmt"
	"io"
	"math/rand"
)

var artists = []string{
	"The Daily Commute", "Marla Voss", "Echo Garden", "Señor Reverb",
	"Glass Harbor", "DJ Tangent", "The Unquiet Library", "Petra & The Plains",
	"Low Orbit Choir", "Tin Compass",
}

var albumWords = []string{
	"Midnight", "Paper", "Electric", "Quiet", "Golden", "Broken",
	"Seasons", "Maps", "Letters", "Static", "Harvest", "Arcade",
}

var titleWords = []string{
	"Run", "Falling", "Northbound", "Satellite", "Honey", "Driftwood",
	"Afterglow", "Caroline", "Ghosts", "Weekend", "Ember", "Undertow",
}

var genres = []string{
	"indie-pop", "acoustic", "deep-house", "folk", "synthwave",
	"jazz", "lo-fi", "alt-rock", "ambient", "latin",
}

// TrackGenerator generates random track records.
type TrackGenerator struct {
	r *rand.Rand
	n int
}

// NewTrackGenerator gets a TrackGenerator seeded with seed.
func NewTrackGenerator(seed int64) *TrackGenerator {
	return &TrackGenerator{r: rand.New(rand.NewSource(seed))}
}

// Columns is the header of the generated dataset. The tempo and
// popularity columns exist only to exercise the "other columns are
// ignored" path of the conversion.
func Columns() []string {
	return []string{"track_id", "artists", "album_name", "track_name", "popularity", "tempo", "track_genre"}
}

// Record generates the next track record. Roughly one record in twenty
// has an empty album_name so downstream missing-value handling gets
// exercised.
func (g *TrackGenerator) Record() map[string]string {
	g.n++
	rec := map[string]string{
		"track_id":    fmt.Sprintf("%07dTRK", g.n),
		"artists":     artists[g.r.Intn(len(artists))],
		"album_name":  albumWords[g.r.Intn(len(albumWords))] + " " + albumWords[g.r.Intn(len(albumWords))],
		"track_name":  titleWords[g.r.Intn(len(titleWords))] + " " + titleWords[g.r.Intn(len(titleWords))],
		"popularity":  fmt.Sprintf("%d", g.r.Intn(101)),
		"tempo":       fmt.Sprintf("%.3f", 60+g.r.Float64()*120),
		"track_genre": genres[g.r.Intn(len(genres))],
	}
	if g.r.Intn(20) == 0 {
		delete(rec, "album_name")
	}
	return rec
}

// Source is a feedkit.Source yielding generated track records.
type Source struct {
	g   *TrackGenerator
	num int
	n   int
}

// NewSource creates a Source which will generate num records from the
// given seed.
func NewSource(seed int64, num int) *Source {
	return &Source{g: NewTrackGenerator(seed), num: num}
}

// Record implements feedkit.Source.
func (s *Source) Record() (map[string]string, error) {
	if s.n >= s.num {
		return nil, io.EOF
	}
	s.n++
	return s.g.Record(), nil
}
