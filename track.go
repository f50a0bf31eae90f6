package feedkit

// Column names of the source dataset that the conversion reads. Input
// files may carry any number of other columns; they are ignored.
const (
	ColTrackID    = "track_id"
	ColArtists    = "artists"
	ColAlbumName  = "album_name"
	ColTrackName  = "track_name"
	ColTrackGenre = "track_genre"
)

// RequiredColumns are the columns an input file must declare for the
// conversion to run at all. Values may still be empty per row.
var RequiredColumns = []string{ColTrackID, ColArtists, ColAlbumName, ColTrackName, ColTrackGenre}

// Track is one row of source data. All fields are plain text and any of
// them may be empty - missing values are represented as "" rather than
// rejected.
type Track struct {
	ID      string
	Artists string
	Album   string
	Title   string
	Genre   string
}

// TrackFromRecord builds a Track from a raw record. Columns absent from
// the record come out as empty strings, which is also how missing
// values are normalized: there is no distinction between an empty and
// an absent field past this point. The ID is copied verbatim, empty or
// not.
func TrackFromRecord(rec map[string]string) Track {
	return Track{
		ID:      rec[ColTrackID],
		Artists: rec[ColArtists],
		Album:   rec[ColAlbumName],
		Title:   rec[ColTrackName],
		Genre:   rec[ColTrackGenre],
	}
}

// Text derives the searchable text for the track: artists, album, track
// name and genre joined by single spaces, in that fixed order. Empty
// fields are not collapsed, so a missing album leaves a double space
// and a missing genre leaves a trailing space. Keeping the separators
// stable makes the output reproducible byte for byte.
func (t Track) Text() string {
	return t.Artists + " " + t.Album + " " + t.Title + " " + t.Genre
}

// Document projects the track down to the three fields the search
// schema indexes.
func (t Track) Document() Document {
	return Document{
		DocID: t.ID,
		Title: t.Title,
		Text:  t.Text(),
	}
}

// Document is the indexed view of a track: its identifier, display
// title, and derived searchable text.
type Document struct {
	DocID string
	Title string
	Text  string
}
