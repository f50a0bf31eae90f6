package feedkit

import "testing"

func TestTrackFromRecord(t *testing.T) {
	rec := map[string]string{
		"track_id":    "5SuOikwiRyPMVoIQDJUgSV",
		"artists":     "Gen Hoshino",
		"album_name":  "Comedy",
		"track_name":  "Comedy",
		"popularity":  "73",
		"track_genre": "acoustic",
	}
	track := TrackFromRecord(rec)
	if track.ID != "5SuOikwiRyPMVoIQDJUgSV" {
		t.Fatalf("wrong id: %q", track.ID)
	}
	if track.Artists != "Gen Hoshino" || track.Album != "Comedy" || track.Title != "Comedy" || track.Genre != "acoustic" {
		t.Fatalf("wrong fields: %+v", track)
	}
}

func TestTrackFromRecordMissingFields(t *testing.T) {
	track := TrackFromRecord(map[string]string{"track_id": "x1"})
	if track.ID != "x1" {
		t.Fatalf("wrong id: %q", track.ID)
	}
	if track.Artists != "" || track.Album != "" || track.Title != "" || track.Genre != "" {
		t.Fatalf("missing fields should normalize to empty strings: %+v", track)
	}
}

func TestTrackText(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		exp   string
	}{
		{
			name:  "allFields",
			track: Track{Artists: "X", Album: "Y", Title: "Z", Genre: "G"},
			exp:   "X Y Z G",
		},
		{
			name:  "emptyAlbumLeavesDoubleSpace",
			track: Track{Artists: "A", Album: "", Title: "T", Genre: "G"},
			exp:   "A  T G",
		},
		{
			name:  "emptyArtistsLeavesLeadingSpace",
			track: Track{Album: "Y", Title: "Z", Genre: "G"},
			exp:   " Y Z G",
		},
		{
			name:  "emptyGenreLeavesTrailingSpace",
			track: Track{Artists: "X", Album: "Y", Title: "Z"},
			exp:   "X Y Z ",
		},
		{
			name:  "allEmpty",
			track: Track{},
			exp:   "   ",
		},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			if got := tst.track.Text(); got != tst.exp {
				t.Fatalf("got %q, expected %q", got, tst.exp)
			}
		})
	}
}

func TestTrackDocument(t *testing.T) {
	track := Track{ID: "1", Artists: "X", Album: "Y", Title: "Z", Genre: "G"}
	doc := track.Document()
	if doc.DocID != "1" {
		t.Fatalf("wrong doc id: %q", doc.DocID)
	}
	if doc.Title != "Z" {
		t.Fatalf("title should come from the track name: %q", doc.Title)
	}
	if doc.Text != "X Y Z G" {
		t.Fatalf("wrong text: %q", doc.Text)
	}
}
