package feedkit

import "testing"

func TestTransform(t *testing.T) {
	tr := NewTransformer()
	env := tr.Transform(map[string]string{
		"track_id":    "1",
		"artists":     "X",
		"album_name":  "Y",
		"track_name":  "Z",
		"track_genre": "G",
	})
	if env.Put != "id:hybrid-search:doc::1" {
		t.Fatalf("wrong put: %q", env.Put)
	}
	if env.Fields.DocID != "1" || env.Fields.Title != "Z" || env.Fields.Text != "X Y Z G" {
		t.Fatalf("wrong fields: %+v", env.Fields)
	}
}

func TestTransformEmptyTrackID(t *testing.T) {
	// an empty track_id is accepted, not rejected
	env := NewTransformer().Transform(map[string]string{"track_name": "Z"})
	if env.Put != "id:hybrid-search:doc::" {
		t.Fatalf("wrong put: %q", env.Put)
	}
	if env.Fields.DocID != "" {
		t.Fatalf("doc id should be empty, got %q", env.Fields.DocID)
	}
}

func TestTransformCustomNamespace(t *testing.T) {
	tr := &Transformer{Namespace: "music", DocType: "track"}
	env := tr.Transform(map[string]string{"track_id": "42"})
	if env.Put != "id:music:track::42" {
		t.Fatalf("wrong put: %q", env.Put)
	}
}
