package vespa

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPutID(t *testing.T) {
	if got := PutID("hybrid-search", "doc", "abc"); got != "id:hybrid-search:doc::abc" {
		t.Fatalf("wrong put id: %q", got)
	}
	if got := PutID("hybrid-search", "doc", ""); got != "id:hybrid-search:doc::" {
		t.Fatalf("empty doc id should still produce a put id: %q", got)
	}
}

func TestFeedWriterSerialization(t *testing.T) {
	buf := &bytes.Buffer{}
	fw := NewFeedWriter(buf)
	err := fw.Write(Envelope{
		Put:    "id:hybrid-search:doc::1",
		Fields: Fields{DocID: "1", Title: "Z", Text: "X Y Z G"},
	})
	if err != nil {
		t.Fatalf("writing: %v", err)
	}
	if err := fw.Flush(); err != nil {
		t.Fatalf("flushing: %v", err)
	}
	exp := `{"put":"id:hybrid-search:doc::1","fields":{"doc_id":"1","title":"Z","text":"X Y Z G"}}` + "\n"
	if buf.String() != exp {
		t.Fatalf("got %q, expected %q", buf.String(), exp)
	}
}

func TestFeedWriterNoHTMLEscaping(t *testing.T) {
	buf := &bytes.Buffer{}
	fw := NewFeedWriter(buf)
	if err := fw.Write(Envelope{Fields: Fields{Text: "Simon & Garfunkel"}}); err != nil {
		t.Fatalf("writing: %v", err)
	}
	if err := fw.Flush(); err != nil {
		t.Fatalf("flushing: %v", err)
	}
	if !strings.Contains(buf.String(), "Simon & Garfunkel") {
		t.Fatalf("ampersand should not be escaped: %q", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	d, err := ioutil.TempDir("", "testwritefile")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	defer os.RemoveAll(d)
	path := filepath.Join(d, "feed.jsonl")

	envs := []Envelope{
		{Put: "id:hybrid-search:doc::1", Fields: Fields{DocID: "1"}},
		{Put: "id:hybrid-search:doc::2", Fields: Fields{DocID: "2"}},
	}
	if err := WriteFile(path, envs); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(buf), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf)
	}

	// writing again truncates rather than appends
	if err := WriteFile(path, envs[:1]); err != nil {
		t.Fatalf("rewriting file: %v", err)
	}
	buf, err = ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("rereading file: %v", err)
	}
	lines = strings.Split(strings.TrimRight(string(buf), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after rewrite, got %d: %q", len(lines), buf)
	}
}

func TestWriteFileEmpty(t *testing.T) {
	d, err := ioutil.TempDir("", "testwriteempty")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	defer os.RemoveAll(d)
	path := filepath.Join(d, "feed.jsonl")

	if err := WriteFile(path, nil); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if len(buf) != 0 {
		t.Fatalf("expected empty file, got %q", buf)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile("/this/path/does/not/exist/feed.jsonl", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
}
