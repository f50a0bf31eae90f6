package file

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestRawSourceSingleFile(t *testing.T) {
	d, err := ioutil.TempDir("", "testrawfile")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	defer os.RemoveAll(d)
	path := filepath.Join(d, "tracks.csv")
	if err := ioutil.WriteFile(path, []byte("some,data\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	rs, err := NewRawSource(path)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	r, err := rs.NextReader()
	if err != nil {
		t.Fatalf("getting reader: %v", err)
	}
	if r.Name() != "tracks.csv" {
		t.Fatalf("wrong name: %q", r.Name())
	}
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(buf) != "some,data\n" {
		t.Fatalf("wrong contents: %q", buf)
	}
	r.Close()
	if _, err := rs.NextReader(); err != io.EOF {
		t.Fatalf("expected io.EOF after the only file, got %v", err)
	}
}

func TestRawSourceDirectoryOrder(t *testing.T) {
	d, err := ioutil.TempDir("", "testrawdir")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	defer os.RemoveAll(d)
	for _, name := range []string{"b.csv", "a.csv", "c.csv"} {
		if err := ioutil.WriteFile(filepath.Join(d, name), []byte(name), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	rs, err := NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	var got []string
	var r interface {
		Name() string
		Close() error
	}
	for r, err = rs.NextReader(); err == nil; r, err = rs.NextReader() {
		got = append(got, r.Name())
		r.Close()
	}
	if err != io.EOF {
		t.Fatalf("unexpected NextReader error: %v", err)
	}
	exp := []string{"a.csv", "b.csv", "c.csv"}
	if len(got) != len(exp) {
		t.Fatalf("wrong file count: %v", got)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("files out of lexical order: %v", got)
		}
	}
}

func TestRawSourceSkipsSubdirectories(t *testing.T) {
	d, err := ioutil.TempDir("", "testrawsub")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	defer os.RemoveAll(d)
	if err := os.Mkdir(filepath.Join(d, "nested"), 0755); err != nil {
		t.Fatalf("making subdir: %v", err)
	}
	if err := ioutil.WriteFile(filepath.Join(d, "only.csv"), []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	rs, err := NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	r, err := rs.NextReader()
	if err != nil {
		t.Fatalf("getting reader: %v", err)
	}
	if r.Name() != "only.csv" {
		t.Fatalf("wrong name: %q", r.Name())
	}
	r.Close()
	if _, err := rs.NextReader(); err != io.EOF {
		t.Fatalf("subdirectory should have been skipped, got %v", err)
	}
}

func TestRawSourceMissingPath(t *testing.T) {
	if _, err := NewRawSource("/no/such/path/anywhere"); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}
