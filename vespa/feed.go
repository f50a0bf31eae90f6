// Package vespa implements the output side of the conversion: put
// envelopes and the line-delimited JSON feed format that the Vespa
// document API ingests. It knows nothing about tracks or CSV - it just
// serializes envelopes.
package vespa

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Fields holds the indexed attribute values for one document. Field
// order here determines serialization order, which keeps repeated runs
// byte-identical.
type Fields struct {
	DocID string `json:"doc_id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Envelope is one line of a feed file: a put instruction naming the
// document and the field values to index for it.
type Envelope struct {
	Put    string `json:"put"`
	Fields Fields `json:"fields"`
}

// PutID synthesizes a Vespa document id of the form
// id:<namespace>:<doctype>::<docid>. An empty docID is legal and yields
// an id ending in "::" - whether that is useful is up to the cluster
// being fed.
func PutID(namespace, docType, docID string) string {
	return fmt.Sprintf("id:%s:%s::%s", namespace, docType, docID)
}

// FeedWriter serializes envelopes to a writer, one JSON object per
// line, in the order given. Call Flush when done.
type FeedWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewFeedWriter returns a FeedWriter writing to w.
func NewFeedWriter(w io.Writer) *FeedWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	// keep &, < and > readable in artist and title text
	enc.SetEscapeHTML(false)
	return &FeedWriter{bw: bw, enc: enc}
}

// Write serializes one envelope followed by a newline.
func (fw *FeedWriter) Write(e Envelope) error {
	return errors.Wrap(fw.enc.Encode(e), "encoding envelope")
}

// Flush writes any buffered output to the underlying writer.
func (fw *FeedWriter) Flush() error {
	return errors.Wrap(fw.bw.Flush(), "flushing feed")
}

// WriteFile writes the envelopes to the file at path as a feed,
// truncating anything already there. Zero envelopes produce an empty
// file. The file is created (and possibly truncated) only after the
// caller has all envelopes in hand, so a failed conversion never leaves
// a partial feed behind.
func WriteFile(path string, envelopes []Envelope) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	fw := NewFeedWriter(f)
	for _, e := range envelopes {
		if err := fw.Write(e); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing %s", path)
		}
	}
	if err := fw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
