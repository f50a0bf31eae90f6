package kafka

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
	"github.com/hybrid-search/feedkit/vespa"
)

// Main holds the options for building a feed file from track records on
// Kafka. Unlike the file and s3 conversions, the stream has no natural
// end, so envelopes are appended to the feed as messages arrive rather
// than materialized first.
type Main struct {
	Hosts     []string `help:"Comma separated list of Kafka hosts and ports."`
	Topics    []string `help:"Comma separated list of Kafka topics to consume track records from."`
	Group     string   `help:"Kafka consumer group."`
	MaxMsgs   int      `help:"Stop after consuming this many messages. 0 means consume until the consumer is closed."`
	Output    string   `help:"Path to write the line-delimited JSON feed to."`
	Namespace string   `help:"Document namespace used in put ids."`
	DocType   string   `help:"Document type used in put ids."`
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Hosts:     []string{"localhost:9092"},
		Topics:    []string{"tracks"},
		Group:     "feedkit",
		Output:    "clean_spotify.jsonl",
		Namespace: feedkit.DefaultNamespace,
		DocType:   feedkit.DefaultDocType,
	}
}

// Run consumes track records and writes their envelopes to the feed
// file until MaxMsgs is reached or the consumer closes.
func (m *Main) Run() error {
	src := NewSource()
	src.Hosts = m.Hosts
	src.Topics = m.Topics
	src.Group = m.Group
	src.MaxMsgs = m.MaxMsgs
	if err := src.Open(); err != nil {
		return errors.Wrap(err, "opening kafka source")
	}
	defer src.Close()

	f, err := os.Create(m.Output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", m.Output)
	}
	defer f.Close()
	fw := vespa.NewFeedWriter(f)

	tr := &feedkit.Transformer{Namespace: m.Namespace, DocType: m.DocType}
	n := 0
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading record")
		}
		if err := fw.Write(tr.Transform(rec)); err != nil {
			return errors.Wrapf(err, "writing %s", m.Output)
		}
		n++
	}
	if err := fw.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", m.Output)
	}
	log.Printf("wrote %d documents to %s", n, m.Output)
	return nil
}
