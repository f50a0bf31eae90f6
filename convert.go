package feedkit

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit/vespa"
)

// Converter drains a Source and transforms every record into a feed
// envelope, preserving input order. The whole input is materialized
// before anything is written, so an error partway through the input
// never produces a partial feed file.
type Converter struct {
	src Source
	tr  *Transformer

	numRecords int
	numDupIDs  int
}

// NewConverter returns a Converter reading from src. A nil transformer
// means defaults.
func NewConverter(src Source, tr *Transformer) *Converter {
	if tr == nil {
		tr = NewTransformer()
	}
	return &Converter{src: src, tr: tr}
}

// ReadAll consumes the source until io.EOF and returns one envelope per
// record, in input order. Any record or source error aborts the read -
// there is no skipping or retrying.
func (c *Converter) ReadAll() ([]vespa.Envelope, error) {
	var envelopes []vespa.Envelope
	seen := make(map[string]struct{})
	for {
		rec, err := c.src.Record()
		if err == io.EOF {
			return envelopes, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading record")
		}
		env := c.tr.Transform(rec)
		c.numRecords++
		if _, ok := seen[env.Fields.DocID]; ok {
			c.numDupIDs++
		}
		seen[env.Fields.DocID] = struct{}{}
		envelopes = append(envelopes, env)
	}
}

// Run reads every record from the source and writes the feed to
// outPath, truncating any existing file. Duplicate doc ids are fed
// as-is - Vespa treats a repeated put as an overwrite - but they are
// counted and logged so the operator can tell.
func (c *Converter) Run(outPath string) error {
	envelopes, err := c.ReadAll()
	if err != nil {
		return errors.Wrap(err, "converting records")
	}
	if err := vespa.WriteFile(outPath, envelopes); err != nil {
		return errors.Wrap(err, "writing feed")
	}
	if c.numDupIDs > 0 {
		log.Printf("%d records shared a doc_id with an earlier record - their puts will overwrite", c.numDupIDs)
	}
	log.Printf("wrote %d documents to %s", c.numRecords, outPath)
	return nil
}

// NumRecords reports how many records the converter has transformed.
func (c *Converter) NumRecords() int { return c.numRecords }

// NumDuplicateIDs reports how many transformed records reused the
// doc_id of an earlier record.
func (c *Converter) NumDuplicateIDs() int { return c.numDupIDs }
