package feedkit

import "github.com/hybrid-search/feedkit/vespa"

// Default document id components used when none are configured. These
// match the hybrid-search application schema the feed is written for.
const (
	DefaultNamespace = "hybrid-search"
	DefaultDocType   = "doc"
)

// Transformer turns raw records into feed envelopes. It is stateless
// and safe for concurrent use.
type Transformer struct {
	// Namespace and DocType are the middle components of every put id,
	// id:<Namespace>:<DocType>::<doc_id>.
	Namespace string
	DocType   string
}

// NewTransformer returns a Transformer using the default namespace and
// document type.
func NewTransformer() *Transformer {
	return &Transformer{
		Namespace: DefaultNamespace,
		DocType:   DefaultDocType,
	}
}

// Transform maps one raw record to its feed envelope: normalize missing
// text fields, derive the searchable text, project to the indexed
// fields, and wrap with a put id. Every record transforms successfully;
// there is no rejection path, not even for an empty track id.
func (tr *Transformer) Transform(rec map[string]string) vespa.Envelope {
	doc := TrackFromRecord(rec).Document()
	return vespa.Envelope{
		Put: vespa.PutID(tr.Namespace, tr.DocType, doc.DocID),
		Fields: vespa.Fields{
			DocID: doc.DocID,
			Title: doc.Title,
			Text:  doc.Text,
		},
	}
}
