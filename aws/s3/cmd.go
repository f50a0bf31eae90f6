package s3

import (
	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
	"github.com/hybrid-search/feedkit/csv"
)

// Main contains the configuration for converting CSV data hosted in an
// S3 bucket to a local feed file.
type Main struct {
	Bucket    string `help:"S3 bucket name from which to read CSV objects."`
	Prefix    string `help:"Only objects in the bucket matching this prefix will be used."`
	Region    string `help:"AWS region to use."`
	Output    string `help:"Path to write the line-delimited JSON feed to."`
	Namespace string `help:"Document namespace used in put ids."`
	DocType   string `help:"Document type used in put ids."`
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		Bucket:    "feedkit-datasets",
		Region:    "us-east-1",
		Output:    "clean_spotify.jsonl",
		Namespace: feedkit.DefaultNamespace,
		DocType:   feedkit.DefaultDocType,
	}
}

// Run runs the conversion.
func (m *Main) Run() error {
	rs, err := NewRawSource(m.Region, m.Bucket, m.Prefix)
	if err != nil {
		return errors.Wrap(err, "getting s3 raw source")
	}
	src := csv.NewSource(rs, csv.WithRequiredColumns(feedkit.RequiredColumns))
	conv := feedkit.NewConverter(src, &feedkit.Transformer{
		Namespace: m.Namespace,
		DocType:   m.DocType,
	})
	return conv.Run(m.Output)
}
