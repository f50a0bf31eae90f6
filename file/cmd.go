package file

import (
	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
	"github.com/hybrid-search/feedkit/csv"
)

// Main contains the configuration for converting local CSV data to a
// feed file.
type Main struct {
	Path      string `help:"CSV file or directory of CSV files to read."`
	Output    string `help:"Path to write the line-delimited JSON feed to."`
	Namespace string `help:"Document namespace used in put ids."`
	DocType   string `help:"Document type used in put ids."`
}

// NewMain gets a new Main with the default configuration, which matches
// the reference conversion of the Spotify tracks dataset.
func NewMain() *Main {
	return &Main{
		Path:      "spotify_dataset.csv",
		Output:    "clean_spotify.jsonl",
		Namespace: feedkit.DefaultNamespace,
		DocType:   feedkit.DefaultDocType,
	}
}

// Run runs the conversion.
func (m *Main) Run() error {
	rs, err := NewRawSource(m.Path)
	if err != nil {
		return errors.Wrap(err, "getting raw source")
	}
	src := csv.NewSource(rs, csv.WithRequiredColumns(feedkit.RequiredColumns))
	conv := feedkit.NewConverter(src, &feedkit.Transformer{
		Namespace: m.Namespace,
		DocType:   m.DocType,
	})
	return conv.Run(m.Output)
}
