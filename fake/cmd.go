package fake

import (
	"encoding/csv"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Main holds the options for generating a fake track dataset as a CSV
// file, suitable as input to the file conversion.
type Main struct {
	Seed   int64  `help:"Random seed for generating data. -1 uses the current nanosecond."`
	Num    int    `help:"Number of track records to generate."`
	Output string `help:"Path to write the CSV dataset to."`
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Seed:   0,
		Num:    1000,
		Output: "fake_tracks.csv",
	}
}

// Run generates the dataset.
func (m *Main) Run() error {
	if m.Seed == -1 {
		m.Seed = time.Now().UnixNano()
	}
	f, err := os.Create(m.Output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", m.Output)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := Columns()
	if err := w.Write(cols); err != nil {
		return errors.Wrap(err, "writing header")
	}
	g := NewTrackGenerator(m.Seed)
	row := make([]string, len(cols))
	for i := 0; i < m.Num; i++ {
		rec := g.Record()
		for j, col := range cols {
			row[j] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing record %d", i)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flushing csv")
	}
	log.Printf("wrote %d fake tracks to %s", m.Num, m.Output)
	return nil
}
