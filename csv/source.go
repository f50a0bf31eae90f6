// Copyright 2025 the feedkit authors.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived
// from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND
// CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES,
// INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR
// CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY,
// WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH
// DAMAGE.

package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
)

// Source is a feedkit.Source for CSV data. Each data row is returned by
// a call to Record as a map[string]string whose keys come from the
// header line of the file the row was read from. Quoted fields are
// handled, so values may contain commas and newlines. Files from the
// RawSource are read in the order the RawSource yields them, rows in
// file order.
type Source struct {
	rs       feedkit.RawSource
	required []string

	cur    feedkit.NamedReadCloser
	rdr    *csv.Reader
	header []string
	line   int
}

// Option is a functional option to pass to NewSource.
type Option func(*Source)

// WithRequiredColumns returns an Option which makes the Source reject
// any file whose header does not declare every one of the given
// columns. The check happens when the header is read, before any row
// from that file is produced.
func WithRequiredColumns(cols []string) Option {
	return func(s *Source) {
		s.required = cols
	}
}

// NewSource returns a Source reading CSV data from every reader the
// RawSource yields.
func NewSource(rs feedkit.RawSource, opts ...Option) *Source {
	s := &Source{rs: rs}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record returns the next data row as a map from column name to value.
// Columns whose value is empty in the row are left out of the map. It
// returns io.EOF once every file is exhausted. Header and row errors
// are fatal: the Source does not skip past a file it cannot parse.
func (s *Source) Record() (map[string]string, error) {
	for {
		if s.cur == nil {
			cur, err := s.rs.NextReader()
			if err == io.EOF {
				return nil, io.EOF
			}
			if err != nil {
				return nil, errors.Wrap(err, "getting next reader")
			}
			s.cur = cur
			s.rdr = csv.NewReader(cur)
			// rows are validated against the header, not by the reader
			s.rdr.FieldsPerRecord = -1
			s.line = 0
			if err := s.readHeader(); err != nil {
				s.closeCurrent()
				return nil, err
			}
		}
		row, err := s.rdr.Read()
		if err == io.EOF {
			s.closeCurrent()
			continue
		}
		if err != nil {
			name := s.cur.Name()
			s.closeCurrent()
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		s.line++
		rec, err := parseRecord(s.header, row)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", s.cur.Name(), s.line)
		}
		return rec, nil
	}
}

func (s *Source) readHeader() error {
	header, err := s.rdr.Read()
	if err == io.EOF {
		return &HeaderError{Name: s.cur.Name(), Reason: "file is empty"}
	}
	if err != nil {
		return errors.Wrapf(err, "reading header of %s", s.cur.Name())
	}
	if err := validateHeader(s.cur.Name(), header, s.required); err != nil {
		return err
	}
	s.header = header
	return nil
}

func (s *Source) closeCurrent() {
	s.cur.Close()
	s.cur = nil
	s.rdr = nil
	s.header = nil
}

// HeaderError reports an input file whose header cannot satisfy the
// conversion schema. It is returned before any row of the offending
// file is produced.
type HeaderError struct {
	// Name of the file or object the header came from.
	Name string
	// Missing lists required columns the header does not declare.
	Missing []string
	// Reason describes a problem other than missing columns, such as a
	// duplicate or empty column name.
	Reason string
}

func (e *HeaderError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: header missing required columns: %s", e.Name, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s: bad header: %s", e.Name, e.Reason)
}

func validateHeader(name string, header, required []string) error {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			return &HeaderError{Name: name, Reason: fmt.Sprintf("empty column name at position %d", i)}
		}
		if prev, ok := cols[h]; ok {
			return &HeaderError{Name: name, Reason: fmt.Sprintf("column %q appears at both %d and %d", h, prev, i)}
		}
		cols[h] = i
	}
	var missing []string
	for _, req := range required {
		if _, ok := cols[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return &HeaderError{Name: name, Missing: missing}
	}
	return nil
}

func parseRecord(header, row []string) (map[string]string, error) {
	if len(row) < len(header) {
		return nil, errors.Errorf("row has %d fields, header has %d", len(row), len(header))
	}
	for i := len(header); i < len(row); i++ {
		if strings.TrimSpace(row[i]) != "" {
			log.Printf("dropping value %q in unheadered column %d", row[i], i)
		}
	}
	rec := make(map[string]string, len(header))
	for i, h := range header {
		if row[i] == "" {
			continue
		}
		rec[h] = row[i]
	}
	return rec, nil
}
