package feedkit

import "io"

// Source is the interface for getting raw records one at a time. Each
// record maps column names to their text values; columns with no value
// may be absent from the map. Record returns io.EOF after the last
// record.
type Source interface {
	Record() (map[string]string, error)
}

// NamedReadCloser is an io.ReadCloser which also knows the name of the
// file or object it reads from, for use in error messages.
type NamedReadCloser interface {
	io.ReadCloser
	Name() string
}

// RawSource is the interface for getting raw data as a series of named
// readers - one per file, object, or similar unit of the underlying
// storage. NextReader returns io.EOF when no readers remain.
type RawSource interface {
	NextReader() (NamedReadCloser, error)
}

// SliceSource is a Source serving records from a slice, in order. It is
// mostly useful in tests and as glue when records are already in
// memory.
type SliceSource struct {
	records []map[string]string
	idx     int
}

// NewSliceSource returns a SliceSource which will yield the given
// records.
func NewSliceSource(records []map[string]string) *SliceSource {
	return &SliceSource{records: records}
}

// Record implements Source.
func (s *SliceSource) Record() (map[string]string, error) {
	if s.idx >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.idx]
	s.idx++
	return rec, nil
}
