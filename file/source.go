package file

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
)

// RawSource is a feedkit.RawSource reading from a file on disk, or from
// every file in a directory. Directory entries are read in lexical
// order so repeated runs see the files in the same order.
type RawSource struct {
	files []string
	idx   int
}

// NewRawSource returns a RawSource for the file or directory at
// pathname.
func NewRawSource(pathname string) (*RawSource, error) {
	info, err := os.Stat(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "statting path")
	}
	s := &RawSource{}
	if !info.IsDir() {
		s.files = []string{pathname}
		return s, nil
	}
	infos, err := ioutil.ReadDir(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "reading directory")
	}
	s.files = make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		s.files = append(s.files, filepath.Join(pathname, info.Name()))
	}
	return s, nil
}

// NextReader implements feedkit.RawSource. The reader's Name is the
// base name of the file.
func (s *RawSource) NextReader() (feedkit.NamedReadCloser, error) {
	if s.idx >= len(s.files) {
		return nil, io.EOF
	}
	name := s.files[s.idx]
	s.idx++
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return &namedFile{f}, nil
}

type namedFile struct {
	*os.File
}

func (f *namedFile) Name() string {
	return filepath.Base(f.File.Name())
}
